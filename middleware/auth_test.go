package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(testSecret), func(c *gin.Context) {
		coachID, _ := c.Get("coach_id")
		c.JSON(http.StatusOK, gin.H{"coach_id": coachID})
	})
	return router
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	router := newTestRouter()
	token := signedToken(t, testSecret, jwt.MapClaims{
		"coach_id": 42,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestParseCoachToken(t *testing.T) {
	token := signedToken(t, testSecret, jwt.MapClaims{
		"coach_id": 42,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	coachID, err := ParseCoachToken(testSecret, token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coachID != 42 {
		t.Fatalf("expected coach ID 42, got %d", coachID)
	}

	if _, err := ParseCoachToken("other-secret", token); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
	if _, err := ParseCoachToken(testSecret, ""); err == nil {
		t.Fatal("expected error for empty token")
	}

	noClaim := signedToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	if _, err := ParseCoachToken(testSecret, noClaim); err == nil {
		t.Fatal("expected error for token without a coach ID")
	}
}

func TestAuthMiddlewareRejections(t *testing.T) {
	router := newTestRouter()

	expired := signedToken(t, testSecret, jwt.MapClaims{
		"coach_id": 42,
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})
	wrongSecret := signedToken(t, "other-secret", jwt.MapClaims{
		"coach_id": 42,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer token", header: "Basic abc"},
		{name: "garbage token", header: "Bearer not-a-token"},
		{name: "expired token", header: "Bearer " + expired},
		{name: "wrong secret", header: "Bearer " + wrongSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected status 401, got %d", w.Code)
			}
		})
	}
}
