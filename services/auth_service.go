package services

import (
	"errors"
	"time"

	"bbmanager/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{db: db, jwtSecret: jwtSecret}
}

type RegisterRequest struct {
	CoachName string `json:"coach_name" binding:"required,min=3,max=100"`
	Password  string `json:"password" binding:"required,min=8"`
	Password2 string `json:"password2" binding:"required,eqfield=Password"`
}

type LoginRequest struct {
	CoachName string `json:"coach_name" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	Coach models.Coach `json:"coach"`
}

// Register creates a coach and logs them in, returning a fresh token.
func (s *AuthService) Register(req *RegisterRequest) (*AuthResponse, error) {
	var count int64
	if err := s.db.Model(&models.Coach{}).Where("coach_name = ?", req.CoachName).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCoachNameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	coach := models.Coach{
		CoachName:    req.CoachName,
		PasswordHash: string(hash),
	}
	if err := s.db.Create(&coach).Error; err != nil {
		return nil, err
	}

	token, err := s.generateToken(coach.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token, Coach: coach}, nil
}

func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	var coach models.Coach
	if err := s.db.Where("coach_name = ?", req.CoachName).First(&coach).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(coach.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(coach.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token, Coach: coach}, nil
}

func (s *AuthService) GetProfile(coachID uint) (*models.Coach, error) {
	var coach models.Coach
	if err := s.db.Preload("Teams").First(&coach, coachID).Error; err != nil {
		return nil, err
	}
	return &coach, nil
}

func (s *AuthService) generateToken(coachID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"coach_id": coachID,
		"exp":      time.Now().Add(72 * time.Hour).Unix(),
	})
	return token.SignedString([]byte(s.jwtSecret))
}
