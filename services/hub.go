package services

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans team updates out to every connected client watching a team page,
// so a coach with two tabs open (or a spectator) sees treasury and roster
// changes as they commit.
type Hub struct {
	clients     map[*Client]bool
	register    chan *Client
	unregister  chan *Client
	mutex       sync.RWMutex
	teamService *TeamService
}

type Client struct {
	hub     *Hub
	id      string
	socket  *websocket.Conn
	send    chan []byte
	teamID  uint
	coachID uint
}

type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

func NewHub(teamService *TeamService) *Hub {
	return &Hub{
		clients:     make(map[*Client]bool),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		teamService: teamService,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.mutex.Unlock()
			log.Printf("Client %s registered for team %d - total clients: %d", client.id, client.teamID, len(h.clients))

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Printf("Client %s unregistered from team %d - total clients: %d", client.id, client.teamID, len(h.clients))
			}
			h.mutex.Unlock()
		}
	}
}

// BroadcastTeamUpdate pushes an event to every client watching the team.
func (h *Hub) BroadcastTeamUpdate(teamID uint, messageType string, payload interface{}) {
	message := Message{
		Type:    messageType,
		Payload: payload,
	}

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("Error marshaling %s message: %v", messageType, err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()
	for client := range h.clients {
		if client.teamID != teamID {
			continue
		}
		select {
		case client.send <- data:
		default:
			close(client.send)
			delete(h.clients, client)
		}
	}
}

func (h *Hub) sendTeamSync(client *Client) {
	summary, err := h.teamService.GetTeamSummary(client.teamID, client.coachID)
	if err != nil {
		log.Printf("Error loading team %d summary for client %s: %v", client.teamID, client.id, err)
		return
	}

	message := Message{
		Type:    "team_state_sync",
		Payload: summary,
	}

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("Error marshaling team state sync: %v", err)
		return
	}

	select {
	case client.send <- data:
	default:
		h.mutex.Lock()
		close(client.send)
		delete(h.clients, client)
		h.mutex.Unlock()
	}
}

func (h *Hub) RegisterClient(conn *websocket.Conn, teamID uint, coachID uint) *Client {
	client := &Client{
		hub:     h,
		id:      generateClientID(),
		socket:  conn,
		send:    make(chan []byte, 256),
		teamID:  teamID,
		coachID: coachID,
	}

	h.register <- client

	go client.writePump()
	go client.readPump()

	return client
}

func (h *Hub) UnregisterClient(client *Client) {
	h.unregister <- client
}

func (c *Client) readPump() {
	defer func() {
		c.hub.UnregisterClient(c)
		c.socket.Close()
	}()

	for {
		_, message, err := c.socket.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			break
		}

		var msg Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.handleMessage(msg)
	}
}

func (c *Client) writePump() {
	defer c.socket.Close()

	for message := range c.send {
		w, err := c.socket.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)
		if err := w.Close(); err != nil {
			return
		}
	}
	c.socket.WriteMessage(websocket.CloseMessage, []byte{})
}

func (c *Client) handleMessage(msg Message) {
	switch msg.Type {
	case "ping":
		response := Message{Type: "pong", Payload: "pong"}
		data, _ := json.Marshal(response)
		c.send <- data

	case "request_team_state":
		c.hub.sendTeamSync(c)

	default:
		log.Printf("Unknown message type %q from client %s (team %d)", msg.Type, c.id, c.teamID)
	}
}

func generateClientID() string {
	bytes := make([]byte, 4)
	rand.Read(bytes)
	return "client_" + hex.EncodeToString(bytes)
}
