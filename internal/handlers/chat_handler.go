package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
	"poultry-backend/internal/middleware"
	"poultry-backend/internal/models"
	"poultry-backend/internal/services"
)

var chatUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS policy is enforced on the REST surface
		return true
	},
}

type ChatHandler struct {
	Service *services.ChatService
}

func NewChatHandler(s *services.ChatService) *ChatHandler {
	return &ChatHandler{Service: s}
}

func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	var req models.SendChatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	msg, err := h.Service.Send(r.Context(), userID, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(msg)
}

// Conversation returns history with another user, or the office room
// when with=0 or omitted.
func (h *ChatHandler) Conversation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	otherID, _ := strconv.Atoi(r.URL.Query().Get("with"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	messages, err := h.Service.Conversation(r.Context(), userID, otherID, limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if messages == nil {
		messages = []models.ChatMessage{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messages)
}

func (h *ChatHandler) Online(w http.ResponseWriter, r *http.Request) {
	ids := h.Service.OnlineUserIDs()
	if ids == nil {
		ids = []int{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"online": ids})
}

// Websocket upgrades the connection and attaches it to the hub.
// Inbound frames are treated as SendChatMessageRequest payloads.
func (h *ChatHandler) Websocket(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	conn, err := chatUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Chat] Websocket upgrade failed: %v", err)
		return
	}

	h.Service.Hub().Add(userID, conn, func(senderID int, data []byte) {
		var req models.SendChatMessageRequest
		if err := json.Unmarshal(data, &req); err != nil {
			log.Printf("[Chat] Bad frame from user %d: %v", senderID, err)
			return
		}
		// The request context dies with this handler, the socket outlives it
		if _, err := h.Service.Send(context.Background(), senderID, &req); err != nil {
			log.Printf("[Chat] Failed to deliver message from user %d: %v", senderID, err)
		}
	})
}
