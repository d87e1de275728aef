package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/aichat/backend/internal/http/respond"
	"github.com/aichat/backend/internal/middleware"
	"github.com/aichat/backend/internal/models/dto"
)

// Completer forwards a chat request to the completion model and returns
// the upstream status and raw JSON body.
type Completer interface {
	Complete(ctx context.Context, req dto.ChatRequest) (int, []byte, error)
}

// ChatHandler proxies authenticated chat requests to the completion
// model. It validates the payload and relays the upstream response as-is.
type ChatHandler struct {
	completer Completer
	verifier  middleware.TokenVerifier
}

// NewChatHandler constructs the handler.
func NewChatHandler(completer Completer, verifier middleware.TokenVerifier) *ChatHandler {
	return &ChatHandler{completer: completer, verifier: verifier}
}

// Register attaches the chat route behind the bearer-token gate.
func (h *ChatHandler) Register(mux *http.ServeMux) {
	mux.Handle("/api/ai/chat", middleware.RequireAuth(h.verifier, http.HandlerFunc(h.handleChat)))
}

func (h *ChatHandler) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Message(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if len(req.Messages) == 0 {
		respond.Message(w, http.StatusBadRequest, "at least one message is required")
		return
	}
	for _, msg := range req.Messages {
		if msg.Content == "" || msg.Role == "" {
			respond.Message(w, http.StatusBadRequest, "every message must have content and role")
			return
		}
	}

	status, body, err := h.completer.Complete(r.Context(), req)
	if err != nil {
		log.Printf("completion model: %v", err)
		respond.Message(w, http.StatusBadGateway, "failed to reach completion model")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Printf("relay completion response: %v", err)
	}
}
