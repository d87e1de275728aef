package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/aichat/backend/internal/auth"
	"github.com/aichat/backend/internal/http/respond"
	"github.com/aichat/backend/internal/middleware"
	"github.com/aichat/backend/internal/models/dto"
	"github.com/aichat/backend/internal/storage"
)

// AuthHandler owns the register/login/list endpoints.
type AuthHandler struct {
	store  storage.UserStore
	tokens *auth.TokenManager
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store storage.UserStore, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens}
}

// Register attaches auth routes to the mux. The user listing sits behind
// the bearer-token gate.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/auth/register", h.handleRegister)
	mux.HandleFunc("/api/auth/login", h.handleLogin)
	mux.Handle("/api/auth/users", middleware.RequireAuth(h.tokens, http.HandlerFunc(h.handleListUsers)))
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Message(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	if username == "" || email == "" || req.Password == "" {
		respond.Message(w, http.StatusBadRequest, "username, email, and password are required")
		return
	}

	user, err := h.store.Create(r.Context(), username, email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrEmailTaken):
			respond.Message(w, http.StatusBadRequest, "email is already registered")
		case errors.Is(err, storage.ErrUsernameTaken):
			respond.Message(w, http.StatusBadRequest, "username is already taken")
		default:
			log.Printf("create user: %v", err)
			respond.Message(w, http.StatusInternalServerError, "server error")
		}
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		log.Printf("issue token: %v", err)
		respond.Message(w, http.StatusInternalServerError, "server error")
		return
	}

	respond.JSON(w, http.StatusCreated, dto.AuthResponse{
		Message: "user registered successfully",
		User:    user,
		Token:   token,
	})
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Message(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		respond.Message(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.store.FindByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Message(w, http.StatusNotFound, "user not found")
			return
		}
		log.Printf("find user: %v", err)
		respond.Message(w, http.StatusInternalServerError, "server error")
		return
	}

	if !h.store.VerifyPassword(user, req.Password) {
		respond.Message(w, http.StatusUnauthorized, "incorrect password")
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		log.Printf("issue token: %v", err)
		respond.Message(w, http.StatusInternalServerError, "server error")
		return
	}

	respond.JSON(w, http.StatusOK, dto.AuthResponse{
		Message: "login successful",
		User:    user.Public(),
		Token:   token,
	})
}

func (h *AuthHandler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	users, err := h.store.ListAll(r.Context())
	if err != nil {
		log.Printf("list users: %v", err)
		respond.Message(w, http.StatusInternalServerError, "server error")
		return
	}
	respond.JSON(w, http.StatusOK, dto.UserListResponse{Users: users, Count: len(users)})
}
