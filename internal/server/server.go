package server

import (
	"context"
	"net/http"
	"time"

	"github.com/aichat/backend/internal/ai"
	"github.com/aichat/backend/internal/auth"
	"github.com/aichat/backend/internal/config"
	"github.com/aichat/backend/internal/http/handlers"
	"github.com/aichat/backend/internal/middleware"
	"github.com/aichat/backend/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.UserStore) *Server {
	mux := http.NewServeMux()

	health := handlers.NewHealthHandler(time.Now())
	health.Register(mux)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	authHandler := handlers.NewAuthHandler(store, tokens)
	authHandler.Register(mux)

	completer := ai.NewClient(cfg.AIBaseURL)
	chatHandler := handlers.NewChatHandler(completer, tokens)
	chatHandler.Register(mux)

	handler := middleware.CORS(cfg.CORSOrigins, middleware.Logging(mux))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
