package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/aichat/backend/internal/config"
	"github.com/aichat/backend/internal/server"
	"github.com/aichat/backend/internal/storage"
	"github.com/aichat/backend/internal/storage/memory"
	"github.com/aichat/backend/internal/storage/postgres"
)

func main() {
	loadLocalEnv()

	cfg := config.Load()

	store, cleanup, err := newUserStore(context.Background(), cfg)
	if err != nil {
		log.Fatalf("init store: %v", err)
	}
	defer cleanup()

	srv := server.New(cfg, store)

	go func() {
		log.Printf("AI chat backend listening on %s", cfg.HTTPAddress())
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}
}

// newUserStore picks the Postgres store when DATABASE_URL is set and the
// in-memory store otherwise.
func newUserStore(ctx context.Context, cfg config.Config) (storage.UserStore, func(), error) {
	if cfg.DatabaseURL != "" {
		pg, err := postgres.NewStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return pg, pg.Close, nil
	}
	log.Println("DATABASE_URL not set; using in-memory user store")
	return memory.NewStore(), func() {}, nil
}

func loadLocalEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found; relying on existing environment")
	}
}
