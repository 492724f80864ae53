package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"notestash/internal/app/server/api"
	"notestash/internal/config"
	"notestash/internal/domain/note"
	"notestash/internal/domain/user"
	"notestash/internal/infrastructure/storage/postgres"
	"notestash/internal/ratelimit"
	"notestash/internal/sweeper"
	"notestash/internal/token"
	"notestash/internal/utils/logger"
)

const shutdownTimeout = 30 * time.Second

func main() {
	conf := config.MustLoad()
	log := logger.New(conf.Env)
	log.Info("starting notestash", "env", conf.Env, "address", conf.Server.RunAddress)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := postgres.New(ctx, conf)
	if err != nil {
		log.Error("failed to init storage", "error", err)
		os.Exit(1)
	}
	defer storage.Close()

	tokens, err := token.NewIssuer(conf.Auth.TokenTTL)
	if err != nil {
		log.Error("failed to init token issuer", "error", err)
		os.Exit(1)
	}

	userRepo := postgres.NewUserRepository(storage.Pool(), log)
	noteRepo := postgres.NewNoteRepository(storage.Pool(), log)

	loginLimiter := ratelimit.New(conf.RateLimit.LoginPerSecond, conf.RateLimit.LoginBurst)
	userService := user.NewService(userRepo, user.NewCredentialValidator(), loginLimiter, log)
	noteService := note.NewService(noteRepo, log)

	sweep := sweeper.New(noteService, conf.Sweep.Interval, log)
	sweep.Start(ctx)
	defer sweep.Stop()

	mux := api.New(api.Services{
		Users:  userService,
		Notes:  noteService,
		Tokens: tokens,
		DB:     storage,
	}, log)

	server := &http.Server{
		Addr:    conf.Server.RunAddress,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "address", conf.Server.RunAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		log.Error("http server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}

	log.Info("server stopped")
}
