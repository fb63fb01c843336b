package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpAdapter "github.com/iho/caribank/internal/adapter/http"
	"github.com/iho/caribank/internal/adapter/http/handler"
	"github.com/iho/caribank/internal/adapter/store/jsonstore"
	"github.com/iho/caribank/internal/infrastructure/auth"
	"github.com/iho/caribank/internal/infrastructure/config"
	"github.com/iho/caribank/internal/infrastructure/logger"
	"github.com/iho/caribank/internal/infrastructure/metrics"
	"github.com/iho/caribank/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	// Storage and use cases
	store := jsonstore.New(cfg.Store.Path, log)
	directory := usecase.NewDirectory(store, jsonstore.NewAccountNumberGenerator(), log)
	directory.Load(context.Background())
	log.Info().Int("accounts", directory.Count()).Str("path", cfg.Store.Path).Msg("directory loaded")

	sessions := usecase.NewSessionManager(directory, jsonstore.NewULIDGenerator(), log)
	certificates := usecase.NewCertificates(cfg.Bank.Name)

	// Auth
	secret := cfg.JWT.Secret
	if secret == "" {
		secret = ephemeralSecret()
		log.Warn().Msg("JWT_SECRET not set, using an ephemeral secret; tokens will not survive restarts")
	}
	jwtManager := auth.NewJWTManager(secret, cfg.JWT.Expiration)

	m := metrics.New()

	// Handlers and router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AuthHandler:        handler.NewAuthHandler(directory, sessions, jwtManager, m),
		SessionHandler:     handler.NewSessionHandler(sessions, m),
		CertificateHandler: handler.NewCertificateHandler(certificates, sessions, m),
		HealthHandler:      handler.NewHealthHandler(directory),
		JWTManager:         jwtManager,
		Logger:             log,
	})

	server := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// ephemeralSecret draws a random signing key for a single process run.
func ephemeralSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}
