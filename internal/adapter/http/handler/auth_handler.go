package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/iho/caribank/internal/adapter/http/dto"
	"github.com/iho/caribank/internal/adapter/http/middleware"
	"github.com/iho/caribank/internal/domain"
	"github.com/iho/caribank/internal/infrastructure/auth"
	"github.com/iho/caribank/internal/infrastructure/metrics"
	"github.com/iho/caribank/internal/usecase"
)

// DirectoryService defines the behavior needed by AuthHandler.
type DirectoryService interface {
	Register(ctx context.Context, input usecase.RegisterInput) (*domain.Account, error)
	Authenticate(ctx context.Context, nationalID, password string) (*domain.Account, error)
}

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	directory  DirectoryService
	sessions   SessionRegistry
	jwtManager *auth.JWTManager
	metrics    *metrics.Metrics
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(directory DirectoryService, sessions SessionRegistry, jwtManager *auth.JWTManager, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		directory:  directory,
		sessions:   sessions,
		jwtManager: jwtManager,
		metrics:    m,
	}
}

// Register opens a new account.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.directory.Register(r.Context(), req.ToUseCaseInput())
	if err != nil {
		h.metrics.RegistrationErrors.WithLabelValues(err.Error()).Inc()
		status := mapDomainError(err)
		writeError(w, status, "registration failed", err.Error())

		return
	}

	h.metrics.AccountsRegistered.Inc()
	writeJSON(w, http.StatusCreated, dto.AccountFromDomain(account))
}

// Login authenticates a holder, opens a session and returns a token
// bound to it.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.directory.Authenticate(r.Context(), req.NationalID, req.Password)
	if err != nil {
		h.metrics.AuthAttempts.WithLabelValues("failure").Inc()
		status := mapDomainError(err)
		writeError(w, status, "login failed", err.Error())

		return
	}

	session := h.sessions.Open(account)

	token, err := h.jwtManager.Generate(session.ID(), account)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token", err.Error())
		return
	}

	h.metrics.AuthAttempts.WithLabelValues("success").Inc()
	h.metrics.ActiveSessions.Inc()

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Token:    token,
		Greeting: fmt.Sprintf("Welcome, %s", account.HolderName()),
		Account:  dto.AccountFromDomain(account),
	})
}

// Logout closes the session bound to the token, writing its state back
// to the directory.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	if err := h.sessions.Close(r.Context(), claims.SessionID); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "logout failed", err.Error())

		return
	}

	h.metrics.ActiveSessions.Dec()
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}
