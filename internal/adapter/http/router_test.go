package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/caribank/internal/adapter/http/dto"
	"github.com/iho/caribank/internal/adapter/http/handler"
	"github.com/iho/caribank/internal/domain"
	"github.com/iho/caribank/internal/infrastructure/auth"
	"github.com/iho/caribank/internal/infrastructure/metrics"
	"github.com/iho/caribank/internal/usecase"
)

type memStore struct{}

func (memStore) Load(ctx context.Context) ([]*domain.Account, int64, error) {
	return nil, 1, nil
}

func (memStore) Save(ctx context.Context, accounts []*domain.Account, nextID int64) error {
	return nil
}

type seqGenerator struct {
	prefix string
	n      int
}

func (g *seqGenerator) Generate() string {
	g.n++
	return fmt.Sprintf("%s%d", g.prefix, g.n)
}

func newTestMetrics() *metrics.Metrics {
	registry := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry

	return metrics.New()
}

func newTestRouter() http.Handler {
	directory := usecase.NewDirectory(memStore{}, &seqGenerator{prefix: "9999000"}, zerolog.Nop())
	sessions := usecase.NewSessionManager(directory, &seqGenerator{prefix: "id-"}, zerolog.Nop())
	certificates := usecase.NewCertificates("Banco del Caribe")
	jwtManager := auth.NewJWTManager("secret", time.Minute)
	m := newTestMetrics()

	return NewRouter(RouterConfig{
		AuthHandler:        handler.NewAuthHandler(directory, sessions, jwtManager, m),
		SessionHandler:     handler.NewSessionHandler(sessions, m),
		CertificateHandler: handler.NewCertificateHandler(certificates, sessions, m),
		HealthHandler:      handler.NewHealthHandler(directory),
		JWTManager:         jwtManager,
		Logger:             zerolog.Nop(),
	})
}

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := newTestRouter()

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"POST /api/v1/auth/register",
		"POST /api/v1/auth/login",
		"POST /api/v1/auth/logout",
		"GET /api/v1/session/",
		"POST /api/v1/session/deposits",
		"POST /api/v1/session/withdrawals",
		"POST /api/v1/session/transfers",
		"GET /api/v1/session/transactions",
		"GET /api/v1/session/certificate",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func TestNewRouter_SessionRequiresToken(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/session/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestNewRouter_RegisterLoginDepositFlow(t *testing.T) {
	router := newTestRouter()

	registerBody, _ := json.Marshal(dto.RegisterRequest{
		FirstName:   "Maria",
		LastName:    "Quintero",
		LoginName:   "maria",
		Age:         30,
		NationalID:  "1234567890",
		AccountType: "savings",
		Password:    "correct123",
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(registerBody)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	loginBody, _ := json.Marshal(dto.LoginRequest{NationalID: "1234567890", Password: "correct123"})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(loginBody)))
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var login dto.LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &login); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	depositBody, _ := json.Marshal(dto.AmountRequest{Amount: decimal.NewFromInt(50)})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/session/deposits", bytes.NewReader(depositBody))
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("deposit: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/session/", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("session: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var account dto.AccountResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &account); err != nil {
		t.Fatalf("failed to decode account response: %v", err)
	}
	if !account.Balance.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected balance 50 after deposit, got %s", account.Balance)
	}
}
