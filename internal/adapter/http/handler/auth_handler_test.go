package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/caribank/internal/adapter/http/dto"
	"github.com/iho/caribank/internal/domain"
	"github.com/iho/caribank/internal/infrastructure/auth"
	"github.com/iho/caribank/internal/usecase"
)

type directoryServiceStub struct {
	registerFn     func(ctx context.Context, input usecase.RegisterInput) (*domain.Account, error)
	authenticateFn func(ctx context.Context, nationalID, password string) (*domain.Account, error)
}

func (s *directoryServiceStub) Register(ctx context.Context, input usecase.RegisterInput) (*domain.Account, error) {
	return s.registerFn(ctx, input)
}

func (s *directoryServiceStub) Authenticate(ctx context.Context, nationalID, password string) (*domain.Account, error) {
	return s.authenticateFn(ctx, nationalID, password)
}

func testAccount() *domain.Account {
	return &domain.Account{
		ID:            1,
		FirstName:     "Maria",
		LastName:      "Quintero",
		LoginName:     "maria",
		Age:           30,
		NationalID:    "1234567890",
		Role:          domain.RoleClient,
		AccountNumber: "11112222",
		AccountType:   domain.AccountTypeSavings,
		Balance:       decimal.Zero,
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	sessions, _ := newTestSessions(t)
	var captured usecase.RegisterInput

	handler := NewAuthHandler(&directoryServiceStub{
		registerFn: func(ctx context.Context, input usecase.RegisterInput) (*domain.Account, error) {
			captured = input
			return testAccount(), nil
		},
	}, sessions, auth.NewJWTManager("secret", time.Minute), newTestMetrics())

	body, _ := json.Marshal(dto.RegisterRequest{
		FirstName:   "Maria",
		LastName:    "Quintero",
		LoginName:   "maria",
		Age:         30,
		NationalID:  "1234567890",
		AccountType: "savings",
		Password:    "correct123",
	})

	rec := httptest.NewRecorder()
	handler.Register(rec, httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.NationalID != "1234567890" || captured.AccountType != domain.AccountTypeSavings {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.AccountResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.AccountNumber != "11112222" {
		t.Fatalf("expected account number in response, got %+v", resp)
	}
}

func TestAuthHandler_Register_ValidationError(t *testing.T) {
	sessions, _ := newTestSessions(t)

	handler := NewAuthHandler(&directoryServiceStub{
		registerFn: func(ctx context.Context, input usecase.RegisterInput) (*domain.Account, error) {
			return nil, domain.ErrUnderage
		},
	}, sessions, auth.NewJWTManager("secret", time.Minute), newTestMetrics())

	body, _ := json.Marshal(dto.RegisterRequest{Age: 17})
	rec := httptest.NewRecorder()
	handler.Register(rec, httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthHandler_Register_InvalidBody(t *testing.T) {
	sessions, _ := newTestSessions(t)

	handler := NewAuthHandler(&directoryServiceStub{
		registerFn: func(ctx context.Context, input usecase.RegisterInput) (*domain.Account, error) {
			t.Fatal("Register should not be called")
			return nil, nil
		},
	}, sessions, auth.NewJWTManager("secret", time.Minute), newTestMetrics())

	rec := httptest.NewRecorder()
	handler.Register(rec, httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString("{bad json")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	sessions, _ := newTestSessions(t)
	jwtManager := auth.NewJWTManager("secret", time.Minute)

	handler := NewAuthHandler(&directoryServiceStub{
		authenticateFn: func(ctx context.Context, nationalID, password string) (*domain.Account, error) {
			return testAccount(), nil
		},
	}, sessions, jwtManager, newTestMetrics())

	body, _ := json.Marshal(dto.LoginRequest{NationalID: "1234567890", Password: "correct123"})
	rec := httptest.NewRecorder()
	handler.Login(rec, httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Greeting != "Welcome, Maria Quintero" {
		t.Fatalf("unexpected greeting %q", resp.Greeting)
	}

	claims, err := jwtManager.Verify(resp.Token)
	if err != nil {
		t.Fatalf("expected token to verify, got %v", err)
	}
	if _, err := sessions.Get(claims.SessionID); err != nil {
		t.Fatalf("expected session to be open, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	sessions, _ := newTestSessions(t)

	handler := NewAuthHandler(&directoryServiceStub{
		authenticateFn: func(ctx context.Context, nationalID, password string) (*domain.Account, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}, sessions, auth.NewJWTManager("secret", time.Minute), newTestMetrics())

	body, _ := json.Marshal(dto.LoginRequest{NationalID: "1234567890", Password: "wrong"})
	rec := httptest.NewRecorder()
	handler.Login(rec, httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body)))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	sessions, session := newTestSessions(t)

	handler := NewAuthHandler(&directoryServiceStub{}, sessions, auth.NewJWTManager("secret", time.Minute), newTestMetrics())

	rec := httptest.NewRecorder()
	handler.Logout(rec, authenticatedRequest(http.MethodPost, "/auth/logout", nil, session.ID()))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if session.State() != usecase.SessionClosed {
		t.Fatalf("expected session to be closed, got %s", session.State())
	}
}

func TestAuthHandler_Logout_MissingClaims(t *testing.T) {
	sessions, _ := newTestSessions(t)

	handler := NewAuthHandler(&directoryServiceStub{}, sessions, auth.NewJWTManager("secret", time.Minute), newTestMetrics())

	rec := httptest.NewRecorder()
	handler.Logout(rec, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
