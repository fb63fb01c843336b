package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iho/caribank/internal/adapter/http/dto"
	"github.com/iho/caribank/internal/adapter/http/middleware"
	"github.com/iho/caribank/internal/domain"
	"github.com/iho/caribank/internal/infrastructure/metrics"
	"github.com/iho/caribank/internal/usecase"
)

// SessionRegistry defines the session lookup behavior needed by handlers.
type SessionRegistry interface {
	Open(account *domain.Account) *usecase.Session
	Get(id string) (*usecase.Session, error)
	Close(ctx context.Context, id string) error
}

// SessionHandler handles operations on the authenticated session.
type SessionHandler struct {
	sessions SessionRegistry
	metrics  *metrics.Metrics
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessions SessionRegistry, m *metrics.Metrics) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		metrics:  m,
	}
}

// Get returns the session's account snapshot.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := h.sessionFromRequest(w, r)
	if !ok {
		return
	}

	account := session.Account()
	writeJSON(w, http.StatusOK, dto.AccountFromDomain(&account))
}

// Deposit credits the session balance.
func (h *SessionHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	session, ok := h.sessionFromRequest(w, r)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	txn, err := session.Deposit(req.Amount)
	if err != nil {
		h.recordFailure(domain.TransactionDeposit, err)
		status := mapDomainError(err)
		writeError(w, status, "deposit failed", err.Error())

		return
	}

	h.recordSuccess(*txn)
	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(*txn))
}

// Withdraw debits the session balance.
func (h *SessionHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	session, ok := h.sessionFromRequest(w, r)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	txn, err := session.Withdraw(req.Amount)
	if err != nil {
		h.recordFailure(domain.TransactionWithdrawal, err)
		status := mapDomainError(err)
		writeError(w, status, "withdrawal failed", err.Error())

		return
	}

	h.recordSuccess(*txn)
	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(*txn))
}

// Transfer debits the session balance towards another account number.
func (h *SessionHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	session, ok := h.sessionFromRequest(w, r)
	if !ok {
		return
	}

	var req dto.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	txn, err := session.Transfer(req.Amount, req.DestinationAccountNumber)
	if err != nil {
		h.recordFailure(domain.TransactionTransfer, err)
		status := mapDomainError(err)
		writeError(w, status, "transfer failed", err.Error())

		return
	}

	h.recordSuccess(*txn)
	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(*txn))
}

// History lists the session's transactions in chronological order.
func (h *SessionHandler) History(w http.ResponseWriter, r *http.Request) {
	session, ok := h.sessionFromRequest(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(session.History()))
}

func (h *SessionHandler) sessionFromRequest(w http.ResponseWriter, r *http.Request) (*usecase.Session, bool) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return nil, false
	}

	session, err := h.sessions.Get(claims.SessionID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "session unavailable", err.Error())

		return nil, false
	}

	return session, true
}

func (h *SessionHandler) recordSuccess(txn domain.Transaction) {
	kind := string(txn.Kind)
	h.metrics.Transactions.WithLabelValues(kind).Inc()
	h.metrics.TransactionAmount.WithLabelValues(kind).Observe(txn.Amount.InexactFloat64())
}

func (h *SessionHandler) recordFailure(kind domain.TransactionKind, err error) {
	h.metrics.TransactionErrors.WithLabelValues(string(kind), err.Error()).Inc()
}
