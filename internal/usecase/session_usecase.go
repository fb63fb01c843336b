package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/caribank/internal/domain"
)

// SessionState is the lifecycle state of a session.
type SessionState string

const (
	// SessionOpen accepts operations.
	SessionOpen SessionState = "open"

	// SessionClosed is terminal; a new login produces a new session.
	SessionClosed SessionState = "closed"
)

// Session is the live, in-memory financial state of one authenticated
// account for the duration of a login. It mutates only its own working
// copy; the directory sees the result at logout.
type Session struct {
	mu        sync.Mutex
	id        string
	state     SessionState
	account   *domain.Account
	directory *Directory
	idGen     IDGenerator
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// State reports whether the session still accepts operations.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Account returns a read-only snapshot of the session's account.
func (s *Session) Account() domain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.account.Clone()
}

// Balance returns the current in-session balance.
func (s *Session) Balance() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.account.Balance
}

// Deposit credits the balance and records a deposit transaction.
func (s *Session) Deposit(amount decimal.Decimal) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != SessionOpen {
		return nil, domain.ErrSessionClosed
	}

	if err := domain.ValidateAmount(amount); err != nil {
		return nil, err
	}

	return s.recordLocked(domain.Transaction{
		Kind:   domain.TransactionDeposit,
		Amount: amount,
	}, s.account.ApplyCredit(amount)), nil
}

// Withdraw debits the balance and records a withdrawal transaction.
// An amount above the balance rejects with ErrInsufficientFunds and no
// mutation.
func (s *Session) Withdraw(amount decimal.Decimal) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != SessionOpen {
		return nil, domain.ErrSessionClosed
	}

	if err := domain.ValidateAmount(amount); err != nil {
		return nil, err
	}

	if err := s.account.ValidateDebit(amount); err != nil {
		return nil, err
	}

	return s.recordLocked(domain.Transaction{
		Kind:   domain.TransactionWithdrawal,
		Amount: amount,
	}, s.account.ApplyDebit(amount)), nil
}

// Transfer debits the balance towards a destination account number and
// records a transfer transaction. The destination is kept as an opaque
// string: it is not looked up, credited, or verified to exist.
func (s *Session) Transfer(amount decimal.Decimal, destinationAccountNumber string) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != SessionOpen {
		return nil, domain.ErrSessionClosed
	}

	if destinationAccountNumber == "" {
		return nil, domain.ErrMissingDestination
	}

	if err := domain.ValidateAmount(amount); err != nil {
		return nil, err
	}

	if err := s.account.ValidateDebit(amount); err != nil {
		return nil, err
	}

	return s.recordLocked(domain.Transaction{
		Kind:                     domain.TransactionTransfer,
		Amount:                   amount,
		DestinationAccountNumber: destinationAccountNumber,
	}, s.account.ApplyDebit(amount)), nil
}

// History returns the transaction history in chronological order. The
// returned slice is a copy, safe to re-enumerate at any time.
func (s *Session) History() []domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := make([]domain.Transaction, len(s.account.History))
	copy(history, s.account.History)
	return history
}

// Logout writes the session's balance and history back into the
// directory and closes the session. A failed write-back leaves the
// session open so the caller can retry.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != SessionOpen {
		return domain.ErrSessionClosed
	}

	if err := s.directory.WriteBack(ctx, s.account); err != nil {
		return err
	}

	s.state = SessionClosed
	return nil
}

// recordLocked applies the new balance and appends the transaction with
// its identifier and timestamp filled in.
func (s *Session) recordLocked(txn domain.Transaction, newBalance decimal.Decimal) *domain.Transaction {
	txn.ID = s.idGen.Generate()
	txn.Timestamp = time.Now().UTC()

	s.account.Balance = newBalance
	s.account.History = append(s.account.History, txn)

	return &txn
}

// SessionManager tracks open sessions so a presentation layer can
// resolve a token back to its live session.
type SessionManager struct {
	mu        sync.Mutex
	directory *Directory
	idGen     IDGenerator
	logger    zerolog.Logger
	sessions  map[string]*Session
}

// NewSessionManager creates a new SessionManager.
func NewSessionManager(directory *Directory, idGen IDGenerator, logger zerolog.Logger) *SessionManager {
	return &SessionManager{
		directory: directory,
		idGen:     idGen,
		logger:    logger,
		sessions:  make(map[string]*Session),
	}
}

// Open creates a session for an authenticated account. The account is
// the session's working copy; callers must not retain it.
func (m *SessionManager) Open(account *domain.Account) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	session := &Session{
		id:        m.idGen.Generate(),
		state:     SessionOpen,
		account:   account,
		directory: m.directory,
		idGen:     m.idGen,
	}
	m.sessions[session.id] = session

	m.logger.Debug().Str("session_id", session.id).Msg("session opened")
	return session
}

// Get resolves an open session by its identifier.
func (m *SessionManager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

// Close logs the session out and forgets it. The session stays tracked
// if the write-back fails, so a retry remains possible.
func (m *SessionManager) Close(ctx context.Context, id string) error {
	m.mu.Lock()
	session, ok := m.sessions[id]
	m.mu.Unlock()

	if !ok {
		return domain.ErrSessionNotFound
	}

	if err := session.Logout(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()

	m.logger.Debug().Str("session_id", id).Msg("session closed")
	return nil
}

// Active reports the number of open sessions.
func (m *SessionManager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
