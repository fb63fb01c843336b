package jsonstore

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/caribank/internal/domain"
)

// meta records how and when a snapshot was written, for debugging and
// future format upgrades.
type meta struct {
	Storage   string    `json:"storage"`
	Version   int       `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// persistTransaction is the serialized form of one history entry.
type persistTransaction struct {
	ID                       string          `json:"id"`
	Kind                     string          `json:"kind"`
	Amount                   decimal.Decimal `json:"amount"`
	Timestamp                time.Time       `json:"timestamp"`
	DestinationAccountNumber string          `json:"destination_account_number,omitempty"`
}

// persistAccount is the serialized form of an account. Pure data, no
// behavior, so the snapshot round-trips exactly.
type persistAccount struct {
	ID            int64                `json:"id"`
	FirstName     string               `json:"first_name"`
	LastName      string               `json:"last_name"`
	LoginName     string               `json:"login_name"`
	PasswordHash  string               `json:"password_hash"`
	Age           int                  `json:"age"`
	NationalID    string               `json:"national_id"`
	Role          string               `json:"role"`
	AccountNumber string               `json:"account_number"`
	AccountType   string               `json:"account_type"`
	Balance       decimal.Decimal      `json:"balance"`
	History       []persistTransaction `json:"history"`
}

// snapshot is the full on-disk document: metadata, the identifier
// counter, and the account collection with nested history.
type snapshot struct {
	Meta     meta             `json:"_meta"`
	NextID   int64            `json:"next_id"`
	Accounts []persistAccount `json:"accounts"`
}

func accountToPersist(a *domain.Account) persistAccount {
	history := make([]persistTransaction, len(a.History))
	for i, txn := range a.History {
		history[i] = persistTransaction{
			ID:                       txn.ID,
			Kind:                     string(txn.Kind),
			Amount:                   txn.Amount,
			Timestamp:                txn.Timestamp,
			DestinationAccountNumber: txn.DestinationAccountNumber,
		}
	}

	return persistAccount{
		ID:            a.ID,
		FirstName:     a.FirstName,
		LastName:      a.LastName,
		LoginName:     a.LoginName,
		PasswordHash:  a.PasswordHash,
		Age:           a.Age,
		NationalID:    a.NationalID,
		Role:          string(a.Role),
		AccountNumber: a.AccountNumber,
		AccountType:   string(a.AccountType),
		Balance:       a.Balance,
		History:       history,
	}
}

func accountFromPersist(p persistAccount) *domain.Account {
	history := make([]domain.Transaction, len(p.History))
	for i, txn := range p.History {
		history[i] = domain.Transaction{
			ID:                       txn.ID,
			Kind:                     domain.TransactionKind(txn.Kind),
			Amount:                   txn.Amount,
			Timestamp:                txn.Timestamp,
			DestinationAccountNumber: txn.DestinationAccountNumber,
		}
	}

	return &domain.Account{
		ID:            p.ID,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		LoginName:     p.LoginName,
		PasswordHash:  p.PasswordHash,
		Age:           p.Age,
		NationalID:    p.NationalID,
		Role:          domain.Role(p.Role),
		AccountNumber: p.AccountNumber,
		AccountType:   domain.AccountType(p.AccountType),
		Balance:       p.Balance,
		History:       history,
	}
}
