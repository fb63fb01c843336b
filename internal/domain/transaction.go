package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies a balance-affecting event.
type TransactionKind string

const (
	// TransactionDeposit credits the account balance.
	TransactionDeposit TransactionKind = "deposit"

	// TransactionWithdrawal debits the account balance.
	TransactionWithdrawal TransactionKind = "withdrawal"

	// TransactionTransfer debits the account balance towards another
	// account number. The destination is recorded but never resolved,
	// credited or verified to exist.
	TransactionTransfer TransactionKind = "transfer"
)

var validTransactionKinds = map[TransactionKind]bool{
	TransactionDeposit:    true,
	TransactionWithdrawal: true,
	TransactionTransfer:   true,
}

// IsValid checks if the kind is part of the closed enumeration.
func (k TransactionKind) IsValid() bool {
	return validTransactionKinds[k]
}

// Transaction is an immutable record of one balance-affecting event.
// History is append-only; entries are never edited or removed.
type Transaction struct {
	ID                       string
	Kind                     TransactionKind
	Amount                   decimal.Decimal
	Timestamp                time.Time
	DestinationAccountNumber string
}
