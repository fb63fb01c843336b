package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType is the product an account was opened as.
type AccountType string

const (
	// AccountTypeSavings is a savings account.
	AccountTypeSavings AccountType = "savings"

	// AccountTypeChecking is a checking account.
	AccountTypeChecking AccountType = "checking"
)

var validAccountTypes = map[AccountType]bool{
	AccountTypeSavings:  true,
	AccountTypeChecking: true,
}

// IsValid checks if the account type is part of the closed enumeration.
func (t AccountType) IsValid() bool {
	return validAccountTypes[t]
}

// Role represents an account's access level.
type Role string

const (
	// RoleClient is the fixed role of every self-registered account.
	RoleClient Role = "client"
)

// Account represents a registered bank customer: identity, credentials,
// balance and transaction history.
type Account struct {
	ID            int64
	FirstName     string
	LastName      string
	LoginName     string
	PasswordHash  string
	Age           int
	NationalID    string
	Role          Role
	AccountNumber string
	AccountType   AccountType
	Balance       decimal.Decimal
	History       []Transaction
}

// HolderName returns the account holder's full name.
func (a *Account) HolderName() string {
	return a.FirstName + " " + a.LastName
}

// ValidateDebit checks if the balance covers a debit of amount.
// The balance is never allowed to go negative.
func (a *Account) ValidateDebit(amount decimal.Decimal) error {
	if a.Balance.Sub(amount).IsNegative() {
		return ErrInsufficientFunds
	}
	return nil
}

// ApplyDebit returns the balance after a debit of amount.
func (a *Account) ApplyDebit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Sub(amount)
}

// ApplyCredit returns the balance after a credit of amount.
func (a *Account) ApplyCredit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Add(amount)
}

// Clone returns a deep copy of the account, including its history.
// Sessions operate on a clone so a failed write-back cannot leave the
// directory's copy half mutated.
func (a *Account) Clone() *Account {
	clone := *a
	clone.History = make([]Transaction, len(a.History))
	copy(clone.History, a.History)
	return &clone
}
