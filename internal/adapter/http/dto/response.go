package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/caribank/internal/domain"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID            int64           `json:"id"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	LoginName     string          `json:"login_name"`
	Age           int             `json:"age"`
	NationalID    string          `json:"national_id"`
	AccountNumber string          `json:"account_number"`
	AccountType   string          `json:"account_type"`
	Balance       decimal.Decimal `json:"balance"`
}

// AccountFromDomain converts a domain account to a response. The password
// hash never leaves the server.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:            a.ID,
		FirstName:     a.FirstName,
		LastName:      a.LastName,
		LoginName:     a.LoginName,
		Age:           a.Age,
		NationalID:    a.NationalID,
		AccountNumber: a.AccountNumber,
		AccountType:   string(a.AccountType),
		Balance:       a.Balance,
	}
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Token    string           `json:"token"`
	Greeting string           `json:"greeting"`
	Account  *AccountResponse `json:"account"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID                       string          `json:"id"`
	Kind                     string          `json:"kind"`
	Amount                   decimal.Decimal `json:"amount"`
	Timestamp                time.Time       `json:"timestamp"`
	DestinationAccountNumber string          `json:"destination_account_number,omitempty"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                       t.ID,
		Kind:                     string(t.Kind),
		Amount:                   t.Amount,
		Timestamp:                t.Timestamp,
		DestinationAccountNumber: t.DestinationAccountNumber,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(txns []domain.Transaction) []TransactionResponse {
	result := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// CertificateResponse represents an issued balance certificate.
type CertificateResponse struct {
	BankName      string          `json:"bank_name"`
	HolderName    string          `json:"holder_name"`
	NationalID    string          `json:"national_id"`
	AccountNumber string          `json:"account_number"`
	AccountType   string          `json:"account_type"`
	Balance       decimal.Decimal `json:"balance"`
	IssuedAt      time.Time       `json:"issued_at"`
	Document      string          `json:"document"`
}

// CertificateFromDomain converts a domain certificate and its rendered
// document to a response.
func CertificateFromDomain(c *domain.Certificate, document string) *CertificateResponse {
	return &CertificateResponse{
		BankName:      c.BankName,
		HolderName:    c.HolderName,
		NationalID:    c.NationalID,
		AccountNumber: c.AccountNumber,
		AccountType:   string(c.AccountType),
		Balance:       c.Balance,
		IssuedAt:      c.IssuedAt,
		Document:      document,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
