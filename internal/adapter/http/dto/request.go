package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/caribank/internal/domain"
	"github.com/iho/caribank/internal/usecase"
)

// RegisterRequest represents a request to open an account.
type RegisterRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	LoginName   string `json:"login_name"`
	Age         int    `json:"age"`
	NationalID  string `json:"national_id"`
	AccountType string `json:"account_type"`
	Password    string `json:"password"`
}

// ToUseCaseInput converts to use case input.
func (r *RegisterRequest) ToUseCaseInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		LoginName:   r.LoginName,
		Password:    r.Password,
		Age:         r.Age,
		NationalID:  r.NationalID,
		AccountType: domain.AccountType(r.AccountType),
	}
}

// LoginRequest represents a request to authenticate and open a session.
type LoginRequest struct {
	NationalID string `json:"national_id"`
	Password   string `json:"password"`
}

// AmountRequest represents a deposit or withdrawal request.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// TransferRequest represents a transfer to another account.
type TransferRequest struct {
	Amount                   decimal.Decimal `json:"amount"`
	DestinationAccountNumber string          `json:"destination_account_number"`
}
