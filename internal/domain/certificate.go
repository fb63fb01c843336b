package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Certificate is a read-only snapshot of an account, taken when a bank
// certificate is issued. It holds everything the rendered document needs.
type Certificate struct {
	BankName      string
	HolderName    string
	NationalID    string
	AccountNumber string
	AccountType   AccountType
	Balance       decimal.Decimal
	IssuedAt      time.Time
}
