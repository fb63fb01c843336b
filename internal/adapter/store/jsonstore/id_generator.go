package jsonstore

import (
	"math/rand"

	"github.com/oklog/ulid/v2"

	"github.com/iho/caribank/internal/domain"
)

// ULIDGenerator generates ULID-based IDs for transactions and sessions.
type ULIDGenerator struct{}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// Generate generates a new ULID.
func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()
}

// AccountNumberGenerator draws candidate 8-digit account numbers, each
// digit independently uniform, leading zeros allowed. Collision checks
// belong to the directory.
type AccountNumberGenerator struct{}

// NewAccountNumberGenerator creates a new AccountNumberGenerator.
func NewAccountNumberGenerator() *AccountNumberGenerator {
	return &AccountNumberGenerator{}
}

// Generate draws one account number.
func (g *AccountNumberGenerator) Generate() string {
	digits := make([]byte, domain.AccountNumberLength)
	for i := range digits {
		digits[i] = '0' + byte(rand.Intn(10))
	}
	return string(digits)
}
