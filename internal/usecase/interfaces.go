package usecase

import (
	"context"

	"github.com/iho/caribank/internal/domain"
)

// Store persists the whole account collection as one durable unit.
// Save overwrites prior content; Load returns the collection and the next
// account identifier to allocate.
type Store interface {
	Load(ctx context.Context) (accounts []*domain.Account, nextID int64, err error)
	Save(ctx context.Context, accounts []*domain.Account, nextID int64) error
}

// AccountNumberGenerator draws candidate 8-digit account numbers.
// Uniqueness is the directory's job; the generator may collide.
type AccountNumberGenerator interface {
	Generate() string
}

// IDGenerator generates unique IDs for transaction records and sessions.
type IDGenerator interface {
	Generate() string
}
