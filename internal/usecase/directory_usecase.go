package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/iho/caribank/internal/domain"
)

// Directory owns the full set of accounts: validation of new-account
// input, account-number allocation, authentication, and durable
// load/save of the whole collection through a Store.
type Directory struct {
	mu       sync.Mutex
	store    Store
	numGen   AccountNumberGenerator
	logger   zerolog.Logger
	accounts []*domain.Account
	nextID   int64
}

// NewDirectory creates an empty Directory. Call Load to restore the
// persisted collection.
func NewDirectory(store Store, numGen AccountNumberGenerator, logger zerolog.Logger) *Directory {
	return &Directory{
		store:  store,
		numGen: numGen,
		logger: logger,
		nextID: 1,
	}
}

// Load restores the persisted collection into memory. A missing or
// corrupt store degrades to an empty collection; the failure is logged
// and never propagated, and nothing is written back until the next
// successful mutation.
func (d *Directory) Load(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	accounts, nextID, err := d.store.Load(ctx)
	if err != nil {
		d.logger.Warn().Err(err).Msg("store unreadable, starting with empty directory")
		d.accounts = nil
		d.nextID = 1
		return
	}

	if nextID < 1 {
		// Older snapshots carried no counter; recover past the highest
		// identifier seen so allocation stays monotonic.
		for _, account := range accounts {
			if account.ID >= nextID {
				nextID = account.ID + 1
			}
		}
		if nextID < 1 {
			nextID = 1
		}
	}

	d.accounts = accounts
	d.nextID = nextID
	d.logger.Info().Int("accounts", len(accounts)).Int64("next_id", nextID).Msg("directory loaded")
}

// RegisterInput represents input for registering an account.
type RegisterInput struct {
	FirstName   string
	LastName    string
	LoginName   string
	Password    string
	Age         int
	NationalID  string
	AccountType domain.AccountType
}

// Register validates the input, allocates an account number, hashes the
// password, appends the new account to the collection and persists it.
// The first failing rule wins. Registration either fully succeeds or has
// no effect: a failed save rolls the in-memory append back.
func (d *Directory) Register(ctx context.Context, input RegisterInput) (*domain.Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := domain.ValidateAge(input.Age); err != nil {
		return nil, err
	}

	if err := domain.ValidateNationalID(input.NationalID); err != nil {
		return nil, err
	}

	if err := domain.ValidateHolderName(input.FirstName); err != nil {
		return nil, err
	}

	if err := domain.ValidateHolderName(input.LastName); err != nil {
		return nil, err
	}

	if d.findByNationalIDLocked(input.NationalID) != nil {
		return nil, domain.ErrDuplicateNationalID
	}

	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	if !input.AccountType.IsValid() {
		return nil, domain.ErrInvalidAccountType
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &domain.Account{
		ID:            d.nextID,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		LoginName:     input.LoginName,
		PasswordHash:  hash,
		Age:           input.Age,
		NationalID:    input.NationalID,
		Role:          domain.RoleClient,
		AccountNumber: d.allocateNumberLocked(),
		AccountType:   input.AccountType,
		Balance:       decimal.Zero,
	}

	d.accounts = append(d.accounts, account)
	d.nextID++

	if err := d.persistLocked(ctx); err != nil {
		d.accounts = d.accounts[:len(d.accounts)-1]
		d.nextID--
		return nil, fmt.Errorf("persist registration: %w", err)
	}

	d.logger.Info().
		Int64("id", account.ID).
		Str("account_number", account.AccountNumber).
		Str("account_type", string(account.AccountType)).
		Msg("account registered")

	return account.Clone(), nil
}

// Authenticate compares the supplied password against the stored hash of
// the account whose national id matches. It never reveals whether the
// national id or the password was wrong.
func (d *Directory) Authenticate(ctx context.Context, nationalID, password string) (*domain.Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	account := d.findByNationalIDLocked(nationalID)
	if account == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := verifyPassword(account.PasswordHash, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return account.Clone(), nil
}

// WriteBack copies a session's balance and history into the stored
// account and persists the collection. A failed save restores the prior
// state so the directory never holds unpersisted changes.
func (d *Directory) WriteBack(ctx context.Context, account *domain.Account) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	stored := d.findByNationalIDLocked(account.NationalID)
	if stored == nil {
		return domain.ErrAccountNotFound
	}

	prevBalance := stored.Balance
	prevHistory := stored.History

	stored.Balance = account.Balance
	stored.History = make([]domain.Transaction, len(account.History))
	copy(stored.History, account.History)

	if err := d.persistLocked(ctx); err != nil {
		stored.Balance = prevBalance
		stored.History = prevHistory
		return fmt.Errorf("persist session state: %w", err)
	}

	return nil
}

// Count reports the number of registered accounts.
func (d *Directory) Count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.accounts)
}

// Lookup returns a copy of the account with the given national id.
func (d *Directory) Lookup(nationalID string) (*domain.Account, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	account := d.findByNationalIDLocked(nationalID)
	if account == nil {
		return nil, false
	}
	return account.Clone(), true
}

func (d *Directory) findByNationalIDLocked(nationalID string) *domain.Account {
	for _, account := range d.accounts {
		if account.NationalID == nationalID {
			return account
		}
	}
	return nil
}

// allocateNumberLocked draws account numbers until one collides with no
// existing account.
func (d *Directory) allocateNumberLocked() string {
	for {
		number := d.numGen.Generate()
		taken := false
		for _, account := range d.accounts {
			if account.AccountNumber == number {
				taken = true
				break
			}
		}
		if !taken {
			return number
		}
	}
}

func (d *Directory) persistLocked(ctx context.Context) error {
	return d.store.Save(ctx, d.accounts, d.nextID)
}

// hashPassword hashes a password using bcrypt.
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// verifyPassword verifies a password against a hash.
func verifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
