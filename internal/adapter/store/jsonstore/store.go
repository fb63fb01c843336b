package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/caribank/internal/domain"
)

// snapshotVersion is bumped when the on-disk format changes shape.
const snapshotVersion = 1

// Store persists the account collection as a single JSON snapshot file.
// Saves write to a temp file and rename it over the snapshot, so a crash
// mid-write never leaves a truncated file.
type Store struct {
	path    string
	retrier *Retrier
	logger  zerolog.Logger
}

// New creates a Store for the snapshot at path.
func New(path string, logger zerolog.Logger) *Store {
	return &Store{
		path:    path,
		retrier: NewRetrier(logger),
		logger:  logger,
	}
}

// Load reads the snapshot into memory. A missing file is a first run,
// not an error; any other read or parse failure propagates so the
// caller can decide how to degrade.
func (s *Store) Load(ctx context.Context) ([]*domain.Account, int64, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 1, nil
		}
		return nil, 0, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	var snap snapshot
	if err := json.NewDecoder(f).Decode(&snap); err != nil {
		return nil, 0, fmt.Errorf("decode snapshot: %w", err)
	}

	accounts := make([]*domain.Account, len(snap.Accounts))
	for i, p := range snap.Accounts {
		accounts[i] = accountFromPersist(p)
	}

	return accounts, snap.NextID, nil
}

// Save serializes the full collection to the snapshot file, overwriting
// prior content. Transient filesystem failures are retried with backoff.
func (s *Store) Save(ctx context.Context, accounts []*domain.Account, nextID int64) error {
	persisted := make([]persistAccount, len(accounts))
	for i, account := range accounts {
		persisted[i] = accountToPersist(account)
	}

	snap := snapshot{
		Meta: meta{
			Storage:   "json_snapshot",
			Version:   snapshotVersion,
			Timestamp: time.Now().UTC(),
		},
		NextID:   nextID,
		Accounts: persisted,
	}

	return s.retrier.Retry(ctx, func() error {
		return s.writeSnapshot(snap)
	})
}

// writeSnapshot performs one atomic write attempt: temp file, flush,
// rename over the real snapshot.
func (s *Store) writeSnapshot(snap snapshot) error {
	tmp := s.path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close temp snapshot: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace snapshot: %w", err)
	}

	return nil
}
