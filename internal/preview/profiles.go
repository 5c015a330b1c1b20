// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package preview

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/curator/internal/recommend"
)

var (
	// ErrProfileNotFound is returned when no profile is saved for a user.
	ErrProfileNotFound = errors.New("saved profile not found")

	// ErrProfileStoreClosed is returned by operations on a closed store.
	ErrProfileStoreClosed = errors.New("profile store is closed")
)

// Profile store types
const (
	ProfileStoreMemory = "memory"
	ProfileStoreBadger = "badger"
)

const profileKeyPrefix = "profile:"

// SavedProfile is a preview profile merchandisers keep between sessions,
// keyed by UserID.
type SavedProfile struct {
	recommend.PreviewProfile

	// Label is a display name such as "KSA premium viewer".
	Label string `json:"label,omitempty"`

	// DefaultPageID is used when a session is loaded without a page.
	DefaultPageID string `json:"defaultPageId,omitempty"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// ProfileStore persists saved preview profiles.
type ProfileStore interface {
	// Get returns the profile saved for userID.
	Get(ctx context.Context, userID string) (*SavedProfile, error)

	// List returns every saved profile ordered by UserID.
	List(ctx context.Context) ([]SavedProfile, error)

	// Save inserts or replaces the profile for p.UserID.
	Save(ctx context.Context, p *SavedProfile) error

	// Delete removes the profile for userID.
	Delete(ctx context.Context, userID string) error

	// Close releases resources.
	Close() error
}

// ProfileConfig selects the profile store.
type ProfileConfig struct {
	// Type is memory or badger.
	// Default: memory
	Type string `koanf:"type"`

	// Path is the BadgerDB directory. It must differ from the carousel
	// store path. Empty opens an in-memory database.
	Path string `koanf:"path"`
}

// DefaultProfileConfig returns the default profile store configuration.
func DefaultProfileConfig() ProfileConfig {
	return ProfileConfig{Type: ProfileStoreMemory}
}

// Validate checks the configuration.
func (c *ProfileConfig) Validate() error {
	switch c.Type {
	case ProfileStoreMemory, ProfileStoreBadger:
		return nil
	default:
		return fmt.Errorf("profiles type must be %q or %q, got %q", ProfileStoreMemory, ProfileStoreBadger, c.Type)
	}
}

// NewProfileStore builds the configured profile store.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewProfileStore(cfg ProfileConfig, logger zerolog.Logger) (ProfileStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger = logger.With().Str("component", "profile-store").Logger()

	if cfg.Type == ProfileStoreBadger {
		s, err := OpenBadgerProfileStore(cfg.Path)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("path", cfg.Path).Bool("in_memory", cfg.Path == "").Msg("badger profile store opened")
		return s, nil
	}
	logger.Info().Msg("memory profile store initialized")
	return NewMemoryProfileStore(), nil
}

func checkSavedProfile(p *SavedProfile) error {
	if p == nil || p.UserID == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidProfile)
	}
	return nil
}

// MemoryProfileStore is a process-local ProfileStore.
type MemoryProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]SavedProfile
	closed   bool
}

// NewMemoryProfileStore creates an empty store.
func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{profiles: make(map[string]SavedProfile)}
}

// Get implements ProfileStore.
func (s *MemoryProfileStore) Get(_ context.Context, userID string) (*SavedProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrProfileStoreClosed
	}
	p, ok := s.profiles[userID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, userID)
	}
	return &p, nil
}

// List implements ProfileStore.
func (s *MemoryProfileStore) List(_ context.Context) ([]SavedProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrProfileStoreClosed
	}
	out := make([]SavedProfile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

// Save implements ProfileStore.
func (s *MemoryProfileStore) Save(_ context.Context, p *SavedProfile) error {
	if err := checkSavedProfile(p); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrProfileStoreClosed
	}
	s.profiles[p.UserID] = *p
	return nil
}

// Delete implements ProfileStore.
func (s *MemoryProfileStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrProfileStoreClosed
	}
	if _, ok := s.profiles[userID]; !ok {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, userID)
	}
	delete(s.profiles, userID)
	return nil
}

// Close implements ProfileStore.
func (s *MemoryProfileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// BadgerProfileStore is a ProfileStore backed by BadgerDB, one key per
// profile under the "profile:" prefix.
type BadgerProfileStore struct {
	db     *badger.DB
	closed atomic.Bool
}

// OpenBadgerProfileStore opens (or creates) a database at path. An empty
// path opens an in-memory database.
func OpenBadgerProfileStore(path string) (*BadgerProfileStore, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerProfileStore{db: db}, nil
}

// Get implements ProfileStore.
func (s *BadgerProfileStore) Get(_ context.Context, userID string) (*SavedProfile, error) {
	if s.closed.Load() {
		return nil, ErrProfileStoreClosed
	}

	var p SavedProfile
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(profileKeyPrefix + userID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrProfileNotFound, userID)
		}
		if err != nil {
			return fmt.Errorf("get profile %s: %w", userID, err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &p)
		})
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List implements ProfileStore. Keys iterate in byte order, so the result
// is ordered by UserID.
func (s *BadgerProfileStore) List(_ context.Context) ([]SavedProfile, error) {
	if s.closed.Load() {
		return nil, ErrProfileStoreClosed
	}

	out := []SavedProfile{}
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(profileKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var p SavedProfile
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &p)
			}); err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			out = append(out, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Save implements ProfileStore.
func (s *BadgerProfileStore) Save(_ context.Context, p *SavedProfile) error {
	if err := checkSavedProfile(p); err != nil {
		return err
	}
	if s.closed.Load() {
		return ErrProfileStoreClosed
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile %s: %w", p.UserID, err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(profileKeyPrefix+p.UserID), data)
	})
}

// Delete implements ProfileStore.
func (s *BadgerProfileStore) Delete(_ context.Context, userID string) error {
	if s.closed.Load() {
		return ErrProfileStoreClosed
	}
	return s.db.Update(func(txn *badger.Txn) error {
		key := []byte(profileKeyPrefix + userID)
		if _, err := txn.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: %s", ErrProfileNotFound, userID)
			}
			return err
		}
		return txn.Delete(key)
	})
}

// Close implements ProfileStore.
func (s *BadgerProfileStore) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.db.Close()
}
