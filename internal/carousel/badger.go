// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package carousel

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

// Key layout for BadgerDB storage
const (
	routeKeyPrefix    = "route:"
	carouselKeyPrefix = "carousels:"
	routeOrderKey     = "meta:route_order"
	totalEntriesKey   = "meta:total_entries"
)

// maxConflictRetries bounds retries of a creation transaction that lost a
// write conflict.
const maxConflictRetries = 3

// BadgerStore is a Store backed by BadgerDB. Each route's carousel list is
// one value, so creation rewrites the list, the route counters and the total
// inside a single transaction.
type BadgerStore struct {
	db     *badger.DB
	owned  bool
	closed atomic.Bool
	now    func() time.Time
}

// OpenBadgerStore opens (or creates) a database at path and seeds routes
// when the database is new. An empty path opens an in-memory database.
func OpenBadgerStore(path string, routes []RouteNode) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	s, err := NewBadgerStore(db, routes)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	s.owned = true
	return s, nil
}

// NewBadgerStore wraps an open database. The caller keeps ownership of db.
func NewBadgerStore(db *badger.DB, routes []RouteNode) (*BadgerStore, error) {
	s := &BadgerStore{db: db, now: time.Now}
	if err := s.seed(routes); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *BadgerStore) seed(routes []RouteNode) error {
	return s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(routeOrderKey))
		if err == nil {
			return nil
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("read route order: %w", err)
		}

		order := make([]string, 0, len(routes))
		for i := range routes {
			if err := setJSON(txn, routeKeyPrefix+routes[i].ID, &routes[i]); err != nil {
				return err
			}
			order = append(order, routes[i].ID)
		}
		if err := setJSON(txn, routeOrderKey, order); err != nil {
			return err
		}
		return setJSON(txn, totalEntriesKey, 0)
	})
}

// Routes implements Store.
func (s *BadgerStore) Routes(_ context.Context) ([]RouteNode, error) {
	if s.closed.Load() {
		return nil, ErrStoreClosed
	}

	var routes []RouteNode
	err := s.db.View(func(txn *badger.Txn) error {
		var order []string
		if _, err := getJSON(txn, routeOrderKey, &order); err != nil {
			return err
		}
		routes = make([]RouteNode, 0, len(order))
		for _, id := range order {
			var r RouteNode
			found, err := getJSON(txn, routeKeyPrefix+id, &r)
			if err != nil {
				return err
			}
			if found {
				routes = append(routes, r)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return routes, nil
}

// Route implements Store.
func (s *BadgerStore) Route(_ context.Context, id string) (*RouteNode, error) {
	if s.closed.Load() {
		return nil, ErrStoreClosed
	}

	var r RouteNode
	err := s.db.View(func(txn *badger.Txn) error {
		found, err := getJSON(txn, routeKeyPrefix+id, &r)
		if err != nil {
			return err
		}
		if !found {
			return ErrRouteNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Carousels implements Store.
func (s *BadgerStore) Carousels(_ context.Context, routeID string) ([]Carousel, error) {
	if s.closed.Load() {
		return nil, ErrStoreClosed
	}

	var list []Carousel
	err := s.db.View(func(txn *badger.Txn) error {
		var r RouteNode
		found, err := getJSON(txn, routeKeyPrefix+routeID, &r)
		if err != nil {
			return err
		}
		if !found {
			return ErrRouteNotFound
		}
		_, err = getJSON(txn, carouselKeyPrefix+routeID, &list)
		return err
	})
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []Carousel{}
	}
	return list, nil
}

// CreateCarousel implements Store.
func (s *BadgerStore) CreateCarousel(ctx context.Context, draft *Draft, routeID string) (*Carousel, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}
	if s.closed.Load() {
		return nil, ErrStoreClosed
	}

	c := materialize(draft, routeID, s.now())

	var created Carousel
	var err error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		err = s.db.Update(func(txn *badger.Txn) error {
			var txErr error
			created, txErr = s.createInTxn(txn, c, routeID)
			return txErr
		})
		if !errors.Is(err, badger.ErrConflict) {
			break
		}
	}
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *BadgerStore) createInTxn(txn *badger.Txn, c Carousel, routeID string) (Carousel, error) {
	var route RouteNode
	found, err := getJSON(txn, routeKeyPrefix+routeID, &route)
	if err != nil {
		return Carousel{}, err
	}
	if !found {
		return Carousel{}, ErrRouteNotFound
	}

	var list []Carousel
	if _, err := getJSON(txn, carouselKeyPrefix+routeID, &list); err != nil {
		return Carousel{}, err
	}
	list = prependAndRenumber(list, c)
	if err := setJSON(txn, carouselKeyPrefix+routeID, list); err != nil {
		return Carousel{}, err
	}

	route.Count++
	if err := setJSON(txn, routeKeyPrefix+route.ID, &route); err != nil {
		return Carousel{}, err
	}

	if route.ParentID != "" {
		var parent RouteNode
		found, err := getJSON(txn, routeKeyPrefix+route.ParentID, &parent)
		if err != nil {
			return Carousel{}, err
		}
		if found {
			parent.Count++
			if err := setJSON(txn, routeKeyPrefix+parent.ID, &parent); err != nil {
				return Carousel{}, err
			}
		}
	}

	var total int
	if _, err := getJSON(txn, totalEntriesKey, &total); err != nil {
		return Carousel{}, err
	}
	if err := setJSON(txn, totalEntriesKey, total+1); err != nil {
		return Carousel{}, err
	}

	return list[0], nil
}

// TotalEntries implements Store.
func (s *BadgerStore) TotalEntries(_ context.Context) (int, error) {
	if s.closed.Load() {
		return 0, ErrStoreClosed
	}

	var total int
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := getJSON(txn, totalEntriesKey, &total)
		return err
	})
	return total, err
}

// Close implements Store. The database is closed only when the store opened
// it.
func (s *BadgerStore) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	if s.owned {
		return s.db.Close()
	}
	return nil
}

// getJSON decodes the value at key into out. It reports false when the key
// does not exist.
func getJSON(txn *badger.Txn, key string, out interface{}) (bool, error) {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, out)
	}); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func setJSON(txn *badger.Txn, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := txn.Set([]byte(key), data); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
