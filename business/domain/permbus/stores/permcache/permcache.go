// Package permcache fronts the permission store with a read-through cache
// keyed by user. Grant and revoke invalidate the user's entry so a
// permission change is visible within one request.
package permcache

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/viccon/sturdyc"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/permbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
)

const (
	capacity           = 10_000
	numShards          = 10
	evictionPercentage = 10
)

// Store manages the set of APIs for permission data and caching.
type Store struct {
	log    *logger.Logger
	storer permbus.Storer
	cache  *sturdyc.Client[[]permbus.Grant]
}

// NewStore constructs the api for data and caching access.
func NewStore(log *logger.Logger, storer permbus.Storer, ttl time.Duration) *Store {
	return &Store{
		log:    log,
		storer: storer,
		cache:  sturdyc.New[[]permbus.Grant](capacity, numShards, ttl, evictionPercentage),
	}
}

// NewWithTx constructs a new Store value replacing the storer value with a
// value that is currently inside a transaction. The transactional store
// bypasses the cache.
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (permbus.Storer, error) {
	return s.storer.NewWithTx(tx)
}

// Create inserts a new grant into the database and drops the user's cached
// grant set.
func (s *Store) Create(ctx context.Context, grt permbus.Grant) error {
	if err := s.storer.Create(ctx, grt); err != nil {
		return err
	}

	s.cache.Delete(grt.UserID.String())

	return nil
}

// Delete removes a grant from the database and drops the user's cached
// grant set.
func (s *Store) Delete(ctx context.Context, grt permbus.Grant) error {
	if err := s.storer.Delete(ctx, grt); err != nil {
		return err
	}

	s.cache.Delete(grt.UserID.String())

	return nil
}

// QueryByUser lists the grants held by a user, from the cache when warm.
func (s *Store) QueryByUser(ctx context.Context, userID uuid.UUID) ([]permbus.Grant, error) {
	grts, err := s.cache.GetOrFetch(ctx, userID.String(), func(ctx context.Context) ([]permbus.Grant, error) {
		return s.storer.QueryByUser(ctx, userID)
	})
	if err != nil {
		return nil, err
	}

	return grts, nil
}
