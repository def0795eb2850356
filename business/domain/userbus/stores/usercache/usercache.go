// Package usercache contains user related CRUD functionality with a
// read-through cache in front of the real store. Mutations invalidate the
// cached entries so stale role sets never outlive a change.
package usercache

import (
	"context"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/viccon/sturdyc"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/userbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/order"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/page"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/role"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
)

const (
	capacity           = 10_000
	numShards          = 10
	evictionPercentage = 10
)

// Store manages the set of APIs for user data and caching.
type Store struct {
	log    *logger.Logger
	storer userbus.Storer
	cache  *sturdyc.Client[userbus.User]
}

// NewStore constructs the api for data and caching access.
func NewStore(log *logger.Logger, storer userbus.Storer, ttl time.Duration) *Store {
	return &Store{
		log:    log,
		storer: storer,
		cache:  sturdyc.New[userbus.User](capacity, numShards, ttl, evictionPercentage),
	}
}

// NewWithTx constructs a new Store value replacing the storer value with a
// value that is currently inside a transaction. The transactional store
// bypasses the cache: reads inside a transaction must see the
// transaction's own writes.
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (userbus.Storer, error) {
	return s.storer.NewWithTx(tx)
}

// Create inserts a new user into the database.
func (s *Store) Create(ctx context.Context, usr userbus.User) error {
	if err := s.storer.Create(ctx, usr); err != nil {
		return err
	}

	s.writeCache(usr)

	return nil
}

// Update replaces a user document in the database.
func (s *Store) Update(ctx context.Context, usr userbus.User) error {
	if err := s.storer.Update(ctx, usr); err != nil {
		return err
	}

	s.writeCache(usr)

	return nil
}

// Delete removes a user from the database.
func (s *Store) Delete(ctx context.Context, usr userbus.User) error {
	if err := s.storer.Delete(ctx, usr); err != nil {
		return err
	}

	s.deleteCache(usr)

	return nil
}

// Query retrieves a list of existing users from the database. Collection
// queries always hit the store.
func (s *Store) Query(ctx context.Context, filter userbus.QueryFilter, orderBy order.By, page page.Page) ([]userbus.User, error) {
	return s.storer.Query(ctx, filter, orderBy, page)
}

// Count returns the total number of users in the DB.
func (s *Store) Count(ctx context.Context, filter userbus.QueryFilter) (int, error) {
	return s.storer.Count(ctx, filter)
}

// QueryByID gets the specified user from the cache or falls through to the
// database.
func (s *Store) QueryByID(ctx context.Context, userID uuid.UUID) (userbus.User, error) {
	usr, err := s.cache.GetOrFetch(ctx, userID.String(), func(ctx context.Context) (userbus.User, error) {
		return s.storer.QueryByID(ctx, userID)
	})
	if err != nil {
		return userbus.User{}, err
	}

	return usr, nil
}

// QueryByEmail gets the specified user from the cache or falls through to
// the database.
func (s *Store) QueryByEmail(ctx context.Context, email mail.Address) (userbus.User, error) {
	usr, err := s.cache.GetOrFetch(ctx, email.Address, func(ctx context.Context) (userbus.User, error) {
		return s.storer.QueryByEmail(ctx, email)
	})
	if err != nil {
		return userbus.User{}, err
	}

	return usr, nil
}

// CountByRole returns the number of users holding the specified role.
func (s *Store) CountByRole(ctx context.Context, r role.Role) (int, error) {
	return s.storer.CountByRole(ctx, r)
}

// writeCache performs a cache write for the specified user under both of
// its lookup keys.
func (s *Store) writeCache(usr userbus.User) {
	s.cache.Set(usr.ID.String(), usr)
	s.cache.Set(usr.Email.Address, usr)
}

// deleteCache performs a cache delete for the specified user.
func (s *Store) deleteCache(usr userbus.User) {
	s.cache.Delete(usr.ID.String())
	s.cache.Delete(usr.Email.Address)
}
