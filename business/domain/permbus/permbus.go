// Package permbus provides business access to fine-grained permission
// grants. Permission checks fail closed: any resolution error reads as the
// permission not being held.
package permbus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/permission"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/otel"
)

// Set of errors for permission operations.
var (
	ErrNotFound      = errors.New("grant not found")
	ErrAlreadyExists = errors.New("grant already exists")
)

// Storer defines the behavior required for grant persistence.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, grt Grant) error
	Delete(ctx context.Context, grt Grant) error
	QueryByUser(ctx context.Context, userID uuid.UUID) ([]Grant, error)
}

// Core manages the set of APIs for permission access.
type Core struct {
	log    *logger.Logger
	storer Storer
}

// NewCore constructs a core for permission api access.
func NewCore(log *logger.Logger, storer Storer) *Core {
	return &Core{
		log:    log,
		storer: storer,
	}
}

// NewWithTx constructs a new Core value replacing the Storer value with a
// Storer value that is currently inside a transaction.
func (c *Core) NewWithTx(tx sqldb.CommitRollbacker) (*Core, error) {
	storer, err := c.storer.NewWithTx(tx)
	if err != nil {
		return nil, fmt.Errorf("newWithTx: %w", err)
	}

	return NewCore(c.log, storer), nil
}

// Grant gives a user the specified permission.
func (c *Core) Grant(ctx context.Context, userID uuid.UUID, perm permission.Permission, grantedBy uuid.UUID) (Grant, error) {
	ctx, span := otel.AddSpan(ctx, "business.permbus.grant")
	defer span.End()

	grt := Grant{
		UserID:     userID,
		Permission: perm,
		GrantedBy:  grantedBy,
		CreatedAt:  time.Now(),
	}

	if err := c.storer.Create(ctx, grt); err != nil {
		return Grant{}, fmt.Errorf("create: %w", err)
	}

	return grt, nil
}

// Revoke removes the specified permission from a user.
func (c *Core) Revoke(ctx context.Context, userID uuid.UUID, perm permission.Permission) error {
	ctx, span := otel.AddSpan(ctx, "business.permbus.revoke")
	defer span.End()

	grt := Grant{
		UserID:     userID,
		Permission: perm,
	}

	if err := c.storer.Delete(ctx, grt); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// QueryByUser lists the permissions held by a user.
func (c *Core) QueryByUser(ctx context.Context, userID uuid.UUID) ([]Grant, error) {
	ctx, span := otel.AddSpan(ctx, "business.permbus.queryByUser")
	defer span.End()

	grts, err := c.storer.QueryByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("query: userID[%s]: %w", userID, err)
	}

	return grts, nil
}

// Has reports whether the user holds the specified permission. Errors read
// as false so a broken store can never widen access.
func (c *Core) Has(ctx context.Context, userID uuid.UUID, perm permission.Permission) bool {
	ctx, span := otel.AddSpan(ctx, "business.permbus.has")
	defer span.End()

	grts, err := c.storer.QueryByUser(ctx, userID)
	if err != nil {
		c.log.Error(ctx, "permbus.has", "userID", userID, "err", err)
		return false
	}

	for _, grt := range grts {
		if grt.Permission.Equal(perm) {
			return true
		}
	}

	return false
}
