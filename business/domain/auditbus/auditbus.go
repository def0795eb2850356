// Package auditbus provides an append-only audit trail for sensitive
// actions like QR payment verification and ops console mutations.
package auditbus

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/page"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/otel"
)

// Entry represents a single audit record. Entries are never updated or
// deleted.
type Entry struct {
	ID        uuid.UUID
	ActorID   uuid.UUID
	Action    string
	Entity    string
	EntityID  string
	Notes     string
	CreatedAt time.Time
}

// NewEntry contains information needed to append an audit record.
type NewEntry struct {
	ActorID  uuid.UUID
	Action   string
	Entity   string
	EntityID string
	Notes    string
}

// QueryFilter holds the available fields a query can be filtered on.
type QueryFilter struct {
	ActorID *uuid.UUID
	Action  *string
	Entity  *string
}

// Storer defines the behavior required for audit persistence.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, ent Entry) error
	Query(ctx context.Context, filter QueryFilter, page page.Page) ([]Entry, error)
	Count(ctx context.Context, filter QueryFilter) (int, error)
}

// Core manages the set of APIs for audit access.
type Core struct {
	log    *logger.Logger
	storer Storer
}

// NewCore constructs a core for audit api access.
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

// Append adds a record to the trail.
func (c *Core) Append(ctx context.Context, ne NewEntry) (Entry, error) {
	ctx, span := otel.AddSpan(ctx, "business.auditbus.append")
	defer span.End()

	ent := Entry{
		ID:        uuid.New(),
		ActorID:   ne.ActorID,
		Action:    ne.Action,
		Entity:    ne.Entity,
		EntityID:  ne.EntityID,
		Notes:     ne.Notes,
		CreatedAt: time.Now(),
	}

	if err := c.storer.Create(ctx, ent); err != nil {
		return Entry{}, fmt.Errorf("create: %w", err)
	}

	return ent, nil
}

// Query retrieves audit records, newest first.
func (c *Core) Query(ctx context.Context, filter QueryFilter, page page.Page) ([]Entry, error) {
	ctx, span := otel.AddSpan(ctx, "business.auditbus.query")
	defer span.End()

	ents, err := c.storer.Query(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return ents, nil
}

// Count returns the total number of audit records.
func (c *Core) Count(ctx context.Context, filter QueryFilter) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.auditbus.count")
	defer span.End()

	return c.storer.Count(ctx, filter)
}
