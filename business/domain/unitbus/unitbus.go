// Package unitbus provides business access to units in the system.
package unitbus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/order"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/page"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/unitstatus"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/otel"
)

// Set of errors for unit operations.
var (
	ErrNotFound    = errors.New("unit not found")
	ErrNotVacant   = errors.New("unit is not vacant")
	ErrNotOccupied = errors.New("unit is not occupied")
)

// Storer defines the behavior required for unit persistence.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, unt Unit) error
	Update(ctx context.Context, unt Unit) error
	Delete(ctx context.Context, unt Unit) error
	Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Unit, error)
	Count(ctx context.Context, filter QueryFilter) (int, error)
	QueryByID(ctx context.Context, unitID uuid.UUID) (Unit, error)
}

// Core manages the set of APIs for unit access.
type Core struct {
	log    *logger.Logger
	storer Storer
}

// NewCore constructs a core for unit api access.
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

// Create adds a new unit to the system. Units start vacant.
func (c *Core) Create(ctx context.Context, nu NewUnit) (Unit, error) {
	ctx, span := otel.AddSpan(ctx, "business.unitbus.create")
	defer span.End()

	now := time.Now()

	unt := Unit{
		ID:         uuid.New(),
		PropertyID: nu.PropertyID,
		OrgID:      nu.OrgID,
		Number:     nu.Number,
		Floor:      nu.Floor,
		Rent:       nu.Rent,
		Status:     unitstatus.Vacant,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := c.storer.Create(ctx, unt); err != nil {
		return Unit{}, fmt.Errorf("create: %w", err)
	}

	return unt, nil
}

// Update modifies data about a unit. The occupant link is not touched here:
// use Assign and Unassign so the tenant side stays consistent.
func (c *Core) Update(ctx context.Context, unt Unit, uu UpdateUnit) (Unit, error) {
	ctx, span := otel.AddSpan(ctx, "business.unitbus.update")
	defer span.End()

	if uu.Number != nil {
		unt.Number = *uu.Number
	}

	if uu.Floor != nil {
		unt.Floor = *uu.Floor
	}

	if uu.Rent != nil {
		unt.Rent = *uu.Rent
	}

	if uu.Status != nil {
		unt.Status = *uu.Status
	}

	unt.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, unt); err != nil {
		return Unit{}, fmt.Errorf("update: %w", err)
	}

	return unt, nil
}

// Delete removes the specified unit from the system.
func (c *Core) Delete(ctx context.Context, unt Unit) error {
	ctx, span := otel.AddSpan(ctx, "business.unitbus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, unt); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Assign sets the occupant link and marks the unit occupied. The caller is
// expected to run this inside the same transaction that activates the tenant
// record so the pairing is never observable half-applied.
func (c *Core) Assign(ctx context.Context, unt Unit, tenantID uuid.UUID) (Unit, error) {
	ctx, span := otel.AddSpan(ctx, "business.unitbus.assign")
	defer span.End()

	if !unt.Status.Equal(unitstatus.Vacant) {
		return Unit{}, ErrNotVacant
	}

	unt.Status = unitstatus.Occupied
	unt.OccupantID = &tenantID
	unt.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, unt); err != nil {
		return Unit{}, fmt.Errorf("update: %w", err)
	}

	return unt, nil
}

// Unassign clears the occupant link and marks the unit vacant. Like Assign,
// this rides the caller's transaction alongside the tenant status change.
func (c *Core) Unassign(ctx context.Context, unt Unit) (Unit, error) {
	ctx, span := otel.AddSpan(ctx, "business.unitbus.unassign")
	defer span.End()

	if !unt.Status.Equal(unitstatus.Occupied) {
		return Unit{}, ErrNotOccupied
	}

	unt.Status = unitstatus.Vacant
	unt.OccupantID = nil
	unt.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, unt); err != nil {
		return Unit{}, fmt.Errorf("update: %w", err)
	}

	return unt, nil
}

// Query retrieves a list of existing units.
func (c *Core) Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Unit, error) {
	ctx, span := otel.AddSpan(ctx, "business.unitbus.query")
	defer span.End()

	unts, err := c.storer.Query(ctx, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return unts, nil
}

// Count returns the total number of units.
func (c *Core) Count(ctx context.Context, filter QueryFilter) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.unitbus.count")
	defer span.End()

	return c.storer.Count(ctx, filter)
}

// QueryByID finds the unit by the specified ID.
func (c *Core) QueryByID(ctx context.Context, unitID uuid.UUID) (Unit, error) {
	ctx, span := otel.AddSpan(ctx, "business.unitbus.queryByID")
	defer span.End()

	unt, err := c.storer.QueryByID(ctx, unitID)
	if err != nil {
		return Unit{}, fmt.Errorf("query: unitID[%s]: %w", unitID, err)
	}

	return unt, nil
}
