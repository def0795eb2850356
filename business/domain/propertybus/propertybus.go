// Package propertybus provides business access to properties in the system.
package propertybus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/order"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/page"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/otel"
)

// ErrNotFound is returned when a property is not found.
var ErrNotFound = errors.New("property not found")

// Storer defines the behavior required for property persistence.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, prp Property) error
	Update(ctx context.Context, prp Property) error
	Delete(ctx context.Context, prp Property) error
	Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Property, error)
	Count(ctx context.Context, filter QueryFilter) (int, error)
	QueryByID(ctx context.Context, propertyID uuid.UUID) (Property, error)
}

// Core manages the set of APIs for property access.
type Core struct {
	log    *logger.Logger
	storer Storer
}

// NewCore constructs a core for property api access.
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

// Create adds a new property to the system.
func (c *Core) Create(ctx context.Context, np NewProperty) (Property, error) {
	ctx, span := otel.AddSpan(ctx, "business.propertybus.create")
	defer span.End()

	now := time.Now()

	prp := Property{
		ID:           uuid.New(),
		OrgID:        np.OrgID,
		Name:         np.Name,
		Address:      np.Address,
		PropertyType: np.PropertyType,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := c.storer.Create(ctx, prp); err != nil {
		return Property{}, fmt.Errorf("create: %w", err)
	}

	return prp, nil
}

// Update modifies data about a property.
func (c *Core) Update(ctx context.Context, prp Property, up UpdateProperty) (Property, error) {
	ctx, span := otel.AddSpan(ctx, "business.propertybus.update")
	defer span.End()

	if up.Name != nil {
		prp.Name = *up.Name
	}

	if up.Address != nil {
		prp.Address = *up.Address
	}

	if up.PropertyType != nil {
		prp.PropertyType = *up.PropertyType
	}

	prp.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, prp); err != nil {
		return Property{}, fmt.Errorf("update: %w", err)
	}

	return prp, nil
}

// Delete removes the specified property from the system.
func (c *Core) Delete(ctx context.Context, prp Property) error {
	ctx, span := otel.AddSpan(ctx, "business.propertybus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, prp); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Query retrieves a list of existing properties.
func (c *Core) Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Property, error) {
	ctx, span := otel.AddSpan(ctx, "business.propertybus.query")
	defer span.End()

	prps, err := c.storer.Query(ctx, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return prps, nil
}

// Count returns the total number of properties.
func (c *Core) Count(ctx context.Context, filter QueryFilter) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.propertybus.count")
	defer span.End()

	return c.storer.Count(ctx, filter)
}

// QueryByID finds the property by the specified ID.
func (c *Core) QueryByID(ctx context.Context, propertyID uuid.UUID) (Property, error) {
	ctx, span := otel.AddSpan(ctx, "business.propertybus.queryByID")
	defer span.End()

	prp, err := c.storer.QueryByID(ctx, propertyID)
	if err != nil {
		return Property{}, fmt.Errorf("query: propertyID[%s]: %w", propertyID, err)
	}

	return prp, nil
}
