// Package orgbus provides business access to organizations, the tenant
// isolation boundary of the system.
package orgbus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/otel"
)

var (
	ErrNotFound   = errors.New("organization not found")
	ErrUniqueSlug = errors.New("slug is not unique")
)

// Storer defines the behavior required for organization persistence.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, org Organization) error
	Update(ctx context.Context, org Organization) error
	Delete(ctx context.Context, org Organization) error
	Query(ctx context.Context) ([]Organization, error)
	QueryByID(ctx context.Context, orgID uuid.UUID) (Organization, error)
	QueryBySlug(ctx context.Context, slug string) (Organization, error)
}

// Core manages the set of APIs for organization access.
type Core struct {
	log    *logger.Logger
	storer Storer
}

// NewCore constructs a core for organization api access.
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

// Create adds a new organization to the system.
func (c *Core) Create(ctx context.Context, no NewOrganization) (Organization, error) {
	ctx, span := otel.AddSpan(ctx, "business.orgbus.create")
	defer span.End()

	now := time.Now()

	org := Organization{
		ID:          uuid.New(),
		Name:        no.Name,
		Slug:        no.Slug,
		BillingPlan: no.BillingPlan,
		Enabled:     true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := c.storer.Create(ctx, org); err != nil {
		return Organization{}, fmt.Errorf("create: %w", err)
	}

	return org, nil
}

// Update modifies data about an organization.
func (c *Core) Update(ctx context.Context, org Organization, uo UpdateOrganization) (Organization, error) {
	ctx, span := otel.AddSpan(ctx, "business.orgbus.update")
	defer span.End()

	if uo.Name != nil {
		org.Name = *uo.Name
	}

	if uo.BillingPlan != nil {
		org.BillingPlan = *uo.BillingPlan
	}

	if uo.Enabled != nil {
		org.Enabled = *uo.Enabled
	}

	org.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, org); err != nil {
		return Organization{}, fmt.Errorf("update: %w", err)
	}

	return org, nil
}

// Delete removes the specified organization from the system.
func (c *Core) Delete(ctx context.Context, org Organization) error {
	ctx, span := otel.AddSpan(ctx, "business.orgbus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, org); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Query retrieves the list of organizations.
func (c *Core) Query(ctx context.Context) ([]Organization, error) {
	ctx, span := otel.AddSpan(ctx, "business.orgbus.query")
	defer span.End()

	orgs, err := c.storer.Query(ctx)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return orgs, nil
}

// QueryByID finds the organization by the specified ID.
func (c *Core) QueryByID(ctx context.Context, orgID uuid.UUID) (Organization, error) {
	ctx, span := otel.AddSpan(ctx, "business.orgbus.queryByID")
	defer span.End()

	org, err := c.storer.QueryByID(ctx, orgID)
	if err != nil {
		return Organization{}, fmt.Errorf("query: orgID[%s]: %w", orgID, err)
	}

	return org, nil
}

// QueryBySlug finds the organization by the specified slug.
func (c *Core) QueryBySlug(ctx context.Context, slug string) (Organization, error) {
	ctx, span := otel.AddSpan(ctx, "business.orgbus.queryBySlug")
	defer span.End()

	org, err := c.storer.QueryBySlug(ctx, slug)
	if err != nil {
		return Organization{}, fmt.Errorf("query: slug[%s]: %w", slug, err)
	}

	return org, nil
}
