// Package tenantbus provides business access to the tenant ledger and the
// portal profiles that link ledger records to auth users.
package tenantbus

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/order"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/page"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/tenantstatus"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/otel"
)

// Set of errors for tenant operations.
var (
	ErrNotFound        = errors.New("tenant not found")
	ErrProfileNotFound = errors.New("tenant profile not found")
	ErrProfileExists   = errors.New("tenant already has a portal profile")
)

// Storer defines the behavior required for tenant persistence.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, tnt Tenant) error
	Update(ctx context.Context, tnt Tenant) error
	Delete(ctx context.Context, tnt Tenant) error
	Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Tenant, error)
	Count(ctx context.Context, filter QueryFilter) (int, error)
	QueryByID(ctx context.Context, tenantID uuid.UUID) (Tenant, error)
	CreateProfile(ctx context.Context, prf Profile) error
	QueryProfileByUserID(ctx context.Context, userID uuid.UUID) (Profile, error)
	QueryProfileByTenantID(ctx context.Context, tenantID uuid.UUID) (Profile, error)
	Statistics(ctx context.Context, orgID uuid.UUID) (Statistics, error)
	CreateFamilyMember(ctx context.Context, fm FamilyMember) error
	DeleteFamilyMember(ctx context.Context, tenantID uuid.UUID, memberID uuid.UUID) error
	QueryFamilyMembers(ctx context.Context, tenantID uuid.UUID) ([]FamilyMember, error)
	CreateDocument(ctx context.Context, doc Document) error
	QueryDocuments(ctx context.Context, tenantID uuid.UUID) ([]Document, error)
	CreateMeterReading(ctx context.Context, mr MeterReading) error
	QueryMeterReadings(ctx context.Context, tenantID uuid.UUID) ([]MeterReading, error)
}

// Core manages the set of APIs for tenant access.
type Core struct {
	log    *logger.Logger
	storer Storer
}

// NewCore constructs a core for tenant api access.
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

// Create adds a new tenant record to the ledger. Records start pending until
// a unit is assigned.
func (c *Core) Create(ctx context.Context, nt NewTenant) (Tenant, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.create")
	defer span.End()

	now := time.Now()

	tnt := Tenant{
		ID:          uuid.New(),
		OrgID:       nt.OrgID,
		Name:        nt.Name,
		Email:       nt.Email,
		Phone:       nt.Phone,
		LeaseStart:  nt.LeaseStart,
		LeaseEnd:    nt.LeaseEnd,
		MonthlyRent: nt.MonthlyRent,
		Status:      tenantstatus.Pending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := c.storer.Create(ctx, tnt); err != nil {
		return Tenant{}, fmt.Errorf("create: %w", err)
	}

	return tnt, nil
}

// Update modifies data about a tenant record.
func (c *Core) Update(ctx context.Context, tnt Tenant, ut UpdateTenant) (Tenant, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.update")
	defer span.End()

	if ut.Name != nil {
		tnt.Name = *ut.Name
	}

	if ut.Email != nil {
		tnt.Email = *ut.Email
	}

	if ut.Phone != nil {
		tnt.Phone = *ut.Phone
	}

	if ut.LeaseStart != nil {
		tnt.LeaseStart = *ut.LeaseStart
	}

	if ut.LeaseEnd != nil {
		tnt.LeaseEnd = *ut.LeaseEnd
	}

	if ut.MonthlyRent != nil {
		tnt.MonthlyRent = *ut.MonthlyRent
	}

	if ut.Status != nil {
		tnt.Status = *ut.Status
	}

	tnt.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, tnt); err != nil {
		return Tenant{}, fmt.Errorf("update: %w", err)
	}

	return tnt, nil
}

// Delete removes the specified tenant record from the system.
func (c *Core) Delete(ctx context.Context, tnt Tenant) error {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, tnt); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Attach records the unit occupancy on the ledger side and activates the
// tenant. Runs inside the caller's transaction together with unitbus.Assign.
func (c *Core) Attach(ctx context.Context, tnt Tenant, propertyID uuid.UUID, unitID uuid.UUID) (Tenant, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.attach")
	defer span.End()

	tnt.PropertyID = &propertyID
	tnt.UnitID = &unitID
	tnt.Status = tenantstatus.Active
	tnt.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, tnt); err != nil {
		return Tenant{}, fmt.Errorf("update: %w", err)
	}

	return tnt, nil
}

// Detach clears the unit occupancy and deactivates the tenant. Runs inside
// the caller's transaction together with unitbus.Unassign.
func (c *Core) Detach(ctx context.Context, tnt Tenant) (Tenant, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.detach")
	defer span.End()

	tnt.PropertyID = nil
	tnt.UnitID = nil
	tnt.Status = tenantstatus.Inactive
	tnt.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, tnt); err != nil {
		return Tenant{}, fmt.Errorf("update: %w", err)
	}

	return tnt, nil
}

// Query retrieves a list of existing tenant records.
func (c *Core) Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Tenant, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.query")
	defer span.End()

	tnts, err := c.storer.Query(ctx, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return tnts, nil
}

// Count returns the total number of tenant records.
func (c *Core) Count(ctx context.Context, filter QueryFilter) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.count")
	defer span.End()

	return c.storer.Count(ctx, filter)
}

// QueryByID finds the tenant record by the specified ID.
func (c *Core) QueryByID(ctx context.Context, tenantID uuid.UUID) (Tenant, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.queryByID")
	defer span.End()

	tnt, err := c.storer.QueryByID(ctx, tenantID)
	if err != nil {
		return Tenant{}, fmt.Errorf("query: tenantID[%s]: %w", tenantID, err)
	}

	return tnt, nil
}

// CreateProfile links an auth user to a tenant ledger record, generating the
// tenant code. The caller runs this in the same transaction that creates the
// auth user and grants the tenant role.
func (c *Core) CreateProfile(ctx context.Context, userID uuid.UUID, tenantID uuid.UUID) (Profile, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.createProfile")
	defer span.End()

	prf := Profile{
		UserID:     userID,
		TenantID:   tenantID,
		TenantCode: generateTenantCode(),
		CreatedAt:  time.Now(),
	}

	if err := c.storer.CreateProfile(ctx, prf); err != nil {
		return Profile{}, fmt.Errorf("createprofile: %w", err)
	}

	return prf, nil
}

// QueryProfileByUserID finds the portal profile for the specified auth user.
func (c *Core) QueryProfileByUserID(ctx context.Context, userID uuid.UUID) (Profile, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.queryProfileByUserID")
	defer span.End()

	prf, err := c.storer.QueryProfileByUserID(ctx, userID)
	if err != nil {
		return Profile{}, fmt.Errorf("query: userID[%s]: %w", userID, err)
	}

	return prf, nil
}

// QueryProfileByTenantID finds the portal profile for the specified ledger
// record.
func (c *Core) QueryProfileByTenantID(ctx context.Context, tenantID uuid.UUID) (Profile, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.queryProfileByTenantID")
	defer span.End()

	prf, err := c.storer.QueryProfileByTenantID(ctx, tenantID)
	if err != nil {
		return Profile{}, fmt.Errorf("query: tenantID[%s]: %w", tenantID, err)
	}

	return prf, nil
}

// Statistics summarizes the ledger for the specified organization.
func (c *Core) Statistics(ctx context.Context, orgID uuid.UUID) (Statistics, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.statistics")
	defer span.End()

	stats, err := c.storer.Statistics(ctx, orgID)
	if err != nil {
		return Statistics{}, fmt.Errorf("statistics: orgID[%s]: %w", orgID, err)
	}

	return stats, nil
}

// generateTenantCode produces a code in the form TEN-XXXXXXXX. Uniqueness is
// enforced by the database constraint on the column.
func generateTenantCode() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "TEN-" + id[:8]
}
