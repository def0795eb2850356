// Package tenantdb contains tenant ledger and portal profile CRUD
// functionality.
package tenantdb

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/tenantbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/order"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/page"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
)

const selectTenant = `
	SELECT
		t.tenant_id, t.org_id, t.property_id, t.unit_id, t.name, t.email,
		t.phone, t.lease_start, t.lease_end, t.monthly_rent, t.status,
		t.created_at, t.updated_at
	FROM
		tenants AS t`

// Store manages the set of APIs for tenant database access.
type Store struct {
	log *logger.Logger
	db  sqlx.ExtContext
}

// NewStore constructs the api for data access.
func NewStore(log *logger.Logger, db *sqlx.DB) *Store {
	return &Store{
		log: log,
		db:  db,
	}
}

// NewWithTx constructs a new Store value replacing the sqlx DB
// value with a sqlx DB value that is currently inside a transaction.
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (tenantbus.Storer, error) {
	ec, err := sqldb.GetExtContext(tx)
	if err != nil {
		return nil, err
	}

	store := Store{
		log: s.log,
		db:  ec,
	}

	return &store, nil
}

// Create inserts a new tenant ledger record into the database.
func (s *Store) Create(ctx context.Context, tnt tenantbus.Tenant) error {
	const q = `
	INSERT INTO tenants
		(tenant_id, org_id, property_id, unit_id, name, email, phone,
		lease_start, lease_end, monthly_rent, status, created_at, updated_at)
	VALUES
		(:tenant_id, :org_id, :property_id, :unit_id, :name, :email, :phone,
		:lease_start, :lease_end, :monthly_rent, :status, :created_at, :updated_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBTenant(tnt)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Update replaces a tenant ledger record in the database.
func (s *Store) Update(ctx context.Context, tnt tenantbus.Tenant) error {
	const q = `
	UPDATE
		tenants
	SET
		property_id = :property_id,
		unit_id = :unit_id,
		name = :name,
		email = :email,
		phone = :phone,
		lease_start = :lease_start,
		lease_end = :lease_end,
		monthly_rent = :monthly_rent,
		status = :status,
		updated_at = :updated_at
	WHERE
		tenant_id = :tenant_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBTenant(tnt)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Delete removes a tenant ledger record from the database.
func (s *Store) Delete(ctx context.Context, tnt tenantbus.Tenant) error {
	const q = `
	DELETE FROM
		tenants
	WHERE
		tenant_id = :tenant_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBTenant(tnt)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Query retrieves a list of existing tenant records from the database.
func (s *Store) Query(ctx context.Context, filter tenantbus.QueryFilter, orderBy order.By, page page.Page) ([]tenantbus.Tenant, error) {
	data := map[string]any{
		"offset":        (page.Number() - 1) * page.RowsPerPage(),
		"rows_per_page": page.RowsPerPage(),
	}

	buf := bytes.NewBufferString(selectTenant)
	applyFilter(filter, data, buf)

	orderByClause, err := orderByClause(orderBy)
	if err != nil {
		return nil, err
	}

	buf.WriteString(orderByClause)
	buf.WriteString(" OFFSET :offset ROWS FETCH NEXT :rows_per_page ROWS ONLY")

	var dbTnts []tenantDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, buf.String(), data, &dbTnts); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusTenants(dbTnts)
}

// Count returns the total number of tenant records in the DB.
func (s *Store) Count(ctx context.Context, filter tenantbus.QueryFilter) (int, error) {
	data := map[string]any{}

	const q = `
	SELECT
		count(1)
	FROM
		tenants AS t`

	buf := bytes.NewBufferString(q)
	applyFilter(filter, data, buf)

	var count struct {
		Count int `db:"count"`
	}
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, buf.String(), data, &count); err != nil {
		return 0, fmt.Errorf("db: %w", err)
	}

	return count.Count, nil
}

// QueryByID gets the specified tenant record from the database.
func (s *Store) QueryByID(ctx context.Context, tenantID uuid.UUID) (tenantbus.Tenant, error) {
	data := struct {
		ID string `db:"tenant_id"`
	}{
		ID: tenantID.String(),
	}

	q := selectTenant + `
	WHERE
		t.tenant_id = :tenant_id`

	var dbTnt tenantDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbTnt); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return tenantbus.Tenant{}, fmt.Errorf("db: %w", tenantbus.ErrNotFound)
		}
		return tenantbus.Tenant{}, fmt.Errorf("db: %w", err)
	}

	return toBusTenant(dbTnt)
}

// CreateProfile inserts a new portal profile into the database.
func (s *Store) CreateProfile(ctx context.Context, prf tenantbus.Profile) error {
	const q = `
	INSERT INTO tenant_profiles
		(user_id, tenant_id, tenant_code, created_at)
	VALUES
		(:user_id, :tenant_id, :tenant_code, :created_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBProfile(prf)); err != nil {
		var dupErr sqldb.ErrDBDuplicatedEntry
		if errors.As(err, &dupErr) {
			return fmt.Errorf("namedexeccontext: %w", tenantbus.ErrProfileExists)
		}
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// QueryProfileByUserID gets the portal profile for an auth user.
func (s *Store) QueryProfileByUserID(ctx context.Context, userID uuid.UUID) (tenantbus.Profile, error) {
	data := struct {
		ID string `db:"user_id"`
	}{
		ID: userID.String(),
	}

	const q = `
	SELECT
		user_id, tenant_id, tenant_code, created_at
	FROM
		tenant_profiles
	WHERE
		user_id = :user_id`

	var dbPrf profileDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbPrf); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return tenantbus.Profile{}, fmt.Errorf("db: %w", tenantbus.ErrProfileNotFound)
		}
		return tenantbus.Profile{}, fmt.Errorf("db: %w", err)
	}

	return toBusProfile(dbPrf), nil
}

// QueryProfileByTenantID gets the portal profile for a ledger record.
func (s *Store) QueryProfileByTenantID(ctx context.Context, tenantID uuid.UUID) (tenantbus.Profile, error) {
	data := struct {
		ID string `db:"tenant_id"`
	}{
		ID: tenantID.String(),
	}

	const q = `
	SELECT
		user_id, tenant_id, tenant_code, created_at
	FROM
		tenant_profiles
	WHERE
		tenant_id = :tenant_id`

	var dbPrf profileDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbPrf); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return tenantbus.Profile{}, fmt.Errorf("db: %w", tenantbus.ErrProfileNotFound)
		}
		return tenantbus.Profile{}, fmt.Errorf("db: %w", err)
	}

	return toBusProfile(dbPrf), nil
}

// Statistics aggregates the ledger for the specified organization in one
// round trip.
func (s *Store) Statistics(ctx context.Context, orgID uuid.UUID) (tenantbus.Statistics, error) {
	data := struct {
		ID string `db:"org_id"`
	}{
		ID: orgID.String(),
	}

	const q = `
	SELECT
		count(1) AS total,
		count(1) FILTER (WHERE status = 'PENDING') AS pending,
		count(1) FILTER (WHERE status = 'ACTIVE') AS active,
		count(1) FILTER (WHERE status = 'INACTIVE') AS inactive,
		count(1) FILTER (WHERE status = 'EVICTED') AS evicted,
		COALESCE(sum(monthly_rent) FILTER (WHERE status = 'ACTIVE'), 0) AS rent_roll
	FROM
		tenants
	WHERE
		org_id = :org_id`

	var dbStats statisticsDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbStats); err != nil {
		return tenantbus.Statistics{}, fmt.Errorf("db: %w", err)
	}

	return toBusStatistics(dbStats)
}
