// Package orgdb contains organization related CRUD functionality.
package orgdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/orgbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
)

// Store manages the set of APIs for organization database access.
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
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (orgbus.Storer, error) {
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

// Create inserts a new organization into the database.
func (s *Store) Create(ctx context.Context, org orgbus.Organization) error {
	const q = `
	INSERT INTO organizations
		(org_id, name, slug, billing_plan, enabled, created_at, updated_at)
	VALUES
		(:org_id, :name, :slug, :billing_plan, :enabled, :created_at, :updated_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBOrg(org)); err != nil {
		var dupErr sqldb.ErrDBDuplicatedEntry
		if errors.As(err, &dupErr) {
			if dupErr.Column == "slug" || dupErr.Column == "uq_organizations_slug" {
				return fmt.Errorf("namedexeccontext: %w", orgbus.ErrUniqueSlug)
			}
		}
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Update replaces an organization document in the database.
func (s *Store) Update(ctx context.Context, org orgbus.Organization) error {
	const q = `
	UPDATE
		organizations
	SET
		name = :name,
		billing_plan = :billing_plan,
		enabled = :enabled,
		updated_at = :updated_at
	WHERE
		org_id = :org_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBOrg(org)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Delete removes an organization from the database.
func (s *Store) Delete(ctx context.Context, org orgbus.Organization) error {
	const q = `
	DELETE FROM
		organizations
	WHERE
		org_id = :org_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBOrg(org)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Query retrieves the list of existing organizations from the database.
func (s *Store) Query(ctx context.Context) ([]orgbus.Organization, error) {
	const q = `
	SELECT
		org_id, name, slug, billing_plan, enabled, created_at, updated_at
	FROM
		organizations
	ORDER BY
		name`

	var dbOrgs []orgDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, q, map[string]any{}, &dbOrgs); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusOrgs(dbOrgs)
}

// QueryByID gets the specified organization from the database.
func (s *Store) QueryByID(ctx context.Context, orgID uuid.UUID) (orgbus.Organization, error) {
	data := struct {
		ID string `db:"org_id"`
	}{
		ID: orgID.String(),
	}

	const q = `
	SELECT
		org_id, name, slug, billing_plan, enabled, created_at, updated_at
	FROM
		organizations
	WHERE
		org_id = :org_id`

	var dbOrg orgDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbOrg); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return orgbus.Organization{}, fmt.Errorf("db: %w", orgbus.ErrNotFound)
		}
		return orgbus.Organization{}, fmt.Errorf("db: %w", err)
	}

	return toBusOrg(dbOrg)
}

// QueryBySlug gets the specified organization from the database by slug.
func (s *Store) QueryBySlug(ctx context.Context, slug string) (orgbus.Organization, error) {
	data := struct {
		Slug string `db:"slug"`
	}{
		Slug: slug,
	}

	const q = `
	SELECT
		org_id, name, slug, billing_plan, enabled, created_at, updated_at
	FROM
		organizations
	WHERE
		slug = :slug`

	var dbOrg orgDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbOrg); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return orgbus.Organization{}, fmt.Errorf("db: %w", orgbus.ErrNotFound)
		}
		return orgbus.Organization{}, fmt.Errorf("db: %w", err)
	}

	return toBusOrg(dbOrg)
}
