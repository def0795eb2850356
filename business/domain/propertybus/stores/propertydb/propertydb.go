// Package propertydb contains property related CRUD functionality.
package propertydb

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/propertybus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/order"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/page"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
)

// selectProperty derives the unit count so listings never go stale against
// the units table.
const selectProperty = `
	SELECT
		p.property_id, p.org_id, p.name, p.address, p.property_type,
		(SELECT count(1) FROM units AS un WHERE un.property_id = p.property_id) AS unit_count,
		p.created_at, p.updated_at
	FROM
		properties AS p`

// Store manages the set of APIs for property database access.
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
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (propertybus.Storer, error) {
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

// Create inserts a new property into the database.
func (s *Store) Create(ctx context.Context, prp propertybus.Property) error {
	const q = `
	INSERT INTO properties
		(property_id, org_id, name, address, property_type, created_at, updated_at)
	VALUES
		(:property_id, :org_id, :name, :address, :property_type, :created_at, :updated_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBProperty(prp)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Update replaces a property document in the database.
func (s *Store) Update(ctx context.Context, prp propertybus.Property) error {
	const q = `
	UPDATE
		properties
	SET
		name = :name,
		address = :address,
		property_type = :property_type,
		updated_at = :updated_at
	WHERE
		property_id = :property_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBProperty(prp)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Delete removes a property from the database.
func (s *Store) Delete(ctx context.Context, prp propertybus.Property) error {
	const q = `
	DELETE FROM
		properties
	WHERE
		property_id = :property_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBProperty(prp)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Query retrieves a list of existing properties from the database.
func (s *Store) Query(ctx context.Context, filter propertybus.QueryFilter, orderBy order.By, page page.Page) ([]propertybus.Property, error) {
	data := map[string]any{
		"offset":        (page.Number() - 1) * page.RowsPerPage(),
		"rows_per_page": page.RowsPerPage(),
	}

	buf := bytes.NewBufferString(selectProperty)
	applyFilter(filter, data, buf)

	orderByClause, err := orderByClause(orderBy)
	if err != nil {
		return nil, err
	}

	buf.WriteString(orderByClause)
	buf.WriteString(" OFFSET :offset ROWS FETCH NEXT :rows_per_page ROWS ONLY")

	var dbPrps []propertyDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, buf.String(), data, &dbPrps); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusProperties(dbPrps)
}

// Count returns the total number of properties in the DB.
func (s *Store) Count(ctx context.Context, filter propertybus.QueryFilter) (int, error) {
	data := map[string]any{}

	const q = `
	SELECT
		count(1)
	FROM
		properties AS p`

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

// QueryByID gets the specified property from the database.
func (s *Store) QueryByID(ctx context.Context, propertyID uuid.UUID) (propertybus.Property, error) {
	data := struct {
		ID string `db:"property_id"`
	}{
		ID: propertyID.String(),
	}

	q := selectProperty + `
	WHERE
		p.property_id = :property_id`

	var dbPrp propertyDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbPrp); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return propertybus.Property{}, fmt.Errorf("db: %w", propertybus.ErrNotFound)
		}
		return propertybus.Property{}, fmt.Errorf("db: %w", err)
	}

	return toBusProperty(dbPrp)
}
