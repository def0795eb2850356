// Package unitdb contains unit related CRUD functionality.
package unitdb

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/unitbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/order"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/page"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
)

const selectUnit = `
	SELECT
		un.unit_id, un.property_id, un.org_id, un.unit_number, un.floor,
		un.rent, un.status, un.occupant_id, un.created_at, un.updated_at
	FROM
		units AS un`

// Store manages the set of APIs for unit database access.
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
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (unitbus.Storer, error) {
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

// Create inserts a new unit into the database.
func (s *Store) Create(ctx context.Context, unt unitbus.Unit) error {
	const q = `
	INSERT INTO units
		(unit_id, property_id, org_id, unit_number, floor, rent, status, occupant_id, created_at, updated_at)
	VALUES
		(:unit_id, :property_id, :org_id, :unit_number, :floor, :rent, :status, :occupant_id, :created_at, :updated_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBUnit(unt)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Update replaces a unit document in the database.
func (s *Store) Update(ctx context.Context, unt unitbus.Unit) error {
	const q = `
	UPDATE
		units
	SET
		unit_number = :unit_number,
		floor = :floor,
		rent = :rent,
		status = :status,
		occupant_id = :occupant_id,
		updated_at = :updated_at
	WHERE
		unit_id = :unit_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBUnit(unt)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Delete removes a unit from the database.
func (s *Store) Delete(ctx context.Context, unt unitbus.Unit) error {
	const q = `
	DELETE FROM
		units
	WHERE
		unit_id = :unit_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBUnit(unt)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Query retrieves a list of existing units from the database.
func (s *Store) Query(ctx context.Context, filter unitbus.QueryFilter, orderBy order.By, page page.Page) ([]unitbus.Unit, error) {
	data := map[string]any{
		"offset":        (page.Number() - 1) * page.RowsPerPage(),
		"rows_per_page": page.RowsPerPage(),
	}

	buf := bytes.NewBufferString(selectUnit)
	applyFilter(filter, data, buf)

	orderByClause, err := orderByClause(orderBy)
	if err != nil {
		return nil, err
	}

	buf.WriteString(orderByClause)
	buf.WriteString(" OFFSET :offset ROWS FETCH NEXT :rows_per_page ROWS ONLY")

	var dbUnts []unitDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, buf.String(), data, &dbUnts); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusUnits(dbUnts)
}

// Count returns the total number of units in the DB.
func (s *Store) Count(ctx context.Context, filter unitbus.QueryFilter) (int, error) {
	data := map[string]any{}

	const q = `
	SELECT
		count(1)
	FROM
		units AS un`

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

// QueryByID gets the specified unit from the database.
func (s *Store) QueryByID(ctx context.Context, unitID uuid.UUID) (unitbus.Unit, error) {
	data := struct {
		ID string `db:"unit_id"`
	}{
		ID: unitID.String(),
	}

	q := selectUnit + `
	WHERE
		un.unit_id = :unit_id`

	var dbUnt unitDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbUnt); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return unitbus.Unit{}, fmt.Errorf("db: %w", unitbus.ErrNotFound)
		}
		return unitbus.Unit{}, fmt.Errorf("db: %w", err)
	}

	return toBusUnit(dbUnt)
}
