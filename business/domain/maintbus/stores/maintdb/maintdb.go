// Package maintdb contains maintenance ticket CRUD functionality.
package maintdb

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/maintbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/order"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/page"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/ticketstatus"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
)

const selectTicket = `
	SELECT
		mt.ticket_id, mt.org_id, mt.unit_id, mt.tenant_id, mt.title,
		mt.description, mt.status, mt.priority, mt.board_position,
		mt.created_at, mt.updated_at
	FROM
		maintenance_tickets AS mt`

// Store manages the set of APIs for ticket database access.
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
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (maintbus.Storer, error) {
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

// Create inserts a new ticket into the database.
func (s *Store) Create(ctx context.Context, tkt maintbus.Ticket) error {
	const q = `
	INSERT INTO maintenance_tickets
		(ticket_id, org_id, unit_id, tenant_id, title, description, status,
		priority, board_position, created_at, updated_at)
	VALUES
		(:ticket_id, :org_id, :unit_id, :tenant_id, :title, :description, :status,
		:priority, :board_position, :created_at, :updated_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBTicket(tkt)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Update replaces a ticket document in the database.
func (s *Store) Update(ctx context.Context, tkt maintbus.Ticket) error {
	const q = `
	UPDATE
		maintenance_tickets
	SET
		title = :title,
		description = :description,
		status = :status,
		priority = :priority,
		board_position = :board_position,
		updated_at = :updated_at
	WHERE
		ticket_id = :ticket_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBTicket(tkt)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Delete removes a ticket from the database.
func (s *Store) Delete(ctx context.Context, tkt maintbus.Ticket) error {
	const q = `
	DELETE FROM
		maintenance_tickets
	WHERE
		ticket_id = :ticket_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBTicket(tkt)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Query retrieves a list of existing tickets from the database.
func (s *Store) Query(ctx context.Context, filter maintbus.QueryFilter, orderBy order.By, page page.Page) ([]maintbus.Ticket, error) {
	data := map[string]any{
		"offset":        (page.Number() - 1) * page.RowsPerPage(),
		"rows_per_page": page.RowsPerPage(),
	}

	buf := bytes.NewBufferString(selectTicket)
	applyFilter(filter, data, buf)

	orderByClause, err := orderByClause(orderBy)
	if err != nil {
		return nil, err
	}

	buf.WriteString(orderByClause)
	buf.WriteString(" OFFSET :offset ROWS FETCH NEXT :rows_per_page ROWS ONLY")

	var dbTkts []ticketDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, buf.String(), data, &dbTkts); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusTickets(dbTkts)
}

// Count returns the total number of tickets in the DB.
func (s *Store) Count(ctx context.Context, filter maintbus.QueryFilter) (int, error) {
	data := map[string]any{}

	const q = `
	SELECT
		count(1)
	FROM
		maintenance_tickets AS mt`

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

// QueryByID gets the specified ticket from the database.
func (s *Store) QueryByID(ctx context.Context, ticketID uuid.UUID) (maintbus.Ticket, error) {
	data := struct {
		ID string `db:"ticket_id"`
	}{
		ID: ticketID.String(),
	}

	q := selectTicket + `
	WHERE
		mt.ticket_id = :ticket_id`

	var dbTkt ticketDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbTkt); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return maintbus.Ticket{}, fmt.Errorf("db: %w", maintbus.ErrNotFound)
		}
		return maintbus.Ticket{}, fmt.Errorf("db: %w", err)
	}

	return toBusTicket(dbTkt)
}

// NextBoardPosition returns the next free position at the bottom of a status
// column for an organization's board.
func (s *Store) NextBoardPosition(ctx context.Context, orgID uuid.UUID, status ticketstatus.Status) (int, error) {
	data := struct {
		ID     string `db:"org_id"`
		Status string `db:"status"`
	}{
		ID:     orgID.String(),
		Status: status.String(),
	}

	const q = `
	SELECT
		COALESCE(max(board_position), 0) + 1 AS position
	FROM
		maintenance_tickets
	WHERE
		org_id = :org_id AND status = :status`

	var pos struct {
		Position int `db:"position"`
	}
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &pos); err != nil {
		return 0, fmt.Errorf("db: %w", err)
	}

	return pos.Position, nil
}
