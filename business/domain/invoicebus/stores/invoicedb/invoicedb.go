// Package invoicedb contains invoice and payment related CRUD functionality.
package invoicedb

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/invoicebus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/order"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/page"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
)

const selectInvoice = `
	SELECT
		i.invoice_id, i.org_id, i.tenant_id, i.description, i.amount,
		i.due_date, i.status, i.created_at, i.updated_at
	FROM
		invoices AS i`

// Store manages the set of APIs for invoice database access.
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
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (invoicebus.Storer, error) {
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

// Create inserts a new invoice into the database.
func (s *Store) Create(ctx context.Context, inv invoicebus.Invoice) error {
	const q = `
	INSERT INTO invoices
		(invoice_id, org_id, tenant_id, description, amount, due_date, status, created_at, updated_at)
	VALUES
		(:invoice_id, :org_id, :tenant_id, :description, :amount, :due_date, :status, :created_at, :updated_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBInvoice(inv)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Update replaces an invoice document in the database.
func (s *Store) Update(ctx context.Context, inv invoicebus.Invoice) error {
	const q = `
	UPDATE
		invoices
	SET
		description = :description,
		amount = :amount,
		due_date = :due_date,
		status = :status,
		updated_at = :updated_at
	WHERE
		invoice_id = :invoice_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBInvoice(inv)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Query retrieves a list of existing invoices from the database.
func (s *Store) Query(ctx context.Context, filter invoicebus.QueryFilter, orderBy order.By, page page.Page) ([]invoicebus.Invoice, error) {
	data := map[string]any{
		"offset":        (page.Number() - 1) * page.RowsPerPage(),
		"rows_per_page": page.RowsPerPage(),
	}

	buf := bytes.NewBufferString(selectInvoice)
	applyFilter(filter, data, buf)

	orderByClause, err := orderByClause(orderBy)
	if err != nil {
		return nil, err
	}

	buf.WriteString(orderByClause)
	buf.WriteString(" OFFSET :offset ROWS FETCH NEXT :rows_per_page ROWS ONLY")

	var dbInvs []invoiceDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, buf.String(), data, &dbInvs); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusInvoices(dbInvs)
}

// Count returns the total number of invoices in the DB.
func (s *Store) Count(ctx context.Context, filter invoicebus.QueryFilter) (int, error) {
	data := map[string]any{}

	const q = `
	SELECT
		count(1)
	FROM
		invoices AS i`

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

// QueryByID gets the specified invoice from the database.
func (s *Store) QueryByID(ctx context.Context, invoiceID uuid.UUID) (invoicebus.Invoice, error) {
	data := struct {
		ID string `db:"invoice_id"`
	}{
		ID: invoiceID.String(),
	}

	q := selectInvoice + `
	WHERE
		i.invoice_id = :invoice_id`

	var dbInv invoiceDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbInv); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return invoicebus.Invoice{}, fmt.Errorf("db: %w", invoicebus.ErrNotFound)
		}
		return invoicebus.Invoice{}, fmt.Errorf("db: %w", err)
	}

	return toBusInvoice(dbInv)
}

// CreatePayment inserts a new payment row into the database.
func (s *Store) CreatePayment(ctx context.Context, pay invoicebus.Payment) error {
	const q = `
	INSERT INTO payments
		(payment_id, invoice_id, amount, method, reference, recorded_by, created_at)
	VALUES
		(:payment_id, :invoice_id, :amount, :method, :reference, :recorded_by, :created_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBPayment(pay)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// QueryPayments lists the payments recorded against an invoice.
func (s *Store) QueryPayments(ctx context.Context, invoiceID uuid.UUID) ([]invoicebus.Payment, error) {
	data := struct {
		ID string `db:"invoice_id"`
	}{
		ID: invoiceID.String(),
	}

	const q = `
	SELECT
		payment_id, invoice_id, amount, method, reference, recorded_by, created_at
	FROM
		payments
	WHERE
		invoice_id = :invoice_id
	ORDER BY
		created_at`

	var dbPays []paymentDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, q, data, &dbPays); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusPayments(dbPays)
}
