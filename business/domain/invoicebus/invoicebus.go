// Package invoicebus provides business access to invoices and the payments
// recorded against them.
package invoicebus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/order"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/page"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/invoicestatus"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/otel"
)

// Set of errors for invoice operations.
var (
	ErrNotFound          = errors.New("invoice not found")
	ErrInvalidTransition = errors.New("invalid invoice status transition")
)

// Storer defines the behavior required for invoice persistence.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, inv Invoice) error
	Update(ctx context.Context, inv Invoice) error
	Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Invoice, error)
	Count(ctx context.Context, filter QueryFilter) (int, error)
	QueryByID(ctx context.Context, invoiceID uuid.UUID) (Invoice, error)
	CreatePayment(ctx context.Context, pay Payment) error
	QueryPayments(ctx context.Context, invoiceID uuid.UUID) ([]Payment, error)
}

// Core manages the set of APIs for invoice access.
type Core struct {
	log    *logger.Logger
	storer Storer
}

// NewCore constructs a core for invoice api access.
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

// Create raises a new invoice in pending state.
func (c *Core) Create(ctx context.Context, ni NewInvoice) (Invoice, error) {
	ctx, span := otel.AddSpan(ctx, "business.invoicebus.create")
	defer span.End()

	now := time.Now()

	inv := Invoice{
		ID:          uuid.New(),
		OrgID:       ni.OrgID,
		TenantID:    ni.TenantID,
		Description: ni.Description,
		Amount:      ni.Amount,
		DueDate:     ni.DueDate,
		Status:      invoicestatus.Pending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := c.storer.Create(ctx, inv); err != nil {
		return Invoice{}, fmt.Errorf("create: %w", err)
	}

	return inv, nil
}

// Update modifies the billable fields of an invoice. Status changes go
// through Transition so the lifecycle rules hold.
func (c *Core) Update(ctx context.Context, inv Invoice, ui UpdateInvoice) (Invoice, error) {
	ctx, span := otel.AddSpan(ctx, "business.invoicebus.update")
	defer span.End()

	if ui.Description != nil {
		inv.Description = *ui.Description
	}

	if ui.Amount != nil {
		inv.Amount = *ui.Amount
	}

	if ui.DueDate != nil {
		inv.DueDate = *ui.DueDate
	}

	inv.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, inv); err != nil {
		return Invoice{}, fmt.Errorf("update: %w", err)
	}

	return inv, nil
}

// Transition moves an invoice to a new lifecycle state, rejecting moves the
// state machine does not allow. Paid and cancelled are terminal; overdue is
// reachable only from pending.
func (c *Core) Transition(ctx context.Context, inv Invoice, to invoicestatus.Status) (Invoice, error) {
	ctx, span := otel.AddSpan(ctx, "business.invoicebus.transition")
	defer span.End()

	if !inv.Status.CanTransition(to) {
		return Invoice{}, fmt.Errorf("%s -> %s: %w", inv.Status, to, ErrInvalidTransition)
	}

	inv.Status = to
	inv.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, inv); err != nil {
		return Invoice{}, fmt.Errorf("update: %w", err)
	}

	return inv, nil
}

// RecordPayment stores a payment row and marks the invoice paid. Both writes
// ride the caller's transaction.
func (c *Core) RecordPayment(ctx context.Context, inv Invoice, np NewPayment) (Payment, error) {
	ctx, span := otel.AddSpan(ctx, "business.invoicebus.recordPayment")
	defer span.End()

	if !inv.Status.CanTransition(invoicestatus.Paid) {
		return Payment{}, fmt.Errorf("%s -> %s: %w", inv.Status, invoicestatus.Paid, ErrInvalidTransition)
	}

	pay := Payment{
		ID:         uuid.New(),
		InvoiceID:  inv.ID,
		Amount:     np.Amount,
		Method:     np.Method,
		Reference:  np.Reference,
		RecordedBy: np.RecordedBy,
		CreatedAt:  time.Now(),
	}

	if err := c.storer.CreatePayment(ctx, pay); err != nil {
		return Payment{}, fmt.Errorf("createpayment: %w", err)
	}

	inv.Status = invoicestatus.Paid
	inv.UpdatedAt = pay.CreatedAt

	if err := c.storer.Update(ctx, inv); err != nil {
		return Payment{}, fmt.Errorf("update: %w", err)
	}

	return pay, nil
}

// Query retrieves a list of existing invoices.
func (c *Core) Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Invoice, error) {
	ctx, span := otel.AddSpan(ctx, "business.invoicebus.query")
	defer span.End()

	invs, err := c.storer.Query(ctx, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return invs, nil
}

// Count returns the total number of invoices.
func (c *Core) Count(ctx context.Context, filter QueryFilter) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.invoicebus.count")
	defer span.End()

	return c.storer.Count(ctx, filter)
}

// QueryByID finds the invoice by the specified ID.
func (c *Core) QueryByID(ctx context.Context, invoiceID uuid.UUID) (Invoice, error) {
	ctx, span := otel.AddSpan(ctx, "business.invoicebus.queryByID")
	defer span.End()

	inv, err := c.storer.QueryByID(ctx, invoiceID)
	if err != nil {
		return Invoice{}, fmt.Errorf("query: invoiceID[%s]: %w", invoiceID, err)
	}

	return inv, nil
}

// QueryPayments lists the payments recorded against an invoice.
func (c *Core) QueryPayments(ctx context.Context, invoiceID uuid.UUID) ([]Payment, error) {
	ctx, span := otel.AddSpan(ctx, "business.invoicebus.queryPayments")
	defer span.End()

	pays, err := c.storer.QueryPayments(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("querypayments: invoiceID[%s]: %w", invoiceID, err)
	}

	return pays, nil
}
