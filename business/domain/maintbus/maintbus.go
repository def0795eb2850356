// Package maintbus provides business access to maintenance tickets.
package maintbus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/order"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/page"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/ticketstatus"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/otel"
)

// ErrNotFound is returned when a ticket is not found.
var ErrNotFound = errors.New("ticket not found")

// Storer defines the behavior required for ticket persistence.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, tkt Ticket) error
	Update(ctx context.Context, tkt Ticket) error
	Delete(ctx context.Context, tkt Ticket) error
	Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Ticket, error)
	Count(ctx context.Context, filter QueryFilter) (int, error)
	QueryByID(ctx context.Context, ticketID uuid.UUID) (Ticket, error)
	NextBoardPosition(ctx context.Context, orgID uuid.UUID, status ticketstatus.Status) (int, error)
}

// Core manages the set of APIs for ticket access.
type Core struct {
	log    *logger.Logger
	storer Storer
}

// NewCore constructs a core for ticket api access.
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

// Create opens a new ticket at the bottom of the open column.
func (c *Core) Create(ctx context.Context, nt NewTicket) (Ticket, error) {
	ctx, span := otel.AddSpan(ctx, "business.maintbus.create")
	defer span.End()

	pos, err := c.storer.NextBoardPosition(ctx, nt.OrgID, ticketstatus.Open)
	if err != nil {
		return Ticket{}, fmt.Errorf("nextboardposition: %w", err)
	}

	now := time.Now()

	tkt := Ticket{
		ID:            uuid.New(),
		OrgID:         nt.OrgID,
		UnitID:        nt.UnitID,
		TenantID:      nt.TenantID,
		Title:         nt.Title,
		Description:   nt.Description,
		Status:        ticketstatus.Open,
		Priority:      nt.Priority,
		BoardPosition: pos,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := c.storer.Create(ctx, tkt); err != nil {
		return Ticket{}, fmt.Errorf("create: %w", err)
	}

	return tkt, nil
}

// Update modifies the descriptive fields of a ticket.
func (c *Core) Update(ctx context.Context, tkt Ticket, ut UpdateTicket) (Ticket, error) {
	ctx, span := otel.AddSpan(ctx, "business.maintbus.update")
	defer span.End()

	if ut.Title != nil {
		tkt.Title = *ut.Title
	}

	if ut.Description != nil {
		tkt.Description = *ut.Description
	}

	if ut.Priority != nil {
		tkt.Priority = *ut.Priority
	}

	tkt.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, tkt); err != nil {
		return Ticket{}, fmt.Errorf("update: %w", err)
	}

	return tkt, nil
}

// Move places a ticket into a status column at the given board position. The
// board is freely re-orderable: any authorized actor can move any ticket
// between any columns in any order.
func (c *Core) Move(ctx context.Context, tkt Ticket, status ticketstatus.Status, position int) (Ticket, error) {
	ctx, span := otel.AddSpan(ctx, "business.maintbus.move")
	defer span.End()

	tkt.Status = status
	tkt.BoardPosition = position
	tkt.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, tkt); err != nil {
		return Ticket{}, fmt.Errorf("update: %w", err)
	}

	return tkt, nil
}

// Delete removes the specified ticket from the system.
func (c *Core) Delete(ctx context.Context, tkt Ticket) error {
	ctx, span := otel.AddSpan(ctx, "business.maintbus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, tkt); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Query retrieves a list of existing tickets.
func (c *Core) Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Ticket, error) {
	ctx, span := otel.AddSpan(ctx, "business.maintbus.query")
	defer span.End()

	tkts, err := c.storer.Query(ctx, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return tkts, nil
}

// Count returns the total number of tickets.
func (c *Core) Count(ctx context.Context, filter QueryFilter) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.maintbus.count")
	defer span.End()

	return c.storer.Count(ctx, filter)
}

// QueryByID finds the ticket by the specified ID.
func (c *Core) QueryByID(ctx context.Context, ticketID uuid.UUID) (Ticket, error) {
	ctx, span := otel.AddSpan(ctx, "business.maintbus.queryByID")
	defer span.End()

	tkt, err := c.storer.QueryByID(ctx, ticketID)
	if err != nil {
		return Ticket{}, fmt.Errorf("query: ticketID[%s]: %w", ticketID, err)
	}

	return tkt, nil
}
