package maintbus

import (
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/types/priority"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/ticketstatus"
)

// Ticket represents a maintenance request. BoardPosition orders tickets
// within their status column on the kanban board.
type Ticket struct {
	ID            uuid.UUID
	OrgID         uuid.UUID
	UnitID        *uuid.UUID
	TenantID      *uuid.UUID
	Title         string
	Description   string
	Status        ticketstatus.Status
	Priority      priority.Priority
	BoardPosition int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewTicket contains information needed to open a maintenance ticket.
type NewTicket struct {
	OrgID       uuid.UUID
	UnitID      *uuid.UUID
	TenantID    *uuid.UUID
	Title       string
	Description string
	Priority    priority.Priority
}

// UpdateTicket contains information needed to update a maintenance ticket.
type UpdateTicket struct {
	Title       *string
	Description *string
	Priority    *priority.Priority
}
