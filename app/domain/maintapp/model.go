package maintapp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/errs"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/maintbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/priority"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/ticketstatus"
)

// Ticket represents a maintenance request.
type Ticket struct {
	ID            string `json:"id"`
	OrgID         string `json:"orgId"`
	UnitID        string `json:"unitId,omitempty"`
	TenantID      string `json:"tenantId,omitempty"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Status        string `json:"status"`
	Priority      string `json:"priority"`
	BoardPosition int    `json:"boardPosition"`
	DateCreated   string `json:"dateCreated"`
	DateUpdated   string `json:"dateUpdated"`
}

// Encode implements the encoder interface.
func (t Ticket) Encode() ([]byte, string, error) {
	data, err := json.Marshal(t)
	return data, "application/json", err
}

func toAppTicket(bus maintbus.Ticket) Ticket {
	var unitID, tenantID string
	if bus.UnitID != nil {
		unitID = bus.UnitID.String()
	}
	if bus.TenantID != nil {
		tenantID = bus.TenantID.String()
	}

	return Ticket{
		ID:            bus.ID.String(),
		OrgID:         bus.OrgID.String(),
		UnitID:        unitID,
		TenantID:      tenantID,
		Title:         bus.Title,
		Description:   bus.Description,
		Status:        bus.Status.String(),
		Priority:      bus.Priority.String(),
		BoardPosition: bus.BoardPosition,
		DateCreated:   bus.CreatedAt.Format(time.RFC3339),
		DateUpdated:   bus.UpdatedAt.Format(time.RFC3339),
	}
}

func toAppTickets(tkts []maintbus.Ticket) []Ticket {
	app := make([]Ticket, len(tkts))
	for i, tkt := range tkts {
		app[i] = toAppTicket(tkt)
	}
	return app
}

// Board groups an org's tickets into kanban columns, each ordered by
// board position.
type Board struct {
	Open       []Ticket `json:"open"`
	InProgress []Ticket `json:"inProgress"`
	Completed  []Ticket `json:"completed"`
}

// Encode implements the encoder interface.
func (b Board) Encode() ([]byte, string, error) {
	data, err := json.Marshal(b)
	return data, "application/json", err
}

func toAppBoard(tkts []maintbus.Ticket) Board {
	board := Board{
		Open:       []Ticket{},
		InProgress: []Ticket{},
		Completed:  []Ticket{},
	}

	for _, tkt := range tkts {
		app := toAppTicket(tkt)
		switch tkt.Status {
		case ticketstatus.Open:
			board.Open = append(board.Open, app)
		case ticketstatus.InProgress:
			board.InProgress = append(board.InProgress, app)
		case ticketstatus.Completed:
			board.Completed = append(board.Completed, app)
		}
	}

	return board
}

// NewTicket defines the data needed to open a maintenance ticket.
type NewTicket struct {
	UnitID      string `json:"unitId"`
	TenantID    string `json:"tenantId"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority" validate:"required"`
}

// Decode implements the decoder interface.
func (app *NewTicket) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewTicket) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewTicket(app NewTicket, orgID uuid.UUID) (maintbus.NewTicket, error) {
	pri, err := priority.Parse(app.Priority)
	if err != nil {
		return maintbus.NewTicket{}, fmt.Errorf("parse priority: %w", err)
	}

	bus := maintbus.NewTicket{
		OrgID:       orgID,
		Title:       app.Title,
		Description: app.Description,
		Priority:    pri,
	}

	if app.UnitID != "" {
		unitID, err := uuid.Parse(app.UnitID)
		if err != nil {
			return maintbus.NewTicket{}, fmt.Errorf("parse unit id: %w", err)
		}
		bus.UnitID = &unitID
	}

	if app.TenantID != "" {
		tenantID, err := uuid.Parse(app.TenantID)
		if err != nil {
			return maintbus.NewTicket{}, fmt.Errorf("parse tenant id: %w", err)
		}
		bus.TenantID = &tenantID
	}

	return bus, nil
}

// UpdateTicket defines the data that can be updated on a ticket.
type UpdateTicket struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
}

// Decode implements the decoder interface.
func (app *UpdateTicket) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateTicket) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateTicket(app UpdateTicket) (maintbus.UpdateTicket, error) {
	var bus maintbus.UpdateTicket

	if app.Priority != nil {
		pri, err := priority.Parse(*app.Priority)
		if err != nil {
			return maintbus.UpdateTicket{}, fmt.Errorf("parse priority: %w", err)
		}
		bus.Priority = &pri
	}

	bus.Title = app.Title
	bus.Description = app.Description

	return bus, nil
}

// MoveTicket defines the data needed to move a ticket on the board.
type MoveTicket struct {
	Status   string `json:"status" validate:"required"`
	Position int    `json:"position" validate:"gte=0"`
}

// Decode implements the decoder interface.
func (app *MoveTicket) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app MoveTicket) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}
