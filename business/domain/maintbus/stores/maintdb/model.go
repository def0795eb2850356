package maintdb

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/maintbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/priority"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/ticketstatus"
)

type ticketDB struct {
	ID            uuid.UUID  `db:"ticket_id"`
	OrgID         uuid.UUID  `db:"org_id"`
	UnitID        *uuid.UUID `db:"unit_id"`
	TenantID      *uuid.UUID `db:"tenant_id"`
	Title         string     `db:"title"`
	Description   string     `db:"description"`
	Status        string     `db:"status"`
	Priority      string     `db:"priority"`
	BoardPosition int        `db:"board_position"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

func toDBTicket(tkt maintbus.Ticket) ticketDB {
	return ticketDB{
		ID:            tkt.ID,
		OrgID:         tkt.OrgID,
		UnitID:        tkt.UnitID,
		TenantID:      tkt.TenantID,
		Title:         tkt.Title,
		Description:   tkt.Description,
		Status:        tkt.Status.String(),
		Priority:      tkt.Priority.String(),
		BoardPosition: tkt.BoardPosition,
		CreatedAt:     tkt.CreatedAt.UTC(),
		UpdatedAt:     tkt.UpdatedAt.UTC(),
	}
}

func toBusTicket(dbTkt ticketDB) (maintbus.Ticket, error) {
	status, err := ticketstatus.Parse(dbTkt.Status)
	if err != nil {
		return maintbus.Ticket{}, fmt.Errorf("parse status: %w", err)
	}

	prio, err := priority.Parse(dbTkt.Priority)
	if err != nil {
		return maintbus.Ticket{}, fmt.Errorf("parse priority: %w", err)
	}

	tkt := maintbus.Ticket{
		ID:            dbTkt.ID,
		OrgID:         dbTkt.OrgID,
		UnitID:        dbTkt.UnitID,
		TenantID:      dbTkt.TenantID,
		Title:         dbTkt.Title,
		Description:   dbTkt.Description,
		Status:        status,
		Priority:      prio,
		BoardPosition: dbTkt.BoardPosition,
		CreatedAt:     dbTkt.CreatedAt.In(time.Local),
		UpdatedAt:     dbTkt.UpdatedAt.In(time.Local),
	}

	return tkt, nil
}

func toBusTickets(dbTkts []ticketDB) ([]maintbus.Ticket, error) {
	tkts := make([]maintbus.Ticket, len(dbTkts))

	for i, dbTkt := range dbTkts {
		var err error
		tkts[i], err = toBusTicket(dbTkt)
		if err != nil {
			return nil, err
		}
	}

	return tkts, nil
}
