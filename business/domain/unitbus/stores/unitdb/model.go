package unitdb

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/unitbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/money"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/unitstatus"
)

type unitDB struct {
	ID         uuid.UUID  `db:"unit_id"`
	PropertyID uuid.UUID  `db:"property_id"`
	OrgID      uuid.UUID  `db:"org_id"`
	Number     string     `db:"unit_number"`
	Floor      int        `db:"floor"`
	Rent       float64    `db:"rent"`
	Status     string     `db:"status"`
	OccupantID *uuid.UUID `db:"occupant_id"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

func toDBUnit(unt unitbus.Unit) unitDB {
	return unitDB{
		ID:         unt.ID,
		PropertyID: unt.PropertyID,
		OrgID:      unt.OrgID,
		Number:     unt.Number,
		Floor:      unt.Floor,
		Rent:       unt.Rent.Value(),
		Status:     unt.Status.String(),
		OccupantID: unt.OccupantID,
		CreatedAt:  unt.CreatedAt.UTC(),
		UpdatedAt:  unt.UpdatedAt.UTC(),
	}
}

func toBusUnit(dbUnt unitDB) (unitbus.Unit, error) {
	rent, err := money.Parse(dbUnt.Rent)
	if err != nil {
		return unitbus.Unit{}, fmt.Errorf("parse rent: %w", err)
	}

	status, err := unitstatus.Parse(dbUnt.Status)
	if err != nil {
		return unitbus.Unit{}, fmt.Errorf("parse status: %w", err)
	}

	unt := unitbus.Unit{
		ID:         dbUnt.ID,
		PropertyID: dbUnt.PropertyID,
		OrgID:      dbUnt.OrgID,
		Number:     dbUnt.Number,
		Floor:      dbUnt.Floor,
		Rent:       rent,
		Status:     status,
		OccupantID: dbUnt.OccupantID,
		CreatedAt:  dbUnt.CreatedAt.In(time.Local),
		UpdatedAt:  dbUnt.UpdatedAt.In(time.Local),
	}

	return unt, nil
}

func toBusUnits(dbUnts []unitDB) ([]unitbus.Unit, error) {
	unts := make([]unitbus.Unit, len(dbUnts))

	for i, dbUnt := range dbUnts {
		var err error
		unts[i], err = toBusUnit(dbUnt)
		if err != nil {
			return nil, err
		}
	}

	return unts, nil
}
