package unitbus

import (
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/types/money"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/unitstatus"
)

// Unit represents a rentable unit inside a property. OccupantID links the
// current tenant ledger record and is set only while Status is Occupied.
type Unit struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	OrgID      uuid.UUID
	Number     string
	Floor      int
	Rent       money.Money
	Status     unitstatus.Status
	OccupantID *uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewUnit contains information needed to create a new unit.
type NewUnit struct {
	PropertyID uuid.UUID
	OrgID      uuid.UUID
	Number     string
	Floor      int
	Rent       money.Money
}

// UpdateUnit contains information needed to update a unit.
type UpdateUnit struct {
	Number *string
	Floor  *int
	Rent   *money.Money
	Status *unitstatus.Status
}
