package tenantbus

import (
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/types/money"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/name"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/phone"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/tenantstatus"
)

// Tenant represents a ledger record for a renter. PropertyID and UnitID are
// set while the tenant occupies a unit and cleared on unassignment.
type Tenant struct {
	ID          uuid.UUID
	OrgID       uuid.UUID
	PropertyID  *uuid.UUID
	UnitID      *uuid.UUID
	Name        name.Name
	Email       string
	Phone       phone.Phone
	LeaseStart  time.Time
	LeaseEnd    time.Time
	MonthlyRent money.Money
	Status      tenantstatus.Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTenant contains information needed to create a new tenant record.
type NewTenant struct {
	OrgID       uuid.UUID
	Name        name.Name
	Email       string
	Phone       phone.Phone
	LeaseStart  time.Time
	LeaseEnd    time.Time
	MonthlyRent money.Money
}

// UpdateTenant contains information needed to update a tenant record.
type UpdateTenant struct {
	Name        *name.Name
	Email       *string
	Phone       *phone.Phone
	LeaseStart  *time.Time
	LeaseEnd    *time.Time
	MonthlyRent *money.Money
	Status      *tenantstatus.Status
}

// Profile links an auth user to a tenant ledger record so a renter can sign
// in to the portal. TenantCode is the human friendly identifier printed on
// notices and receipts.
type Profile struct {
	UserID     uuid.UUID
	TenantID   uuid.UUID
	TenantCode string
	CreatedAt  time.Time
}

// Statistics summarizes an organization's tenant ledger.
type Statistics struct {
	Total           int
	Pending         int
	Active          int
	Inactive        int
	Evicted         int
	MonthlyRentRoll money.Money
}
