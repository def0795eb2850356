package tenantapp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/errs"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/tenantbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/money"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/name"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/phone"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/tenantstatus"
)

// Tenant represents a ledger record for a renter.
type Tenant struct {
	ID          string  `json:"id"`
	OrgID       string  `json:"orgId"`
	PropertyID  string  `json:"propertyId,omitempty"`
	UnitID      string  `json:"unitId,omitempty"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	LeaseStart  string  `json:"leaseStart"`
	LeaseEnd    string  `json:"leaseEnd"`
	MonthlyRent float64 `json:"monthlyRent"`
	Status      string  `json:"status"`
	DateCreated string  `json:"dateCreated"`
	DateUpdated string  `json:"dateUpdated"`
}

// Encode implements the encoder interface.
func (t Tenant) Encode() ([]byte, string, error) {
	data, err := json.Marshal(t)
	return data, "application/json", err
}

func toAppTenant(bus tenantbus.Tenant) Tenant {
	var propertyID, unitID string
	if bus.PropertyID != nil {
		propertyID = bus.PropertyID.String()
	}
	if bus.UnitID != nil {
		unitID = bus.UnitID.String()
	}

	return Tenant{
		ID:          bus.ID.String(),
		OrgID:       bus.OrgID.String(),
		PropertyID:  propertyID,
		UnitID:      unitID,
		Name:        bus.Name.String(),
		Email:       bus.Email,
		Phone:       bus.Phone.String(),
		LeaseStart:  bus.LeaseStart.Format(time.RFC3339),
		LeaseEnd:    bus.LeaseEnd.Format(time.RFC3339),
		MonthlyRent: bus.MonthlyRent.Value(),
		Status:      bus.Status.String(),
		DateCreated: bus.CreatedAt.Format(time.RFC3339),
		DateUpdated: bus.UpdatedAt.Format(time.RFC3339),
	}
}

func toAppTenants(tnts []tenantbus.Tenant) []Tenant {
	app := make([]Tenant, len(tnts))
	for i, tnt := range tnts {
		app[i] = toAppTenant(tnt)
	}
	return app
}

// NewTenant defines the data needed to add a new ledger record.
type NewTenant struct {
	Name        string  `json:"name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       string  `json:"phone" validate:"required"`
	LeaseStart  string  `json:"leaseStart" validate:"required"`
	LeaseEnd    string  `json:"leaseEnd" validate:"required"`
	MonthlyRent float64 `json:"monthlyRent" validate:"required,gt=0"`
}

// Decode implements the decoder interface.
func (app *NewTenant) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewTenant) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewTenant(app NewTenant, orgID uuid.UUID) (tenantbus.NewTenant, error) {
	nme, err := name.Parse(app.Name)
	if err != nil {
		return tenantbus.NewTenant{}, fmt.Errorf("parse name: %w", err)
	}

	phn, err := phone.Parse(app.Phone)
	if err != nil {
		return tenantbus.NewTenant{}, fmt.Errorf("parse phone: %w", err)
	}

	leaseStart, err := time.Parse(time.RFC3339, app.LeaseStart)
	if err != nil {
		return tenantbus.NewTenant{}, fmt.Errorf("parse lease start: %w", err)
	}

	leaseEnd, err := time.Parse(time.RFC3339, app.LeaseEnd)
	if err != nil {
		return tenantbus.NewTenant{}, fmt.Errorf("parse lease end: %w", err)
	}

	rent, err := money.Parse(app.MonthlyRent)
	if err != nil {
		return tenantbus.NewTenant{}, fmt.Errorf("parse rent: %w", err)
	}

	bus := tenantbus.NewTenant{
		OrgID:       orgID,
		Name:        nme,
		Email:       app.Email,
		Phone:       phn,
		LeaseStart:  leaseStart,
		LeaseEnd:    leaseEnd,
		MonthlyRent: rent,
	}

	return bus, nil
}

// UpdateTenant defines the data that can be updated on a ledger record.
type UpdateTenant struct {
	Name        *string  `json:"name"`
	Email       *string  `json:"email" validate:"omitempty,email"`
	Phone       *string  `json:"phone"`
	LeaseStart  *string  `json:"leaseStart"`
	LeaseEnd    *string  `json:"leaseEnd"`
	MonthlyRent *float64 `json:"monthlyRent" validate:"omitempty,gt=0"`
	Status      *string  `json:"status"`
}

// Decode implements the decoder interface.
func (app *UpdateTenant) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateTenant) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateTenant(app UpdateTenant) (tenantbus.UpdateTenant, error) {
	var bus tenantbus.UpdateTenant

	if app.Name != nil {
		nme, err := name.Parse(*app.Name)
		if err != nil {
			return tenantbus.UpdateTenant{}, fmt.Errorf("parse name: %w", err)
		}
		bus.Name = &nme
	}

	if app.Phone != nil {
		phn, err := phone.Parse(*app.Phone)
		if err != nil {
			return tenantbus.UpdateTenant{}, fmt.Errorf("parse phone: %w", err)
		}
		bus.Phone = &phn
	}

	if app.LeaseStart != nil {
		t, err := time.Parse(time.RFC3339, *app.LeaseStart)
		if err != nil {
			return tenantbus.UpdateTenant{}, fmt.Errorf("parse lease start: %w", err)
		}
		bus.LeaseStart = &t
	}

	if app.LeaseEnd != nil {
		t, err := time.Parse(time.RFC3339, *app.LeaseEnd)
		if err != nil {
			return tenantbus.UpdateTenant{}, fmt.Errorf("parse lease end: %w", err)
		}
		bus.LeaseEnd = &t
	}

	if app.MonthlyRent != nil {
		rent, err := money.Parse(*app.MonthlyRent)
		if err != nil {
			return tenantbus.UpdateTenant{}, fmt.Errorf("parse rent: %w", err)
		}
		bus.MonthlyRent = &rent
	}

	if app.Status != nil {
		status, err := tenantstatus.Parse(*app.Status)
		if err != nil {
			return tenantbus.UpdateTenant{}, fmt.Errorf("parse status: %w", err)
		}
		bus.Status = &status
	}

	bus.Email = app.Email

	return bus, nil
}

// Statistics summarizes an org's tenant ledger.
type Statistics struct {
	Total           int     `json:"total"`
	Pending         int     `json:"pending"`
	Active          int     `json:"active"`
	Inactive        int     `json:"inactive"`
	Evicted         int     `json:"evicted"`
	MonthlyRentRoll float64 `json:"monthlyRentRoll"`
}

// Encode implements the encoder interface.
func (s Statistics) Encode() ([]byte, string, error) {
	data, err := json.Marshal(s)
	return data, "application/json", err
}

func toAppStatistics(bus tenantbus.Statistics) Statistics {
	return Statistics{
		Total:           bus.Total,
		Pending:         bus.Pending,
		Active:          bus.Active,
		Inactive:        bus.Inactive,
		Evicted:         bus.Evicted,
		MonthlyRentRoll: bus.MonthlyRentRoll.Value(),
	}
}

// Profile links an auth user to a ledger record.
type Profile struct {
	UserID      string `json:"userId"`
	TenantID    string `json:"tenantId"`
	TenantCode  string `json:"tenantCode"`
	DateCreated string `json:"dateCreated"`
}

// Encode implements the encoder interface.
func (p Profile) Encode() ([]byte, string, error) {
	data, err := json.Marshal(p)
	return data, "application/json", err
}

func toAppProfile(bus tenantbus.Profile) Profile {
	return Profile{
		UserID:      bus.UserID.String(),
		TenantID:    bus.TenantID.String(),
		TenantCode:  bus.TenantCode,
		DateCreated: bus.CreatedAt.Format(time.RFC3339),
	}
}

// NewPortalAccount defines the data needed to open portal access for a
// ledger tenant.
type NewPortalAccount struct {
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"passwordConfirm" validate:"eqfield=Password"`
}

// Decode implements the decoder interface.
func (app *NewPortalAccount) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewPortalAccount) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}
