package propertyapp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/errs"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/propertybus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/unitbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/money"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/name"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/unitstatus"
)

// Property represents an org-owned building or complex.
type Property struct {
	ID           string `json:"id"`
	OrgID        string `json:"orgId"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	PropertyType string `json:"propertyType"`
	UnitCount    int    `json:"unitCount"`
	DateCreated  string `json:"dateCreated"`
	DateUpdated  string `json:"dateUpdated"`
}

// Encode implements the encoder interface.
func (p Property) Encode() ([]byte, string, error) {
	data, err := json.Marshal(p)
	return data, "application/json", err
}

func toAppProperty(bus propertybus.Property) Property {
	return Property{
		ID:           bus.ID.String(),
		OrgID:        bus.OrgID.String(),
		Name:         bus.Name.String(),
		Address:      bus.Address,
		PropertyType: bus.PropertyType,
		UnitCount:    bus.UnitCount,
		DateCreated:  bus.CreatedAt.Format(time.RFC3339),
		DateUpdated:  bus.UpdatedAt.Format(time.RFC3339),
	}
}

func toAppProperties(prps []propertybus.Property) []Property {
	app := make([]Property, len(prps))
	for i, prp := range prps {
		app[i] = toAppProperty(prp)
	}
	return app
}

// NewProperty defines the data needed to add a new property.
type NewProperty struct {
	Name         string `json:"name" validate:"required"`
	Address      string `json:"address" validate:"required"`
	PropertyType string `json:"propertyType" validate:"required"`
}

// Decode implements the decoder interface.
func (app *NewProperty) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewProperty) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewProperty(app NewProperty, orgID uuid.UUID) (propertybus.NewProperty, error) {
	nme, err := name.Parse(app.Name)
	if err != nil {
		return propertybus.NewProperty{}, fmt.Errorf("parse name: %w", err)
	}

	bus := propertybus.NewProperty{
		OrgID:        orgID,
		Name:         nme,
		Address:      app.Address,
		PropertyType: app.PropertyType,
	}

	return bus, nil
}

// UpdateProperty defines the data that can be updated on a property.
type UpdateProperty struct {
	Name         *string `json:"name"`
	Address      *string `json:"address"`
	PropertyType *string `json:"propertyType"`
}

// Decode implements the decoder interface.
func (app *UpdateProperty) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateProperty) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateProperty(app UpdateProperty) (propertybus.UpdateProperty, error) {
	var bus propertybus.UpdateProperty

	if app.Name != nil {
		nme, err := name.Parse(*app.Name)
		if err != nil {
			return propertybus.UpdateProperty{}, fmt.Errorf("parse name: %w", err)
		}
		bus.Name = &nme
	}

	bus.Address = app.Address
	bus.PropertyType = app.PropertyType

	return bus, nil
}

// =============================================================================

// Unit represents a rentable unit inside a property.
type Unit struct {
	ID          string  `json:"id"`
	PropertyID  string  `json:"propertyId"`
	OrgID       string  `json:"orgId"`
	Number      string  `json:"number"`
	Floor       int     `json:"floor"`
	Rent        float64 `json:"rent"`
	Status      string  `json:"status"`
	OccupantID  string  `json:"occupantId,omitempty"`
	DateCreated string  `json:"dateCreated"`
	DateUpdated string  `json:"dateUpdated"`
}

// Encode implements the encoder interface.
func (u Unit) Encode() ([]byte, string, error) {
	data, err := json.Marshal(u)
	return data, "application/json", err
}

func toAppUnit(bus unitbus.Unit) Unit {
	var occupant string
	if bus.OccupantID != nil {
		occupant = bus.OccupantID.String()
	}

	return Unit{
		ID:          bus.ID.String(),
		PropertyID:  bus.PropertyID.String(),
		OrgID:       bus.OrgID.String(),
		Number:      bus.Number,
		Floor:       bus.Floor,
		Rent:        bus.Rent.Value(),
		Status:      bus.Status.String(),
		OccupantID:  occupant,
		DateCreated: bus.CreatedAt.Format(time.RFC3339),
		DateUpdated: bus.UpdatedAt.Format(time.RFC3339),
	}
}

func toAppUnits(unts []unitbus.Unit) []Unit {
	app := make([]Unit, len(unts))
	for i, unt := range unts {
		app[i] = toAppUnit(unt)
	}
	return app
}

// NewUnit defines the data needed to add a new unit.
type NewUnit struct {
	PropertyID string  `json:"propertyId" validate:"required"`
	Number     string  `json:"number" validate:"required"`
	Floor      int     `json:"floor"`
	Rent       float64 `json:"rent" validate:"required,gt=0"`
}

// Decode implements the decoder interface.
func (app *NewUnit) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewUnit) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewUnit(app NewUnit, orgID uuid.UUID) (unitbus.NewUnit, error) {
	propertyID, err := uuid.Parse(app.PropertyID)
	if err != nil {
		return unitbus.NewUnit{}, fmt.Errorf("parse property id: %w", err)
	}

	rent, err := money.Parse(app.Rent)
	if err != nil {
		return unitbus.NewUnit{}, fmt.Errorf("parse rent: %w", err)
	}

	bus := unitbus.NewUnit{
		PropertyID: propertyID,
		OrgID:      orgID,
		Number:     app.Number,
		Floor:      app.Floor,
		Rent:       rent,
	}

	return bus, nil
}

// UpdateUnit defines the data that can be updated on a unit.
type UpdateUnit struct {
	Number *string  `json:"number"`
	Floor  *int     `json:"floor"`
	Rent   *float64 `json:"rent" validate:"omitempty,gt=0"`
	Status *string  `json:"status"`
}

// Decode implements the decoder interface.
func (app *UpdateUnit) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateUnit) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateUnit(app UpdateUnit) (unitbus.UpdateUnit, error) {
	var bus unitbus.UpdateUnit

	if app.Rent != nil {
		rent, err := money.Parse(*app.Rent)
		if err != nil {
			return unitbus.UpdateUnit{}, fmt.Errorf("parse rent: %w", err)
		}
		bus.Rent = &rent
	}

	if app.Status != nil {
		status, err := unitstatus.Parse(*app.Status)
		if err != nil {
			return unitbus.UpdateUnit{}, fmt.Errorf("parse status: %w", err)
		}
		bus.Status = &status
	}

	bus.Number = app.Number
	bus.Floor = app.Floor

	return bus, nil
}

// AssignTenant defines the data needed to place a tenant in a unit.
type AssignTenant struct {
	TenantID string `json:"tenantId" validate:"required"`
}

// Decode implements the decoder interface.
func (app *AssignTenant) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app AssignTenant) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}
