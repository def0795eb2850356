package orgapp

import (
	"encoding/json"
	"fmt"
	"net/mail"
	"time"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/errs"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/orgbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/userbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/name"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/password"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/phone"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/role"
)

// Organization represents a property-management company.
type Organization struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	BillingPlan string `json:"billingPlan"`
	Enabled     bool   `json:"enabled"`
	DateCreated string `json:"dateCreated"`
	DateUpdated string `json:"dateUpdated"`
}

// Encode implements the encoder interface.
func (o Organization) Encode() ([]byte, string, error) {
	data, err := json.Marshal(o)
	return data, "application/json", err
}

func toAppOrganization(bus orgbus.Organization) Organization {
	return Organization{
		ID:          bus.ID.String(),
		Name:        bus.Name.String(),
		Slug:        bus.Slug,
		BillingPlan: bus.BillingPlan,
		Enabled:     bus.Enabled,
		DateCreated: bus.CreatedAt.Format(time.RFC3339),
		DateUpdated: bus.UpdatedAt.Format(time.RFC3339),
	}
}

// Organizations wraps the full org list for encoding.
type Organizations struct {
	Items []Organization `json:"items"`
}

// Encode implements the encoder interface.
func (o Organizations) Encode() ([]byte, string, error) {
	data, err := json.Marshal(o)
	return data, "application/json", err
}

func toAppOrganizations(orgs []orgbus.Organization) Organizations {
	items := make([]Organization, len(orgs))
	for i, org := range orgs {
		items[i] = toAppOrganization(org)
	}
	return Organizations{Items: items}
}

// NewOrganization defines the data needed to add a new organization.
type NewOrganization struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	BillingPlan string `json:"billingPlan"`
}

// Decode implements the decoder interface.
func (app *NewOrganization) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewOrganization) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewOrganization(app NewOrganization) (orgbus.NewOrganization, error) {
	nme, err := name.Parse(app.Name)
	if err != nil {
		return orgbus.NewOrganization{}, fmt.Errorf("parse name: %w", err)
	}

	bus := orgbus.NewOrganization{
		Name:        nme,
		Slug:        app.Slug,
		BillingPlan: app.BillingPlan,
	}

	return bus, nil
}

// UpdateOrganization defines the data that can be updated.
type UpdateOrganization struct {
	Name        *string `json:"name"`
	BillingPlan *string `json:"billingPlan"`
	Enabled     *bool   `json:"enabled"`
}

// Decode implements the decoder interface.
func (app *UpdateOrganization) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateOrganization) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateOrganization(app UpdateOrganization) (orgbus.UpdateOrganization, error) {
	var bus orgbus.UpdateOrganization

	if app.Name != nil {
		nme, err := name.Parse(*app.Name)
		if err != nil {
			return orgbus.UpdateOrganization{}, fmt.Errorf("parse name: %w", err)
		}
		bus.Name = &nme
	}

	bus.BillingPlan = app.BillingPlan
	bus.Enabled = app.Enabled

	return bus, nil
}

// ProvisionOrganization defines the data needed to create an organization
// together with its initial admin user.
type ProvisionOrganization struct {
	Name          string `json:"name" validate:"required"`
	Slug          string `json:"slug" validate:"required"`
	BillingPlan   string `json:"billingPlan"`
	AdminName     string `json:"adminName" validate:"required"`
	AdminEmail    string `json:"adminEmail" validate:"required,email"`
	AdminPhone    string `json:"adminPhone"`
	AdminPassword string `json:"adminPassword" validate:"required"`
}

// Decode implements the decoder interface.
func (app *ProvisionOrganization) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app ProvisionOrganization) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusProvision(app ProvisionOrganization) (orgbus.NewOrganization, userbus.NewUser, error) {
	orgName, err := name.Parse(app.Name)
	if err != nil {
		return orgbus.NewOrganization{}, userbus.NewUser{}, fmt.Errorf("parse name: %w", err)
	}

	admName, err := name.Parse(app.AdminName)
	if err != nil {
		return orgbus.NewOrganization{}, userbus.NewUser{}, fmt.Errorf("parse admin name: %w", err)
	}

	addr, err := mail.ParseAddress(app.AdminEmail)
	if err != nil {
		return orgbus.NewOrganization{}, userbus.NewUser{}, fmt.Errorf("parse admin email: %w", err)
	}

	ph, err := phone.ParseNull(app.AdminPhone)
	if err != nil {
		return orgbus.NewOrganization{}, userbus.NewUser{}, fmt.Errorf("parse admin phone: %w", err)
	}

	pass, err := password.Parse(app.AdminPassword)
	if err != nil {
		return orgbus.NewOrganization{}, userbus.NewUser{}, fmt.Errorf("parse admin password: %w", err)
	}

	no := orgbus.NewOrganization{
		Name:        orgName,
		Slug:        app.Slug,
		BillingPlan: app.BillingPlan,
	}

	nu := userbus.NewUser{
		Name:     admName,
		Email:    *addr,
		Phone:    ph,
		Roles:    []role.Role{role.Admin},
		Password: pass,
	}

	return no, nu, nil
}

// ProvisionedOrganization carries the created org and its admin user back
// to the caller.
type ProvisionedOrganization struct {
	Organization Organization `json:"organization"`
	AdminUserID  string       `json:"adminUserId"`
}

// Encode implements the encoder interface.
func (p ProvisionedOrganization) Encode() ([]byte, string, error) {
	data, err := json.Marshal(p)
	return data, "application/json", err
}
