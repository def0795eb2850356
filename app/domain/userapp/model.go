package userapp

import (
	"encoding/json"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/errs"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/permbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/userbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/money"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/name"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/password"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/phone"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/role"
)

// User represents information about an individual user.
type User struct {
	ID          string   `json:"id"`
	OrgID       string   `json:"orgId,omitempty"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Roles       []string `json:"roles"`
	Phone       string   `json:"phone"`
	Currency    string   `json:"currency"`
	Enabled     bool     `json:"enabled"`
	DateCreated string   `json:"dateCreated"`
	DateUpdated string   `json:"dateUpdated"`
}

// Encode implements the encoder interface.
func (u User) Encode() ([]byte, string, error) {
	data, err := json.Marshal(u)
	return data, "application/json", err
}

func toAppUser(bus userbus.User) User {
	var orgID string
	if bus.OrgID != uuid.Nil {
		orgID = bus.OrgID.String()
	}

	return User{
		ID:          bus.ID.String(),
		OrgID:       orgID,
		Name:        bus.Name.String(),
		Email:       bus.Email.Address,
		Roles:       role.ParseToString(bus.Roles),
		Phone:       bus.Phone.String(),
		Currency:    bus.Currency.String(),
		Enabled:     bus.Enabled,
		DateCreated: bus.CreatedAt.Format(time.RFC3339),
		DateUpdated: bus.UpdatedAt.Format(time.RFC3339),
	}
}

func toAppUsers(users []userbus.User) []User {
	app := make([]User, len(users))
	for i, usr := range users {
		app[i] = toAppUser(usr)
	}
	return app
}

// NewUser defines the data needed to add a new user.
type NewUser struct {
	Name            string   `json:"name" validate:"required"`
	Email           string   `json:"email" validate:"required,email"`
	Roles           []string `json:"roles" validate:"required,min=1"`
	Phone           string   `json:"phone"`
	Password        string   `json:"password" validate:"required"`
	PasswordConfirm string   `json:"passwordConfirm" validate:"eqfield=Password"`
}

// Decode implements the decoder interface.
func (app *NewUser) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewUser) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewUser(app NewUser) (userbus.NewUser, error) {
	rls, err := role.ParseMany(app.Roles)
	if err != nil {
		return userbus.NewUser{}, fmt.Errorf("parse roles: %w", err)
	}

	addr, err := mail.ParseAddress(app.Email)
	if err != nil {
		return userbus.NewUser{}, fmt.Errorf("parse email: %w", err)
	}

	nme, err := name.Parse(app.Name)
	if err != nil {
		return userbus.NewUser{}, fmt.Errorf("parse name: %w", err)
	}

	ph, err := phone.ParseNull(app.Phone)
	if err != nil {
		return userbus.NewUser{}, fmt.Errorf("parse phone: %w", err)
	}

	pass, err := password.Parse(app.Password)
	if err != nil {
		return userbus.NewUser{}, fmt.Errorf("parse password: %w", err)
	}

	bus := userbus.NewUser{
		Name:     nme,
		Email:    *addr,
		Roles:    rls,
		Phone:    ph,
		Password: pass,
	}

	return bus, nil
}

// UpdateUser defines the data that can be updated on a user.
type UpdateUser struct {
	Name            *string  `json:"name"`
	Email           *string  `json:"email" validate:"omitempty,email"`
	Roles           []string `json:"roles"`
	Phone           *string  `json:"phone"`
	Currency        *string  `json:"currency"`
	Password        *string  `json:"password"`
	PasswordConfirm *string  `json:"passwordConfirm" validate:"omitempty,eqfield=Password"`
	Enabled         *bool    `json:"enabled"`
}

// Decode implements the decoder interface.
func (app *UpdateUser) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateUser) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateUser(app UpdateUser) (userbus.UpdateUser, error) {
	var bus userbus.UpdateUser

	if app.Name != nil {
		nme, err := name.Parse(*app.Name)
		if err != nil {
			return userbus.UpdateUser{}, fmt.Errorf("parse name: %w", err)
		}
		bus.Name = &nme
	}

	if app.Email != nil {
		addr, err := mail.ParseAddress(*app.Email)
		if err != nil {
			return userbus.UpdateUser{}, fmt.Errorf("parse email: %w", err)
		}
		bus.Email = addr
	}

	if app.Roles != nil {
		rls, err := role.ParseMany(app.Roles)
		if err != nil {
			return userbus.UpdateUser{}, fmt.Errorf("parse roles: %w", err)
		}
		bus.Roles = rls
	}

	if app.Phone != nil {
		ph, err := phone.ParseNull(*app.Phone)
		if err != nil {
			return userbus.UpdateUser{}, fmt.Errorf("parse phone: %w", err)
		}
		bus.Phone = &ph
	}

	if app.Currency != nil {
		cur, err := money.ParseCurrency(*app.Currency)
		if err != nil {
			return userbus.UpdateUser{}, fmt.Errorf("parse currency: %w", err)
		}
		bus.Currency = &cur
	}

	if app.Password != nil {
		pass, err := password.Parse(*app.Password)
		if err != nil {
			return userbus.UpdateUser{}, fmt.Errorf("parse password: %w", err)
		}
		bus.Password = &pass
	}

	bus.Enabled = app.Enabled

	return bus, nil
}

// Grant represents a fine-grained permission held by a user.
type Grant struct {
	UserID      string `json:"userId"`
	Permission  string `json:"permission"`
	GrantedBy   string `json:"grantedBy"`
	DateCreated string `json:"dateCreated"`
}

// Encode implements the encoder interface.
func (g Grant) Encode() ([]byte, string, error) {
	data, err := json.Marshal(g)
	return data, "application/json", err
}

func toAppGrant(bus permbus.Grant) Grant {
	return Grant{
		UserID:      bus.UserID.String(),
		Permission:  bus.Permission.String(),
		GrantedBy:   bus.GrantedBy.String(),
		DateCreated: bus.CreatedAt.Format(time.RFC3339),
	}
}

// Grants wraps a user's grant list for encoding.
type Grants struct {
	Items []Grant `json:"items"`
}

// Encode implements the encoder interface.
func (g Grants) Encode() ([]byte, string, error) {
	data, err := json.Marshal(g)
	return data, "application/json", err
}

func toAppGrants(grants []permbus.Grant) Grants {
	items := make([]Grant, len(grants))
	for i, grt := range grants {
		items[i] = toAppGrant(grt)
	}
	return Grants{Items: items}
}

// NewGrant defines the data needed to grant a permission.
type NewGrant struct {
	Permission string `json:"permission" validate:"required"`
}

// Decode implements the decoder interface.
func (app *NewGrant) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewGrant) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}
