package userbus

import (
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/types/money"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/name"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/password"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/phone"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/role"
)

// User represents information about an individual user. A user may hold
// zero, one, or several roles at once; OrgID is Nil for unaffiliated users.
type User struct {
	ID           uuid.UUID
	OrgID        uuid.UUID
	Name         name.Name
	Email        mail.Address
	Roles        []role.Role
	PasswordHash []byte
	Phone        phone.Null
	Currency     money.Currency
	Enabled      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasAnyRole reports whether the user holds at least one role.
func (u User) HasAnyRole() bool {
	return len(u.Roles) > 0
}

// HasRole reports whether the user holds the specified role.
func (u User) HasRole(r role.Role) bool {
	return role.Contains(u.Roles, r)
}

// NewUser contains information needed to create a new user.
type NewUser struct {
	OrgID    uuid.UUID
	Name     name.Name
	Email    mail.Address
	Phone    phone.Null
	Roles    []role.Role
	Password password.Password
}

// UpdateUser contains information needed to update a user.
type UpdateUser struct {
	Name     *name.Name
	Email    *mail.Address
	Roles    []role.Role
	Phone    *phone.Null
	Currency *money.Currency
	Password *password.Password
	Enabled  *bool
}
