package userbus

import (
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/types/name"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/role"
)

// QueryFilter holds the available fields a query can be filtered on.
type QueryFilter struct {
	ID             *uuid.UUID
	OrgID          *uuid.UUID
	Name           *name.Name
	Email          *mail.Address
	Role           *role.Role
	Enabled        *bool
	StartCreatedAt *time.Time
	EndCreatedAt   *time.Time
}
