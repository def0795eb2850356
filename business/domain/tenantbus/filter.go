package tenantbus

import (
	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/types/name"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/tenantstatus"
)

// QueryFilter holds the available fields a query can be filtered on.
type QueryFilter struct {
	ID         *uuid.UUID
	OrgID      *uuid.UUID
	PropertyID *uuid.UUID
	UnitID     *uuid.UUID
	Name       *name.Name
	Email      *string
	Status     *tenantstatus.Status
}
