package propertybus

import (
	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/types/name"
)

// QueryFilter holds the available fields a query can be filtered on.
type QueryFilter struct {
	ID           *uuid.UUID
	OrgID        *uuid.UUID
	Name         *name.Name
	PropertyType *string
}
