package propertybus

import (
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/types/name"
)

// Property represents an org-owned building or complex. UnitCount is derived
// from the units table at query time and ignored on writes.
type Property struct {
	ID           uuid.UUID
	OrgID        uuid.UUID
	Name         name.Name
	Address      string
	PropertyType string
	UnitCount    int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewProperty contains information needed to create a new property.
type NewProperty struct {
	OrgID        uuid.UUID
	Name         name.Name
	Address      string
	PropertyType string
}

// UpdateProperty contains information needed to update a property.
type UpdateProperty struct {
	Name         *name.Name
	Address      *string
	PropertyType *string
}
