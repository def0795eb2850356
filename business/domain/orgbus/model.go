package orgbus

import (
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/types/name"
)

// Organization represents a property-management company in the system. It is
// the isolation boundary: properties, staff profiles and tenant records all
// hang off a single organization.
type Organization struct {
	ID          uuid.UUID
	Name        name.Name
	Slug        string
	BillingPlan string
	Enabled     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewOrganization contains information needed to create a new organization.
type NewOrganization struct {
	Name        name.Name
	Slug        string
	BillingPlan string
}

// UpdateOrganization contains information needed to update an organization.
type UpdateOrganization struct {
	Name        *name.Name
	BillingPlan *string
	Enabled     *bool
}
