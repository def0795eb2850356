package maintbus

import (
	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/types/priority"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/ticketstatus"
)

// QueryFilter holds the available fields a query can be filtered on.
type QueryFilter struct {
	ID       *uuid.UUID
	OrgID    *uuid.UUID
	UnitID   *uuid.UUID
	TenantID *uuid.UUID
	Status   *ticketstatus.Status
	Priority *priority.Priority
}
