package unitbus

import (
	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/types/unitstatus"
)

// QueryFilter holds the available fields a query can be filtered on.
type QueryFilter struct {
	ID         *uuid.UUID
	PropertyID *uuid.UUID
	OrgID      *uuid.UUID
	Status     *unitstatus.Status
	OccupantID *uuid.UUID
}
