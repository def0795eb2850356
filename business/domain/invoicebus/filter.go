package invoicebus

import (
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/types/invoicestatus"
)

// QueryFilter holds the available fields a query can be filtered on.
type QueryFilter struct {
	ID           *uuid.UUID
	OrgID        *uuid.UUID
	TenantID     *uuid.UUID
	Status       *invoicestatus.Status
	StartDueDate *time.Time
	EndDueDate   *time.Time
}
