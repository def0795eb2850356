package tenantbus

import "github.com/mrarunkumar300-ops/dharmahome/business/sdk/order"

// DefaultOrderBy represents the default way we sort.
var DefaultOrderBy = order.NewBy(OrderByName, order.ASC)

// Set of fields that the results can be ordered by.
const (
	OrderByID         = "tenant_id"
	OrderByName       = "name"
	OrderByStatus     = "status"
	OrderByLeaseStart = "lease_start"
	OrderByRent       = "monthly_rent"
	OrderByCreated    = "created_at"
)
