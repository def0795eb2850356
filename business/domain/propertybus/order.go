package propertybus

import "github.com/mrarunkumar300-ops/dharmahome/business/sdk/order"

// DefaultOrderBy represents the default way we sort.
var DefaultOrderBy = order.NewBy(OrderByName, order.ASC)

// Set of fields that the results can be ordered by.
const (
	OrderByID      = "property_id"
	OrderByName    = "name"
	OrderByType    = "property_type"
	OrderByCreated = "created_at"
)
