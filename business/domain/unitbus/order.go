package unitbus

import "github.com/mrarunkumar300-ops/dharmahome/business/sdk/order"

// DefaultOrderBy represents the default way we sort.
var DefaultOrderBy = order.NewBy(OrderByNumber, order.ASC)

// Set of fields that the results can be ordered by.
const (
	OrderByID     = "unit_id"
	OrderByNumber = "unit_number"
	OrderByFloor  = "floor"
	OrderByRent   = "rent"
	OrderByStatus = "status"
)
