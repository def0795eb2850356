package maintbus

import "github.com/mrarunkumar300-ops/dharmahome/business/sdk/order"

// DefaultOrderBy represents the default way we sort: board order.
var DefaultOrderBy = order.NewBy(OrderByPosition, order.ASC)

// Set of fields that the results can be ordered by.
const (
	OrderByID       = "ticket_id"
	OrderByTitle    = "title"
	OrderByStatus   = "status"
	OrderByPriority = "priority"
	OrderByPosition = "board_position"
	OrderByCreated  = "created_at"
)
