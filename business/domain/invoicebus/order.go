package invoicebus

import "github.com/mrarunkumar300-ops/dharmahome/business/sdk/order"

// DefaultOrderBy represents the default way we sort.
var DefaultOrderBy = order.NewBy(OrderByDueDate, order.ASC)

// Set of fields that the results can be ordered by.
const (
	OrderByID      = "invoice_id"
	OrderByDueDate = "due_date"
	OrderByAmount  = "amount"
	OrderByStatus  = "status"
	OrderByCreated = "created_at"
)
