package invoicedb

import (
	"fmt"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/invoicebus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/order"
)

var orderByFields = map[string]string{
	invoicebus.OrderByID:      "i.invoice_id",
	invoicebus.OrderByDueDate: "i.due_date",
	invoicebus.OrderByAmount:  "i.amount",
	invoicebus.OrderByStatus:  "i.status",
	invoicebus.OrderByCreated: "i.created_at",
}

func orderByClause(orderBy order.By) (string, error) {
	by, exists := orderByFields[orderBy.Field]
	if !exists {
		return "", fmt.Errorf("field %q does not exist", orderBy.Field)
	}

	return " ORDER BY " + by + " " + orderBy.Direction, nil
}
