package maintdb

import (
	"fmt"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/maintbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/order"
)

var orderByFields = map[string]string{
	maintbus.OrderByID:       "mt.ticket_id",
	maintbus.OrderByTitle:    "mt.title",
	maintbus.OrderByStatus:   "mt.status",
	maintbus.OrderByPriority: "mt.priority",
	maintbus.OrderByPosition: "mt.board_position",
	maintbus.OrderByCreated:  "mt.created_at",
}

func orderByClause(orderBy order.By) (string, error) {
	by, exists := orderByFields[orderBy.Field]
	if !exists {
		return "", fmt.Errorf("field %q does not exist", orderBy.Field)
	}

	return " ORDER BY " + by + " " + orderBy.Direction, nil
}
