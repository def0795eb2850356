package unitdb

import (
	"fmt"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/unitbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/order"
)

var orderByFields = map[string]string{
	unitbus.OrderByID:     "un.unit_id",
	unitbus.OrderByNumber: "un.unit_number",
	unitbus.OrderByFloor:  "un.floor",
	unitbus.OrderByRent:   "un.rent",
	unitbus.OrderByStatus: "un.status",
}

func orderByClause(orderBy order.By) (string, error) {
	by, exists := orderByFields[orderBy.Field]
	if !exists {
		return "", fmt.Errorf("field %q does not exist", orderBy.Field)
	}

	return " ORDER BY " + by + " " + orderBy.Direction, nil
}
