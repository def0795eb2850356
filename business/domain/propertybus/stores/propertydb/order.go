package propertydb

import (
	"fmt"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/propertybus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/order"
)

var orderByFields = map[string]string{
	propertybus.OrderByID:      "p.property_id",
	propertybus.OrderByName:    "p.name",
	propertybus.OrderByType:    "p.property_type",
	propertybus.OrderByCreated: "p.created_at",
}

func orderByClause(orderBy order.By) (string, error) {
	by, exists := orderByFields[orderBy.Field]
	if !exists {
		return "", fmt.Errorf("field %q does not exist", orderBy.Field)
	}

	return " ORDER BY " + by + " " + orderBy.Direction, nil
}
