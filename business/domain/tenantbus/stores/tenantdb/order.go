package tenantdb

import (
	"fmt"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/tenantbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/order"
)

var orderByFields = map[string]string{
	tenantbus.OrderByID:         "t.tenant_id",
	tenantbus.OrderByName:       "t.name",
	tenantbus.OrderByStatus:     "t.status",
	tenantbus.OrderByLeaseStart: "t.lease_start",
	tenantbus.OrderByRent:       "t.monthly_rent",
	tenantbus.OrderByCreated:    "t.created_at",
}

func orderByClause(orderBy order.By) (string, error) {
	by, exists := orderByFields[orderBy.Field]
	if !exists {
		return "", fmt.Errorf("field %q does not exist", orderBy.Field)
	}

	return " ORDER BY " + by + " " + orderBy.Direction, nil
}
