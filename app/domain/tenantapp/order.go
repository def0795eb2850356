package tenantapp

import (
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/tenantbus"
)

var orderByFields = map[string]string{
	"tenant_id":   tenantbus.OrderByID,
	"name":        tenantbus.OrderByName,
	"status":      tenantbus.OrderByStatus,
	"lease_start": tenantbus.OrderByLeaseStart,
	"rent":        tenantbus.OrderByRent,
	"created":     tenantbus.OrderByCreated,
}
