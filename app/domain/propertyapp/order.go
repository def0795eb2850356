package propertyapp

import (
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/propertybus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/unitbus"
)

var orderByFields = map[string]string{
	"property_id":   propertybus.OrderByID,
	"name":          propertybus.OrderByName,
	"property_type": propertybus.OrderByType,
	"created":       propertybus.OrderByCreated,
}

var unitOrderByFields = map[string]string{
	"unit_id": unitbus.OrderByID,
	"number":  unitbus.OrderByNumber,
	"floor":   unitbus.OrderByFloor,
	"rent":    unitbus.OrderByRent,
	"status":  unitbus.OrderByStatus,
}
