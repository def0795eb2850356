package userapp

import (
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/userbus"
)

var orderByFields = map[string]string{
	"user_id": userbus.OrderByID,
	"name":    userbus.OrderByName,
	"email":   userbus.OrderByEmail,
	"enabled": userbus.OrderByEnabled,
	"created": userbus.OrderByCreated,
}
