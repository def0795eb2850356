package maintapp

import (
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/maintbus"
)

var orderByFields = map[string]string{
	"ticket_id": maintbus.OrderByID,
	"title":     maintbus.OrderByTitle,
	"status":    maintbus.OrderByStatus,
	"priority":  maintbus.OrderByPriority,
	"position":  maintbus.OrderByPosition,
	"created":   maintbus.OrderByCreated,
}
