package invoiceapp

import (
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/invoicebus"
)

var orderByFields = map[string]string{
	"invoice_id": invoicebus.OrderByID,
	"due_date":   invoicebus.OrderByDueDate,
	"amount":     invoicebus.OrderByAmount,
	"status":     invoicebus.OrderByStatus,
	"created":    invoicebus.OrderByCreated,
}
