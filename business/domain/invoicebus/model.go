package invoicebus

import (
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/types/invoicestatus"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/money"
)

// Invoice represents a rent or utility bill raised against a tenant.
type Invoice struct {
	ID          uuid.UUID
	OrgID       uuid.UUID
	TenantID    uuid.UUID
	Description string
	Amount      money.Money
	DueDate     time.Time
	Status      invoicestatus.Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewInvoice contains information needed to create a new invoice.
type NewInvoice struct {
	OrgID       uuid.UUID
	TenantID    uuid.UUID
	Description string
	Amount      money.Money
	DueDate     time.Time
}

// UpdateInvoice contains information needed to update an invoice.
type UpdateInvoice struct {
	Description *string
	Amount      *money.Money
	DueDate     *time.Time
}

// Payment represents a settlement recorded against an invoice. Recording a
// payment marks the invoice paid in the same transaction.
type Payment struct {
	ID         uuid.UUID
	InvoiceID  uuid.UUID
	Amount     money.Money
	Method     string
	Reference  string
	RecordedBy uuid.UUID
	CreatedAt  time.Time
}

// NewPayment contains information needed to record a payment.
type NewPayment struct {
	Amount     money.Money
	Method     string
	Reference  string
	RecordedBy uuid.UUID
}
