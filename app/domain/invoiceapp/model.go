package invoiceapp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/errs"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/invoicebus"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/money"
)

// Invoice represents a rent or utility bill raised against a tenant.
type Invoice struct {
	ID          string  `json:"id"`
	OrgID       string  `json:"orgId"`
	TenantID    string  `json:"tenantId"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	DueDate     string  `json:"dueDate"`
	Status      string  `json:"status"`
	DateCreated string  `json:"dateCreated"`
	DateUpdated string  `json:"dateUpdated"`
}

// Encode implements the encoder interface.
func (i Invoice) Encode() ([]byte, string, error) {
	data, err := json.Marshal(i)
	return data, "application/json", err
}

func toAppInvoice(bus invoicebus.Invoice) Invoice {
	return Invoice{
		ID:          bus.ID.String(),
		OrgID:       bus.OrgID.String(),
		TenantID:    bus.TenantID.String(),
		Description: bus.Description,
		Amount:      bus.Amount.Value(),
		DueDate:     bus.DueDate.Format(time.RFC3339),
		Status:      bus.Status.String(),
		DateCreated: bus.CreatedAt.Format(time.RFC3339),
		DateUpdated: bus.UpdatedAt.Format(time.RFC3339),
	}
}

func toAppInvoices(invs []invoicebus.Invoice) []Invoice {
	app := make([]Invoice, len(invs))
	for i, inv := range invs {
		app[i] = toAppInvoice(inv)
	}
	return app
}

// NewInvoice defines the data needed to raise an invoice.
type NewInvoice struct {
	TenantID    string  `json:"tenantId" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	DueDate     string  `json:"dueDate" validate:"required"`
}

// Decode implements the decoder interface.
func (app *NewInvoice) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewInvoice) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewInvoice(app NewInvoice, orgID uuid.UUID) (invoicebus.NewInvoice, error) {
	tenantID, err := uuid.Parse(app.TenantID)
	if err != nil {
		return invoicebus.NewInvoice{}, fmt.Errorf("parse tenant id: %w", err)
	}

	amt, err := money.Parse(app.Amount)
	if err != nil {
		return invoicebus.NewInvoice{}, fmt.Errorf("parse amount: %w", err)
	}

	dueDate, err := time.Parse(time.RFC3339, app.DueDate)
	if err != nil {
		return invoicebus.NewInvoice{}, fmt.Errorf("parse due date: %w", err)
	}

	bus := invoicebus.NewInvoice{
		OrgID:       orgID,
		TenantID:    tenantID,
		Description: app.Description,
		Amount:      amt,
		DueDate:     dueDate,
	}

	return bus, nil
}

// UpdateInvoice defines the data that can be updated on an invoice.
type UpdateInvoice struct {
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount" validate:"omitempty,gt=0"`
	DueDate     *string  `json:"dueDate"`
}

// Decode implements the decoder interface.
func (app *UpdateInvoice) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateInvoice) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateInvoice(app UpdateInvoice) (invoicebus.UpdateInvoice, error) {
	var bus invoicebus.UpdateInvoice

	if app.Amount != nil {
		amt, err := money.Parse(*app.Amount)
		if err != nil {
			return invoicebus.UpdateInvoice{}, fmt.Errorf("parse amount: %w", err)
		}
		bus.Amount = &amt
	}

	if app.DueDate != nil {
		t, err := time.Parse(time.RFC3339, *app.DueDate)
		if err != nil {
			return invoicebus.UpdateInvoice{}, fmt.Errorf("parse due date: %w", err)
		}
		bus.DueDate = &t
	}

	bus.Description = app.Description

	return bus, nil
}

// TransitionInvoice defines the data needed to move an invoice to a new
// status.
type TransitionInvoice struct {
	Status string `json:"status" validate:"required"`
}

// Decode implements the decoder interface.
func (app *TransitionInvoice) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app TransitionInvoice) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

// Payment represents a settlement recorded against an invoice.
type Payment struct {
	ID          string  `json:"id"`
	InvoiceID   string  `json:"invoiceId"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
	Reference   string  `json:"reference"`
	RecordedBy  string  `json:"recordedBy"`
	DateCreated string  `json:"dateCreated"`
}

// Encode implements the encoder interface.
func (p Payment) Encode() ([]byte, string, error) {
	data, err := json.Marshal(p)
	return data, "application/json", err
}

func toAppPayment(bus invoicebus.Payment) Payment {
	return Payment{
		ID:          bus.ID.String(),
		InvoiceID:   bus.InvoiceID.String(),
		Amount:      bus.Amount.Value(),
		Method:      bus.Method,
		Reference:   bus.Reference,
		RecordedBy:  bus.RecordedBy.String(),
		DateCreated: bus.CreatedAt.Format(time.RFC3339),
	}
}

// Payments wraps an invoice's settlement list for encoding.
type Payments struct {
	Items []Payment `json:"items"`
}

// Encode implements the encoder interface.
func (p Payments) Encode() ([]byte, string, error) {
	data, err := json.Marshal(p)
	return data, "application/json", err
}

func toAppPayments(pays []invoicebus.Payment) Payments {
	items := make([]Payment, len(pays))
	for i, pay := range pays {
		items[i] = toAppPayment(pay)
	}
	return Payments{Items: items}
}

// NewPayment defines the data needed to record a settlement.
type NewPayment struct {
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Method    string  `json:"method" validate:"required"`
	Reference string  `json:"reference"`
}

// Decode implements the decoder interface.
func (app *NewPayment) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewPayment) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}
