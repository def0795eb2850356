package invoicedb

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/invoicebus"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/invoicestatus"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/money"
)

type invoiceDB struct {
	ID          uuid.UUID `db:"invoice_id"`
	OrgID       uuid.UUID `db:"org_id"`
	TenantID    uuid.UUID `db:"tenant_id"`
	Description string    `db:"description"`
	Amount      float64   `db:"amount"`
	DueDate     time.Time `db:"due_date"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type paymentDB struct {
	ID         uuid.UUID `db:"payment_id"`
	InvoiceID  uuid.UUID `db:"invoice_id"`
	Amount     float64   `db:"amount"`
	Method     string    `db:"method"`
	Reference  string    `db:"reference"`
	RecordedBy uuid.UUID `db:"recorded_by"`
	CreatedAt  time.Time `db:"created_at"`
}

func toDBInvoice(inv invoicebus.Invoice) invoiceDB {
	return invoiceDB{
		ID:          inv.ID,
		OrgID:       inv.OrgID,
		TenantID:    inv.TenantID,
		Description: inv.Description,
		Amount:      inv.Amount.Value(),
		DueDate:     inv.DueDate.UTC(),
		Status:      inv.Status.String(),
		CreatedAt:   inv.CreatedAt.UTC(),
		UpdatedAt:   inv.UpdatedAt.UTC(),
	}
}

func toBusInvoice(dbInv invoiceDB) (invoicebus.Invoice, error) {
	amount, err := money.Parse(dbInv.Amount)
	if err != nil {
		return invoicebus.Invoice{}, fmt.Errorf("parse amount: %w", err)
	}

	status, err := invoicestatus.Parse(dbInv.Status)
	if err != nil {
		return invoicebus.Invoice{}, fmt.Errorf("parse status: %w", err)
	}

	inv := invoicebus.Invoice{
		ID:          dbInv.ID,
		OrgID:       dbInv.OrgID,
		TenantID:    dbInv.TenantID,
		Description: dbInv.Description,
		Amount:      amount,
		DueDate:     dbInv.DueDate.In(time.Local),
		Status:      status,
		CreatedAt:   dbInv.CreatedAt.In(time.Local),
		UpdatedAt:   dbInv.UpdatedAt.In(time.Local),
	}

	return inv, nil
}

func toBusInvoices(dbInvs []invoiceDB) ([]invoicebus.Invoice, error) {
	invs := make([]invoicebus.Invoice, len(dbInvs))

	for i, dbInv := range dbInvs {
		var err error
		invs[i], err = toBusInvoice(dbInv)
		if err != nil {
			return nil, err
		}
	}

	return invs, nil
}

func toDBPayment(pay invoicebus.Payment) paymentDB {
	return paymentDB{
		ID:         pay.ID,
		InvoiceID:  pay.InvoiceID,
		Amount:     pay.Amount.Value(),
		Method:     pay.Method,
		Reference:  pay.Reference,
		RecordedBy: pay.RecordedBy,
		CreatedAt:  pay.CreatedAt.UTC(),
	}
}

func toBusPayment(dbPay paymentDB) (invoicebus.Payment, error) {
	amount, err := money.Parse(dbPay.Amount)
	if err != nil {
		return invoicebus.Payment{}, fmt.Errorf("parse amount: %w", err)
	}

	pay := invoicebus.Payment{
		ID:         dbPay.ID,
		InvoiceID:  dbPay.InvoiceID,
		Amount:     amount,
		Method:     dbPay.Method,
		Reference:  dbPay.Reference,
		RecordedBy: dbPay.RecordedBy,
		CreatedAt:  dbPay.CreatedAt.In(time.Local),
	}

	return pay, nil
}

func toBusPayments(dbPays []paymentDB) ([]invoicebus.Payment, error) {
	pays := make([]invoicebus.Payment, len(dbPays))

	for i, dbPay := range dbPays {
		var err error
		pays[i], err = toBusPayment(dbPay)
		if err != nil {
			return nil, err
		}
	}

	return pays, nil
}
