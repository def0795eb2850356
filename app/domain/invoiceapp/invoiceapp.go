// Package invoiceapp maintains the app layer api for invoices and their
// payments.
package invoiceapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/errs"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/mid"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/query"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/invoicebus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/order"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/page"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/web"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/invoicestatus"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/money"
)

type app struct {
	invoiceBus *invoicebus.Core
}

func newApp(invoiceBus *invoicebus.Core) *app {
	return &app{
		invoiceBus: invoiceBus,
	}
}

// create raises a new invoice for the caller's org.
func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	var app NewInvoice
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	orgID, err := mid.GetOrgID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "org missing in context: %s", err)
	}

	ni, err := toBusNewInvoice(app, orgID)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	inv, err := a.invoiceBus.Create(ctx, ni)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "create: %s", err)
	}

	return toAppInvoice(inv)
}

// update modifies an existing invoice.
func (a *app) update(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateInvoice
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	inv, err := a.queryInvoiceScoped(ctx, r.PathValue("invoice_id"))
	if err != nil {
		return errs.GetError(err)
	}

	ui, err := toBusUpdateInvoice(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	updInv, err := a.invoiceBus.Update(ctx, inv, ui)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "update: invoiceID[%s]: %s", inv.ID, err)
	}

	return toAppInvoice(updInv)
}

// transition moves an invoice to a new status, subject to the lifecycle
// rules.
func (a *app) transition(ctx context.Context, r *http.Request) web.Encoder {
	var app TransitionInvoice
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	to, err := invoicestatus.Parse(app.Status)
	if err != nil {
		return errs.NewFieldErrors("status", err)
	}

	inv, err := a.queryInvoiceScoped(ctx, r.PathValue("invoice_id"))
	if err != nil {
		return errs.GetError(err)
	}

	updInv, err := a.invoiceBus.Transition(ctx, inv, to)
	if err != nil {
		if errors.Is(err, invoicebus.ErrInvalidTransition) {
			return errs.New(errs.FailedPrecondition, invoicebus.ErrInvalidTransition)
		}
		return errs.Errorf(errs.InternalOnlyLog, "transition: invoiceID[%s]: %s", inv.ID, err)
	}

	return toAppInvoice(updInv)
}

// recordPayment records a settlement and marks the invoice paid in the
// same transaction.
func (a *app) recordPayment(ctx context.Context, r *http.Request) web.Encoder {
	var app NewPayment
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	inv, err := a.queryInvoiceScoped(ctx, r.PathValue("invoice_id"))
	if err != nil {
		return errs.GetError(err)
	}

	amt, err := money.Parse(app.Amount)
	if err != nil {
		return errs.NewFieldErrors("amount", err)
	}

	userID, err := mid.GetUserID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "user missing in context: %s", err)
	}

	tx, err := mid.GetTran(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "transaction missing in context: %s", err)
	}

	invoiceBus, err := a.invoiceBus.NewWithTx(tx)
	if err != nil {
		return errs.Errorf(errs.Internal, "newwithtx: %s", err)
	}

	pay, err := invoiceBus.RecordPayment(ctx, inv, invoicebus.NewPayment{
		Amount:     amt,
		Method:     app.Method,
		Reference:  app.Reference,
		RecordedBy: userID,
	})
	if err != nil {
		if errors.Is(err, invoicebus.ErrInvalidTransition) {
			return errs.New(errs.FailedPrecondition, invoicebus.ErrInvalidTransition)
		}
		return errs.Errorf(errs.InternalOnlyLog, "record payment: invoiceID[%s]: %s", inv.ID, err)
	}

	return toAppPayment(pay)
}

// queryPayments returns the settlements recorded against an invoice.
func (a *app) queryPayments(ctx context.Context, r *http.Request) web.Encoder {
	inv, err := a.queryInvoiceScoped(ctx, r.PathValue("invoice_id"))
	if err != nil {
		return errs.GetError(err)
	}

	pays, err := a.invoiceBus.QueryPayments(ctx, inv.ID)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "query payments: invoiceID[%s]: %s", inv.ID, err)
	}

	return toAppPayments(pays)
}

// query returns the caller org's invoices with paging.
func (a *app) query(ctx context.Context, r *http.Request) web.Encoder {
	qp := parseQueryParams(r)

	pg, err := page.Parse(qp.Page, qp.Rows)
	if err != nil {
		return errs.NewFieldErrors("page", err)
	}

	orgID, err := mid.GetOrgID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "org missing in context: %s", err)
	}

	filter, err := parseFilter(qp)
	if err != nil {
		if v, ok := err.(*errs.Error); ok {
			return v
		}
		return errs.NewFieldErrors("filter", err)
	}
	filter.OrgID = &orgID

	orderBy, err := order.Parse(orderByFields, qp.OrderBy, invoicebus.DefaultOrderBy)
	if err != nil {
		return errs.NewFieldErrors("order", err)
	}

	invs, err := a.invoiceBus.Query(ctx, filter, orderBy, pg)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "query: %s", err)
	}

	total, err := a.invoiceBus.Count(ctx, filter)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "count: %s", err)
	}

	return query.NewResult(toAppInvoices(invs), total, pg.Number(), pg.RowsPerPage())
}

// queryByID returns an invoice by its ID.
func (a *app) queryByID(ctx context.Context, r *http.Request) web.Encoder {
	inv, err := a.queryInvoiceScoped(ctx, r.PathValue("invoice_id"))
	if err != nil {
		return errs.GetError(err)
	}

	return toAppInvoice(inv)
}

// queryInvoiceScoped loads an invoice and enforces org ownership.
func (a *app) queryInvoiceScoped(ctx context.Context, id string) (invoicebus.Invoice, error) {
	invoiceID, err := uuid.Parse(id)
	if err != nil {
		return invoicebus.Invoice{}, errs.NewFieldErrors("invoice_id", err).ToError()
	}

	orgID, err := mid.GetOrgID(ctx)
	if err != nil {
		return invoicebus.Invoice{}, errs.Errorf(errs.Internal, "org missing in context: %s", err)
	}

	inv, err := a.invoiceBus.QueryByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, invoicebus.ErrNotFound) {
			return invoicebus.Invoice{}, errs.New(errs.NotFound, err)
		}
		return invoicebus.Invoice{}, errs.Errorf(errs.InternalOnlyLog, "query: invoiceID[%s]: %s", invoiceID, err)
	}

	if inv.OrgID != orgID {
		return invoicebus.Invoice{}, errs.New(errs.NotFound, invoicebus.ErrNotFound)
	}

	return inv, nil
}
