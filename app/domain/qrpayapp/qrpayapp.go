// Package qrpayapp maintains the app layer api for QR payment requests:
// tenant-side generation and proof submission, admin-side verification.
package qrpayapp

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/errs"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/mid"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/auditbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/qrpaybus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/tenantbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/web"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/money"
)

type app struct {
	qrPayBus  *qrpaybus.Core
	tenantBus *tenantbus.Core
	auditBus  *auditbus.Core
}

func newApp(qrPayBus *qrpaybus.Core, tenantBus *tenantbus.Core, auditBus *auditbus.Core) *app {
	return &app{
		qrPayBus:  qrPayBus,
		tenantBus: tenantBus,
		auditBus:  auditBus,
	}
}

// generate creates a payment request for the caller's own ledger record.
func (a *app) generate(ctx context.Context, r *http.Request) web.Encoder {
	var app NewQRPayment
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	tnt, err := a.selfTenant(ctx)
	if err != nil {
		return errs.GetError(err)
	}

	amt, err := money.Parse(app.Amount)
	if err != nil {
		return errs.NewFieldErrors("amount", err)
	}

	req, err := a.qrPayBus.Generate(ctx, qrpaybus.NewRequest{
		OrgID:          tnt.OrgID,
		TenantID:       tnt.ID,
		Amount:         amt,
		BillReferences: app.BillRefs,
	})
	if err != nil {
		switch {
		case errors.Is(err, qrpaybus.ErrInvalidAmount):
			return errs.New(errs.InvalidArgument, err)
		case errors.Is(err, qrpaybus.ErrNoBillReferences):
			return errs.New(errs.InvalidArgument, err)
		}
		return errs.Errorf(errs.InternalOnlyLog, "generate: tenantID[%s]: %s", tnt.ID, err)
	}

	return toAppQRPayment(req)
}

// queryOwn returns the caller's payment request history.
func (a *app) queryOwn(ctx context.Context, _ *http.Request) web.Encoder {
	tnt, err := a.selfTenant(ctx)
	if err != nil {
		return errs.GetError(err)
	}

	reqs, err := a.qrPayBus.QueryByTenant(ctx, tnt.ID)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "query: tenantID[%s]: %s", tnt.ID, err)
	}

	return toAppQRPayments(reqs)
}

// queryPending returns the org's requests awaiting verification, oldest
// first.
func (a *app) queryPending(ctx context.Context, _ *http.Request) web.Encoder {
	orgID, err := mid.GetOrgID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "org missing in context: %s", err)
	}

	reqs, err := a.qrPayBus.QueryPending(ctx, orgID)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "query pending: orgID[%s]: %s", orgID, err)
	}

	return toAppQRPayments(reqs)
}

// submitScreenshot attaches payment proof to the caller's own pending
// request. A second submission is rejected, not overwritten.
func (a *app) submitScreenshot(ctx context.Context, r *http.Request) web.Encoder {
	var app SubmitScreenshot
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	requestID, err := uuid.Parse(r.PathValue("request_id"))
	if err != nil {
		return errs.NewFieldErrors("request_id", err)
	}

	tnt, err := a.selfTenant(ctx)
	if err != nil {
		return errs.GetError(err)
	}

	req, err := a.qrPayBus.QueryByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, qrpaybus.ErrNotFound) {
			return errs.New(errs.NotFound, err)
		}
		return errs.Errorf(errs.InternalOnlyLog, "query: requestID[%s]: %s", requestID, err)
	}

	if req.TenantID != tnt.ID {
		return errs.New(errs.NotFound, qrpaybus.ErrNotFound)
	}

	updReq, err := a.qrPayBus.SubmitScreenshot(ctx, requestID, app.ScreenshotURL)
	if err != nil {
		switch {
		case errors.Is(err, qrpaybus.ErrNotFound):
			return errs.New(errs.NotFound, err)
		case errors.Is(err, qrpaybus.ErrAlreadySubmitted):
			return errs.New(errs.Aborted, qrpaybus.ErrAlreadySubmitted)
		}
		return errs.Errorf(errs.InternalOnlyLog, "submit: requestID[%s]: %s", requestID, err)
	}

	return toAppQRPayment(updReq)
}

// verify records the admin decision on a submitted request and appends
// the audit entry in the same transaction.
func (a *app) verify(ctx context.Context, r *http.Request) web.Encoder {
	var app VerifyQRPayment
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	requestID, err := uuid.Parse(r.PathValue("request_id"))
	if err != nil {
		return errs.NewFieldErrors("request_id", err)
	}

	orgID, err := mid.GetOrgID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "org missing in context: %s", err)
	}

	userID, err := mid.GetUserID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "user missing in context: %s", err)
	}

	tx, err := mid.GetTran(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "transaction missing in context: %s", err)
	}

	qrPayBus, err := a.qrPayBus.NewWithTx(tx)
	if err != nil {
		return errs.Errorf(errs.Internal, "newwithtx: %s", err)
	}

	auditBus, err := a.auditBus.NewWithTx(tx)
	if err != nil {
		return errs.Errorf(errs.Internal, "newwithtx: %s", err)
	}

	req, err := qrPayBus.QueryByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, qrpaybus.ErrNotFound) {
			return errs.New(errs.NotFound, err)
		}
		return errs.Errorf(errs.InternalOnlyLog, "query: requestID[%s]: %s", requestID, err)
	}

	if req.OrgID != orgID {
		return errs.New(errs.NotFound, qrpaybus.ErrNotFound)
	}

	updReq, err := qrPayBus.Verify(ctx, req, app.Approve, userID, app.Notes)
	if err != nil {
		if errors.Is(err, qrpaybus.ErrNotSubmitted) {
			return errs.New(errs.FailedPrecondition, qrpaybus.ErrNotSubmitted)
		}
		return errs.Errorf(errs.InternalOnlyLog, "verify: requestID[%s]: %s", requestID, err)
	}

	action := "qr_payment.rejected"
	if app.Approve {
		action = "qr_payment.approved"
	}

	notes := app.Notes
	if notes == "" {
		notes = "bills " + strings.Join(req.BillReferences, ",")
	}

	if _, err := auditBus.Append(ctx, auditbus.NewEntry{
		ActorID:  userID,
		Action:   action,
		Entity:   "qr_payment_request",
		EntityID: req.ID.String(),
		Notes:    notes,
	}); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "audit: requestID[%s]: %s", requestID, err)
	}

	return toAppQRPayment(updReq)
}

// selfTenant resolves the caller's ledger record through their portal
// profile.
func (a *app) selfTenant(ctx context.Context) (tenantbus.Tenant, error) {
	userID, err := mid.GetUserID(ctx)
	if err != nil {
		return tenantbus.Tenant{}, errs.New(errs.Unauthenticated, err)
	}

	prf, err := a.tenantBus.QueryProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, tenantbus.ErrProfileNotFound) {
			return tenantbus.Tenant{}, errs.New(errs.NotFound, err)
		}
		return tenantbus.Tenant{}, errs.Errorf(errs.InternalOnlyLog, "query profile: userID[%s]: %s", userID, err)
	}

	tnt, err := a.tenantBus.QueryByID(ctx, prf.TenantID)
	if err != nil {
		return tenantbus.Tenant{}, errs.Errorf(errs.InternalOnlyLog, "query tenant: tenantID[%s]: %s", prf.TenantID, err)
	}

	return tnt, nil
}
