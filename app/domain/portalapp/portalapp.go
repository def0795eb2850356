// Package portalapp maintains the read-only tenant portal api. Every route
// is scoped to the caller's own ledger record through their portal profile.
package portalapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/errs"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/mid"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/invoicebus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/qrpaybus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/tenantbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/unitbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/page"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/web"
)

type app struct {
	tenantBus  *tenantbus.Core
	unitBus    *unitbus.Core
	invoiceBus *invoicebus.Core
	qrPayBus   *qrpaybus.Core
}

func newApp(cfg Config) *app {
	return &app{
		tenantBus:  cfg.TenantBus,
		unitBus:    cfg.UnitBus,
		invoiceBus: cfg.InvoiceBus,
		qrPayBus:   cfg.QRPayBus,
	}
}

// self resolves the caller's ledger record through their portal profile.
func (a *app) self(ctx context.Context) (tenantbus.Profile, tenantbus.Tenant, error) {
	userID, err := mid.GetUserID(ctx)
	if err != nil {
		return tenantbus.Profile{}, tenantbus.Tenant{}, errs.New(errs.Unauthenticated, err)
	}

	prf, err := a.tenantBus.QueryProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, tenantbus.ErrProfileNotFound) {
			return tenantbus.Profile{}, tenantbus.Tenant{}, errs.New(errs.NotFound, err)
		}
		return tenantbus.Profile{}, tenantbus.Tenant{}, errs.Errorf(errs.InternalOnlyLog, "query profile: userID[%s]: %s", userID, err)
	}

	tnt, err := a.tenantBus.QueryByID(ctx, prf.TenantID)
	if err != nil {
		return tenantbus.Profile{}, tenantbus.Tenant{}, errs.Errorf(errs.InternalOnlyLog, "query tenant: tenantID[%s]: %s", prf.TenantID, err)
	}

	return prf, tnt, nil
}

// profile returns the caller's identity page.
func (a *app) profile(ctx context.Context, _ *http.Request) web.Encoder {
	prf, tnt, err := a.self(ctx)
	if err != nil {
		return errs.GetError(err)
	}

	return toAppProfile(prf, tnt)
}

// bills returns the caller's invoices.
func (a *app) bills(ctx context.Context, _ *http.Request) web.Encoder {
	_, tnt, err := a.self(ctx)
	if err != nil {
		return errs.GetError(err)
	}

	filter := invoicebus.QueryFilter{TenantID: &tnt.ID}

	invs, err := a.invoiceBus.Query(ctx, filter, invoicebus.DefaultOrderBy, page.MustParse("1", "100"))
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "query bills: tenantID[%s]: %s", tnt.ID, err)
	}

	return toAppBills(invs)
}

// familyMembers returns the caller's registered family.
func (a *app) familyMembers(ctx context.Context, _ *http.Request) web.Encoder {
	_, tnt, err := a.self(ctx)
	if err != nil {
		return errs.GetError(err)
	}

	fms, err := a.tenantBus.QueryFamilyMembers(ctx, tnt.ID)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "query family: tenantID[%s]: %s", tnt.ID, err)
	}

	return toAppFamilyMembers(fms)
}

// documents returns the caller's attached documents.
func (a *app) documents(ctx context.Context, _ *http.Request) web.Encoder {
	_, tnt, err := a.self(ctx)
	if err != nil {
		return errs.GetError(err)
	}

	docs, err := a.tenantBus.QueryDocuments(ctx, tnt.ID)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "query documents: tenantID[%s]: %s", tnt.ID, err)
	}

	return toAppDocuments(docs)
}

// room returns the unit the caller occupies.
func (a *app) room(ctx context.Context, _ *http.Request) web.Encoder {
	_, tnt, err := a.self(ctx)
	if err != nil {
		return errs.GetError(err)
	}

	if tnt.UnitID == nil {
		return errs.Errorf(errs.NotFound, "no unit assigned")
	}

	unt, err := a.unitBus.QueryByID(ctx, *tnt.UnitID)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "query unit: unitID[%s]: %s", *tnt.UnitID, err)
	}

	return toAppRoom(unt)
}

// meterReadings returns the caller's utility readings.
func (a *app) meterReadings(ctx context.Context, _ *http.Request) web.Encoder {
	_, tnt, err := a.self(ctx)
	if err != nil {
		return errs.GetError(err)
	}

	mrs, err := a.tenantBus.QueryMeterReadings(ctx, tnt.ID)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "query readings: tenantID[%s]: %s", tnt.ID, err)
	}

	return toAppMeterReadings(mrs)
}

// payments returns the caller's QR payment history.
func (a *app) payments(ctx context.Context, _ *http.Request) web.Encoder {
	_, tnt, err := a.self(ctx)
	if err != nil {
		return errs.GetError(err)
	}

	reqs, err := a.qrPayBus.QueryByTenant(ctx, tnt.ID)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "query payments: tenantID[%s]: %s", tnt.ID, err)
	}

	return toAppPayments(reqs)
}
