// Package tenantapp maintains the app layer api for the tenant ledger,
// portal provisioning and the tenant detail sub-resources.
package tenantapp

import (
	"context"
	"errors"
	"net/http"
	"net/mail"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/errs"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/mid"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/query"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/invoicebus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/tenantbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/unitbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/userbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/order"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/page"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/web"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/password"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/phone"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/role"
)

type app struct {
	tenantBus  *tenantbus.Core
	userBus    *userbus.Core
	unitBus    *unitbus.Core
	invoiceBus *invoicebus.Core
}

func newApp(cfg Config) *app {
	return &app{
		tenantBus:  cfg.TenantBus,
		userBus:    cfg.UserBus,
		unitBus:    cfg.UnitBus,
		invoiceBus: cfg.InvoiceBus,
	}
}

// create adds a new ledger record for the caller's org.
func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	var app NewTenant
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	orgID, err := mid.GetOrgID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "org missing in context: %s", err)
	}

	nt, err := toBusNewTenant(app, orgID)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	tnt, err := a.tenantBus.Create(ctx, nt)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "create: %s", err)
	}

	return toAppTenant(tnt)
}

// update modifies an existing ledger record.
func (a *app) update(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateTenant
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	tnt, err := a.queryTenantScoped(ctx, r.PathValue("tenant_id"))
	if err != nil {
		return errs.GetError(err)
	}

	ut, err := toBusUpdateTenant(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	updTnt, err := a.tenantBus.Update(ctx, tnt, ut)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "update: tenantID[%s]: %s", tnt.ID, err)
	}

	return toAppTenant(updTnt)
}

// delete removes a ledger record from the system.
func (a *app) delete(ctx context.Context, r *http.Request) web.Encoder {
	tnt, err := a.queryTenantScoped(ctx, r.PathValue("tenant_id"))
	if err != nil {
		return errs.GetError(err)
	}

	if err := a.tenantBus.Delete(ctx, tnt); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "delete: tenantID[%s]: %s", tnt.ID, err)
	}

	return nil
}

// query returns the caller org's ledger records with paging.
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

	orderBy, err := order.Parse(orderByFields, qp.OrderBy, tenantbus.DefaultOrderBy)
	if err != nil {
		return errs.NewFieldErrors("order", err)
	}

	tnts, err := a.tenantBus.Query(ctx, filter, orderBy, pg)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "query: %s", err)
	}

	total, err := a.tenantBus.Count(ctx, filter)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "count: %s", err)
	}

	return query.NewResult(toAppTenants(tnts), total, pg.Number(), pg.RowsPerPage())
}

// queryByID returns a ledger record by its ID.
func (a *app) queryByID(ctx context.Context, r *http.Request) web.Encoder {
	tnt, err := a.queryTenantScoped(ctx, r.PathValue("tenant_id"))
	if err != nil {
		return errs.GetError(err)
	}

	return toAppTenant(tnt)
}

// statistics summarizes the caller org's ledger.
func (a *app) statistics(ctx context.Context, _ *http.Request) web.Encoder {
	orgID, err := mid.GetOrgID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "org missing in context: %s", err)
	}

	stats, err := a.tenantBus.Statistics(ctx, orgID)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "statistics: %s", err)
	}

	return toAppStatistics(stats)
}

// provisionPortal opens portal access for a ledger tenant: the auth user
// with the tenant role and the linking profile are created in one
// transaction.
func (a *app) provisionPortal(ctx context.Context, r *http.Request) web.Encoder {
	var app NewPortalAccount
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	tnt, err := a.queryTenantScoped(ctx, r.PathValue("tenant_id"))
	if err != nil {
		return errs.GetError(err)
	}

	addr, err := mail.ParseAddress(tnt.Email)
	if err != nil {
		return errs.NewFieldErrors("email", err)
	}

	pass, err := password.Parse(app.Password)
	if err != nil {
		return errs.NewFieldErrors("password", err)
	}

	ph, err := phone.ParseNull(tnt.Phone.String())
	if err != nil {
		return errs.NewFieldErrors("phone", err)
	}

	tx, err := mid.GetTran(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "transaction missing in context: %s", err)
	}

	userBus, err := a.userBus.NewWithTx(tx)
	if err != nil {
		return errs.Errorf(errs.Internal, "newwithtx: %s", err)
	}

	tenantBus, err := a.tenantBus.NewWithTx(tx)
	if err != nil {
		return errs.Errorf(errs.Internal, "newwithtx: %s", err)
	}

	usr, err := userBus.Create(ctx, userbus.NewUser{
		OrgID:    tnt.OrgID,
		Name:     tnt.Name,
		Email:    *addr,
		Phone:    ph,
		Roles:    []role.Role{role.Tenant},
		Password: pass,
	})
	if err != nil {
		if errors.Is(err, userbus.ErrUniqueEmail) {
			return errs.New(errs.Aborted, userbus.ErrUniqueEmail)
		}
		return errs.Errorf(errs.InternalOnlyLog, "create portal user: tenantID[%s]: %s", tnt.ID, err)
	}

	prf, err := tenantBus.CreateProfile(ctx, usr.ID, tnt.ID)
	if err != nil {
		if errors.Is(err, tenantbus.ErrProfileExists) {
			return errs.New(errs.Aborted, tenantbus.ErrProfileExists)
		}
		return errs.Errorf(errs.InternalOnlyLog, "create profile: tenantID[%s]: %s", tnt.ID, err)
	}

	return toAppProfile(prf)
}

// =============================================================================

// queryTenantScoped loads a ledger record and enforces org ownership.
func (a *app) queryTenantScoped(ctx context.Context, id string) (tenantbus.Tenant, error) {
	tenantID, err := uuid.Parse(id)
	if err != nil {
		return tenantbus.Tenant{}, errs.NewFieldErrors("tenant_id", err).ToError()
	}

	orgID, err := mid.GetOrgID(ctx)
	if err != nil {
		return tenantbus.Tenant{}, errs.Errorf(errs.Internal, "org missing in context: %s", err)
	}

	tnt, err := a.tenantBus.QueryByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, tenantbus.ErrNotFound) {
			return tenantbus.Tenant{}, errs.New(errs.NotFound, err)
		}
		return tenantbus.Tenant{}, errs.Errorf(errs.InternalOnlyLog, "query: tenantID[%s]: %s", tenantID, err)
	}

	if tnt.OrgID != orgID {
		return tenantbus.Tenant{}, errs.New(errs.NotFound, tenantbus.ErrNotFound)
	}

	return tnt, nil
}
