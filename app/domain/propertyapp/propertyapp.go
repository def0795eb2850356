// Package propertyapp maintains the app layer api for properties and their
// units, including tenant placement.
package propertyapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/errs"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/mid"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/query"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/propertybus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/tenantbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/unitbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/order"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/page"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/web"
)

type app struct {
	propertyBus *propertybus.Core
	unitBus     *unitbus.Core
	tenantBus   *tenantbus.Core
}

func newApp(propertyBus *propertybus.Core, unitBus *unitbus.Core, tenantBus *tenantbus.Core) *app {
	return &app{
		propertyBus: propertyBus,
		unitBus:     unitBus,
		tenantBus:   tenantBus,
	}
}

// create adds a new property owned by the caller's org.
func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	var app NewProperty
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	orgID, err := mid.GetOrgID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "org missing in context: %s", err)
	}

	np, err := toBusNewProperty(app, orgID)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	prp, err := a.propertyBus.Create(ctx, np)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "create: %s", err)
	}

	return toAppProperty(prp)
}

// update modifies an existing property.
func (a *app) update(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateProperty
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	prp, err := a.queryPropertyScoped(ctx, r.PathValue("property_id"))
	if err != nil {
		return errs.GetError(err)
	}

	up, err := toBusUpdateProperty(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	updPrp, err := a.propertyBus.Update(ctx, prp, up)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "update: propertyID[%s]: %s", prp.ID, err)
	}

	return toAppProperty(updPrp)
}

// delete removes a property from the system.
func (a *app) delete(ctx context.Context, r *http.Request) web.Encoder {
	prp, err := a.queryPropertyScoped(ctx, r.PathValue("property_id"))
	if err != nil {
		return errs.GetError(err)
	}

	if err := a.propertyBus.Delete(ctx, prp); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "delete: propertyID[%s]: %s", prp.ID, err)
	}

	return nil
}

// query returns the caller org's properties with paging.
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

	orderBy, err := order.Parse(orderByFields, qp.OrderBy, propertybus.DefaultOrderBy)
	if err != nil {
		return errs.NewFieldErrors("order", err)
	}

	prps, err := a.propertyBus.Query(ctx, filter, orderBy, pg)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "query: %s", err)
	}

	total, err := a.propertyBus.Count(ctx, filter)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "count: %s", err)
	}

	return query.NewResult(toAppProperties(prps), total, pg.Number(), pg.RowsPerPage())
}

// queryByID returns a property by its ID.
func (a *app) queryByID(ctx context.Context, r *http.Request) web.Encoder {
	prp, err := a.queryPropertyScoped(ctx, r.PathValue("property_id"))
	if err != nil {
		return errs.GetError(err)
	}

	return toAppProperty(prp)
}

// =============================================================================
// Units

// createUnit adds a new unit under a property.
func (a *app) createUnit(ctx context.Context, r *http.Request) web.Encoder {
	var app NewUnit
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	orgID, err := mid.GetOrgID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "org missing in context: %s", err)
	}

	nu, err := toBusNewUnit(app, orgID)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	if _, err := a.queryPropertyScoped(ctx, nu.PropertyID.String()); err != nil {
		return errs.GetError(err)
	}

	unt, err := a.unitBus.Create(ctx, nu)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "create unit: %s", err)
	}

	return toAppUnit(unt)
}

// updateUnit modifies an existing unit.
func (a *app) updateUnit(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateUnit
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	unt, err := a.queryUnitScoped(ctx, r.PathValue("unit_id"))
	if err != nil {
		return errs.GetError(err)
	}

	uu, err := toBusUpdateUnit(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	updUnt, err := a.unitBus.Update(ctx, unt, uu)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "update unit: unitID[%s]: %s", unt.ID, err)
	}

	return toAppUnit(updUnt)
}

// deleteUnit removes a unit from the system.
func (a *app) deleteUnit(ctx context.Context, r *http.Request) web.Encoder {
	unt, err := a.queryUnitScoped(ctx, r.PathValue("unit_id"))
	if err != nil {
		return errs.GetError(err)
	}

	if err := a.unitBus.Delete(ctx, unt); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "delete unit: unitID[%s]: %s", unt.ID, err)
	}

	return nil
}

// queryUnits returns the caller org's units with paging.
func (a *app) queryUnits(ctx context.Context, r *http.Request) web.Encoder {
	qp := parseQueryParams(r)

	pg, err := page.Parse(qp.Page, qp.Rows)
	if err != nil {
		return errs.NewFieldErrors("page", err)
	}

	orgID, err := mid.GetOrgID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "org missing in context: %s", err)
	}

	filter, err := parseUnitFilter(qp)
	if err != nil {
		if v, ok := err.(*errs.Error); ok {
			return v
		}
		return errs.NewFieldErrors("filter", err)
	}
	filter.OrgID = &orgID

	orderBy, err := order.Parse(unitOrderByFields, qp.OrderBy, unitbus.DefaultOrderBy)
	if err != nil {
		return errs.NewFieldErrors("order", err)
	}

	unts, err := a.unitBus.Query(ctx, filter, orderBy, pg)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "query units: %s", err)
	}

	total, err := a.unitBus.Count(ctx, filter)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "count units: %s", err)
	}

	return query.NewResult(toAppUnits(unts), total, pg.Number(), pg.RowsPerPage())
}

// queryUnitByID returns a unit by its ID.
func (a *app) queryUnitByID(ctx context.Context, r *http.Request) web.Encoder {
	unt, err := a.queryUnitScoped(ctx, r.PathValue("unit_id"))
	if err != nil {
		return errs.GetError(err)
	}

	return toAppUnit(unt)
}

// assign places a tenant in a vacant unit. The occupant link, the unit
// status flip and the tenant ledger attachment ride one transaction.
func (a *app) assign(ctx context.Context, r *http.Request) web.Encoder {
	var app AssignTenant
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	tenantID, err := uuid.Parse(app.TenantID)
	if err != nil {
		return errs.NewFieldErrors("tenantId", err)
	}

	unt, err := a.queryUnitScoped(ctx, r.PathValue("unit_id"))
	if err != nil {
		return errs.GetError(err)
	}

	tx, err := mid.GetTran(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "transaction missing in context: %s", err)
	}

	unitBus, err := a.unitBus.NewWithTx(tx)
	if err != nil {
		return errs.Errorf(errs.Internal, "newwithtx: %s", err)
	}

	tenantBus, err := a.tenantBus.NewWithTx(tx)
	if err != nil {
		return errs.Errorf(errs.Internal, "newwithtx: %s", err)
	}

	tnt, err := tenantBus.QueryByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, tenantbus.ErrNotFound) {
			return errs.New(errs.NotFound, err)
		}
		return errs.Errorf(errs.InternalOnlyLog, "query tenant: tenantID[%s]: %s", tenantID, err)
	}

	if tnt.OrgID != unt.OrgID {
		return errs.New(errs.NotFound, tenantbus.ErrNotFound)
	}

	updUnt, err := unitBus.Assign(ctx, unt, tnt.ID)
	if err != nil {
		if errors.Is(err, unitbus.ErrNotVacant) {
			return errs.New(errs.FailedPrecondition, unitbus.ErrNotVacant)
		}
		return errs.Errorf(errs.InternalOnlyLog, "assign: unitID[%s]: %s", unt.ID, err)
	}

	if _, err := tenantBus.Attach(ctx, tnt, unt.PropertyID, unt.ID); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "attach tenant: tenantID[%s]: %s", tnt.ID, err)
	}

	return toAppUnit(updUnt)
}

// unassign clears a unit's occupant. The unit flip and the tenant ledger
// detachment ride one transaction.
func (a *app) unassign(ctx context.Context, r *http.Request) web.Encoder {
	unt, err := a.queryUnitScoped(ctx, r.PathValue("unit_id"))
	if err != nil {
		return errs.GetError(err)
	}

	tx, err := mid.GetTran(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "transaction missing in context: %s", err)
	}

	unitBus, err := a.unitBus.NewWithTx(tx)
	if err != nil {
		return errs.Errorf(errs.Internal, "newwithtx: %s", err)
	}

	tenantBus, err := a.tenantBus.NewWithTx(tx)
	if err != nil {
		return errs.Errorf(errs.Internal, "newwithtx: %s", err)
	}

	occupantID := unt.OccupantID

	updUnt, err := unitBus.Unassign(ctx, unt)
	if err != nil {
		if errors.Is(err, unitbus.ErrNotOccupied) {
			return errs.New(errs.FailedPrecondition, unitbus.ErrNotOccupied)
		}
		return errs.Errorf(errs.InternalOnlyLog, "unassign: unitID[%s]: %s", unt.ID, err)
	}

	if occupantID != nil {
		tnt, err := tenantBus.QueryByID(ctx, *occupantID)
		if err != nil {
			return errs.Errorf(errs.InternalOnlyLog, "query occupant: tenantID[%s]: %s", *occupantID, err)
		}

		if _, err := tenantBus.Detach(ctx, tnt); err != nil {
			return errs.Errorf(errs.InternalOnlyLog, "detach tenant: tenantID[%s]: %s", tnt.ID, err)
		}
	}

	return toAppUnit(updUnt)
}

// =============================================================================

// queryPropertyScoped loads a property and enforces org ownership. The
// errors it returns are already app level.
func (a *app) queryPropertyScoped(ctx context.Context, id string) (propertybus.Property, error) {
	propertyID, err := uuid.Parse(id)
	if err != nil {
		return propertybus.Property{}, errs.NewFieldErrors("property_id", err).ToError()
	}

	orgID, err := mid.GetOrgID(ctx)
	if err != nil {
		return propertybus.Property{}, errs.Errorf(errs.Internal, "org missing in context: %s", err)
	}

	prp, err := a.propertyBus.QueryByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, propertybus.ErrNotFound) {
			return propertybus.Property{}, errs.New(errs.NotFound, err)
		}
		return propertybus.Property{}, errs.Errorf(errs.InternalOnlyLog, "query: propertyID[%s]: %s", propertyID, err)
	}

	if prp.OrgID != orgID {
		return propertybus.Property{}, errs.New(errs.NotFound, propertybus.ErrNotFound)
	}

	return prp, nil
}

// queryUnitScoped loads a unit and enforces org ownership.
func (a *app) queryUnitScoped(ctx context.Context, id string) (unitbus.Unit, error) {
	unitID, err := uuid.Parse(id)
	if err != nil {
		return unitbus.Unit{}, errs.NewFieldErrors("unit_id", err).ToError()
	}

	orgID, err := mid.GetOrgID(ctx)
	if err != nil {
		return unitbus.Unit{}, errs.Errorf(errs.Internal, "org missing in context: %s", err)
	}

	unt, err := a.unitBus.QueryByID(ctx, unitID)
	if err != nil {
		if errors.Is(err, unitbus.ErrNotFound) {
			return unitbus.Unit{}, errs.New(errs.NotFound, err)
		}
		return unitbus.Unit{}, errs.Errorf(errs.InternalOnlyLog, "query: unitID[%s]: %s", unitID, err)
	}

	if unt.OrgID != orgID {
		return unitbus.Unit{}, errs.New(errs.NotFound, unitbus.ErrNotFound)
	}

	return unt, nil
}
