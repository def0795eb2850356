// Package dbadminapp maintains the app layer api for the ops console. Every
// operation works against the allowlist kept by the business layer, and every
// mutation leaves an audit record in the same transaction.
package dbadminapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/errs"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/mid"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/query"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/auditbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/dbadminbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/page"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/web"
)

type app struct {
	dbAdminBus *dbadminbus.Core
	auditBus   *auditbus.Core
}

func newApp(dbAdminBus *dbadminbus.Core, auditBus *auditbus.Core) *app {
	return &app{
		dbAdminBus: dbAdminBus,
		auditBus:   auditBus,
	}
}

func (a *app) tables(ctx context.Context, r *http.Request) web.Encoder {
	return toAppTables(a.dbAdminBus.Tables())
}

func (a *app) columns(ctx context.Context, r *http.Request) web.Encoder {
	cols, err := a.dbAdminBus.Columns(ctx, r.PathValue("table"))
	if err != nil {
		return mapOpsError("columns", err)
	}

	return toAppColumns(cols)
}

func (a *app) queryRows(ctx context.Context, r *http.Request) web.Encoder {
	values := r.URL.Query()

	pg, err := page.Parse(values.Get("page"), values.Get("rows"))
	if err != nil {
		return errs.NewFieldErrors("page", err)
	}

	filters := make(map[string]any)
	for name := range values {
		switch name {
		case "page", "rows", "orderBy", "desc":
			continue
		}
		filters[name] = values.Get(name)
	}

	rp, err := a.dbAdminBus.QueryRows(ctx, r.PathValue("table"), filters, values.Get("orderBy"), values.Get("desc") == "true", pg)
	if err != nil {
		return mapOpsError("queryrows", err)
	}

	return query.NewResult(rp.Rows, rp.Total, pg.Number(), pg.RowsPerPage())
}

func (a *app) insertRow(ctx context.Context, r *http.Request) web.Encoder {
	var app RowValues
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	table := r.PathValue("table")

	dbAdminBus, auditBus, actorID, err := a.withTx(ctx)
	if err != nil {
		return errs.GetError(err)
	}

	if err := dbAdminBus.InsertRow(ctx, table, app.Values); err != nil {
		return mapOpsError("insertrow", err)
	}

	ne := auditbus.NewEntry{
		ActorID: actorID,
		Action:  "ops.row.inserted",
		Entity:  table,
		Notes:   fmt.Sprintf("%d columns", len(app.Values)),
	}
	if _, err := auditBus.Append(ctx, ne); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "audit append: %s", err)
	}

	return web.NoResponse{}
}

func (a *app) updateRow(ctx context.Context, r *http.Request) web.Encoder {
	var app RowValues
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	table := r.PathValue("table")
	pk := r.PathValue("pk")

	dbAdminBus, auditBus, actorID, err := a.withTx(ctx)
	if err != nil {
		return errs.GetError(err)
	}

	if err := dbAdminBus.UpdateRow(ctx, table, pk, app.Values); err != nil {
		return mapOpsError("updaterow", err)
	}

	ne := auditbus.NewEntry{
		ActorID:  actorID,
		Action:   "ops.row.updated",
		Entity:   table,
		EntityID: pk,
		Notes:    fmt.Sprintf("%d columns", len(app.Values)),
	}
	if _, err := auditBus.Append(ctx, ne); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "audit append: %s", err)
	}

	return web.NoResponse{}
}

func (a *app) deleteRow(ctx context.Context, r *http.Request) web.Encoder {
	table := r.PathValue("table")
	pk := r.PathValue("pk")

	dbAdminBus, auditBus, actorID, err := a.withTx(ctx)
	if err != nil {
		return errs.GetError(err)
	}

	if err := dbAdminBus.DeleteRow(ctx, table, pk); err != nil {
		return mapOpsError("deleterow", err)
	}

	ne := auditbus.NewEntry{
		ActorID:  actorID,
		Action:   "ops.row.deleted",
		Entity:   table,
		EntityID: pk,
	}
	if _, err := auditBus.Append(ctx, ne); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "audit append: %s", err)
	}

	return web.NoResponse{}
}

func (a *app) enums(ctx context.Context, r *http.Request) web.Encoder {
	enums, err := a.dbAdminBus.Enums(ctx)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "enums: %s", err)
	}

	return toAppEnums(enums)
}

func (a *app) addEnumValue(ctx context.Context, r *http.Request) web.Encoder {
	var app NewEnumValue
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	enumName := r.PathValue("enum")

	dbAdminBus, auditBus, actorID, err := a.withTx(ctx)
	if err != nil {
		return errs.GetError(err)
	}

	if err := dbAdminBus.AddEnumValue(ctx, enumName, app.Value); err != nil {
		return mapOpsError("addenumvalue", err)
	}

	ne := auditbus.NewEntry{
		ActorID:  actorID,
		Action:   "ops.enum.value_added",
		Entity:   enumName,
		EntityID: app.Value,
	}
	if _, err := auditBus.Append(ctx, ne); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "audit append: %s", err)
	}

	return web.NoResponse{}
}

func (a *app) auditLog(ctx context.Context, r *http.Request) web.Encoder {
	values := r.URL.Query()

	pg, err := page.Parse(values.Get("page"), values.Get("rows"))
	if err != nil {
		return errs.NewFieldErrors("page", err)
	}

	var filter auditbus.QueryFilter
	var fieldErrors errs.FieldErrors

	if v := values.Get("actor_id"); v != "" {
		id, err := uuid.Parse(v)
		switch err {
		case nil:
			filter.ActorID = &id
		default:
			fieldErrors.Add("actor_id", err)
		}
	}
	if v := values.Get("action"); v != "" {
		filter.Action = &v
	}
	if v := values.Get("entity"); v != "" {
		filter.Entity = &v
	}
	if fieldErrors != nil {
		return fieldErrors
	}

	ents, err := a.auditBus.Query(ctx, filter, pg)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "query: %s", err)
	}

	total, err := a.auditBus.Count(ctx, filter)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "count: %s", err)
	}

	return query.NewResult(toAppAuditEntries(ents), total, pg.Number(), pg.RowsPerPage())
}

// withTx binds both cores to the request transaction and resolves the actor.
func (a *app) withTx(ctx context.Context) (*dbadminbus.Core, *auditbus.Core, uuid.UUID, error) {
	actorID, err := mid.GetUserID(ctx)
	if err != nil {
		return nil, nil, uuid.UUID{}, errs.Errorf(errs.Internal, "user missing in context: %s", err)
	}

	tx, err := mid.GetTran(ctx)
	if err != nil {
		return nil, nil, uuid.UUID{}, errs.Errorf(errs.Internal, "transaction missing in context: %s", err)
	}

	dbAdminBus, err := a.dbAdminBus.NewWithTx(tx)
	if err != nil {
		return nil, nil, uuid.UUID{}, errs.Errorf(errs.Internal, "newwithtx: %s", err)
	}

	auditBus, err := a.auditBus.NewWithTx(tx)
	if err != nil {
		return nil, nil, uuid.UUID{}, errs.Errorf(errs.Internal, "newwithtx: %s", err)
	}

	return dbAdminBus, auditBus, actorID, nil
}

func mapOpsError(op string, err error) *errs.Error {
	switch {
	case errors.Is(err, dbadminbus.ErrTableNotAllowed):
		return errs.New(errs.NotFound, err)
	case errors.Is(err, dbadminbus.ErrRowNotFound):
		return errs.New(errs.NotFound, err)
	case errors.Is(err, dbadminbus.ErrTableReadOnly):
		return errs.New(errs.FailedPrecondition, err)
	case errors.Is(err, dbadminbus.ErrUnknownColumn), errors.Is(err, dbadminbus.ErrBadIdentifier):
		return errs.New(errs.InvalidArgument, err)
	default:
		return errs.Errorf(errs.InternalOnlyLog, "%s: %s", op, err)
	}
}
