package tenantapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/errs"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/mid"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/invoicebus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/tenantbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/page"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/web"
)

// profile returns the portal profile linked to a ledger record.
func (a *app) profile(ctx context.Context, r *http.Request) web.Encoder {
	tnt, err := a.queryTenantScoped(ctx, r.PathValue("tenant_id"))
	if err != nil {
		return errs.GetError(err)
	}

	prf, err := a.tenantBus.QueryProfileByTenantID(ctx, tnt.ID)
	if err != nil {
		if errors.Is(err, tenantbus.ErrProfileNotFound) {
			return errs.New(errs.NotFound, err)
		}
		return errs.Errorf(errs.InternalOnlyLog, "query profile: tenantID[%s]: %s", tnt.ID, err)
	}

	return toAppProfile(prf)
}

// bills returns the invoices raised against a ledger record.
func (a *app) bills(ctx context.Context, r *http.Request) web.Encoder {
	tnt, err := a.queryTenantScoped(ctx, r.PathValue("tenant_id"))
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

// familyMembers returns the family registered against a ledger record.
func (a *app) familyMembers(ctx context.Context, r *http.Request) web.Encoder {
	tnt, err := a.queryTenantScoped(ctx, r.PathValue("tenant_id"))
	if err != nil {
		return errs.GetError(err)
	}

	fms, err := a.tenantBus.QueryFamilyMembers(ctx, tnt.ID)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "query family: tenantID[%s]: %s", tnt.ID, err)
	}

	return toAppFamilyMembers(fms)
}

// addFamilyMember registers a family member against a ledger record.
func (a *app) addFamilyMember(ctx context.Context, r *http.Request) web.Encoder {
	var app NewFamilyMember
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	tnt, err := a.queryTenantScoped(ctx, r.PathValue("tenant_id"))
	if err != nil {
		return errs.GetError(err)
	}

	nfm, err := toBusNewFamilyMember(app, tnt.ID)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	fm, err := a.tenantBus.AddFamilyMember(ctx, nfm)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "add family member: tenantID[%s]: %s", tnt.ID, err)
	}

	return toAppFamilyMember(fm)
}

// removeFamilyMember deletes a family member record.
func (a *app) removeFamilyMember(ctx context.Context, r *http.Request) web.Encoder {
	tnt, err := a.queryTenantScoped(ctx, r.PathValue("tenant_id"))
	if err != nil {
		return errs.GetError(err)
	}

	memberID, err := uuid.Parse(r.PathValue("member_id"))
	if err != nil {
		return errs.NewFieldErrors("member_id", err)
	}

	if err := a.tenantBus.RemoveFamilyMember(ctx, tnt.ID, memberID); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "remove family member: tenantID[%s]: %s", tnt.ID, err)
	}

	return nil
}

// documents returns the documents attached to a ledger record.
func (a *app) documents(ctx context.Context, r *http.Request) web.Encoder {
	tnt, err := a.queryTenantScoped(ctx, r.PathValue("tenant_id"))
	if err != nil {
		return errs.GetError(err)
	}

	docs, err := a.tenantBus.QueryDocuments(ctx, tnt.ID)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "query documents: tenantID[%s]: %s", tnt.ID, err)
	}

	return toAppDocuments(docs)
}

// addDocument attaches a document to a ledger record.
func (a *app) addDocument(ctx context.Context, r *http.Request) web.Encoder {
	var app NewDocument
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	tnt, err := a.queryTenantScoped(ctx, r.PathValue("tenant_id"))
	if err != nil {
		return errs.GetError(err)
	}

	userID, err := mid.GetUserID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "user missing in context: %s", err)
	}

	doc, err := a.tenantBus.AddDocument(ctx, tenantbus.NewDocument{
		TenantID:   tnt.ID,
		Title:      app.Title,
		DocType:    app.DocType,
		FileURL:    app.FileURL,
		UploadedBy: userID,
	})
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "add document: tenantID[%s]: %s", tnt.ID, err)
	}

	return toAppDocument(doc)
}

// room returns the unit a ledger tenant currently occupies.
func (a *app) room(ctx context.Context, r *http.Request) web.Encoder {
	tnt, err := a.queryTenantScoped(ctx, r.PathValue("tenant_id"))
	if err != nil {
		return errs.GetError(err)
	}

	if tnt.UnitID == nil {
		return errs.Errorf(errs.NotFound, "tenant[%s] is not assigned to a unit", tnt.ID)
	}

	unt, err := a.unitBus.QueryByID(ctx, *tnt.UnitID)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "query unit: unitID[%s]: %s", *tnt.UnitID, err)
	}

	return toAppRoom(unt)
}

// meterReadings returns the readings recorded for a ledger record.
func (a *app) meterReadings(ctx context.Context, r *http.Request) web.Encoder {
	tnt, err := a.queryTenantScoped(ctx, r.PathValue("tenant_id"))
	if err != nil {
		return errs.GetError(err)
	}

	mrs, err := a.tenantBus.QueryMeterReadings(ctx, tnt.ID)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "query readings: tenantID[%s]: %s", tnt.ID, err)
	}

	return toAppMeterReadings(mrs)
}

// recordMeterReading records a utility reading for a ledger record.
func (a *app) recordMeterReading(ctx context.Context, r *http.Request) web.Encoder {
	var app NewMeterReading
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	tnt, err := a.queryTenantScoped(ctx, r.PathValue("tenant_id"))
	if err != nil {
		return errs.GetError(err)
	}

	userID, err := mid.GetUserID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "user missing in context: %s", err)
	}

	nmr, err := toBusNewMeterReading(app, tnt.ID, userID)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	mr, err := a.tenantBus.RecordMeterReading(ctx, nmr)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "record reading: tenantID[%s]: %s", tnt.ID, err)
	}

	return toAppMeterReading(mr)
}
