// Package orgapp maintains the app layer api for the organization domain.
package orgapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/errs"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/mid"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/orgbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/userbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/web"
)

type app struct {
	orgBus  *orgbus.Core
	userBus *userbus.Core
}

func newApp(orgBus *orgbus.Core, userBus *userbus.Core) *app {
	return &app{
		orgBus:  orgBus,
		userBus: userBus,
	}
}

// create adds a new organization to the system.
func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	var app NewOrganization
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	no, err := toBusNewOrganization(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	org, err := a.orgBus.Create(ctx, no)
	if err != nil {
		if errors.Is(err, orgbus.ErrUniqueSlug) {
			return errs.New(errs.Aborted, orgbus.ErrUniqueSlug)
		}
		return errs.Errorf(errs.InternalOnlyLog, "create: slug[%s]: %s", app.Slug, err)
	}

	return toAppOrganization(org)
}

// provision creates an organization together with its initial admin user.
// Both writes ride one transaction so a failed admin insert rolls the org
// back as well.
func (a *app) provision(ctx context.Context, r *http.Request) web.Encoder {
	var app ProvisionOrganization
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	no, nu, err := toBusProvision(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	tx, err := mid.GetTran(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "transaction missing in context: %s", err)
	}

	orgBus, err := a.orgBus.NewWithTx(tx)
	if err != nil {
		return errs.Errorf(errs.Internal, "newwithtx: %s", err)
	}

	userBus, err := a.userBus.NewWithTx(tx)
	if err != nil {
		return errs.Errorf(errs.Internal, "newwithtx: %s", err)
	}

	org, err := orgBus.Create(ctx, no)
	if err != nil {
		if errors.Is(err, orgbus.ErrUniqueSlug) {
			return errs.New(errs.Aborted, orgbus.ErrUniqueSlug)
		}
		return errs.Errorf(errs.InternalOnlyLog, "create org: slug[%s]: %s", app.Slug, err)
	}

	nu.OrgID = org.ID

	usr, err := userBus.Create(ctx, nu)
	if err != nil {
		if errors.Is(err, userbus.ErrUniqueEmail) {
			return errs.New(errs.Aborted, userbus.ErrUniqueEmail)
		}
		return errs.Errorf(errs.InternalOnlyLog, "create admin: orgID[%s]: %s", org.ID, err)
	}

	return ProvisionedOrganization{
		Organization: toAppOrganization(org),
		AdminUserID:  usr.ID.String(),
	}
}

// update modifies an existing organization.
func (a *app) update(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateOrganization
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	orgID, err := uuid.Parse(r.PathValue("org_id"))
	if err != nil {
		return errs.NewFieldErrors("org_id", err)
	}

	org, err := a.orgBus.QueryByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, orgbus.ErrNotFound) {
			return errs.New(errs.NotFound, err)
		}
		return errs.Errorf(errs.InternalOnlyLog, "query: orgID[%s]: %s", orgID, err)
	}

	uo, err := toBusUpdateOrganization(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	updOrg, err := a.orgBus.Update(ctx, org, uo)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "update: orgID[%s]: %s", org.ID, err)
	}

	return toAppOrganization(updOrg)
}

// delete removes an organization from the system.
func (a *app) delete(ctx context.Context, r *http.Request) web.Encoder {
	orgID, err := uuid.Parse(r.PathValue("org_id"))
	if err != nil {
		return errs.NewFieldErrors("org_id", err)
	}

	org, err := a.orgBus.QueryByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, orgbus.ErrNotFound) {
			return errs.New(errs.NotFound, err)
		}
		return errs.Errorf(errs.InternalOnlyLog, "query: orgID[%s]: %s", orgID, err)
	}

	if err := a.orgBus.Delete(ctx, org); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "delete: orgID[%s]: %s", org.ID, err)
	}

	return nil
}

// query returns all organizations.
func (a *app) query(ctx context.Context, _ *http.Request) web.Encoder {
	orgs, err := a.orgBus.Query(ctx)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "query: %s", err)
	}

	return toAppOrganizations(orgs)
}

// queryByID returns an organization by its ID.
func (a *app) queryByID(ctx context.Context, r *http.Request) web.Encoder {
	orgID, err := uuid.Parse(r.PathValue("org_id"))
	if err != nil {
		return errs.NewFieldErrors("org_id", err)
	}

	org, err := a.orgBus.QueryByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, orgbus.ErrNotFound) {
			return errs.New(errs.NotFound, err)
		}
		return errs.Errorf(errs.InternalOnlyLog, "query: orgID[%s]: %s", orgID, err)
	}

	return toAppOrganization(org)
}
