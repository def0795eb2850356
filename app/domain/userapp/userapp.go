// Package userapp maintains the app layer api for the user domain.
package userapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/errs"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/mid"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/query"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/permbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/userbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/order"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/page"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/web"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/permission"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/role"
)

type app struct {
	userBus *userbus.Core
	permBus *permbus.Core
}

func newApp(userBus *userbus.Core, permBus *permbus.Core) *app {
	return &app{
		userBus: userBus,
		permBus: permBus,
	}
}

// create adds a new user to the system. A user created with only the tenant
// role and no org membership inherits the caller's org.
func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	var app NewUser
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	nu, err := toBusNewUser(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	if nu.OrgID == uuid.Nil && role.Contains(nu.Roles, role.Tenant) {
		if orgID, err := mid.GetOrgID(ctx); err == nil {
			nu.OrgID = orgID
		}
	}

	usr, err := a.userBus.Create(ctx, nu)
	if err != nil {
		if errors.Is(err, userbus.ErrUniqueEmail) {
			return errs.New(errs.Aborted, userbus.ErrUniqueEmail)
		}
		return errs.Errorf(errs.InternalOnlyLog, "create: usr[%+v]: %s", app.Email, err)
	}

	return toAppUser(usr)
}

// update modifies an existing user.
func (a *app) update(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateUser
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	userID, err := uuid.Parse(r.PathValue("user_id"))
	if err != nil {
		return errs.NewFieldErrors("user_id", err)
	}

	usr, err := a.userBus.QueryByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userbus.ErrNotFound) {
			return errs.New(errs.NotFound, err)
		}
		return errs.Errorf(errs.InternalOnlyLog, "query: userID[%s]: %s", userID, err)
	}

	uu, err := toBusUpdateUser(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	updUsr, err := a.userBus.Update(ctx, usr, uu)
	if err != nil {
		if errors.Is(err, userbus.ErrUniqueEmail) {
			return errs.New(errs.Aborted, userbus.ErrUniqueEmail)
		}
		return errs.Errorf(errs.InternalOnlyLog, "update: userID[%s]: %s", usr.ID, err)
	}

	return toAppUser(updUsr)
}

// delete removes a user from the system.
func (a *app) delete(ctx context.Context, r *http.Request) web.Encoder {
	userID, err := uuid.Parse(r.PathValue("user_id"))
	if err != nil {
		return errs.NewFieldErrors("user_id", err)
	}

	usr, err := a.userBus.QueryByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userbus.ErrNotFound) {
			return errs.New(errs.NotFound, err)
		}
		return errs.Errorf(errs.InternalOnlyLog, "query: userID[%s]: %s", userID, err)
	}

	if err := a.userBus.Delete(ctx, usr); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "delete: userID[%s]: %s", usr.ID, err)
	}

	return nil
}

// query returns a list of users with paging.
func (a *app) query(ctx context.Context, r *http.Request) web.Encoder {
	qp := parseQueryParams(r)

	pg, err := page.Parse(qp.Page, qp.Rows)
	if err != nil {
		return errs.NewFieldErrors("page", err)
	}

	filter, err := parseFilter(qp)
	if err != nil {
		if v, ok := err.(*errs.Error); ok {
			return v
		}
		return errs.NewFieldErrors("filter", err)
	}

	orderBy, err := order.Parse(orderByFields, qp.OrderBy, userbus.DefaultOrderBy)
	if err != nil {
		return errs.NewFieldErrors("order", err)
	}

	usrs, err := a.userBus.Query(ctx, filter, orderBy, pg)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "query: %s", err)
	}

	total, err := a.userBus.Count(ctx, filter)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "count: %s", err)
	}

	return query.NewResult(toAppUsers(usrs), total, pg.Number(), pg.RowsPerPage())
}

// queryByID returns a user by its ID.
func (a *app) queryByID(ctx context.Context, r *http.Request) web.Encoder {
	userID, err := uuid.Parse(r.PathValue("user_id"))
	if err != nil {
		return errs.NewFieldErrors("user_id", err)
	}

	usr, err := a.userBus.QueryByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userbus.ErrNotFound) {
			return errs.New(errs.NotFound, err)
		}
		return errs.Errorf(errs.InternalOnlyLog, "query: userID[%s]: %s", userID, err)
	}

	return toAppUser(usr)
}

// queryGrants returns the fine-grained permissions held by a user.
func (a *app) queryGrants(ctx context.Context, r *http.Request) web.Encoder {
	userID, err := uuid.Parse(r.PathValue("user_id"))
	if err != nil {
		return errs.NewFieldErrors("user_id", err)
	}

	grants, err := a.permBus.QueryByUser(ctx, userID)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "query grants: userID[%s]: %s", userID, err)
	}

	return toAppGrants(grants)
}

// grant gives a user a fine-grained permission.
func (a *app) grant(ctx context.Context, r *http.Request) web.Encoder {
	var app NewGrant
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	userID, err := uuid.Parse(r.PathValue("user_id"))
	if err != nil {
		return errs.NewFieldErrors("user_id", err)
	}

	perm, err := permission.Parse(app.Permission)
	if err != nil {
		return errs.NewFieldErrors("permission", err)
	}

	grantedBy, err := mid.GetUserID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "user missing in context: %s", err)
	}

	if _, err := a.userBus.QueryByID(ctx, userID); err != nil {
		if errors.Is(err, userbus.ErrNotFound) {
			return errs.New(errs.NotFound, err)
		}
		return errs.Errorf(errs.InternalOnlyLog, "query: userID[%s]: %s", userID, err)
	}

	grt, err := a.permBus.Grant(ctx, userID, perm, grantedBy)
	if err != nil {
		if errors.Is(err, permbus.ErrAlreadyExists) {
			return errs.New(errs.Aborted, permbus.ErrAlreadyExists)
		}
		return errs.Errorf(errs.InternalOnlyLog, "grant: userID[%s] perm[%s]: %s", userID, perm, err)
	}

	return toAppGrant(grt)
}

// revoke removes a fine-grained permission from a user.
func (a *app) revoke(ctx context.Context, r *http.Request) web.Encoder {
	userID, err := uuid.Parse(r.PathValue("user_id"))
	if err != nil {
		return errs.NewFieldErrors("user_id", err)
	}

	perm, err := permission.Parse(r.PathValue("permission"))
	if err != nil {
		return errs.NewFieldErrors("permission", err)
	}

	if err := a.permBus.Revoke(ctx, userID, perm); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "revoke: userID[%s] perm[%s]: %s", userID, perm, err)
	}

	return nil
}
