package mid

import (
	"context"
	"net/http"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/auth"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/errs"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/permbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/web"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/permission"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/role"
)

// Authorize executes the specified role check against the claims. A route
// configured with no roles denies everyone.
func Authorize(ath *auth.Auth, roles ...role.Role) web.MidFunc {
	m := func(next web.HandlerFunc) web.HandlerFunc {
		h := func(ctx context.Context, r *http.Request) web.Encoder {
			claims := GetClaims(ctx)

			if err := ath.Authorize(ctx, claims, roles...); err != nil {
				return errs.New(errs.PermissionDenied, err)
			}

			return next(ctx, r)
		}

		return h
	}

	return m
}

// AuthorizePermission checks the caller holds a named capability on top of
// passing authentication. Resolution errors deny.
func AuthorizePermission(permBus *permbus.Core, perm permission.Permission) web.MidFunc {
	m := func(next web.HandlerFunc) web.HandlerFunc {
		h := func(ctx context.Context, r *http.Request) web.Encoder {
			userID, err := GetUserID(ctx)
			if err != nil {
				return errs.New(errs.Unauthenticated, err)
			}

			if !permBus.Has(ctx, userID, perm) {
				return errs.Errorf(errs.PermissionDenied, "permission %q is required", perm)
			}

			return next(ctx, r)
		}

		return h
	}

	return m
}
