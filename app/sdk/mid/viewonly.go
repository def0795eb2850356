package mid

import (
	"context"
	"net/http"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/errs"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/web"
)

// ViewOnly rejects mutating verbs with 405. The tenant portal mounts this on
// its whole route group so the read-only contract is enforced at the
// transport layer, not per handler.
func ViewOnly() web.MidFunc {
	m := func(next web.HandlerFunc) web.HandlerFunc {
		h := func(ctx context.Context, r *http.Request) web.Encoder {
			switch r.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
				return errs.Errorf(errs.MethodNotAllowed, "method %s is not allowed on this resource", r.Method)
			}

			return next(ctx, r)
		}

		return h
	}

	return m
}
