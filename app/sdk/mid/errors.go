package mid

import (
	"context"
	"net/http"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/errs"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/metrics"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/web"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
)

// Errors handles errors coming out of the call chain. It detects normal
// application errors which are used to respond to the client in a uniform
// way. Unexpected errors (status >= 500) are logged with full detail and
// masked in the response.
func Errors(log *logger.Logger) web.MidFunc {
	m := func(next web.HandlerFunc) web.HandlerFunc {
		h := func(ctx context.Context, r *http.Request) web.Encoder {
			resp := next(ctx, r)

			err := checkIsError(resp)
			if err == nil {
				return resp
			}

			appErr := errs.GetError(err)
			if !errs.IsError(err) {
				appErr = errs.Errorf(errs.Internal, "%s", err)
			}

			log.Error(ctx, "handled error during request",
				"err", appErr.Message,
				"source_err_file", appErr.FileName,
				"source_err_func", appErr.FuncName)

			if appErr.Code == errs.Internal || appErr.Code == errs.InternalOnlyLog {
				metrics.AddErrors(ctx)
			}

			return appErr
		}

		return h
	}

	return m
}
