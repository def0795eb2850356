package mid

import (
	"context"
	"net/http"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/metrics"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/web"
)

// Metrics updates program counters for each request.
func Metrics() web.MidFunc {
	m := func(next web.HandlerFunc) web.HandlerFunc {
		h := func(ctx context.Context, r *http.Request) web.Encoder {
			ctx = metrics.Set(ctx)

			resp := next(ctx, r)

			n := metrics.AddRequests(ctx)
			if n%1000 == 0 {
				metrics.AddGoroutines(ctx)
			}

			return resp
		}

		return h
	}

	return m
}
