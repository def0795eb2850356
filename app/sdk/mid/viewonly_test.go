package mid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/errs"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/web"
)

func TestViewOnly(t *testing.T) {
	var called bool
	next := func(ctx context.Context, r *http.Request) web.Encoder {
		called = true
		return nil
	}

	handler := ViewOnly()(next)

	reads := []string{http.MethodGet, http.MethodHead, http.MethodOptions}
	for _, method := range reads {
		called = false
		r := httptest.NewRequest(method, "/v1/portal/profile", nil)

		resp := handler(context.Background(), r)

		assert.Nil(t, resp, "method %s should pass through", method)
		assert.True(t, called, "method %s should reach the handler", method)
	}

	writes := []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}
	for _, method := range writes {
		called = false
		r := httptest.NewRequest(method, "/v1/portal/profile", nil)

		resp := handler(context.Background(), r)

		assert.False(t, called, "method %s should be blocked", method)

		err, ok := resp.(*errs.Error)
		require.True(t, ok, "method %s should return an error", method)
		assert.Equal(t, errs.MethodNotAllowed, err.Code)
	}
}
