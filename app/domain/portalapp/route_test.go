package portalapp

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/mid"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/web"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
)

func newTestApp(t *testing.T) *web.App {
	t.Helper()

	log := logger.New(io.Discard, logger.LevelInfo, "TEST", nil)
	app := web.NewApp(log.Info, nil, mid.Errors(log))
	Routes(app, Config{})

	return app
}

func TestMutatingVerbsReturnJSON405(t *testing.T) {
	app := newTestApp(t)

	methods := []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}
	paths := []string{"/v1/portal/profile", "/v1/portal/bills", "/v1/portal/payments"}

	for _, method := range methods {
		for _, path := range paths {
			r := httptest.NewRequest(method, path, nil)
			w := httptest.NewRecorder()

			app.ServeHTTP(w, r)

			require.Equal(t, http.StatusMethodNotAllowed, w.Code, "%s %s", method, path)
			assert.Contains(t, w.Header().Get("Content-Type"), "application/json", "%s %s", method, path)
			assert.Contains(t, w.Body.String(), "method_not_allowed", "%s %s", method, path)
		}
	}
}

func TestReadVerbsStillAuthenticate(t *testing.T) {
	app := newTestApp(t)

	r := httptest.NewRequest(http.MethodGet, "/v1/portal/profile", nil)
	w := httptest.NewRecorder()

	app.ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}
