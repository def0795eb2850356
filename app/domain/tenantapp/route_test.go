package tenantapp

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/auth"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/mid"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/web"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/role"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
)

type keyStore struct {
	priv string
	pub  string
}

func (ks keyStore) PrivateKey(kid string) (string, error) { return ks.priv, nil }
func (ks keyStore) PublicKey(kid string) (string, error)  { return ks.pub, nil }

func newTestAuth(t *testing.T) *auth.Auth {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	privPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})

	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	pubPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: pubDER,
	})

	log := logger.New(io.Discard, logger.LevelInfo, "TEST", nil)

	return auth.New(auth.Config{
		Log:       log,
		KeyLookup: keyStore{priv: string(privPEM), pub: string(pubPEM)},
		Issuer:    "dharmahome",
	})
}

func newRouteHarness(t *testing.T) (*web.App, *auth.Auth) {
	t.Helper()

	ath := newTestAuth(t)

	log := logger.New(io.Discard, logger.LevelInfo, "TEST", nil)
	app := web.NewApp(log.Info, nil, mid.Errors(log))
	Routes(app, Config{Log: log, Auth: ath})

	return app, ath
}

func send(t *testing.T, app *web.App, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(method, path, strings.NewReader(body))
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	app.ServeHTTP(w, r)
	return w
}

func TestTenantRoutesRejectAdmin(t *testing.T) {
	app, ath := newRouteHarness(t)

	token, err := ath.GenerateToken("test-kid", uuid.New(), uuid.New(), []role.Role{role.Admin})
	require.NoError(t, err)

	calls := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/v1/tenants"},
		{http.MethodGet, "/v1/tenants/statistics"},
		{http.MethodGet, "/v1/tenants/" + uuid.NewString()},
		{http.MethodPost, "/v1/tenants"},
		{http.MethodPut, "/v1/tenants/" + uuid.NewString()},
		{http.MethodDelete, "/v1/tenants/" + uuid.NewString()},
	}

	for _, call := range calls {
		w := send(t, app, call.method, call.path, token, "")
		assert.Equal(t, http.StatusForbidden, w.Code, "%s %s", call.method, call.path)
	}
}

func TestTenantRoutesAllowSuperAdmin(t *testing.T) {
	app, ath := newRouteHarness(t)

	token, err := ath.GenerateToken("test-kid", uuid.New(), uuid.New(), []role.Role{role.SuperAdmin})
	require.NoError(t, err)

	// An empty body fails validation inside the handler, which proves the
	// request made it past the role check.
	w := send(t, app, http.MethodPost, "/v1/tenants", token, "")
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestAdminSubResourcesStillAllowAdmin(t *testing.T) {
	app, ath := newRouteHarness(t)

	token, err := ath.GenerateToken("test-kid", uuid.New(), uuid.New(), []role.Role{role.Admin})
	require.NoError(t, err)

	// The bad tenant id fails parsing inside the handler, which proves the
	// request made it past the role check.
	w := send(t, app, http.MethodGet, "/v1/admin/tenants/not-a-uuid/profile", token, "")
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}
