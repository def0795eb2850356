package userapp

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"io"
	"net/http"
	"net/http/httptest"
	"net/mail"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/auth"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/mid"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/userbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/order"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/page"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/web"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/role"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
)

type stubStorer struct {
	users map[uuid.UUID]userbus.User
}

func newStubStorer() *stubStorer {
	return &stubStorer{users: make(map[uuid.UUID]userbus.User)}
}

func (s *stubStorer) NewWithTx(tx sqldb.CommitRollbacker) (userbus.Storer, error) {
	return s, nil
}

func (s *stubStorer) Create(ctx context.Context, usr userbus.User) error {
	s.users[usr.ID] = usr
	return nil
}

func (s *stubStorer) Update(ctx context.Context, usr userbus.User) error {
	s.users[usr.ID] = usr
	return nil
}

func (s *stubStorer) Delete(ctx context.Context, usr userbus.User) error {
	delete(s.users, usr.ID)
	return nil
}

func (s *stubStorer) Query(ctx context.Context, filter userbus.QueryFilter, orderBy order.By, pg page.Page) ([]userbus.User, error) {
	return nil, nil
}

func (s *stubStorer) Count(ctx context.Context, filter userbus.QueryFilter) (int, error) {
	return len(s.users), nil
}

func (s *stubStorer) QueryByID(ctx context.Context, userID uuid.UUID) (userbus.User, error) {
	usr, exists := s.users[userID]
	if !exists {
		return userbus.User{}, userbus.ErrNotFound
	}
	return usr, nil
}

func (s *stubStorer) QueryByEmail(ctx context.Context, email mail.Address) (userbus.User, error) {
	for _, usr := range s.users {
		if usr.Email.Address == email.Address {
			return usr, nil
		}
	}
	return userbus.User{}, userbus.ErrNotFound
}

func (s *stubStorer) CountByRole(ctx context.Context, r role.Role) (int, error) {
	count := 0
	for _, usr := range s.users {
		if role.Contains(usr.Roles, r) {
			count++
		}
	}
	return count, nil
}

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

func newCreateHarness(t *testing.T) (*web.App, *auth.Auth, *stubStorer) {
	t.Helper()

	ath := newTestAuth(t)
	store := newStubStorer()
	api := newApp(userbus.NewCore(store), nil)

	log := logger.New(io.Discard, logger.LevelInfo, "TEST", nil)
	app := web.NewApp(log.Info, nil, mid.Errors(log))
	app.HandlerFunc(http.MethodPost, "v1", "/users", api.create, mid.Authenticate(ath))

	return app, ath, store
}

func createUser(t *testing.T, app *web.App, token string, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(http.MethodPost, "/v1/users", strings.NewReader(body))
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	app.ServeHTTP(w, r)
	return w
}

func TestCreateTenantInheritsCallerOrg(t *testing.T) {
	app, ath, store := newCreateHarness(t)

	orgID := uuid.New()
	token, err := ath.GenerateToken("test-kid", uuid.New(), orgID, []role.Role{role.Admin})
	require.NoError(t, err)

	body := `{"name":"Asha Rao","email":"asha@example.com","roles":["TENANT"],"password":"Sup3rSecret","passwordConfirm":"Sup3rSecret"}`
	w := createUser(t, app, token, body)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, orgID.String(), got.OrgID)

	require.Len(t, store.users, 1)
	for _, usr := range store.users {
		assert.Equal(t, orgID, usr.OrgID)
	}
}

func TestCreateStaffGetsNoOrgDefault(t *testing.T) {
	app, ath, store := newCreateHarness(t)

	token, err := ath.GenerateToken("test-kid", uuid.New(), uuid.New(), []role.Role{role.Admin})
	require.NoError(t, err)

	body := `{"name":"Ravi Kumar","email":"ravi@example.com","roles":["STAFF"],"password":"Sup3rSecret","passwordConfirm":"Sup3rSecret"}`
	w := createUser(t, app, token, body)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Empty(t, got.OrgID)

	require.Len(t, store.users, 1)
	for _, usr := range store.users {
		assert.Equal(t, uuid.Nil, usr.OrgID)
	}
}
