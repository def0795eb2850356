// Package authapp provides login, landing resolution and the one-time
// super admin bootstrap endpoint.
package authapp

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"net/mail"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/auth"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/errs"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/mid"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/userbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/web"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/name"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/password"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/role"
)

// landingPaths maps the highest-priority role to its dashboard root.
var landingPaths = map[string]string{
	role.SuperAdmin.String(): "/super-admin",
	role.Admin.String():      "/admin",
	role.Manager.String():    "/manager",
	role.Staff.String():      "/staff",
	role.Tenant.String():     "/tenant",
}

const defaultLanding = "/dashboard"

type app struct {
	auth              *auth.Auth
	activeKID         string
	bootstrapEmail    string
	bootstrapPassword string
	userBus           *userbus.Core
}

func newApp(cfg Config) *app {
	return &app{
		auth:              cfg.Auth,
		activeKID:         cfg.ActiveKID,
		bootstrapEmail:    cfg.BootstrapEmail,
		bootstrapPassword: cfg.BootstrapPassword,
		userBus:           cfg.UserBus,
	}
}

// login exchanges an email/password pair for a signed token carrying the
// user's role set and org membership.
func (a *app) login(ctx context.Context, r *http.Request) web.Encoder {
	var app Login
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	addr, err := mail.ParseAddress(app.Email)
	if err != nil {
		return errs.NewFieldErrors("email", err)
	}

	usr, err := a.userBus.Authenticate(ctx, *addr, app.Password)
	if err != nil {
		if errors.Is(err, userbus.ErrNotFound) || errors.Is(err, userbus.ErrAuthenticationFailure) {
			return errs.New(errs.Unauthenticated, userbus.ErrAuthenticationFailure)
		}
		return errs.Errorf(errs.InternalOnlyLog, "authenticate: email[%s]: %s", addr.Address, err)
	}

	if !usr.Enabled {
		return errs.New(errs.Unauthenticated, userbus.ErrAuthenticationFailure)
	}

	tkn, err := a.auth.GenerateToken(a.activeKID, usr.ID, usr.OrgID, usr.Roles)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "generate token: %s", err)
	}

	return Token{Token: tkn}
}

// landing resolves the dashboard root for the caller's highest-priority
// role. A user with no recognized role lands on the generic dashboard.
func (a *app) landing(ctx context.Context, _ *http.Request) web.Encoder {
	claims := mid.GetClaims(ctx)

	rls, err := role.ParseMany(claims.Roles)
	if err != nil {
		return errs.Errorf(errs.Internal, "parse roles: %s", err)
	}

	primary, ok := role.Primary(rls)
	if !ok {
		return Landing{Path: defaultLanding}
	}

	path, ok := landingPaths[primary.String()]
	if !ok {
		path = defaultLanding
	}

	return Landing{Path: path, Role: primary.String()}
}

// bootstrap seeds the first super admin. The endpoint only works while no
// super admin exists and the submitted credentials match the configured
// bootstrap pair.
func (a *app) bootstrap(ctx context.Context, r *http.Request) web.Encoder {
	var app Bootstrap
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	emailOK := subtle.ConstantTimeCompare([]byte(app.Email), []byte(a.bootstrapEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(app.Password), []byte(a.bootstrapPassword)) == 1
	if !emailOK || !passOK {
		return errs.New(errs.PermissionDenied, errors.New("bootstrap credentials do not match"))
	}

	tx, err := mid.GetTran(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "transaction missing in context: %s", err)
	}

	userBus, err := a.userBus.NewWithTx(tx)
	if err != nil {
		return errs.Errorf(errs.Internal, "newwithtx: %s", err)
	}

	exists, err := userBus.SuperAdminExists(ctx)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "super admin exists: %s", err)
	}
	if exists {
		return errs.New(errs.FailedPrecondition, errors.New("super admin already seeded"))
	}

	addr, err := mail.ParseAddress(app.Email)
	if err != nil {
		return errs.NewFieldErrors("email", err)
	}

	nme, err := name.Parse(app.Name)
	if err != nil {
		return errs.NewFieldErrors("name", err)
	}

	pass, err := password.Parse(app.Password)
	if err != nil {
		return errs.NewFieldErrors("password", err)
	}

	usr, err := userBus.Create(ctx, userbus.NewUser{
		Name:     nme,
		Email:    *addr,
		Roles:    []role.Role{role.SuperAdmin},
		Password: pass,
	})
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "create super admin: %s", err)
	}

	tkn, err := a.auth.GenerateToken(a.activeKID, usr.ID, usr.OrgID, usr.Roles)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "generate token: %s", err)
	}

	return Token{Token: tkn}
}
