package authapp

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/auth"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/mid"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/userbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/web"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log               *logger.Logger
	DB                *sqlx.DB
	Auth              *auth.Auth
	ActiveKID         string
	BootstrapEmail    string
	BootstrapPassword string
	UserBus           *userbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	authen := mid.Authenticate(cfg.Auth)
	transaction := mid.BeginCommitRollback(cfg.Log, sqldb.NewBeginner(cfg.DB))

	api := newApp(cfg)

	app.HandlerFunc(http.MethodPost, version, "/auth/login", api.login)
	app.HandlerFunc(http.MethodGet, version, "/auth/landing", api.landing, authen)
	app.HandlerFunc(http.MethodPost, version, "/bootstrap/super-admin", api.bootstrap, transaction)
}
