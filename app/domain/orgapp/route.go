package orgapp

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/auth"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/mid"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/orgbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/userbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/web"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/role"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log     *logger.Logger
	DB      *sqlx.DB
	Auth    *auth.Auth
	OrgBus  *orgbus.Core
	UserBus *userbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	authen := mid.Authenticate(cfg.Auth)
	superAdmin := mid.Authorize(cfg.Auth, role.SuperAdmin)
	transaction := mid.BeginCommitRollback(cfg.Log, sqldb.NewBeginner(cfg.DB))

	api := newApp(cfg.OrgBus, cfg.UserBus)

	app.HandlerFunc(http.MethodGet, version, "/orgs", api.query, authen, superAdmin)
	app.HandlerFunc(http.MethodGet, version, "/orgs/{org_id}", api.queryByID, authen, superAdmin)
	app.HandlerFunc(http.MethodPost, version, "/orgs", api.create, authen, superAdmin)
	app.HandlerFunc(http.MethodPost, version, "/orgs/provision", api.provision, authen, superAdmin, transaction)
	app.HandlerFunc(http.MethodPut, version, "/orgs/{org_id}", api.update, authen, superAdmin)
	app.HandlerFunc(http.MethodDelete, version, "/orgs/{org_id}", api.delete, authen, superAdmin)
}
