package propertyapp

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/auth"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/mid"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/propertybus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/tenantbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/unitbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/web"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/role"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log         *logger.Logger
	DB          *sqlx.DB
	Auth        *auth.Auth
	PropertyBus *propertybus.Core
	UnitBus     *unitbus.Core
	TenantBus   *tenantbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	authen := mid.Authenticate(cfg.Auth)
	managers := mid.Authorize(cfg.Auth, role.SuperAdmin, role.Admin, role.Manager)
	transaction := mid.BeginCommitRollback(cfg.Log, sqldb.NewBeginner(cfg.DB))

	api := newApp(cfg.PropertyBus, cfg.UnitBus, cfg.TenantBus)

	app.HandlerFunc(http.MethodGet, version, "/properties", api.query, authen, managers)
	app.HandlerFunc(http.MethodGet, version, "/properties/{property_id}", api.queryByID, authen, managers)
	app.HandlerFunc(http.MethodPost, version, "/properties", api.create, authen, managers)
	app.HandlerFunc(http.MethodPut, version, "/properties/{property_id}", api.update, authen, managers)
	app.HandlerFunc(http.MethodDelete, version, "/properties/{property_id}", api.delete, authen, managers)

	app.HandlerFunc(http.MethodGet, version, "/units", api.queryUnits, authen, managers)
	app.HandlerFunc(http.MethodGet, version, "/units/{unit_id}", api.queryUnitByID, authen, managers)
	app.HandlerFunc(http.MethodPost, version, "/units", api.createUnit, authen, managers)
	app.HandlerFunc(http.MethodPut, version, "/units/{unit_id}", api.updateUnit, authen, managers)
	app.HandlerFunc(http.MethodDelete, version, "/units/{unit_id}", api.deleteUnit, authen, managers)

	app.HandlerFunc(http.MethodPost, version, "/units/{unit_id}/assign", api.assign, authen, managers, transaction)
	app.HandlerFunc(http.MethodPost, version, "/units/{unit_id}/unassign", api.unassign, authen, managers, transaction)
}
