package dbadminapp

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/auth"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/mid"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/auditbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/dbadminbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/permbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/web"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/permission"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/role"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log        *logger.Logger
	DB         *sqlx.DB
	Auth       *auth.Auth
	PermBus    *permbus.Core
	DBAdminBus *dbadminbus.Core
	AuditBus   *auditbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	authen := mid.Authenticate(cfg.Auth)
	superAdmin := mid.Authorize(cfg.Auth, role.SuperAdmin)
	console := mid.AuthorizePermission(cfg.PermBus, permission.OpsConsole)
	transaction := mid.BeginCommitRollback(cfg.Log, sqldb.NewBeginner(cfg.DB))

	api := newApp(cfg.DBAdminBus, cfg.AuditBus)

	app.HandlerFunc(http.MethodGet, version, "/ops/tables", api.tables, authen, superAdmin, console)
	app.HandlerFunc(http.MethodGet, version, "/ops/tables/{table}/columns", api.columns, authen, superAdmin, console)
	app.HandlerFunc(http.MethodGet, version, "/ops/tables/{table}/rows", api.queryRows, authen, superAdmin, console)
	app.HandlerFunc(http.MethodPost, version, "/ops/tables/{table}/rows", api.insertRow, authen, superAdmin, console, transaction)
	app.HandlerFunc(http.MethodPut, version, "/ops/tables/{table}/rows/{pk}", api.updateRow, authen, superAdmin, console, transaction)
	app.HandlerFunc(http.MethodDelete, version, "/ops/tables/{table}/rows/{pk}", api.deleteRow, authen, superAdmin, console, transaction)

	app.HandlerFunc(http.MethodGet, version, "/ops/enums", api.enums, authen, superAdmin, console)
	app.HandlerFunc(http.MethodPost, version, "/ops/enums/{enum}/values", api.addEnumValue, authen, superAdmin, console, transaction)

	app.HandlerFunc(http.MethodGet, version, "/ops/audit-log", api.auditLog, authen, superAdmin, console)
}
