package qrpayapp

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/auth"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/mid"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/auditbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/permbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/qrpaybus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/tenantbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/web"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/permission"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/role"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log       *logger.Logger
	DB        *sqlx.DB
	Auth      *auth.Auth
	QRPayBus  *qrpaybus.Core
	TenantBus *tenantbus.Core
	AuditBus  *auditbus.Core
	PermBus   *permbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	authen := mid.Authenticate(cfg.Auth)
	tenant := mid.Authorize(cfg.Auth, role.Tenant)
	admins := mid.Authorize(cfg.Auth, role.SuperAdmin, role.Admin)
	canVerify := mid.AuthorizePermission(cfg.PermBus, permission.PaymentsVerify)
	transaction := mid.BeginCommitRollback(cfg.Log, sqldb.NewBeginner(cfg.DB))

	api := newApp(cfg.QRPayBus, cfg.TenantBus, cfg.AuditBus)

	app.HandlerFunc(http.MethodPost, version, "/qr-payments", api.generate, authen, tenant)
	app.HandlerFunc(http.MethodGet, version, "/qr-payments", api.queryOwn, authen, tenant)
	// Any authenticated caller may attach proof; the handler resolves the
	// caller's own tenant record and scopes the request to it.
	app.HandlerFunc(http.MethodPut, version, "/qr-payments/{request_id}/screenshot", api.submitScreenshot, authen)

	app.HandlerFunc(http.MethodGet, version, "/qr-payments/pending", api.queryPending, authen, admins)
	app.HandlerFunc(http.MethodPost, version, "/qr-payments/{request_id}/verify", api.verify, authen, admins, canVerify, transaction)
}
