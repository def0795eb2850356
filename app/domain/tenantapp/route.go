package tenantapp

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/auth"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/mid"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/invoicebus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/permbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/tenantbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/unitbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/userbus"
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
	TenantBus  *tenantbus.Core
	UserBus    *userbus.Core
	UnitBus    *unitbus.Core
	InvoiceBus *invoicebus.Core
	PermBus    *permbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	authen := mid.Authenticate(cfg.Auth)
	superAdmin := mid.Authorize(cfg.Auth, role.SuperAdmin)
	admins := mid.Authorize(cfg.Auth, role.SuperAdmin, role.Admin)
	canManage := mid.AuthorizePermission(cfg.PermBus, permission.TenantsManage)
	transaction := mid.BeginCommitRollback(cfg.Log, sqldb.NewBeginner(cfg.DB))

	api := newApp(cfg)

	// Tenant management is a super-admin surface. Admins work through the
	// /admin/tenants sub-resources below.
	app.HandlerFunc(http.MethodGet, version, "/tenants", api.query, authen, superAdmin)
	app.HandlerFunc(http.MethodGet, version, "/tenants/statistics", api.statistics, authen, superAdmin)
	app.HandlerFunc(http.MethodGet, version, "/tenants/{tenant_id}", api.queryByID, authen, superAdmin)
	app.HandlerFunc(http.MethodPost, version, "/tenants", api.create, authen, superAdmin)
	app.HandlerFunc(http.MethodPut, version, "/tenants/{tenant_id}", api.update, authen, superAdmin)
	app.HandlerFunc(http.MethodDelete, version, "/tenants/{tenant_id}", api.delete, authen, superAdmin)

	app.HandlerFunc(http.MethodPost, version, "/tenants/{tenant_id}/portal-account", api.provisionPortal, authen, superAdmin, canManage, transaction)

	app.HandlerFunc(http.MethodGet, version, "/admin/tenants/{tenant_id}/profile", api.profile, authen, admins)
	app.HandlerFunc(http.MethodGet, version, "/admin/tenants/{tenant_id}/bills", api.bills, authen, admins)
	app.HandlerFunc(http.MethodGet, version, "/admin/tenants/{tenant_id}/room", api.room, authen, admins)
	app.HandlerFunc(http.MethodGet, version, "/admin/tenants/{tenant_id}/family-members", api.familyMembers, authen, admins)
	app.HandlerFunc(http.MethodPost, version, "/admin/tenants/{tenant_id}/family-members", api.addFamilyMember, authen, admins)
	app.HandlerFunc(http.MethodDelete, version, "/admin/tenants/{tenant_id}/family-members/{member_id}", api.removeFamilyMember, authen, admins)
	app.HandlerFunc(http.MethodGet, version, "/admin/tenants/{tenant_id}/documents", api.documents, authen, admins)
	app.HandlerFunc(http.MethodPost, version, "/admin/tenants/{tenant_id}/documents", api.addDocument, authen, admins)
	app.HandlerFunc(http.MethodGet, version, "/admin/tenants/{tenant_id}/meter-readings", api.meterReadings, authen, admins)
	app.HandlerFunc(http.MethodPost, version, "/admin/tenants/{tenant_id}/meter-readings", api.recordMeterReading, authen, admins)
}
