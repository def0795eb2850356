package userapp

import (
	"net/http"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/auth"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/mid"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/permbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/userbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/web"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/role"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Auth    *auth.Auth
	UserBus *userbus.Core
	PermBus *permbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	authen := mid.Authenticate(cfg.Auth)
	admins := mid.Authorize(cfg.Auth, role.SuperAdmin, role.Admin)
	superAdmin := mid.Authorize(cfg.Auth, role.SuperAdmin)

	api := newApp(cfg.UserBus, cfg.PermBus)

	app.HandlerFunc(http.MethodGet, version, "/users", api.query, authen, admins)
	app.HandlerFunc(http.MethodGet, version, "/users/{user_id}", api.queryByID, authen, admins)
	app.HandlerFunc(http.MethodPost, version, "/users", api.create, authen, admins)
	app.HandlerFunc(http.MethodPut, version, "/users/{user_id}", api.update, authen, admins)
	app.HandlerFunc(http.MethodDelete, version, "/users/{user_id}", api.delete, authen, superAdmin)

	app.HandlerFunc(http.MethodGet, version, "/users/{user_id}/permissions", api.queryGrants, authen, superAdmin)
	app.HandlerFunc(http.MethodPost, version, "/users/{user_id}/permissions", api.grant, authen, superAdmin)
	app.HandlerFunc(http.MethodDelete, version, "/users/{user_id}/permissions/{permission}", api.revoke, authen, superAdmin)
}
