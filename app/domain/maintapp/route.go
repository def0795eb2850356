package maintapp

import (
	"net/http"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/auth"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/mid"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/maintbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/web"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/role"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Auth     *auth.Auth
	MaintBus *maintbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	authen := mid.Authenticate(cfg.Auth)
	staff := mid.Authorize(cfg.Auth, role.SuperAdmin, role.Admin, role.Manager, role.Staff)

	api := newApp(cfg.MaintBus)

	app.HandlerFunc(http.MethodGet, version, "/maintenance", api.query, authen, staff)
	app.HandlerFunc(http.MethodGet, version, "/maintenance/board", api.board, authen, staff)
	app.HandlerFunc(http.MethodGet, version, "/maintenance/{ticket_id}", api.queryByID, authen, staff)
	app.HandlerFunc(http.MethodPost, version, "/maintenance", api.create, authen, staff)
	app.HandlerFunc(http.MethodPut, version, "/maintenance/{ticket_id}", api.update, authen, staff)
	app.HandlerFunc(http.MethodPut, version, "/maintenance/{ticket_id}/move", api.move, authen, staff)
	app.HandlerFunc(http.MethodDelete, version, "/maintenance/{ticket_id}", api.delete, authen, staff)
}
