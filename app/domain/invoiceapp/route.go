package invoiceapp

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/auth"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/mid"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/invoicebus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/web"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/role"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log        *logger.Logger
	DB         *sqlx.DB
	Auth       *auth.Auth
	InvoiceBus *invoicebus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	authen := mid.Authenticate(cfg.Auth)
	staff := mid.Authorize(cfg.Auth, role.SuperAdmin, role.Admin, role.Manager, role.Staff)
	transaction := mid.BeginCommitRollback(cfg.Log, sqldb.NewBeginner(cfg.DB))

	api := newApp(cfg.InvoiceBus)

	app.HandlerFunc(http.MethodGet, version, "/invoices", api.query, authen, staff)
	app.HandlerFunc(http.MethodGet, version, "/invoices/{invoice_id}", api.queryByID, authen, staff)
	app.HandlerFunc(http.MethodPost, version, "/invoices", api.create, authen, staff)
	app.HandlerFunc(http.MethodPut, version, "/invoices/{invoice_id}", api.update, authen, staff)
	app.HandlerFunc(http.MethodPost, version, "/invoices/{invoice_id}/transition", api.transition, authen, staff)

	app.HandlerFunc(http.MethodGet, version, "/invoices/{invoice_id}/payments", api.queryPayments, authen, staff)
	app.HandlerFunc(http.MethodPost, version, "/invoices/{invoice_id}/payments", api.recordPayment, authen, staff, transaction)
}
