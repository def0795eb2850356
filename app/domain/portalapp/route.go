package portalapp

import (
	"net/http"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/auth"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/mid"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/invoicebus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/qrpaybus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/tenantbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/unitbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/web"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/role"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Auth       *auth.Auth
	TenantBus  *tenantbus.Core
	UnitBus    *unitbus.Core
	InvoiceBus *invoicebus.Core
	QRPayBus   *qrpaybus.Core
}

// Routes adds specific routes for this group. The portal group is mounted
// behind ViewOnly so mutating verbs answer 405 regardless of handler. Each
// path is registered for the mutating verbs as well; otherwise the mux
// rejects them itself with a plain-text 405 that never reaches the error
// middleware.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	authen := mid.Authenticate(cfg.Auth)
	tenant := mid.Authorize(cfg.Auth, role.Tenant)
	viewOnly := mid.ViewOnly()

	api := newApp(cfg)

	routes := []struct {
		path    string
		handler web.HandlerFunc
	}{
		{"/portal/profile", api.profile},
		{"/portal/bills", api.bills},
		{"/portal/family-members", api.familyMembers},
		{"/portal/documents", api.documents},
		{"/portal/room", api.room},
		{"/portal/meter-readings", api.meterReadings},
		{"/portal/payments", api.payments},
	}

	mutating := []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}

	for _, rt := range routes {
		app.HandlerFunc(http.MethodGet, version, rt.path, rt.handler, authen, tenant, viewOnly)

		// ViewOnly runs first so the 405 is returned before any auth work.
		for _, method := range mutating {
			app.HandlerFunc(method, version, rt.path, rt.handler, viewOnly, authen, tenant)
		}
	}
}
