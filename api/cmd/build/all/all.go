// Package all binds every route group into the service.
package all

import (
	"github.com/mrarunkumar300-ops/dharmahome/app/domain/authapp"
	"github.com/mrarunkumar300-ops/dharmahome/app/domain/checkapp"
	"github.com/mrarunkumar300-ops/dharmahome/app/domain/dbadminapp"
	"github.com/mrarunkumar300-ops/dharmahome/app/domain/invoiceapp"
	"github.com/mrarunkumar300-ops/dharmahome/app/domain/maintapp"
	"github.com/mrarunkumar300-ops/dharmahome/app/domain/orgapp"
	"github.com/mrarunkumar300-ops/dharmahome/app/domain/portalapp"
	"github.com/mrarunkumar300-ops/dharmahome/app/domain/propertyapp"
	"github.com/mrarunkumar300-ops/dharmahome/app/domain/qrpayapp"
	"github.com/mrarunkumar300-ops/dharmahome/app/domain/tenantapp"
	"github.com/mrarunkumar300-ops/dharmahome/app/domain/userapp"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/mux"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/web"
)

// Routes constructs the add value which provides the implementation of
// of RouteAdder for specifying what routes to bind to this instance.
func Routes() add {
	return add{}
}

type add struct{}

func (add) Add(app *web.App, cfg mux.Config) {
	bus := cfg.BusConfig

	checkapp.Routes(app, checkapp.Config{
		Build: cfg.Build,
		Log:   cfg.Log,
		DB:    cfg.DB,
	})

	authapp.Routes(app, authapp.Config{
		Log:               cfg.Log,
		DB:                cfg.DB,
		Auth:              cfg.Auth,
		ActiveKID:         cfg.ActiveKID,
		BootstrapEmail:    cfg.Bootstrap.Email,
		BootstrapPassword: cfg.Bootstrap.Password,
		UserBus:           bus.UserBus,
	})

	userapp.Routes(app, userapp.Config{
		Auth:    cfg.Auth,
		UserBus: bus.UserBus,
		PermBus: bus.PermBus,
	})

	orgapp.Routes(app, orgapp.Config{
		Log:     cfg.Log,
		DB:      cfg.DB,
		Auth:    cfg.Auth,
		OrgBus:  bus.OrgBus,
		UserBus: bus.UserBus,
	})

	propertyapp.Routes(app, propertyapp.Config{
		Log:         cfg.Log,
		DB:          cfg.DB,
		Auth:        cfg.Auth,
		PropertyBus: bus.PropertyBus,
		UnitBus:     bus.UnitBus,
		TenantBus:   bus.TenantBus,
	})

	tenantapp.Routes(app, tenantapp.Config{
		Log:        cfg.Log,
		DB:         cfg.DB,
		Auth:       cfg.Auth,
		TenantBus:  bus.TenantBus,
		UserBus:    bus.UserBus,
		UnitBus:    bus.UnitBus,
		InvoiceBus: bus.InvoiceBus,
		PermBus:    bus.PermBus,
	})

	portalapp.Routes(app, portalapp.Config{
		Auth:       cfg.Auth,
		TenantBus:  bus.TenantBus,
		UnitBus:    bus.UnitBus,
		InvoiceBus: bus.InvoiceBus,
		QRPayBus:   bus.QRPayBus,
	})

	invoiceapp.Routes(app, invoiceapp.Config{
		Log:        cfg.Log,
		DB:         cfg.DB,
		Auth:       cfg.Auth,
		InvoiceBus: bus.InvoiceBus,
	})

	qrpayapp.Routes(app, qrpayapp.Config{
		Log:       cfg.Log,
		DB:        cfg.DB,
		Auth:      cfg.Auth,
		QRPayBus:  bus.QRPayBus,
		TenantBus: bus.TenantBus,
		AuditBus:  bus.AuditBus,
		PermBus:   bus.PermBus,
	})

	maintapp.Routes(app, maintapp.Config{
		Auth:     cfg.Auth,
		MaintBus: bus.MaintBus,
	})

	dbadminapp.Routes(app, dbadminapp.Config{
		Log:        cfg.Log,
		DB:         cfg.DB,
		Auth:       cfg.Auth,
		PermBus:    bus.PermBus,
		DBAdminBus: bus.DBAdminBus,
		AuditBus:   bus.AuditBus,
	})
}
