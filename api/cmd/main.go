package main

import (
	"context"
	"encoding/json"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/mrarunkumar300-ops/dharmahome/api/cmd/build/all"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/auth"
	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/mux"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/auditbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/auditbus/stores/auditdb"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/dbadminbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/invoicebus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/invoicebus/stores/invoicedb"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/maintbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/maintbus/stores/maintdb"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/orgbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/orgbus/stores/orgdb"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/permbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/permbus/stores/permcache"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/permbus/stores/permdb"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/propertybus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/propertybus/stores/propertydb"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/qrpaybus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/qrpaybus/stores/qrpaydb"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/tenantbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/tenantbus/stores/tenantdb"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/unitbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/unitbus/stores/unitdb"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/userbus"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/userbus/stores/usercache"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/userbus/stores/userdb"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/keystore"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/otel"
)

var build = "develop"

type Config struct {
	Version struct {
		Build string `json:"build"`
		Desc  string `json:"desc"`
	} `json:"version"`

	Web struct {
		ReadTimeout        time.Duration `envconfig:"WEB_READ_TIMEOUT" default:"5s"`
		WriteTimeout       time.Duration `envconfig:"WEB_WRITE_TIMEOUT" default:"10s"`
		IdleTimeout        time.Duration `envconfig:"WEB_IDLE_TIMEOUT" default:"120s"`
		ShutdownTimeout    time.Duration `envconfig:"WEB_SHUTDOWN_TIMEOUT" default:"20s"`
		APIHost            string        `envconfig:"WEB_API_HOST" default:"0.0.0.0:3000"`
		DebugHost          string        `envconfig:"WEB_DEBUG_HOST" default:"0.0.0.0:3010"`
		CORSAllowedOrigins []string      `envconfig:"WEB_CORS_ALLOWED_ORIGINS" default:"*"`
	}
	Auth struct {
		KeysFolder string `envconfig:"AUTH_KEYS_FOLDER" default:"zarf/keys"`
		ActiveKID  string `envconfig:"AUTH_ACTIVE_KID" default:"54bb2165-71e1-41a6-af3e-7da4a0e1e2c1"`
		Issuer     string `envconfig:"AUTH_ISSUER" default:"dharmahome"`
	}
	Bootstrap struct {
		Email    string `envconfig:"BOOTSTRAP_EMAIL"`
		Password string `envconfig:"BOOTSTRAP_PASSWORD"`
	}
	Payments struct {
		QRGeneratorURL string `envconfig:"PAYMENTS_QR_GENERATOR_URL" default:"https://api.qrserver.com/v1/create-qr-code/"`
	}
	DB struct {
		User         string `envconfig:"DB_USER" default:"postgres"`
		Password     string `envconfig:"DB_PASSWORD" default:"postgres"`
		Host         string `envconfig:"DB_HOST" default:"localhost"`
		Name         string `envconfig:"DB_NAME" default:"dharmahome"`
		MaxIdleConns int    `envconfig:"DB_MAX_IDLE_CONNS" default:"0"`
		MaxOpenConns int    `envconfig:"DB_MAX_OPEN_CONNS" default:"0"`
		DisableTLS   bool   `envconfig:"DB_DISABLE_TLS" default:"true"`
	}
	Tempo struct {
		Host        string  `envconfig:"TEMPO_HOST" default:"tempo:4317"`
		ServiceName string  `envconfig:"TEMPO_SERVICE_NAME" default:"DHARMAHOME"`
		Probability float64 `envconfig:"TEMPO_PROBABILITY" default:"0.05"`
		Enabled     bool    `envconfig:"TEMPO_ENABLED" default:"false"`
	}
}

func main() {
	var log *logger.Logger

	events := logger.Events{
		Error: func(ctx context.Context, r logger.Record) {
			log.Info(ctx, "******* SEND ALERT *******")
		},
	}

	log = logger.NewWithEvents(os.Stdout, logger.LevelInfo, "DHARMAHOME", otel.GetTraceID, events)

	ctx := context.Background()

	if err := run(ctx, log); err != nil {
		log.Error(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {

	// -------------------------------------------------------------------------
	// GOMAXPROCS

	log.Info(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0))

	// -------------------------------------------------------------------------
	// Configuration

	var cfg Config

	cfg.Version.Build = build
	cfg.Version.Desc = "DHARMAHOME"

	if err := envconfig.Process("", &cfg); err != nil {
		return fmt.Errorf("processing config: %w", err)
	}

	log.Info(ctx, "startup", "version", cfg.Version)
	log.Info(ctx, "startup", "config", sanitizeConfig(cfg))

	// -------------------------------------------------------------------------
	// App Starting

	log.Info(ctx, "starting service", "version", cfg.Version.Build)
	defer log.Info(ctx, "shutdown complete")

	log.BuildInfo(ctx)

	expvar.NewString("build").Set(cfg.Version.Build)

	// -------------------------------------------------------------------------
	// Database Support

	log.Info(ctx, "startup", "status", "initializing database support", "hostport", cfg.DB.Host)

	db, err := sqldb.Open(sqldb.Config{
		User:         cfg.DB.User,
		Password:     cfg.DB.Password,
		Host:         cfg.DB.Host,
		Name:         cfg.DB.Name,
		MaxIdleConns: cfg.DB.MaxIdleConns,
		MaxOpenConns: cfg.DB.MaxOpenConns,
		DisableTLS:   cfg.DB.DisableTLS,
	})
	if err != nil {
		return fmt.Errorf("connecting to db: %w", err)
	}

	defer db.Close()

	// -------------------------------------------------------------------------
	// Auth Support

	log.Info(ctx, "startup", "status", "initializing authentication support")

	ks := keystore.New()

	if _, err := ks.LoadByFileSystem(os.DirFS(cfg.Auth.KeysFolder)); err != nil {
		return fmt.Errorf("loading keys: %w", err)
	}

	// -------------------------------------------------------------------------
	// Business Cores

	log.Info(ctx, "startup", "status", "initializing business cores")

	userBus := userbus.NewCore(usercache.NewStore(log, userdb.NewStore(log, db), time.Minute*5))
	permBus := permbus.NewCore(log, permcache.NewStore(log, permdb.NewStore(log, db), time.Minute*5))
	orgBus := orgbus.NewCore(log, orgdb.NewStore(log, db))
	propertyBus := propertybus.NewCore(log, propertydb.NewStore(log, db))
	unitBus := unitbus.NewCore(log, unitdb.NewStore(log, db))
	tenantBus := tenantbus.NewCore(log, tenantdb.NewStore(log, db))
	invoiceBus := invoicebus.NewCore(log, invoicedb.NewStore(log, db))
	qrPayBus := qrpaybus.NewCore(log, qrpaydb.NewStore(log, db), cfg.Payments.QRGeneratorURL)
	maintBus := maintbus.NewCore(log, maintdb.NewStore(log, db))
	auditBus := auditbus.NewCore(log, auditdb.NewStore(log, db))
	dbAdminBus := dbadminbus.NewCore(log, db)

	authClient := auth.New(auth.Config{
		Log:       log,
		UserBus:   userBus,
		KeyLookup: ks,
		Issuer:    cfg.Auth.Issuer,
	})

	// -------------------------------------------------------------------------
	// Start Tracing Support

	log.Info(ctx, "startup", "status", "initializing tracing support")

	traceProvider, teardown, err := otel.InitTracing(log, otel.Config{
		ServiceName: cfg.Tempo.ServiceName,
		Host:        cfg.Tempo.Host,
		ExcludedRoutes: map[string]struct{}{
			"/v1/liveness":  {},
			"/v1/readiness": {},
		},
		Probability: cfg.Tempo.Probability,
		Enabled:     cfg.Tempo.Enabled,
	})
	if err != nil {
		return fmt.Errorf("starting tracing: %w", err)
	}

	defer teardown(context.Background())

	tracer := traceProvider.Tracer(cfg.Tempo.ServiceName)

	// -------------------------------------------------------------------------
	// Start Debug Service

	go func() {
		log.Info(ctx, "startup", "status", "debug router started", "host", cfg.Web.DebugHost)

		if err := http.ListenAndServe(cfg.Web.DebugHost, expvar.Handler()); err != nil {
			log.Error(ctx, "shutdown", "status", "debug router closed", "host", cfg.Web.DebugHost, "err", err)
		}
	}()

	// -------------------------------------------------------------------------
	// Start API Service

	log.Info(ctx, "startup", "status", "initializing V1 API support")

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	cfgMux := mux.Config{
		Build:     cfg.Version.Build,
		Log:       log,
		DB:        db,
		Tracer:    tracer,
		Auth:      authClient,
		ActiveKID: cfg.Auth.ActiveKID,
		BusConfig: mux.BusConfig{
			AuditBus:    auditBus,
			DBAdminBus:  dbAdminBus,
			InvoiceBus:  invoiceBus,
			MaintBus:    maintBus,
			OrgBus:      orgBus,
			PermBus:     permBus,
			PropertyBus: propertyBus,
			QRPayBus:    qrPayBus,
			TenantBus:   tenantBus,
			UnitBus:     unitBus,
			UserBus:     userBus,
		},
		Bootstrap: mux.BootstrapConfig{
			Email:    cfg.Bootstrap.Email,
			Password: cfg.Bootstrap.Password,
		},
	}

	webAPI := mux.WebAPI(cfgMux,
		all.Routes(),
		mux.WithCORS(cfg.Web.CORSAllowedOrigins),
	)

	api := http.Server{
		Addr:         cfg.Web.APIHost,
		Handler:      webAPI,
		ReadTimeout:  cfg.Web.ReadTimeout,
		WriteTimeout: cfg.Web.WriteTimeout,
		IdleTimeout:  cfg.Web.IdleTimeout,
		ErrorLog:     logger.NewStdLogger(log, logger.LevelError),
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info(ctx, "startup", "status", "api router started", "host", api.Addr)
		serverErrors <- api.ListenAndServe()
	}()

	// -------------------------------------------------------------------------
	// Shutdown

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Info(ctx, "shutdown", "status", "shutdown started", "signal", sig)
		defer log.Info(ctx, "shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(ctx, cfg.Web.ShutdownTimeout)
		defer cancel()

		if err := api.Shutdown(ctx); err != nil {
			api.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func sanitizeConfig(cfg Config) string {
	cfg.DB.Password = "[MASKED]"
	cfg.Bootstrap.Password = "[MASKED]"

	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Sprintf("%+v", cfg)
	}
	return string(data)
}
