// Package checkapp provides liveness and readiness handlers.
package checkapp

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"runtime"

	"github.com/jmoiron/sqlx"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/errs"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/web"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
)

type app struct {
	build string
	log   *logger.Logger
	db    *sqlx.DB
}

func newApp(build string, log *logger.Logger, db *sqlx.DB) *app {
	return &app{
		build: build,
		log:   log,
		db:    db,
	}
}

// readiness checks if the database is ready and will fail the check if it
// is not.
func (a *app) readiness(ctx context.Context, _ *http.Request) web.Encoder {
	if err := sqldb.StatusCheck(ctx, a.db); err != nil {
		a.log.Info(ctx, "readiness failure", "error", err)
		return errs.New(errs.Internal, err)
	}

	return status{Status: "OK"}
}

// liveness returns simple status info about the running service. This
// handler responding means the service is up and able to take traffic.
func (a *app) liveness(ctx context.Context, _ *http.Request) web.Encoder {
	host, err := os.Hostname()
	if err != nil {
		host = "unavailable"
	}

	return info{
		Status:     "up",
		Build:      a.build,
		Host:       host,
		GOMAXPROCS: runtime.GOMAXPROCS(0),
	}
}

type status struct {
	Status string `json:"status"`
}

// Encode implements the encoder interface.
func (s status) Encode() ([]byte, string, error) {
	data, err := json.Marshal(s)
	return data, "application/json", err
}

type info struct {
	Status     string `json:"status"`
	Build      string `json:"build"`
	Host       string `json:"host"`
	GOMAXPROCS int    `json:"GOMAXPROCS"`
}

// Encode implements the encoder interface.
func (i info) Encode() ([]byte, string, error) {
	data, err := json.Marshal(i)
	return data, "application/json", err
}
