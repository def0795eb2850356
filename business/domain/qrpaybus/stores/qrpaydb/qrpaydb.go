// Package qrpaydb contains QR payment request CRUD functionality.
package qrpaydb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/qrpaybus"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/qrstatus"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
)

const selectRequest = `
	SELECT
		qr.request_id, qr.org_id, qr.tenant_id, qr.amount, qr.bill_references,
		qr.reference_token, qr.image_url, qr.status, qr.screenshot_url,
		qr.submitted_at, qr.verified_by, qr.verified_at, qr.verify_notes,
		qr.expires_at, qr.created_at
	FROM
		qr_payment_requests AS qr`

// Store manages the set of APIs for QR payment database access.
type Store struct {
	log *logger.Logger
	db  sqlx.ExtContext
}

// NewStore constructs the api for data access.
func NewStore(log *logger.Logger, db *sqlx.DB) *Store {
	return &Store{
		log: log,
		db:  db,
	}
}

// NewWithTx constructs a new Store value replacing the sqlx DB
// value with a sqlx DB value that is currently inside a transaction.
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (qrpaybus.Storer, error) {
	ec, err := sqldb.GetExtContext(tx)
	if err != nil {
		return nil, err
	}

	store := Store{
		log: s.log,
		db:  ec,
	}

	return &store, nil
}

// Create inserts a new QR payment request into the database.
func (s *Store) Create(ctx context.Context, req qrpaybus.Request) error {
	const q = `
	INSERT INTO qr_payment_requests
		(request_id, org_id, tenant_id, amount, bill_references, reference_token,
		image_url, status, screenshot_url, submitted_at, verified_by, verified_at,
		verify_notes, expires_at, created_at)
	VALUES
		(:request_id, :org_id, :tenant_id, :amount, :bill_references, :reference_token,
		:image_url, :status, :screenshot_url, :submitted_at, :verified_by, :verified_at,
		:verify_notes, :expires_at, :created_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBRequest(req)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Update replaces a QR payment request document in the database.
func (s *Store) Update(ctx context.Context, req qrpaybus.Request) error {
	const q = `
	UPDATE
		qr_payment_requests
	SET
		status = :status,
		screenshot_url = :screenshot_url,
		submitted_at = :submitted_at,
		verified_by = :verified_by,
		verified_at = :verified_at,
		verify_notes = :verify_notes
	WHERE
		request_id = :request_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBRequest(req)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// SubmitScreenshot performs the conditional update that accepts a screenshot
// only while the request is still pending. The rows-affected count tells the
// caller whether this submission won.
func (s *Store) SubmitScreenshot(ctx context.Context, requestID uuid.UUID, screenshotURL string, submittedAt time.Time) (int, error) {
	data := struct {
		ID            string    `db:"request_id"`
		ScreenshotURL string    `db:"screenshot_url"`
		SubmittedAt   time.Time `db:"submitted_at"`
		From          string    `db:"from_status"`
		To            string    `db:"to_status"`
	}{
		ID:            requestID.String(),
		ScreenshotURL: screenshotURL,
		SubmittedAt:   submittedAt.UTC(),
		From:          qrstatus.Pending.String(),
		To:            qrstatus.ScreenshotSubmitted.String(),
	}

	const q = `
	UPDATE
		qr_payment_requests
	SET
		status = :to_status,
		screenshot_url = :screenshot_url,
		submitted_at = :submitted_at
	WHERE
		request_id = :request_id AND status = :from_status`

	affected, err := sqldb.NamedExecContextCount(ctx, s.log, s.db, q, data)
	if err != nil {
		return 0, fmt.Errorf("namedexeccontextcount: %w", err)
	}

	return affected, nil
}

// QueryByID gets the specified QR payment request from the database.
func (s *Store) QueryByID(ctx context.Context, requestID uuid.UUID) (qrpaybus.Request, error) {
	data := struct {
		ID string `db:"request_id"`
	}{
		ID: requestID.String(),
	}

	q := selectRequest + `
	WHERE
		qr.request_id = :request_id`

	var dbReq requestDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbReq); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return qrpaybus.Request{}, fmt.Errorf("db: %w", qrpaybus.ErrNotFound)
		}
		return qrpaybus.Request{}, fmt.Errorf("db: %w", err)
	}

	return toBusRequest(dbReq)
}

// QueryByTenant lists a tenant's QR payment requests, newest first.
func (s *Store) QueryByTenant(ctx context.Context, tenantID uuid.UUID) ([]qrpaybus.Request, error) {
	data := struct {
		ID string `db:"tenant_id"`
	}{
		ID: tenantID.String(),
	}

	q := selectRequest + `
	WHERE
		qr.tenant_id = :tenant_id
	ORDER BY
		qr.created_at DESC`

	var dbReqs []requestDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, q, data, &dbReqs); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusRequests(dbReqs)
}

// QueryByStatus lists an organization's requests in the specified state,
// oldest first so verifiers work the queue in order.
func (s *Store) QueryByStatus(ctx context.Context, orgID uuid.UUID, status qrstatus.Status) ([]qrpaybus.Request, error) {
	data := struct {
		ID     string `db:"org_id"`
		Status string `db:"status"`
	}{
		ID:     orgID.String(),
		Status: status.String(),
	}

	q := selectRequest + `
	WHERE
		qr.org_id = :org_id AND qr.status = :status
	ORDER BY
		qr.created_at`

	var dbReqs []requestDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, q, data, &dbReqs); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusRequests(dbReqs)
}
