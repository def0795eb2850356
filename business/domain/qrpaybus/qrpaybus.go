// Package qrpaybus provides business access to QR payment requests.
package qrpaybus

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/qrstatus"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/otel"
)

// paymentWindow is how long a generated QR code remains payable.
const paymentWindow = 15 * time.Minute

// Set of errors for QR payment operations.
var (
	ErrNotFound         = errors.New("qr payment request not found")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrNoBillReferences = errors.New("at least one bill reference is required")
	ErrAlreadySubmitted = errors.New("screenshot already submitted")
	ErrNotSubmitted     = errors.New("request has no submitted screenshot")
)

// Storer defines the behavior required for QR payment persistence.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, req Request) error
	Update(ctx context.Context, req Request) error
	SubmitScreenshot(ctx context.Context, requestID uuid.UUID, screenshotURL string, submittedAt time.Time) (int, error)
	QueryByID(ctx context.Context, requestID uuid.UUID) (Request, error)
	QueryByTenant(ctx context.Context, tenantID uuid.UUID) ([]Request, error)
	QueryByStatus(ctx context.Context, orgID uuid.UUID, status qrstatus.Status) ([]Request, error)
}

// Core manages the set of APIs for QR payment access.
type Core struct {
	log          *logger.Logger
	storer       Storer
	generatorURL string
}

// NewCore constructs a core for QR payment api access. The generator URL is
// the base endpoint of the external QR image service.
func NewCore(log *logger.Logger, storer Storer, generatorURL string) *Core {
	return &Core{
		log:          log,
		storer:       storer,
		generatorURL: generatorURL,
	}
}

// NewWithTx constructs a new Core value replacing the Storer value with a
// Storer value that is currently inside a transaction.
func (c *Core) NewWithTx(tx sqldb.CommitRollbacker) (*Core, error) {
	storer, err := c.storer.NewWithTx(tx)
	if err != nil {
		return nil, fmt.Errorf("newWithTx: %w", err)
	}

	return &Core{
		log:          c.log,
		storer:       storer,
		generatorURL: c.generatorURL,
	}, nil
}

// Generate creates a pending QR payment request with a fresh reference
// token, the generator image URL and a 15 minute payment window.
func (c *Core) Generate(ctx context.Context, nr NewRequest) (Request, error) {
	ctx, span := otel.AddSpan(ctx, "business.qrpaybus.generate")
	defer span.End()

	if nr.Amount.IsZero() {
		return Request{}, ErrInvalidAmount
	}

	if len(nr.BillReferences) == 0 {
		return Request{}, ErrNoBillReferences
	}

	now := time.Now()
	token := generateToken()

	req := Request{
		ID:             uuid.New(),
		OrgID:          nr.OrgID,
		TenantID:       nr.TenantID,
		Amount:         nr.Amount,
		BillReferences: nr.BillReferences,
		ReferenceToken: token,
		ImageURL:       c.imageURL(token, nr),
		Status:         qrstatus.Pending,
		ExpiresAt:      now.Add(paymentWindow),
		CreatedAt:      now,
	}

	if err := c.storer.Create(ctx, req); err != nil {
		return Request{}, fmt.Errorf("create: %w", err)
	}

	return req, nil
}

// SubmitScreenshot attaches a payment screenshot to a pending request. The
// store performs a conditional update against the pending state so a second
// submission loses the race and reports ErrAlreadySubmitted.
func (c *Core) SubmitScreenshot(ctx context.Context, requestID uuid.UUID, screenshotURL string) (Request, error) {
	ctx, span := otel.AddSpan(ctx, "business.qrpaybus.submitScreenshot")
	defer span.End()

	affected, err := c.storer.SubmitScreenshot(ctx, requestID, screenshotURL, time.Now())
	if err != nil {
		return Request{}, fmt.Errorf("submitscreenshot: %w", err)
	}

	if affected == 0 {
		if _, err := c.storer.QueryByID(ctx, requestID); err != nil {
			return Request{}, fmt.Errorf("query: requestID[%s]: %w", requestID, err)
		}
		return Request{}, ErrAlreadySubmitted
	}

	req, err := c.storer.QueryByID(ctx, requestID)
	if err != nil {
		return Request{}, fmt.Errorf("query: requestID[%s]: %w", requestID, err)
	}

	return req, nil
}

// Verify resolves a submitted request to approved or rejected. The caller
// writes the matching audit entry inside the same transaction.
func (c *Core) Verify(ctx context.Context, req Request, approve bool, verifiedBy uuid.UUID, notes string) (Request, error) {
	ctx, span := otel.AddSpan(ctx, "business.qrpaybus.verify")
	defer span.End()

	if !req.Status.Equal(qrstatus.ScreenshotSubmitted) {
		return Request{}, ErrNotSubmitted
	}

	now := time.Now()

	req.Status = qrstatus.Rejected
	if approve {
		req.Status = qrstatus.Approved
	}
	req.VerifiedBy = &verifiedBy
	req.VerifiedAt = &now
	req.VerifyNotes = notes

	if err := c.storer.Update(ctx, req); err != nil {
		return Request{}, fmt.Errorf("update: %w", err)
	}

	return req, nil
}

// QueryByID finds the QR payment request by the specified ID.
func (c *Core) QueryByID(ctx context.Context, requestID uuid.UUID) (Request, error) {
	ctx, span := otel.AddSpan(ctx, "business.qrpaybus.queryByID")
	defer span.End()

	req, err := c.storer.QueryByID(ctx, requestID)
	if err != nil {
		return Request{}, fmt.Errorf("query: requestID[%s]: %w", requestID, err)
	}

	return req, nil
}

// QueryByTenant lists a tenant's QR payment requests, newest first.
func (c *Core) QueryByTenant(ctx context.Context, tenantID uuid.UUID) ([]Request, error) {
	ctx, span := otel.AddSpan(ctx, "business.qrpaybus.queryByTenant")
	defer span.End()

	reqs, err := c.storer.QueryByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query: tenantID[%s]: %w", tenantID, err)
	}

	return reqs, nil
}

// QueryPending lists requests awaiting verification for an organization.
func (c *Core) QueryPending(ctx context.Context, orgID uuid.UUID) ([]Request, error) {
	ctx, span := otel.AddSpan(ctx, "business.qrpaybus.queryPending")
	defer span.End()

	reqs, err := c.storer.QueryByStatus(ctx, orgID, qrstatus.ScreenshotSubmitted)
	if err != nil {
		return nil, fmt.Errorf("query: orgID[%s]: %w", orgID, err)
	}

	return reqs, nil
}

func (c *Core) imageURL(token string, nr NewRequest) string {
	payload := fmt.Sprintf("%s|%.2f|%s", token, nr.Amount.Value(), strings.Join(nr.BillReferences, ","))

	v := url.Values{}
	v.Set("data", payload)
	v.Set("size", "300x300")

	return c.generatorURL + "?" + v.Encode()
}

func generateToken() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}
