package qrpaybus

import (
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/types/money"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/qrstatus"
)

// Request represents a QR payment request. The image URL points at the
// external QR generator and encodes the reference token. Expiry is checked
// by callers with Expired; the row is never auto-transitioned.
type Request struct {
	ID             uuid.UUID
	OrgID          uuid.UUID
	TenantID       uuid.UUID
	Amount         money.Money
	BillReferences []string
	ReferenceToken string
	ImageURL       string
	Status         qrstatus.Status
	ScreenshotURL  *string
	SubmittedAt    *time.Time
	VerifiedBy     *uuid.UUID
	VerifiedAt     *time.Time
	VerifyNotes    string
	ExpiresAt      time.Time
	CreatedAt      time.Time
}

// Expired reports whether the request's payment window has lapsed at the
// given moment.
func (r Request) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// NewRequest contains information needed to generate a QR payment request.
type NewRequest struct {
	OrgID          uuid.UUID
	TenantID       uuid.UUID
	Amount         money.Money
	BillReferences []string
}
