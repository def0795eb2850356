package qrpaydb

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mrarunkumar300-ops/dharmahome/business/domain/qrpaybus"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/money"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/qrstatus"
)

type requestDB struct {
	ID             uuid.UUID  `db:"request_id"`
	OrgID          uuid.UUID  `db:"org_id"`
	TenantID       uuid.UUID  `db:"tenant_id"`
	Amount         float64    `db:"amount"`
	BillReferences string     `db:"bill_references"`
	ReferenceToken string     `db:"reference_token"`
	ImageURL       string     `db:"image_url"`
	Status         string     `db:"status"`
	ScreenshotURL  *string    `db:"screenshot_url"`
	SubmittedAt    *time.Time `db:"submitted_at"`
	VerifiedBy     *uuid.UUID `db:"verified_by"`
	VerifiedAt     *time.Time `db:"verified_at"`
	VerifyNotes    string     `db:"verify_notes"`
	ExpiresAt      time.Time  `db:"expires_at"`
	CreatedAt      time.Time  `db:"created_at"`
}

func toDBRequest(req qrpaybus.Request) requestDB {
	dbReq := requestDB{
		ID:             req.ID,
		OrgID:          req.OrgID,
		TenantID:       req.TenantID,
		Amount:         req.Amount.Value(),
		BillReferences: strings.Join(req.BillReferences, ","),
		ReferenceToken: req.ReferenceToken,
		ImageURL:       req.ImageURL,
		Status:         req.Status.String(),
		ScreenshotURL:  req.ScreenshotURL,
		VerifiedBy:     req.VerifiedBy,
		VerifyNotes:    req.VerifyNotes,
		ExpiresAt:      req.ExpiresAt.UTC(),
		CreatedAt:      req.CreatedAt.UTC(),
	}

	if req.SubmittedAt != nil {
		t := req.SubmittedAt.UTC()
		dbReq.SubmittedAt = &t
	}

	if req.VerifiedAt != nil {
		t := req.VerifiedAt.UTC()
		dbReq.VerifiedAt = &t
	}

	return dbReq
}

func toBusRequest(dbReq requestDB) (qrpaybus.Request, error) {
	amount, err := money.Parse(dbReq.Amount)
	if err != nil {
		return qrpaybus.Request{}, fmt.Errorf("parse amount: %w", err)
	}

	status, err := qrstatus.Parse(dbReq.Status)
	if err != nil {
		return qrpaybus.Request{}, fmt.Errorf("parse status: %w", err)
	}

	req := qrpaybus.Request{
		ID:             dbReq.ID,
		OrgID:          dbReq.OrgID,
		TenantID:       dbReq.TenantID,
		Amount:         amount,
		BillReferences: strings.Split(dbReq.BillReferences, ","),
		ReferenceToken: dbReq.ReferenceToken,
		ImageURL:       dbReq.ImageURL,
		Status:         status,
		ScreenshotURL:  dbReq.ScreenshotURL,
		SubmittedAt:    dbReq.SubmittedAt,
		VerifiedBy:     dbReq.VerifiedBy,
		VerifiedAt:     dbReq.VerifiedAt,
		VerifyNotes:    dbReq.VerifyNotes,
		ExpiresAt:      dbReq.ExpiresAt.In(time.Local),
		CreatedAt:      dbReq.CreatedAt.In(time.Local),
	}

	return req, nil
}

func toBusRequests(dbReqs []requestDB) ([]qrpaybus.Request, error) {
	reqs := make([]qrpaybus.Request, len(dbReqs))

	for i, dbReq := range dbReqs {
		var err error
		reqs[i], err = toBusRequest(dbReq)
		if err != nil {
			return nil, err
		}
	}

	return reqs, nil
}
