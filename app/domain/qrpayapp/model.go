package qrpayapp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/errs"
	"github.com/mrarunkumar300-ops/dharmahome/business/domain/qrpaybus"
)

// QRPayment represents a QR payment request.
type QRPayment struct {
	ID            string   `json:"id"`
	OrgID         string   `json:"orgId"`
	TenantID      string   `json:"tenantId"`
	Amount        float64  `json:"amount"`
	BillRefs      []string `json:"billRefs"`
	ImageURL      string   `json:"imageUrl"`
	Status        string   `json:"status"`
	ScreenshotURL string   `json:"screenshotUrl,omitempty"`
	SubmittedAt   string   `json:"submittedAt,omitempty"`
	VerifiedBy    string   `json:"verifiedBy,omitempty"`
	VerifiedAt    string   `json:"verifiedAt,omitempty"`
	VerifyNotes   string   `json:"verifyNotes,omitempty"`
	ExpiresAt     string   `json:"expiresAt"`
	DateCreated   string   `json:"dateCreated"`
}

// Encode implements the encoder interface.
func (q QRPayment) Encode() ([]byte, string, error) {
	data, err := json.Marshal(q)
	return data, "application/json", err
}

func toAppQRPayment(bus qrpaybus.Request) QRPayment {
	app := QRPayment{
		ID:          bus.ID.String(),
		OrgID:       bus.OrgID.String(),
		TenantID:    bus.TenantID.String(),
		Amount:      bus.Amount.Value(),
		BillRefs:    bus.BillReferences,
		ImageURL:    bus.ImageURL,
		Status:      bus.Status.String(),
		VerifyNotes: bus.VerifyNotes,
		ExpiresAt:   bus.ExpiresAt.Format(time.RFC3339),
		DateCreated: bus.CreatedAt.Format(time.RFC3339),
	}

	if bus.ScreenshotURL != nil {
		app.ScreenshotURL = *bus.ScreenshotURL
	}
	if bus.SubmittedAt != nil {
		app.SubmittedAt = bus.SubmittedAt.Format(time.RFC3339)
	}
	if bus.VerifiedBy != nil {
		app.VerifiedBy = bus.VerifiedBy.String()
	}
	if bus.VerifiedAt != nil {
		app.VerifiedAt = bus.VerifiedAt.Format(time.RFC3339)
	}

	return app
}

// QRPayments wraps a request list for encoding.
type QRPayments struct {
	Items []QRPayment `json:"items"`
}

// Encode implements the encoder interface.
func (q QRPayments) Encode() ([]byte, string, error) {
	data, err := json.Marshal(q)
	return data, "application/json", err
}

func toAppQRPayments(reqs []qrpaybus.Request) QRPayments {
	items := make([]QRPayment, len(reqs))
	for i, req := range reqs {
		items[i] = toAppQRPayment(req)
	}
	return QRPayments{Items: items}
}

// NewQRPayment defines the data needed to generate a payment request.
type NewQRPayment struct {
	Amount   float64  `json:"amount" validate:"required,gt=0"`
	BillRefs []string `json:"billRefs" validate:"required,min=1"`
}

// Decode implements the decoder interface.
func (app *NewQRPayment) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewQRPayment) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

// SubmitScreenshot defines the data needed to attach payment proof.
type SubmitScreenshot struct {
	ScreenshotURL string `json:"screenshotUrl" validate:"required,url"`
}

// Decode implements the decoder interface.
func (app *SubmitScreenshot) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app SubmitScreenshot) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

// VerifyQRPayment defines the admin verification decision.
type VerifyQRPayment struct {
	Approve bool   `json:"approve"`
	Notes   string `json:"notes"`
}

// Decode implements the decoder interface.
func (app *VerifyQRPayment) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app VerifyQRPayment) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}
