package qrpaybus

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/money"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/qrstatus"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
)

type stubStorer struct {
	reqs map[uuid.UUID]Request
}

func newStubStorer() *stubStorer {
	return &stubStorer{reqs: make(map[uuid.UUID]Request)}
}

func (s *stubStorer) NewWithTx(tx sqldb.CommitRollbacker) (Storer, error) {
	return s, nil
}

func (s *stubStorer) Create(ctx context.Context, req Request) error {
	s.reqs[req.ID] = req
	return nil
}

func (s *stubStorer) Update(ctx context.Context, req Request) error {
	if _, exists := s.reqs[req.ID]; !exists {
		return ErrNotFound
	}
	s.reqs[req.ID] = req
	return nil
}

func (s *stubStorer) SubmitScreenshot(ctx context.Context, requestID uuid.UUID, screenshotURL string, submittedAt time.Time) (int, error) {
	req, exists := s.reqs[requestID]
	if !exists || !req.Status.Equal(qrstatus.Pending) {
		return 0, nil
	}

	req.Status = qrstatus.ScreenshotSubmitted
	req.ScreenshotURL = &screenshotURL
	req.SubmittedAt = &submittedAt
	s.reqs[requestID] = req

	return 1, nil
}

func (s *stubStorer) QueryByID(ctx context.Context, requestID uuid.UUID) (Request, error) {
	req, exists := s.reqs[requestID]
	if !exists {
		return Request{}, ErrNotFound
	}
	return req, nil
}

func (s *stubStorer) QueryByTenant(ctx context.Context, tenantID uuid.UUID) ([]Request, error) {
	var reqs []Request
	for _, req := range s.reqs {
		if req.TenantID == tenantID {
			reqs = append(reqs, req)
		}
	}
	return reqs, nil
}

func (s *stubStorer) QueryByStatus(ctx context.Context, orgID uuid.UUID, status qrstatus.Status) ([]Request, error) {
	var reqs []Request
	for _, req := range s.reqs {
		if req.OrgID == orgID && req.Status.Equal(status) {
			reqs = append(reqs, req)
		}
	}
	return reqs, nil
}

func testCore(t *testing.T) (*Core, *stubStorer) {
	t.Helper()

	log := logger.New(io.Discard, logger.LevelInfo, "TEST", nil)
	storer := newStubStorer()

	return NewCore(log, storer, "https://qr.example.com/generate"), storer
}

func TestGenerate(t *testing.T) {
	core, _ := testCore(t)
	ctx := context.Background()

	nr := NewRequest{
		OrgID:          uuid.New(),
		TenantID:       uuid.New(),
		Amount:         money.MustParse(1500),
		BillReferences: []string{"INV-001", "INV-002"},
	}

	req, err := core.Generate(ctx, nr)
	require.NoError(t, err)

	assert.True(t, req.Status.Equal(qrstatus.Pending))
	assert.Len(t, req.ReferenceToken, 32)
	assert.Contains(t, req.ImageURL, "https://qr.example.com/generate?")
	assert.Contains(t, req.ImageURL, "size=300x300")
	assert.True(t, req.ExpiresAt.After(req.CreatedAt))
	assert.False(t, req.Expired(req.CreatedAt))
	assert.True(t, req.Expired(req.CreatedAt.Add(16*time.Minute)))
}

func TestGenerateGuards(t *testing.T) {
	core, _ := testCore(t)
	ctx := context.Background()

	nr := NewRequest{
		OrgID:          uuid.New(),
		TenantID:       uuid.New(),
		BillReferences: []string{"INV-001"},
	}

	_, err := core.Generate(ctx, nr)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	nr.Amount = money.MustParse(100)
	nr.BillReferences = nil

	_, err = core.Generate(ctx, nr)
	assert.ErrorIs(t, err, ErrNoBillReferences)
}

func TestSubmitScreenshot(t *testing.T) {
	core, _ := testCore(t)
	ctx := context.Background()

	req, err := core.Generate(ctx, NewRequest{
		OrgID:          uuid.New(),
		TenantID:       uuid.New(),
		Amount:         money.MustParse(100),
		BillReferences: []string{"INV-001"},
	})
	require.NoError(t, err)

	submitted, err := core.SubmitScreenshot(ctx, req.ID, "https://cdn.example.com/shot.png")
	require.NoError(t, err)
	assert.True(t, submitted.Status.Equal(qrstatus.ScreenshotSubmitted))
	require.NotNil(t, submitted.ScreenshotURL)
	assert.Equal(t, "https://cdn.example.com/shot.png", *submitted.ScreenshotURL)

	_, err = core.SubmitScreenshot(ctx, req.ID, "https://cdn.example.com/other.png")
	assert.ErrorIs(t, err, ErrAlreadySubmitted)

	_, err = core.SubmitScreenshot(ctx, uuid.New(), "https://cdn.example.com/shot.png")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVerify(t *testing.T) {
	core, _ := testCore(t)
	ctx := context.Background()

	req, err := core.Generate(ctx, NewRequest{
		OrgID:          uuid.New(),
		TenantID:       uuid.New(),
		Amount:         money.MustParse(100),
		BillReferences: []string{"INV-001"},
	})
	require.NoError(t, err)

	_, err = core.Verify(ctx, req, true, uuid.New(), "")
	assert.ErrorIs(t, err, ErrNotSubmitted)

	submitted, err := core.SubmitScreenshot(ctx, req.ID, "https://cdn.example.com/shot.png")
	require.NoError(t, err)

	verifiedBy := uuid.New()

	verified, err := core.Verify(ctx, submitted, true, verifiedBy, "matches bank statement")
	require.NoError(t, err)
	assert.True(t, verified.Status.Equal(qrstatus.Approved))
	require.NotNil(t, verified.VerifiedBy)
	assert.Equal(t, verifiedBy, *verified.VerifiedBy)
	assert.NotNil(t, verified.VerifiedAt)
	assert.Equal(t, "matches bank statement", verified.VerifyNotes)
}

func TestVerifyReject(t *testing.T) {
	core, _ := testCore(t)
	ctx := context.Background()

	req, err := core.Generate(ctx, NewRequest{
		OrgID:          uuid.New(),
		TenantID:       uuid.New(),
		Amount:         money.MustParse(100),
		BillReferences: []string{"INV-001"},
	})
	require.NoError(t, err)

	submitted, err := core.SubmitScreenshot(ctx, req.ID, "https://cdn.example.com/shot.png")
	require.NoError(t, err)

	rejected, err := core.Verify(ctx, submitted, false, uuid.New(), "amount mismatch")
	require.NoError(t, err)
	assert.True(t, rejected.Status.Equal(qrstatus.Rejected))
}

func TestQueryPending(t *testing.T) {
	core, _ := testCore(t)
	ctx := context.Background()

	orgID := uuid.New()

	first, err := core.Generate(ctx, NewRequest{
		OrgID:          orgID,
		TenantID:       uuid.New(),
		Amount:         money.MustParse(100),
		BillReferences: []string{"INV-001"},
	})
	require.NoError(t, err)

	_, err = core.Generate(ctx, NewRequest{
		OrgID:          orgID,
		TenantID:       uuid.New(),
		Amount:         money.MustParse(200),
		BillReferences: []string{"INV-002"},
	})
	require.NoError(t, err)

	_, err = core.SubmitScreenshot(ctx, first.ID, "https://cdn.example.com/shot.png")
	require.NoError(t, err)

	pending, err := core.QueryPending(ctx, orgID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, first.ID, pending[0].ID)
}

func TestReferenceTokenShape(t *testing.T) {
	core, _ := testCore(t)
	ctx := context.Background()

	req, err := core.Generate(ctx, NewRequest{
		OrgID:          uuid.New(),
		TenantID:       uuid.New(),
		Amount:         money.MustParse(100),
		BillReferences: []string{"INV-001"},
	})
	require.NoError(t, err)

	assert.NotContains(t, req.ReferenceToken, "-")
	assert.Equal(t, strings.ToUpper(req.ReferenceToken), req.ReferenceToken)
}
