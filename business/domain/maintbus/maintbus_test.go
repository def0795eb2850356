package maintbus

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/order"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/page"
	"github.com/mrarunkumar300-ops/dharmahome/business/sdk/sqldb"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/priority"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/ticketstatus"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
)

type stubStorer struct {
	tkts map[uuid.UUID]Ticket
}

func newStubStorer() *stubStorer {
	return &stubStorer{tkts: make(map[uuid.UUID]Ticket)}
}

func (s *stubStorer) NewWithTx(tx sqldb.CommitRollbacker) (Storer, error) {
	return s, nil
}

func (s *stubStorer) Create(ctx context.Context, tkt Ticket) error {
	s.tkts[tkt.ID] = tkt
	return nil
}

func (s *stubStorer) Update(ctx context.Context, tkt Ticket) error {
	if _, exists := s.tkts[tkt.ID]; !exists {
		return ErrNotFound
	}
	s.tkts[tkt.ID] = tkt
	return nil
}

func (s *stubStorer) Delete(ctx context.Context, tkt Ticket) error {
	delete(s.tkts, tkt.ID)
	return nil
}

func (s *stubStorer) Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Ticket, error) {
	var tkts []Ticket
	for _, tkt := range s.tkts {
		tkts = append(tkts, tkt)
	}
	return tkts, nil
}

func (s *stubStorer) Count(ctx context.Context, filter QueryFilter) (int, error) {
	return len(s.tkts), nil
}

func (s *stubStorer) QueryByID(ctx context.Context, ticketID uuid.UUID) (Ticket, error) {
	tkt, exists := s.tkts[ticketID]
	if !exists {
		return Ticket{}, ErrNotFound
	}
	return tkt, nil
}

func (s *stubStorer) NextBoardPosition(ctx context.Context, orgID uuid.UUID, status ticketstatus.Status) (int, error) {
	next := 0
	for _, tkt := range s.tkts {
		if tkt.OrgID == orgID && tkt.Status.Equal(status) && tkt.BoardPosition >= next {
			next = tkt.BoardPosition + 1
		}
	}
	return next, nil
}

func testCore(t *testing.T) *Core {
	t.Helper()

	log := logger.New(io.Discard, logger.LevelInfo, "TEST", nil)

	return NewCore(log, newStubStorer())
}

func TestCreateAppendsToOpenColumn(t *testing.T) {
	core := testCore(t)
	ctx := context.Background()
	orgID := uuid.New()

	first, err := core.Create(ctx, NewTicket{
		OrgID:    orgID,
		Title:    "Leaking tap",
		Priority: priority.High,
	})
	require.NoError(t, err)
	assert.True(t, first.Status.Equal(ticketstatus.Open))
	assert.Equal(t, 0, first.BoardPosition)

	second, err := core.Create(ctx, NewTicket{
		OrgID:    orgID,
		Title:    "Broken light",
		Priority: priority.Low,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, second.BoardPosition)
}

func TestCreateSeparateOrgsSeparateBoards(t *testing.T) {
	core := testCore(t)
	ctx := context.Background()

	_, err := core.Create(ctx, NewTicket{OrgID: uuid.New(), Title: "a", Priority: priority.Medium})
	require.NoError(t, err)

	other, err := core.Create(ctx, NewTicket{OrgID: uuid.New(), Title: "b", Priority: priority.Medium})
	require.NoError(t, err)

	assert.Equal(t, 0, other.BoardPosition)
}

func TestMove(t *testing.T) {
	core := testCore(t)
	ctx := context.Background()

	tkt, err := core.Create(ctx, NewTicket{
		OrgID:    uuid.New(),
		Title:    "Leaking tap",
		Priority: priority.High,
	})
	require.NoError(t, err)

	moved, err := core.Move(ctx, tkt, ticketstatus.InProgress, 3)
	require.NoError(t, err)
	assert.True(t, moved.Status.Equal(ticketstatus.InProgress))
	assert.Equal(t, 3, moved.BoardPosition)

	back, err := core.Move(ctx, moved, ticketstatus.Open, 0)
	require.NoError(t, err)
	assert.True(t, back.Status.Equal(ticketstatus.Open))
	assert.Equal(t, 0, back.BoardPosition)
}

func TestUpdate(t *testing.T) {
	core := testCore(t)
	ctx := context.Background()

	tkt, err := core.Create(ctx, NewTicket{
		OrgID:    uuid.New(),
		Title:    "Leaking tap",
		Priority: priority.High,
	})
	require.NoError(t, err)

	title := "Leaking tap in kitchen"
	pri := priority.Medium

	updated, err := core.Update(ctx, tkt, UpdateTicket{Title: &title, Priority: &pri})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.True(t, updated.Priority.Equal(priority.Medium))
	assert.True(t, updated.Status.Equal(ticketstatus.Open))
}
