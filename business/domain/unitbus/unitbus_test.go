package unitbus

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
	"github.com/mrarunkumar300-ops/dharmahome/business/types/money"
	"github.com/mrarunkumar300-ops/dharmahome/business/types/unitstatus"
	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
)

type stubStorer struct {
	units map[uuid.UUID]Unit
}

func newStubStorer() *stubStorer {
	return &stubStorer{units: make(map[uuid.UUID]Unit)}
}

func (s *stubStorer) NewWithTx(tx sqldb.CommitRollbacker) (Storer, error) {
	return s, nil
}

func (s *stubStorer) Create(ctx context.Context, unt Unit) error {
	s.units[unt.ID] = unt
	return nil
}

func (s *stubStorer) Update(ctx context.Context, unt Unit) error {
	if _, exists := s.units[unt.ID]; !exists {
		return ErrNotFound
	}
	s.units[unt.ID] = unt
	return nil
}

func (s *stubStorer) Delete(ctx context.Context, unt Unit) error {
	delete(s.units, unt.ID)
	return nil
}

func (s *stubStorer) Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Unit, error) {
	var unts []Unit
	for _, unt := range s.units {
		unts = append(unts, unt)
	}
	return unts, nil
}

func (s *stubStorer) Count(ctx context.Context, filter QueryFilter) (int, error) {
	return len(s.units), nil
}

func (s *stubStorer) QueryByID(ctx context.Context, unitID uuid.UUID) (Unit, error) {
	unt, exists := s.units[unitID]
	if !exists {
		return Unit{}, ErrNotFound
	}
	return unt, nil
}

func testCore(t *testing.T) *Core {
	t.Helper()

	log := logger.New(io.Discard, logger.LevelInfo, "TEST", nil)

	return NewCore(log, newStubStorer())
}

func createUnit(t *testing.T, core *Core) Unit {
	t.Helper()

	unt, err := core.Create(context.Background(), NewUnit{
		PropertyID: uuid.New(),
		OrgID:      uuid.New(),
		Number:     "101",
		Floor:      1,
		Rent:       money.MustParse(8500),
	})
	require.NoError(t, err)

	return unt
}

func TestCreateStartsVacant(t *testing.T) {
	core := testCore(t)

	unt := createUnit(t, core)

	assert.True(t, unt.Status.Equal(unitstatus.Vacant))
	assert.Nil(t, unt.OccupantID)
}

func TestAssign(t *testing.T) {
	core := testCore(t)
	ctx := context.Background()

	unt := createUnit(t, core)
	tenantID := uuid.New()

	assigned, err := core.Assign(ctx, unt, tenantID)
	require.NoError(t, err)

	assert.True(t, assigned.Status.Equal(unitstatus.Occupied))
	require.NotNil(t, assigned.OccupantID)
	assert.Equal(t, tenantID, *assigned.OccupantID)

	_, err = core.Assign(ctx, assigned, uuid.New())
	assert.ErrorIs(t, err, ErrNotVacant)
}

func TestUnassign(t *testing.T) {
	core := testCore(t)
	ctx := context.Background()

	unt := createUnit(t, core)

	_, err := core.Unassign(ctx, unt)
	assert.ErrorIs(t, err, ErrNotOccupied)

	assigned, err := core.Assign(ctx, unt, uuid.New())
	require.NoError(t, err)

	vacated, err := core.Unassign(ctx, assigned)
	require.NoError(t, err)

	assert.True(t, vacated.Status.Equal(unitstatus.Vacant))
	assert.Nil(t, vacated.OccupantID)
}

func TestAssignMaintenanceUnit(t *testing.T) {
	core := testCore(t)
	ctx := context.Background()

	unt := createUnit(t, core)

	updated, err := core.Update(ctx, unt, UpdateUnit{Status: &unitstatus.Maintenance})
	require.NoError(t, err)

	_, err = core.Assign(ctx, updated, uuid.New())
	assert.ErrorIs(t, err, ErrNotVacant)
}
