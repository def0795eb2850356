package dbadminbus

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrarunkumar300-ops/dharmahome/foundation/logger"
)

func testCore(t *testing.T) *Core {
	t.Helper()

	log := logger.New(io.Discard, logger.LevelInfo, "TEST", nil)

	// The guard paths under test reject before any query is issued.
	return NewCore(log, nil)
}

func TestTables(t *testing.T) {
	core := testCore(t)

	tbls := core.Tables()
	require.NotEmpty(t, tbls)

	byName := make(map[string]Table)
	for _, tbl := range tbls {
		byName[tbl.Name] = tbl
	}

	users, exists := byName["users"]
	require.True(t, exists)
	assert.Equal(t, "user_id", users.PrimaryKey)
	assert.True(t, users.Mutable)

	audit, exists := byName["audit_log"]
	require.True(t, exists)
	assert.False(t, audit.Mutable)

	_, exists = byName["pg_catalog"]
	assert.False(t, exists)
}

func TestTablesSorted(t *testing.T) {
	core := testCore(t)

	tbls := core.Tables()
	for i := 1; i < len(tbls); i++ {
		assert.LessOrEqual(t, tbls[i-1].Name, tbls[i].Name)
	}
}

func TestUnknownTableRejected(t *testing.T) {
	core := testCore(t)
	ctx := context.Background()

	err := core.InsertRow(ctx, "pg_shadow", map[string]any{"usename": "x"})
	assert.ErrorIs(t, err, ErrTableNotAllowed)

	err = core.UpdateRow(ctx, "information_schema", "1", map[string]any{"a": "b"})
	assert.ErrorIs(t, err, ErrTableNotAllowed)

	err = core.DeleteRow(ctx, "nope", "1")
	assert.ErrorIs(t, err, ErrTableNotAllowed)
}

func TestReadOnlyTableRejected(t *testing.T) {
	core := testCore(t)
	ctx := context.Background()

	err := core.InsertRow(ctx, "audit_log", map[string]any{"action": "x"})
	assert.ErrorIs(t, err, ErrTableReadOnly)

	err = core.UpdateRow(ctx, "audit_log", "1", map[string]any{"action": "x"})
	assert.ErrorIs(t, err, ErrTableReadOnly)

	err = core.DeleteRow(ctx, "audit_log", "1")
	assert.ErrorIs(t, err, ErrTableReadOnly)
}

func TestAddEnumValueGuards(t *testing.T) {
	core := testCore(t)
	ctx := context.Background()

	err := core.AddEnumValue(ctx, "bad-enum", "VALUE")
	assert.ErrorIs(t, err, ErrBadIdentifier)

	err = core.AddEnumValue(ctx, "DropTable", "VALUE")
	assert.ErrorIs(t, err, ErrBadIdentifier)

	err = core.AddEnumValue(ctx, "invoice_status", "X'; DROP TABLE users; --")
	assert.ErrorIs(t, err, ErrBadIdentifier)
}
