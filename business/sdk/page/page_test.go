package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	pg, err := Parse("2", "25")
	require.NoError(t, err)
	assert.Equal(t, 2, pg.Number())
	assert.Equal(t, 25, pg.RowsPerPage())
}

func TestParseDefaults(t *testing.T) {
	pg, err := Parse("", "")
	require.NoError(t, err)
	assert.Equal(t, 1, pg.Number())
	assert.Equal(t, 10, pg.RowsPerPage())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		page string
		rows string
	}{
		{"bad page", "abc", "10"},
		{"bad rows", "1", "abc"},
		{"zero page", "0", "10"},
		{"negative page", "-1", "10"},
		{"zero rows", "1", "0"},
		{"too many rows", "1", "101"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.page, tt.rows)
			assert.Error(t, err)
		})
	}
}

func TestParseRowsCap(t *testing.T) {
	_, err := Parse("1", "100")
	assert.NoError(t, err)
}
