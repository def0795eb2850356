package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fields = map[string]string{
	"name":    "user_name",
	"created": "created_at",
}

var defaultOrder = NewBy("created_at", DESC)

func TestParseDefault(t *testing.T) {
	by, err := Parse(fields, "", defaultOrder)
	require.NoError(t, err)
	assert.Equal(t, defaultOrder, by)
}

func TestParseFieldOnly(t *testing.T) {
	by, err := Parse(fields, "name", defaultOrder)
	require.NoError(t, err)
	assert.Equal(t, "user_name", by.Field)
	assert.Equal(t, ASC, by.Direction)
}

func TestParseFieldAndDirection(t *testing.T) {
	by, err := Parse(fields, "created,desc", defaultOrder)
	require.NoError(t, err)
	assert.Equal(t, "created_at", by.Field)
	assert.Equal(t, DESC, by.Direction)

	by, err = Parse(fields, "name , ASC", defaultOrder)
	require.NoError(t, err)
	assert.Equal(t, "user_name", by.Field)
	assert.Equal(t, ASC, by.Direction)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(fields, "password", defaultOrder)
	assert.Error(t, err)

	_, err = Parse(fields, "name,sideways", defaultOrder)
	assert.Error(t, err)

	_, err = Parse(fields, "name,asc,extra", defaultOrder)
	assert.Error(t, err)
}

func TestNewByBadDirection(t *testing.T) {
	by := NewBy("created_at", "sideways")
	assert.Equal(t, ASC, by.Direction)
}
