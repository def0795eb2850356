package invoicestatus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	s, err := Parse("OVERDUE")
	require.NoError(t, err)
	assert.True(t, s.Equal(Overdue))

	_, err = Parse("overdue")
	assert.Error(t, err)
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		want bool
	}{
		{Pending, Paid, true},
		{Pending, Overdue, true},
		{Pending, Cancelled, true},
		{Overdue, Paid, true},
		{Overdue, Cancelled, true},
		{Overdue, Pending, false},
		{Paid, Pending, false},
		{Paid, Cancelled, false},
		{Cancelled, Paid, false},
		{Pending, Pending, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"_to_"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}
