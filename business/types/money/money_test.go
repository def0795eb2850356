package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	m, err := Parse(1250.50)
	require.NoError(t, err)
	assert.Equal(t, 1250.50, m.Value())
	assert.False(t, m.IsZero())

	m, err = Parse(0)
	require.NoError(t, err)
	assert.True(t, m.IsZero())

	_, err = Parse(-1)
	assert.Error(t, err)

	_, err = Parse(1_000_000_001)
	assert.Error(t, err)
}

func TestMarshalText(t *testing.T) {
	m := MustParse(99.9)

	data, err := m.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "99.90", string(data))
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() {
		MustParse(-5)
	})
}

func TestParseCurrency(t *testing.T) {
	c, err := ParseCurrency("INR")
	require.NoError(t, err)
	assert.True(t, c.Equal(INR))

	_, err = ParseCurrency("EUR")
	assert.Error(t, err)
}

func TestConvertRoundTrip(t *testing.T) {
	amount := MustParse(12500)

	usd := Convert(amount, INR, USD)
	assert.InDelta(t, 150, usd.Value(), 0.0001)

	back := Convert(usd, USD, INR)
	assert.InDelta(t, amount.Value(), back.Value(), 0.0001)
}

func TestConvertSameCurrency(t *testing.T) {
	amount := MustParse(100)
	assert.Equal(t, amount, Convert(amount, INR, INR))
}
