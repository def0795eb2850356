package money

import "fmt"

// Currency represents a supported display currency.
type Currency struct {
	value string
}

// The set of supported display currencies.
var (
	INR = newCurrency("INR")
	USD = newCurrency("USD")
)

var currencies = make(map[string]Currency)

func newCurrency(code string) Currency {
	c := Currency{code}
	currencies[code] = c
	return c
}

// String returns the currency code.
func (c Currency) String() string {
	return c.value
}

// Equal provides support for the go-cmp package and testing.
func (c Currency) Equal(c2 Currency) bool {
	return c.value == c2.value
}

// MarshalText provides support for logging and any marshal needs.
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.value), nil
}

// ParseCurrency parses the string value and returns a currency if one exists.
func ParseCurrency(value string) (Currency, error) {
	c, exists := currencies[value]
	if !exists {
		return Currency{}, fmt.Errorf("invalid currency %q", value)
	}

	return c, nil
}

// =============================================================================

// usdPerINR is the fixed display conversion rate. Amounts are stored in INR;
// conversion exists only for presentation, so a fixed rate round-trips.
const usdPerINR = 0.012

// Convert converts an amount between the supported currencies. Converting a
// value from one currency to another and back returns the original amount
// within floating point tolerance.
func Convert(m Money, from Currency, to Currency) Money {
	if from.Equal(to) {
		return m
	}

	switch {
	case from.Equal(INR) && to.Equal(USD):
		return Money{m.value * usdPerINR}
	case from.Equal(USD) && to.Equal(INR):
		return Money{m.value / usdPerINR}
	}

	return m
}
