// Package money represents a currency amount in the system.
package money

import (
	"fmt"
)

// Money represents a positive currency amount.
type Money struct {
	value float64
}

// Parse validates the amount is in a reasonable range.
func Parse(value float64) (Money, error) {
	if value < 0 {
		return Money{}, fmt.Errorf("amount %.2f must not be negative", value)
	}

	if value > 1_000_000_000 {
		return Money{}, fmt.Errorf("amount %.2f out of range", value)
	}

	return Money{value}, nil
}

// MustParse validates the amount and panics on failure.
func MustParse(value float64) Money {
	m, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return m
}

// Value returns the float value of the amount.
func (m Money) Value() float64 {
	return m.value
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.value == 0
}

// Equal provides support for the go-cmp package and testing.
func (m Money) Equal(m2 Money) bool {
	return m.value == m2.value
}

// MarshalText provides support for logging and any marshal needs.
func (m Money) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%.2f", m.value)), nil
}
