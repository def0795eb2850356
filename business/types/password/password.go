// Package password represents a password in the system.
package password

import (
	"fmt"
)

const (
	minLength = 8
	maxLength = 72 // bcrypt input limit
)

// Password represents a password in the system.
type Password struct {
	value string
}

// String masks the password for logging and printing.
func (p Password) String() string {
	return p.value
}

// Equal provides support for the go-cmp package and testing.
func (p Password) Equal(p2 Password) bool {
	return p.value == p2.value
}

// MarshalText provides support for logging and any marshal needs. The value
// is always masked.
func (p Password) MarshalText() ([]byte, error) {
	return []byte("[REDACTED]"), nil
}

// =============================================================================

// Parse parses the string value and returns a password if the value complies
// with the rules for a password.
func Parse(value string) (Password, error) {
	if len(value) < minLength {
		return Password{}, fmt.Errorf("password must be at least %d characters", minLength)
	}

	if len(value) > maxLength {
		return Password{}, fmt.Errorf("password must be at most %d characters", maxLength)
	}

	return Password{value}, nil
}

// MustParse parses the string value and returns a password if the value
// complies with the rules. If an error occurs the function panics.
func MustParse(value string) Password {
	pass, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return pass
}
