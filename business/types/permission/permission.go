// Package permission represents a fine-grained named capability, orthogonal
// to the role tiers. The set is open: administrators mint new capability
// names at runtime, so the type validates shape instead of membership.
package permission

import (
	"fmt"
	"regexp"
)

// Well-known capabilities referenced by the route tables.
var (
	PaymentsVerify = MustParse("payments.verify")
	TenantsManage  = MustParse("tenants.manage")
	OpsConsole     = MustParse("ops.console")
)

// permRegEx accepts dotted lower-case capability names like "payments.verify".
var permRegEx = regexp.MustCompile(`^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*)+$`)

// Permission represents a named capability granted to a user.
type Permission struct {
	value string
}

// String returns the name of the permission.
func (p Permission) String() string {
	return p.value
}

// Equal provides support for the go-cmp package and testing.
func (p Permission) Equal(p2 Permission) bool {
	return p.value == p2.value
}

// MarshalText provides support for logging and any marshal needs.
func (p Permission) MarshalText() ([]byte, error) {
	return []byte(p.value), nil
}

// Parse parses the string value and returns a permission if the value
// complies with the naming rules.
func Parse(value string) (Permission, error) {
	if !permRegEx.MatchString(value) {
		return Permission{}, fmt.Errorf("invalid permission %q", value)
	}

	return Permission{value}, nil
}

// MustParse parses the string value and returns a permission. If an error
// occurs the function panics.
func MustParse(value string) Permission {
	perm, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return perm
}
