// Package role represents the role type in the system.
package role

import (
	"fmt"
	"sort"
)

// The set of roles that can be used. The tier encodes the privilege ordering
// used when a user holds several roles at once, lowest tier wins.
var (
	SuperAdmin = newRole("SUPER_ADMIN", 1)
	Admin      = newRole("ADMIN", 2)
	Manager    = newRole("MANAGER", 3)
	Staff      = newRole("STAFF", 4)
	Tenant     = newRole("TENANT", 5)
	User       = newRole("USER", 6)
)

// =============================================================================

// Set of known roles.
var roles = make(map[string]Role)

// Role represents a role in the system.
type Role struct {
	value string
	tier  int
}

func newRole(role string, tier int) Role {
	r := Role{value: role, tier: tier}
	roles[role] = r
	return r
}

// String returns the name of the role.
func (r Role) String() string {
	return r.value
}

// Tier returns the privilege tier of the role. Lower is more privileged.
func (r Role) Tier() int {
	return r.tier
}

// Equal provides support for the go-cmp package and testing.
func (r Role) Equal(r2 Role) bool {
	return r.value == r2.value
}

// MarshalText provides support for logging and any marshal needs.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.value), nil
}

// =============================================================================

// Parse parses the string value and returns a role if one exists.
func Parse(value string) (Role, error) {
	role, exists := roles[value]
	if !exists {
		return Role{}, fmt.Errorf("invalid role %q", value)
	}

	return role, nil
}

// MustParse parses the string value and returns a role if one exists. If
// an error occurs the function panics.
func MustParse(value string) Role {
	role, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return role
}

// ParseMany parses a set of string values into roles.
func ParseMany(values []string) ([]Role, error) {
	rls := make([]Role, len(values))
	for i, value := range values {
		r, err := Parse(value)
		if err != nil {
			return nil, err
		}
		rls[i] = r
	}

	return rls, nil
}

// ParseToString takes a collection of roles and converts them to a slice
// of strings.
func ParseToString(rls []Role) []string {
	values := make([]string, len(rls))
	for i, r := range rls {
		values[i] = r.String()
	}

	return values
}

// =============================================================================

// Primary returns the highest-privilege role in the set. The boolean reports
// whether the set held any role at all.
func Primary(rls []Role) (Role, bool) {
	if len(rls) == 0 {
		return Role{}, false
	}

	sorted := make([]Role, len(rls))
	copy(sorted, rls)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].tier < sorted[j].tier
	})

	return sorted[0], true
}

// Contains reports whether the set holds the given role.
func Contains(rls []Role, r Role) bool {
	for _, have := range rls {
		if have.Equal(r) {
			return true
		}
	}

	return false
}
