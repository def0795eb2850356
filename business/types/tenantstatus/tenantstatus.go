// Package tenantstatus represents the lease state of a tenant ledger record.
package tenantstatus

import "fmt"

// The set of lease states a tenant record can be in. Active is set when a
// unit is assigned, Inactive when unassigned. Evicted is set manually and
// keeps the ledger row for historical queries.
var (
	Pending  = newStatus("PENDING")
	Active   = newStatus("ACTIVE")
	Inactive = newStatus("INACTIVE")
	Evicted  = newStatus("EVICTED")
)

var statuses = make(map[string]Status)

// Status represents a tenant lease state.
type Status struct {
	value string
}

func newStatus(status string) Status {
	s := Status{status}
	statuses[status] = s
	return s
}

// String returns the name of the status.
func (s Status) String() string {
	return s.value
}

// Equal provides support for the go-cmp package and testing.
func (s Status) Equal(s2 Status) bool {
	return s.value == s2.value
}

// MarshalText provides support for logging and any marshal needs.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.value), nil
}

// Parse parses the string value and returns a status if one exists.
func Parse(value string) (Status, error) {
	status, exists := statuses[value]
	if !exists {
		return Status{}, fmt.Errorf("invalid tenant status %q", value)
	}

	return status, nil
}

// MustParse parses the string value and returns a status if one exists. If
// an error occurs the function panics.
func MustParse(value string) Status {
	status, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return status
}
