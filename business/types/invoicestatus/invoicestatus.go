// Package invoicestatus represents the lifecycle state of an invoice.
package invoicestatus

import "fmt"

// The set of states an invoice can be in. Pending is the only non-terminal
// state: paid and cancelled are terminal, overdue can still be paid or
// cancelled.
var (
	Pending   = newStatus("PENDING")
	Paid      = newStatus("PAID")
	Overdue   = newStatus("OVERDUE")
	Cancelled = newStatus("CANCELLED")
)

var statuses = make(map[string]Status)

// transitions encodes the legal lifecycle moves.
var transitions = map[Status][]Status{
	Pending: {Paid, Overdue, Cancelled},
	Overdue: {Paid, Cancelled},
}

// Status represents an invoice lifecycle state.
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

// CanTransition reports whether moving from the current state to the target
// state is legal.
func (s Status) CanTransition(to Status) bool {
	for _, next := range transitions[s] {
		if next.Equal(to) {
			return true
		}
	}

	return false
}

// Parse parses the string value and returns a status if one exists.
func Parse(value string) (Status, error) {
	status, exists := statuses[value]
	if !exists {
		return Status{}, fmt.Errorf("invalid invoice status %q", value)
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
