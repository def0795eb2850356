// Package qrstatus represents the lifecycle state of a QR payment request.
package qrstatus

import "fmt"

// The set of states a QR payment request can be in. Submission is only
// accepted while the request is still Pending; Approved and Rejected are
// terminal and set by admin verification.
var (
	Pending             = newStatus("PENDING")
	ScreenshotSubmitted = newStatus("SCREENSHOT_SUBMITTED")
	Approved            = newStatus("APPROVED")
	Rejected            = newStatus("REJECTED")
)

var statuses = make(map[string]Status)

// Status represents a QR payment request lifecycle state.
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

// Terminal reports whether the state accepts no further transitions.
func (s Status) Terminal() bool {
	return s.Equal(Approved) || s.Equal(Rejected)
}

// Parse parses the string value and returns a status if one exists.
func Parse(value string) (Status, error) {
	status, exists := statuses[value]
	if !exists {
		return Status{}, fmt.Errorf("invalid qr payment status %q", value)
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
