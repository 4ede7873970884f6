package stock

import (
	"fmt"

	"agrimarket/internal/pkg/errs"
)

// Status represents the availability state of a stock listing.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Available indicates the listing can still be ordered against.
	Available

	// Depleted indicates the listing has no sellable quantity left.
	Depleted
)

func getValidStatusStrings() map[Status]string {
	return map[Status]string{
		Available: "available",
		Depleted:  "depleted",
	}
}

// StatusFromString parses a persisted or wire-level status name.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("stock status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stock status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-level name of the status. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getValidStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
