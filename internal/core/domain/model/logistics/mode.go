package logistics

import (
	"fmt"

	"agrimarket/internal/pkg/errs"
)

// Mode represents the transport arrangement kind for a logistics record.
type Mode int

const (
	// ModeUnknown represents an invalid or undefined mode.
	ModeUnknown Mode = iota

	// BuyerArranged indicates the buyer handles transport; cost must be zero.
	BuyerArranged

	// ExternalCourier indicates a third-party carrier handles transport.
	ExternalCourier
)

func getValidModeStrings() map[Mode]string {
	return map[Mode]string{
		BuyerArranged:   "buyer",
		ExternalCourier: "external",
	}
}

// ModeFromString parses a persisted or wire-level mode name.
func ModeFromString(s string) (Mode, error) {
	for mode, str := range getValidModeStrings() {
		if str == s {
			return mode, nil
		}
	}
	return ModeUnknown, errs.NewValueIsInvalidErrorWithCause("logistics mode", fmt.Errorf("%q is not a valid mode", s))
}

// Validate checks if the Mode value is valid.
func (m Mode) Validate() error {
	if _, ok := getValidModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("logistics mode", fmt.Errorf("%d is not a valid mode", m))
	}
	return nil
}

// String returns the wire-level name of the mode. Implements fmt.Stringer.
func (m Mode) String() string {
	if str, ok := getValidModeStrings()[m]; ok {
		return str
	}
	return "unknown"
}
