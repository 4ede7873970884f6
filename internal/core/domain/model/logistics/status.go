package logistics

import (
	"fmt"

	"agrimarket/internal/pkg/errs"
)

// Status represents the lifecycle state of a logistics record. It mirrors the
// transport-facing half of the order lifecycle.
//
// State transitions:
//
//	Scheduled ──> InTransit ──> Delivered
//	    └──────────────────────────┘
//	  (direct delivery confirmation allowed)
//
// Delivered is final. Moving backwards is never allowed; re-applying the
// current status is a no-op.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Scheduled is the initial status when a logistics record is created.
	Scheduled

	// InTransit indicates the carrier has picked up the goods.
	InTransit

	// Delivered indicates the goods reached the buyer. Final state.
	Delivered
)

func getValidStatusStrings() map[Status]string {
	return map[Status]string{
		Scheduled: "SCHEDULED",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
	}
}

// StatusFromString parses a persisted or wire-level status name.
// Returns an error for any name outside the closed vocabulary.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"logistics status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("logistics status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-level name of the status, e.g. "SCHEDULED".
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getValidStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsCompleted reports whether the status signals delivery completion.
func (s Status) IsCompleted() bool {
	return s == Delivered
}

// ChangeTo validates a transition from the current status to newStatus.
//
// Valid transitions:
//   - Scheduled -> InTransit, Scheduled -> Delivered
//   - InTransit -> Delivered
//   - any status -> itself (idempotent no-op)
//
// Returns:
//   - (newStatus, nil) on valid transition
//   - (0, error) if newStatus is invalid or the move goes backwards
func (s Status) ChangeTo(newStatus Status) (Status, error) {
	if err := newStatus.Validate(); err != nil {
		return 0, err
	}

	if newStatus == s {
		return s, nil
	}

	if newStatus < s {
		return 0, errs.NewInvalidStateErrorWithCause(
			"logistics status",
			fmt.Errorf("%s does not allow moving back to %s", s.String(), newStatus.String()),
		)
	}

	return newStatus, nil
}
