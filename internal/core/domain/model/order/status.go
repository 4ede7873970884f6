package order

import (
	"fmt"

	"agrimarket/internal/pkg/errs"
)

// Status represents the lifecycle state of a purchase order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	PendingCapacity ──> ReadyForLogistics ──> InTransit ──> Delivered
//
// A capacity denial keeps the order in PendingCapacity; there is no
// terminal rejection state. Delivered is final.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingCapacity is the initial status when an order is first created.
	// Orders in this status are waiting for a capacity verdict against their stock.
	PendingCapacity

	// ReadyForLogistics indicates capacity has been confirmed and the order
	// is waiting for a transport arrangement.
	ReadyForLogistics

	// InTransit indicates a logistics record has been attached and the
	// order is being delivered.
	InTransit

	// Delivered indicates the order has been successfully delivered.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "UNKNOWN",
		PendingCapacity:   "PENDING_CAPACITY",
		ReadyForLogistics: "READY_FOR_LOGISTICS",
		InTransit:         "IN_TRANSIT",
		Delivered:         "DELIVERED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingCapacity:   "PENDING_CAPACITY",
		ReadyForLogistics: "READY_FOR_LOGISTICS",
		InTransit:         "IN_TRANSIT",
		Delivered:         "DELIVERED",
	}
}

// StatusFromString parses a persisted or wire-level status name.
// Returns an error for any name outside the closed lifecycle vocabulary;
// free-text statuses are not representable.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("order status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: PendingCapacity, ReadyForLogistics, InTransit, Delivered.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-level name of the status, e.g. "PENDING_CAPACITY".
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// ConfirmCapacity transitions the status to ReadyForLogistics.
//
// Valid transitions:
//   - PendingCapacity -> ReadyForLogistics (capacity verdict positive)
//
// Returns:
//   - (ReadyForLogistics, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) ConfirmCapacity() (Status, error) {
	if s != PendingCapacity {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order status",
			fmt.Errorf("%s does not allow capacity confirmation", s.String()),
		)
	}

	return ReadyForLogistics, nil
}

// AttachLogistics transitions the status to InTransit.
//
// Valid transitions:
//   - ReadyForLogistics -> InTransit (logistics record attached)
//
// Attaching logistics from PendingCapacity is rejected: a transport
// arrangement must never bypass capacity confirmation.
//
// Returns:
//   - (InTransit, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) AttachLogistics() (Status, error) {
	if s != ReadyForLogistics {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order status",
			fmt.Errorf("%s does not allow logistics attachment", s.String()),
		)
	}

	return InTransit, nil
}

// ConfirmDelivery transitions the status to Delivered.
//
// Valid transitions:
//   - InTransit -> Delivered (delivery confirmed)
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) ConfirmDelivery() (Status, error) {
	if s != InTransit {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order status",
			fmt.Errorf("%s does not allow delivery confirmation", s.String()),
		)
	}

	return Delivered, nil
}

// ValidateCanHaveLogistics validates the consistency between order status and
// logistics attachment.
//
// Business rules:
//   - PendingCapacity and ReadyForLogistics orders must not reference logistics
//   - InTransit and Delivered orders must reference logistics
func (s Status) ValidateCanHaveLogistics(hasLogistics bool) error {
	if hasLogistics && s != InTransit && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a valid status to have logistics", s.String()),
		)
	}

	if !hasLogistics && (s == InTransit || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a valid status to have no logistics", s.String()),
		)
	}

	return nil
}
