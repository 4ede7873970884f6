package services

import (
	"agrimarket/internal/core/domain/model/stock"
)

// CapacityEvaluator is a domain service responsible for deciding whether
// fulfillment capacity exists for a prospective order quantity against a
// stock listing.
//
// Key responsibilities:
//   - Validating the stock snapshot before evaluation
//   - Producing a boolean verdict with no side effects and no I/O
//
// Business rules:
//   - A non-positive requested quantity is always rejected
//   - The request must not exceed the listing's remaining quantity, where
//     remaining = listed quantity − quantity already committed to orders
//     whose capacity has been confirmed (stock rows are never decremented)
//   - A request exactly equal to the remaining quantity is accepted
//
// Example usage:
//
//	evaluator := NewCapacityEvaluator()
//	ok, err := evaluator.Evaluate(listing, committedKg, requestedKg)
//	if err != nil {
//	    // stock snapshot was invalid
//	    return err
//	}
//	if !ok {
//	    // capacity denied; order stays pending
//	}
type CapacityEvaluator struct{}

// NewCapacityEvaluator creates a new CapacityEvaluator instance.
func NewCapacityEvaluator() CapacityEvaluator {
	return CapacityEvaluator{}
}

// Evaluate yields the capacity verdict for requestedKg kilograms against the
// given stock listing, of which committedKg kilograms are already promised to
// other confirmed orders.
//
// Parameters:
//   - listing: The stock snapshot to evaluate against (must be valid)
//   - committedKg: Kilograms already committed to capacity-confirmed orders
//   - requestedKg: The prospective order quantity
//
// Returns:
//   - bool: true iff requestedKg is positive and does not exceed the remaining quantity
//   - error: validation error if the stock snapshot is invalid
//
// The evaluation is a pure function over its inputs: it never mutates the
// listing and performs no I/O.
func (e CapacityEvaluator) Evaluate(listing *stock.Stock, committedKg, requestedKg int) (bool, error) {
	if err := listing.Validate(); err != nil {
		return false, err
	}

	if requestedKg <= 0 {
		return false, nil
	}

	remaining := listing.QtyKg() - committedKg
	return requestedKg <= remaining, nil
}
