// Package services provides domain services that implement business decisions
// spanning multiple domain entities in the agrimarket system.
//
// The package includes:
//   - CapacityEvaluator: A pure domain service yielding the capacity verdict
//     for a prospective order quantity against a stock listing
//
// Domain services coordinate between aggregates, implementing business logic
// that doesn't naturally belong to a single aggregate root.
package services
