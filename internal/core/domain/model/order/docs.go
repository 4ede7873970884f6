// Package order provides domain entities and business logic for purchase
// order management in the agrimarket system. It implements the Order
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, pricing, and lifecycle
//   - Status: A state machine that enforces valid fulfillment transitions
//
// Key business rules:
//   - Orders must reference a valid stock listing and buyer, with a positive
//     quantity and a non-negative unit price snapshot
//   - The order total is frozen at creation and never recomputed
//   - Order status follows a defined workflow:
//     PendingCapacity -> ReadyForLogistics -> InTransit -> Delivered
//   - Logistics can only be attached after capacity has been confirmed
//   - A denied capacity verdict parks the order in PendingCapacity
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
