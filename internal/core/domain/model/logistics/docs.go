// Package logistics provides the Logistics aggregate: the transport
// arrangement fulfilling a specific order. It includes the closed Mode and
// Status enumerations; free-text transport states are not representable.
//
// A logistics record is created when transport is arranged for an order that
// has passed capacity confirmation, and its completion is coupled to the
// order's delivery confirmation by the application layer.
package logistics
