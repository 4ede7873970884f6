package order

import (
	"errors"
	"fmt"
	"time"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a buyer's commitment to purchase a quantity from a specific
// stock listing. It is the aggregate root that owns the fulfillment lifecycle
// from creation through capacity confirmation, logistics attachment, and
// delivery confirmation.
//
// Order follows these invariants:
//   - Must reference a valid stock listing and a valid buyer
//   - Quantity must be positive (kilograms)
//   - Price per kg must be non-negative and is a snapshot frozen at creation
//   - Total always equals qtyKg × pricePerKg at creation time and is never recomputed
//   - Status transitions follow the fulfillment state machine
//   - A logistics reference exists iff the order is InTransit or Delivered
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// stockID references the stock listing being purchased
	stockID kernel.UUID

	// buyerID references the purchasing buyer
	buyerID kernel.UUID

	// qtyKg is the ordered quantity in kilograms (must be positive)
	qtyKg int

	// pricePerKg is the unit price snapshot taken at creation time
	pricePerKg decimal.Decimal

	// total is qtyKg × pricePerKg, frozen at creation
	total decimal.Decimal

	// status represents the current state in the fulfillment lifecycle
	status Status

	// capacityOK is the tri-state capacity verdict: nil until evaluated
	capacityOK *bool

	// logisticsID references the attached transport arrangement (nil until assigned)
	logisticsID *kernel.UUID

	// createdAt is the creation timestamp, immutable
	createdAt time.Time

	// version supports optimistic concurrency control in persistence
	version int

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in PendingCapacity status with validation.
// The total is computed from the quantity and unit price snapshot and never
// recomputed afterwards.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - stockID: Referenced stock listing identifier
//   - buyerID: Referenced buyer identifier
//   - qtyKg: Ordered quantity in kilograms (must be positive)
//   - pricePerKg: Unit price at order time (must be non-negative)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(id, stockID, buyerID kernel.UUID, qtyKg int, pricePerKg decimal.Decimal) (*Order, error) {
	o := &Order{
		status:        PendingCapacity,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setStockID(stockID),
		o.setBuyerID(buyerID),
		o.setQtyKg(qtyKg),
		o.setPricePerKg(pricePerKg),
	); err != nil {
		return nil, err
	}

	o.total = o.pricePerKg.Mul(decimal.NewFromInt(int64(o.qtyKg)))
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without recomputing
// derived fields. The stored total is taken as-is; the status and logistics
// reference are validated for mutual consistency.
//
// This is the only legal way to rebuild an order outside NewOrder; it is used
// by repository implementations when mapping database rows back to the domain.
func RestoreOrder(
	id, stockID, buyerID kernel.UUID,
	qtyKg int,
	pricePerKg, total decimal.Decimal,
	status Status,
	capacityOK *bool,
	logisticsID *kernel.UUID,
	createdAt time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		total:         total,
		capacityOK:    capacityOK,
		createdAt:     createdAt,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setStockID(stockID),
		o.setBuyerID(buyerID),
		o.setQtyKg(qtyKg),
		o.setPricePerKg(pricePerKg),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if logisticsID != nil {
		if err := logisticsID.Validate(); err != nil {
			return nil, err
		}
		o.logisticsID = logisticsID
	}

	if err := o.status.ValidateCanHaveLogistics(o.logisticsID != nil); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// StockID returns the referenced stock listing identifier.
func (o *Order) StockID() kernel.UUID {
	return o.stockID
}

// BuyerID returns the referenced buyer identifier.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// QtyKg returns the ordered quantity in kilograms.
func (o *Order) QtyKg() int {
	return o.qtyKg
}

// PricePerKg returns the unit price snapshot taken at creation time.
func (o *Order) PricePerKg() decimal.Decimal {
	return o.pricePerKg
}

// Total returns the frozen order total (qtyKg × pricePerKg at creation).
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// Status returns the current lifecycle status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CapacityOK returns the tri-state capacity verdict.
// Returns nil when capacity has not been evaluated yet.
func (o *Order) CapacityOK() *bool {
	return o.capacityOK
}

// Logistics returns the attached logistics record's ID.
// Returns nil if no logistics has been assigned.
func (o *Order) Logistics() *kernel.UUID {
	return o.logisticsID
}

// CreatedAt returns the order's creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Version returns the aggregate version used for optimistic concurrency control.
func (o *Order) Version() int {
	return o.version
}

// ConfirmCapacity records a positive capacity verdict and transitions the
// order to ReadyForLogistics.
//
// This method enforces the following business rules:
//   - Legal from PendingCapacity
//   - Idempotent: confirming an already ReadyForLogistics order is a no-op
//
// Returns:
//   - nil on successful transition or idempotent repeat
//   - error if the order is past the logistics-ready stage
func (o *Order) ConfirmCapacity() error {
	if o.status == ReadyForLogistics {
		return nil
	}

	newStatus, err := o.status.ConfirmCapacity()
	if err != nil {
		return err
	}

	o.status = newStatus
	confirmed := true
	o.capacityOK = &confirmed
	return nil
}

// DenyCapacity records a negative capacity verdict. The order remains parked
// in PendingCapacity and may be re-evaluated later; there is no terminal
// rejection state.
//
// Returns an error when the order is no longer awaiting a capacity verdict.
func (o *Order) DenyCapacity() error {
	if o.status != PendingCapacity {
		return errs.NewInvalidStateErrorWithCause(
			"order status",
			fmt.Errorf("%s does not allow capacity denial", o.status.String()),
		)
	}

	denied := false
	o.capacityOK = &denied
	return nil
}

// AttachLogistics links a logistics record to the order and transitions it
// to InTransit.
//
// This method enforces the following business rules:
//   - The logistics ID must be valid
//   - The order must be in ReadyForLogistics status; in particular the
//     transition from PendingCapacity is rejected so a transport arrangement
//     can never bypass capacity confirmation
//   - At most one logistics record is ever linked
//
// Returns:
//   - nil on successful attachment
//   - error if the logistics ID is invalid or the transition is not allowed
func (o *Order) AttachLogistics(logisticsID kernel.UUID) error {
	if err := logisticsID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.AttachLogistics()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.logisticsID = &logisticsID
	return nil
}

// ConfirmDelivery marks the order as delivered.
//
// This method enforces the following business rules:
//   - The order must be in InTransit status
//   - Delivered is a final state with no further transitions
//
// Returns:
//   - nil on successful completion
//   - error if the order is not in InTransit status
func (o *Order) ConfirmDelivery() error {
	newStatus, err := o.status.ConfirmDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setStockID validates and sets the referenced stock identifier.
func (o *Order) setStockID(stockID kernel.UUID) error {
	if err := stockID.Validate(); err != nil {
		return err
	}
	o.stockID = stockID
	return nil
}

// setBuyerID validates and sets the referenced buyer identifier.
func (o *Order) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	o.buyerID = buyerID
	return nil
}

// setQtyKg validates and sets the ordered quantity.
// Quantity must be positive (greater than 0).
func (o *Order) setQtyKg(qtyKg int) error {
	if qtyKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty kg", fmt.Errorf("%d is not greater than 0", qtyKg))
	}
	o.qtyKg = qtyKg
	return nil
}

// setPricePerKg validates and sets the unit price snapshot.
// Price must be non-negative.
func (o *Order) setPricePerKg(pricePerKg decimal.Decimal) error {
	if pricePerKg.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"price per kg",
			fmt.Errorf("%s is negative", pricePerKg.String()),
		)
	}
	o.pricePerKg = pricePerKg
	return nil
}

// setStatus validates and sets the lifecycle status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
