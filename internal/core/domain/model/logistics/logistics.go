package logistics

import (
	"errors"
	"fmt"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrLogisticsIsNotConstructed is returned when a Logistics instance was not
	// created through the NewLogistics or RestoreLogistics factory methods.
	ErrLogisticsIsNotConstructed = errors.New(
		"Logistics must be created via NewLogistics or RestoreLogistics constructor",
	)
)

// Logistics represents the transport arrangement fulfilling a specific order.
// A logistics record is one-to-one with its order once created and is never
// deleted; only its status advances.
//
// Invariants:
//   - Must reference a valid owning order
//   - Mode is one of the closed transport modes
//   - Cost is non-negative and must be zero when the buyer arranges transport
//   - Discount rate lies in [0, 1]
//   - Status transitions only move forward
type Logistics struct {
	id            kernel.UUID
	orderID       kernel.UUID
	mode          Mode
	cost          decimal.Decimal
	carrier       string
	status        Status
	discount      decimal.Decimal
	isConstructed bool
}

// NewLogistics creates a new logistics record in Scheduled status with validation.
//
// Parameters:
//   - id: Unique identifier for the record (must be valid UUID)
//   - orderID: The owning order's identifier
//   - mode: Transport mode (buyer-arranged or external courier)
//   - carrier: Carrier name (may be empty for buyer-arranged transport)
//   - cost: Transport cost (non-negative; zero when buyer-arranged)
//   - discount: Discount rate as a fraction in [0, 1]
//
// Returns:
//   - *Logistics: The created record if all validations pass
//   - error: Validation error if any parameter is invalid
func NewLogistics(
	id, orderID kernel.UUID,
	mode Mode,
	carrier string,
	cost, discount decimal.Decimal,
) (*Logistics, error) {
	l := &Logistics{
		carrier:       carrier,
		status:        Scheduled,
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setOrderID(orderID),
		l.setMode(mode),
		l.setDiscount(discount),
	); err != nil {
		return nil, err
	}

	if err := l.setCost(cost); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLogistics reconstructs a Logistics record from persistence.
// Used by repository implementations when mapping database rows back to the domain.
func RestoreLogistics(
	id, orderID kernel.UUID,
	mode Mode,
	carrier string,
	cost, discount decimal.Decimal,
	status Status,
) (*Logistics, error) {
	l, err := NewLogistics(id, orderID, mode, carrier, cost, discount)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	l.status = status

	return l, nil
}

// Validate ensures the Logistics instance was properly constructed through a factory.
func (l *Logistics) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLogisticsIsNotConstructed
	}

	return nil
}

// IsEqual compares two logistics records by their unique identifiers.
func (l *Logistics) IsEqual(other *Logistics) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the logistics record's unique identifier.
func (l *Logistics) ID() kernel.UUID {
	return l.id
}

// OrderID returns the owning order's identifier.
func (l *Logistics) OrderID() kernel.UUID {
	return l.orderID
}

// Mode returns the transport mode.
func (l *Logistics) Mode() Mode {
	return l.mode
}

// Cost returns the transport cost.
func (l *Logistics) Cost() decimal.Decimal {
	return l.cost
}

// Carrier returns the carrier name.
func (l *Logistics) Carrier() string {
	return l.carrier
}

// Status returns the current status of the logistics record.
func (l *Logistics) Status() Status {
	return l.status
}

// Discount returns the discount rate as a fraction in [0, 1].
func (l *Logistics) Discount() decimal.Decimal {
	return l.discount
}

// ChangeStatus advances the logistics record to newStatus.
// Transitions only move forward; re-applying the current status is a no-op.
func (l *Logistics) ChangeStatus(newStatus Status) error {
	changed, err := l.status.ChangeTo(newStatus)
	if err != nil {
		return err
	}

	l.status = changed
	return nil
}

func (l *Logistics) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Logistics) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	l.orderID = orderID
	return nil
}

func (l *Logistics) setMode(mode Mode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	l.mode = mode
	return nil
}

// setCost validates the cost against the mode, so it must run after setMode.
func (l *Logistics) setCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("cost", fmt.Errorf("%s is negative", cost.String()))
	}
	if l.mode == BuyerArranged && !cost.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause(
			"cost",
			fmt.Errorf("buyer-arranged transport must have zero cost, got %s", cost.String()),
		)
	}
	l.cost = cost
	return nil
}

func (l *Logistics) setDiscount(discount decimal.Decimal) error {
	if discount.IsNegative() || discount.GreaterThan(decimal.NewFromInt(1)) {
		return errs.NewValueIsOutOfRangeError("discount", discount.String(), 0, 1)
	}
	l.discount = discount
	return nil
}
