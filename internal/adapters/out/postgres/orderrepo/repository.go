package orderrepo

import (
	"context"
	"errors"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
// The write is guarded by the version the aggregate was loaded with. When the
// stored row already carries a newer version, nothing is written and a
// conflict error is returned so the caller can roll back companion writes.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loadedVersion := dto.Version
	dto.Version = loadedVersion + 1

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictErrorWithCause(
			"order", aggregate.ID().String(),
			errors.New("stored order version does not match the loaded version"),
		)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetCommittedKgForStock sums the quantities already committed against a
// stock listing. Orders still pending capacity do not commit anything.
func (r *GormOrderRepository) GetCommittedKgForStock(
	ctx context.Context, stockID kernel.UUID,
) (int, error) {
	if err := stockID.Validate(); err != nil {
		return 0, err
	}

	var committedKg int
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("COALESCE(SUM(qty_kg), 0)").
		Where("stock_id = ? AND status != ?", stockID.Bytes(), order.PendingCapacity).
		Scan(&committedKg).Error
	if err != nil {
		return 0, err
	}

	return committedKg, nil
}
