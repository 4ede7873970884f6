package logisticsrepo

import (
	"context"
	"errors"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/logistics"
	"agrimarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLogisticsRepository implements LogisticsRepository using GORM.
type GormLogisticsRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLogisticsRepository creates a new GORM logistics repository.
func NewGormLogisticsRepository(db *gorm.DB, tracker aggregateTracker) *GormLogisticsRepository {
	return &GormLogisticsRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new logistics record to the database.
// A second record for the same order violates the unique index on order_id
// and surfaces as a conflict error.
func (r *GormLogisticsRepository) Add(ctx context.Context, aggregate *logistics.Logistics) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause(
				"logistics", aggregate.OrderID().String(),
				errors.New("order already has a logistics record"),
			)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing logistics record to the database.
func (r *GormLogisticsRepository) Update(ctx context.Context, aggregate *logistics.Logistics) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&LogisticsDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("logistics", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a logistics record by ID.
func (r *GormLogisticsRepository) Get(ctx context.Context, id kernel.UUID) (*logistics.Logistics, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LogisticsDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("logistics", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
