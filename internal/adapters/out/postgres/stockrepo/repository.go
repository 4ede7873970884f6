package stockrepo

import (
	"context"
	"errors"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/stock"
	"agrimarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStockRepository implements StockRepository using GORM.
type GormStockRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStockRepository creates a new GORM stock repository.
func NewGormStockRepository(db *gorm.DB, tracker aggregateTracker) *GormStockRepository {
	return &GormStockRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new stock listing to the database.
func (r *GormStockRepository) Add(ctx context.Context, aggregate *stock.Stock) error {
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

// Get retrieves a stock listing by ID.
func (r *GormStockRepository) Get(ctx context.Context, id kernel.UUID) (*stock.Stock, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StockDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stock", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
