package batchrepo

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/batch"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBatchOrderRepository implements ports.BatchOrderRepository using GORM.
type GormBatchOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBatchOrderRepository creates a repository. tracker may be nil when the repository
// is used outside a unit of work, e.g. by read-only queries.
func NewGormBatchOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormBatchOrderRepository {
	return &GormBatchOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new batch order.
func (r *GormBatchOrderRepository) Add(ctx context.Context, aggregate *batch.BatchOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
	return nil
}

// Get retrieves a batch order by ID.
func (r *GormBatchOrderRepository) Get(ctx context.Context, id kernel.UUID) (*batch.BatchOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BatchOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("batch order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
