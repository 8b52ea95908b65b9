package orderrepo

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Seed inserts orders that are not stored yet and leaves existing rows untouched.
// It returns the number of inserted rows.
func (r *GormOrderRepository) Seed(ctx context.Context, orders ...*order.Order) (int64, error) {
	if len(orders) == 0 {
		return 0, nil
	}

	dtos := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return 0, err
		}
		dtos = append(dtos, fromDomain(o))
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(&dtos)
	return result.RowsAffected, result.Error
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
