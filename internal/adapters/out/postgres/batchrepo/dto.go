// Package batchrepo persists batch orders in PostgreSQL through GORM.
// Items live in a text[] column mapped with lib/pq.
package batchrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/batch"
	"orderdesk/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// BatchOrderDTO is the row shape of the batch_orders table.
type BatchOrderDTO struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Customer  string         `gorm:"type:text;not null;index"`
	Items     pq.StringArray `gorm:"type:text[];not null"`
	CreatedAt time.Time      `gorm:"not null"`
}

// TableName specifies the database table name for batch orders.
func (BatchOrderDTO) TableName() string {
	return "batch_orders"
}

func fromDomain(b *batch.BatchOrder) BatchOrderDTO {
	return BatchOrderDTO{
		ID:        b.ID().Value(),
		Customer:  b.Customer(),
		Items:     pq.StringArray(b.Items()),
		CreatedAt: b.CreatedAt().UTC(),
	}
}

func toDomain(dto BatchOrderDTO) (*batch.BatchOrder, error) {
	id, err := kernel.UUIDFromString(dto.ID.String())
	if err != nil {
		return nil, err
	}
	return batch.RestoreBatchOrder(id, dto.Customer, []string(dto.Items), dto.CreatedAt)
}
