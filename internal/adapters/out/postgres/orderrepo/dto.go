// Package orderrepo persists orders in PostgreSQL through GORM.
package orderrepo

import (
	"orderdesk/internal/core/domain/model/order"
)

// OrderDTO is the row shape of the orders table. Status is stored as its text form
// so the table stays readable from psql.
type OrderDTO struct {
	ID     string `gorm:"type:varchar(64);primaryKey"`
	Status string `gorm:"type:varchar(32);not null;index"`
	Item   string `gorm:"type:text;not null"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:     o.ID().String(),
		Status: o.Status().String(),
		Item:   o.Item(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	return order.NewOrder(order.ID(dto.ID), status, dto.Item)
}
