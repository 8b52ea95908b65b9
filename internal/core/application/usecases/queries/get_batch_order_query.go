package queries

import (
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrGetBatchOrderQueryIsNotConstructed = errors.New(
	"GetBatchOrderQuery must be created via NewGetBatchOrderQuery constructor",
)

// GetBatchOrderQuery asks for a registered batch order.
type GetBatchOrderQuery struct {
	id kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBatchOrderQuery parses rawID and creates the query.
func NewGetBatchOrderQuery(rawID string) (GetBatchOrderQuery, error) {
	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return GetBatchOrderQuery{}, err
	}
	if err = id.Validate(); err != nil {
		return GetBatchOrderQuery{}, err
	}

	return GetBatchOrderQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBatchOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetBatchOrderQueryIsNotConstructed)
}

// ID returns the requested batch order id.
func (q GetBatchOrderQuery) ID() kernel.UUID {
	return q.id
}

// GetBatchOrderQueryResponse describes a registered batch order.
type GetBatchOrderQueryResponse struct {
	ID        kernel.UUID
	Customer  string
	Items     []string
	CreatedAt time.Time
}
