package queries

import (
	"context"

	"orderdesk/internal/core/domain/model/batch"
	"orderdesk/internal/core/domain/model/kernel"
)

// BatchOrderReader reads committed batch orders.
type BatchOrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*batch.BatchOrder, error)
}

// GetBatchOrderQueryHandler answers batch order queries.
type GetBatchOrderQueryHandler struct {
	reader BatchOrderReader
}

// NewGetBatchOrderQueryHandler creates the handler.
func NewGetBatchOrderQueryHandler(reader BatchOrderReader) GetBatchOrderQueryHandler {
	return GetBatchOrderQueryHandler{reader: reader}
}

// Handle returns the batch order or the reader's errs.ObjectNotFoundError.
func (h GetBatchOrderQueryHandler) Handle(
	ctx context.Context,
	query GetBatchOrderQuery,
) (GetBatchOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBatchOrderQueryResponse{}, err
	}

	b, err := h.reader.Get(ctx, query.ID())
	if err != nil {
		return GetBatchOrderQueryResponse{}, err
	}

	return GetBatchOrderQueryResponse{
		ID:        b.ID(),
		Customer:  b.Customer(),
		Items:     b.Items(),
		CreatedAt: b.CreatedAt(),
	}, nil
}
