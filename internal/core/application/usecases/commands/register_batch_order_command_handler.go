package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/batch"
	"orderdesk/internal/core/domain/model/kernel"
)

// RegisterBatchOrderCommandHandler registers batch orders under a fresh id.
//
// Example:
//
//	handler := NewRegisterBatchOrderCommandHandler(uowFactory)
//	id, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("batch registration failed: %w", err)
//	}
//	fmt.Printf("batch order %s registered", id)
type RegisterBatchOrderCommandHandler struct {
	uowFactory BatchOrderUoWFactory
}

// NewRegisterBatchOrderCommandHandler creates a handler persisting through uowFactory.
func NewRegisterBatchOrderCommandHandler(uowFactory BatchOrderUoWFactory) RegisterBatchOrderCommandHandler {
	return RegisterBatchOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the batch order inside one transaction and returns its id.
func (h *RegisterBatchOrderCommandHandler) Handle(ctx context.Context, cmd RegisterBatchOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	aggregate, err := batch.NewBatchOrder(kernel.NewUUID(), cmd.Customer(), cmd.Items())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.BatchOrderRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
