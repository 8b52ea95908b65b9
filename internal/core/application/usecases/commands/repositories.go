// Package commands contains the operations of orderdesk that act on a user request:
// resolving a free-text order question and registering batch orders.
// Every command is built through a guarded constructor and handled by a dedicated handler.
package commands

import (
	"context"

	"orderdesk/internal/core/application/lookup"
	"orderdesk/internal/core/domain/model/customer"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BatchOrderRepoFactory provides access to the batch order repository within a transaction.
	BatchOrderRepoFactory interface {
		BatchOrderRepository() ports.BatchOrderRepository
	}

	// BatchOrderUoW manages transactions for batch order registration.
	BatchOrderUoW interface {
		TxManager
		BatchOrderRepoFactory
	}

	// BatchOrderUoWFactory creates new batch order unit of work instances.
	BatchOrderUoWFactory interface {
		Create() BatchOrderUoW
	}
)

// Capabilities the resolution pipeline is composed of.
type (
	// IDExtractor finds an order id in free text.
	IDExtractor interface {
		Extract(text string) (order.ID, bool)
	}

	// OrderLookup resolves an order id under the retry policy.
	OrderLookup interface {
		Resolve(ctx context.Context, id order.ID) (lookup.Result, error)
	}

	// PrioritizationRule decides escalation of an in-processing order.
	PrioritizationRule interface {
		ShouldPrioritize(item string, class customer.Class) bool
	}
)
