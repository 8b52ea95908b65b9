package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"orderdesk/internal/core/domain/model/batch"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// ErrNoActiveTransaction is returned when a unit of work is used outside Begin/Commit.
var ErrNoActiveTransaction = errors.New("no active transaction")

// BatchOrderStore keeps committed batch orders.
type BatchOrderStore struct {
	mu     sync.RWMutex
	orders map[kernel.UUID]*batch.BatchOrder
}

// NewBatchOrderStore creates an empty store.
func NewBatchOrderStore() *BatchOrderStore {
	return &BatchOrderStore{orders: make(map[kernel.UUID]*batch.BatchOrder)}
}

// Len returns the number of committed batch orders.
func (s *BatchOrderStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

func (s *BatchOrderStore) get(id kernel.UUID) (*batch.BatchOrder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.orders[id]
	return b, ok
}

func (s *BatchOrderStore) apply(staged []*batch.BatchOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range staged {
		if _, exists := s.orders[b.ID()]; exists {
			return errs.NewValueIsInvalidErrorWithCause("batch order", fmt.Errorf("duplicate id %s", b.ID()))
		}
	}
	for _, b := range staged {
		s.orders[b.ID()] = b
	}
	return nil
}

// UnitOfWorkFactory creates units of work over one BatchOrderStore.
type UnitOfWorkFactory struct {
	store *BatchOrderStore
}

// NewUnitOfWorkFactory creates a factory for store.
func NewUnitOfWorkFactory(store *BatchOrderStore) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create returns a fresh unit of work.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages batch orders and publishes them to the store on Commit.
// A UnitOfWork is used by a single goroutine.
type UnitOfWork struct {
	store  *BatchOrderStore
	active bool
	staged []*batch.BatchOrder
}

// Begin starts staging. Calling Begin twice is a no-op.
func (u *UnitOfWork) Begin(_ context.Context) error {
	u.active = true
	return nil
}

// Commit publishes the staged batch orders atomically.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrNoActiveTransaction
	}

	err := u.store.apply(u.staged)
	u.active = false
	u.staged = nil
	return err
}

// Rollback drops the staged batch orders.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return ErrNoActiveTransaction
	}

	u.active = false
	u.staged = nil
	return nil
}

// BatchOrderRepository returns a repository bound to this unit of work.
func (u *UnitOfWork) BatchOrderRepository() ports.BatchOrderRepository {
	return &batchOrderRepository{uow: u}
}

type batchOrderRepository struct {
	uow *UnitOfWork
}

func (r *batchOrderRepository) Add(_ context.Context, aggregate *batch.BatchOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.uow.active {
		return ErrNoActiveTransaction
	}

	r.uow.staged = append(r.uow.staged, aggregate)
	return nil
}

func (r *batchOrderRepository) Get(_ context.Context, id kernel.UUID) (*batch.BatchOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	for _, b := range r.uow.staged {
		if b.ID().IsEqual(id) {
			return b, nil
		}
	}
	if b, ok := r.uow.store.get(id); ok {
		return b, nil
	}
	return nil, errs.NewObjectNotFoundError("batch order", id.String())
}

// Get returns a committed batch order.
func (s *BatchOrderStore) Get(_ context.Context, id kernel.UUID) (*batch.BatchOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if b, ok := s.get(id); ok {
		return b, nil
	}
	return nil, errs.NewObjectNotFoundError("batch order", id.String())
}
