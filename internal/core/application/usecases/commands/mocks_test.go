package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"orderdesk/internal/adapters/out/memory"
	"orderdesk/internal/core/application/lookup"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/batch"
	"orderdesk/internal/core/domain/model/customer"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBatchOrderRepository struct{ mock.Mock }

func (m *MockBatchOrderRepository) Add(ctx context.Context, b *batch.BatchOrder) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBatchOrderRepository) Get(ctx context.Context, id kernel.UUID) (*batch.BatchOrder, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*batch.BatchOrder), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockBatchOrderUoW struct{ mock.Mock }

func (m *MockBatchOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBatchOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBatchOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBatchOrderUoW) BatchOrderRepository() ports.BatchOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.BatchOrderRepository)
}

type MockBatchOrderUoWFactory struct{ mock.Mock }

func (m *MockBatchOrderUoWFactory) Create() commands.BatchOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.BatchOrderUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyPrioritized(ctx context.Context, id order.ID, customerID string) (ports.Ack, error) {
	args := m.Called(ctx, id, customerID)
	return args.Get(0).(ports.Ack), args.Error(1)
}

type MockCustomerClassifier struct{ mock.Mock }

func (m *MockCustomerClassifier) Classify(ctx context.Context, id order.ID) (customer.Customer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(customer.Customer), args.Error(1)
}

type MockPrioritizationRule struct{ mock.Mock }

func (m *MockPrioritizationRule) ShouldPrioritize(item string, class customer.Class) bool {
	args := m.Called(item, class)
	return args.Bool(0)
}

type MockOrderLookup struct{ mock.Mock }

func (m *MockOrderLookup) Resolve(ctx context.Context, id order.ID) (lookup.Result, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(lookup.Result), args.Error(1)
}

// instantTimer fires as soon as it is started.
type instantTimer struct {
	c chan time.Time
}

func (t *instantTimer) Start(time.Duration) {
	t.c = make(chan time.Time, 1)
	t.c <- time.Now()
}

func (t *instantTimer) Stop() {}

func (t *instantTimer) C() <-chan time.Time {
	return t.c
}

// countingRepository counts store reads on top of the seeded repository.
type countingRepository struct {
	*memory.OrderRepository

	mu    sync.Mutex
	calls map[order.ID]int
}

func (r *countingRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	r.mu.Lock()
	r.calls[id]++
	r.mu.Unlock()
	return r.OrderRepository.Get(ctx, id)
}

func (r *countingRepository) Calls(id order.ID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[id]
}

type pipeline struct {
	lookup  *lookup.RetryingLookup
	tracker *memory.AttemptTracker
	store   *countingRepository
}

func newPipeline(t *testing.T) pipeline {
	t.Helper()

	seeded, err := memory.NewSeededOrderRepository()
	require.NoError(t, err)

	p := pipeline{
		tracker: memory.NewAttemptTracker(),
		store:   &countingRepository{OrderRepository: seeded, calls: make(map[order.ID]int)},
	}
	p.lookup, err = lookup.NewRetryingLookup(p.store, p.tracker, lookup.DefaultPolicy(),
		lookup.WithTimerFactory(func() backoff.Timer { return &instantTimer{} }))
	require.NoError(t, err)
	return p
}
