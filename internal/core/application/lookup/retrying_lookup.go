package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/metrics"

	"github.com/cenkalti/backoff/v4"
)

var (
	errSimulatedFailure = errors.New("simulated transient lookup failure")
	errOrderNotFound    = errors.New("order not found yet")
)

// Result is the outcome of one lookup.
type Result struct {
	Found    bool
	Order    *order.Order
	Attempts int
}

// TimerFactory creates the timer a single lookup sleeps on between attempts.
type TimerFactory func() backoff.Timer

// Option configures a RetryingLookup.
type Option func(*RetryingLookup)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *RetryingLookup) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(l *RetryingLookup) {
		l.metrics = rec
	}
}

// WithTimerFactory replaces the wall-clock timer used between attempts.
func WithTimerFactory(factory TimerFactory) Option {
	return func(l *RetryingLookup) {
		l.newTimer = factory
	}
}

// RetryingLookup wraps the order store with the retry policy.
//
// Example:
//
//	l, err := lookup.NewRetryingLookup(orders, tracker, lookup.DefaultPolicy())
//	if err != nil {
//	    return err
//	}
//	res, err := l.Resolve(ctx, "12345")
type RetryingLookup struct {
	orders   ports.OrderRepository
	tracker  ports.AttemptTracker
	policy   Policy
	logger   *slog.Logger
	metrics  *metrics.Recorder
	newTimer TimerFactory
}

// NewRetryingLookup creates a RetryingLookup over orders, tracking simulated failures in tracker.
func NewRetryingLookup(
	orders ports.OrderRepository,
	tracker ports.AttemptTracker,
	policy Policy,
	opts ...Option,
) (*RetryingLookup, error) {
	if orders == nil {
		return nil, errs.NewValueIsRequiredError("orders")
	}
	if tracker == nil {
		return nil, errs.NewValueIsRequiredError("tracker")
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	l := &RetryingLookup{
		orders:  orders,
		tracker: tracker,
		policy:  policy,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = l.logger.With("component", "RetryingLookup")

	return l, nil
}

// Policy returns the configured policy.
func (l *RetryingLookup) Policy() Policy {
	return l.policy
}

// Resolve looks id up, retrying simulated failures and misses until the attempt budget is spent.
//
// It returns an error only when the store keeps failing for reasons other than a missing
// order, or when ctx is cancelled. In every terminal case the attempt counter of id is
// cleared, so the next resolution of the same id starts with a fresh budget.
func (l *RetryingLookup) Resolve(ctx context.Context, id order.ID) (Result, error) {
	if err := id.Validate(); err != nil {
		return Result{}, err
	}

	var (
		attempts int
		found    *order.Order
	)

	operation := func() error {
		attempts++
		return l.attempt(ctx, id, attempts, &found)
	}

	notify := func(err error, next time.Duration) {
		l.logger.DebugContext(ctx, "retrying order lookup",
			"orderId", id, "attempt", attempts, "reason", err.Error(), "delay", next)
	}

	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(l.policy.RetryDelay), uint64(l.policy.MaxAttempts-1)),
		ctx,
	)

	var timer backoff.Timer
	if l.newTimer != nil {
		timer = l.newTimer()
	}

	err := backoff.RetryNotifyWithTimer(operation, b, notify, timer)
	l.release(ctx, id)

	switch {
	case err == nil:
		l.metrics.LookupResult(metrics.ResultFound)
		l.logger.InfoContext(ctx, "order found", "orderId", id, "attempts", attempts, "status", found.Status().String())
		return Result{Found: true, Order: found, Attempts: attempts}, nil

	case ctx.Err() != nil:
		l.metrics.LookupResult(metrics.ResultCancelled)
		l.logger.WarnContext(ctx, "order lookup cancelled", "orderId", id, "attempts", attempts)
		return Result{Attempts: attempts}, ctx.Err()

	case errors.Is(err, errOrderNotFound), errors.Is(err, errSimulatedFailure):
		l.metrics.LookupResult(metrics.ResultNotFound)
		l.logger.InfoContext(ctx, "order not found", "orderId", id, "attempts", attempts)
		return Result{Attempts: attempts}, nil

	default:
		l.metrics.LookupResult(metrics.ResultError)
		l.logger.ErrorContext(ctx, "order lookup failed", "orderId", id, "attempts", attempts, "error", err)
		return Result{Attempts: attempts}, fmt.Errorf("lookup order %s: %w", id, err)
	}
}

func (l *RetryingLookup) attempt(ctx context.Context, id order.ID, n int, found **order.Order) error {
	if l.policy.isFlaky(id) {
		counter, failed, err := l.tracker.Register(ctx, id, l.policy.FailuresBeforeSuccess)
		if err != nil {
			l.metrics.LookupAttempt(metrics.AttemptError)
			return fmt.Errorf("register attempt: %w", err)
		}
		// the last attempt always reaches the store
		if failed && n < l.policy.MaxAttempts {
			l.metrics.LookupAttempt(metrics.AttemptSimulatedFailure)
			l.logger.InfoContext(ctx, "simulated transient failure", "orderId", id, "attempt", n, "failures", counter)
			return errSimulatedFailure
		}
	}

	o, err := l.orders.Get(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			l.metrics.LookupAttempt(metrics.AttemptNotFound)
			return errOrderNotFound
		}
		l.metrics.LookupAttempt(metrics.AttemptError)
		return err
	}

	l.metrics.LookupAttempt(metrics.AttemptFound)
	*found = o
	return nil
}

// release clears the attempt counter of the flaky id, which is the only id that ever has one.
func (l *RetryingLookup) release(ctx context.Context, id order.ID) {
	if !l.policy.isFlaky(id) {
		return
	}
	if err := l.tracker.Clear(context.WithoutCancel(ctx), id); err != nil {
		l.logger.ErrorContext(ctx, "failed to clear retry state", "orderId", id, "error", err)
	}
}
