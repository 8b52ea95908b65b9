package lookup

import (
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
)

// Defaults of the lookup retry policy.
const (
	DefaultMaxAttempts           = 3
	DefaultRetryDelay            = 200 * time.Millisecond
	DefaultFailuresBeforeSuccess = 2
	DefaultFlakyOrderID          = order.ID("RETRY123")

	maxAttemptsLimit = 100
	maxRetryDelay    = time.Minute
)

// Policy bounds a lookup: how many attempts it may take, how long it waits between
// them and which order id simulates transient store failures.
type Policy struct {
	// MaxAttempts is the total number of store attempts, including the first one.
	MaxAttempts int

	// RetryDelay is the fixed pause between attempts.
	RetryDelay time.Duration

	// FailuresBeforeSuccess is how many simulated failures FlakyOrderID produces
	// before the store is actually consulted.
	FailuresBeforeSuccess int

	// FlakyOrderID is the order id whose lookups fail transiently. Empty disables simulation.
	FlakyOrderID order.ID
}

// DefaultPolicy returns 3 attempts, 200ms apart, with RETRY123 failing twice.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:           DefaultMaxAttempts,
		RetryDelay:            DefaultRetryDelay,
		FailuresBeforeSuccess: DefaultFailuresBeforeSuccess,
		FlakyOrderID:          DefaultFlakyOrderID,
	}
}

// Validate checks every bound of the policy.
func (p Policy) Validate() error {
	var err error

	if p.MaxAttempts < 1 || p.MaxAttempts > maxAttemptsLimit {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("max attempts", p.MaxAttempts, 1, maxAttemptsLimit))
	}
	if p.RetryDelay < 0 || p.RetryDelay > maxRetryDelay {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("retry delay", p.RetryDelay, time.Duration(0), maxRetryDelay))
	}
	if p.FailuresBeforeSuccess < 0 || p.FailuresBeforeSuccess > maxAttemptsLimit {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError(
			"failures before success", p.FailuresBeforeSuccess, 0, maxAttemptsLimit,
		))
	}

	return err
}

// MaxLatency is the longest a lookup can spend sleeping between attempts.
func (p Policy) MaxLatency() time.Duration {
	return time.Duration(p.MaxAttempts-1) * p.RetryDelay
}

// MinRetryStateTTL is the lifetime a retry counter must exceed so that expiry never
// removes it while a lookup is still sleeping between attempts.
func (p Policy) MinRetryStateTTL() time.Duration {
	return 2 * p.MaxLatency()
}

func (p Policy) isFlaky(id order.ID) bool {
	return p.FlakyOrderID != "" && id == p.FlakyOrderID
}
