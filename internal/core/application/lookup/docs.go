// Package lookup resolves order ids against the order store under a bounded retry policy.
//
// A lookup performs at most Policy.MaxAttempts store attempts separated by a fixed
// Policy.RetryDelay. The designated flaky order id fails transiently a configured number
// of times, tracked per id by a ports.AttemptTracker, before the store is consulted.
// Not finding an order after the last attempt is a regular result, not an error.
package lookup
