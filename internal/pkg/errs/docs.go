// Package errs provides the typed errors shared by the order desk packages.
//
// Every error type follows the same shape:
//   - a sentinel error variable (e.g., ErrValueIsRequired) returned by Unwrap
//   - a struct carrying the offending parameter and an optional cause
//   - constructors with and without a cause
//
// Callers classify failures with errors.Is against the sentinels. The HTTP adapter maps
// ErrValueIsRequired and ErrValueIsInvalid to 400 responses and ErrObjectNotFound to 404;
// the order lookup treats ErrObjectNotFound as a retryable miss rather than a failure.
package errs
