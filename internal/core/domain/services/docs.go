// Package services provides the pure domain services of the order-resolution pipeline.
//
// The package includes:
//   - IDExtractor: finds a candidate order id in free text
//   - PrioritizationRule: decides whether an in-processing order is escalated
//
// Both services are deterministic, hold no mutable state and are safe for concurrent use.
package services
