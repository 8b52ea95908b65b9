// Package batch provides the BatchOrder aggregate registered through the batch order endpoint.
//
// Key business rules:
//   - A batch order carries at least one item and every item is non-blank
//   - The ordering customer is required
//   - Batch orders are immutable once registered
package batch
