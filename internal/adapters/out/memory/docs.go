// Package memory provides in-process adapters for the order-resolution core.
//
// The package includes:
//   - OrderRepository: the read-only seeded order store
//   - AttemptTracker: the sharded per-order-id retry counter
//   - BatchOrderStore and its unit of work
//   - SimulatedClassifier: the fixed VIP/regular customer mapping
//
// Every adapter is safe for concurrent use.
package memory
