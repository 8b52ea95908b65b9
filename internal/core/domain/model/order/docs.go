// Package order provides the Order aggregate queried by the resolution pipeline.
//
// The package includes:
//   - ID: the order identifier value object
//   - Status: the fulfilment status enum (in processing, shipped, delivered, cancelled)
//   - Order: an immutable record of id, status and item
//
// Key business rules:
//   - Orders are immutable once created and can only be built through NewOrder
//   - Only orders in the InProcessing status are eligible for prioritization
package order
