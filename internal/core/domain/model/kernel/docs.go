// Package kernel provides the shared domain primitives of orderdesk.
//
// The package includes:
//   - UUID: a value object for generated identifiers such as batch order ids
//
// UUID is immutable and safe for concurrent use.
package kernel
