// Package queries contains the read-only operations of orderdesk.
// Queries never change state; each one is built through a guarded constructor and
// answered by a dedicated handler.
package queries
