package order

import (
	"fmt"
	"strings"

	"orderdesk/internal/pkg/errs"
)

// Status represents the fulfilment state of an order as reported by the order store.
//
// Status values are read-only facts for the resolution pipeline: the pipeline never
// transitions an order, it only decides whether an InProcessing order is escalated.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// InProcessing means the order is being fulfilled.
	// It is the only status eligible for prioritization.
	InProcessing

	// Shipped means the order has left the warehouse.
	Shipped

	// Delivered means the order reached the customer.
	Delivered

	// Cancelled means the order will not be fulfilled.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "unknown",
		InProcessing: "in processing",
		Shipped:      "shipped",
		Delivered:    "delivered",
		Cancelled:    "cancelled",
	}
}

// Validate checks if the Status value is one of the known fulfilment states.
//
// Returns:
//   - nil if the status is valid
//   - ValueIsInvalidError if the status is Unknown or out of range
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name used in responses, e.g. "in processing".
// Invalid values render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsEligibleForPrioritization reports whether an order in this status may be escalated.
func (s Status) IsEligibleForPrioritization() bool {
	return s == InProcessing
}

// ParseStatus converts a status name (case-insensitive, as produced by String) into a Status.
// Underscores are accepted in place of spaces so that "in_processing" parses too.
func ParseStatus(raw string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(raw, "_", " ")))
	for status, name := range getStatusStrings() {
		if status != Unknown && name == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", raw))
}
