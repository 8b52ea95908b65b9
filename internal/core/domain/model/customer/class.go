package customer

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// Class is the customer tier used by the prioritization rule.
type Class int

const (
	// Unknown represents an unclassified customer and never validates.
	Unknown Class = iota

	// Regular customers are prioritized only for qualifying items.
	Regular

	// Vip customers qualify any in-processing order for prioritization.
	Vip
)

// String returns "regular", "vip" or "unknown".
func (c Class) String() string {
	switch c {
	case Regular:
		return "regular"
	case Vip:
		return "vip"
	default:
		return "unknown"
	}
}

// Validate rejects Unknown and out of range values.
func (c Class) Validate() error {
	if c != Regular && c != Vip {
		return errs.NewValueIsInvalidErrorWithCause("customer class", fmt.Errorf("%d is not a valid class", c))
	}
	return nil
}
