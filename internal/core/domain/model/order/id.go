package order

import (
	"strings"

	"orderdesk/internal/pkg/errs"
)

// ID identifies an order. Numeric ids ("12345") and alphanumeric ids ("RETRY123")
// are both valid; the only requirement is a non-blank value.
type ID string

// NewID trims raw and returns it as an ID.
// Returns a ValueIsRequiredError when raw is blank.
func NewID(raw string) (ID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errs.NewValueIsRequiredError("order id")
	}
	return ID(trimmed), nil
}

// String returns the raw identifier.
func (id ID) String() string {
	return string(id)
}

// Validate reports whether the ID was built from a non-blank value.
func (id ID) Validate() error {
	if strings.TrimSpace(string(id)) == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	return nil
}
