package services

import (
	"strings"

	"orderdesk/internal/core/domain/model/customer"
)

// PriorityItem is the item that qualifies an order for prioritization regardless of the customer.
const PriorityItem = "Laptop Gamer"

// PrioritizationRule decides whether an order is escalated.
//
// Business rules:
//   - An order for PriorityItem (case-insensitive) is always prioritized
//   - Any order of a VIP customer is prioritized
//   - Nothing else is considered
//
// The rule only answers the question; callers are responsible for checking that
// the order is in processing before asking it.
type PrioritizationRule struct{}

// NewPrioritizationRule creates a PrioritizationRule.
func NewPrioritizationRule() PrioritizationRule {
	return PrioritizationRule{}
}

// ShouldPrioritize reports whether an order for item placed by a customer of the given class is escalated.
func (PrioritizationRule) ShouldPrioritize(item string, class customer.Class) bool {
	return strings.EqualFold(item, PriorityItem) || class == customer.Vip
}
