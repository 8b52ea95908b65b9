package commands

import (
	"fmt"

	"orderdesk/internal/core/domain/model/order"
)

// Branch names the terminal state a resolution ended in.
type Branch int

const (
	// BranchUnknown is never produced by a successful resolution.
	BranchUnknown Branch = iota

	// BranchNoIDExtracted means the message mentions no order id; the draft is returned.
	BranchNoIDExtracted

	// BranchNotFound means the id is not in the store after all attempts; the draft is returned.
	BranchNotFound

	// BranchNotEligible means the order exists but is not in processing; the draft is returned.
	BranchNotEligible

	// BranchPrioritized means the order was escalated and the customer notified.
	BranchPrioritized

	// BranchProcessedNormally means the order is in processing without escalation.
	BranchProcessedNormally
)

func getBranchStrings() map[Branch]string {
	return map[Branch]string{
		BranchUnknown:           "unknown",
		BranchNoIDExtracted:     "no_id_extracted",
		BranchNotFound:          "not_found",
		BranchNotEligible:       "not_eligible",
		BranchPrioritized:       "prioritized",
		BranchProcessedNormally: "processed_normally",
	}
}

// String returns the snake_case branch name used in logs and metrics.
func (b Branch) String() string {
	if s, ok := getBranchStrings()[b]; ok {
		return s
	}
	return "unknown"
}

// OverridesDraft reports whether the branch replaces the draft with a synthesized answer.
func (b Branch) OverridesDraft() bool {
	return b == BranchPrioritized || b == BranchProcessedNormally
}

// ResolutionResult is produced once per resolved request and never persisted.
type ResolutionResult struct {
	Branch      Branch
	OrderID     order.ID
	Found       bool
	Status      order.Status
	Item        string
	Attempts    int
	Prioritized bool
	Notified    bool
	FinalText   string
}

// PrioritizedText is the answer for an escalated order.
func PrioritizedText(id order.ID, item string, status order.Status) string {
	return fmt.Sprintf("order %s ('%s') is '%s'; it has been prioritized and you will be notified shortly",
		id, item, status)
}

// ProcessedNormallyText is the answer for an in-processing order that is not escalated.
func ProcessedNormallyText(id order.ID, item string, status order.Status) string {
	return fmt.Sprintf("order %s ('%s') is '%s'; it is being processed normally.", id, item, status)
}

// NotFoundText is the answer synthesized for a missing order when enabled.
func NotFoundText(id order.ID) string {
	return fmt.Sprintf("order %s not found.", id)
}
