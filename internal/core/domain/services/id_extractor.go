package services

import (
	"fmt"
	"regexp"
	"strings"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
)

// ExtractionPolicy selects how IDExtractor chooses between candidate tokens.
type ExtractionPolicy int

const (
	// LiteralFirst returns the first token that is the flaky order id literal or exactly five digits.
	LiteralFirst ExtractionPolicy = iota

	// NumericOnly only recognises ids of exactly five digits.
	NumericOnly

	// Alphanumeric returns the first 5-10 character token containing a digit.
	Alphanumeric
)

var (
	candidatePattern = regexp.MustCompile(`\b[a-zA-Z0-9]{5,10}\b`)
	numericPattern   = regexp.MustCompile(`\b\d{5}\b`)
	numericToken     = regexp.MustCompile(`^\d{5}$`)
)

func getExtractionPolicyStrings() map[ExtractionPolicy]string {
	return map[ExtractionPolicy]string{
		LiteralFirst: "literal-first",
		NumericOnly:  "numeric-only",
		Alphanumeric: "alphanumeric",
	}
}

// String returns the configuration name of the policy.
func (p ExtractionPolicy) String() string {
	if s, ok := getExtractionPolicyStrings()[p]; ok {
		return s
	}
	return "unknown"
}

// ParseExtractionPolicy maps a configuration name to an ExtractionPolicy.
// An empty value selects LiteralFirst.
func ParseExtractionPolicy(raw string) (ExtractionPolicy, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return LiteralFirst, nil
	}
	for policy, name := range getExtractionPolicyStrings() {
		if name == normalized {
			return policy, nil
		}
	}
	return LiteralFirst, errs.NewValueIsInvalidErrorWithCause(
		"id extraction policy",
		fmt.Errorf("%q is not one of literal-first, numeric-only, alphanumeric", raw),
	)
}

// IDExtractor finds the order id a free-text message refers to.
//
// Tokens are scanned left to right and the first qualifying one wins; messages that
// mention several ids are not disambiguated further. Extraction is deterministic.
//
// Example:
//
//	extractor := services.NewIDExtractor(services.LiteralFirst, "RETRY123")
//	id, ok := extractor.Extract("what is the status of order 12345?")
//	// id == "12345", ok == true
type IDExtractor struct {
	policy  ExtractionPolicy
	flakyID string
}

// NewIDExtractor creates an IDExtractor. flakyID is the literal recognised by LiteralFirst
// in addition to five digit ids.
func NewIDExtractor(policy ExtractionPolicy, flakyID string) IDExtractor {
	return IDExtractor{
		policy:  policy,
		flakyID: strings.TrimSpace(flakyID),
	}
}

// Policy returns the configured policy.
func (e IDExtractor) Policy() ExtractionPolicy {
	return e.policy
}

// Extract returns the first qualifying order id in text, or false when there is none.
func (e IDExtractor) Extract(text string) (order.ID, bool) {
	switch e.policy {
	case NumericOnly:
	case Alphanumeric:
		for _, token := range candidatePattern.FindAllString(text, -1) {
			if strings.ContainsAny(token, "0123456789") {
				return order.ID(token), true
			}
		}
	default:
		for _, token := range candidatePattern.FindAllString(text, -1) {
			if (e.flakyID != "" && token == e.flakyID) || numericToken.MatchString(token) {
				return order.ID(token), true
			}
		}
	}

	if match := numericPattern.FindString(text); match != "" {
		return order.ID(match), true
	}
	return "", false
}
