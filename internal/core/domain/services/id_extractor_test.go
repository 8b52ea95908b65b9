package services_test

import (
	"testing"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const flakyID = "RETRY123"

func TestIDExtractor_LiteralFirst(t *testing.T) {
	extractor := services.NewIDExtractor(services.LiteralFirst, flakyID)

	testCases := []struct {
		name     string
		text     string
		expected order.ID
		found    bool
	}{
		{"numeric id", "What is the status of order 12345?", "12345", true},
		{"numeric id at start", "77777 status please", "77777", true},
		{"flaky literal", "status of order RETRY123", "RETRY123", true},
		{"flaky literal after other tokens", "Hello there, please check RETRY123 now", "RETRY123", true},
		{"first qualifying id wins", "orders 67890 and 12345", "67890", true},
		{"flaky literal before numeric", "RETRY123 or 12345", "RETRY123", true},
		{"flaky literal is case sensitive", "status of retry123", "", false},
		{"six digits are not an id", "order 123456", "", false},
		{"four digits are not an id", "order 1234", "", false},
		{"digits glued to letters", "orderX12345", "", false},
		{"unknown alphanumeric token", "order ABC12", "", false},
		{"no candidate", "hi, how are you?", "", false},
		{"empty text", "", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := extractor.Extract(tc.text)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.expected, id)
		})
	}
}

func TestIDExtractor_NumericOnly(t *testing.T) {
	extractor := services.NewIDExtractor(services.NumericOnly, flakyID)

	_, ok := extractor.Extract("status of order RETRY123")
	assert.False(t, ok)

	id, ok := extractor.Extract("RETRY123 or 44556")
	assert.True(t, ok)
	assert.Equal(t, order.ID("44556"), id)
}

func TestIDExtractor_Alphanumeric(t *testing.T) {
	extractor := services.NewIDExtractor(services.Alphanumeric, flakyID)

	testCases := []struct {
		text     string
		expected order.ID
		found    bool
	}{
		{"where is order AB1234?", "AB1234", true},
		{"status of RETRY123", "RETRY123", true},
		{"hello world 11223", "11223", true},
		{"hello world", "", false},
		{"order 1234567890", "1234567890", true},
	}

	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			id, ok := extractor.Extract(tc.text)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.expected, id)
		})
	}
}

func TestIDExtractor_IsDeterministic(t *testing.T) {
	extractor := services.NewIDExtractor(services.LiteralFirst, flakyID)
	text := "compare 12345 with RETRY123 and 77777"

	first, ok := extractor.Extract(text)
	require.True(t, ok)
	for range 50 {
		id, _ := extractor.Extract(text)
		assert.Equal(t, first, id)
	}
}

func TestParseExtractionPolicy(t *testing.T) {
	testCases := []struct {
		raw      string
		expected services.ExtractionPolicy
	}{
		{"", services.LiteralFirst},
		{"literal-first", services.LiteralFirst},
		{" NUMERIC-ONLY ", services.NumericOnly},
		{"alphanumeric", services.Alphanumeric},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			policy, err := services.ParseExtractionPolicy(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, policy)
		})
	}

	_, err := services.ParseExtractionPolicy("fuzzy")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.Equal(t, "numeric-only", services.NumericOnly.String())
	assert.Equal(t, "unknown", services.ExtractionPolicy(7).String())
}
