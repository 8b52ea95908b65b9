package order_test

import (
	"testing"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, 0, int(order.Unknown))
	assert.Equal(t, 1, int(order.InProcessing))
	assert.Equal(t, 2, int(order.Shipped))
	assert.Equal(t, 3, int(order.Delivered))
	assert.Equal(t, 4, int(order.Cancelled))
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.InProcessing, "in processing"},
		{order.Shipped, "shipped"},
		{order.Delivered, "delivered"},
		{order.Cancelled, "cancelled"},
		{order.Unknown, "unknown"},
		{order.Status(42), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate known statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.InProcessing, order.Shipped, order.Delivered, order.Cancelled} {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject Unknown and out of range values", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Status(-1), order.Status(5)} {
			err := s.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_IsEligibleForPrioritization(t *testing.T) {
	assert.True(t, order.InProcessing.IsEligibleForPrioritization())
	assert.False(t, order.Shipped.IsEligibleForPrioritization())
	assert.False(t, order.Delivered.IsEligibleForPrioritization())
	assert.False(t, order.Cancelled.IsEligibleForPrioritization())
	assert.False(t, order.Unknown.IsEligibleForPrioritization())
}

func TestParseStatus(t *testing.T) {
	t.Run("round trips every valid status", func(t *testing.T) {
		for _, s := range []order.Status{order.InProcessing, order.Shipped, order.Delivered, order.Cancelled} {
			parsed, err := order.ParseStatus(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("accepts case and underscore variants", func(t *testing.T) {
		parsed, err := order.ParseStatus("  IN_Processing ")
		require.NoError(t, err)
		assert.Equal(t, order.InProcessing, parsed)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		for _, raw := range []string{"", "unknown", "lost"} {
			_, err := order.ParseStatus(raw)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, raw)
		}
	})
}
