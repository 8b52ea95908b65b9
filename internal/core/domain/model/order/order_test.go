package order_test

import (
	"testing"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		id, err := order.NewID("  12345 ")
		require.NoError(t, err)
		assert.Equal(t, order.ID("12345"), id)
		assert.Equal(t, "12345", id.String())
	})

	t.Run("rejects blank values", func(t *testing.T) {
		for _, raw := range []string{"", "   ", "\t\n"} {
			_, err := order.NewID(raw)
			require.ErrorIs(t, err, errs.ErrValueIsRequired)
		}
	})

	t.Run("zero value does not validate", func(t *testing.T) {
		var id order.ID
		require.ErrorIs(t, id.Validate(), errs.ErrValueIsRequired)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("creates order with accessors", func(t *testing.T) {
		o, err := order.NewOrder("12345", order.InProcessing, " Laptop Gamer ")
		require.NoError(t, err)

		assert.Equal(t, order.ID("12345"), o.ID())
		assert.Equal(t, order.InProcessing, o.Status())
		assert.Equal(t, "Laptop Gamer", o.Item())
		require.NoError(t, o.Validate())
	})

	testCases := []struct {
		name     string
		id       order.ID
		status   order.Status
		item     string
		sentinel error
	}{
		{"blank id", "", order.Shipped, "Curved Monitor", errs.ErrValueIsRequired},
		{"unknown status", "67890", order.Unknown, "Curved Monitor", errs.ErrValueIsInvalid},
		{"blank item", "67890", order.Shipped, "  ", errs.ErrValueIsRequired},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o, err := order.NewOrder(tc.id, tc.status, tc.item)
			require.Error(t, err)
			assert.Nil(t, o)
			assert.ErrorIs(t, err, tc.sentinel)
		})
	}

	t.Run("joins every validation error", func(t *testing.T) {
		_, err := order.NewOrder("", order.Unknown, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value is rejected", func(t *testing.T) {
		o := &order.Order{}
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil is rejected", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
