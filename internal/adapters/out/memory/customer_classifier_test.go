package memory_test

import (
	"testing"

	"orderdesk/internal/adapters/out/memory"
	"orderdesk/internal/core/domain/model/customer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedClassifier(t *testing.T) {
	classifier := memory.NewSimulatedClassifier(memory.DefaultVipOrderID)

	vip, err := classifier.Classify(t.Context(), "12345")
	require.NoError(t, err)
	assert.Equal(t, customer.Vip, vip.Class())
	assert.Equal(t, customer.VipCustomerID, vip.ID())

	regular, err := classifier.Classify(t.Context(), "77777")
	require.NoError(t, err)
	assert.Equal(t, customer.Regular, regular.Class())
	assert.Equal(t, customer.RegularCustomerID, regular.ID())
}

func TestSimulatedClassifier_WithoutVipOrder(t *testing.T) {
	classifier := memory.NewSimulatedClassifier("")

	c, err := classifier.Classify(t.Context(), "12345")
	require.NoError(t, err)
	assert.Equal(t, customer.Regular, c.Class())
}
