package guard_test

import (
	"errors"
	"sync"
	"testing"

	"orderdesk/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errLookupRequestIsNotConstructed = errors.New("lookupRequest must be created via newLookupRequest")

type lookupRequest struct {
	orderID string
	guard   guard.ConstructorGuard
}

func newLookupRequest(orderID string) (lookupRequest, error) {
	if orderID == "" {
		return lookupRequest{}, errors.New("order id is required")
	}
	return lookupRequest{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (r lookupRequest) Validate() error {
	return r.guard.Validate(errLookupRequestIsNotConstructed)
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("entity not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInOwner(t *testing.T) {
	t.Run("owner_built_by_constructor_is_valid", func(t *testing.T) {
		req, err := newLookupRequest("12345")
		require.NoError(t, err)

		require.NoError(t, req.Validate())
	})

	t.Run("owner_built_by_literal_is_rejected", func(t *testing.T) {
		req := lookupRequest{orderID: "12345"}

		require.ErrorIs(t, req.Validate(), errLookupRequestIsNotConstructed)
	})

	t.Run("failed_constructor_returns_zero_value", func(t *testing.T) {
		req, err := newLookupRequest("")
		require.Error(t, err)

		require.ErrorIs(t, req.Validate(), errLookupRequestIsNotConstructed)
	})
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Validate(nil))
		}()
	}
	wg.Wait()
}
