package commands_test

import (
	"testing"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterBatchOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewRegisterBatchOrderCommand(" ACME ", []string{"Laptop Gamer", " Webcam HD "})
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "ACME", cmd.Customer())
	assert.Equal(t, []string{"Laptop Gamer", "Webcam HD"}, cmd.Items())
}

func TestNewRegisterBatchOrderCommand_InvalidInput(t *testing.T) {
	testCases := []struct {
		name     string
		customer string
		items    []string
	}{
		{"blank customer", "  ", []string{"Laptop Gamer"}},
		{"nil items", "ACME", nil},
		{"empty items", "ACME", []string{}},
		{"blank item", "ACME", []string{"Laptop Gamer", ""}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewRegisterBatchOrderCommand(tc.customer, tc.items)
			require.ErrorIs(t, err, errs.ErrValueIsRequired)
		})
	}
}

func TestRegisterBatchOrderCommand_NotConstructed(t *testing.T) {
	cmd := commands.RegisterBatchOrderCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrRegisterBatchOrderCommandIsNotConstructed)
}
