package main

import (
	"bytes"
	"strings"
	"testing"

	"orderdesk/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepl_StopsOnExit(t *testing.T) {
	cfg := cmd.DefaultConfig()
	cfg.LookupRetryDelay = 0
	cfg.NotifyLatency = 0

	app, err := cmd.NewCompositionRoot(t.Context(), cfg, nil)
	require.NoError(t, err)
	defer app.Close() //nolint:errcheck // test cleanup

	a, err := app.CreateAgent()
	require.NoError(t, err)

	var out bytes.Buffer
	repl(t.Context(), a, strings.NewReader("order 77777\nexit\norder 12345\n"), &out)

	assert.Contains(t, out.String(), "processed normally")
	assert.NotContains(t, out.String(), "prioritized")
}

func TestConverse_DemoRequests(t *testing.T) {
	cfg := cmd.DefaultConfig()
	cfg.LookupRetryDelay = 0
	cfg.NotifyLatency = 0

	app, err := cmd.NewCompositionRoot(t.Context(), cfg, nil)
	require.NoError(t, err)
	defer app.Close() //nolint:errcheck // test cleanup

	a, err := app.CreateAgent()
	require.NoError(t, err)

	var out bytes.Buffer
	for _, request := range demoRequests {
		converse(t.Context(), a, &out, request)
	}

	assert.Contains(t, out.String(), "order 12345 ('Laptop Gamer') is 'in processing'; it has been prioritized")
	assert.Contains(t, out.String(), "order 77777 ('Webcam HD') is 'in processing'; it is being processed normally.")
	assert.Contains(t, out.String(), "order RETRY123 ('Retry Item') is 'in processing'")
}
