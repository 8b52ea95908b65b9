// Command console runs the order-resolution pipeline from a terminal: first a fixed
// set of demo requests, then an interactive loop until a blank line or "exit".
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"orderdesk/cmd"
	"orderdesk/internal/core/application/agent"

	"github.com/labstack/gommon/log"
)

var demoRequests = []string{
	"What is the status of my order 12345?",
	"Can you check order 77777 for me?",
	"Where is my order 99999?",
	"Has order 67890 shipped yet?",
	"Please check order RETRY123.",
}

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: config.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(ctx, config, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}
	defer app.Close() //nolint:errcheck // process is exiting

	a, err := app.CreateAgent()
	if err != nil {
		log.Fatalf("Error building agent: %v", err)
	}

	for _, request := range demoRequests {
		converse(ctx, a, os.Stdout, request)
	}

	repl(ctx, a, os.Stdin, os.Stdout)
}

func converse(ctx context.Context, a *agent.Agent, out io.Writer, request string) {
	fmt.Fprintf(out, "> %s\n%s\n\n", request, a.Respond(ctx, request))
}

func repl(ctx context.Context, a *agent.Agent, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.EqualFold(line, "exit") {
			return
		}
		if ctx.Err() != nil {
			return
		}

		fmt.Fprintf(out, "%s\n\n", a.Respond(ctx, line))
	}
}
