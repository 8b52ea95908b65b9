package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// ApologyText is returned whenever the pipeline fails unexpectedly.
const ApologyText = "Sorry, an error occurred while processing your request. Please try again later."

// Resolver runs the order-resolution pipeline for one command.
type Resolver interface {
	Handle(ctx context.Context, cmd commands.ResolveOrderRequestCommand) (commands.ResolutionResult, error)
}

// Agent answers free-text messages.
type Agent struct {
	drafts   ports.DraftResponder
	resolver Resolver
	logger   *slog.Logger
}

// NewAgent creates an Agent. A nil logger selects slog.Default.
func NewAgent(drafts ports.DraftResponder, resolver Resolver, logger *slog.Logger) (*Agent, error) {
	if drafts == nil {
		return nil, errs.NewValueIsRequiredError("drafts")
	}
	if resolver == nil {
		return nil, errs.NewValueIsRequiredError("resolver")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Agent{
		drafts:   drafts,
		resolver: resolver,
		logger:   logger.With("component", "Agent"),
	}, nil
}

// Respond returns the final answer to userText.
func (a *Agent) Respond(ctx context.Context, userText string) string {
	return a.RespondWithDraft(ctx, userText, a.draft(ctx, userText))
}

// RespondWithDraft skips the draft collaborator and resolves userText against the supplied draft.
func (a *Agent) RespondWithDraft(ctx context.Context, userText, draft string) (answer string) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.ErrorContext(ctx, "order request resolution panicked", "panic", fmt.Sprint(r))
			answer = ApologyText
		}
	}()

	cmd, err := commands.NewResolveOrderRequestCommand(userText, draft)
	if err != nil {
		a.logger.ErrorContext(ctx, "failed to build order request command", "error", err)
		return ApologyText
	}

	result, err := a.resolver.Handle(ctx, cmd)
	if err != nil {
		a.logger.ErrorContext(ctx, "failed to resolve order request", "error", err)
		return ApologyText
	}

	return result.FinalText
}

// draft returns an empty string when the collaborator fails; the pipeline substitutes its placeholder.
func (a *Agent) draft(ctx context.Context, userText string) string {
	text, err := a.drafts.Draft(ctx, userText)
	if err != nil {
		a.logger.WarnContext(ctx, "draft responder unavailable, using placeholder", "error", err)
		return ""
	}
	if strings.TrimSpace(text) == "" {
		a.logger.WarnContext(ctx, "draft responder returned an empty draft, using placeholder")
		return ""
	}
	return text
}
