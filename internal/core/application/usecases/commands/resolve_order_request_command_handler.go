package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"orderdesk/internal/core/domain/model/customer"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/metrics"
)

// DefaultPlaceholderDraft stands in for a missing or empty draft answer.
const DefaultPlaceholderDraft = "Sorry, I could not find an order number in your message. " +
	"Please send the number of the order you are asking about."

// ResolveOrderDependencies are the pipeline stages of a resolution.
type ResolveOrderDependencies struct {
	Extractor  IDExtractor
	Lookup     OrderLookup
	Classifier ports.CustomerClassifier
	Rule       PrioritizationRule
	Notifier   ports.Notifier
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// ResolveOrderOptions tune the answers of the non-overriding branches.
type ResolveOrderOptions struct {
	// SynthesizeNotFound answers "order {id} not found." instead of passing the draft through.
	SynthesizeNotFound bool

	// PlaceholderDraft replaces an empty draft. Empty selects DefaultPlaceholderDraft.
	PlaceholderDraft string
}

// ResolveOrderRequestCommandHandler runs the order-resolution pipeline:
// extract the id, look the order up, classify the customer, apply the prioritization
// rule, notify and compose the answer. The steps always run in this order and each
// request ends in exactly one Branch.
//
// Example:
//
//	cmd, _ := NewResolveOrderRequestCommand("status of order 12345?", draft)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.FinalText)
type ResolveOrderRequestCommandHandler struct {
	deps ResolveOrderDependencies
	opts ResolveOrderOptions
}

// NewResolveOrderRequestCommandHandler creates the handler. Every stage except Logger and Metrics is required.
func NewResolveOrderRequestCommandHandler(
	deps ResolveOrderDependencies,
	opts ResolveOrderOptions,
) (ResolveOrderRequestCommandHandler, error) {
	switch {
	case deps.Extractor == nil:
		return ResolveOrderRequestCommandHandler{}, errs.NewValueIsRequiredError("extractor")
	case deps.Lookup == nil:
		return ResolveOrderRequestCommandHandler{}, errs.NewValueIsRequiredError("lookup")
	case deps.Classifier == nil:
		return ResolveOrderRequestCommandHandler{}, errs.NewValueIsRequiredError("classifier")
	case deps.Rule == nil:
		return ResolveOrderRequestCommandHandler{}, errs.NewValueIsRequiredError("rule")
	case deps.Notifier == nil:
		return ResolveOrderRequestCommandHandler{}, errs.NewValueIsRequiredError("notifier")
	}

	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	deps.Logger = deps.Logger.With("component", "ResolveOrderRequestCommandHandler")

	if strings.TrimSpace(opts.PlaceholderDraft) == "" {
		opts.PlaceholderDraft = DefaultPlaceholderDraft
	}

	return ResolveOrderRequestCommandHandler{deps: deps, opts: opts}, nil
}

// Handle resolves one request.
//
// Lookup failures other than "not found" are returned as errors; notification failures
// are logged and never change the outcome.
func (h *ResolveOrderRequestCommandHandler) Handle(
	ctx context.Context,
	cmd ResolveOrderRequestCommand,
) (ResolutionResult, error) {
	if err := cmd.Validate(); err != nil {
		return ResolutionResult{}, err
	}

	draft := cmd.DraftResponse()
	if strings.TrimSpace(draft) == "" {
		draft = h.opts.PlaceholderDraft
	}

	id, ok := h.deps.Extractor.Extract(cmd.UserText())
	if !ok {
		return h.finish(ctx, ResolutionResult{Branch: BranchNoIDExtracted, FinalText: draft}), nil
	}

	found, err := h.deps.Lookup.Resolve(ctx, id)
	if err != nil {
		return ResolutionResult{}, fmt.Errorf("resolve order %s: %w", id, err)
	}

	if !found.Found {
		text := draft
		if h.opts.SynthesizeNotFound {
			text = NotFoundText(id)
		}
		return h.finish(ctx, ResolutionResult{
			Branch:    BranchNotFound,
			OrderID:   id,
			Attempts:  found.Attempts,
			FinalText: text,
		}), nil
	}

	o := found.Order
	result := ResolutionResult{
		OrderID:  id,
		Found:    true,
		Status:   o.Status(),
		Item:     o.Item(),
		Attempts: found.Attempts,
	}

	if !o.Status().IsEligibleForPrioritization() {
		result.Branch = BranchNotEligible
		result.FinalText = draft
		return h.finish(ctx, result), nil
	}

	c := h.classify(ctx, id)
	if !h.deps.Rule.ShouldPrioritize(o.Item(), c.Class()) {
		result.Branch = BranchProcessedNormally
		result.FinalText = ProcessedNormallyText(id, o.Item(), o.Status())
		return h.finish(ctx, result), nil
	}

	result.Branch = BranchPrioritized
	result.Prioritized = true
	result.Notified = h.notify(ctx, id, c)
	result.FinalText = PrioritizedText(id, o.Item(), o.Status())
	return h.finish(ctx, result), nil
}

func (h *ResolveOrderRequestCommandHandler) classify(ctx context.Context, id order.ID) customer.Customer {
	c, err := h.deps.Classifier.Classify(ctx, id)
	if err == nil {
		err = c.Validate()
	}
	if err != nil {
		h.deps.Logger.WarnContext(ctx, "customer classification failed, treating as regular",
			"orderId", id, "error", err)
		return customer.RegularCustomer()
	}
	return c
}

func (h *ResolveOrderRequestCommandHandler) notify(ctx context.Context, id order.ID, c customer.Customer) bool {
	ack, err := h.deps.Notifier.NotifyPrioritized(ctx, id, c.ID())
	if err != nil {
		h.deps.Metrics.Notification(metrics.NotificationFailed)
		h.deps.Logger.ErrorContext(ctx, "failed to notify customer about prioritized order",
			"orderId", id, "customerId", c.ID(), "error", err)
		return false
	}

	h.deps.Metrics.Notification(metrics.NotificationSent)
	h.deps.Logger.InfoContext(ctx, "customer notified about prioritized order",
		"orderId", id, "customerId", c.ID(), "messageId", ack.MessageID)
	return true
}

func (h *ResolveOrderRequestCommandHandler) finish(ctx context.Context, result ResolutionResult) ResolutionResult {
	h.deps.Metrics.Resolution(result.Branch.String())
	h.deps.Logger.InfoContext(ctx, "order request resolved",
		"branch", result.Branch.String(),
		"orderId", result.OrderID,
		"found", result.Found,
		"prioritized", result.Prioritized,
	)
	return result
}
