package ports

import "context"

// DraftResponder produces the natural-language draft answer for a user message.
// The draft may be overridden by the resolution pipeline.
type DraftResponder interface {
	Draft(ctx context.Context, userText string) (string, error)
}
