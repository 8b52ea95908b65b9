package commands

import (
	"errors"

	"orderdesk/internal/pkg/guard"
)

var ErrResolveOrderRequestCommandIsNotConstructed = errors.New(
	"ResolveOrderRequestCommand must be created via NewResolveOrderRequestCommand constructor",
)

// ResolveOrderRequestCommand carries one user message and the draft answer prepared for it.
// Both may be empty: an empty message simply contains no order id, an empty draft is
// replaced by the handler's placeholder.
type ResolveOrderRequestCommand struct {
	userText      string
	draftResponse string

	guard guard.ConstructorGuard
}

// NewResolveOrderRequestCommand creates the command.
func NewResolveOrderRequestCommand(userText, draftResponse string) (ResolveOrderRequestCommand, error) {
	return ResolveOrderRequestCommand{
		userText:      userText,
		draftResponse: draftResponse,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveOrderRequestCommand) Validate() error {
	return c.guard.Validate(ErrResolveOrderRequestCommandIsNotConstructed)
}

// UserText returns the raw user message.
func (c ResolveOrderRequestCommand) UserText() string {
	return c.userText
}

// DraftResponse returns the externally prepared answer.
func (c ResolveOrderRequestCommand) DraftResponse() string {
	return c.draftResponse
}
