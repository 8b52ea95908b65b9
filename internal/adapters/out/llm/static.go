package llm

import "context"

// DefaultStaticDraft is answered when no language model is configured.
const DefaultStaticDraft = "Thank you for your message. We are checking your request."

// StaticResponder always drafts the same text.
type StaticResponder struct {
	text string
}

// NewStaticResponder creates a StaticResponder. An empty text selects DefaultStaticDraft.
func NewStaticResponder(text string) StaticResponder {
	if text == "" {
		text = DefaultStaticDraft
	}
	return StaticResponder{text: text}
}

// Draft returns the configured text.
func (r StaticResponder) Draft(context.Context, string) (string, error) {
	return r.text, nil
}
