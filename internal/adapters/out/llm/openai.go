// Package llm provides the natural-language draft collaborators.
//
// OpenAIResponder asks an OpenAI-compatible chat completion endpoint for a draft answer;
// StaticResponder returns a fixed text and is used when no model is configured.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the OpenAI API root.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is used when no model is configured.
	DefaultModel = "gpt-4o-mini"

	defaultTimeout = 30 * time.Second

	systemPrompt = "You are a customer service assistant for an online store. " +
		"Answer questions about order status briefly and politely. " +
		"If the customer does not mention an order number, ask for it. " +
		"Never invent order details you were not given."
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// OpenAIResponder drafts answers with a chat completion model.
type OpenAIResponder struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewOpenAIResponder creates a responder. Empty model or baseURL select the defaults;
// a nil client gets a 30 second timeout.
func NewOpenAIResponder(apiKey, model, baseURL string, client *http.Client) *OpenAIResponder {
	if model == "" {
		model = DefaultModel
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &OpenAIResponder{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// Draft returns the model's answer to userText.
func (r *OpenAIResponder) Draft(ctx context.Context, userText string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: r.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userText},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("openai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("openai: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai: send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("openai error: %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var decoded chatResponse
	if err = json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("openai: decode response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("openai: empty choices in response")
	}

	return strings.TrimSpace(decoded.Choices[0].Message.Content), nil
}
