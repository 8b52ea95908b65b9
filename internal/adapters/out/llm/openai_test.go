package llm_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"orderdesk/internal/adapters/out/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIResponder_Draft(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "test-model", body.Model)
		if assert.Len(t, body.Messages, 2) {
			assert.Equal(t, "system", body.Messages[0].Role)
			assert.Equal(t, "user", body.Messages[1].Role)
			assert.Equal(t, "where is order 12345?", body.Messages[1].Content)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  Let me check order 12345.  "}}]}`))
	}))
	defer server.Close()

	responder := llm.NewOpenAIResponder("secret", "test-model", server.URL+"/v1/", server.Client())

	draft, err := responder.Draft(t.Context(), "where is order 12345?")
	require.NoError(t, err)
	assert.Equal(t, "Let me check order 12345.", draft)
}

func TestOpenAIResponder_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		status   int
		body     string
		contains string
	}{
		{"non 200 status", http.StatusTooManyRequests, `{"error":"rate limited"}`, "openai error: 429"},
		{"empty choices", http.StatusOK, `{"choices":[]}`, "empty choices"},
		{"malformed body", http.StatusOK, `{"choices":`, "decode response"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			responder := llm.NewOpenAIResponder("secret", "", server.URL, server.Client())
			_, err := responder.Draft(t.Context(), "hello")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.contains)
		})
	}
}

func TestStaticResponder(t *testing.T) {
	draft, err := llm.NewStaticResponder("").Draft(t.Context(), "anything")
	require.NoError(t, err)
	assert.Equal(t, llm.DefaultStaticDraft, draft)

	draft, err = llm.NewStaticResponder("fixed").Draft(t.Context(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "fixed", draft)
}
