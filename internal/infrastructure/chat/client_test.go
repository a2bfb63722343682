package chat

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/areteselect/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), "hello there")
		assert.Contains(t, string(body), "test-model")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "cmpl-1",
			"object": "chat.completion",
			"choices": []map[string]interface{}{
				{
					"index": 0,
					"message": map[string]interface{}{
						"role":    "assistant",
						"content": "  general kenobi  ",
					},
					"finish_reason": "stop",
				},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", "test-model")

	reply, err := client.Complete(context.Background(), "hello there")
	require.NoError(t, err)
	assert.Equal(t, "general kenobi", reply)
}

func TestComplete_BackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"bad token"}}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-token", "test-model")

	reply, err := client.Complete(context.Background(), "hello")
	assert.Empty(t, reply)
	assert.ErrorIs(t, err, domain.ErrChatUnavailable)
}

func TestComplete_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":      "cmpl-2",
			"object":  "chat.completion",
			"choices": []interface{}{},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", "test-model")

	reply, err := client.Complete(context.Background(), "hello")
	assert.Empty(t, reply)
	assert.ErrorIs(t, err, domain.ErrChatUnavailable)
}
