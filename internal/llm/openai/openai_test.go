package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyonekura/koibumi/internal/llm"
)

func TestCreateChatCompletion(t *testing.T) {
	var gotBody request

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"まずは共通の趣味の話から始めるといいですよ。"}}]}`))
	}))
	defer server.Close()

	client := NewClient("sk-test", "gpt-4o")
	client.baseURL = server.URL

	text, err := client.CreateChatCompletion(context.Background(), []llm.Message{
		{Role: llm.RoleUser, Content: "初メッセージのコツは?"},
	})
	require.NoError(t, err)
	assert.Equal(t, "まずは共通の趣味の話から始めるといいですよ。", text)
	assert.Equal(t, "gpt-4o", gotBody.Model)
	assert.Equal(t, 1000, gotBody.MaxTokens)
	assert.InDelta(t, 0.7, gotBody.Temperature, 0.001)
}
