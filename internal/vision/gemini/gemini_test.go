package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, answer string, capture *request) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.Contains(r.URL.RawQuery, "key=test-key"))
		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}
		w.Header().Set("Content-Type", "application/json")
		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": answer}},
				}},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestDescribeImage(t *testing.T) {
	var got request
	server := newTestServer(t, "あやか 28歳", &got)
	defer server.Close()

	model := NewGeminiModel("test-key", "gemini-pro-vision")
	model.baseURL = server.URL

	text, err := model.DescribeImage(context.Background(), "読み取って", "aW1hZ2U=")
	require.NoError(t, err)
	assert.Equal(t, "あやか 28歳", text)

	require.Len(t, got.Contents, 1)
	require.Len(t, got.Contents[0].Parts, 2)
	assert.Equal(t, "読み取って", got.Contents[0].Parts[0].Text)
	require.NotNil(t, got.Contents[0].Parts[1].InlineData)
	assert.Equal(t, "aW1hZ2U=", got.Contents[0].Parts[1].InlineData.Data)
}

func TestComplete(t *testing.T) {
	var got request
	server := newTestServer(t, `{"type":"dm"}`, &got)
	defer server.Close()

	model := NewGeminiModel("test-key", "gemini-pro-vision")
	model.baseURL = server.URL

	text, err := model.Complete(context.Background(), "判定して", "読み取ったテキスト")
	require.NoError(t, err)
	assert.Equal(t, `{"type":"dm"}`, text)

	require.Len(t, got.Contents, 1)
	require.Len(t, got.Contents[0].Parts, 2)
	assert.Nil(t, got.Contents[0].Parts[1].InlineData)
}

func TestGenerateHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	model := NewGeminiModel("test-key", "gemini-pro-vision")
	model.baseURL = server.URL

	_, err := model.Complete(context.Background(), "a", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGenerateNoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	model := NewGeminiModel("test-key", "gemini-pro-vision")
	model.baseURL = server.URL

	_, err := model.Complete(context.Background(), "a", "b")
	assert.Error(t, err)
}
