package openai

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeImage(t *testing.T) {
	var got map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		require.NoError(t, jsoniter.Unmarshal(body, &got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"x","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":" 이마트\n합계 5,000 "}}]}`)
	}))
	defer srv.Close()

	client, err := NewChatGPT("test-key", "", srv.URL)
	require.NoError(t, err)

	text, err := client.AnalyzeImage(context.Background(), []byte("\x89PNG\r\n\x1a\n0000"), "transcribe")
	require.NoError(t, err)
	assert.Equal(t, "이마트\n합계 5,000", text)

	assert.Equal(t, "gpt-4o-mini", got["model"])
	messages := got["messages"].([]interface{})
	parts := messages[0].(map[string]interface{})["content"].([]interface{})
	require.Len(t, parts, 2)
	imageURL := parts[1].(map[string]interface{})["image_url"].(map[string]interface{})["url"].(string)
	assert.Contains(t, imageURL, "data:image/png;base64,")
}

func TestNewChatGPTRequiresKey(t *testing.T) {
	_, err := NewChatGPT("", "", "")
	assert.Error(t, err)
}
