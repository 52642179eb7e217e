package google_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/identitykit/aadhaar-extract/pkg/provider"
	"github.com/identitykit/aadhaar-extract/pkg/provider/google"

	"github.com/stretchr/testify/require"
)

// rewriteTransport redirects every request to the local test server,
// keeping path, query and headers intact.
type rewriteTransport struct {
	target *url.URL
}

func (t rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = t.target.Scheme
	req.URL.Host = t.target.Host

	return http.DefaultTransport.RoundTrip(req)
}

func fakeGemini(t *testing.T, handler http.HandlerFunc) *http.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	target, err := url.Parse(server.URL)
	require.NoError(t, err)

	return &http.Client{
		Transport: rewriteTransport{target: target},
	}
}

const generateContentReply = `{
	"candidates": [
		{
			"content": {
				"role": "model",
				"parts": [{"text": "{\"name\": \"Ravi Kumar\"}"}]
			},
			"finishReason": "STOP"
		}
	],
	"usageMetadata": {"promptTokenCount": 12, "candidatesTokenCount": 7}
}`

func TestComplete(t *testing.T) {
	var (
		requestPath string
		requestKey  string
		requestBody string
	)

	client := fakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		requestPath = r.URL.Path
		requestBody = string(body)

		requestKey = r.Header.Get("x-goog-api-key")

		if requestKey == "" {
			requestKey = r.URL.Query().Get("key")
		}

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, generateContentReply)
	})

	completer, err := google.NewCompleter("gemini-1.5-flash",
		google.WithToken("test-key"),
		google.WithClient(client),
	)
	require.NoError(t, err)

	messages := []provider.Message{
		{
			Role:    provider.MessageRoleSystem,
			Content: []provider.Content{provider.TextContent("You extract identity fields.")},
		},
		{
			Role: provider.MessageRoleUser,
			Content: []provider.Content{
				provider.TextContent("Analyze this card."),
				provider.FileContent(&provider.File{
					Name:        "page.png",
					Content:     []byte("png-bytes"),
					ContentType: "image/png",
				}),
			},
		},
	}

	completion, err := completer.Complete(context.Background(), messages, nil)
	require.NoError(t, err)

	require.Contains(t, requestPath, "gemini-1.5-flash")
	require.Equal(t, "test-key", requestKey)

	require.Contains(t, requestBody, "You extract identity fields.")
	require.Contains(t, requestBody, "Analyze this card.")
	require.Contains(t, requestBody, "image/png")
	require.Contains(t, requestBody, "cG5nLWJ5dGVz")

	require.NotEmpty(t, completion.ID)
	require.Equal(t, "gemini-1.5-flash", completion.Model)

	require.NotNil(t, completion.Message)
	require.Equal(t, provider.MessageRoleAssistant, completion.Message.Role)
	require.Equal(t, `{"name": "Ravi Kumar"}`, completion.Message.Text())

	require.NotNil(t, completion.Usage)
	require.Equal(t, 12, completion.Usage.InputTokens)
	require.Equal(t, 7, completion.Usage.OutputTokens)
}

func TestCompleteOptions(t *testing.T) {
	var requestBody string

	client := fakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		requestBody = string(body)

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, generateContentReply)
	})

	completer, err := google.NewCompleter("gemini-1.5-flash",
		google.WithToken("test-key"),
		google.WithClient(client),
	)
	require.NoError(t, err)

	maxTokens := 1024

	_, err = completer.Complete(context.Background(), []provider.Message{provider.UserMessage("hello")}, &provider.CompleteOptions{
		MaxTokens: &maxTokens,
	})
	require.NoError(t, err)

	require.Contains(t, requestBody, "hello")
	require.Contains(t, requestBody, "1024")
	require.False(t, strings.Contains(requestBody, "systemInstruction"))
}

func TestCompleteUpstreamError(t *testing.T) {
	client := fakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)

		io.WriteString(w, `{"error": {"code": 401, "message": "API key not valid", "status": "UNAUTHENTICATED"}}`)
	})

	completer, err := google.NewCompleter("gemini-1.5-flash",
		google.WithToken("bad-key"),
		google.WithClient(client),
	)
	require.NoError(t, err)

	_, err = completer.Complete(context.Background(), []provider.Message{provider.UserMessage("hello")}, nil)
	require.Error(t, err)
}
