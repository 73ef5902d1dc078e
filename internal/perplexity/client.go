package perplexity

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Bhavyaa-T/Quiz-result-analysis/internal/prompt"
)

// defaultBaseURL is the public Perplexity API base URL.
const defaultBaseURL = "https://api.perplexity.ai"

// DefaultTimeout bounds one completion request when the caller does
// not supply its own HTTP client.
const DefaultTimeout = 120 * time.Second

// HTTPDoer abstracts the HTTP client used for completion requests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Completer is the single-call surface the orchestrator depends on.
type Completer interface {
	CreateCompletion(ctx context.Context, doc prompt.Document) (Response, error)
}

// Client calls the Perplexity chat-completions endpoint. One request
// per call, no retries.
type Client struct {
	APIKey  string
	BaseURL string
	Client  HTTPDoer
}

// NewClient constructs a client. An empty baseURL selects the public
// API; a nil doer gets an http.Client bounded by timeout (zero
// disables the client-side timeout).
func NewClient(apiKey, baseURL string, timeout time.Duration, doer HTTPDoer) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, &AuthenticationError{Reason: "api key is required"}
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	if doer == nil {
		doer = &http.Client{Timeout: timeout}
	}
	return &Client{
		APIKey:  apiKey,
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  doer,
	}, nil
}

// CreateCompletion POSTs the document to /chat/completions and returns
// the raw response. 401 and 403 become AuthenticationError; any other
// failure becomes a row-scoped RequestError.
func (c *Client) CreateCompletion(ctx context.Context, doc prompt.Document) (Response, error) {
	payload, err := doc.Encode()
	if err != nil {
		return Response{}, fmt.Errorf("encode request: %w", err)
	}

	endpoint := c.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return Response{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return Response{}, &RequestError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, &RequestError{Err: fmt.Errorf("read response: %w", err)}
	}
	trimmed := strings.TrimSpace(string(body))
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return Response{}, &AuthenticationError{Reason: fmt.Sprintf("status %d: %s", resp.StatusCode, trimmed)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Response{}, &RequestError{Status: resp.StatusCode, Body: trimmed}
	}
	return parseResponse(body)
}
