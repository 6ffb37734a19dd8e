package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const DefaultBaseURL = "https://toolkit.rork.com/text/llm/"

// ErrSuggestionFailed is the single user-facing failure for every completion
// error. The underlying cause stays available through errors.Unwrap chains.
var ErrSuggestionFailed = errors.New("Failed to get AI suggestion. Please try again.")

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Messages []Message `json:"messages"`
}

type completionResponse struct {
	Completion *string `json:"completion"`
}

// Client posts role-tagged messages to a completion endpoint. A nil
// HTTPClient uses http.DefaultClient, which has no timeout.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	out, err := c.complete(ctx, messages)
	if err != nil {
		return "", &suggestionError{cause: err}
	}
	return out, nil
}

func (c *Client) complete(ctx context.Context, messages []Message) (string, error) {
	baseURL := strings.TrimSpace(c.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	payload, err := json.Marshal(completionRequest{Messages: messages})
	if err != nil {
		return "", fmt.Errorf("marshal completion payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute completion request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read completion response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("completion request failed with status %d", resp.StatusCode)
	}

	var parsed completionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if parsed.Completion == nil {
		return "", fmt.Errorf("completion response has no completion field")
	}
	return *parsed.Completion, nil
}

type suggestionError struct {
	cause error
}

func (e *suggestionError) Error() string {
	return ErrSuggestionFailed.Error()
}

func (e *suggestionError) Unwrap() []error {
	return []error{ErrSuggestionFailed, e.cause}
}

// Cause returns the underlying failure behind a suggestion error, for logging.
func Cause(err error) error {
	var se *suggestionError
	if errors.As(err, &se) {
		return se.cause
	}
	return err
}
