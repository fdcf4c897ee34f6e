// Package backend implements the HTTP contract of the chat backend.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/longkey1/chatc/internal/chatc"
)

// maxErrorBody bounds how much of a failed response is kept for diagnostics
const maxErrorBody = 512

// Config defines the configuration interface for the backend client
type Config interface {
	ChatURL() string
	HealthURL() string
	Timeout() time.Duration
}

// HealthStatus represents the response of the health endpoint
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// OK reports whether the backend declared itself healthy
func (h *HealthStatus) OK() bool {
	return strings.EqualFold(h.Status, "ok")
}

// chatResponse mirrors chatc.ChatResponse with a nullable answer so a
// missing field can be told apart from an empty one
type chatResponse struct {
	Answer  *string `json:"answer"`
	Context any     `json:"context"`
}

// Client implements chatc.Requester over HTTP
type Client struct {
	config     Config
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewClient creates a new backend client instance
func NewClient(config Config, opts ...Option) *Client {
	c := &Client{
		config:     config,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SubmitRequest posts req to the chat endpoint and returns the decoded reply
func (c *Client) SubmitRequest(ctx context.Context, req chatc.ChatRequest) (*chatc.ChatResponse, error) {
	jsonData, err := encodeBody(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.ChatURL(), bytes.NewReader(jsonData))
	if err != nil {
		return nil, newError(KindNetwork, 0, fmt.Errorf("error creating request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	body, err := c.do(httpReq)
	if err != nil {
		return nil, err
	}

	var result chatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, newError(KindDecode, 0, fmt.Errorf("error parsing response: %w", err))
	}
	if result.Answer == nil {
		return nil, newError(KindDecode, 0, errors.New("no answer in response"))
	}

	return &chatc.ChatResponse{
		Answer:  *result.Answer,
		Context: result.Context,
	}, nil
}

// Health queries the health endpoint
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.HealthURL(), nil)
	if err != nil {
		return nil, newError(KindNetwork, 0, fmt.Errorf("error creating request: %w", err))
	}
	httpReq.Header.Set("Accept", "application/json")

	body, err := c.do(httpReq)
	if err != nil {
		return nil, err
	}

	var status HealthStatus
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, newError(KindDecode, 0, fmt.Errorf("error parsing response: %w", err))
	}
	return &status, nil
}

// do sends the request and returns the body of a 2xx response
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newError(KindNetwork, 0, fmt.Errorf("error sending request: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newError(KindNetwork, resp.StatusCode, fmt.Errorf("error reading response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var detail error
		if text := strings.TrimSpace(string(body)); text != "" {
			detail = errors.New(truncate(text, maxErrorBody))
		}
		return nil, newError(KindStatus, resp.StatusCode, detail)
	}

	return body, nil
}

func encodeBody(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, newError(KindDecode, 0, fmt.Errorf("error marshaling request: %w", err))
	}
	return data, nil
}

// truncate cuts text to at most n bytes without splitting a rune
func truncate(text string, n int) string {
	if len(text) <= n {
		return text
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if timeout := c.config.Timeout(); timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return context.WithCancel(ctx)
}
