// Package relayclient talks to the relay's HTTP surface on behalf of the
// summarize screen.
package relayclient

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

	"github.com/csheth/tldr/internal/session"
)

const defaultTimeout = 3 * time.Minute

// ErrStatus is wrapped by errors for non-2xx relay responses.
var ErrStatus = errors.New("relay returned an error status")

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// Client posts summarization requests to the relay.
type Client struct {
	base string
	http *http.Client
}

// New returns a client rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type params struct {
	Message    string `json:"message"`
	Context    string `json:"context"`
	VocabLevel string `json:"vocabLevel"`
}

type envelope struct {
	Params []params `json:"params"`
}

// Summarize sends req and returns the plain-text summary.
func (c *Client) Summarize(ctx context.Context, req session.Request) (string, error) {
	buf, err := json.Marshal(envelope{Params: []params{{
		Message:    req.Message,
		Context:    req.Context,
		VocabLevel: req.VocabLevel,
	}}})
	if err != nil {
		return "", err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/summarize", bytes.NewReader(buf))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	return c.do(httpReq)
}

// Ping checks the relay's liveness route.
func (c *Client) Ping(ctx context.Context) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/", nil)
	if err != nil {
		return "", err
	}
	return c.do(httpReq)
}

func (c *Client) do(req *http.Request) (string, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("relay request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read relay response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s (%s)", ErrStatus, resp.Status, strings.TrimSpace(string(body)))
	}
	return string(body), nil
}
