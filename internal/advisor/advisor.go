// Package advisor produces AI-generated action suggestions and check-in
// summaries by delegating to an OpenRouter-compatible chat completion
// endpoint. Advisory content is best effort: every failure path degrades to
// fixed fallback content and is never surfaced to callers as an error.
package advisor

import (
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://openrouter.ai"
	DefaultModel   = "openai/gpt-4o-mini"
	DefaultTimeout = 60 * time.Second
)

// Config carries everything the client needs; nothing is read from process
// environment inside this package. An empty APIKey is valid and makes every
// call short-circuit to fallback content without network I/O.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration

	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
}

type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewClient(config Config) *Client {
	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := config.Model
	if model == "" {
		model = DefaultModel
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		apiKey:     strings.TrimSpace(config.APIKey),
		baseURL:    baseURL,
		model:      model,
		httpClient: httpClient,
	}
}
