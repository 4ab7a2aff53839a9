package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// APIKeyEnv is the environment variable the Anthropic lister reads its
// credential from.
const APIKeyEnv = "ANTHROPIC_API_KEY"

// AnthropicLister implements ModelLister using the official Anthropic SDK.
type AnthropicLister struct {
	client     anthropic.Client
	maxRetries int
}

// Compile-time check that AnthropicLister satisfies the ModelLister interface.
var _ ModelLister = (*AnthropicLister)(nil)

// AnthropicOption configures an AnthropicLister.
type AnthropicOption func(*anthropicConfig)

type anthropicConfig struct {
	apiKey     string
	baseURL    string
	maxRetries int
	httpClient *http.Client
}

// WithAPIKey sets the API key. If not provided, the lister reads
// ANTHROPIC_API_KEY from the environment.
func WithAPIKey(key string) AnthropicOption {
	return func(c *anthropicConfig) {
		c.apiKey = key
	}
}

// WithBaseURL points the client at a different API host.
func WithBaseURL(url string) AnthropicOption {
	return func(c *anthropicConfig) {
		c.baseURL = url
	}
}

// WithMaxRetries overrides the SDK's retry count for transient errors.
// A negative value keeps the SDK default.
func WithMaxRetries(n int) AnthropicOption {
	return func(c *anthropicConfig) {
		c.maxRetries = n
	}
}

// WithHTTPClient sets the HTTP client used for API requests.
func WithHTTPClient(hc *http.Client) AnthropicOption {
	return func(c *anthropicConfig) {
		c.httpClient = hc
	}
}

// NewAnthropicLister creates a new Anthropic model lister.
// It returns an error if no API key is available (neither via option nor env).
func NewAnthropicLister(opts ...AnthropicOption) (*AnthropicLister, error) {
	cfg := anthropicConfig{maxRetries: -1}
	for _, o := range opts {
		o(&cfg)
	}

	apiKey := cfg.apiKey
	if apiKey == "" {
		apiKey = os.Getenv(APIKeyEnv)
	}
	if apiKey == "" {
		return nil, errors.New("llm: " + APIKeyEnv + " not set and no API key provided")
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if cfg.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.baseURL))
	}
	if cfg.maxRetries >= 0 {
		clientOpts = append(clientOpts, option.WithMaxRetries(cfg.maxRetries))
	}
	if cfg.httpClient != nil {
		clientOpts = append(clientOpts, option.WithHTTPClient(cfg.httpClient))
	}

	return &AnthropicLister{
		client:     anthropic.NewClient(clientOpts...),
		maxRetries: cfg.maxRetries,
	}, nil
}

// ListModels issues a single GET /v1/models request with no cursor or limit
// and returns the first page of results.
func (l *AnthropicLister) ListModels(ctx context.Context) ([]Model, error) {
	slog.Debug("listing models", "provider", "anthropic")

	page, err := l.client.Models.List(ctx, anthropic.ModelListParams{})
	if err != nil {
		return nil, fmt.Errorf("anthropic: list models failed: %w", err)
	}

	models := make([]Model, 0, len(page.Data))
	for _, m := range page.Data {
		models = append(models, Model{
			ID:          m.ID,
			DisplayName: m.DisplayName,
			CreatedAt:   m.CreatedAt,
		})
	}

	slog.Debug("models listed", "provider", "anthropic", "count", len(models), "has_more", page.HasMore)
	return models, nil
}

// MaxRetries returns the configured retry override, or -1 for the SDK default.
func (l *AnthropicLister) MaxRetries() int {
	return l.maxRetries
}
