// Package search queries the Google Custom Search JSON API on behalf of
// company verification.
package search

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/aleister1102/offerguard/internal/common/errorwrapper"
	"github.com/aleister1102/offerguard/internal/config"
	"github.com/aleister1102/offerguard/internal/httpclient"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Result is a single search hit.
type Result struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Snippet     string `json:"snippet"`
	DisplayLink string `json:"displayLink"`
}

// SearchClient runs web searches. num is the maximum number of results wanted.
type SearchClient interface {
	Search(ctx context.Context, query string, num int) ([]Result, error)
}

type cseResponse struct {
	Items []Result `json:"items"`
}

// GoogleClient is a rate-limited Custom Search JSON API client. It is safe for
// concurrent use.
type GoogleClient struct {
	httpClient      *httpclient.HTTPClient
	endpoint        string
	apiKey          string
	engineID        string
	resultsPerQuery int
	limiter         *rate.Limiter
	logger          zerolog.Logger
}

// GoogleClientBuilder builds a GoogleClient with fluent interface
type GoogleClientBuilder struct {
	cfg        config.SearchConfig
	httpClient *httpclient.HTTPClient
	logger     zerolog.Logger
}

// NewGoogleClientBuilder creates a builder seeded with the default search section.
func NewGoogleClientBuilder(logger zerolog.Logger) *GoogleClientBuilder {
	return &GoogleClientBuilder{
		cfg:    config.NewDefaultSearchConfig(),
		logger: logger,
	}
}

// WithConfig sets the search configuration
func (b *GoogleClientBuilder) WithConfig(cfg config.SearchConfig) *GoogleClientBuilder {
	b.cfg = cfg
	return b
}

// WithHTTPClient sets the HTTP client used for API calls
func (b *GoogleClientBuilder) WithHTTPClient(client *httpclient.HTTPClient) *GoogleClientBuilder {
	b.httpClient = client
	return b
}

// Build creates the client. It fails when credentials are missing.
func (b *GoogleClientBuilder) Build() (*GoogleClient, error) {
	if !b.cfg.Enabled() {
		return nil, errorwrapper.NewConfigurationError("search_config", "api_key", "search API key and engine id are required")
	}
	if b.httpClient == nil {
		return nil, errorwrapper.NewConfigurationError("search_config", "", "http client is required")
	}

	endpoint := b.cfg.Endpoint
	if endpoint == "" {
		endpoint = config.DefaultSearchEndpoint
	}
	perQuery := b.cfg.ResultsPerQuery
	if perQuery <= 0 {
		perQuery = config.DefaultSearchResultsPerQuery
	}
	rps := b.cfg.RequestsPerSecond
	if rps <= 0 {
		rps = config.DefaultSearchRequestsPerSecond
	}
	burst := b.cfg.Burst
	if burst <= 0 {
		burst = config.DefaultSearchBurst
	}

	return &GoogleClient{
		httpClient:      b.httpClient,
		endpoint:        endpoint,
		apiKey:          b.cfg.APIKey,
		engineID:        b.cfg.EngineID,
		resultsPerQuery: perQuery,
		limiter:         rate.NewLimiter(rate.Limit(rps), burst),
		logger:          b.logger.With().Str("component", "GoogleSearch").Logger(),
	}, nil
}

// Search runs query and returns at most num results (the configured default
// when num <= 0). HTTP 403 and 429 map to ErrQuotaExceeded.
func (c *GoogleClient) Search(ctx context.Context, query string, num int) ([]Result, error) {
	if num <= 0 {
		num = c.resultsPerQuery
	}
	if num > 10 {
		num = 10
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errorwrapper.WrapError(errorwrapper.ErrTimeout, "search rate limiter: "+err.Error())
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("key", c.apiKey)
	params.Set("cx", c.engineID)
	params.Set("num", strconv.Itoa(num))

	var resp cseResponse
	if err := c.httpClient.GetJSON(ctx, c.endpoint+"?"+params.Encode(), nil, &resp); err != nil {
		return nil, classifyStatus(err)
	}

	c.logger.Debug().Str("query", query).Int("results", len(resp.Items)).Msg("Search completed")
	return resp.Items, nil
}

func classifyStatus(err error) error {
	var httpErr *errorwrapper.HTTPError
	if !errors.As(err, &httpErr) {
		return err
	}
	switch httpErr.StatusCode {
	case http.StatusForbidden, http.StatusTooManyRequests:
		return errorwrapper.WrapError(errorwrapper.ErrQuotaExceeded, err.Error())
	case http.StatusBadRequest:
		return errorwrapper.NewValidationError("q", "", httpErr.Message)
	}
	return err
}
