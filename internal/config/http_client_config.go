package config

import "time"

// HTTPClientConfig configures the shared outbound HTTP client used for
// website probes, search queries and classifier calls.
type HTTPClientConfig struct {
	UserAgent          string            `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	TimeoutSecs        int               `json:"timeout_secs,omitempty" yaml:"timeout_secs,omitempty" validate:"omitempty,min=1"`
	FollowRedirects    bool              `json:"follow_redirects" yaml:"follow_redirects"`
	MaxRedirects       int               `json:"max_redirects,omitempty" yaml:"max_redirects,omitempty" validate:"omitempty,min=0"`
	InsecureSkipVerify bool              `json:"insecure_skip_verify" yaml:"insecure_skip_verify"`
	EnableHTTP2        bool              `json:"enable_http2" yaml:"enable_http2"`
	Proxy              string            `json:"proxy,omitempty" yaml:"proxy,omitempty" validate:"omitempty,url"`
	CustomHeaders      map[string]string `json:"custom_headers,omitempty" yaml:"custom_headers,omitempty"`
}

// NewDefaultHTTPClientConfig creates default HTTP client configuration
func NewDefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		UserAgent:       DefaultHTTPUserAgent,
		TimeoutSecs:     DefaultHTTPTimeoutSecs,
		FollowRedirects: DefaultHTTPFollowRedirects,
		MaxRedirects:    DefaultHTTPMaxRedirects,
		EnableHTTP2:     DefaultHTTPEnableHTTP2,
		CustomHeaders:   make(map[string]string),
	}
}

// Timeout returns the request timeout as a duration.
func (c HTTPClientConfig) Timeout() time.Duration {
	return secondsToDuration(c.TimeoutSecs, DefaultHTTPTimeoutSecs)
}
