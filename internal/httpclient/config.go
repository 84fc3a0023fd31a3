package httpclient

import (
	"time"

	"github.com/aleister1102/offerguard/internal/config"
)

// HTTPClientConfig holds configuration for HTTP clients
type HTTPClientConfig struct {
	Timeout             time.Duration     // Request timeout
	InsecureSkipVerify  bool              // Skip TLS verification
	FollowRedirects     bool              // Whether to follow redirects
	MaxRedirects        int               // Maximum number of redirects to follow
	Proxy               string            // Proxy URL
	UserAgent           string            // User-Agent sent on every request
	CustomHeaders       map[string]string // Custom headers to add to all requests
	MaxContentSize      int64             // Response bodies are truncated past this many bytes (0 for no limit)
	MaxIdleConns        int               // Maximum idle connections
	MaxIdleConnsPerHost int               // Maximum idle connections per host
	IdleConnTimeout     time.Duration     // Idle connection timeout
	TLSHandshakeTimeout time.Duration     // TLS handshake timeout
	DialTimeout         time.Duration     // Connection dial timeout
	KeepAlive           time.Duration     // Keep-alive duration
	EnableHTTP2         bool              // Enable HTTP/2 support
}

// DefaultHTTPClientConfig returns the default HTTP client configuration.
// TLS verification stays on so certificate problems surface as probe failures.
func DefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		Timeout:             10 * time.Second,
		InsecureSkipVerify:  false,
		FollowRedirects:     true,
		MaxRedirects:        10,
		UserAgent:           config.DefaultHTTPUserAgent,
		MaxContentSize:      2 * 1024 * 1024,
		MaxIdleConns:        50,
		MaxIdleConnsPerHost: 5,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		DialTimeout:         10 * time.Second,
		KeepAlive:           30 * time.Second,
		EnableHTTP2:         true,
		CustomHeaders: map[string]string{
			"Accept-Language": "en-US,en;q=0.9",
		},
	}
}

// ConfigFromGlobal maps the file-level section onto a client configuration.
func ConfigFromGlobal(cfg config.HTTPClientConfig) HTTPClientConfig {
	out := DefaultHTTPClientConfig()
	out.Timeout = cfg.Timeout()
	out.InsecureSkipVerify = cfg.InsecureSkipVerify
	out.FollowRedirects = cfg.FollowRedirects
	out.MaxRedirects = cfg.MaxRedirects
	out.Proxy = cfg.Proxy
	out.EnableHTTP2 = cfg.EnableHTTP2
	if cfg.UserAgent != "" {
		out.UserAgent = cfg.UserAgent
	}
	for k, v := range cfg.CustomHeaders {
		out.CustomHeaders[k] = v
	}
	return out
}
