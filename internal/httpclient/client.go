package httpclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"

	"github.com/aleister1102/offerguard/internal/common/errorwrapper"
	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
)

// HTTPClient wraps net/http.Client with shared headers, bounded reads and
// error classification.
type HTTPClient struct {
	client *http.Client
	config HTTPClientConfig
	logger zerolog.Logger
}

// NewHTTPClient creates a new HTTP client with the given configuration using net/http
func NewHTTPClient(config HTTPClientConfig, logger zerolog.Logger) (*HTTPClient, error) {
	transport := &http.Transport{
		MaxIdleConns:        config.MaxIdleConns,
		MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
		IdleConnTimeout:     config.IdleConnTimeout,
		TLSHandshakeTimeout: config.TLSHandshakeTimeout,
		DialContext: (&net.Dialer{
			Timeout:   config.DialTimeout,
			KeepAlive: config.KeepAlive,
		}).DialContext,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: config.InsecureSkipVerify,
		},
	}

	if config.EnableHTTP2 {
		if err := http2.ConfigureTransport(transport); err != nil {
			logger.Warn().Err(err).Msg("Failed to configure HTTP/2, falling back to HTTP/1.1")
		}
	}

	if config.Proxy != "" {
		proxyURL, err := url.Parse(config.Proxy)
		if err != nil {
			return nil, errorwrapper.WrapError(err, "failed to parse proxy URL")
		}
		transport.Proxy = http.ProxyURL(proxyURL)
		logger.Info().Str("proxy", config.Proxy).Msg("HTTP client configured with proxy")
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   config.Timeout,
	}

	if !config.FollowRedirects {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	} else if config.MaxRedirects > 0 {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			if len(via) >= config.MaxRedirects {
				return fmt.Errorf("stopped after %d redirects", config.MaxRedirects)
			}
			return nil
		}
	}

	logger.Debug().
		Dur("timeout", config.Timeout).
		Bool("insecure_skip_verify", config.InsecureSkipVerify).
		Bool("follow_redirects", config.FollowRedirects).
		Int("max_redirects", config.MaxRedirects).
		Bool("http2_enabled", config.EnableHTTP2).
		Msg("HTTP client created")

	return &HTTPClient{
		client: client,
		config: config,
		logger: logger,
	}, nil
}

// Do performs a single HTTP request. Transport failures come back classified
// as ErrTimeout, ErrTLSFailure or ErrNetworkFailure inside a NetworkError.
func (c *HTTPClient) Do(req *HTTPRequest) (*HTTPResponse, error) {
	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, req.Body)
	if err != nil {
		return nil, errorwrapper.NewNetworkError(req.URL, "failed to create HTTP request", errorwrapper.ErrMalformedURL)
	}

	for key, value := range c.config.CustomHeaders {
		httpReq.Header.Set(key, value)
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
	if c.config.UserAgent != "" && httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", c.config.UserAgent)
	}
	if httpReq.Header.Get("Accept") == "" {
		httpReq.Header.Set("Accept", "*/*")
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, errorwrapper.NewNetworkError(req.URL, "HTTP request failed", ClassifyError(err))
	}
	defer resp.Body.Close()

	var reader io.Reader = resp.Body
	if c.config.MaxContentSize > 0 {
		reader = io.LimitReader(resp.Body, c.config.MaxContentSize)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, errorwrapper.NewNetworkError(req.URL, "failed to read response body", ClassifyError(err))
	}

	httpResp := &HTTPResponse{
		StatusCode: resp.StatusCode,
		Headers:    make(map[string]string, len(resp.Header)),
		Body:       buf.Bytes(),
		FinalURL:   resp.Request.URL.String(),
	}
	for key, values := range resp.Header {
		if len(values) > 0 {
			httpResp.Headers[key] = values[0]
		}
	}

	return httpResp, nil
}

// Head issues a HEAD request and follows redirects according to the client configuration.
func (c *HTTPClient) Head(ctx context.Context, rawURL string) (*HTTPResponse, error) {
	return c.Do(&HTTPRequest{URL: rawURL, Method: http.MethodHead, Context: ctx})
}

// GetJSON performs a GET and decodes a 2xx JSON body into out. Non-2xx
// responses return an HTTPError carrying the status code.
func (c *HTTPClient) GetJSON(ctx context.Context, rawURL string, headers map[string]string, out any) error {
	return c.doJSON(ctx, http.MethodGet, rawURL, headers, nil, out)
}

// PostJSON encodes in as the request body and decodes a 2xx JSON response into out.
func (c *HTTPClient) PostJSON(ctx context.Context, rawURL string, headers map[string]string, in, out any) error {
	return c.doJSON(ctx, http.MethodPost, rawURL, headers, in, out)
}

func (c *HTTPClient) doJSON(ctx context.Context, method, rawURL string, headers map[string]string, in, out any) error {
	req := &HTTPRequest{
		URL:     rawURL,
		Method:  method,
		Headers: map[string]string{"Accept": "application/json"},
		Context: ctx,
	}
	for k, v := range headers {
		req.Headers[k] = v
	}

	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return errorwrapper.WrapError(err, "failed to encode request body")
		}
		req.Body = bytes.NewReader(payload)
		req.Headers["Content-Type"] = "application/json"
	}

	resp, err := c.Do(req)
	if err != nil {
		return err
	}

	if !resp.IsSuccess() {
		body := resp.Body
		if len(body) > 512 {
			body = body[:512]
		}
		c.logger.Debug().Str("url", redactQuery(rawURL)).Int("status_code", resp.StatusCode).Msg("Non-success JSON response")
		return errorwrapper.NewHTTPErrorWithURL(resp.StatusCode, string(body), redactQuery(rawURL))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return errorwrapper.WrapError(err, "failed to decode response body")
	}
	return nil
}

// redactQuery strips the query string so API keys never reach logs or errors.
func redactQuery(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.RawQuery = ""
	return u.String()
}
