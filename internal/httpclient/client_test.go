package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aleister1102/offerguard/internal/common/errorwrapper"
	"github.com/aleister1102/offerguard/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_Do(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-value", r.Header.Get("X-Test-Header"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	client, err := NewHTTPClientBuilder(zerolog.Nop()).WithUserAgent("test-agent").Build()
	require.NoError(t, err)

	resp, err := client.Do(&HTTPRequest{
		URL:     server.URL,
		Method:  "GET",
		Headers: map[string]string{"X-Test-Header": "test-value"},
	})
	require.NoError(t, err)

	assert.True(t, resp.IsSuccess())
	assert.Equal(t, `{"status":"ok"}`, string(resp.Body))
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
}

func TestHTTPClient_Redirects(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/redirect" {
			http.Redirect(w, r, "/final", http.StatusFound)
			return
		}
		fmt.Fprint(w, "ok")
	}))
	defer ts.Close()

	follow, err := NewHTTPClientBuilder(zerolog.Nop()).WithFollowRedirects(true).Build()
	require.NoError(t, err)
	resp, err := follow.Head(context.Background(), ts.URL+"/redirect")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasSuffix(resp.FinalURL, "/final"))

	noFollow, err := NewHTTPClientBuilder(zerolog.Nop()).WithFollowRedirects(false).Build()
	require.NoError(t, err)
	resp, err = noFollow.Head(context.Background(), ts.URL+"/redirect")
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

func TestHTTPClient_MaxContentSize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, strings.Repeat("a", 100))
	}))
	defer server.Close()

	client, err := NewHTTPClientBuilder(zerolog.Nop()).WithMaxContentSize(10).Build()
	require.NoError(t, err)

	resp, err := client.Do(&HTTPRequest{URL: server.URL, Method: "GET"})
	require.NoError(t, err)
	assert.Len(t, resp.Body, 10)
}

func TestHTTPClient_PostJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"inputs":"hello"}`, string(body))
		_, _ = w.Write([]byte(`{"received":true}`))
	}))
	defer server.Close()

	client, err := NewHTTPClientBuilder(zerolog.Nop()).Build()
	require.NoError(t, err)

	var out struct {
		Received bool `json:"received"`
	}
	err = client.PostJSON(context.Background(), server.URL, map[string]string{"Authorization": "Bearer token"}, map[string]string{"inputs": "hello"}, &out)
	require.NoError(t, err)
	assert.True(t, out.Received)
}

func TestHTTPClient_GetJSON_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"quota"}`))
	}))
	defer server.Close()

	client, err := NewHTTPClientBuilder(zerolog.Nop()).Build()
	require.NoError(t, err)

	err = client.GetJSON(context.Background(), server.URL+"?key=secret", nil, &struct{}{})
	require.Error(t, err)

	var httpErr *errorwrapper.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusTooManyRequests, httpErr.StatusCode)
	assert.NotContains(t, err.Error(), "secret")
}

func TestHTTPClient_ClassifiesTLSFailure(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	client, err := NewHTTPClientBuilder(zerolog.Nop()).Build()
	require.NoError(t, err)

	_, err = client.Head(context.Background(), server.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errorwrapper.ErrTLSFailure))

	insecure, err := NewHTTPClientBuilder(zerolog.Nop()).WithInsecureSkipVerify(true).Build()
	require.NoError(t, err)
	resp, err := insecure.Head(context.Background(), server.URL)
	require.NoError(t, err)
	assert.True(t, resp.IsSuccess())
}

func TestHTTPClient_ClassifiesTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client, err := NewHTTPClientBuilder(zerolog.Nop()).WithTimeout(50 * time.Millisecond).Build()
	require.NoError(t, err)

	_, err = client.Head(context.Background(), server.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errorwrapper.ErrTimeout))
}

func TestHTTPClient_ClassifiesConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := server.URL
	server.Close()

	client, err := NewHTTPClientBuilder(zerolog.Nop()).Build()
	require.NoError(t, err)

	_, err = client.Head(context.Background(), addr)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errorwrapper.ErrNetworkFailure))
	assert.True(t, errorwrapper.IsTransient(err))
}

func TestConfigFromGlobal(t *testing.T) {
	global := config.NewDefaultHTTPClientConfig()
	global.TimeoutSecs = 3
	global.UserAgent = "offerguard-test"
	global.CustomHeaders["X-Extra"] = "1"

	cfg := ConfigFromGlobal(global)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "offerguard-test", cfg.UserAgent)
	assert.Equal(t, "1", cfg.CustomHeaders["X-Extra"])
	assert.Equal(t, "en-US,en;q=0.9", cfg.CustomHeaders["Accept-Language"])
}
