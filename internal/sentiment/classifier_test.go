package sentiment

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aleister1102/offerguard/internal/common/errorwrapper"
	"github.com/aleister1102/offerguard/internal/httpclient"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *httpclient.HTTPClient {
	t.Helper()
	client, err := httpclient.NewHTTPClientBuilder(zerolog.Nop()).Build()
	require.NoError(t, err)
	return client
}

func TestHuggingFaceClassifier_NestedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer hf-token", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"inputs":"nice offer"}`, string(body))
		_, _ = w.Write([]byte(`[[{"label":"NEGATIVE","score":0.1},{"label":"POSITIVE","score":0.9}]]`))
	}))
	defer server.Close()

	c := NewHuggingFaceClassifier(newTestClient(t), server.URL, "hf-token", zerolog.Nop())
	label, score, err := c.Classify(context.Background(), "nice offer")

	require.NoError(t, err)
	assert.Equal(t, "POSITIVE", label)
	assert.Equal(t, 0.9, score)
}

func TestHuggingFaceClassifier_FlatResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[{"label":"NEGATIVE","score":0.75}]`))
	}))
	defer server.Close()

	c := NewHuggingFaceClassifier(newTestClient(t), server.URL, "", zerolog.Nop())
	label, score, err := c.Classify(context.Background(), "pay upfront")

	require.NoError(t, err)
	assert.Equal(t, "NEGATIVE", label)
	assert.Equal(t, 0.75, score)
}

func TestHuggingFaceClassifier_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":"bad token"}`, errorwrapper.ErrQuotaExceeded},
		{"rate limited", http.StatusTooManyRequests, `{}`, errorwrapper.ErrQuotaExceeded},
		{"model loading", http.StatusServiceUnavailable, `{"error":"loading"}`, errorwrapper.ErrServiceUnavailable},
		{"empty labels", http.StatusOK, `[[]]`, errorwrapper.ErrServiceUnavailable},
		{"unexpected shape", http.StatusOK, `{"label":"POSITIVE"}`, errorwrapper.ErrServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := NewHuggingFaceClassifier(newTestClient(t), server.URL, "", zerolog.Nop())
			_, _, err := c.Classify(context.Background(), "text")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}
