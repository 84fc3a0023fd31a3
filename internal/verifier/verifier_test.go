package verifier

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/aleister1102/offerguard/internal/common/errorwrapper"
	"github.com/aleister1102/offerguard/internal/httpclient"
	"github.com/aleister1102/offerguard/internal/models"
	"github.com/aleister1102/offerguard/internal/search"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMatcher struct {
	names []string
	panic bool
}

func (m fakeMatcher) Contains(name string) bool {
	if m.panic {
		panic("list corrupted")
	}
	for _, n := range m.names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

type fakeProber struct {
	mu     sync.Mutex
	status int
	err    error
	urls   []string
}

func (p *fakeProber) Head(_ context.Context, rawURL string) (*httpclient.HTTPResponse, error) {
	p.mu.Lock()
	p.urls = append(p.urls, rawURL)
	p.mu.Unlock()
	if p.err != nil {
		return nil, p.err
	}
	return &httpclient.HTTPResponse{StatusCode: p.status, FinalURL: rawURL}, nil
}

type fakeSearch struct {
	mu      sync.Mutex
	respond func(query string) ([]search.Result, error)
	queries []string
}

func (s *fakeSearch) Search(_ context.Context, query string, _ int) ([]search.Result, error) {
	s.mu.Lock()
	s.queries = append(s.queries, query)
	s.mu.Unlock()
	return s.respond(query)
}

func (s *fakeSearch) queriesContaining(sub string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, q := range s.queries {
		if strings.Contains(q, sub) {
			out = append(out, q)
		}
	}
	return out
}

func newVerifier(t *testing.T, matcher CompanyMatcher, prober WebsiteProber, sc search.SearchClient) *Verifier {
	t.Helper()
	b := NewVerifierBuilder(zerolog.Nop()).WithCompanyMatcher(matcher).WithWebsiteProber(prober)
	if sc != nil {
		b = b.WithSearchClient(sc)
	}
	v, err := b.Build()
	require.NoError(t, err)
	return v
}

func TestVerifierBuilder_RequiresDependencies(t *testing.T) {
	_, err := NewVerifierBuilder(zerolog.Nop()).WithWebsiteProber(&fakeProber{}).Build()
	assert.True(t, errors.Is(err, errorwrapper.ErrInvalidConfiguration))

	_, err = NewVerifierBuilder(zerolog.Nop()).WithCompanyMatcher(fakeMatcher{}).Build()
	assert.True(t, errors.Is(err, errorwrapper.ErrInvalidConfiguration))
}

func TestVerifyCompany_KnownCompanyWithWebsite(t *testing.T) {
	prober := &fakeProber{status: http.StatusOK}
	v := newVerifier(t, fakeMatcher{names: []string{"Google"}}, prober, nil)

	r := v.VerifyCompany(context.Background(), "Google", "careers.google.com")

	assert.Equal(t, 1.0, r.SafetyScore)
	assert.Equal(t, models.StatusSafe, r.VerificationStatus)
	assert.Equal(t, []string{CheckScamReports, CheckWebsite, CheckPresence, CheckPlatform}, r.ChecksPerformed)
	assert.Equal(t, []string{
		"No scam reports found",
		"Company has accessible website",
		"Website uses HTTPS",
		"Found 10 online references",
		"Listed on: LinkedIn",
	}, r.PositiveIndicators)
	assert.Empty(t, r.Warnings)
	assert.True(t, r.HasOfficialWebsite)
	assert.False(t, r.ScamReportsFound)
	assert.Equal(t, 10, r.SearchResultsCount)
	assert.Equal(t, models.PresenceKnownCompany, r.OnlinePresence)
	assert.Equal(t, []string{"https://careers.google.com"}, prober.urls)
}

func TestVerifyCompany_UnknownCompanyWithoutSearch(t *testing.T) {
	prober := &fakeProber{status: http.StatusOK}
	v := newVerifier(t, fakeMatcher{}, prober, nil)

	r := v.VerifyCompany(context.Background(), "Acme Widgets", "")

	assert.InDelta(t, 0.8, r.SafetyScore, 1e-9)
	assert.Equal(t, models.StatusSafe, r.VerificationStatus)
	assert.Equal(t, []string{CheckScamReports, CheckPresence, CheckPlatform}, r.ChecksPerformed)
	assert.Equal(t, models.PresenceCannotVerify, r.OnlinePresence)
	require.Len(t, r.Warnings, 1)
	assert.Contains(t, r.Warnings[0], "Unable to verify online presence")
	assert.Empty(t, prober.urls)
}

func TestVerifyCompany_ScamNamePatterns(t *testing.T) {
	tests := []struct {
		name      string
		company   string
		indicator string
	}{
		{"quick money", "Make Money Fast", "Promises quick money in name"},
		{"long number", "Corp 12345678901", "Company name contains very long number sequence"},
		{"work from home", "Work From Home Earn Daily", "Work from home money scheme pattern"},
		{"guaranteed income", "Guaranteed Income Partners", "Guaranteed income promise"},
		{"easy money", "Easy Money Club", "Free/easy money pattern"},
		{"too short", "XYZ", "Company name is too short/generic"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newVerifier(t, fakeMatcher{}, &fakeProber{}, nil)
			r := v.VerifyCompany(context.Background(), tt.company, "")

			assert.True(t, r.ScamReportsFound)
			assert.Contains(t, r.NegativeIndicators, tt.indicator)
			assert.Contains(t, r.Warnings, "Scam reports found for "+tt.company)
			assert.InDelta(t, 0.1, r.SafetyScore, 1e-9)
			assert.Equal(t, models.StatusRisky, r.VerificationStatus)
		})
	}
}

func TestVerifyCompany_RepeatedWordsFlagged(t *testing.T) {
	v := newVerifier(t, fakeMatcher{}, &fakeProber{}, nil)
	r := v.VerifyCompany(context.Background(), "Best Best Solutions", "")

	assert.True(t, r.ScamReportsFound)
	assert.Contains(t, r.NegativeIndicators, "Company name has repeated words (unusual pattern)")
	assert.Contains(t, r.Warnings, "Scam reports found for Best Best Solutions")
	assert.NotContains(t, r.PositiveIndicators, "No scam reports found")
	assert.InDelta(t, 0.1, r.SafetyScore, 1e-9)
	assert.Equal(t, models.StatusRisky, r.VerificationStatus)
}

func TestVerifyCompany_WebsiteFailures(t *testing.T) {
	tests := []struct {
		name     string
		prober   *fakeProber
		negative string
	}{
		{"tls", &fakeProber{err: errorwrapper.NewNetworkError("u", "HTTP request failed", errorwrapper.ErrTLSFailure)}, "Website has an invalid SSL certificate"},
		{"timeout", &fakeProber{err: errorwrapper.NewNetworkError("u", "HTTP request failed", errorwrapper.ErrTimeout)}, "Website timed out"},
		{"status", &fakeProber{status: http.StatusNotFound}, "Website returned HTTP 404"},
		{"network", &fakeProber{err: errorwrapper.NewNetworkError("u", "HTTP request failed", errorwrapper.ErrNetworkFailure)}, "Website is not accessible"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newVerifier(t, fakeMatcher{}, tt.prober, nil)
			r := v.VerifyCompany(context.Background(), "Acme Widgets", "http://acme.test")

			assert.False(t, r.HasOfficialWebsite)
			assert.Contains(t, r.NegativeIndicators, tt.negative)
			assert.Contains(t, r.Warnings, "Company website is not accessible")
			// 0.5 + 0.3 - 0.2
			assert.InDelta(t, 0.6, r.SafetyScore, 1e-9)
			assert.Equal(t, models.StatusLikelySafe, r.VerificationStatus)
			assert.Equal(t, []string{"http://acme.test"}, tt.prober.urls)
		})
	}
}

func TestVerifyCompany_HTTPWebsiteNoHTTPSBonus(t *testing.T) {
	v := newVerifier(t, fakeMatcher{}, &fakeProber{status: http.StatusOK}, nil)
	r := v.VerifyCompany(context.Background(), "Acme Widgets", "http://acme.test")

	assert.NotContains(t, r.PositiveIndicators, "Website uses HTTPS")
	// 0.5 + 0.3 + 0.25, clamped
	assert.InDelta(t, 1.0, r.SafetyScore, 1e-9)
}

func TestVerifyCompany_SearchFindsScamReports(t *testing.T) {
	sc := &fakeSearch{respond: func(query string) ([]search.Result, error) {
		if strings.HasSuffix(query, " company") {
			return []search.Result{{Title: "Acme Widgets"}, {Title: "Acme Widgets about"}}, nil
		}
		return []search.Result{
			{Title: "Beware of Acme Widgets internship", Snippet: "They asked for a fee"},
			{Title: "Acme Widgets careers", Snippet: "Join our team"},
		}, nil
	}}
	v := newVerifier(t, fakeMatcher{}, &fakeProber{}, sc)

	r := v.VerifyCompany(context.Background(), "Acme Widgets", "")

	assert.True(t, r.ScamReportsFound)
	assert.Equal(t, []string{"Found 'beware' in search result: Beware of Acme Widgets internship"}, filterPrefix(r.NegativeIndicators, "Found '"))
	assert.Equal(t, 2, r.SearchResultsCount)
	assert.Equal(t, models.PresenceFound, r.OnlinePresence)
	// 0.5 - 0.4 + 0.10
	assert.InDelta(t, 0.2, r.SafetyScore, 1e-9)
	assert.Equal(t, models.StatusRisky, r.VerificationStatus)
	assert.Len(t, sc.queriesContaining(`"Acme Widgets"`), 5)
}

func TestVerifyCompany_QuotaStopsScamQueries(t *testing.T) {
	sc := &fakeSearch{respond: func(query string) ([]search.Result, error) {
		if strings.HasSuffix(query, " company") {
			return nil, nil
		}
		return nil, errorwrapper.WrapError(errorwrapper.ErrQuotaExceeded, "HTTP 403")
	}}
	v := newVerifier(t, fakeMatcher{}, &fakeProber{}, sc)

	r := v.VerifyCompany(context.Background(), "Acme Widgets", "")

	assert.Len(t, sc.queriesContaining(" scam"), 1)
	assert.Empty(t, sc.queriesContaining("fraud"))
	assert.False(t, r.ScamReportsFound)
	assert.Equal(t, models.PresenceMinimal, r.OnlinePresence)
	assert.Contains(t, r.Warnings, "Company has minimal online presence")
	// 0.5 + 0.3 - 0.1
	assert.InDelta(t, 0.7, r.SafetyScore, 1e-9)
}

func TestVerifyCompany_OtherSearchErrorsSkipOneQuery(t *testing.T) {
	sc := &fakeSearch{respond: func(query string) ([]search.Result, error) {
		if strings.HasSuffix(query, " company") {
			return nil, errors.New("connection reset")
		}
		return nil, errors.New("connection reset")
	}}
	v := newVerifier(t, fakeMatcher{}, &fakeProber{}, sc)

	r := v.VerifyCompany(context.Background(), "Acme Widgets", "")

	assert.Len(t, sc.queriesContaining(`"Acme Widgets" `), 5)
	assert.Equal(t, models.PresenceCannotVerify, r.OnlinePresence)
	assert.InDelta(t, 0.8, r.SafetyScore, 1e-9)
}

func TestVerifyCompany_ErrorCases(t *testing.T) {
	v := newVerifier(t, fakeMatcher{}, &fakeProber{}, nil)
	r := v.VerifyCompany(context.Background(), "   ", "")
	assert.Equal(t, models.StatusError, r.VerificationStatus)
	assert.Equal(t, 0.5, r.SafetyScore)
	assert.Equal(t, []string{"Unable to complete verification"}, r.Warnings)
	assert.NotEmpty(t, r.Error)

	panicking := newVerifier(t, fakeMatcher{panic: true}, &fakeProber{}, nil)
	r = panicking.VerifyCompany(context.Background(), "Acme", "")
	assert.Equal(t, models.StatusError, r.VerificationStatus)
	assert.Equal(t, 0.5, r.SafetyScore)
	assert.Contains(t, r.Error, "internal computation error")
}

func TestVerifyCompany_Deterministic(t *testing.T) {
	sc := &fakeSearch{respond: func(query string) ([]search.Result, error) {
		return []search.Result{{Title: "Acme Widgets review", Snippet: "warning: slow replies"}}, nil
	}}
	v := newVerifier(t, fakeMatcher{}, &fakeProber{status: http.StatusOK}, sc)

	first := v.VerifyCompany(context.Background(), "Acme Widgets", "acme.test")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, v.VerifyCompany(context.Background(), "Acme Widgets", "acme.test"))
	}
}

func filterPrefix(items []string, prefix string) []string {
	var out []string
	for _, s := range items {
		if strings.HasPrefix(s, prefix) {
			out = append(out, s)
		}
	}
	return out
}
