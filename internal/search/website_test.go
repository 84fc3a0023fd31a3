package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearchClient struct {
	results []Result
	err     error
	queries []string
}

func (f *fakeSearchClient) Search(_ context.Context, query string, _ int) ([]Result, error) {
	f.queries = append(f.queries, query)
	return f.results, f.err
}

func TestFindOfficialWebsite(t *testing.T) {
	tests := []struct {
		name    string
		results []Result
		want    string
	}{
		{
			name: "prefers slug match over first result",
			results: []Result{
				{Link: "https://www.linkedin.com/company/acme", DisplayLink: "www.linkedin.com"},
				{Link: "https://news.example.org/acme-story", DisplayLink: "news.example.org"},
				{Link: "https://www.acme-corp.io/about", DisplayLink: "www.acme-corp.io"},
			},
			want: "https://www.acme-corp.io",
		},
		{
			name: "falls back to first eligible result",
			results: []Result{
				{Link: "https://in.indeed.com/cmp/acme", DisplayLink: "in.indeed.com"},
				{Link: "https://directory.test/listing", DisplayLink: "directory.test"},
			},
			want: "https://directory.test",
		},
		{
			name: "only excluded domains",
			results: []Result{
				{Link: "https://x.com/acme", DisplayLink: "x.com"},
				{Link: "https://m.facebook.com/acme", DisplayLink: "m.facebook.com"},
			},
			want: "",
		},
		{
			name:    "display link when link is unusable",
			results: []Result{{Link: "", DisplayLink: "AcmeCorp.com"}},
			want:    "https://acmecorp.com",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeSearchClient{results: tt.results}
			got, err := FindOfficialWebsite(context.Background(), fake, "Acme Corp")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, []string{"Acme Corp official website"}, fake.queries)
		})
	}
}

func TestFindOfficialWebsite_BlankNameAndErrors(t *testing.T) {
	fake := &fakeSearchClient{}
	got, err := FindOfficialWebsite(context.Background(), fake, "  ")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, fake.queries)

	boom := errors.New("boom")
	_, err = FindOfficialWebsite(context.Background(), &fakeSearchClient{err: boom}, "Acme")
	assert.ErrorIs(t, err, boom)
}

func TestIsExcludedDomain(t *testing.T) {
	assert.True(t, IsExcludedDomain("linkedin.com"))
	assert.True(t, IsExcludedDomain("WWW.Glassdoor.com."))
	assert.False(t, IsExcludedDomain("box.com"))
	assert.False(t, IsExcludedDomain("notlinkedin.com"))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "acmecorp", Slug("Acme Corp."))
	assert.Equal(t, "h2oai", Slug("H2O.ai"))
	assert.Empty(t, Slug("  --  "))
}
