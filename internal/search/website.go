package search

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

// excludedDomains are job boards and social sites that never count as a
// company's own website.
var excludedDomains = []string{
	"linkedin.com", "indeed.com", "glassdoor.com", "naukri.com",
	"internshala.com", "facebook.com", "twitter.com", "x.com",
}

// FindOfficialWebsite searches for the company's own site and returns its
// origin (scheme and host), or "" when nothing qualifies. Results whose host
// contains the company slug win over the first eligible result.
func FindOfficialWebsite(ctx context.Context, client SearchClient, companyName string) (string, error) {
	name := strings.TrimSpace(companyName)
	if name == "" {
		return "", nil
	}

	results, err := client.Search(ctx, fmt.Sprintf("%s official website", name), 0)
	if err != nil {
		return "", err
	}

	slug := Slug(name)
	fallback := ""
	for _, r := range results {
		origin, host, ok := originOf(r)
		if !ok || IsExcludedDomain(host) {
			continue
		}
		if slug != "" && strings.Contains(strings.ReplaceAll(host, "-", ""), slug) {
			return origin, nil
		}
		if fallback == "" {
			fallback = origin
		}
	}
	return fallback, nil
}

// IsExcludedDomain reports whether host is, or is a subdomain of, a job board
// or social network.
func IsExcludedDomain(host string) bool {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	for _, d := range excludedDomains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

// Slug lowercases name and keeps only letters and digits.
func Slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func originOf(r Result) (origin, host string, ok bool) {
	u, err := url.Parse(r.Link)
	if err != nil || u.Host == "" {
		if r.DisplayLink == "" {
			return "", "", false
		}
		host = strings.ToLower(r.DisplayLink)
		return "https://" + host, host, true
	}
	host = strings.ToLower(u.Hostname())
	scheme := u.Scheme
	if scheme == "" {
		scheme = "https"
	}
	return scheme + "://" + u.Host, host, true
}
