// Package urlfeatures computes lexical and structural features of a URL.
package urlfeatures

import (
	"maps"
	"math"
	"net"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aleister1102/offerguard/internal/common/errorwrapper"
	"github.com/aleister1102/offerguard/internal/models"
	"github.com/rs/zerolog"
	"golang.org/x/net/publicsuffix"
)

// SuspiciousEntropy is the domain entropy above which a label looks random.
const SuspiciousEntropy = 4.0

var ipPattern = regexp.MustCompile(`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`)

// Extractor computes URLFeatureSet values. It is stateless and safe for concurrent use.
type Extractor struct {
	logger zerolog.Logger
}

// NewExtractor creates an Extractor.
func NewExtractor(logger zerolog.Logger) *Extractor {
	return &Extractor{
		logger: logger.With().Str("component", "URLFeatureExtractor").Logger(),
	}
}

// Extract returns the features of rawURL, or a set with only Error filled in
// when the URL is empty, unparseable or has no host.
func (e *Extractor) Extract(rawURL string) models.URLFeatureSet {
	features, err := extract(rawURL)
	if err != nil {
		e.logger.Debug().Err(err).Str("url", rawURL).Msg("URL feature extraction failed")
		return models.URLFeatureSet{URL: rawURL, Error: err.Error()}
	}
	return features
}

func extract(rawURL string) (models.URLFeatureSet, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return models.URLFeatureSet{}, errorwrapper.WrapError(errorwrapper.ErrMalformedURL, "empty URL")
	}

	// Scheme-less input is parsed as a network path so the host is still found.
	toParse := trimmed
	if !strings.Contains(toParse, "://") {
		toParse = "//" + strings.TrimPrefix(toParse, "//")
	}

	u, err := url.Parse(toParse)
	if err != nil {
		return models.URLFeatureSet{}, errorwrapper.WrapErrorf(errorwrapper.ErrMalformedURL, "cannot parse %q: %v", trimmed, err)
	}

	host := strings.TrimSuffix(strings.ToLower(u.Hostname()), ".")
	if host == "" {
		return models.URLFeatureSet{}, errorwrapper.WrapErrorf(errorwrapper.ErrMalformedURL, "no host in %q", trimmed)
	}

	domain, tld, subdomain := splitHost(host)

	return models.URLFeatureSet{
		URL:             trimmed,
		URLLength:       utf8.RuneCountInString(trimmed),
		DomainLength:    utf8.RuneCountInString(domain),
		HasHTTPS:        strings.EqualFold(u.Scheme, "https"),
		HasWWW:          subdomain == "www",
		Domain:          domain,
		TLD:             tld,
		Subdomain:       subdomain,
		HasIPAddress:    ipPattern.MatchString(trimmed) || net.ParseIP(host) != nil,
		HasAtSymbol:     strings.Contains(trimmed, "@"),
		HasDoubleSlash:  strings.Contains(u.Path, "//"),
		NumDots:         strings.Count(trimmed, "."),
		NumHyphens:      strings.Count(domain, "-"),
		NumUnderscores:  strings.Count(domain, "_"),
		NumDigits:       countDigits(domain),
		DomainEntropy:   ShannonEntropy(domain),
		PathLength:      utf8.RuneCountInString(u.Path),
		NumPathSegments: countSegments(u.Path),
	}, nil
}

// splitHost splits host into registrable label, public suffix and subdomain.
// IP hosts and hosts that are themselves a suffix come back whole as the domain.
func splitHost(host string) (domain, tld, subdomain string) {
	if net.ParseIP(host) != nil {
		return host, "", ""
	}
	suffix, _ := publicsuffix.PublicSuffix(host)
	if suffix == host {
		return host, "", ""
	}
	etldPlusOne, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host, "", ""
	}
	domain = strings.TrimSuffix(etldPlusOne, "."+suffix)
	subdomain = strings.TrimSuffix(strings.TrimSuffix(host, etldPlusOne), ".")
	return domain, suffix, subdomain
}

// ShannonEntropy returns -Σ p·log2(p) over the characters of s.
func ShannonEntropy(s string) float64 {
	if s == "" {
		return 0
	}
	counts := make(map[rune]int)
	total := 0
	for _, r := range s {
		counts[r]++
		total++
	}
	// Summed in rune order so the result is bit-for-bit reproducible.
	entropy := 0.0
	for _, r := range slices.Sorted(maps.Keys(counts)) {
		p := float64(counts[r]) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// IsSuspicious flags URLs without HTTPS, with an IP host, a random-looking
// domain, or many hyphens or digits. Invalid feature sets are suspicious.
func IsSuspicious(f models.URLFeatureSet) bool {
	if !f.Valid() {
		return true
	}
	return !f.HasHTTPS ||
		f.HasIPAddress ||
		f.DomainEntropy > SuspiciousEntropy ||
		f.NumHyphens > 2 ||
		f.NumDigits > 3
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

func countSegments(path string) int {
	n := 0
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			n++
		}
	}
	return n
}
