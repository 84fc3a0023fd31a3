// Package verifier estimates company legitimacy from the company name and an
// optional website.
package verifier

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/aleister1102/offerguard/internal/common/errorwrapper"
	"github.com/aleister1102/offerguard/internal/config"
	"github.com/aleister1102/offerguard/internal/httpclient"
	"github.com/aleister1102/offerguard/internal/models"
	"github.com/aleister1102/offerguard/internal/search"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	baselineScore        = 0.5
	errorScore           = 0.5
	errorWarning         = "Unable to complete verification"
	scamQueryResults     = 5
	presenceQueryResults = 5
	knownCompanyRefs     = 10
)

// Check names reported in checks_performed.
const (
	CheckScamReports = "scam_report_check"
	CheckWebsite     = "website_verification"
	CheckPresence    = "online_presence_check"
	CheckPlatform    = "platform_verification"
)

// CompanyMatcher answers whether a name is on the known-legitimate list.
type CompanyMatcher interface {
	Contains(name string) bool
}

// WebsiteProber issues a HEAD request, following redirects.
type WebsiteProber interface {
	Head(ctx context.Context, rawURL string) (*httpclient.HTTPResponse, error)
}

// Verifier runs the company checks. It is safe for concurrent use.
type Verifier struct {
	search       search.SearchClient
	matcher      CompanyMatcher
	prober       WebsiteProber
	checkTimeout time.Duration
	logger       zerolog.Logger
}

// VerifierBuilder builds a Verifier with fluent interface
type VerifierBuilder struct {
	cfg     config.VerifierConfig
	search  search.SearchClient
	matcher CompanyMatcher
	prober  WebsiteProber
	logger  zerolog.Logger
}

// NewVerifierBuilder creates a builder with the default verifier section.
func NewVerifierBuilder(logger zerolog.Logger) *VerifierBuilder {
	return &VerifierBuilder{
		cfg:    config.NewDefaultVerifierConfig(),
		logger: logger,
	}
}

// WithConfig sets the verifier configuration
func (b *VerifierBuilder) WithConfig(cfg config.VerifierConfig) *VerifierBuilder {
	b.cfg = cfg
	return b
}

// WithSearchClient enables the search-backed checks. Without one, scam
// detection is pattern-only and online presence relies on the known list.
func (b *VerifierBuilder) WithSearchClient(client search.SearchClient) *VerifierBuilder {
	b.search = client
	return b
}

// WithCompanyMatcher sets the known-legitimate company list
func (b *VerifierBuilder) WithCompanyMatcher(matcher CompanyMatcher) *VerifierBuilder {
	b.matcher = matcher
	return b
}

// WithWebsiteProber sets the client used for website reachability
func (b *VerifierBuilder) WithWebsiteProber(prober WebsiteProber) *VerifierBuilder {
	b.prober = prober
	return b
}

// Build creates the Verifier
func (b *VerifierBuilder) Build() (*Verifier, error) {
	if b.matcher == nil {
		return nil, errorwrapper.NewConfigurationError("company_list_config", "", "company matcher is required")
	}
	if b.prober == nil {
		return nil, errorwrapper.NewConfigurationError("http_client_config", "", "website prober is required")
	}
	return &Verifier{
		search:       b.search,
		matcher:      b.matcher,
		prober:       b.prober,
		checkTimeout: b.cfg.CheckTimeout(),
		logger:       b.logger.With().Str("component", "CompanyVerifier").Logger(),
	}, nil
}

// SearchEnabled reports whether the search-backed checks are active.
func (v *Verifier) SearchEnabled() bool {
	return v.search != nil
}

// VerifyCompany scores a company's legitimacy. It never fails: a blank name,
// an internal error or a panic yields an ERROR result with score 0.5.
func (v *Verifier) VerifyCompany(ctx context.Context, companyName, website string) (result models.CompanyVerificationResult) {
	defer func() {
		if r := recover(); r != nil {
			v.logger.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Str("company", companyName).Msg("Verification panicked")
			result = errorResult(companyName, fmt.Errorf("%w: %v", errorwrapper.ErrInternalComputation, r))
		}
	}()

	name := strings.TrimSpace(companyName)
	if name == "" {
		return errorResult(companyName, errorwrapper.NewValidationError("company_name", companyName, "company name is required"))
	}
	website = strings.TrimSpace(website)

	var scam, site, presence checkOutcome
	g, gctx := errgroup.WithContext(ctx)
	g.Go(v.guard("scam", func() { scam = v.checkScamReports(gctx, name) }))
	if website != "" {
		g.Go(v.guard("website", func() { site = v.checkWebsite(gctx, website) }))
	}
	g.Go(v.guard("presence", func() { presence = v.checkOnlinePresence(gctx, name) }))
	if err := g.Wait(); err != nil {
		return errorResult(companyName, err)
	}
	platform := v.checkPlatforms(name)

	result = models.CompanyVerificationResult{
		CompanyName:        companyName,
		ChecksPerformed:    []string{},
		Warnings:           []string{},
		PositiveIndicators: []string{},
		NegativeIndicators: []string{},
	}
	score := baselineScore
	outcomes := []checkOutcome{scam}
	if website != "" {
		outcomes = append(outcomes, site)
	}
	outcomes = append(outcomes, presence, platform)
	for _, o := range outcomes {
		score += o.delta
		result.ChecksPerformed = append(result.ChecksPerformed, o.name)
		result.Warnings = append(result.Warnings, o.warnings...)
		result.PositiveIndicators = append(result.PositiveIndicators, o.positive...)
		result.NegativeIndicators = append(result.NegativeIndicators, o.negative...)
	}

	result.ScamReportsFound = scam.flagged
	result.HasOfficialWebsite = site.flagged
	result.SearchResultsCount = presence.count
	result.OnlinePresence = presence.presence
	result.SafetyScore = max(0, min(1, score))
	result.VerificationStatus = models.StatusForScore(result.SafetyScore)

	v.logger.Debug().
		Str("company", name).
		Float64("safety_score", result.SafetyScore).
		Str("status", string(result.VerificationStatus)).
		Msg("Company verified")
	return result
}

// guard turns a panic inside a check goroutine into an error so the group
// reports it instead of crashing the process.
func (v *Verifier) guard(check string, fn func()) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				v.logger.Error().Interface("panic", r).Str("check", check).Msg("Verification check panicked")
				err = fmt.Errorf("%w: %s check: %v", errorwrapper.ErrInternalComputation, check, r)
			}
		}()
		fn()
		return nil
	}
}

func errorResult(companyName string, err error) models.CompanyVerificationResult {
	return models.CompanyVerificationResult{
		CompanyName:        companyName,
		SafetyScore:        errorScore,
		ChecksPerformed:    []string{},
		Warnings:           []string{errorWarning},
		PositiveIndicators: []string{},
		NegativeIndicators: []string{},
		VerificationStatus: models.StatusError,
		Error:              err.Error(),
	}
}
