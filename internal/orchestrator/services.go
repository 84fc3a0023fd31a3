// Package orchestrator wires the assessment components into one service
// context that is built once at start-up and shared by every request.
package orchestrator

import (
	"context"

	"github.com/aleister1102/offerguard/internal/common/errorwrapper"
	"github.com/aleister1102/offerguard/internal/companylist"
	"github.com/aleister1102/offerguard/internal/config"
	"github.com/aleister1102/offerguard/internal/credibility"
	"github.com/aleister1102/offerguard/internal/httpclient"
	"github.com/aleister1102/offerguard/internal/metrics"
	"github.com/aleister1102/offerguard/internal/models"
	"github.com/aleister1102/offerguard/internal/search"
	"github.com/aleister1102/offerguard/internal/sentiment"
	"github.com/aleister1102/offerguard/internal/textparser"
	"github.com/aleister1102/offerguard/internal/urlfeatures"
	"github.com/aleister1102/offerguard/internal/verifier"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Services holds the long-lived clients and exposes the public entry points.
// It is safe for concurrent use.
type Services struct {
	globalConfig *config.GlobalConfig
	logger       zerolog.Logger

	httpClient *httpclient.HTTPClient
	search     search.SearchClient
	companies  *companylist.Store
	parser     *textparser.Parser
	urls       *urlfeatures.Extractor
	sentiment  *sentiment.Scorer
	verifier   *verifier.Verifier
	engine     *credibility.Engine
	metrics    *metrics.Recorder
}

// NewServices builds every component from cfg. reg may be nil, in which case
// no metrics are registered.
func NewServices(cfg *config.GlobalConfig, logger zerolog.Logger, reg prometheus.Registerer) (*Services, error) {
	if cfg == nil {
		return nil, errorwrapper.NewConfigurationError("", "", "global config is nil")
	}

	s := &Services{
		globalConfig: cfg,
		logger:       logger.With().Str("component", "Services").Logger(),
	}
	if reg != nil {
		s.metrics = metrics.NewRecorder(reg)
	}

	httpClient, err := httpclient.NewHTTPClientBuilder(logger).
		WithConfig(httpclient.ConfigFromGlobal(cfg.HTTPClientConfig)).
		Build()
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to build HTTP client")
	}
	s.httpClient = httpClient

	scorerBuilder := sentiment.NewScorerBuilder(logger).WithConfig(cfg.SentimentConfig)
	if cfg.SentimentConfig.UseClassifier {
		endpoint := cfg.SentimentConfig.Endpoint
		if endpoint == "" {
			endpoint = config.DefaultSentimentEndpoint
		}
		scorerBuilder.WithClassifier(sentiment.NewHuggingFaceClassifier(httpClient, endpoint, cfg.SentimentConfig.APIKey, logger))
	}
	s.sentiment = scorerBuilder.Build()

	if cfg.SearchConfig.Enabled() {
		client, err := search.NewGoogleClientBuilder(logger).
			WithConfig(cfg.SearchConfig).
			WithHTTPClient(httpClient).
			Build()
		if err != nil {
			return nil, errorwrapper.WrapError(err, "failed to build search client")
		}
		s.search = client
	} else {
		s.logger.Info().Msg("Search API not configured, online presence checks use the company list only")
	}

	s.companies, err = companylist.NewStoreFromConfig(cfg.CompanyListConfig, logger)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to configure company list")
	}

	verifierBuilder := verifier.NewVerifierBuilder(logger).
		WithConfig(cfg.VerifierConfig).
		WithCompanyMatcher(s.companies).
		WithWebsiteProber(httpClient)
	if s.search != nil {
		verifierBuilder.WithSearchClient(s.search)
	}
	s.verifier, err = verifierBuilder.Build()
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to build company verifier")
	}

	s.parser = textparser.NewParser(logger)
	s.urls = urlfeatures.NewExtractor(logger)

	s.engine, err = credibility.NewEngineBuilder(logger).
		WithParser(s.parser).
		WithURLAnalyzer(s.urls).
		WithSentimentAnalyzer(s.sentiment).
		WithCompanyVerifier(s.verifier).
		Build()
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to build credibility engine")
	}

	return s, nil
}

// Warm loads the company list ahead of the first request.
func (s *Services) Warm(ctx context.Context) {
	if _, err := s.companies.Load(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("Company list unavailable, continuing with an empty list")
	}
}

// Parse extracts structured fields from a raw posting.
func (s *Services) Parse(rawText string) models.ParsedInternshipInfo {
	return s.parser.Parse(rawText)
}

// ExtractURLFeatures returns the lexical features of rawURL.
func (s *Services) ExtractURLFeatures(rawURL string) models.URLFeatureSet {
	return s.urls.Extract(rawURL)
}

// VerifyCompany checks a company by name and optional website.
func (s *Services) VerifyCompany(ctx context.Context, companyName, website string) models.CompanyVerificationResult {
	result := s.verifier.VerifyCompany(ctx, companyName, website)
	s.metrics.RecordVerification(result.VerificationStatus)
	return result
}

// Analyze produces a credibility assessment for one submission.
func (s *Services) Analyze(ctx context.Context, sub models.Submission) models.CredibilityAssessment {
	assessment := s.engine.Analyze(ctx, sub)

	if _, rejected := assessment.RedFlags[textparser.FlagIncompleteSubmission]; rejected {
		s.metrics.RecordGateRejection()
	}
	if assessment.Sentiment != nil {
		s.metrics.RecordSentiment(assessment.Sentiment.Provenance)
	}
	if assessment.CompanyVerification != nil {
		s.metrics.RecordVerification(assessment.CompanyVerification.Status)
	}
	s.metrics.RecordAssessment(assessment.CredibilityLevel)
	return assessment
}

// FindOfficialWebsite looks up the company's own site through the search API.
func (s *Services) FindOfficialWebsite(ctx context.Context, companyName string) (string, error) {
	if s.search == nil {
		return "", errorwrapper.NewConfigurationError("search_config", "api_key", "search API is not configured")
	}
	return search.FindOfficialWebsite(ctx, s.search, companyName)
}

// SearchEnabled reports whether a search API client is configured.
func (s *Services) SearchEnabled() bool {
	return s.search != nil
}
