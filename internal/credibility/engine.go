// Package credibility fuses parsed fields, URL structure, sentiment and
// company verification into one credibility assessment.
package credibility

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/aleister1102/offerguard/internal/common/errorwrapper"
	"github.com/aleister1102/offerguard/internal/models"
	"github.com/aleister1102/offerguard/internal/sentiment"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// TextParser extracts structured fields from raw posting text.
type TextParser interface {
	Parse(rawText string) models.ParsedInternshipInfo
}

// URLAnalyzer extracts URL features.
type URLAnalyzer interface {
	Extract(rawURL string) models.URLFeatureSet
}

// SentimentAnalyzer classifies text polarity.
type SentimentAnalyzer interface {
	Analyze(ctx context.Context, text string) models.SentimentResult
}

// CompanyVerifier scores company legitimacy.
type CompanyVerifier interface {
	VerifyCompany(ctx context.Context, companyName, website string) models.CompanyVerificationResult
}

// Engine runs the assessment pipeline. It holds no per-request state and is
// safe for concurrent use.
type Engine struct {
	parser    TextParser
	urls      URLAnalyzer
	sentiment SentimentAnalyzer
	verifier  CompanyVerifier
	logger    zerolog.Logger
}

// EngineBuilder builds an Engine with fluent interface
type EngineBuilder struct {
	parser    TextParser
	urls      URLAnalyzer
	sentiment SentimentAnalyzer
	verifier  CompanyVerifier
	logger    zerolog.Logger
}

// NewEngineBuilder creates a new engine builder
func NewEngineBuilder(logger zerolog.Logger) *EngineBuilder {
	return &EngineBuilder{logger: logger}
}

// WithParser sets the text parser
func (b *EngineBuilder) WithParser(p TextParser) *EngineBuilder {
	b.parser = p
	return b
}

// WithURLAnalyzer sets the URL feature extractor
func (b *EngineBuilder) WithURLAnalyzer(u URLAnalyzer) *EngineBuilder {
	b.urls = u
	return b
}

// WithSentimentAnalyzer sets the sentiment scorer
func (b *EngineBuilder) WithSentimentAnalyzer(s SentimentAnalyzer) *EngineBuilder {
	b.sentiment = s
	return b
}

// WithCompanyVerifier sets the company verifier
func (b *EngineBuilder) WithCompanyVerifier(v CompanyVerifier) *EngineBuilder {
	b.verifier = v
	return b
}

// Build creates the Engine
func (b *EngineBuilder) Build() (*Engine, error) {
	switch {
	case b.parser == nil:
		return nil, errorwrapper.NewConfigurationError("engine", "parser", "text parser is required")
	case b.urls == nil:
		return nil, errorwrapper.NewConfigurationError("engine", "url_analyzer", "URL analyzer is required")
	case b.sentiment == nil:
		return nil, errorwrapper.NewConfigurationError("engine", "sentiment", "sentiment analyzer is required")
	case b.verifier == nil:
		return nil, errorwrapper.NewConfigurationError("engine", "verifier", "company verifier is required")
	}
	return &Engine{
		parser:    b.parser,
		urls:      b.urls,
		sentiment: b.sentiment,
		verifier:  b.verifier,
		logger:    b.logger.With().Str("component", "CredibilityEngine").Logger(),
	}, nil
}

// Analyze assesses one submission. It always returns a well-formed
// assessment; internal failures produce a zero score with Error set.
func (e *Engine) Analyze(ctx context.Context, sub models.Submission) (assessment models.CredibilityAssessment) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("Assessment panicked")
			assessment = errorAssessment(fmt.Errorf("%w: %v", errorwrapper.ErrInternalComputation, r))
		}
	}()

	f := e.resolve(sub)
	if reason, rejected := f.gate(); rejected {
		e.logger.Info().Strs("missing_fields", f.missing).Str("reason", reason).Msg("Submission rejected by critical-field gate")
		return incompleteAssessment(f)
	}

	var (
		verification *models.CompanyVerificationResult
		sentimentRes *models.SentimentResult
	)
	g, gctx := errgroup.WithContext(ctx)
	if f.companyName != "" {
		g.Go(guard("verifier", func() {
			r := e.verifier.VerifyCompany(gctx, f.companyName, f.website)
			verification = &r
		}))
	}
	if f.hasDescription() {
		g.Go(guard("sentiment", func() {
			r := e.sentiment.Analyze(gctx, sentiment.CleanText(f.description))
			sentimentRes = &r
		}))
	}
	if err := g.Wait(); err != nil {
		e.logger.Error().Err(err).Msg("Assessment component failed")
		return errorAssessment(err)
	}

	var urlFeatures *models.URLFeatureSet
	if f.website != "" {
		features := e.urls.Extract(f.website)
		urlFeatures = &features
	}

	breakdown := models.ScoreBreakdown{
		URLScore:          urlScore(urlFeatures),
		EmailMatchScore:   emailMatchScore(f.email, f.website),
		SentimentScore:    sentimentScore(sentimentRes),
		OfferQualityScore: offerQualityScore(f.description, f.hasDescription()),
	}
	if verification != nil {
		breakdown.CompanyVerificationScore = clamp01(verification.SafetyScore)
	}

	redFlags := collectRedFlags(sub, f.tags)
	breakdown.RedFlagPenalty = redFlagPenalty(len(redFlags))

	final := fuse(breakdown, sentimentRes != nil)
	level := models.LevelForScore(final)

	assessment = models.CredibilityAssessment{
		CredibilityScore: roundScore(final),
		CredibilityLevel: level,
		Breakdown:        breakdown,
		RedFlags:         redFlags,
		ResolvedFields:   f.display(),
		MissingFields:    f.missing,
		Sentiment:        sentimentRes,
		URLFeatures:      urlFeatures,
	}

	var warnings []string
	if verification != nil {
		warnings = verification.Warnings
		assessment.CompanyVerification = &models.VerificationSummary{
			Status:             verification.VerificationStatus,
			Warnings:           nonNil(verification.Warnings),
			PositiveIndicators: nonNil(verification.PositiveIndicators),
		}
	}
	assessment.Recommendations = recommendations(final, level, redFlags, warnings)

	e.logger.Debug().
		Float64("score", assessment.CredibilityScore).
		Str("level", string(level)).
		Int("red_flags", len(redFlags)).
		Msg("Assessment completed")
	return assessment
}

func guard(component string, fn func()) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %s: %v", errorwrapper.ErrInternalComputation, component, r)
			}
		}()
		fn()
		return nil
	}
}

func incompleteAssessment(f resolvedFields) models.CredibilityAssessment {
	return models.CredibilityAssessment{
		CredibilityScore: 0,
		CredibilityLevel: models.LevelVeryLow,
		RedFlags: map[string]string{
			FlagIncompleteSubmission: describeFlag(FlagIncompleteSubmission),
		},
		Recommendations: []string{incompleteRecommendation},
		ResolvedFields:  f.display(),
		MissingFields:   f.missing,
	}
}

func errorAssessment(err error) models.CredibilityAssessment {
	return models.CredibilityAssessment{
		CredibilityScore: 0,
		CredibilityLevel: models.LevelVeryLow,
		RedFlags:         map[string]string{},
		Recommendations:  []string{errorRecommendation},
		Error:            err.Error(),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
