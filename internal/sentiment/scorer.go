// Package sentiment scores the polarity of offer text with an external
// classifier, falling back to a vocabulary heuristic.
package sentiment

import (
	"context"
	"strings"
	"time"

	"github.com/aleister1102/offerguard/internal/config"
	"github.com/aleister1102/offerguard/internal/models"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Scorer produces SentimentResult values. It is safe for concurrent use.
type Scorer struct {
	classifier    Classifier
	maxInputChars int
	batchWorkers  int
	timeout       time.Duration
	logger        zerolog.Logger
}

// ScorerBuilder builds a Scorer with fluent interface
type ScorerBuilder struct {
	classifier    Classifier
	maxInputChars int
	batchWorkers  int
	timeout       time.Duration
	logger        zerolog.Logger
}

// NewScorerBuilder creates a builder with default limits and no classifier.
func NewScorerBuilder(logger zerolog.Logger) *ScorerBuilder {
	return &ScorerBuilder{
		maxInputChars: config.DefaultSentimentMaxInputChars,
		batchWorkers:  config.DefaultSentimentBatchWorkers,
		timeout:       time.Duration(config.DefaultSentimentTimeoutSecs) * time.Second,
		logger:        logger,
	}
}

// WithConfig applies the sentiment section limits.
func (b *ScorerBuilder) WithConfig(cfg config.SentimentConfig) *ScorerBuilder {
	if cfg.MaxInputChars > 0 {
		b.maxInputChars = cfg.MaxInputChars
	}
	if cfg.BatchWorkers > 0 {
		b.batchWorkers = cfg.BatchWorkers
	}
	b.timeout = cfg.Timeout()
	return b
}

// WithClassifier sets the primary classifier. A nil classifier means every
// result comes from the heuristic.
func (b *ScorerBuilder) WithClassifier(c Classifier) *ScorerBuilder {
	b.classifier = c
	return b
}

// WithMaxInputChars sets the classifier input window.
func (b *ScorerBuilder) WithMaxInputChars(n int) *ScorerBuilder {
	b.maxInputChars = n
	return b
}

// WithBatchWorkers bounds concurrent classifications in BatchAnalyze.
func (b *ScorerBuilder) WithBatchWorkers(n int) *ScorerBuilder {
	b.batchWorkers = n
	return b
}

// WithTimeout bounds each classifier call.
func (b *ScorerBuilder) WithTimeout(d time.Duration) *ScorerBuilder {
	b.timeout = d
	return b
}

// Build creates the Scorer.
func (b *ScorerBuilder) Build() *Scorer {
	workers := b.batchWorkers
	if workers < 1 {
		workers = 1
	}
	return &Scorer{
		classifier:    b.classifier,
		maxInputChars: b.maxInputChars,
		batchWorkers:  workers,
		timeout:       b.timeout,
		logger:        b.logger.With().Str("component", "SentimentScorer").Logger(),
	}
}

// Analyze classifies text. Empty text is NEUTRAL 0.5; classifier failures and
// unrecognized labels degrade to the heuristic.
func (s *Scorer) Analyze(ctx context.Context, text string) models.SentimentResult {
	if strings.TrimSpace(text) == "" {
		return models.SentimentResult{
			Label:      models.SentimentNeutral,
			Confidence: 0.5,
			Provenance: models.ProvenanceHeuristic,
		}
	}

	if s.classifier == nil {
		return HeuristicScore(text)
	}

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	label, confidence, err := s.classifier.Classify(callCtx, truncate(text, s.maxInputChars))
	if err != nil {
		s.logger.Warn().Err(err).Msg("Sentiment classifier failed, using heuristic")
		return HeuristicScore(text)
	}

	normalized, ok := normalizeLabel(label)
	if !ok {
		s.logger.Warn().Str("label", label).Msg("Unknown classifier label, using heuristic")
		return HeuristicScore(text)
	}

	return models.SentimentResult{
		Label:      normalized,
		Confidence: clamp01(confidence),
		Provenance: models.ProvenanceModel,
	}
}

// BatchAnalyze classifies texts concurrently and returns results in input order.
func (s *Scorer) BatchAnalyze(ctx context.Context, texts []string) []models.SentimentResult {
	results := make([]models.SentimentResult, len(texts))
	if len(texts) == 0 {
		return results
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchWorkers)
	for i, text := range texts {
		g.Go(func() error {
			results[i] = s.Analyze(gctx, text)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// Polarity maps a result onto [-1,1]: confidence for POSITIVE, its negation
// for NEGATIVE, zero otherwise.
func (s *Scorer) Polarity(ctx context.Context, text string) float64 {
	r := s.Analyze(ctx, text)
	switch r.Label {
	case models.SentimentPositive:
		return r.Confidence
	case models.SentimentNegative:
		return -r.Confidence
	default:
		return 0
	}
}

func normalizeLabel(label string) (models.SentimentLabel, bool) {
	switch models.SentimentLabel(strings.ToUpper(strings.TrimSpace(label))) {
	case models.SentimentPositive:
		return models.SentimentPositive, true
	case models.SentimentNegative:
		return models.SentimentNegative, true
	case models.SentimentNeutral:
		return models.SentimentNeutral, true
	}
	return "", false
}

func truncate(text string, maxChars int) string {
	if maxChars <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars])
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
