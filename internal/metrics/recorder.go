// Package metrics exposes Prometheus counters for assessment outcomes.
package metrics

import (
	"github.com/aleister1102/offerguard/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// MetricsNamespace prefixes every metric this package registers.
	MetricsNamespace = "offerguard"
)

// Recorder holds the counters updated by the assessment pipeline.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	AssessmentsTotal    *prometheus.CounterVec
	GateRejectionsTotal prometheus.Counter
	SentimentTotal      *prometheus.CounterVec
	VerificationsTotal  *prometheus.CounterVec
}

// NewRecorder creates and registers the counters on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	factory := promauto.With(reg)
	r := &Recorder{}

	r.AssessmentsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Name:      "assessments_total",
			Help:      "Total number of credibility assessments by level",
		},
		[]string{"level"},
	)

	r.GateRejectionsTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Name:      "gate_rejections_total",
			Help:      "Total number of submissions rejected as incomplete",
		},
	)

	r.SentimentTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Name:      "sentiment_results_total",
			Help:      "Total number of sentiment results by provenance",
		},
		[]string{"provenance"},
	)

	r.VerificationsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Name:      "verifications_total",
			Help:      "Total number of company verifications by status",
		},
		[]string{"status"},
	)

	return r
}

// RecordAssessment counts a finished assessment.
func (r *Recorder) RecordAssessment(level models.CredibilityLevel) {
	if r == nil {
		return
	}
	r.AssessmentsTotal.WithLabelValues(string(level)).Inc()
}

// RecordGateRejection counts a submission short-circuited by the input gate.
func (r *Recorder) RecordGateRejection() {
	if r == nil {
		return
	}
	r.GateRejectionsTotal.Inc()
}

func (r *Recorder) RecordSentiment(provenance models.SentimentProvenance) {
	if r == nil || provenance == "" {
		return
	}
	r.SentimentTotal.WithLabelValues(string(provenance)).Inc()
}

func (r *Recorder) RecordVerification(status models.VerificationStatus) {
	if r == nil {
		return
	}
	r.VerificationsTotal.WithLabelValues(string(status)).Inc()
}
