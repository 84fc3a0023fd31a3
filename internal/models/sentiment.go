package models

// SentimentLabel is the polarity of a text.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "POSITIVE"
	SentimentNegative SentimentLabel = "NEGATIVE"
	SentimentNeutral  SentimentLabel = "NEUTRAL"
)

// SentimentProvenance records which path produced a SentimentResult.
type SentimentProvenance string

const (
	ProvenanceModel     SentimentProvenance = "model"
	ProvenanceHeuristic SentimentProvenance = "heuristic"
)

// SentimentResult is a polarity label with a confidence in [0,1].
type SentimentResult struct {
	Label      SentimentLabel      `json:"label"`
	Confidence float64             `json:"confidence"`
	Provenance SentimentProvenance `json:"provenance"`
}
