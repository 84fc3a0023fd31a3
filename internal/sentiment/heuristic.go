package sentiment

import (
	"strings"

	"github.com/aleister1102/offerguard/internal/models"
)

var positiveTerms = []string{
	"opportunity", "growth", "learn", "mentorship", "hands-on",
	"experience", "develop", "gain", "professional", "team",
	"innovative", "exciting", "excellent", "great", "outstanding",
	"career", "advancement", "training", "skills", "collaborative",
	"dynamic", "cutting-edge", "industry", "expert", "comprehensive",
}

var negativeTerms = []string{
	"scam", "fraud", "fake", "payment required", "pay upfront",
	"suspicious", "unclear", "vague", "confusing", "unprofessional",
	"urgent", "act now", "limited time", "guarantee", "no experience needed",
}

const (
	minPlausibleWords = 50
	maxPlausibleWords = 1000
)

// HeuristicScore classifies text by counting distinct vocabulary hits. Each
// term counts once no matter how often it appears.
func HeuristicScore(text string) models.SentimentResult {
	lower := strings.ToLower(text)
	positives := countTerms(lower, positiveTerms)
	negatives := countTerms(lower, negativeTerms)
	words := len(strings.Fields(text))
	plausible := words >= minPlausibleWords && words <= maxPlausibleWords

	result := models.SentimentResult{Provenance: models.ProvenanceHeuristic}
	switch {
	case negatives > 2:
		result.Label, result.Confidence = models.SentimentNegative, 0.7
	case positives >= 5 && plausible:
		result.Label, result.Confidence = models.SentimentPositive, min(0.9, 0.6+0.05*float64(positives))
	case positives >= 2:
		result.Label, result.Confidence = models.SentimentPositive, 0.65
	default:
		result.Label, result.Confidence = models.SentimentNeutral, 0.7
	}
	return result
}

func countTerms(lower string, terms []string) int {
	n := 0
	for _, t := range terms {
		if strings.Contains(lower, t) {
			n++
		}
	}
	return n
}
