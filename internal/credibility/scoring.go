package credibility

import (
	"math"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/aleister1102/offerguard/internal/models"
	"github.com/aleister1102/offerguard/internal/urlfeatures"
)

// Fusion weights for the positive evidence.
const (
	weightCompanyVerification = 0.40
	weightOfferQuality        = 0.30
	weightSentiment           = 0.20
	weightEmailMatch          = 0.10
)

// Salvage applies when almost no positive evidence exists but the
// description was still classified.
const (
	salvageThreshold = 0.05
	salvageBase      = 0.2
	salvageSlope     = 0.3
)

const (
	penaltyPerFlag       = 0.25
	longDescriptionChars = 500
	longDescriptionBonus = 0.1
	qualityCategoryScore = 0.25
)

type keywordCategory struct {
	name     string
	keywords []string
}

var offerQualityCategories = []keywordCategory{
	{"responsibilities", []string{"responsibilit", "duties", "you will", "day-to-day", "tasks include", "work on"}},
	{"requirements", []string{"requirement", "qualification", "required skills", "must have", "proficien", "knowledge of", "experience with"}},
	{"benefits", []string{"benefit", "stipend", "certificate", "perks", "letter of recommendation", "pre-placement offer", "mentorship"}},
	{"eligibility", []string{"eligib", "who can apply", "open to", "currently pursuing", "final year", "graduates", "enrolled in"}},
}

// urlScore sums independent structural bonuses. A missing or unparseable
// website scores 0.
func urlScore(f *models.URLFeatureSet) float64 {
	if f == nil || !f.Valid() {
		return 0
	}
	score := 0.0
	if f.HasHTTPS {
		score += 0.35
	}
	if !f.HasIPAddress {
		score += 0.25
	}
	if f.DomainEntropy < urlfeatures.SuspiciousEntropy {
		score += 0.20
	}
	if f.NumHyphens <= 1 {
		score += 0.10
	}
	if f.NumDigits <= 2 {
		score += 0.10
	}
	return clamp01(score)
}

// emailMatchScore is 1 when the email domain and the website host (without
// "www.") contain one another, else 0.
func emailMatchScore(email, website string) float64 {
	at := strings.LastIndex(email, "@")
	if at < 0 || website == "" {
		return 0
	}
	emailDomain := strings.ToLower(strings.TrimSpace(email[at+1:]))
	host := websiteHost(website)
	if emailDomain == "" || host == "" {
		return 0
	}
	if strings.Contains(host, emailDomain) || strings.Contains(emailDomain, host) {
		return 1
	}
	return 0
}

func websiteHost(website string) string {
	raw := strings.TrimSpace(website)
	lower := strings.ToLower(raw)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

func sentimentScore(r *models.SentimentResult) float64 {
	if r == nil {
		return 0
	}
	c := clamp01(r.Confidence)
	switch r.Label {
	case models.SentimentPositive:
		return clamp01(0.55 + c*0.45)
	case models.SentimentNegative:
		return max(0, 0.45-c*0.45)
	default:
		return 0.5
	}
}

func offerQualityScore(description string, present bool) float64 {
	if !present {
		return 0
	}
	lower := strings.ToLower(description)
	score := 0.0
	for _, cat := range offerQualityCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				score += qualityCategoryScore
				break
			}
		}
	}
	if utf8.RuneCountInString(description) > longDescriptionChars {
		score += longDescriptionBonus
	}
	return min(score, 1.0)
}

func redFlagPenalty(count int) float64 {
	return min(float64(count)*penaltyPerFlag, 1.0)
}

// fuse combines the breakdown into a score in [0,1]. The red flag penalty
// scales the positive evidence; it is never offset by it.
func fuse(b models.ScoreBreakdown, hasSentiment bool) float64 {
	positive := b.CompanyVerificationScore*weightCompanyVerification +
		b.OfferQualityScore*weightOfferQuality +
		b.SentimentScore*weightSentiment +
		b.EmailMatchScore*weightEmailMatch

	switch {
	case positive == 0 && !hasSentiment:
		return 0
	case positive <= salvageThreshold && hasSentiment:
		return clamp01(salvageBase + b.SentimentScore*salvageSlope)
	default:
		return clamp01(positive * (1 - b.RedFlagPenalty))
	}
}

func roundScore(score float64) float64 {
	return math.Round(clamp01(score)*100*100) / 100
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
