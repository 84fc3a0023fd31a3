package models

// CredibilityLevel is the discrete bucket of a credibility score.
type CredibilityLevel string

const (
	LevelHigh     CredibilityLevel = "HIGH"
	LevelModerate CredibilityLevel = "MODERATE"
	LevelLow      CredibilityLevel = "LOW"
	LevelVeryLow  CredibilityLevel = "VERY_LOW"
)

// LevelForScore maps a fused score in [0,1] onto a level.
func LevelForScore(score float64) CredibilityLevel {
	switch {
	case score >= 0.8:
		return LevelHigh
	case score >= 0.6:
		return LevelModerate
	case score >= 0.4:
		return LevelLow
	default:
		return LevelVeryLow
	}
}

// ScoreBreakdown holds the named sub-scores, each in [0,1].
type ScoreBreakdown struct {
	CompanyVerificationScore float64 `json:"company_verification_score"`
	URLScore                 float64 `json:"url_score"`
	EmailMatchScore          float64 `json:"email_match_score"`
	SentimentScore           float64 `json:"sentiment_score"`
	OfferQualityScore        float64 `json:"offer_quality_score"`
	RedFlagPenalty           float64 `json:"red_flag_penalty"`
}

// VerificationSummary is the slice of a verification result surfaced to callers.
type VerificationSummary struct {
	Status             VerificationStatus `json:"status"`
	Warnings           []string           `json:"warnings"`
	PositiveIndicators []string           `json:"positive_indicators"`
}

// ResolvedFields are the display values after resolution and backfill.
// Backfilled placeholders never feed a score.
type ResolvedFields struct {
	CompanyName    string   `json:"companyName"`
	CompanyWebsite string   `json:"companyWebsite"`
	ContactEmail   string   `json:"contactEmail"`
	Position       string   `json:"position"`
	Salary         string   `json:"salary"`
	Duration       string   `json:"duration"`
	WorkType       WorkType `json:"workType"`
}

// CredibilityAssessment is the fused result for one submission.
type CredibilityAssessment struct {
	CredibilityScore    float64              `json:"credibility_score"`
	CredibilityLevel    CredibilityLevel     `json:"credibility_level"`
	Breakdown           ScoreBreakdown       `json:"breakdown"`
	RedFlags            map[string]string    `json:"red_flags"`
	Recommendations     []string             `json:"recommendations"`
	CompanyVerification *VerificationSummary `json:"company_verification,omitempty"`
	ResolvedFields      ResolvedFields       `json:"resolved_fields"`
	MissingFields       []string             `json:"missing_fields,omitempty"`
	Sentiment           *SentimentResult     `json:"sentiment,omitempty"`
	URLFeatures         *URLFeatureSet       `json:"url_features,omitempty"`
	Error               string               `json:"error,omitempty"`
}
