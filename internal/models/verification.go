package models

// VerificationStatus buckets a company safety score.
type VerificationStatus string

const (
	StatusSafe       VerificationStatus = "SAFE"
	StatusLikelySafe VerificationStatus = "LIKELY_SAFE"
	StatusUncertain  VerificationStatus = "UNCERTAIN"
	StatusRisky      VerificationStatus = "RISKY"
	StatusError      VerificationStatus = "ERROR"
)

// OnlinePresence is the outcome of the online presence check.
type OnlinePresence string

const (
	PresenceKnownCompany OnlinePresence = "known_company"
	PresenceFound        OnlinePresence = "found"
	PresenceMinimal      OnlinePresence = "minimal"
	PresenceCannotVerify OnlinePresence = "cannot_verify"
	PresenceNotChecked   OnlinePresence = ""
)

// CompanyVerificationResult is the outcome of verifying one company.
type CompanyVerificationResult struct {
	CompanyName        string             `json:"company_name"`
	SafetyScore        float64            `json:"safety_score"`
	ChecksPerformed    []string           `json:"checks_performed"`
	Warnings           []string           `json:"warnings"`
	PositiveIndicators []string           `json:"positive_indicators"`
	NegativeIndicators []string           `json:"negative_indicators"`
	SearchResultsCount int                `json:"search_results_count"`
	HasOfficialWebsite bool               `json:"has_official_website"`
	ScamReportsFound   bool               `json:"scam_reports_found"`
	OnlinePresence     OnlinePresence     `json:"online_presence,omitempty"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	Error              string             `json:"error,omitempty"`
}

// StatusForScore maps a safety score onto the status ladder.
func StatusForScore(score float64) VerificationStatus {
	switch {
	case score >= 0.7:
		return StatusSafe
	case score >= 0.5:
		return StatusLikelySafe
	case score >= 0.3:
		return StatusUncertain
	default:
		return StatusRisky
	}
}
