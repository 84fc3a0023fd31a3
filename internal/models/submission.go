package models

// Submission is one offer to assess. Top-level fields override the matching
// fields of Parsed; RawText is parsed when Parsed is nil.
type Submission struct {
	CompanyName    string `json:"companyName,omitempty"`
	CompanyWebsite string `json:"companyWebsite,omitempty"`
	ContactEmail   string `json:"contactEmail,omitempty"`
	Position       string `json:"position,omitempty"`
	Salary         string `json:"salary,omitempty"`
	Duration       string `json:"duration,omitempty"`
	JobDescription string `json:"jobDescription,omitempty"`

	RawText string                `json:"rawText,omitempty"`
	Parsed  *ParsedInternshipInfo `json:"parsed,omitempty"`

	// Legacy self-reported flags.
	RequiresPayment      bool `json:"requiresPayment,omitempty"`
	RequestsBankDetails  bool `json:"requestsBankDetails,omitempty"`
	NoContract           bool `json:"noContract,omitempty"`
	PressureToDecide     bool `json:"pressureToDecide,omitempty"`
	RequestsPersonalInfo bool `json:"requestsPersonalInfo,omitempty"`
}
