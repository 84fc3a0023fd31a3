package models

// UnknownCompany is the company name produced when no extraction strategy succeeds.
const UnknownCompany = "Unknown Company"

// WorkType describes where the intern is expected to work.
type WorkType string

const (
	WorkTypeRemote  WorkType = "remote"
	WorkTypeHybrid  WorkType = "hybrid"
	WorkTypeOnsite  WorkType = "onsite"
	WorkTypeUnknown WorkType = ""
)

// ParsedInternshipInfo holds the fields extracted from a raw offer posting.
// Missing fields are empty strings; RedFlags is sorted and deduplicated.
type ParsedInternshipInfo struct {
	CompanyName    string   `json:"companyName"`
	CompanyWebsite string   `json:"companyWebsite"`
	ContactEmail   string   `json:"contactEmail"`
	Position       string   `json:"position"`
	Salary         string   `json:"salary"`
	Duration       string   `json:"duration"`
	WorkType       WorkType `json:"workType"`
	RedFlags       []string `json:"redFlags"`
	JobDescription string   `json:"jobDescription"`
	RawText        string   `json:"rawText"`
}

// HasRedFlag reports whether tag is among the parsed red flags.
func (p ParsedInternshipInfo) HasRedFlag(tag string) bool {
	for _, f := range p.RedFlags {
		if f == tag {
			return true
		}
	}
	return false
}
