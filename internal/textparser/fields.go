package textparser

import (
	"regexp"
	"strings"

	"github.com/aleister1102/offerguard/internal/models"
)

// Placeholder contact addresses synthesized when a posting carries no usable email.
const (
	PlaceholderInternshalaEmail = "internship@internshala.com"
	PlaceholderLinkedInEmail    = "jobs@linkedin.com"
	PlaceholderGenericEmail     = "contact@company.com"
)

var (
	emailPattern        = regexp.MustCompile(`[\w\.-]+@[\w\.-]+\.\w+`)
	ignoredEmailPattern = regexp.MustCompile(`(?i)(example|test|sample|noreply)`)
	urlPattern          = regexp.MustCompile(`https?://(?:www\.)?[-a-zA-Z0-9@:%._\+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b(?:[-a-zA-Z0-9()@:%_\+.~#?&/=]*)`)
	currencyPattern     = regexp.MustCompile(`(?:Rs|₹|\$|€|£)\s*[\d,]+(?:\.\d{2})?`)
	postingHintPattern  = regexp.MustCompile(`(?i)(internship|intern|stipend|duration|job description)`)
	internshalaPattern  = regexp.MustCompile(`(?i)internshala`)
	linkedinPattern     = regexp.MustCompile(`(?i)linkedin`)

	roleKeywordPattern   = regexp.MustCompile(`(?i)(intern|admin|manager|developer|engineer|analyst|assist|coord|execut|trainee|assoc|designer|specialist)`)
	shortLegalPattern    = regexp.MustCompile(`(?i)(PRIVATE LIMITED|LTD|INC|CORP)`)
	salaryRangePattern   = regexp.MustCompile(`(?i)(?:stipend|salary)[:\s]*(?:₹|Rs\.?|\$)\s*([\d,]+\s*-\s*[\d,]+\s*(?:/month|per month)?)`)
	durationValuePattern = regexp.MustCompile(`(?i)(\d+\s*(?:weeks?|months?|years?))`)
)

var (
	positionLabels = labelPatterns(`[^\n]+`, "position", "role", "designation", "title", "job title", "internship role")
	salaryLabels   = labelPatterns(`[\w \t₹$€£,\.]+`, "salary", "stipend", "compensation", "remuneration")
	durationLabels = labelPatterns(`[^\n]+`, "duration", "period", "length", "timeline")
)

var workTypeKeywords = []struct {
	workType models.WorkType
	keywords []string
}{
	{models.WorkTypeRemote, []string{"remote", "work from home", "wfh", "online"}},
	{models.WorkTypeHybrid, []string{"hybrid", "mixed", "flexible"}},
	{models.WorkTypeOnsite, []string{"onsite", "on-site", "in-office", "office"}},
}

func labelPatterns(value string, labels ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(labels))
	for _, l := range labels {
		out = append(out, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(l)+`[:\s\-–]+(`+value+`)`))
	}
	return out
}

// captureLabel returns the trimmed value after the first matching label.
func captureLabel(text string, patterns []*regexp.Regexp, minLen int) string {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if v := strings.TrimSpace(m[1]); len([]rune(v)) >= minLen && v != "" {
			return v
		}
	}
	return ""
}

// IsPlaceholderEmail reports whether email was synthesized by the parser
// rather than found in the posting.
func IsPlaceholderEmail(email string) bool {
	switch strings.ToLower(strings.TrimSpace(email)) {
	case PlaceholderInternshalaEmail, PlaceholderLinkedInEmail, PlaceholderGenericEmail:
		return true
	}
	return false
}

func extractWebsite(text string) string {
	return urlPattern.FindString(text)
}

func extractEmail(text string) string {
	for _, e := range emailPattern.FindAllString(text, -1) {
		if !ignoredEmailPattern.MatchString(e) {
			return e
		}
	}
	switch {
	case internshalaPattern.MatchString(text):
		return PlaceholderInternshalaEmail
	case linkedinPattern.MatchString(text):
		return PlaceholderLinkedInEmail
	case postingHintPattern.MatchString(text):
		return PlaceholderGenericEmail
	}
	return ""
}

func extractPosition(text string, lines []string) string {
	if len(lines) > 0 {
		first := lines[0]
		if len([]rune(first)) < 50 && !shortLegalPattern.MatchString(first) &&
			roleKeywordPattern.MatchString(first) && len([]rune(first)) >= 3 {
			return first
		}
	}

	if v := captureLabel(text, positionLabels, 3); v != "" {
		return v
	}

	for _, line := range firstN(lines, 10) {
		n := len([]rune(line))
		if roleKeywordPattern.MatchString(line) && n >= 3 && n < 100 {
			return line
		}
	}
	return ""
}

func extractSalary(text string) string {
	if m := salaryRangePattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if v := captureLabel(text, salaryLabels, 1); v != "" {
		return v
	}
	return currencyPattern.FindString(text)
}

func extractDuration(text string) string {
	if m := durationValuePattern.FindStringSubmatch(text); m != nil {
		return strings.ToLower(m[1])
	}
	return captureLabel(text, durationLabels, 1)
}

func extractWorkType(text string) models.WorkType {
	lower := strings.ToLower(text)
	for _, wt := range workTypeKeywords {
		for _, k := range wt.keywords {
			if strings.Contains(lower, k) {
				return wt.workType
			}
		}
	}
	return models.WorkTypeUnknown
}
