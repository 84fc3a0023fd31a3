package textparser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/aleister1102/offerguard/internal/models"
)

var (
	legalSuffixPattern  = regexp.MustCompile(`(?i)\b(PRIVATE LIMITED|PVT\.?\s*LTD|LTD|LIMITED|INC|CORP|CORPORATION)\b`)
	labelSplitPattern   = regexp.MustCompile(`[:–-]`)
	boilerplatePattern  = regexp.MustCompile(`(?i)^(about|start date|duration|stipend|salary|position|role|internship|location|apply|actively|hiring)`)
	numericLinePattern  = regexp.MustCompile(`^[\d\s,/-]+$`)
	currencyLinePattern = regexp.MustCompile(`(?i)[₹$€£]\s*[\d,]+|per\s+month|per\s+annum`)
	aboutHeaderPattern  = regexp.MustCompile(`(?i)^about\s+(?:the\s+)?(.+?)(?:\s*:|$)`)
	fieldLabelPattern   = regexp.MustCompile(`(?i)^(role|position|location|duration|stipend):`)
)

var companyLabels = []string{"company:", "organization:", "organisation:", "firm:", "employer:"}

// companyStrategy tries to find a company name among the non-empty trimmed
// lines of a posting. lowerText is the whole posting lowercased.
type companyStrategy struct {
	name    string
	extract func(lines []string, lowerText string) (string, bool)
}

var companyStrategies = []companyStrategy{
	{"legal_suffix", legalSuffixStrategy},
	{"label", labelStrategy},
	{"repetition", repetitionStrategy},
	{"short_capitalized", shortCapitalizedStrategy},
	{"about_header", aboutHeaderStrategy},
	{"leading_line", leadingLineStrategy},
	{"first_substantial", firstSubstantialStrategy},
}

// extractCompanyName runs the strategies in order; the first success wins.
func extractCompanyName(lines []string, lowerText string) (string, string) {
	if len(lines) == 0 {
		return models.UnknownCompany, ""
	}
	for _, s := range companyStrategies {
		if name, ok := s.extract(lines, lowerText); ok {
			return name, s.name
		}
	}
	return models.UnknownCompany, ""
}

func legalSuffixStrategy(lines []string, _ string) (string, bool) {
	for _, line := range lines {
		if legalSuffixPattern.MatchString(line) {
			return line, true
		}
	}
	return "", false
}

func labelStrategy(lines []string, _ string) (string, bool) {
	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, label := range companyLabels {
			if !strings.Contains(lower, label) {
				continue
			}
			parts := labelSplitPattern.Split(line, 2)
			if len(parts) > 1 {
				if extracted := strings.TrimSpace(parts[1]); extracted != "" {
					return extracted, true
				}
			}
		}
	}
	return "", false
}

func isBoilerplate(line string) bool {
	return boilerplatePattern.MatchString(line)
}

func repetitionStrategy(lines []string, lowerText string) (string, bool) {
	best, bestCount := "", 0
	for _, line := range firstN(lines, 15) {
		if isBoilerplate(line) ||
			len([]rune(line)) < 3 ||
			numericLinePattern.MatchString(line) ||
			currencyLinePattern.MatchString(line) {
			continue
		}
		count := strings.Count(lowerText, strings.ToLower(line))
		// strict comparison keeps the earliest line on ties
		if count >= 2 && count > bestCount {
			best, bestCount = line, count
		}
	}
	return best, bestCount > 0
}

func shortCapitalizedStrategy(lines []string, _ string) (string, bool) {
	for _, line := range firstN(lines, 12) {
		if isBoilerplate(line) {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 1 || len(words) > 3 {
			continue
		}
		if hasCapitalizedWord(words) && line != strings.ToLower(line) {
			return line, true
		}
	}
	return "", false
}

func aboutHeaderStrategy(lines []string, _ string) (string, bool) {
	for _, line := range lines {
		m := aboutHeaderPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if company := strings.TrimSpace(m[1]); len([]rune(company)) > 2 {
			return company, true
		}
	}
	return "", false
}

func leadingLineStrategy(lines []string, _ string) (string, bool) {
	for _, line := range firstN(lines, 5) {
		if startsUpper(line) && !fieldLabelPattern.MatchString(line) && len([]rune(line)) > 2 {
			return line, true
		}
	}
	return "", false
}

func firstSubstantialStrategy(lines []string, _ string) (string, bool) {
	for _, line := range lines {
		if len([]rune(line)) > 5 && !isAllDigits(line) {
			return line, true
		}
	}
	return "", false
}

func hasCapitalizedWord(words []string) bool {
	for _, w := range words {
		if startsUpper(w) {
			return true
		}
	}
	return false
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func firstN(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}
