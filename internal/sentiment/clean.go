package sentiment

import (
	"regexp"
	"strings"
)

var (
	cleanURLPattern   = regexp.MustCompile(`https?://\S+|www\.\S+`)
	cleanEmailPattern = regexp.MustCompile(`\S+@\S+`)
	cleanTagPattern   = regexp.MustCompile(`<[^>]+>`)
	cleanPunctPattern = regexp.MustCompile(`[^\p{L}\p{N}\s-]`)
)

// CleanText lowercases text and strips URLs, email addresses, HTML tags and
// punctuation, collapsing runs of whitespace. Hyphens survive so compound
// terms such as "hands-on" still match.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	s := strings.ToLower(text)
	s = cleanURLPattern.ReplaceAllString(s, " ")
	s = cleanEmailPattern.ReplaceAllString(s, " ")
	s = cleanTagPattern.ReplaceAllString(s, " ")
	s = cleanPunctPattern.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}
