package verifier

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/aleister1102/offerguard/internal/common/errorwrapper"
	"github.com/aleister1102/offerguard/internal/models"
)

// checkOutcome is the contribution of one check. flagged and count carry the
// check-specific signal (scam reports found, website reachable, references).
type checkOutcome struct {
	name     string
	delta    float64
	warnings []string
	positive []string
	negative []string
	flagged  bool
	count    int
	presence models.OnlinePresence
}

type namePattern struct {
	re          *regexp.Regexp
	description string
}

var suspiciousNamePatterns = []namePattern{
	{regexp.MustCompile(`\d{10,}`), "Company name contains very long number sequence"},
	{regexp.MustCompile(`(?i)(?:earn|make)\s+money\s+(?:fast|quick|easily)`), "Promises quick money in name"},
	{regexp.MustCompile(`(?i)work\s+from\s+home\s+(?:earn|make)`), "Work from home money scheme pattern"},
	{regexp.MustCompile(`(?i)guaranteed\s+(?:income|salary|earnings)`), "Guaranteed income promise"},
	{regexp.MustCompile(`(?i)(?:free|easy)\s+money`), "Free/easy money pattern"},
}

var scamKeywords = []string{"scam", "fraud", "fake", "complaint", "warning", "avoid", "beware"}

func scamQueries(name string) []string {
	return []string{
		fmt.Sprintf(`"%s" scam`, name),
		fmt.Sprintf(`"%s" fraud`, name),
		fmt.Sprintf(`"%s" internship scam complaint`, name),
		fmt.Sprintf(`"%s" fake internship`, name),
	}
}

func (v *Verifier) checkScamReports(ctx context.Context, name string) checkOutcome {
	out := checkOutcome{name: CheckScamReports}
	lower := strings.ToLower(name)

	var indicators []string
	for _, p := range suspiciousNamePatterns {
		if p.re.MatchString(lower) {
			indicators = append(indicators, p.description)
		}
	}

	words := strings.Fields(lower)
	if len(words) == 1 && utf8.RuneCountInString(name) < 4 {
		indicators = append(indicators, "Company name is too short/generic")
	}
	if hasRepeatedWords(words) {
		indicators = append(indicators, "Company name has repeated words (unusual pattern)")
	}
	flagged := len(indicators) > 0

	if v.search != nil {
		found := v.searchScamReports(ctx, name)
		if len(found) > 0 {
			flagged = true
			indicators = append(indicators, found...)
		}
	}

	out.flagged = flagged
	if flagged {
		out.delta = -0.4
		out.negative = indicators
		out.warnings = []string{"Scam reports found for " + name}
	} else {
		out.delta = 0.3
		out.positive = []string{"No scam reports found"}
	}
	return out
}

// searchScamReports runs the scam queries in order. A quota or credential
// refusal stops the remaining queries; other errors skip one query.
func (v *Verifier) searchScamReports(ctx context.Context, name string) []string {
	var indicators []string
	seen := make(map[string]struct{})

	for _, query := range scamQueries(name) {
		qctx, cancel := context.WithTimeout(ctx, v.checkTimeout)
		results, err := v.search.Search(qctx, query, scamQueryResults)
		cancel()
		if err != nil {
			if errors.Is(err, errorwrapper.ErrQuotaExceeded) {
				v.logger.Warn().Err(err).Msg("Search quota exceeded or credentials rejected, skipping remaining scam queries")
				break
			}
			if ctx.Err() != nil {
				break
			}
			v.logger.Warn().Err(err).Str("query", query).Msg("Scam report query failed")
			continue
		}

		for _, r := range results {
			title := strings.ToLower(r.Title)
			snippet := strings.ToLower(r.Snippet)
			for _, kw := range scamKeywords {
				if strings.Contains(title, kw) || strings.Contains(snippet, kw) {
					indicator := fmt.Sprintf("Found '%s' in search result: %s", kw, truncateRunes(r.Title, 60))
					if _, dup := seen[indicator]; !dup {
						seen[indicator] = struct{}{}
						indicators = append(indicators, indicator)
					}
					break
				}
			}
		}
	}
	return indicators
}

func (v *Verifier) checkWebsite(ctx context.Context, website string) checkOutcome {
	out := checkOutcome{name: CheckWebsite}

	target := website
	if !strings.HasPrefix(strings.ToLower(target), "http://") && !strings.HasPrefix(strings.ToLower(target), "https://") {
		target = "https://" + target
	}
	isHTTPS := strings.HasPrefix(strings.ToLower(target), "https://")

	pctx, cancel := context.WithTimeout(ctx, v.checkTimeout)
	defer cancel()
	resp, err := v.prober.Head(pctx, target)

	if err == nil && resp.IsSuccess() {
		out.flagged = true
		out.delta = 0.25
		out.positive = []string{"Company has accessible website"}
		if isHTTPS {
			out.delta += 0.1
			out.positive = append(out.positive, "Website uses HTTPS")
		}
		return out
	}

	out.delta = -0.2
	out.warnings = []string{"Company website is not accessible"}
	switch {
	case err == nil:
		out.negative = []string{fmt.Sprintf("Website returned HTTP %d", resp.StatusCode)}
	case errors.Is(err, errorwrapper.ErrTLSFailure):
		out.negative = []string{"Website has an invalid SSL certificate"}
	case errors.Is(err, errorwrapper.ErrTimeout):
		out.negative = []string{"Website timed out"}
	default:
		out.negative = []string{"Website is not accessible"}
	}
	v.logger.Debug().Err(err).Str("url", redact(target)).Msg("Website check failed")
	return out
}

func (v *Verifier) checkOnlinePresence(ctx context.Context, name string) checkOutcome {
	out := checkOutcome{name: CheckPresence}

	if v.matcher.Contains(name) {
		out.count = knownCompanyRefs
		out.presence = models.PresenceKnownCompany
		out.delta = min(0.05*float64(out.count), 0.25)
		out.positive = []string{fmt.Sprintf("Found %d online references", out.count)}
		return out
	}

	if v.search == nil {
		return cannotVerify(out, "Company is not in the verified list and search is not configured")
	}

	qctx, cancel := context.WithTimeout(ctx, v.checkTimeout)
	defer cancel()
	results, err := v.search.Search(qctx, fmt.Sprintf(`"%s" company`, name), presenceQueryResults)
	if err != nil {
		v.logger.Warn().Err(err).Str("company", name).Msg("Online presence query failed")
		return cannotVerify(out, "Online presence search failed")
	}

	out.count = len(results)
	if out.count > 0 {
		out.presence = models.PresenceFound
		out.delta = min(0.05*float64(out.count), 0.25)
		out.positive = []string{fmt.Sprintf("Found %d online references", out.count)}
		return out
	}

	out.presence = models.PresenceMinimal
	out.delta = -0.1
	out.negative = []string{"Very limited online presence"}
	out.warnings = []string{"Company has minimal online presence"}
	return out
}

func cannotVerify(out checkOutcome, reason string) checkOutcome {
	out.presence = models.PresenceCannotVerify
	out.warnings = []string{"Unable to verify online presence: " + reason}
	return out
}

func (v *Verifier) checkPlatforms(name string) checkOutcome {
	out := checkOutcome{name: CheckPlatform}
	if v.matcher.Contains(name) {
		out.flagged = true
		out.delta = 0.2
		out.positive = []string{"Listed on: LinkedIn"}
	}
	return out
}

func hasRepeatedWords(words []string) bool {
	if len(words) <= 2 {
		return false
	}
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			return true
		}
		seen[w] = struct{}{}
	}
	return false
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func redact(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.RawQuery = ""
	u.User = nil
	return u.String()
}
