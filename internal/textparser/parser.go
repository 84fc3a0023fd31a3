// Package textparser extracts structured offer fields from free-form posting text.
package textparser

import (
	"strings"

	"github.com/aleister1102/offerguard/internal/models"
	"github.com/rs/zerolog"
)

// Parser turns raw posting text into ParsedInternshipInfo. It holds no
// mutable state and is safe for concurrent use.
type Parser struct {
	logger zerolog.Logger
}

// NewParser creates a Parser.
func NewParser(logger zerolog.Logger) *Parser {
	return &Parser{
		logger: logger.With().Str("component", "TextInfoParser").Logger(),
	}
}

// Parse extracts every field it can. It never fails: missing fields are
// empty strings, the company name falls back to models.UnknownCompany.
func (p *Parser) Parse(rawText string) models.ParsedInternshipInfo {
	text := p.normalize(rawText)
	lines := nonEmptyLines(text)

	company, strategy := extractCompanyName(lines, strings.ToLower(text))
	info := models.ParsedInternshipInfo{
		CompanyName:    company,
		CompanyWebsite: extractWebsite(text),
		ContactEmail:   extractEmail(text),
		Position:       extractPosition(text, lines),
		Salary:         extractSalary(text),
		Duration:       extractDuration(text),
		WorkType:       extractWorkType(text),
		RedFlags:       DetectRedFlags(text),
		JobDescription: text,
		RawText:        text,
	}

	p.logger.Debug().
		Str("company", info.CompanyName).
		Str("strategy", strategy).
		Strs("red_flags", info.RedFlags).
		Msg("Parsed posting")

	return info
}

// normalize converts CRLF line endings and renders pasted HTML as text.
func (p *Parser) normalize(rawText string) string {
	text := strings.ReplaceAll(rawText, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if !looksLikeHTML(text) {
		return text
	}
	rendered, err := htmlToLines(text)
	if err != nil {
		p.logger.Warn().Err(err).Msg("Failed to render HTML posting, using raw text")
		return text
	}
	return rendered
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
