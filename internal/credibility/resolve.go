package credibility

import (
	"strings"
	"unicode/utf8"

	"github.com/aleister1102/offerguard/internal/models"
	"github.com/aleister1102/offerguard/internal/search"
	"github.com/aleister1102/offerguard/internal/textparser"
)

const minDescriptionChars = 20

// Display placeholders for absent non-critical fields. They are never scored.
const (
	placeholderPosition = "Not specified"
	placeholderSalary   = "Not disclosed"
	placeholderDuration = "Not specified"
)

// Field names reported in missing_fields.
const (
	FieldCompanyName    = "companyName"
	FieldJobDescription = "jobDescription"
	FieldCompanyWebsite = "companyWebsite"
	FieldContactEmail   = "contactEmail"
	FieldPosition       = "position"
	FieldSalary         = "salary"
	FieldDuration       = "duration"
)

// resolvedFields are the scored inputs after merging top-level fields over
// parsed ones. Blank and sentinel values are stored as "".
type resolvedFields struct {
	companyName string
	sentinel    bool
	website     string
	email       string
	position    string
	salary      string
	duration    string
	description string
	workType    models.WorkType
	tags        []string
	missing     []string
}

func (e *Engine) resolve(sub models.Submission) resolvedFields {
	var parsed models.ParsedInternshipInfo
	hasParsed := false
	switch {
	case sub.Parsed != nil:
		parsed, hasParsed = *sub.Parsed, true
	case strings.TrimSpace(sub.RawText) != "":
		parsed, hasParsed = e.parser.Parse(sub.RawText), true
	}

	f := resolvedFields{
		companyName: pick(sub.CompanyName, parsed.CompanyName),
		website:     pick(sub.CompanyWebsite, parsed.CompanyWebsite),
		email:       pick(sub.ContactEmail, parsed.ContactEmail),
		position:    pick(sub.Position, parsed.Position),
		salary:      pick(sub.Salary, parsed.Salary),
		duration:    pick(sub.Duration, parsed.Duration),
		description: pick(sub.JobDescription, parsed.JobDescription),
		workType:    parsed.WorkType,
	}

	if strings.EqualFold(f.companyName, models.UnknownCompany) {
		f.companyName = ""
		f.sentinel = true
	}
	if textparser.IsPlaceholderEmail(f.email) {
		f.email = ""
	}

	if hasParsed {
		f.tags = parsed.RedFlags
	} else if f.description != "" {
		f.tags = textparser.DetectRedFlags(f.description)
	}

	if f.companyName == "" {
		f.missing = append(f.missing, FieldCompanyName)
	}
	if !f.hasDescription() {
		f.missing = append(f.missing, FieldJobDescription)
	}
	for _, opt := range []struct {
		name, value string
	}{
		{FieldCompanyWebsite, f.website},
		{FieldContactEmail, f.email},
		{FieldPosition, f.position},
		{FieldSalary, f.salary},
		{FieldDuration, f.duration},
	} {
		if opt.value == "" {
			f.missing = append(f.missing, opt.name)
		}
	}
	return f
}

// gate reports whether the submission must be rejected without scoring: the
// company name is the extraction sentinel, or both critical fields are missing.
func (f resolvedFields) gate() (string, bool) {
	if f.sentinel {
		return "company name is the unknown-company sentinel", true
	}
	if f.companyName == "" && !f.hasDescription() {
		return "company name and job description are missing", true
	}
	return "", false
}

func (f resolvedFields) hasDescription() bool {
	return utf8.RuneCountInString(f.description) >= minDescriptionChars
}

// display fills absent non-critical fields with placeholders.
func (f resolvedFields) display() models.ResolvedFields {
	d := models.ResolvedFields{
		CompanyName:    f.companyName,
		CompanyWebsite: f.website,
		ContactEmail:   f.email,
		Position:       orDefault(f.position, placeholderPosition),
		Salary:         orDefault(f.salary, placeholderSalary),
		Duration:       orDefault(f.duration, placeholderDuration),
		WorkType:       f.workType,
	}
	if f.sentinel {
		d.CompanyName = models.UnknownCompany
	}
	if d.ContactEmail == "" {
		d.ContactEmail = synthesizedEmail(f.companyName)
	}
	return d
}

func synthesizedEmail(companyName string) string {
	slug := search.Slug(companyName)
	if slug == "" {
		return textparser.PlaceholderGenericEmail
	}
	return "contact@" + slug + ".com"
}

func pick(explicit, parsed string) string {
	if v := strings.TrimSpace(explicit); v != "" {
		return v
	}
	return strings.TrimSpace(parsed)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
