package textparser

import (
	"strings"
	"testing"

	"github.com/aleister1102/offerguard/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser() *Parser {
	return NewParser(zerolog.Nop())
}

func TestParse_Empty(t *testing.T) {
	info := newTestParser().Parse("")

	assert.Equal(t, models.UnknownCompany, info.CompanyName)
	assert.Empty(t, info.CompanyWebsite)
	assert.Empty(t, info.ContactEmail)
	assert.Empty(t, info.Position)
	assert.Empty(t, info.Salary)
	assert.Empty(t, info.Duration)
	assert.Equal(t, models.WorkTypeUnknown, info.WorkType)
	assert.Empty(t, info.RedFlags)
}

func TestParse_FullPosting(t *testing.T) {
	raw := strings.Join([]string{
		"Software Developer Intern",
		"ACME TECHNOLOGIES PRIVATE LIMITED",
		"Stipend: ₹ 10,000 - 15,000 /month",
		"Duration: 3 Months",
		"Work from home",
		"Apply at https://acmetech.in/careers or mail hr@acmetech.in",
	}, "\n")

	info := newTestParser().Parse(raw)

	assert.Equal(t, "ACME TECHNOLOGIES PRIVATE LIMITED", info.CompanyName)
	assert.Equal(t, "https://acmetech.in/careers", info.CompanyWebsite)
	assert.Equal(t, "hr@acmetech.in", info.ContactEmail)
	assert.Equal(t, "Software Developer Intern", info.Position)
	assert.Equal(t, "10,000 - 15,000 /month", info.Salary)
	assert.Equal(t, "3 months", info.Duration)
	assert.Equal(t, models.WorkTypeRemote, info.WorkType)
	assert.Empty(t, info.RedFlags)
	assert.Equal(t, raw, info.JobDescription)
	assert.Equal(t, raw, info.RawText)
}

func TestParse_HTMLPosting(t *testing.T) {
	raw := `<html><body><h1>Frontend Intern</h1><p>Company: Skyline Apps</p>` +
		`<p>Stipend: ₹ 8,000 - 12,000 /month</p><ul><li>Duration: 2 months</li><li>Remote</li></ul>` +
		`<script>var x = "ignored";</script></body></html>`

	info := newTestParser().Parse(raw)

	assert.Equal(t, "Skyline Apps", info.CompanyName)
	assert.Equal(t, "Frontend Intern", info.Position)
	assert.Equal(t, "8,000 - 12,000 /month", info.Salary)
	assert.Equal(t, "2 months", info.Duration)
	assert.Equal(t, models.WorkTypeRemote, info.WorkType)
	assert.NotContains(t, info.JobDescription, "<p>")
	assert.NotContains(t, info.JobDescription, "ignored")
	assert.Equal(t, "Frontend Intern", strings.Split(info.JobDescription, "\n")[0])
}

func TestParse_CRLF(t *testing.T) {
	info := newTestParser().Parse("Acme Corp\r\nRole: Intern\r\n")
	assert.Equal(t, "Acme Corp", info.CompanyName)
	assert.NotContains(t, info.RawText, "\r")
}

func TestExtractCompanyName_Strategies(t *testing.T) {
	tests := []struct {
		name         string
		lines        []string
		wantCompany  string
		wantStrategy string
	}{
		{
			name:         "legal suffix anywhere",
			lines:        []string{"Hiring now", "Orbit Softech Pvt Ltd"},
			wantCompany:  "Orbit Softech Pvt Ltd",
			wantStrategy: "legal_suffix",
		},
		{
			name:         "label",
			lines:        []string{"we're growing fast and need help", "Employer: Helio Works"},
			wantCompany:  "Helio Works",
			wantStrategy: "label",
		},
		{
			name:         "repetition skips boilerplate",
			lines:        []string{"Start Date: Immediately", "Quantaleaf", "Great Place To Work Certified", "quantaleaf is a fintech startup"},
			wantCompany:  "Quantaleaf",
			wantStrategy: "repetition",
		},
		{
			name:         "repetition tie keeps earliest",
			lines:        []string{"Alpha Co", "Beta Co", "alpha co and beta co"},
			wantCompany:  "Alpha Co",
			wantStrategy: "repetition",
		},
		{
			name:         "short capitalized line",
			lines:        []string{"we are a growing team looking for people", "Nova Studio", "apply soon"},
			wantCompany:  "Nova Studio",
			wantStrategy: "short_capitalized",
		},
		{
			name:         "about header",
			lines:        []string{"About the Lumen Collective: who we are and what we build", "we build tools for schools across the region"},
			wantCompany:  "Lumen Collective",
			wantStrategy: "about_header",
		},
		{
			name:         "leading capitalized line",
			lines:        []string{"Exciting roles for motivated graduates in many cities", "more details inside"},
			wantCompany:  "Exciting roles for motivated graduates in many cities",
			wantStrategy: "leading_line",
		},
		{
			name:         "first substantial line",
			lines:        []string{"12345", "lowercase only posting text here"},
			wantCompany:  "lowercase only posting text here",
			wantStrategy: "first_substantial",
		},
		{
			name:         "nothing usable",
			lines:        []string{"1234567"},
			wantCompany:  models.UnknownCompany,
			wantStrategy: "",
		},
		{
			name:         "no lines",
			lines:        nil,
			wantCompany:  models.UnknownCompany,
			wantStrategy: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			company, strategy := extractCompanyName(tt.lines, strings.ToLower(strings.Join(tt.lines, "\n")))
			assert.Equal(t, tt.wantCompany, company)
			assert.Equal(t, tt.wantStrategy, strategy)
		})
	}
}

func TestLegalSuffix_WordBounded(t *testing.T) {
	_, ok := legalSuffixStrategy([]string{"Distinctive design studio"}, "")
	assert.False(t, ok)

	name, ok := legalSuffixStrategy([]string{"Brightwave Inc."}, "")
	require.True(t, ok)
	assert.Equal(t, "Brightwave Inc.", name)
}

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		want        string
		placeholder bool
	}{
		{"skips test addresses", "Contact test@acme.com or jobs@acme.io", "jobs@acme.io", false},
		{"internshala placeholder", "Apply via Internshala for this role", PlaceholderInternshalaEmail, true},
		{"linkedin placeholder", "Seen on LinkedIn", PlaceholderLinkedInEmail, true},
		{"generic placeholder", "Stipend provided monthly", PlaceholderGenericEmail, true},
		{"nothing", "hello world", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractEmail(tt.text)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.placeholder, IsPlaceholderEmail(got))
		})
	}
}

func TestExtractSalary(t *testing.T) {
	assert.Equal(t, "5,000 - 8,000 per month", extractSalary("Salary: Rs. 5,000 - 8,000 per month"))
	assert.Equal(t, "12000 monthly", extractSalary("Compensation: 12000 monthly"))
	assert.Equal(t, "$500", extractSalary("Pay is $500 weekly"))
	assert.Empty(t, extractSalary("unpaid but fun"))
}

func TestExtractSalary_IgnoresBareUnitWords(t *testing.T) {
	tests := []string{
		"Part-time role at a growing company, pa based office",
		"Payment on completion of the project",
		"pm me for details about the opening",
		"Per annum review with your mentor",
	}
	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			assert.Empty(t, extractSalary(text))
		})
	}

	assert.Equal(t, "10,000 - 15,000 per month", extractSalary("Stipend: ₹10,000 - 15,000 per month"))
	assert.Equal(t, "Rs 9,000", extractSalary("You will get Rs 9,000 per month"))
}

func TestExtractDuration(t *testing.T) {
	assert.Equal(t, "6 weeks", extractDuration("A 6 Weeks programme"))
	assert.Equal(t, "flexible, ends in spring", extractDuration("Timeline: flexible, ends in spring"))
	assert.Empty(t, extractDuration("no dates given"))
}

func TestExtractPosition(t *testing.T) {
	lines := []string{"Welcome to our team page", "Position: Marketing Associate"}
	assert.Equal(t, "Marketing Associate", extractPosition(strings.Join(lines, "\n"), lines))

	lines = []string{"Welcome aboard", "We need a Data Engineer for our platform"}
	assert.Equal(t, "We need a Data Engineer for our platform", extractPosition(strings.Join(lines, "\n"), lines))

	assert.Empty(t, extractPosition("nothing here", []string{"nothing here"}))
}

func TestExtractWorkType(t *testing.T) {
	tests := map[string]models.WorkType{
		"Fully remote role":           models.WorkTypeRemote,
		"Hybrid model, 2 days a week": models.WorkTypeHybrid,
		"Work from our Pune office":   models.WorkTypeOnsite,
		"no location info":            models.WorkTypeUnknown,
	}
	for text, want := range tests {
		assert.Equal(t, want, extractWorkType(text), text)
	}
}

func TestDetectRedFlags(t *testing.T) {
	tests := []struct {
		text string
		flag string
	}{
		{"A registration fee of 500 is required", FlagPaymentRequired},
		{"Share your bank account details", FlagPersonalInfo},
		{"Earn money from home with passive income", FlagUnrealisticSalary},
		{"Only 3 spots left, decide now", FlagPressureToDecide},
		{"No experience required, simple tasks", FlagVagueCommunication},
		{"Verbal agreement only, no written contract", FlagNoContract},
		{"Click here to join", FlagUnprofessional},
	}
	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			assert.Contains(t, DetectRedFlags(tt.text), tt.flag)
		})
	}
}

func TestDetectRedFlags_SortedAndDeduplicated(t *testing.T) {
	flags := DetectRedFlags("Pay to join!! Registration fee required. Upfront payment. Verbal agreement.")
	assert.Equal(t, []string{FlagNoContract, FlagPaymentRequired, FlagUnprofessional}, flags)
	assert.Empty(t, DetectRedFlags("A structured internship with mentorship"))
}

func TestDescribeRedFlag(t *testing.T) {
	assert.Equal(t, "Requires upfront payment", DescribeRedFlag(FlagPaymentRequired))
	assert.Equal(t, "custom_flag", DescribeRedFlag("custom_flag"))
	assert.Len(t, RedFlagRules(), 7)
}
