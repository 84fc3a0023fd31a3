package textparser

import (
	"regexp"
	"sort"
)

// Red flag category IDs.
const (
	FlagPaymentRequired      = "payment_required"
	FlagPersonalInfo         = "personal_info"
	FlagUnrealisticSalary    = "unrealistic_salary"
	FlagPressureToDecide     = "pressure_to_decide"
	FlagVagueCommunication   = "vague_communication"
	FlagNoContract           = "no_contract"
	FlagUnprofessional       = "unprofessional"
	FlagIncompleteSubmission = "incomplete_submission"
)

// RedFlagRule is one red flag category. The category is tagged when any of
// its patterns matches.
type RedFlagRule struct {
	RuleID      string           `json:"rule_id" yaml:"rule_id"`
	Description string           `json:"description" yaml:"description"`
	Patterns    []string         `json:"patterns" yaml:"patterns"`
	Compiled    []*regexp.Regexp `json:"-" yaml:"-"`
}

// Matches reports whether any pattern of the rule matches text.
func (r RedFlagRule) Matches(text string) bool {
	for _, re := range r.Compiled {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

var defaultRedFlagRules = compileRules([]RedFlagRule{
	{
		RuleID:      FlagPaymentRequired,
		Description: "Requires upfront payment",
		Patterns: []string{
			`\brequires\s+payment\b`,
			`registration\s+fee`,
			`upfront\s+(?:cost|payment|fee)`,
			`pay\s+to\s+(?:apply|join|start)`,
			`deposit\s+required`,
			`upfront\s+investment`,
			`₹\s*\d+\s*(?:fee|cost|payment)`,
		},
	},
	{
		RuleID:      FlagPersonalInfo,
		Description: "Requests personal/bank details",
		Patterns: []string{
			`bank\s+(?:account|details)`,
			`aadhar`,
			`\bpan\b`,
			`passport`,
			`ssn`,
			`credit\s+card`,
		},
	},
	{
		RuleID:      FlagUnrealisticSalary,
		Description: "Unrealistic salary claims",
		Patterns: []string{
			`earn\s+(?:fast|quick|money)`,
			`quick\s+(?:money|cash|earnings)`,
			`passive\s+income`,
			`make\s+money\s+fast`,
			`guaranteed\s+(?:income|earnings)`,
			`\b(?:50000|100000|unlimited)\s+(?:per\s+month|monthly)\b`,
		},
	},
	{
		RuleID:      FlagPressureToDecide,
		Description: "High pressure timeline",
		Patterns: []string{
			`(?:only|just)\s*\d+\s+(?:spots|positions|seats)\s+(?:left|available)`,
			`(?:immediate|urgent)\s+(?:decision|action|hiring)`,
			`decide\s+(?:now|today|immediately)`,
			`(?:limited|urgent)\s+(?:opportunity|positions)`,
		},
	},
	{
		RuleID:      FlagVagueCommunication,
		Description: "Vague communication",
		Patterns: []string{
			`(?:no\s+)?(?:experience|skills?)\s+(?:required|needed)`,
			`simple\s+tasks`,
			`(?:complete|just)\s+(?:simple|easy)\s+tasks`,
		},
	},
	{
		RuleID:      FlagNoContract,
		Description: "No written contract",
		Patterns: []string{
			`(?:no|without)\s+(?:written\s+)?contract`,
			`verbal\s+agreement`,
			`informal\s+arrangement`,
		},
	},
	{
		RuleID:      FlagUnprofessional,
		Description: "Unprofessional tone",
		Patterns: []string{
			`!!+`,
			`\bclick\s+here\b`,
			`apply\s+(?:now|today|here)`,
		},
	},
})

func compileRules(rules []RedFlagRule) []RedFlagRule {
	for i := range rules {
		rules[i].Compiled = make([]*regexp.Regexp, 0, len(rules[i].Patterns))
		for _, p := range rules[i].Patterns {
			rules[i].Compiled = append(rules[i].Compiled, regexp.MustCompile(`(?i)`+p))
		}
	}
	return rules
}

// RedFlagRules returns the built-in red flag bank in its fixed order.
func RedFlagRules() []RedFlagRule {
	out := make([]RedFlagRule, len(defaultRedFlagRules))
	copy(out, defaultRedFlagRules)
	return out
}

// DescribeRedFlag returns the description for a category; unknown IDs describe themselves.
func DescribeRedFlag(id string) string {
	for _, r := range defaultRedFlagRules {
		if r.RuleID == id {
			return r.Description
		}
	}
	if id == FlagIncompleteSubmission {
		return "Missing critical information (company name or job description)"
	}
	return id
}

// DetectRedFlags returns the sorted, deduplicated set of categories matched in text.
func DetectRedFlags(text string) []string {
	flags := []string{}
	for _, r := range defaultRedFlagRules {
		if r.Matches(text) {
			flags = append(flags, r.RuleID)
		}
	}
	sort.Strings(flags)
	return flags
}
