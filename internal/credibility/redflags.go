package credibility

import (
	"github.com/aleister1102/offerguard/internal/models"
	"github.com/aleister1102/offerguard/internal/textparser"
)

// FlagIncompleteSubmission is the only flag of a gate-rejected submission.
const FlagIncompleteSubmission = textparser.FlagIncompleteSubmission

// collectRedFlags merges the self-reported booleans with the parsed tags into
// a category -> description map.
func collectRedFlags(sub models.Submission, tags []string) map[string]string {
	flags := make(map[string]string)
	add := func(id string) { flags[id] = describeFlag(id) }

	if sub.RequiresPayment {
		add(textparser.FlagPaymentRequired)
	}
	if sub.RequestsBankDetails || sub.RequestsPersonalInfo {
		add(textparser.FlagPersonalInfo)
	}
	if sub.NoContract {
		add(textparser.FlagNoContract)
	}
	if sub.PressureToDecide {
		add(textparser.FlagPressureToDecide)
	}
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		add(normalizeTag(tag))
	}
	return flags
}

// normalizeTag maps the legacy "pressure" tag onto its category.
func normalizeTag(tag string) string {
	if tag == "pressure" {
		return textparser.FlagPressureToDecide
	}
	return tag
}

func describeFlag(id string) string {
	return textparser.DescribeRedFlag(id)
}
