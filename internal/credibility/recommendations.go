package credibility

import (
	"github.com/aleister1102/offerguard/internal/models"
	"github.com/aleister1102/offerguard/internal/textparser"
)

const (
	incompleteRecommendation = "Provide the company name and a complete job description (at least 20 characters) to get an assessment"
	errorRecommendation      = "Assessment could not be completed; review the offer manually"
	lowScoreThreshold        = 0.6
)

var flagAdvisories = []struct {
	flag   string
	advice string
}{
	{textparser.FlagPaymentRequired, "NEVER pay for internship opportunities"},
	{textparser.FlagNoContract, "Request formal written contract before starting"},
	{textparser.FlagPersonalInfo, "Do not share bank details or identity documents before signing an official contract"},
	{textparser.FlagPressureToDecide, "Take time to decide; legitimate employers do not demand instant acceptance"},
	{textparser.FlagUnrealisticSalary, "Treat stipends far above market rates with suspicion"},
}

func recommendations(score float64, level models.CredibilityLevel, flags map[string]string, warnings []string) []string {
	recs := make([]string, 0, len(warnings)+4)
	recs = append(recs, warnings...)

	if score < lowScoreThreshold {
		recs = append(recs,
			"Thoroughly verify company legitimacy",
			"Research company reviews on multiple platforms",
		)
	}

	if len(flags) > 0 {
		recs = append(recs, "Critical: Address all red flags before proceeding")
		for _, a := range flagAdvisories {
			if _, ok := flags[a.flag]; ok {
				recs = append(recs, a.advice)
			}
		}
	} else if level == models.LevelHigh {
		recs = append(recs, "Offer looks credible; confirm the details in writing before accepting")
	}
	return recs
}
