package insights

import (
	"strings"

	"github.com/zarlabs/survey-insights/internal/survey"
)

// digitalRailKeywords identifies non-cash payment rails in free-text method
// entries. Shared by the funnel and the candidate scorer.
var digitalRailKeywords = []string{
	"easypaisa",
	"jazzcash",
	"bank",
	"sadapay",
	"nayapay",
	"raast",
}

func usesDigitalRail(method string) bool {
	lower := strings.ToLower(method)
	for _, kw := range digitalRailKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func digitalRailCount(paymentMethods []string) int {
	count := 0
	for _, m := range paymentMethods {
		if usesDigitalRail(m) {
			count++
		}
	}
	return count
}

// ComputeConversionFunnel narrows the full interview list through five
// fixed stages. Each stage filters the previous stage's population, so
// counts are non-increasing by construction.
func ComputeConversionFunnel(interviews []survey.Interview) []FunnelStage {
	total := len(interviews)

	ids := func(set []survey.Interview) []string {
		out := make([]string, 0, len(set))
		for _, iv := range set {
			out = append(out, iv.ID)
		}
		return out
	}

	filter := func(set []survey.Interview, keep func(survey.Interview) bool) []survey.Interview {
		var out []survey.Interview
		for _, iv := range set {
			if keep(iv) {
				out = append(out, iv)
			}
		}
		return out
	}

	pct := func(count int) int {
		if total == 0 {
			return 0
		}
		return int(float64(count)/float64(total)*100 + 0.5)
	}

	digitalActive := filter(interviews, func(iv survey.Interview) bool {
		return digitalRailCount(iv.PaymentMethods) >= 1
	})
	fxDemand := filter(digitalActive, func(iv survey.Interview) bool { return iv.DollarInquiry })
	willing := filter(fxDemand, func(iv survey.Interview) bool { return iv.CustomerAskedForHelp })
	pilotReady := filter(willing, func(iv survey.Interview) bool { return !iv.FraudStory })

	return []FunnelStage{
		{
			Name:         "All Interviews",
			Count:        total,
			Percentage:   100,
			InterviewIDs: ids(interviews),
		},
		{
			Name:          "Digital Active",
			Count:         len(digitalActive),
			Percentage:    pct(len(digitalActive)),
			InterviewIDs:  ids(digitalActive),
			DropOffReason: "Cash-only or no digital payments",
		},
		{
			Name:          "FX Demand",
			Count:         len(fxDemand),
			Percentage:    pct(len(fxDemand)),
			InterviewIDs:  ids(fxDemand),
			DropOffReason: "No customer inquiries about foreign currency",
		},
		{
			Name:          "Willing to Help",
			Count:         len(willing),
			Percentage:    pct(len(willing)),
			InterviewIDs:  ids(willing),
			DropOffReason: "Not actively helping customers with transfers",
		},
		{
			Name:          "Pilot Ready",
			Count:         len(pilotReady),
			Percentage:    pct(len(pilotReady)),
			InterviewIDs:  ids(pilotReady),
			DropOffReason: "Fraud concerns or trust barriers",
		},
	}
}
