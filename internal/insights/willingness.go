package insights

import (
	"regexp"
	"sort"
	"strings"

	"github.com/zarlabs/survey-insights/internal/survey"
)

type willingnessPattern struct {
	Factor          string
	Patterns        []*regexp.Regexp
	Actionability   Actionability
	SuggestedAction string
}

// willingnessPatterns maps trust-building factors merchants mention to the
// concrete action that would exploit them. Any single pattern hit counts
// the interview once for that factor.
var willingnessPatterns = []willingnessPattern{
	{
		Factor: "Government approval",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)government`),
			regexp.MustCompile(`(?i)approval`),
			regexp.MustCompile(`(?i)legal`),
			regexp.MustCompile(`(?i)authorized`),
			regexp.MustCompile(`(?i)official`),
		},
		Actionability:   ActionabilityHigh,
		SuggestedAction: "Create official-looking documentation, certificates, or partnership announcements",
	},
	{
		Factor: "Social proof",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)seeing others`),
			regexp.MustCompile(`(?i)other shops`),
			regexp.MustCompile(`(?i)everyone`),
			regexp.MustCompile(`(?i)many people`),
			regexp.MustCompile(`(?i)popular`),
		},
		Actionability:   ActionabilityHigh,
		SuggestedAction: "Showcase early adopters, create referral program, share success stories",
	},
	{
		Factor: "Established reputation",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)long time`),
			regexp.MustCompile(`(?i)established`),
			regexp.MustCompile(`(?i)reputation`),
			regexp.MustCompile(`(?i)trusted brand`),
			regexp.MustCompile(`(?i)years in`),
		},
		Actionability:   ActionabilityMedium,
		SuggestedAction: "Highlight company background, team credentials, investor backing",
	},
	{
		Factor: "Clear process",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)clear rules`),
			regexp.MustCompile(`(?i)process`),
			regexp.MustCompile(`(?i)simple`),
			regexp.MustCompile(`(?i)easy to use`),
			regexp.MustCompile(`(?i)straightforward`),
		},
		Actionability:   ActionabilityHigh,
		SuggestedAction: "Create step-by-step guides, training materials, visual workflows",
	},
	{
		Factor: "Personal recommendation",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)recommendation`),
			regexp.MustCompile(`(?i)friend`),
			regexp.MustCompile(`(?i)trusted person`),
			regexp.MustCompile(`(?i)someone i know`),
			regexp.MustCompile(`(?i)referred`),
		},
		Actionability:   ActionabilityMedium,
		SuggestedAction: "Build referral incentives, partner with community leaders",
	},
}

// ExtractWillingnessFactors counts which trust factors appear across the
// interview set, searching each interview's stated trust factors plus its
// embedded transcript. Factors nobody mentioned are dropped; the rest sort
// by mention count descending.
func ExtractWillingnessFactors(interviews []survey.Interview) []WillingnessFactor {
	type tally struct {
		count int
		ids   []string
	}
	tallies := make(map[string]*tally, len(willingnessPatterns))
	for _, wp := range willingnessPatterns {
		tallies[wp.Factor] = &tally{}
	}

	for _, iv := range interviews {
		searchText := strings.ToLower(iv.TrustFactors + " " + iv.Transcript)
		for _, wp := range willingnessPatterns {
			for _, re := range wp.Patterns {
				if re.MatchString(searchText) {
					t := tallies[wp.Factor]
					t.count++
					t.ids = append(t.ids, iv.ID)
					break
				}
			}
		}
	}

	var factors []WillingnessFactor
	for _, wp := range willingnessPatterns {
		t := tallies[wp.Factor]
		if t.count == 0 {
			continue
		}
		factors = append(factors, WillingnessFactor{
			Factor:          wp.Factor,
			MentionCount:    t.count,
			InterviewIDs:    t.ids,
			Actionability:   wp.Actionability,
			SuggestedAction: wp.SuggestedAction,
		})
	}

	sort.SliceStable(factors, func(i, j int) bool {
		return factors[i].MentionCount > factors[j].MentionCount
	})
	return factors
}
