package insights

import (
	"regexp"
	"sort"
	"strings"

	"github.com/zarlabs/survey-insights/internal/survey"
)

var trustConcernRe = regexp.MustCompile(`(?i)fraud|scam|fear|trust|risk|security`)

// DetermineTrustConcernLevel grades how much trust work a candidate needs:
// a real fraud story is high, fraud language in their concerns is medium.
func DetermineTrustConcernLevel(fraudStory bool, concernsText string) TrustConcernLevel {
	if fraudStory {
		return TrustConcernHigh
	}
	if trustConcernRe.MatchString(concernsText) {
		return TrustConcernMedium
	}
	return TrustConcernLow
}

// Readiness score weights. The digital-rail branch is mutually exclusive,
// so the maximum attainable score is exactly 100; the clamp below keeps
// that an enforced bound rather than a property of the weight table.
const (
	scoreFXDemand       = 30
	scoreHelps          = 20
	scoreMultiRail      = 20
	scoreSingleRail     = 10
	scoreNoFraudStory   = 15
	scoreActiveReferrer = 15
)

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

type scriptRule struct {
	Applies  func(CandidateFactors) bool
	Fragment string
}

// approachScriptRules is a declarative condition -> fragment table; matched
// fragments are joined with spaces.
var approachScriptRules = []scriptRule{
	{
		func(f CandidateFactors) bool { return f.HasFXDemand },
		"Lead with: 'We noticed your customers ask about foreign currency...'",
	},
	{
		func(f CandidateFactors) bool { return f.HelpsCustomers },
		"Acknowledge: 'You already help customers with transfers - this builds on that.'",
	},
	{
		func(f CandidateFactors) bool { return f.TrustConcernLevel == TrustConcernHigh },
		"Address trust: 'We provide proof-of-payment receipts and reversal protection.'",
	},
	{
		func(f CandidateFactors) bool { return f.CurrentlyRefers },
		"Opportunity: 'Instead of referring to Western Union, you could earn commission.'",
	},
}

const fallbackApproachScript = "Standard pitch: introduce ZAR and its benefits."

func generateApproachScript(factors CandidateFactors) string {
	var scripts []string
	for _, rule := range approachScriptRules {
		if rule.Applies(factors) {
			scripts = append(scripts, rule.Fragment)
		}
	}
	if len(scripts) == 0 {
		return fallbackApproachScript
	}
	return strings.Join(scripts, " ")
}

func generateRiskMitigation(trustConcernLevel TrustConcernLevel, fraudStory bool) string {
	var mitigations []string
	if fraudStory {
		mitigations = append(mitigations, "Show anti-fraud features: receipt generation, transaction limits, customer verification.")
	}
	switch trustConcernLevel {
	case TrustConcernHigh:
		mitigations = append(mitigations, "Offer pilot protection: guarantee against losses during trial period.")
	case TrustConcernMedium:
		mitigations = append(mitigations, "Provide training on recognizing fraud patterns and using safety features.")
	}
	if len(mitigations) == 0 {
		return "Low risk profile - standard onboarding should suffice."
	}
	return strings.Join(mitigations, " ")
}

func orUnknown(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Unknown"
	}
	return v
}

// ComputeEnhancedPilotCandidates scores every interview on the additive
// readiness point system, keeps those at or above MinPilotScore, and sorts
// descending by score (stable, so equal scores keep interview order).
func ComputeEnhancedPilotCandidates(interviews []survey.Interview) []EnhancedPilotCandidate {
	var candidates []EnhancedPilotCandidate
	for _, iv := range interviews {
		railCount := digitalRailCount(iv.PaymentMethods)
		concernsText := iv.ConcernsBeforeStarting + " " + iv.CurrentProblems
		trustLevel := DetermineTrustConcernLevel(iv.FraudStory, concernsText)
		currentlyRefers := len(iv.CurrencyExchangeReferral) > 0

		score := 0
		if iv.DollarInquiry {
			score += scoreFXDemand
		}
		if iv.CustomerAskedForHelp {
			score += scoreHelps
		}
		switch {
		case railCount >= 2:
			score += scoreMultiRail
		case railCount == 1:
			score += scoreSingleRail
		}
		if !iv.FraudStory {
			score += scoreNoFraudStory
		}
		if currentlyRefers {
			score += scoreActiveReferrer
		}
		score = clampScore(score)

		if score < MinPilotScore {
			continue
		}

		factors := CandidateFactors{
			HasFXDemand:       iv.DollarInquiry,
			HelpsCustomers:    iv.CustomerAskedForHelp,
			DigitalRailCount:  railCount,
			TrustConcernLevel: trustLevel,
			CurrentlyRefers:   currentlyRefers,
		}

		candidates = append(candidates, EnhancedPilotCandidate{
			InterviewID:    iv.ID,
			ShopType:       orUnknown(iv.ShopType),
			Location:       orUnknown(iv.Location),
			OwnerAge:       iv.OwnerAge,
			DailyCustomers: orUnknown(iv.CustomersPerDay),
			ReadinessScore: score,
			Factors:        factors,
			ApproachScript: generateApproachScript(factors),
			RiskMitigation: generateRiskMitigation(trustLevel, iv.FraudStory),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ReadinessScore > candidates[j].ReadinessScore
	})
	return candidates
}
