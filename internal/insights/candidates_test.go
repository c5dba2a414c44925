package insights

import (
	"strings"
	"testing"

	"github.com/zarlabs/survey-insights/internal/survey"
)

func TestEnhancedCandidateFullSignalsScoreHundred(t *testing.T) {
	interviews := []survey.Interview{{
		ID:                       "1",
		ShopType:                 "Pharmacy",
		Location:                 "I/10",
		DollarInquiry:            true,
		CustomerAskedForHelp:     true,
		PaymentMethods:           []string{"EasyPaisa", "JazzCash"},
		FraudStory:               false,
		CurrencyExchangeReferral: []string{"Western Union"},
	}}

	got := ComputeEnhancedPilotCandidates(interviews)
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	c := got[0]
	if c.ReadinessScore != 100 {
		t.Fatalf("score = %d, want 100", c.ReadinessScore)
	}
	if c.Factors.DigitalRailCount != 2 {
		t.Fatalf("rail count = %d", c.Factors.DigitalRailCount)
	}
	if !c.Factors.CurrentlyRefers {
		t.Fatal("expected currently refers")
	}
	if c.Factors.TrustConcernLevel != TrustConcernLow {
		t.Fatalf("trust level = %s", c.Factors.TrustConcernLevel)
	}
}

func TestEnhancedCandidateScoreBounds(t *testing.T) {
	// Exhaustive sweep over the boolean factor space with 0..3 rails: every
	// score must land in [0,100] and the 100 ceiling must be attainable.
	sawMax := false
	for _, inquiry := range []bool{false, true} {
		for _, helps := range []bool{false, true} {
			for _, fraud := range []bool{false, true} {
				for _, refers := range []bool{false, true} {
					for rails := 0; rails <= 3; rails++ {
						methods := []string{"Cash"}
						for i := 0; i < rails; i++ {
							methods = append(methods, []string{"EasyPaisa", "JazzCash", "Raast"}[i])
						}
						var referral []string
						if refers {
							referral = []string{"Bank"}
						}
						got := ComputeEnhancedPilotCandidates([]survey.Interview{{
							ID:                       "1",
							DollarInquiry:            inquiry,
							CustomerAskedForHelp:     helps,
							FraudStory:               fraud,
							PaymentMethods:           methods,
							CurrencyExchangeReferral: referral,
						}})
						for _, c := range got {
							if c.ReadinessScore < 0 || c.ReadinessScore > 100 {
								t.Fatalf("score out of bounds: %d", c.ReadinessScore)
							}
							if c.ReadinessScore == 100 {
								sawMax = true
							}
						}
					}
				}
			}
		}
	}
	if !sawMax {
		t.Fatal("maximum score of 100 never reached")
	}
}

func TestEnhancedCandidateMinimumScoreFilter(t *testing.T) {
	// Cash-only, no demand, no referral: only the no-fraud +15 applies, so
	// the interview is excluded.
	got := ComputeEnhancedPilotCandidates([]survey.Interview{{
		ID:             "1",
		PaymentMethods: []string{"Cash"},
	}})
	if len(got) != 0 {
		t.Fatalf("expected exclusion below minimum score, got %+v", got)
	}
}

func TestEnhancedCandidatesSortedDescending(t *testing.T) {
	interviews := []survey.Interview{
		{ID: "low", DollarInquiry: true, PaymentMethods: []string{"Cash"}},                                              // 30+15
		{ID: "high", DollarInquiry: true, CustomerAskedForHelp: true, PaymentMethods: []string{"EasyPaisa", "Raast"}},   // 30+20+20+15
		{ID: "mid", DollarInquiry: true, PaymentMethods: []string{"JazzCash"}, CurrencyExchangeReferral: []string{"x"}}, // 30+10+15+15
	}
	got := ComputeEnhancedPilotCandidates(interviews)
	if len(got) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].ReadinessScore > got[i-1].ReadinessScore {
			t.Fatalf("not sorted: %d after %d", got[i].ReadinessScore, got[i-1].ReadinessScore)
		}
	}
	if got[0].InterviewID != "high" || got[2].InterviewID != "low" {
		t.Fatalf("order: %s, %s, %s", got[0].InterviewID, got[1].InterviewID, got[2].InterviewID)
	}
}

func TestEnhancedCandidateStableOrderOnTies(t *testing.T) {
	a := survey.Interview{ID: "1", DollarInquiry: true, PaymentMethods: []string{"Cash"}}
	b := survey.Interview{ID: "2", DollarInquiry: true, PaymentMethods: []string{"Cash"}}
	got := ComputeEnhancedPilotCandidates([]survey.Interview{a, b})
	if len(got) != 2 || got[0].InterviewID != "1" || got[1].InterviewID != "2" {
		t.Fatalf("tie order not stable: %+v", got)
	}
}

func TestDetermineTrustConcernLevel(t *testing.T) {
	if got := DetermineTrustConcernLevel(true, ""); got != TrustConcernHigh {
		t.Fatalf("fraud story: %s", got)
	}
	if got := DetermineTrustConcernLevel(false, "worried about scam risk"); got != TrustConcernMedium {
		t.Fatalf("concern text: %s", got)
	}
	if got := DetermineTrustConcernLevel(false, "no worries at all"); got != TrustConcernLow {
		t.Fatalf("clean: %s", got)
	}
}

func TestApproachScriptComposedFromFactors(t *testing.T) {
	factors := CandidateFactors{
		HasFXDemand:       true,
		HelpsCustomers:    true,
		TrustConcernLevel: TrustConcernHigh,
		CurrentlyRefers:   true,
	}
	script := generateApproachScript(factors)
	for _, fragment := range []string{"foreign currency", "already help customers", "proof-of-payment", "earn commission"} {
		if !strings.Contains(script, fragment) {
			t.Fatalf("script missing %q: %s", fragment, script)
		}
	}

	if got := generateApproachScript(CandidateFactors{}); got != fallbackApproachScript {
		t.Fatalf("fallback script: %q", got)
	}
}

func TestRiskMitigationLevels(t *testing.T) {
	high := generateRiskMitigation(TrustConcernHigh, true)
	if !strings.Contains(high, "anti-fraud") || !strings.Contains(high, "pilot protection") {
		t.Fatalf("high mitigation: %s", high)
	}
	medium := generateRiskMitigation(TrustConcernMedium, false)
	if !strings.Contains(medium, "training") {
		t.Fatalf("medium mitigation: %s", medium)
	}
	low := generateRiskMitigation(TrustConcernLow, false)
	if !strings.Contains(low, "standard onboarding") {
		t.Fatalf("low mitigation: %s", low)
	}
}
