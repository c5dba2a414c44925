package insights

import (
	"strings"
	"testing"
)

func segmentsWithCounts(ready, promising, digital, cash int) []SegmentSummary {
	return []SegmentSummary{
		{Segment: SegmentReadyNow, Count: ready},
		{Segment: SegmentPromising, Count: promising},
		{Segment: SegmentDigitalNoFXYet, Count: digital},
		{Segment: SegmentCashFirst, Count: cash},
	}
}

func TestScorecardEmptyDatasetKillsAtLowConfidence(t *testing.T) {
	sc := ComputeValidationScorecard(0, 0, nil, nil, 0, 0)
	if sc.OverallVerdict != VerdictKill {
		t.Fatalf("verdict = %s, want kill", sc.OverallVerdict)
	}
	if sc.ConfidenceLevel != ConfidenceLow {
		t.Fatalf("confidence = %s, want low", sc.ConfidenceLevel)
	}
	byID := map[DimensionID]ValidationDimension{}
	for _, d := range sc.Dimensions {
		byID[d.ID] = d
	}
	if byID[DimensionProblem].Score != 0 {
		t.Fatalf("problem score = %d", byID[DimensionProblem].Score)
	}
	// Friction and trust default to the neutral 50 when there is no data.
	if byID[DimensionFriction].Score != 50 {
		t.Fatalf("friction score = %d, want 50", byID[DimensionFriction].Score)
	}
	if byID[DimensionTrust].Score != 50 {
		t.Fatalf("trust score = %d, want 50", byID[DimensionTrust].Score)
	}
}

func TestScorecardStrongSignalsPersevere(t *testing.T) {
	buckets := []BarDatum{{Name: BucketKnowledgeGap, Value: 8}, {Name: BucketLegalCompliance, Value: 1}}
	sc := ComputeValidationScorecard(20, 16, segmentsWithCounts(8, 6, 3, 3), buckets, 4, 6)
	// problem=80, willingness=70, friction=round((7/20+0.5)*100)=85,
	// trust=80, pilots=100 -> avg=83.
	if sc.OverallVerdict != VerdictPersevere {
		t.Fatalf("verdict = %s, want persevere", sc.OverallVerdict)
	}
	if sc.ConfidenceLevel != ConfidenceHigh {
		t.Fatalf("confidence = %s, want high", sc.ConfidenceLevel)
	}
	if !strings.Contains(sc.VerdictRationale, "Proceed with experiments") {
		t.Fatalf("rationale: %s", sc.VerdictRationale)
	}
}

func TestScorecardDimensionScores(t *testing.T) {
	buckets := []BarDatum{{Name: BucketKnowledgeGap, Value: 2}, {Name: BucketLegalCompliance, Value: 4}}
	sc := ComputeValidationScorecard(10, 3, segmentsWithCounts(1, 2, 3, 4), buckets, 6, 2)

	want := map[DimensionID]int{
		DimensionProblem:     30, // 3/10
		DimensionWillingness: 30, // (1+2)/10
		DimensionFriction:    30, // ((2-4)/10+0.5)*100
		DimensionTrust:       40, // (10-6)/10
		DimensionPilots:      67, // round(2/3*100)
	}
	for _, d := range sc.Dimensions {
		if d.Score != want[d.ID] {
			t.Fatalf("%s score = %d, want %d", d.ID, d.Score, want[d.ID])
		}
	}
	if sc.ConfidenceLevel != ConfidenceMedium {
		t.Fatalf("confidence = %s, want medium", sc.ConfidenceLevel)
	}
}

func TestScorecardPilotScoreCapsAtHundred(t *testing.T) {
	sc := ComputeValidationScorecard(5, 0, segmentsWithCounts(0, 0, 0, 5), nil, 0, 9)
	for _, d := range sc.Dimensions {
		if d.ID == DimensionPilots && d.Score != 100 {
			t.Fatalf("pilot score = %d, want 100", d.Score)
		}
	}
}

func TestScorecardFrictionClamped(t *testing.T) {
	// Heavy legal block: raw friction would go negative; it must clamp to 0.
	buckets := []BarDatum{{Name: BucketLegalCompliance, Value: 10}}
	sc := ComputeValidationScorecard(10, 0, segmentsWithCounts(0, 0, 0, 10), buckets, 0, 0)
	for _, d := range sc.Dimensions {
		if d.ID == DimensionFriction && d.Score != 0 {
			t.Fatalf("friction score = %d, want 0", d.Score)
		}
	}
}

func TestScoreToSignalThresholds(t *testing.T) {
	cases := []struct {
		score int
		want  ValidationSignal
	}{
		{100, SignalStrong},
		{70, SignalStrong},
		{69, SignalModerate},
		{45, SignalModerate},
		{44, SignalWeak},
		{20, SignalWeak},
		{19, SignalAbsent},
		{0, SignalAbsent},
	}
	for _, tc := range cases {
		if got := scoreToSignal(tc.score); got != tc.want {
			t.Fatalf("scoreToSignal(%d) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestComputeVerdictDecisionTable(t *testing.T) {
	cases := []struct {
		avg     float64
		problem int
		want    ValidationVerdict
	}{
		{70, 70, VerdictPersevere},
		{65, 60, VerdictPersevere},
		{70, 50, VerdictInvestigate}, // avg high but problem below 60
		{50, 10, VerdictInvestigate}, // avg rule outranks the kill rule
		{40, 20, VerdictKill},
		{40, 35, VerdictPivot},
	}
	for _, tc := range cases {
		if got := computeVerdict(tc.avg, tc.problem); got != tc.want {
			t.Fatalf("computeVerdict(%v, %d) = %s, want %s", tc.avg, tc.problem, got, tc.want)
		}
	}
}

func TestComputeConfidenceThresholds(t *testing.T) {
	if computeConfidence(15) != ConfidenceHigh || computeConfidence(20) != ConfidenceHigh {
		t.Fatal("high threshold")
	}
	if computeConfidence(10) != ConfidenceMedium || computeConfidence(14) != ConfidenceMedium {
		t.Fatal("medium threshold")
	}
	if computeConfidence(9) != ConfidenceLow || computeConfidence(0) != ConfidenceLow {
		t.Fatal("low threshold")
	}
}
