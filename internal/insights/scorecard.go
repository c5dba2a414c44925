package insights

import (
	"fmt"
	"math"
	"time"
)

// Signal thresholds for a 0-100 dimension score.
func scoreToSignal(score int) ValidationSignal {
	switch {
	case score >= 70:
		return SignalStrong
	case score >= 45:
		return SignalModerate
	case score >= 20:
		return SignalWeak
	default:
		return SignalAbsent
	}
}

// Verdict decision table, first match wins.
func computeVerdict(avgScore float64, problemScore int) ValidationVerdict {
	switch {
	case avgScore >= 65 && problemScore >= 60:
		return VerdictPersevere
	case avgScore >= 45:
		return VerdictInvestigate
	case problemScore < 30:
		return VerdictKill
	default:
		return VerdictPivot
	}
}

func computeConfidence(sampleSize int) ConfidenceLevel {
	switch {
	case sampleSize >= 15:
		return ConfidenceHigh
	case sampleSize >= 10:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

var verdictRationales = map[ValidationVerdict]string{
	VerdictPersevere:   "Strong demand signal with actionable path to pilots. Proceed with experiments.",
	VerdictInvestigate: "Mixed signals. Run targeted experiments to validate specific hypotheses.",
	VerdictPivot:       "Demand exists but execution barriers are significant. Explore alternative models.",
	VerdictKill:        "Insufficient demand signal. Consider adjacent opportunities.",
}

func roundPct(numerator, denominator int) int {
	if denominator == 0 {
		return 0
	}
	return int(math.Round(float64(numerator) / float64(denominator) * 100))
}

func bucketValue(buckets []BarDatum, name string) int {
	for _, b := range buckets {
		if b.Name == name {
			return b.Value
		}
	}
	return 0
}

// ComputeValidationScorecard folds the five dimension scores into one
// lean-startup verdict with a sample-size-driven confidence level. Every
// ratio is zero-guarded, so an empty dataset produces a "kill" verdict at
// low confidence rather than a panic.
func ComputeValidationScorecard(
	total int,
	fxInquiryCount int,
	segments []SegmentSummary,
	whyNotHandleFXBuckets []BarDatum,
	fraudStoryCount int,
	pilotCandidateCount int,
) ValidationScorecard {
	// Problem: do customers actually ask for FX?
	problemScore := roundPct(fxInquiryCount, total)

	// Willingness: ready + promising segments.
	readyCount := 0
	for _, s := range segments {
		if s.Segment == SegmentReadyNow || s.Segment == SegmentPromising {
			readyCount += s.Count
		}
	}
	willingnessScore := roundPct(readyCount, total)

	// Friction: knowledge gaps are solvable, legal blocks are not.
	knowledgeGap := bucketValue(whyNotHandleFXBuckets, BucketKnowledgeGap)
	legalBlock := bucketValue(whyNotHandleFXBuckets, BucketLegalCompliance)
	frictionScore := 50
	if total > 0 {
		raw := (float64(knowledgeGap-legalBlock)/float64(total) + 0.5) * 100
		frictionScore = int(math.Round(math.Max(0, math.Min(100, raw))))
	}

	// Trust: inverse of the fraud story rate.
	trustScore := 50
	if total > 0 {
		trustScore = roundPct(total-fraudStoryCount, total)
	}

	// Pilots: target is PilotTargetCount candidates or more.
	pilotScore := int(math.Round(float64(pilotCandidateCount) / float64(PilotTargetCount) * 100))
	if pilotScore > 100 {
		pilotScore = 100
	}

	avgScore := float64(problemScore+willingnessScore+frictionScore+trustScore+pilotScore) / 5
	verdict := computeVerdict(avgScore, problemScore)

	frictionBlocker := "legal concerns"
	if knowledgeGap > legalBlock {
		frictionBlocker = "knowledge gap"
	}

	dimensions := []ValidationDimension{
		{
			ID:      DimensionProblem,
			Name:    "Problem Exists",
			Score:   problemScore,
			Signal:  scoreToSignal(problemScore),
			Summary: fmt.Sprintf("%d/%d (%d%%) interviews show FX demand", fxInquiryCount, total, problemScore),
		},
		{
			ID:      DimensionWillingness,
			Name:    "Willingness to Act",
			Score:   willingnessScore,
			Signal:  scoreToSignal(willingnessScore),
			Summary: fmt.Sprintf("%d/%d (%d%%) in ready/promising segments", readyCount, total, willingnessScore),
		},
		{
			ID:      DimensionFriction,
			Name:    "Friction Solvability",
			Score:   frictionScore,
			Signal:  scoreToSignal(frictionScore),
			Summary: fmt.Sprintf("Primary blocker is %q (addressable)", frictionBlocker),
		},
		{
			ID:      DimensionTrust,
			Name:    "Trust Buildable",
			Score:   trustScore,
			Signal:  scoreToSignal(trustScore),
			Summary: fmt.Sprintf("%d/%d (%d%%) have no fraud stories", total-fraudStoryCount, total, trustScore),
		},
		{
			ID:      DimensionPilots,
			Name:    "Pilot Availability",
			Score:   pilotScore,
			Signal:  scoreToSignal(pilotScore),
			Summary: fmt.Sprintf("%d candidates identified (target: %d+)", pilotCandidateCount, PilotTargetCount),
		},
	}

	return ValidationScorecard{
		OverallVerdict:   verdict,
		VerdictRationale: verdictRationales[verdict],
		ConfidenceLevel:  computeConfidence(total),
		Dimensions:       dimensions,
		LastUpdated:      time.Now().UTC().Format(time.RFC3339),
	}
}
