package insights

// SegmentSignals are the derived inputs the segmenter decides on. Each is an
// OR of a structured survey flag and a transcript hit, so transcript text
// can upgrade a structured "no" answer but never downgrade a "yes".
type SegmentSignals struct {
	Demand       bool
	Helps        bool
	DigitalCount int
	FraudConcern bool
}

// segmentRules is the ordered decision list for readiness segmentation.
// First matching rule wins; this is a priority list, not a score.
var segmentRules = []struct {
	Applies func(SegmentSignals) bool
	Segment ReadinessSegment
}{
	{func(s SegmentSignals) bool { return s.Demand && s.Helps && s.DigitalCount >= 2 }, SegmentReadyNow},
	{func(s SegmentSignals) bool { return s.Demand && (s.Helps || s.DigitalCount >= 1) }, SegmentPromising},
	{func(s SegmentSignals) bool { return !s.Demand && s.DigitalCount >= 2 }, SegmentDigitalNoFXYet},
	{func(s SegmentSignals) bool { return s.FraudConcern && s.DigitalCount <= 1 }, SegmentCashFirst},
}

// DetermineSegment classifies an interview into exactly one of the four
// readiness segments. Segments partition the interview set.
func DetermineSegment(signals SegmentSignals) ReadinessSegment {
	for _, rule := range segmentRules {
		if rule.Applies(signals) {
			return rule.Segment
		}
	}
	return SegmentCashFirst
}

func segmentLabel(segment ReadinessSegment) string {
	switch segment {
	case SegmentReadyNow:
		return "Ready now"
	case SegmentPromising:
		return "Promising, but cautious"
	case SegmentDigitalNoFXYet:
		return "Digital, no FX yet"
	case SegmentCashFirst:
		return "Cash-first"
	}
	return string(segment)
}

func segmentDescription(segment ReadinessSegment) string {
	switch segment {
	case SegmentReadyNow:
		return "Already helps customers and shows FX demand; best for first pilots."
	case SegmentPromising:
		return "Shows demand, but trust/fraud concerns likely block activation."
	case SegmentDigitalNoFXYet:
		return "Accepts digital payments, but hasn't seen FX demand (or didn't mention it)."
	case SegmentCashFirst:
		return "Prefers cash or avoids digital due to trust or reliability concerns."
	}
	return ""
}

func segmentColor(segment ReadinessSegment) string {
	switch segment {
	case SegmentReadyNow:
		return "var(--status-success)"
	case SegmentPromising:
		return "var(--status-warning)"
	case SegmentDigitalNoFXYet:
		return "var(--accent-terra)"
	case SegmentCashFirst:
		return "var(--accent-slate)"
	}
	return ""
}
