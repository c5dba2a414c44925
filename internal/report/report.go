package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/zarlabs/survey-insights/internal/insights"
)

// BuildFounderReport renders the insight snapshot as a standalone markdown
// document for founders and advisors who read it outside the dashboard.
func BuildFounderReport(snap insights.Snapshot) string {
	d := snap.Dashboard
	sc := snap.Scorecard

	var b strings.Builder
	fmt.Fprintf(&b, "# ZAR Retail Survey: Founder Insights Report\n\n")
	fmt.Fprintf(&b, "- Interviews analyzed: %d\n", d.TotalInterviews)
	fmt.Fprintf(&b, "- Date: %s\n\n", time.Now().Format("January 2, 2006"))

	// --- Verdict ---
	fmt.Fprintf(&b, "## Validation Verdict\n\n")
	fmt.Fprintf(&b, "- Verdict: `%s`\n", sc.OverallVerdict)
	fmt.Fprintf(&b, "- Confidence: `%s`\n", sc.ConfidenceLevel)
	fmt.Fprintf(&b, "- Rationale: %s\n\n", sc.VerdictRationale)

	fmt.Fprintf(&b, "| Dimension | Score | Signal | Summary |\n")
	fmt.Fprintf(&b, "|-----------|-------|--------|---------|\n")
	for _, dim := range sc.Dimensions {
		fmt.Fprintf(&b, "| %s | %d | %s | %s |\n", dim.Name, dim.Score, dim.Signal, sanitize(dim.Summary))
	}
	fmt.Fprintf(&b, "\n---\n\n")

	// --- Headline numbers ---
	fmt.Fprintf(&b, "## Headline Numbers\n\n")
	fmt.Fprintf(&b, "- FX inquiries: %d/%d interviews\n", d.FXInquiryCount, d.TotalInterviews)
	fmt.Fprintf(&b, "- Help requests: %d/%d interviews\n", d.HelpRequestCount, d.TotalInterviews)
	fmt.Fprintf(&b, "- Fraud stories: %d/%d interviews\n\n", d.FraudStoryCount, d.TotalInterviews)

	// --- Segments ---
	fmt.Fprintf(&b, "## Merchant Readiness Segments\n\n")
	fmt.Fprintf(&b, "| Segment | Count | Share | Description |\n")
	fmt.Fprintf(&b, "|---------|-------|-------|-------------|\n")
	for _, s := range d.Segments {
		fmt.Fprintf(&b, "| %s | %d | %.0f%% | %s |\n", s.Label, s.Count, s.Share*100, sanitize(s.Description))
	}
	b.WriteString("\n")

	// --- Funnel ---
	fmt.Fprintf(&b, "## Conversion Funnel\n\n")
	fmt.Fprintf(&b, "| Stage | Count | %% of total | Drop-off reason |\n")
	fmt.Fprintf(&b, "|-------|-------|-----------|------------------|\n")
	for _, stage := range snap.Funnel {
		fmt.Fprintf(&b, "| %s | %d | %d%% | %s |\n", stage.Name, stage.Count, stage.Percentage, sanitize(stage.DropOffReason))
	}
	b.WriteString("\n")

	// --- Distributions ---
	writeBarSection(&b, "Why Merchants Don't Handle FX", d.WhyNotHandleFXBuckets)
	writeBarSection(&b, "Fraud Patterns Reported", d.FraudPatternBuckets)
	writeBarSection(&b, "Where Customers Get Sent for FX", d.FXReferralDestinations)

	// --- Willingness factors ---
	if len(snap.WillingnessFactors) > 0 {
		fmt.Fprintf(&b, "## What Would Make Merchants Say Yes\n\n")
		fmt.Fprintf(&b, "| Factor | Mentions | Actionability | Suggested action |\n")
		fmt.Fprintf(&b, "|--------|----------|---------------|------------------|\n")
		for _, f := range snap.WillingnessFactors {
			fmt.Fprintf(&b, "| %s | %d | %s | %s |\n", f.Factor, f.MentionCount, f.Actionability, sanitize(f.SuggestedAction))
		}
		b.WriteString("\n")
	}

	// --- Pilot candidates ---
	fmt.Fprintf(&b, "## Pilot Candidates\n\n")
	if len(snap.PilotCandidates) == 0 {
		fmt.Fprintf(&b, "No interviews cleared the pilot readiness bar yet.\n\n")
	} else {
		fmt.Fprintf(&b, "| # | Shop | Score | Trust concern | Approach |\n")
		fmt.Fprintf(&b, "|---|------|-------|---------------|----------|\n")
		for i, c := range snap.PilotCandidates {
			shop := sanitize(c.ShopType + " • " + c.Location)
			fmt.Fprintf(&b, "| %d | %s | %d | %s | %s |\n", i+1, shop, c.ReadinessScore, c.Factors.TrustConcernLevel, sanitize(c.ApproachScript))
		}
		b.WriteString("\n")
	}

	// --- Narrative ---
	writeListSection(&b, "Top Opportunities", d.TopOpportunities)
	writeListSection(&b, "Key Risks", d.KeyRisks)

	fmt.Fprintf(&b, "## Recommended Experiments\n\n")
	for _, e := range d.RecommendedExperiments {
		fmt.Fprintf(&b, "### %s\n\n", sanitize(e.Title))
		fmt.Fprintf(&b, "- Success metric: %s\n", sanitize(e.SuccessMetric))
		fmt.Fprintf(&b, "- Why now: %s\n\n", sanitize(e.WhyNow))
	}

	// --- Evidence ---
	if len(d.EvidenceQuotes) > 0 {
		fmt.Fprintf(&b, "## Evidence Quotes\n\n")
		for _, q := range d.EvidenceQuotes {
			fmt.Fprintf(&b, "> %s\n>\n> — %s (%s)\n\n", sanitize(q.Quote), sanitize(q.SourceLabel), q.Theme)
		}
	}

	if len(d.DataQualityNotes) > 0 {
		writeListSection(&b, "Data Quality Notes", d.DataQualityNotes)
	}

	return b.String()
}

func writeBarSection(b *strings.Builder, title string, data []insights.BarDatum) {
	if len(data) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	fmt.Fprintf(b, "| Reason | Count |\n|--------|-------|\n")
	for _, d := range data {
		fmt.Fprintf(b, "| %s | %d |\n", sanitize(d.Name), d.Value)
	}
	b.WriteString("\n")
}

func writeListSection(b *strings.Builder, title string, items []string) {
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", sanitize(item))
	}
	b.WriteString("\n")
}

// sanitize keeps cell text on one line so it cannot break table layout.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.TrimSpace(s)
}
