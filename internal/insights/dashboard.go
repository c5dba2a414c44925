package insights

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/zarlabs/survey-insights/internal/survey"
)

var (
	demandTranscriptRe = regexp.MustCompile(`(?i)\b(dollar|usd|foreign money|foreign currency|currency exchange)\b`)
	helpsTranscriptRe  = regexp.MustCompile(`(?i)\b(help|transfer|send|receive)\b`)
	fraudConcernRe     = regexp.MustCompile(`(?i)fraud|scam|fear|trust|risk|security`)
	cashOnlyRe         = regexp.MustCompile(`(?i)cash only`)
)

func buildSourceLabel(iv survey.Interview) string {
	shopType := strings.TrimSpace(iv.ShopType)
	if shopType == "" {
		shopType = "Unknown shop"
	}
	location := strings.TrimSpace(iv.Location)
	if location == "" {
		location = "Unknown location"
	}
	return fmt.Sprintf("Interview #%s • %s • %s", iv.ID, shopType, location)
}

func toBarData(counts map[string]int) []BarDatum {
	data := make([]BarDatum, 0, len(counts))
	for name, value := range counts {
		data = append(data, BarDatum{Name: name, Value: value})
	}
	sort.SliceStable(data, func(i, j int) bool {
		if data[i].Value != data[j].Value {
			return data[i].Value > data[j].Value
		}
		return data[i].Name < data[j].Name
	})
	return data
}

func topBucketName(data []BarDatum, fallback string) string {
	if len(data) == 0 {
		return fallback
	}
	return data[0].Name
}

// BuildDashboard runs the whole derivation pipeline once over the full
// interview and transcript snapshot: match transcripts, accumulate
// distributions, segment every interview, collect evidence, and derive the
// narrative opportunity/risk/experiment text. The result is recomputed
// fresh on every call; callers that want the process-lifetime snapshot
// compute it once at startup and share the value.
func BuildDashboard(interviews []survey.Interview, transcripts []survey.TranscriptDocument) DashboardData {
	transcriptByInterviewID := MatchTranscripts(transcripts, interviews)

	total := len(interviews)
	fxInquiryCount := 0
	helpRequestCount := 0
	fraudStoryCount := 0

	busiestCounts := map[string]int{}
	paymentCounts := map[string]int{}
	referralCounts := map[string]int{}
	whyBuckets := map[string]int{}
	fraudBuckets := map[string]int{}
	segmentCounts := map[ReadinessSegment]int{}
	shopTypeVariants := map[string]map[string]struct{}{}

	var evidenceQuotes []EvidenceQuote
	var pilotCandidates []PilotCandidate
	var dataQualityNotes []string

	for _, iv := range interviews {
		if iv.DollarInquiry {
			fxInquiryCount++
		}
		if iv.CustomerAskedForHelp {
			helpRequestCount++
		}
		if iv.FraudStory {
			fraudStoryCount++
		}

		transcript, hasTranscript := transcriptByInterviewID[iv.ID]
		respondentText := ""
		if hasTranscript {
			respondentText = RespondentOnlyText(transcript.Text)
		}

		busyKey := strings.TrimSpace(iv.BusiestTime)
		if busyKey == "" {
			busyKey = "Unknown"
		}
		busiestCounts[busyKey]++

		for _, m := range iv.PaymentMethods {
			paymentCounts[NormalizePaymentMethod(m)]++
		}

		normalizedShopType := NormalizeShopType(iv.ShopType)
		rawShopType := strings.TrimSpace(iv.ShopType)
		if rawShopType == "" {
			rawShopType = "Unknown"
		}
		if shopTypeVariants[normalizedShopType] == nil {
			shopTypeVariants[normalizedShopType] = map[string]struct{}{}
		}
		shopTypeVariants[normalizedShopType][rawShopType] = struct{}{}

		// Referral destinations come from the structured answer plus
		// anything the transcript mentions.
		for _, raw := range iv.CurrencyExchangeReferral {
			if dest := NormalizeReferralDestination(raw); dest != "" {
				referralCounts[dest]++
			}
		}
		if hasTranscript {
			for _, dest := range ExtractReferralDestinations(transcript.Text) {
				referralCounts[dest]++
			}
		}

		whyRaw := strings.TrimSpace(iv.WhyReferElsewhere)
		if whyRaw == "" && hasTranscript {
			whyRaw = transcript.Text
		}
		whyBuckets[BucketWhyNotHandleFX(whyRaw)]++

		var fraudParts []string
		for _, part := range []string{iv.ConcernsBeforeStarting, iv.CurrentProblems, iv.FraudDetails, respondentText} {
			if part != "" {
				fraudParts = append(fraudParts, part)
			}
		}
		for _, bucket := range FraudPatternBuckets(strings.Join(fraudParts, "\n")) {
			fraudBuckets[bucket]++
		}

		// Transcript text can upgrade a structured "no" answer into a
		// demand/help signal, never the reverse.
		digitalCount := 0
		for _, m := range iv.PaymentMethods {
			normalized := NormalizePaymentMethod(m)
			if normalized != "Cash" && normalized != "Unknown" {
				digitalCount++
			}
		}
		signals := SegmentSignals{
			Demand:       iv.DollarInquiry || demandTranscriptRe.MatchString(respondentText),
			Helps:        iv.CustomerAskedForHelp || helpsTranscriptRe.MatchString(respondentText),
			DigitalCount: digitalCount,
			FraudConcern: fraudConcernRe.MatchString(iv.ConcernsBeforeStarting + "\n" + iv.CurrentProblems + "\n" + respondentText),
		}
		segment := DetermineSegment(signals)
		segmentCounts[segment]++

		if segment == SegmentReadyNow || segment == SegmentPromising {
			var reasons []string
			if signals.Demand {
				reasons = append(reasons, "FX demand signal")
			}
			if signals.Helps {
				reasons = append(reasons, "already helps customers")
			}
			if signals.DigitalCount >= 2 {
				reasons = append(reasons, "multiple digital rails")
			}
			if signals.FraudConcern {
				reasons = append(reasons, "needs trust controls")
			}
			if len(iv.CurrencyExchangeReferral) > 0 {
				reasons = append(reasons, "actively refers today")
			}
			if len(reasons) > 3 {
				reasons = reasons[:3]
			}

			shopType := strings.TrimSpace(iv.ShopType)
			if shopType == "" {
				shopType = "Unknown shop"
			}
			location := strings.TrimSpace(iv.Location)
			if location == "" {
				location = "Unknown location"
			}
			pilotCandidates = append(pilotCandidates, PilotCandidate{
				InterviewID: iv.ID,
				Label:       shopType + " • " + location,
				Reason:      strings.Join(reasons, ", "),
			})
		}

		sourceLabel := buildSourceLabel(iv)
		quoteText := iv.Transcript
		transcriptFileName := ""
		if hasTranscript {
			quoteText = RespondentOnlyText(transcript.Text)
			transcriptFileName = transcript.FileName
		}
		for _, theme := range AllThemes {
			for _, line := range ExtractThemeLines(quoteText, theme) {
				evidenceQuotes = append(evidenceQuotes, EvidenceQuote{
					Theme:              theme,
					Quote:              line,
					SourceLabel:        sourceLabel,
					InterviewID:        iv.ID,
					TranscriptFileName: transcriptFileName,
				})
			}
		}

		if cashOnlyRe.MatchString(strings.Join(iv.PaymentMethods, ", ")) && len(iv.PaymentMethods) > 1 {
			dataQualityNotes = append(dataQualityNotes,
				fmt.Sprintf("Interview #%s: \"Cash only\" appears alongside other payment methods; consider normalizing this field.", iv.ID))
		}
	}

	var variantKeys []string
	for normalized := range shopTypeVariants {
		variantKeys = append(variantKeys, normalized)
	}
	sort.Strings(variantKeys)
	for _, normalized := range variantKeys {
		variants := shopTypeVariants[normalized]
		if len(variants) < 2 {
			continue
		}
		var names []string
		for v := range variants {
			names = append(names, v)
		}
		sort.Strings(names)
		dataQualityNotes = append(dataQualityNotes,
			fmt.Sprintf("Shop type normalization: multiple variants map to %q (%s).", normalized, strings.Join(names, ", ")))
	}

	segments := make([]SegmentSummary, 0, len(AllSegments))
	for _, segment := range AllSegments {
		count := segmentCounts[segment]
		share := 0.0
		if total > 0 {
			share = float64(count) / float64(total)
		}
		segments = append(segments, SegmentSummary{
			Segment:     segment,
			Label:       segmentLabel(segment),
			Count:       count,
			Share:       share,
			Description: segmentDescription(segment),
			Color:       segmentColor(segment),
		})
	}

	referralData := toBarData(referralCounts)
	whyData := toBarData(whyBuckets)
	fraudData := toBarData(fraudBuckets)

	fxTop := topBucketName(referralData, "existing money changers")
	whyTop := topBucketName(whyData, "Knowledge gaps")
	fraudTop := topBucketName(fraudData, "general fraud fear")

	topOpportunities := []string{
		fmt.Sprintf("FX questions show up in %d/%d interviews; merchants currently route customers to %s.", fxInquiryCount, total, fxTop),
		fmt.Sprintf("%s is the most common reason merchants don't handle FX today.", whyTop),
		"High overlap between \"helping customers transfer\" and FX demand suggests a merchant-assisted flow could work.",
	}

	keyRisks := []string{
		fmt.Sprintf("Fraud is a recurring narrative (%d/%d reported a real incident; top pattern: %s).", fraudStoryCount, total, fraudTop),
		"Operational reliability issues (network delays, confirmations) can create loss events and distrust.",
		"Compliance ambiguity (\"government/legal\") appears as a blocker; pilots need a clear policy + merchant script.",
	}

	recommendedExperiments := []Experiment{
		{
			Title:         "Pilot: merchant-assisted FX handoff (referral → conversion)",
			SuccessMetric: "Referral-to-completion rate for FX requests; time-to-complete; merchant NPS.",
			WhyNow:        "Merchants already refer customers; product can capture this demand and reduce leakage.",
		},
		{
			Title:         "Anti-fraud kit: proof-of-payment + reversal protection",
			SuccessMetric: "Reduction in \"fake proof / delayed confirmation\" complaints; measured trust lift in follow-ups.",
			WhyNow:        "Trust is the primary barrier; solving it unlocks both payments and FX flows.",
		},
		{
			Title:         "Enable 'help customers' as a feature (guided steps + receipts)",
			SuccessMetric: "Share of merchants willing to assist; completion time; error rate; support contact rate.",
			WhyNow:        "Help requests are already happening informally; formalizing reduces friction and risk.",
		},
	}

	// De-dup evidence by (theme, source, quote) before handing to the UI.
	seenQuote := map[string]struct{}{}
	deduped := evidenceQuotes[:0]
	for _, q := range evidenceQuotes {
		key := string(q.Theme) + "::" + q.SourceLabel + "::" + q.Quote
		if _, dup := seenQuote[key]; dup {
			continue
		}
		seenQuote[key] = struct{}{}
		deduped = append(deduped, q)
	}

	if len(pilotCandidates) > MaxPilotCandidatesShown {
		pilotCandidates = pilotCandidates[:MaxPilotCandidatesShown]
	}

	return DashboardData{
		TotalInterviews:        total,
		FXInquiryCount:         fxInquiryCount,
		HelpRequestCount:       helpRequestCount,
		FraudStoryCount:        fraudStoryCount,
		BusyTimeDistribution:   toBarData(busiestCounts),
		PaymentMethodMentions:  toBarData(paymentCounts),
		FXReferralDestinations: referralData,
		WhyNotHandleFXBuckets:  whyData,
		FraudPatternBuckets:    fraudData,
		Segments:               segments,
		TopOpportunities:       topOpportunities,
		KeyRisks:               keyRisks,
		RecommendedExperiments: recommendedExperiments,
		PilotCandidates:        pilotCandidates,
		EvidenceQuotes:         deduped,
		DataQualityNotes:       dataQualityNotes,
	}
}
