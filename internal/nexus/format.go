package nexus

import (
	"strings"

	"github.com/zarlabs/survey-insights/internal/survey"
)

// FormatInterview renders one interview as a markdown document for webhook
// ingestion. The section structure is part of the ingestion contract on the
// receiving side.
func FormatInterview(iv survey.Interview) string {
	paymentMethods := strings.Join(iv.PaymentMethods, ", ")
	if paymentMethods == "" {
		paymentMethods = "Cash only"
	}

	var b strings.Builder
	b.WriteString("# ZAR Retail Payment Survey Interview #" + iv.ID + "\n")
	b.WriteString("\n")
	b.WriteString("**Interviewer:** " + iv.Interviewer + "\n")
	b.WriteString("**Date:** " + iv.DateOfInterview + "\n")
	b.WriteString("**Shop Type:** " + iv.ShopType + "\n")
	b.WriteString("**Location:** " + iv.Location + "\n")
	b.WriteString("**Payment Methods:** " + paymentMethods + "\n")
	b.WriteString("\n")

	if iv.FraudStory && iv.FraudDetails != "" {
		b.WriteString("## Fraud Incident Reported\n")
		b.WriteString(iv.FraudDetails + "\n")
		b.WriteString("\n")
	}

	if iv.DollarInquiry {
		b.WriteString("## Dollar/Foreign Currency Interest\n")
		b.WriteString("Customer has inquired about dollar exchange.\n")
		b.WriteString("\n")
	}

	if iv.ExactPhrases != "" {
		b.WriteString("## Key Phrases About Money, Trust, or Fraud\n")
		b.WriteString(iv.ExactPhrases + "\n")
		b.WriteString("\n")
	}

	if iv.SurprisingObservations != "" {
		b.WriteString("## Notable Observations\n")
		b.WriteString(iv.SurprisingObservations + "\n")
		b.WriteString("\n")
	}

	b.WriteString("## Full Transcript\n")
	b.WriteString(iv.Transcript)
	return b.String()
}
