package insights

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleTranscript = `Interviewer: Do customers ever ask about dollars?
Shopkeeper: Yes, many customers ask about dollar exchange for their relatives.
Interviewer: What do you tell them?
Shop Owner: I send them to the money changer near the bank.
Pharmacist: One customer showed a fake screenshot, clear fraud attempt.
Owner: We trust EasyPaisa because it feels safe and secure.
Random line without a speaker label mentioning dollar topics.`

func TestRespondentOnlyTextFiltersInterviewer(t *testing.T) {
	got := RespondentOnlyText(sampleTranscript)
	if strings.Contains(got, "Interviewer:") {
		t.Fatalf("interviewer speech leaked: %q", got)
	}
	if !strings.Contains(got, "Shopkeeper: Yes") {
		t.Fatalf("respondent line missing: %q", got)
	}
	if strings.Contains(got, "Random line") {
		t.Fatalf("unlabelled line should be dropped when respondent lines exist: %q", got)
	}
}

func TestRespondentOnlyTextFallsBackWhenUnlabelled(t *testing.T) {
	text := "plain transcript without any speaker labels about dollar exchange"
	if got := RespondentOnlyText(text); got != text {
		t.Fatalf("expected fallback to whole text, got %q", got)
	}
}

func TestExtractThemeLinesMatchesTheme(t *testing.T) {
	got := ExtractThemeLines(sampleTranscript, ThemeFXDemand)
	want := []string{"Shopkeeper: Yes, many customers ask about dollar exchange for their relatives."}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fx_demand lines (-want +got):\n%s", diff)
	}

	fraud := ExtractThemeLines(sampleTranscript, ThemeFraud)
	if len(fraud) != 1 || !strings.Contains(fraud[0], "fraud attempt") {
		t.Fatalf("fraud lines: %v", fraud)
	}
}

func TestExtractThemeLinesCapsAtThree(t *testing.T) {
	text := strings.Repeat("Shopkeeper: customers ask about dollar rates daily.\n", 6)
	got := ExtractThemeLines(text, ThemeFXDemand)
	if len(got) != 3 {
		t.Fatalf("expected cap of 3, got %d", len(got))
	}
}

func TestExtractThemeLinesTruncatesLongQuotes(t *testing.T) {
	long := "Shopkeeper: dollar " + strings.Repeat("x", 300)
	got := ExtractThemeLines(long, ThemeFXDemand)
	if len(got) != 1 {
		t.Fatalf("expected one line, got %v", got)
	}
	if len(got[0]) > maxQuoteLength+len("…") {
		t.Fatalf("quote not truncated: %d chars", len(got[0]))
	}
	if !strings.HasSuffix(got[0], "…") {
		t.Fatalf("missing ellipsis: %q", got[0])
	}
}

func TestExtractThemeLinesSkipsShortLines(t *testing.T) {
	got := ExtractThemeLines("Owner: dollar", ThemeFXDemand)
	if got != nil {
		t.Fatalf("short line should be skipped, got %v", got)
	}
}

func TestExtractReferralDestinations(t *testing.T) {
	got := ExtractReferralDestinations(sampleTranscript)
	want := []string{"Money changer", "Bank"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("destinations (-want +got):\n%s", diff)
	}
}

func TestExtractReferralDestinationsDeduplicatesMoneyChanger(t *testing.T) {
	// Both the literal "money changer" and the generic exchange phrasing map
	// to the same label; it must appear once.
	text := "Shopkeeper: I send them to the money changer at the currency exchange shop down the road."
	got := ExtractReferralDestinations(text)
	count := 0
	for _, d := range got {
		if d == "Money changer" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("Money changer appears %d times: %v", count, got)
	}
}
