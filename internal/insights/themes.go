package insights

import (
	"regexp"
	"strings"
)

const (
	minThemeLineLength = 12
	maxThemeLines      = 3
	maxQuoteLength     = 260
)

// Respondent-only filtering: lines the interviewee spoke, identified by
// their speaker label. Interviewer speech is excluded from evidence.
var respondentLineRe = regexp.MustCompile(`(?i)^(shopkeeper|shop owner|pharmacist|owner)\s*:`)

func extractRespondentLines(text string) []string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(strings.TrimSuffix(l, "\r"))
		if l == "" {
			continue
		}
		if respondentLineRe.MatchString(l) {
			lines = append(lines, l)
		}
	}
	return lines
}

// RespondentOnlyText keeps just the respondent's lines, falling back to the
// whole text when the transcript carries no speaker labels at all.
func RespondentOnlyText(text string) string {
	lines := extractRespondentLines(text)
	if len(lines) == 0 {
		return text
	}
	return strings.Join(lines, "\n")
}

// One regex per theme; the taxonomy lives here as data so it can grow
// without touching control flow.
var themeMatchers = map[FounderTheme]*regexp.Regexp{
	ThemeFXDemand:        regexp.MustCompile(`(?i)\b(dollar|usd|foreign money|foreign currency|currency exchange|exchange)\b`),
	ThemeFXReferral:      regexp.MustCompile(`(?i)\b(western union|money changer|exchange shop|bank)\b`),
	ThemeCustomerSupport: regexp.MustCompile(`(?i)\b(help|transfer|send|receive)\b`),
	ThemeFraud:           regexp.MustCompile(`(?i)\b(fraud|scam|cheat|revers|screenshot|message)\b`),
	ThemeTrust:           regexp.MustCompile(`(?i)\b(trust|safe|secure|sure|fear)\b`),
	ThemeCompliance:      regexp.MustCompile(`(?i)\b(legal|government|approval|license|allowed|police)\b`),
	ThemePayments:        regexp.MustCompile(`(?i)\b(easypaisa|jazzcash|bank transfer|raast|sadapay|nayapay|card)\b`),
}

// ExtractThemeLines pulls at most three respondent lines matching the given
// theme, truncating anything longer than the quote cap.
func ExtractThemeLines(text string, theme FounderTheme) []string {
	re, ok := themeMatchers[theme]
	if !ok {
		return nil
	}

	var hits []string
	for _, l := range strings.Split(RespondentOnlyText(text), "\n") {
		l = strings.TrimSpace(strings.TrimSuffix(l, "\r"))
		if len(l) < minThemeLineLength {
			continue
		}
		if !re.MatchString(l) {
			continue
		}
		if len(l) > maxQuoteLength {
			l = l[:maxQuoteLength-3] + "…"
		}
		hits = append(hits, l)
		if len(hits) == maxThemeLines {
			break
		}
	}
	return hits
}

// Referral destination signals tested against the whole respondent text,
// independent of each other.
var referralTranscriptChecks = []struct {
	Re    *regexp.Regexp
	Label string
}{
	{regexp.MustCompile(`western\s+union`), "Western Union"},
	{regexp.MustCompile(`money\s+changer`), "Money changer"},
	{regexp.MustCompile(`currency\s+exchange|exchange\s+money|exchange\s+shop|local\s+exchange`), "Money changer"},
	{regexp.MustCompile(`\bbank(s)?\b`), "Bank"},
	{regexp.MustCompile(`\bfriend\b`), "Friend"},
	{regexp.MustCompile(`\bagent\b`), "Agent"},
	{regexp.MustCompile(`do not know|don't know`), "Don't know"},
}

// ExtractReferralDestinations returns the set of canonical destinations the
// respondent mentioned anywhere in the transcript.
func ExtractReferralDestinations(text string) []string {
	t := strings.ToLower(RespondentOnlyText(text))
	seen := map[string]struct{}{}
	var destinations []string
	for _, check := range referralTranscriptChecks {
		if !check.Re.MatchString(t) {
			continue
		}
		if _, dup := seen[check.Label]; dup {
			continue
		}
		seen[check.Label] = struct{}{}
		destinations = append(destinations, check.Label)
	}
	return destinations
}
