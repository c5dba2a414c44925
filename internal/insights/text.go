package insights

import (
	"regexp"
	"strings"
)

// Interview speech is noisy: fillers, pronouns, and a couple of common
// exclamations carry no matching signal.
var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "to": {}, "of": {},
	"in": {}, "for": {}, "on": {}, "with": {}, "at": {}, "as": {}, "is": {},
	"are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "it": {},
	"this": {}, "that": {}, "we": {}, "i": {}, "you": {}, "they": {},
	"he": {}, "she": {}, "our": {}, "their": {}, "your": {}, "my": {},
	"yes": {}, "no": {}, "okay": {}, "alhamdulillah": {}, "mashallah": {},
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonAlnumRe   = regexp.MustCompile(`[^a-z0-9\s]`)
	numericRe    = regexp.MustCompile(`^\d+$`)
)

// NormalizeWhitespace collapses whitespace runs to single spaces and trims.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// TokenizeForMatch reduces free text to the tokens worth comparing:
// lowercased alphanumeric words of at least 3 characters that are neither
// stopwords nor pure numbers. Duplicates are retained; consumers that need
// set semantics deduplicate themselves.
func TokenizeForMatch(text string) []string {
	raw := nonAlnumRe.ReplaceAllString(strings.ToLower(NormalizeWhitespace(text)), " ")

	var tokens []string
	for _, t := range strings.Fields(raw) {
		if len(t) < 3 {
			continue
		}
		if _, stop := stopwords[t]; stop {
			continue
		}
		if numericRe.MatchString(t) {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}

// JaccardSimilarity scores token-set overlap in [0,1]. Empty input on
// either side scores 0.
func JaccardSimilarity(aTokens, bTokens []string) float64 {
	if len(aTokens) == 0 || len(bTokens) == 0 {
		return 0
	}
	aSet := make(map[string]struct{}, len(aTokens))
	for _, t := range aTokens {
		aSet[t] = struct{}{}
	}
	bSet := make(map[string]struct{}, len(bTokens))
	for _, t := range bTokens {
		bSet[t] = struct{}{}
	}
	intersection := 0
	for t := range aSet {
		if _, ok := bSet[t]; ok {
			intersection++
		}
	}
	union := len(aSet) + len(bSet) - intersection
	if union <= 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
