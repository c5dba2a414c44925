package insights

import (
	"regexp"
	"strings"
)

// Why-not-FX bucket labels.
const (
	BucketKnowledgeGap    = "Knowledge gap"
	BucketFraudTrust      = "Fraud & trust"
	BucketLegalCompliance = "Legal & compliance"
	BucketLiquidityFloat  = "Liquidity & float"
	BucketOperational     = "Operational overhead"
	BucketOther           = "Other"
	BucketUnknown         = "Unknown"
)

// whyNotHandleFXRules is an ordered decision list: the first matching rule
// labels the text. Order is the priority policy, so it stays visible and
// testable here instead of being buried in branches.
var whyNotHandleFXRules = []struct {
	Re    *regexp.Regexp
	Label string
}{
	{regexp.MustCompile(`lack of knowledge|no idea|don't have any idea|do not know|not aware|guidelines`), BucketKnowledgeGap},
	{regexp.MustCompile(`fraud|scam|fear|trust|risk|security`), BucketFraudTrust},
	{regexp.MustCompile(`legal|government|police|approval|license|allowed`), BucketLegalCompliance},
	{regexp.MustCompile(`cash|balance|capital|liquidity|float`), BucketLiquidityFloat},
	{regexp.MustCompile(`busy|time|manage|process`), BucketOperational},
}

// BucketWhyNotHandleFX classifies the stated reason a merchant does not
// handle FX themselves into exactly one bucket.
func BucketWhyNotHandleFX(text string) string {
	t := strings.ToLower(text)
	if strings.TrimSpace(t) == "" {
		return BucketUnknown
	}
	for _, rule := range whyNotHandleFXRules {
		if rule.Re.MatchString(t) {
			return rule.Label
		}
	}
	return BucketOther
}

// Fraud pattern labels.
const (
	FraudReversal    = "Reversal / clawback"
	FraudFakeProof   = "Fake proof / screenshots"
	FraudDelayed     = "Delayed confirmation"
	FraudNetwork     = "Network reliability"
	FraudBiometric   = "Biometric / KYC friction"
	FraudRaast       = "Raast issues"
	FraudGeneralFear = "General fraud fear"
)

// fraudPatternChecks are independent: a single story can land in several
// buckets.
var fraudPatternChecks = []struct {
	Re    *regexp.Regexp
	Label string
}{
	{regexp.MustCompile(`revers|disappear|vanish|time limit`), FraudReversal},
	{regexp.MustCompile(`screenshot|show(ed)? .*payment|proof`), FraudFakeProof},
	{regexp.MustCompile(`message.*late|sms.*late|delayed`), FraudDelayed},
	{regexp.MustCompile(`network|service.*not work`), FraudNetwork},
	{regexp.MustCompile(`biometric`), FraudBiometric},
	{regexp.MustCompile(`raast`), FraudRaast},
	{regexp.MustCompile(`fraud|scam`), FraudGeneralFear},
}

// FraudPatternBuckets returns every fraud pattern the text exhibits; the
// result can be empty.
func FraudPatternBuckets(text string) []string {
	t := strings.ToLower(text)
	var buckets []string
	for _, check := range fraudPatternChecks {
		if check.Re.MatchString(t) {
			buckets = append(buckets, check.Label)
		}
	}
	return buckets
}
