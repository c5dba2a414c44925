package insights

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBucketWhyNotHandleFXDecisionList(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", BucketUnknown},
		{"   ", BucketUnknown},
		{"We have no idea how it works", BucketKnowledgeGap},
		{"Not aware of the guidelines", BucketKnowledgeGap},
		{"Too much fraud and scam risk", BucketFraudTrust},
		{"Government approval and license needed", BucketLegalCompliance},
		{"Not enough cash balance to keep float", BucketLiquidityFloat},
		{"Too busy, no time to manage this", BucketOperational},
		{"My brother handles it", BucketOther},
	}
	for _, tc := range cases {
		if got := BucketWhyNotHandleFX(tc.in); got != tc.want {
			t.Fatalf("BucketWhyNotHandleFX(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBucketWhyNotHandleFXFirstMatchWins(t *testing.T) {
	// Knowledge-gap keywords outrank fraud keywords because rule order is
	// priority order.
	got := BucketWhyNotHandleFX("no idea how it works, also scared of fraud")
	if got != BucketKnowledgeGap {
		t.Fatalf("got %q, want %q", got, BucketKnowledgeGap)
	}
}

func TestFraudPatternBucketsMultiLabel(t *testing.T) {
	text := "Customer showed a screenshot as proof but the payment reversed later. Classic scam."
	got := FraudPatternBuckets(text)
	want := []string{FraudReversal, FraudFakeProof, FraudGeneralFear}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("bucket mismatch (-want +got):\n%s", diff)
	}
}

func TestFraudPatternBucketsEmptyWhenNoSignal(t *testing.T) {
	if got := FraudPatternBuckets("business is fine, customers pay on time"); got != nil {
		t.Fatalf("expected no buckets, got %v", got)
	}
}

func TestFraudPatternBucketsIndividualPatterns(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"the money can disappear after some time limit", FraudReversal},
		{"sms came late, confirmation delayed", FraudDelayed},
		{"network was down and the service did not work", FraudNetwork},
		{"biometric verification keeps failing", FraudBiometric},
		{"raast transfers get stuck", FraudRaast},
	}
	for _, tc := range cases {
		got := FraudPatternBuckets(tc.in)
		found := false
		for _, b := range got {
			if b == tc.want {
				found = true
			}
		}
		if !found {
			t.Fatalf("FraudPatternBuckets(%q) = %v, want to include %q", tc.in, got, tc.want)
		}
	}
}
