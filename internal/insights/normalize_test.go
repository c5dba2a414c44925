package insights

import "testing"

func TestNormalizePaymentMethodRules(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "Unknown"},
		{"   ", "Unknown"},
		{"cash only", "Cash"},
		{"EasyPaisa wallet", "EasyPaisa"},
		{"JAZZCASH", "JazzCash"},
		{"bank transfer", "Bank transfer"},
		{"raast id", "Raast"},
		{"SadaPay", "SadaPay"},
		{"nayapay account", "NayaPay"},
		{"dpay", "DPay"},
		{"debit card", "Card"},
		{"other methods", "Other"},
		{"  hawala   system ", "hawala system"},
	}
	for _, tc := range cases {
		if got := NormalizePaymentMethod(tc.in); got != tc.want {
			t.Fatalf("NormalizePaymentMethod(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizePaymentMethodFirstRuleWins(t *testing.T) {
	// "cash" outranks "card" because rule order is priority order.
	if got := NormalizePaymentMethod("cash or card"); got != "Cash" {
		t.Fatalf("got %q, want Cash", got)
	}
}

func TestNormalizeShopTypeCorrectsKnownTypos(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "Unknown"},
		{"General Sore", "General store"},
		{"boutique   shop", "Boutique"},
		{"Pharmacy", "Pharmacy"},
		{"  Mobile shop ", "Mobile shop"},
	}
	for _, tc := range cases {
		if got := NormalizeShopType(tc.in); got != tc.want {
			t.Fatalf("NormalizeShopType(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeReferralDestinationRules(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Western Union office", "Western Union"},
		{"the money changer nearby", "Money changer"},
		{"currency exchange shop", "Money changer"},
		{"local bank branch", "Bank"},
		{"a friend abroad", "Friend"},
		{"an agent", "Agent"},
		{"I do not know", "Don't know"},
		{"don't know", "Don't know"},
		{"other", "Other"},
		{"  the   bazaar ", "the bazaar"},
	}
	for _, tc := range cases {
		if got := NormalizeReferralDestination(tc.in); got != tc.want {
			t.Fatalf("NormalizeReferralDestination(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeReferralDestinationSpecificBeatsGeneric(t *testing.T) {
	// "money changer" must win over the generic "exchange" rule.
	if got := NormalizeReferralDestination("money changer at the exchange market"); got != "Money changer" {
		t.Fatalf("got %q", got)
	}
	// "western union" must win over "bank" even when both appear.
	if got := NormalizeReferralDestination("western union inside the bank"); got != "Western Union" {
		t.Fatalf("got %q", got)
	}
}
