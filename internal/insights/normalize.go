package insights

import "strings"

// Survey free text is inconsistent, so each canonicalizer is an ordered
// table of substring rules where the first match wins. Rule order encodes
// priority: more specific keywords sit above generic ones (for example
// "money changer" must be checked before bare "exchange").

type substringRule struct {
	Match     string
	Canonical string
}

var paymentMethodRules = []substringRule{
	{"cash", "Cash"},
	{"easypaisa", "EasyPaisa"},
	{"jazzcash", "JazzCash"},
	{"bank", "Bank transfer"},
	{"raast", "Raast"},
	{"sadapay", "SadaPay"},
	{"nayapay", "NayaPay"},
	{"dpay", "DPay"},
	{"card", "Card"},
	{"other", "Other"},
}

// NormalizePaymentMethod maps a free-text payment method to a canonical
// rail name, passing unknown entries through whitespace-normalized.
func NormalizePaymentMethod(method string) string {
	v := strings.ToLower(strings.TrimSpace(method))
	if v == "" {
		return "Unknown"
	}
	for _, rule := range paymentMethodRules {
		if strings.Contains(v, rule.Match) {
			return rule.Canonical
		}
	}
	return NormalizeWhitespace(method)
}

// Known typos observed in the collected data.
var shopTypeCorrections = map[string]string{
	"general sore":  "General store",
	"boutique shop": "Boutique",
}

func NormalizeShopType(shopType string) string {
	v := strings.ToLower(NormalizeWhitespace(shopType))
	if v == "" {
		return "Unknown"
	}
	if corrected, ok := shopTypeCorrections[v]; ok {
		return corrected
	}
	return strings.TrimSpace(shopType)
}

var referralDestinationRules = []substringRule{
	{"western union", "Western Union"},
	{"money changer", "Money changer"},
	{"exchange", "Money changer"},
	{"bank", "Bank"},
	{"friend", "Friend"},
	{"agent", "Agent"},
	{"do not know", "Don't know"},
	{"don't know", "Don't know"},
}

// NormalizeReferralDestination canonicalizes where a shop sends customers
// for currency exchange. Empty input yields an empty string so callers can
// filter it out.
func NormalizeReferralDestination(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return ""
	}
	for _, rule := range referralDestinationRules {
		if strings.Contains(v, rule.Match) {
			return rule.Canonical
		}
	}
	if v == "other" {
		return "Other"
	}
	return NormalizeWhitespace(value)
}
