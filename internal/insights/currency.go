package insights

import (
	"fmt"
	"math"
	"strconv"
)

// PKRToUSDRate is the approximate conversion rate used for display only.
const PKRToUSDRate = 280

func formatWithCommas(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if n < 0 {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}

// FormatDualCurrency renders a PKR amount alongside its rough USD value.
func FormatDualCurrency(pkr int) string {
	if pkr == 0 {
		return "0 PKR"
	}
	usd := int(math.Round(float64(pkr) / PKRToUSDRate))
	return fmt.Sprintf("~$%d USD (%s PKR)", usd, formatWithCommas(pkr))
}

func FormatPKR(pkr int) string {
	return formatWithCommas(pkr) + " PKR"
}

func FormatUSD(pkr int) string {
	usd := int(math.Round(float64(pkr) / PKRToUSDRate))
	return fmt.Sprintf("~$%d USD", usd)
}
