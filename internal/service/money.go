package service

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney renders a monetary figure for display: thousands are
// comma-separated, and the fraction is shown with exactly two decimals
// unless it is zero, in which case it is dropped entirely.
//
// This rule applies everywhere a computed total appears in a summary.
func FormatMoney(d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}

	parts := strings.SplitN(fixed, ".", 2)
	grouped := groupThousands(parts[0])
	if negative {
		grouped = "-" + grouped
	}
	if len(parts) == 2 && parts[1] != "00" {
		return grouped + "." + parts[1]
	}
	return grouped
}

// FormatMoneyFloat is FormatMoney over a float64 input.
func FormatMoneyFloat(v float64) string {
	return FormatMoney(decimal.NewFromFloat(v))
}

// groupThousands inserts commas into a bare digit string.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(n + (n-1)/3)
	lead := n % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
