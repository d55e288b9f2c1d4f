package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// nbsp is the non-breaking space used by the fr-FR number format.
const nbsp = " "

// formatEuro renders an amount the way the dashboard displays money:
// fr-FR grouping with non-breaking spaces, comma decimals, trailing €.
// 5801.25 → "5 801,25 €".
func formatEuro(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	grouped := groupThousands(parts[0])

	out := grouped + "," + parts[1] + nbsp + "€"
	if neg {
		out = "-" + out
	}
	return out
}

// formatCount abbreviates large counts: 1543 → "1.5K", 2400000 → "2.4M".
func formatCount(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(nbsp)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
