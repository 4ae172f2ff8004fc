package finance

import (
	"math"
	"strconv"
	"strings"
)

// FormatCurrency returns an amount formatted under Colombian-peso
// conventions: "$ " prefix, '.' thousands separators, no decimal digits
// (e.g. "$ 1.000.000"). Fractional pesos are rounded away.
func FormatCurrency(amount float64) string {
	if amount < 0 {
		return "-$ " + groupThousands(math.Round(-amount))
	}
	return "$ " + groupThousands(math.Round(amount))
}

// FormatCurrencyString is the string-input variant used for raw form
// fields; an unparseable value formats as zero.
func FormatCurrencyString(amount string) string {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		parsed = 0
	}
	return FormatCurrency(parsed)
}

func groupThousands(value float64) string {
	digits := strconv.FormatFloat(value, 'f', 0, 64)
	if len(digits) <= 3 {
		return digits
	}

	var builder strings.Builder
	for i, digit := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			builder.WriteByte('.')
		}
		builder.WriteRune(digit)
	}
	return builder.String()
}
