package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// FormatShort renders a compact display string: two fraction digits at or above one,
// up to six below it. Values that would round to zero keep full precision.
func FormatShort(d decimal.Decimal) string {
	var rounded decimal.Decimal
	if d.Abs().GreaterThanOrEqual(one) {
		rounded = d.Round(2)
	} else {
		rounded = d.Round(6)
		if rounded.IsZero() && !d.IsZero() {
			rounded = d
		}
	}
	return groupThousands(rounded.String())
}

// FormatFull renders the unrounded value with thousands separators
func FormatFull(d decimal.Decimal) string {
	return groupThousands(d.String())
}

// groupThousands inserts "," separators into the integer part of a plain decimal string
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if len(intPart) <= 3 {
		return sign + s
	}

	var b strings.Builder
	b.Grow(len(s) + len(intPart)/3 + 1)
	b.WriteString(sign)

	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > len(sign) {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}

	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}

	return b.String()
}
