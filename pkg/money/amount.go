package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// NativeScale is the number of decimal places between drops and whole native units (XRP, XAH)
const NativeScale = 6

// ParseDecimal parses a decimal string such as "-0.000012", "1500" or "1e-6"
func ParseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount format: %w", err)
	}

	return d, nil
}
