package txview

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kislikjeka/xrplview/internal/xrpl"
	"github.com/kislikjeka/xrplview/pkg/money"
)

// ColorClass tells the display layer how to tint an amount
type ColorClass string

const (
	ColorRed    ColorClass = "red"
	ColorOrange ColorClass = "orange"
	ColorGreen  ColorClass = "green"
)

// FormattedAmount is a display-ready amount. It is built once and never modified.
type FormattedAmount struct {
	Value         string               `json:"value"`
	Currency      string               `json:"currency"`
	Issuer        string               `json:"issuer,omitempty"`
	IssuerDetails *xrpl.AddressDetails `json:"issuer_details,omitempty"`
	Formatted     string               `json:"formatted"`      // "1,234.57 USD"
	FullFormatted string               `json:"full_formatted"` // "1,234.56789 USD"
	ColorClass    ColorClass           `json:"color_class"`
}

// colorOf returns the color for the sign of v
func colorOf(v decimal.Decimal) ColorClass {
	switch v.Sign() {
	case -1:
		return ColorRed
	case 0:
		return ColorOrange
	default:
		return ColorGreen
	}
}

// FormatAmount builds the display form of a. A nil amount yields the zero value.
func FormatAmount(a *xrpl.Amount) FormattedAmount {
	if a == nil {
		return FormattedAmount{}
	}

	display := xrpl.DisplayCurrency(a.Currency)
	return FormattedAmount{
		Value:         a.Value.String(),
		Currency:      a.Currency,
		Issuer:        a.Issuer,
		IssuerDetails: a.IssuerDetails,
		Formatted:     withCurrency(money.FormatShort(a.Value), display),
		FullFormatted: withCurrency(money.FormatFull(a.Value), display),
		ColorClass:    colorOf(a.Value),
	}
}

// FormatValue builds the display form of a bare decimal string in currencyHint.
// Input that does not parse yields the zero value.
func FormatValue(value, currencyHint string) FormattedAmount {
	v, err := money.ParseDecimal(value)
	if err != nil {
		return FormattedAmount{}
	}
	return FormatAmount(&xrpl.Amount{Value: v, Currency: currencyHint})
}

func withCurrency(number, currency string) string {
	if currency == "" {
		return number
	}
	return number + " " + currency
}

// formatPtr formats an optional amount, filling in the native currency on bare values
func formatPtr(a *xrpl.Amount, native string) *FormattedAmount {
	if a == nil {
		return nil
	}
	withNative := a.WithCurrency(native)
	f := FormatAmount(&withNative)
	return &f
}

// formatList formats every amount. The result is never nil.
func formatList(amounts []xrpl.Amount, native string) []FormattedAmount {
	out := make([]FormattedAmount, 0, len(amounts))
	for _, a := range amounts {
		withNative := a.WithCurrency(native)
		out = append(out, FormatAmount(&withNative))
	}
	return out
}

// assetName renders an asset without a value, e.g. "XRP" or "USD.rIssuer"
func assetName(a *xrpl.Amount, native string) string {
	if a == nil {
		return ""
	}
	if a.IsNative(native) {
		return native
	}
	name := xrpl.DisplayCurrency(a.Currency)
	if a.Issuer == "" {
		return name
	}
	return strings.Join([]string{name, a.Issuer}, ".")
}
