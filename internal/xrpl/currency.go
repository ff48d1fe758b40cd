package xrpl

import (
	"encoding/hex"
	"strings"
	"unicode"
)

// DisplayCurrency renders a currency code for people.
// Standard codes pass through, 160-bit hex codes decode to their ASCII text when printable,
// and AMM liquidity-pool codes (0x03 prefix) become "LP token".
func DisplayCurrency(code string) string {
	if len(code) != 40 {
		return code
	}

	raw, err := hex.DecodeString(code)
	if err != nil {
		return code
	}

	if raw[0] == 0x03 {
		return "LP token"
	}

	text := strings.TrimRight(string(raw), "\x00")
	text = strings.TrimLeft(text, "\x00")
	if text == "" {
		return code
	}
	for _, r := range text {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) {
			return code
		}
	}
	return text
}
