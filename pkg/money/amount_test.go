package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal_Plain(t *testing.T) {
	result, err := ParseDecimal("-0.000012")
	require.NoError(t, err)
	assert.True(t, result.Equal(decimal.RequireFromString("-0.000012")))
}

func TestParseDecimal_Exponent(t *testing.T) {
	result, err := ParseDecimal("1.2e-5")
	require.NoError(t, err)
	assert.True(t, result.Equal(decimal.RequireFromString("0.000012")))
}

func TestParseDecimal_Whitespace(t *testing.T) {
	result, err := ParseDecimal(" 15 ")
	require.NoError(t, err)
	assert.Equal(t, "15", result.String())
}

func TestParseDecimal_EmptyString(t *testing.T) {
	_, err := ParseDecimal("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "amount is required")
}

func TestParseDecimal_InvalidFormat(t *testing.T) {
	_, err := ParseDecimal("abc")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid amount format")
}
