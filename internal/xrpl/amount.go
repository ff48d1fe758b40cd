package xrpl

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kislikjeka/xrplview/pkg/money"
)

// AddressDetails carries the explorer's known identity for an address
type AddressDetails struct {
	Username string `json:"username,omitempty"`
	Service  string `json:"service,omitempty"`
}

// Amount is a currency value. An empty Currency together with an empty Issuer means
// the network's native currency.
type Amount struct {
	Value         decimal.Decimal
	Currency      string
	Issuer        string
	IssuerDetails *AddressDetails
}

type amountJSON struct {
	Value         json.RawMessage `json:"value"`
	Currency      string          `json:"currency,omitempty"`
	Issuer        string          `json:"issuer,omitempty"`
	Counterparty  string          `json:"counterparty,omitempty"`
	IssuerDetails *AddressDetails `json:"issuerDetails,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler
// Supports: {"value","currency","issuer"|"counterparty"}, "1.5", 1.5
// A value that is not a number decodes as zero, and mistyped fields are left empty.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*a = Amount{}
		return nil
	}

	if data[0] != '{' {
		*a = Amount{Value: parseValue(data)}
		return nil
	}

	var raw amountJSON
	if err := ignoreTypeErrors(json.Unmarshal(data, &raw)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}

	issuer := raw.Issuer
	if issuer == "" {
		issuer = raw.Counterparty
	}

	*a = Amount{
		Value:         parseValue(raw.Value),
		Currency:      raw.Currency,
		Issuer:        issuer,
		IssuerDetails: raw.IssuerDetails,
	}
	return nil
}

// MarshalJSON implements json.Marshaler
func (a Amount) MarshalJSON() ([]byte, error) {
	value, err := a.Value.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return json.Marshal(amountJSON{
		Value:         value,
		Currency:      a.Currency,
		Issuer:        a.Issuer,
		IssuerDetails: a.IssuerDetails,
	})
}

// parseValue reads a quoted or bare decimal, zero when absent or malformed
func parseValue(data []byte) decimal.Decimal {
	var value decimal.Decimal
	if len(data) == 0 || value.UnmarshalJSON(data) != nil {
		return decimal.Zero
	}
	return value
}

// IsNative reports whether the amount is in the given native currency
func (a Amount) IsNative(native string) bool {
	return a.Issuer == "" && (a.Currency == "" || a.Currency == native)
}

// WithCurrency fills in the native currency code on bare amounts
func (a Amount) WithCurrency(native string) Amount {
	if a.Currency == "" && a.Issuer == "" {
		a.Currency = native
	}
	return a
}

// Negate returns a copy with the sign flipped
func (a Amount) Negate() Amount {
	a.Value = a.Value.Neg()
	return a
}

// SameAsset reports whether both amounts are in the same currency from the same issuer
func (a Amount) SameAsset(b Amount) bool {
	return a.Currency == b.Currency && a.Issuer == b.Issuer
}

// ParseLedgerAmount decodes an amount as it appears in raw ledger fields:
// a drops string for the native currency or an issued-currency object.
func ParseLedgerAmount(data json.RawMessage) (*Amount, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}

	if data[0] == '{' {
		var amount Amount
		if err := json.Unmarshal(data, &amount); err != nil {
			return nil, err
		}
		return &amount, nil
	}

	var drops money.Drops
	if err := json.Unmarshal(data, &drops); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	return &Amount{Value: drops.Native()}, nil
}
