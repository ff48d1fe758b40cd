package xrpl

import (
	"encoding/json"
	"sort"
)

// Party is one side of a transaction as described by the explorer API
type Party struct {
	Address        string          `json:"address"`
	AddressDetails *AddressDetails `json:"addressDetails,omitempty"`
	Tag            *uint32         `json:"tag,omitempty"`
	MaxAmount      *Amount         `json:"maxAmount,omitempty"`
	Amount         *Amount         `json:"amount,omitempty"`
	MinAmount      *Amount         `json:"minAmount,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler. A tag that is not an unsigned
// 32-bit number is dropped.
func (p *Party) UnmarshalJSON(data []byte) error {
	type plain Party
	var decoded struct {
		plain
		Tag json.RawMessage `json:"tag"`
	}
	if err := ignoreTypeErrors(json.Unmarshal(data, &decoded)); err != nil {
		return err
	}

	*p = Party(decoded.plain)
	p.Tag = uint32Of(decoded.Tag)
	return nil
}

// uint32Of returns the number in raw, nil when raw is absent, null or out of range
func uint32Of(raw json.RawMessage) *uint32 {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var v uint32
	if json.Unmarshal(raw, &v) != nil {
		return nil
	}
	return &v
}

// Memo is a decoded transaction memo
type Memo struct {
	Type   string `json:"type,omitempty"`
	Format string `json:"format,omitempty"`
	Data   string `json:"data,omitempty"`
}

// Specification describes what a transaction intended to do. Only the fields used for
// display are typed; every field present is also kept in raw form.
type Specification struct {
	Source      *Party `json:"source,omitempty"`
	Destination *Party `json:"destination,omitempty"`

	Amount     *Amount `json:"amount,omitempty"`
	Amount2    *Amount `json:"amount2,omitempty"`
	Quantity   *Amount `json:"quantity,omitempty"`
	TotalPrice *Amount `json:"totalPrice,omitempty"`
	SendMax    *Amount `json:"sendMax,omitempty"`
	DeliverMin *Amount `json:"deliverMin,omitempty"`
	Direction  string  `json:"direction,omitempty"`
	Flags      Flags   `json:"flags,omitempty"`

	// Orders
	OrderSequence *uint32 `json:"orderSequence,omitempty"`
	OfferSequence *uint32 `json:"offerSequence,omitempty"`

	// Escrows
	Owner             string  `json:"owner,omitempty"`
	EscrowSequence    *uint32 `json:"escrowSequence,omitempty"`
	Condition         string  `json:"condition,omitempty"`
	Fulfillment       string  `json:"fulfillment,omitempty"`
	AllowCancelAfter  string  `json:"allowCancelAfter,omitempty"`
	AllowExecuteAfter string  `json:"allowExecuteAfter,omitempty"`

	// Trust lines
	Currency         string `json:"currency,omitempty"`
	Counterparty     string `json:"counterparty,omitempty"`
	Issuer           string `json:"issuer,omitempty"`
	Limit            string `json:"limit,omitempty"`
	RipplingDisabled *bool  `json:"ripplingDisabled,omitempty"`
	Frozen           *bool  `json:"frozen,omitempty"`
	Authorized       *bool  `json:"authorized,omitempty"`

	// AMM
	Asset      *Amount `json:"asset,omitempty"`
	Asset2     *Amount `json:"asset2,omitempty"`
	LPTokenOut *Amount `json:"lpTokenOut,omitempty"`
	LPTokenIn  *Amount `json:"lpTokenIn,omitempty"`
	EPrice     *Amount `json:"ePrice,omitempty"`
	TradingFee *uint32 `json:"tradingFee,omitempty"`

	// Checks
	CheckID string `json:"checkID,omitempty"`

	// NFTs and URITokens
	NFTokenID        string   `json:"nftokenID,omitempty"`
	URITokenID       string   `json:"uritokenID,omitempty"`
	URI              string   `json:"uri,omitempty"`
	TransferFee      *uint32  `json:"transferFee,omitempty"`
	NFTokenOffers    []string `json:"nftokenOffers,omitempty"`
	NFTokenSellOffer string   `json:"nftokenSellOffer,omitempty"`
	NFTokenBuyOffer  string   `json:"nftokenBuyOffer,omitempty"`
	NFTokenBrokerFee *Amount  `json:"nftokenBrokerFee,omitempty"`

	// Payments and settings
	InvoiceID string `json:"invoiceID,omitempty"`
	Domain    string `json:"domain,omitempty"`

	Memos []Memo `json:"memos,omitempty"`

	fields map[string]json.RawMessage
}

// UnmarshalJSON implements json.Unmarshaler and keeps the raw field map.
// Fields of the wrong JSON type are left unset.
func (s *Specification) UnmarshalJSON(data []byte) error {
	type plain Specification
	var decoded plain
	if err := ignoreTypeErrors(json.Unmarshal(data, &decoded)); err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := ignoreTypeErrors(json.Unmarshal(data, &fields)); err != nil {
		return err
	}

	*s = Specification(decoded)
	s.fields = fields
	return nil
}

// BoolFields returns every top-level field whose value is a JSON boolean
func (s *Specification) BoolFields() map[string]bool {
	out := make(map[string]bool)
	for name, value := range s.fields {
		var b bool
		if err := json.Unmarshal(value, &b); err == nil {
			out[name] = b
		}
	}
	return out
}

// FieldNames returns the names of all fields present, sorted
func (s *Specification) FieldNames() []string {
	names := make([]string, 0, len(s.fields))
	for name := range s.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IssuerAddress returns the counterparty of a trust line, whichever key carried it
func (s *Specification) IssuerAddress() string {
	if s.Counterparty != "" {
		return s.Counterparty
	}
	return s.Issuer
}

// SourceAddress returns the source party's address, or "" when absent
func (s *Specification) SourceAddress() string {
	if s.Source == nil {
		return ""
	}
	return s.Source.Address
}

// DestinationAddress returns the destination party's address, or "" when absent
func (s *Specification) DestinationAddress() string {
	if s.Destination == nil {
		return ""
	}
	return s.Destination.Address
}
