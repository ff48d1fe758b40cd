package txview

import "github.com/kislikjeka/xrplview/internal/xrpl"

// Direction describes how a transaction affected the viewed address
type Direction string

const (
	DirectionIncoming      Direction = "incoming"
	DirectionOutgoing      Direction = "outgoing"
	DirectionExchange      Direction = "exchange"
	DirectionOrderbook     Direction = "orderbook"
	DirectionEscrow        Direction = "escrow"
	DirectionNFT           Direction = "nft"
	DirectionTrustline     Direction = "trustline"
	DirectionAMM           Direction = "amm"
	DirectionCheck         Direction = "check"
	DirectionAccountSet    Direction = "accountset"
	DirectionAccountDelete Direction = "accountdelete"
	DirectionUnknown       Direction = "unknown"
)

// Arrow returns the glyph shown next to a transaction, empty for non-transfer directions
func (d Direction) Arrow() string {
	switch d {
	case DirectionOutgoing:
		return "→"
	case DirectionIncoming:
		return "←"
	case DirectionExchange:
		return "⇄"
	default:
		return ""
	}
}

// TransactionView is the render-ready form of one transaction as seen from one address
type TransactionView struct {
	Type                string               `json:"type"` // display label
	RawType             string               `json:"raw_type"`
	Family              Family               `json:"family"`
	Status              string               `json:"status"`
	StatusText          string               `json:"status_text"`
	Failed              bool                 `json:"failed"`
	Hidden              bool                 `json:"hidden,omitempty"`
	Hash                string               `json:"hash"`
	Date                string               `json:"date,omitempty"` // RFC3339
	Fee                 string               `json:"fee"`
	FeeCurrency         string               `json:"fee_currency"`
	Sequence            *uint32              `json:"sequence,omitempty"`
	Submitter           string               `json:"submitter"`
	Memos               []xrpl.Memo          `json:"memos,omitempty"`
	Direction           Direction            `json:"direction"`
	Counterparty        string               `json:"counterparty,omitempty"`
	CounterpartyDetails *xrpl.AddressDetails `json:"counterparty_details,omitempty"`
	MainList            []FormattedAmount    `json:"main_list"`
	LowList             []FormattedAmount    `json:"low_list"`
	Arrow               string               `json:"arrow,omitempty"`
	Details             Details              `json:"details"`
}

// Details holds the family-specific fields. At most one member is set.
type Details struct {
	Payment       *PaymentDetails       `json:"payment,omitempty"`
	Order         *OrderDetails         `json:"order,omitempty"`
	OrderCancel   *OrderCancelDetails   `json:"order_cancel,omitempty"`
	Escrow        *EscrowDetails        `json:"escrow,omitempty"`
	NFT           *NFTDetails           `json:"nft,omitempty"`
	Trustline     *TrustlineDetails     `json:"trustline,omitempty"`
	AMM           *AMMDetails           `json:"amm,omitempty"`
	Check         *CheckDetails         `json:"check,omitempty"`
	AccountSet    *AccountSetDetails    `json:"account_set,omitempty"`
	AccountDelete *AccountDeleteDetails `json:"account_delete,omitempty"`
}

// formatResult is what a family formatter contributes to the view
type formatResult struct {
	direction           Direction
	counterparty        string
	counterpartyDetails *xrpl.AddressDetails
	mainList            []xrpl.Amount
	lowList             []xrpl.Amount
	details             Details
}

// txContext is the normalized input shared by all formatters
type txContext struct {
	tx        *xrpl.Transaction
	class     Classification
	address   string
	native    string
	submitter string
	changes   []xrpl.Amount // address's fee-adjusted balance changes
	dapps     DappRegistry
}

func (c *txContext) spec() *xrpl.Specification {
	return &c.tx.Specification
}

func (c *txContext) outcome() *xrpl.Outcome {
	return c.tx.Outcome
}

func (c *txContext) isSubmitter() bool {
	return c.address == c.submitter
}

// raw returns the raw transaction or an empty one, never nil
func (c *txContext) raw() *xrpl.RawTransaction {
	if c.tx.RawTransaction == nil {
		return &xrpl.RawTransaction{}
	}
	return c.tx.RawTransaction
}

// rawAmount decodes the raw Amount field, nil when absent or malformed
func (c *txContext) rawAmount() *xrpl.Amount {
	amount, err := xrpl.ParseLedgerAmount(c.raw().Amount)
	if err != nil {
		return nil
	}
	return amount
}

// firstAmount returns the first non-nil amount
func firstAmount(candidates ...*xrpl.Amount) *xrpl.Amount {
	for _, a := range candidates {
		if a != nil {
			return a
		}
	}
	return nil
}

// firstString returns the first non-empty string
func firstString(candidates ...string) string {
	for _, s := range candidates {
		if s != "" {
			return s
		}
	}
	return ""
}

// firstUint32 returns the first non-nil value
func firstUint32(candidates ...*uint32) *uint32 {
	for _, v := range candidates {
		if v != nil {
			return v
		}
	}
	return nil
}
