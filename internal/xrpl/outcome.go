package xrpl

// Outcome describes what a validated transaction actually did
type Outcome struct {
	Result          string  `json:"result"`
	Timestamp       string  `json:"timestamp,omitempty"` // RFC3339
	Fee             string  `json:"fee,omitempty"`       // native units, e.g. "0.000012"
	LedgerIndex     *uint32 `json:"ledgerIndex,omitempty"`
	IndexInLedger   *uint32 `json:"indexInLedger,omitempty"`
	DeliveredAmount *Amount `json:"deliveredAmount,omitempty"`

	BalanceChanges       []AddressBalanceChanges   `json:"balanceChanges,omitempty"`
	OrderbookChanges     []AddressOrderbookChanges `json:"orderbookChanges,omitempty"`
	EscrowChanges        *EscrowChanges            `json:"escrowChanges,omitempty"`
	CheckChanges         *CheckChanges             `json:"checkChanges,omitempty"`
	NFTokenChanges       []AddressTokenChanges     `json:"nftokenChanges,omitempty"`
	URITokenChanges      []AddressTokenChanges     `json:"uritokenChanges,omitempty"`
	NFTokenOfferChanges  []AddressOfferChanges     `json:"nftokenOfferChanges,omitempty"`
	URITokenOfferChanges []AddressOfferChanges     `json:"uritokenOfferChanges,omitempty"`
	AffectedObjects      *AffectedObjects          `json:"affectedObjects,omitempty"`
}

// AddressBalanceChanges lists the per-currency deltas of one address
type AddressBalanceChanges struct {
	Address        string          `json:"address"`
	AddressDetails *AddressDetails `json:"addressDetails,omitempty"`
	BalanceChanges []Amount        `json:"balanceChanges"`
}

// OrderbookChange is the effect of a transaction on one resting order
type OrderbookChange struct {
	Direction         string  `json:"direction"` // "buy" or "sell"
	Quantity          *Amount `json:"quantity,omitempty"`
	TotalPrice        *Amount `json:"totalPrice,omitempty"`
	Sequence          *uint32 `json:"sequence,omitempty"`
	Status            string  `json:"status"` // "created", "partially-filled", "filled", "cancelled"
	MakerExchangeRate string  `json:"makerExchangeRate,omitempty"`
	ExpirationTime    string  `json:"expirationTime,omitempty"`
}

// AddressOrderbookChanges groups orderbook changes by order owner
type AddressOrderbookChanges struct {
	Address          string            `json:"address"`
	OrderbookChanges []OrderbookChange `json:"orderbookChanges"`
}

// EscrowChanges describes the escrow object touched by an escrow transaction
type EscrowChanges struct {
	Status            string  `json:"status"` // "created", "executed", "cancelled"
	EscrowIndex       string  `json:"escrowIndex,omitempty"`
	EscrowSequence    *uint32 `json:"escrowSequence,omitempty"`
	Amount            *Amount `json:"amount,omitempty"`
	Condition         string  `json:"condition,omitempty"`
	Source            *Party  `json:"source,omitempty"`
	Destination       *Party  `json:"destination,omitempty"`
	AllowCancelAfter  string  `json:"allowCancelAfter,omitempty"`
	AllowExecuteAfter string  `json:"allowExecuteAfter,omitempty"`
}

// CheckChanges describes the check object touched by a check transaction
type CheckChanges struct {
	Status      string  `json:"status"`
	CheckID     string  `json:"checkID,omitempty"`
	Source      *Party  `json:"source,omitempty"`
	Destination *Party  `json:"destination,omitempty"`
	SendMax     *Amount `json:"sendMax,omitempty"`
	Expiration  string  `json:"expiration,omitempty"`
	InvoiceID   string  `json:"invoiceID,omitempty"`
}

// TokenChange is an NFToken or URIToken entering or leaving an account
type TokenChange struct {
	Status     string `json:"status"` // "added" or "removed"
	NFTokenID  string `json:"nftokenID,omitempty"`
	URITokenID string `json:"uritokenID,omitempty"`
	URI        string `json:"uri,omitempty"`
}

// TokenID returns whichever token identifier is set
func (c TokenChange) TokenID() string {
	if c.NFTokenID != "" {
		return c.NFTokenID
	}
	return c.URITokenID
}

// AddressTokenChanges groups token changes by address. The API names the inner list after
// the token kind, so both keys are accepted.
type AddressTokenChanges struct {
	Address         string        `json:"address"`
	NFTokenChanges  []TokenChange `json:"nftokenChanges,omitempty"`
	URITokenChanges []TokenChange `json:"uritokenChanges,omitempty"`
}

// Changes returns the token changes regardless of token kind
func (c AddressTokenChanges) Changes() []TokenChange {
	if len(c.NFTokenChanges) > 0 {
		return c.NFTokenChanges
	}
	return c.URITokenChanges
}

// OfferChange is an NFToken or URIToken offer created or removed by a transaction
type OfferChange struct {
	Status      string  `json:"status"` // "created" or "deleted"
	Index       string  `json:"index,omitempty"`
	NFTokenID   string  `json:"nftokenID,omitempty"`
	URITokenID  string  `json:"uritokenID,omitempty"`
	Amount      *Amount `json:"amount,omitempty"`
	Flags       Flags   `json:"flags,omitempty"`
	Owner       string  `json:"owner,omitempty"`
	Destination string  `json:"destination,omitempty"`
	Expiration  *int64  `json:"expiration,omitempty"`
}

// TokenID returns whichever token identifier is set
func (c OfferChange) TokenID() string {
	if c.NFTokenID != "" {
		return c.NFTokenID
	}
	return c.URITokenID
}

// IsSell reports whether the offer sells the token
func (c OfferChange) IsSell() bool {
	return c.Flags.Has("sellToken")
}

// AddressOfferChanges groups offer changes by address
type AddressOfferChanges struct {
	Address              string        `json:"address"`
	NFTokenOfferChanges  []OfferChange `json:"nftokenOfferChanges,omitempty"`
	URITokenOfferChanges []OfferChange `json:"uritokenOfferChanges,omitempty"`
}

// Changes returns the offer changes regardless of token kind
func (c AddressOfferChanges) Changes() []OfferChange {
	if len(c.NFTokenOfferChanges) > 0 {
		return c.NFTokenOfferChanges
	}
	return c.URITokenOfferChanges
}

// Token is the explorer's view of an NFToken or URIToken object
type Token struct {
	NFTokenID   string  `json:"nftokenID,omitempty"`
	URITokenID  string  `json:"uritokenID,omitempty"`
	Issuer      string  `json:"issuer,omitempty"`
	Owner       string  `json:"owner,omitempty"`
	URI         string  `json:"uri,omitempty"`
	TransferFee *uint32 `json:"transferFee,omitempty"`
	Taxon       *uint32 `json:"nftokenTaxon,omitempty"`
	Serial      *uint32 `json:"sequence,omitempty"`
	Amount      *Amount `json:"amount,omitempty"`
	Destination string  `json:"destination,omitempty"`
}

// AffectedObjects carries full objects referenced by the change lists
type AffectedObjects struct {
	NFTokens      map[string]Token       `json:"nftokens,omitempty"`
	URITokens     map[string]Token       `json:"uritokens,omitempty"`
	NFTokenOffers map[string]OfferChange `json:"nftokenOffers,omitempty"`
}

// ChangesFor returns the balance changes recorded for address, or nil when there are none
func (o *Outcome) ChangesFor(address string) *AddressBalanceChanges {
	if o == nil {
		return nil
	}
	for i := range o.BalanceChanges {
		if o.BalanceChanges[i].Address == address {
			return &o.BalanceChanges[i]
		}
	}
	return nil
}

// OrderbookChangesFor returns the orderbook changes of orders owned by address
func (o *Outcome) OrderbookChangesFor(address string) []OrderbookChange {
	if o == nil {
		return nil
	}
	for _, entry := range o.OrderbookChanges {
		if entry.Address == address {
			return entry.OrderbookChanges
		}
	}
	return nil
}
