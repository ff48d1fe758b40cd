package txview

import (
	"time"

	"github.com/kislikjeka/xrplview/internal/xrpl"
)

var nftActions = map[string]string{
	"nftokenmint":             "mint",
	"nftokenburn":             "burn",
	"nftokencreateoffer":      "create offer",
	"nftokencanceloffer":      "cancel offer",
	"nftokenacceptoffer":      "accept offer",
	"uritokenmint":            "mint",
	"uritokenbuy":             "buy",
	"uritokencreateselloffer": "create sell offer",
	"uritokencancelselloffer": "cancel sell offer",
}

// NFTDetails are the fields of NFToken and URIToken transactions
type NFTDetails struct {
	Action    string           `json:"action,omitempty"`
	Tokens    []TokenView      `json:"tokens"`
	Offers    []OfferView      `json:"offers"`
	Seller    string           `json:"seller,omitempty"`
	Buyer     string           `json:"buyer,omitempty"`
	Price     *FormattedAmount `json:"price,omitempty"`
	BrokerFee *FormattedAmount `json:"broker_fee,omitempty"`
}

// TokenView is one token touched by the transaction
type TokenView struct {
	ID          string  `json:"id"`
	Status      string  `json:"status,omitempty"` // "added" or "removed"
	Owner       string  `json:"owner,omitempty"`
	Issuer      string  `json:"issuer,omitempty"`
	URI         string  `json:"uri,omitempty"`
	TransferFee *uint32 `json:"transfer_fee,omitempty"`
}

// OfferView is one token offer created, cancelled or accepted
type OfferView struct {
	Index       string           `json:"index,omitempty"`
	TokenID     string           `json:"token_id,omitempty"`
	Status      string           `json:"status"`
	Owner       string           `json:"owner,omitempty"`
	Destination string           `json:"destination,omitempty"`
	Amount      *FormattedAmount `json:"amount,omitempty"`
	Sell        bool             `json:"sell"`
	Expiration  string           `json:"expiration,omitempty"`
}

// formatNFT returns nil for URIToken burns, which have no display row
func formatNFT(c *txContext) *formatResult {
	if c.class.Type == "uritokenburn" {
		return nil
	}

	spec := c.spec()
	details := &NFTDetails{
		Action:    nftActions[c.class.Type],
		Tokens:    c.tokenViews(),
		Offers:    c.offerViews(),
		BrokerFee: formatPtr(spec.NFTokenBrokerFee, c.native),
	}

	switch details.Action {
	case "accept offer", "buy":
		details.Seller, details.Buyer = c.tokenTransferParties()
		if details.Buyer == "" && details.Action == "buy" {
			details.Buyer = c.submitter
		}
		details.Price = firstOfferAmount(details.Offers)
		if details.Price == nil {
			details.Price = formatPtr(spec.Amount, c.native)
		}
	case "create offer", "create sell offer":
		details.Price = formatPtr(spec.Amount, c.native)
	}

	res := &formatResult{direction: DirectionNFT, mainList: c.changes}
	switch c.address {
	case "":
	case details.Seller:
		res.counterparty = details.Buyer
	case details.Buyer:
		res.counterparty = details.Seller
	}

	res.details.NFT = details
	return res
}

// tokenViews lists affected tokens in outcome order, enriched from affectedObjects.
// Without outcome changes the token named by the specification is used. Tokens added
// by a mint fall back to the URI and transfer fee of the specification.
func (c *txContext) tokenViews() []TokenView {
	out := []TokenView{}
	seen := make(map[string]bool)
	mint := nftActions[c.class.Type] == "mint"
	o := c.outcome()
	if o != nil {
		for _, group := range [][]xrpl.AddressTokenChanges{o.NFTokenChanges, o.URITokenChanges} {
			for _, entry := range group {
				for _, change := range entry.Changes() {
					id := change.TokenID()
					if id == "" || seen[id] {
						continue
					}
					seen[id] = true
					view := c.enrichToken(id)
					view.Status = change.Status
					if view.URI == "" {
						view.URI = xrpl.DecodeHexText(change.URI)
					}
					if change.Status == "added" {
						view.Owner = entry.Address
						if mint {
							c.fillFromSpec(&view)
						}
					}
					out = append(out, view)
				}
			}
		}
	}

	if len(out) == 0 {
		if id := firstString(c.spec().NFTokenID, c.spec().URITokenID); id != "" {
			view := c.enrichToken(id)
			c.fillFromSpec(&view)
			out = append(out, view)
		}
	}
	return out
}

// fillFromSpec sets the URI and transfer fee the specification declares when view lacks them
func (c *txContext) fillFromSpec(view *TokenView) {
	if view.URI == "" {
		view.URI = xrpl.DecodeHexText(c.spec().URI)
	}
	if view.TransferFee == nil {
		view.TransferFee = c.spec().TransferFee
	}
}

func (c *txContext) enrichToken(id string) TokenView {
	view := TokenView{ID: id}
	o := c.outcome()
	if o == nil || o.AffectedObjects == nil {
		return view
	}

	token, ok := o.AffectedObjects.NFTokens[id]
	if !ok {
		token, ok = o.AffectedObjects.URITokens[id]
	}
	if !ok {
		return view
	}

	view.Issuer = token.Issuer
	view.Owner = token.Owner
	view.URI = xrpl.DecodeHexText(token.URI)
	view.TransferFee = token.TransferFee
	return view
}

// offerViews lists offer changes of every address, then offers named by the
// specification that only appear in affectedObjects
func (c *txContext) offerViews() []OfferView {
	out := []OfferView{}
	seen := make(map[string]bool)
	o := c.outcome()
	if o == nil {
		return out
	}

	for _, group := range [][]xrpl.AddressOfferChanges{o.NFTokenOfferChanges, o.URITokenOfferChanges} {
		for _, entry := range group {
			for _, change := range entry.Changes() {
				if change.Index != "" {
					seen[change.Index] = true
				}
				view := c.offerView(change)
				if view.Owner == "" {
					view.Owner = entry.Address
				}
				out = append(out, view)
			}
		}
	}

	if o.AffectedObjects != nil {
		for _, index := range []string{c.spec().NFTokenSellOffer, c.spec().NFTokenBuyOffer} {
			if index == "" || seen[index] {
				continue
			}
			if offer, ok := o.AffectedObjects.NFTokenOffers[index]; ok {
				if offer.Index == "" {
					offer.Index = index
				}
				out = append(out, c.offerView(offer))
			}
		}
	}
	return out
}

func (c *txContext) offerView(change xrpl.OfferChange) OfferView {
	view := OfferView{
		Index:       change.Index,
		TokenID:     change.TokenID(),
		Status:      change.Status,
		Owner:       change.Owner,
		Destination: change.Destination,
		Amount:      formatPtr(change.Amount, c.native),
		Sell:        change.IsSell(),
	}
	if change.Expiration != nil {
		view.Expiration = time.Unix(*change.Expiration+xrpl.RippleEpochOffset, 0).UTC().Format(time.RFC3339)
	}
	return view
}

// tokenTransferParties returns who lost and who gained a token
func (c *txContext) tokenTransferParties() (seller, buyer string) {
	o := c.outcome()
	if o == nil {
		return "", ""
	}
	for _, group := range [][]xrpl.AddressTokenChanges{o.NFTokenChanges, o.URITokenChanges} {
		for _, entry := range group {
			for _, change := range entry.Changes() {
				switch change.Status {
				case "removed":
					seller = firstString(seller, entry.Address)
				case "added":
					buyer = firstString(buyer, entry.Address)
				}
			}
		}
	}
	return seller, buyer
}

func firstOfferAmount(offers []OfferView) *FormattedAmount {
	for _, offer := range offers {
		if offer.Amount != nil {
			return offer.Amount
		}
	}
	return nil
}
