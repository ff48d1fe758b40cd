package txview

import "github.com/kislikjeka/xrplview/internal/xrpl"

// TrustlineDetails are the fields of a trust line change. A zero limit removes the line.
type TrustlineDetails struct {
	Currency         string           `json:"currency"`
	Issuer           string           `json:"issuer"`
	Limit            *FormattedAmount `json:"limit,omitempty"`
	Removed          bool             `json:"removed,omitempty"`
	RipplingDisabled *bool            `json:"rippling_disabled,omitempty"`
	Frozen           *bool            `json:"frozen,omitempty"`
	Authorized       *bool            `json:"authorized,omitempty"`
}

func formatTrustline(c *txContext) *formatResult {
	spec := c.spec()
	issuer := spec.IssuerAddress()

	details := &TrustlineDetails{
		Currency:         xrpl.DisplayCurrency(spec.Currency),
		Issuer:           issuer,
		RipplingDisabled: spec.RipplingDisabled,
		Frozen:           spec.Frozen,
		Authorized:       spec.Authorized,
	}
	if spec.Limit != "" {
		limit := FormatValue(spec.Limit, spec.Currency)
		if limit.Value != "" {
			limit.Issuer = issuer
			details.Limit = &limit
			details.Removed = limit.ColorClass == ColorOrange
		}
	}

	res := &formatResult{
		direction:    DirectionTrustline,
		counterparty: issuer,
		mainList:     c.changes,
	}
	res.details.Trustline = details
	return res
}
