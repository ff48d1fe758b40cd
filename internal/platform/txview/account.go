package txview

import "github.com/kislikjeka/xrplview/internal/xrpl"

// AccountSetDetails lists every boolean setting present in the transaction
type AccountSetDetails struct {
	Settings map[string]bool `json:"settings"`
	Domain   string          `json:"domain,omitempty"`
}

// AccountDeleteDetails are the fields of an account deletion
type AccountDeleteDetails struct {
	Destination     string           `json:"destination"`
	DestinationTag  *uint32          `json:"destination_tag,omitempty"`
	DeliveredAmount *FormattedAmount `json:"delivered_amount,omitempty"`
}

func formatAccountSet(c *txContext) *formatResult {
	spec := c.spec()
	res := &formatResult{direction: DirectionAccountSet, mainList: c.changes}
	res.details.AccountSet = &AccountSetDetails{
		Settings: spec.BoolFields(),
		Domain:   xrpl.DecodeHexText(spec.Domain),
	}
	return res
}

func formatAccountDelete(c *txContext) *formatResult {
	spec := c.spec()
	destination := firstString(spec.DestinationAddress(), c.raw().Destination)

	var delivered *xrpl.Amount
	if c.outcome() != nil {
		delivered = c.outcome().DeliveredAmount
		if delivered == nil {
			delivered = firstPositiveNative(c.outcome().ChangesFor(destination), c.native)
		}
	}

	res := &formatResult{
		direction:    DirectionAccountDelete,
		counterparty: destination,
		mainList:     c.changes,
	}
	if spec.Destination != nil {
		res.counterpartyDetails = spec.Destination.AddressDetails
	}
	if c.address == destination {
		res.counterparty = c.submitter
		res.counterpartyDetails = nil
	}

	res.details.AccountDelete = &AccountDeleteDetails{
		Destination:     destination,
		DestinationTag:  c.tx.DestinationTag(),
		DeliveredAmount: formatPtr(delivered, c.native),
	}
	return res
}

func firstPositiveNative(entry *xrpl.AddressBalanceChanges, native string) *xrpl.Amount {
	if entry == nil {
		return nil
	}
	for i := range entry.BalanceChanges {
		change := entry.BalanceChanges[i]
		if change.IsNative(native) && change.Value.IsPositive() {
			return &change
		}
	}
	return nil
}
