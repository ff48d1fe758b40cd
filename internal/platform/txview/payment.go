package txview

import "github.com/kislikjeka/xrplview/internal/xrpl"

// PaymentDetails are the payment-specific fields
type PaymentDetails struct {
	Source          string           `json:"source"`
	Destination     string           `json:"destination"`
	DeliveredAmount *FormattedAmount `json:"delivered_amount,omitempty"`
	SendMax         *FormattedAmount `json:"send_max,omitempty"`
	SourceTag       *uint32          `json:"source_tag,omitempty"`
	DestinationTag  *uint32          `json:"destination_tag,omitempty"`
	Dapp            string           `json:"dapp,omitempty"`
	Partial         bool             `json:"partial,omitempty"`
	InvoiceID       string           `json:"invoice_id,omitempty"`
}

func formatPayment(c *txContext) *formatResult {
	spec := c.spec()
	source := firstString(spec.SourceAddress(), c.submitter)
	destination := firstString(spec.DestinationAddress(), c.raw().Destination)

	res := &formatResult{}
	switch {
	case source == c.address && destination == c.address:
		res.direction = DirectionExchange
	case destination == c.address:
		res.direction = DirectionIncoming
	case source == c.address:
		res.direction = DirectionOutgoing
	default:
		res.direction = directionFromChanges(c.changes)
	}

	switch res.direction {
	case DirectionIncoming:
		res.counterparty = source
		if spec.Source != nil {
			res.counterpartyDetails = spec.Source.AddressDetails
		}
	case DirectionOutgoing:
		res.counterparty = destination
		if spec.Destination != nil {
			res.counterpartyDetails = spec.Destination.AddressDetails
		}
	}

	delivered := c.deliveredAmount()
	if delivered != nil {
		d := delivered.WithCurrency(c.native)
		switch res.direction {
		case DirectionOutgoing:
			d.Value = d.Value.Abs().Neg()
		case DirectionIncoming:
			d.Value = d.Value.Abs()
		}
		delivered = &d
	}

	if res.direction == DirectionExchange || delivered == nil {
		res.mainList = c.changes
	} else {
		res.mainList = []xrpl.Amount{*delivered}
		for _, change := range c.changes {
			if !change.WithCurrency(c.native).SameAsset(*delivered) {
				res.lowList = append(res.lowList, change)
			}
		}
	}

	details := &PaymentDetails{
		Source:          source,
		Destination:     destination,
		DeliveredAmount: formatPtr(delivered, c.native),
		DestinationTag:  c.tx.DestinationTag(),
		Partial:         spec.Flags.Has("partialPayment"),
		InvoiceID:       spec.InvoiceID,
	}
	if spec.Source != nil {
		details.SendMax = formatPtr(spec.Source.MaxAmount, c.native)
	}
	if details.SendMax == nil {
		details.SendMax = formatPtr(spec.SendMax, c.native)
	}

	if tag := c.tx.SourceTag(); tag != nil {
		if name, ok := c.dapps.Lookup(*tag); ok {
			details.Dapp = name
		} else {
			details.SourceTag = tag
		}
	}

	res.details.Payment = details
	return res
}

// deliveredAmount picks the best available record of what reached the destination
func (c *txContext) deliveredAmount() *xrpl.Amount {
	spec := c.spec()
	var fromOutcome, fromDestination *xrpl.Amount
	if c.outcome() != nil {
		fromOutcome = c.outcome().DeliveredAmount
	}
	if spec.Destination != nil {
		fromDestination = spec.Destination.Amount
	}
	return firstAmount(fromOutcome, fromDestination, spec.Amount, c.rawAmount())
}

// directionFromChanges infers direction for an address that is neither party,
// e.g. an issuer or an account a payment rippled through
func directionFromChanges(changes []xrpl.Amount) Direction {
	var in, out bool
	for _, change := range changes {
		switch change.Value.Sign() {
		case 1:
			in = true
		case -1:
			out = true
		}
	}

	switch {
	case in && out:
		return DirectionExchange
	case in:
		return DirectionIncoming
	case out:
		return DirectionOutgoing
	default:
		return DirectionUnknown
	}
}
