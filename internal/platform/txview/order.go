package txview

import (
	"fmt"
	"strings"

	"github.com/kislikjeka/xrplview/internal/xrpl"
	"github.com/kislikjeka/xrplview/pkg/money"
)

const (
	sideBuy  = "Buy"
	sideSell = "Sell"
)

// OrderDetails are the fields of a placed order
type OrderDetails struct {
	Side              string           `json:"side"`
	OrderType         string           `json:"order_type"`
	OrderSequence     *uint32          `json:"order_sequence,omitempty"`
	ReplacedSequence  *uint32          `json:"replaced_sequence,omitempty"`
	Quantity          *FormattedAmount `json:"quantity,omitempty"`
	TotalPrice        *FormattedAmount `json:"total_price,omitempty"`
	Rate              string           `json:"rate,omitempty"`
	Passive           bool             `json:"passive,omitempty"`
	ImmediateOrCancel bool             `json:"immediate_or_cancel,omitempty"`
	FillOrKill        bool             `json:"fill_or_kill,omitempty"`
	Expiration        string           `json:"expiration,omitempty"`
}

// OrderCancelDetails are the fields of a cancelled order
type OrderCancelDetails struct {
	Label         string           `json:"label"`
	Side          string           `json:"side,omitempty"`
	OrderSequence *uint32          `json:"order_sequence,omitempty"`
	Quantity      *FormattedAmount `json:"quantity,omitempty"`
	TotalPrice    *FormattedAmount `json:"total_price,omitempty"`
}

// sideOf maps an orderbook direction or flag set to a display side, "" when unknown
func sideOf(direction string, flags xrpl.Flags) string {
	if flags.Has("sell") {
		return sideSell
	}
	switch strings.ToLower(direction) {
	case "sell":
		return sideSell
	case "buy":
		return sideBuy
	}
	return ""
}

// formatOrderCreate labels the order from the subject's point of view. A submitter whose only
// balance change was the fee has placed an order that did not cross anything yet.
func formatOrderCreate(c *txContext) *formatResult {
	spec := c.spec()

	side := sideOf(spec.Direction, spec.Flags)
	if side == "" {
		side = sideBuy
	}

	var orderType string
	res := &formatResult{mainList: c.changes}
	switch {
	case c.isSubmitter() && len(c.changes) == 0:
		orderType = side + " order placed"
		res.direction = DirectionOrderbook
	case c.isSubmitter():
		orderType = side + " order placed and fulfilled"
		res.direction = DirectionExchange
	default:
		if own := c.outcome().OrderbookChangesFor(c.address); len(own) > 0 {
			if ownSide := sideOf(own[0].Direction, nil); ownSide != "" {
				side = ownSide
			}
		}
		orderType = side + " order fulfilled by another account"
		res.direction = DirectionExchange
	}

	details := &OrderDetails{
		Side:              side,
		OrderType:         orderType,
		OrderSequence:     firstUint32(spec.OrderSequence, c.tx.Sequence),
		ReplacedSequence:  firstUint32(spec.OfferSequence, c.raw().OfferSequence),
		Quantity:          formatPtr(spec.Quantity, c.native),
		TotalPrice:        formatPtr(spec.TotalPrice, c.native),
		Passive:           spec.Flags.Has("passive"),
		ImmediateOrCancel: spec.Flags.Has("immediateOrCancel"),
		FillOrKill:        spec.Flags.Has("fillOrKill"),
	}
	if spec.Quantity != nil && spec.TotalPrice != nil && !spec.Quantity.Value.IsZero() {
		details.Rate = money.FormatShort(spec.TotalPrice.Value.Div(spec.Quantity.Value))
	}
	if own := c.outcome().OrderbookChangesFor(c.submitter); len(own) > 0 {
		details.Expiration = own[0].ExpirationTime
	}

	res.details.Order = details
	return res
}

func formatOrderCancel(c *txContext) *formatResult {
	spec := c.spec()
	seq := firstUint32(spec.OrderSequence, spec.OfferSequence, c.raw().OfferSequence)

	details := &OrderCancelDetails{OrderSequence: seq}
	if change := c.cancelledOrder(seq); change != nil {
		details.Side = sideOf(change.Direction, nil)
		details.Quantity = formatPtr(change.Quantity, c.native)
		details.TotalPrice = formatPtr(change.TotalPrice, c.native)
	}

	subject := "Order"
	if details.Side != "" {
		subject = details.Side + " order"
	}
	if seq != nil {
		details.Label = fmt.Sprintf("%s #%d cancelled", subject, *seq)
	} else {
		details.Label = subject + " cancelled"
	}

	res := &formatResult{
		direction: DirectionOrderbook,
		mainList:  c.changes,
	}
	res.details.OrderCancel = details
	return res
}

// cancelledOrder finds the submitter's cancelled orderbook entry, matching seq when known
func (c *txContext) cancelledOrder(seq *uint32) *xrpl.OrderbookChange {
	changes := c.outcome().OrderbookChangesFor(c.submitter)
	var fallback *xrpl.OrderbookChange
	for i := range changes {
		change := &changes[i]
		if change.Status != "cancelled" {
			continue
		}
		if seq != nil && change.Sequence != nil && *change.Sequence == *seq {
			return change
		}
		if fallback == nil {
			fallback = change
		}
	}
	return fallback
}
