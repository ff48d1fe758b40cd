package txview

import "github.com/kislikjeka/xrplview/internal/xrpl"

var checkActions = map[string]string{
	"checkcreate": "create",
	"checkcash":   "cash",
	"checkcancel": "cancel",
}

// CheckDetails are the fields of check creation, cashing and cancellation
type CheckDetails struct {
	Action         string           `json:"action"`
	CheckID        string           `json:"check_id,omitempty"`
	Source         string           `json:"source,omitempty"`
	Destination    string           `json:"destination,omitempty"`
	SendMax        *FormattedAmount `json:"send_max,omitempty"`
	Amount         *FormattedAmount `json:"amount,omitempty"`
	DeliverMin     *FormattedAmount `json:"deliver_min,omitempty"`
	DestinationTag *uint32          `json:"destination_tag,omitempty"`
	InvoiceID      string           `json:"invoice_id,omitempty"`
	Expiration     string           `json:"expiration,omitempty"`
}

func formatCheck(c *txContext) *formatResult {
	spec := c.spec()
	changes := &xrpl.CheckChanges{}
	if c.outcome() != nil && c.outcome().CheckChanges != nil {
		changes = c.outcome().CheckChanges
	}

	action := checkActions[c.class.Type]
	details := &CheckDetails{
		Action:         action,
		CheckID:        firstString(spec.CheckID, changes.CheckID),
		Source:         partyAddress(changes.Source),
		Destination:    firstString(partyAddress(changes.Destination), spec.DestinationAddress()),
		SendMax:        formatPtr(firstAmount(changes.SendMax, spec.SendMax), c.native),
		Amount:         formatPtr(spec.Amount, c.native),
		DeliverMin:     formatPtr(spec.DeliverMin, c.native),
		DestinationTag: c.tx.DestinationTag(),
		InvoiceID:      firstString(changes.InvoiceID, spec.InvoiceID),
		Expiration:     changes.Expiration,
	}
	if details.Source == "" && action == "create" {
		details.Source = c.submitter
	}

	res := &formatResult{direction: DirectionCheck}
	if action == "cash" {
		res.mainList = c.changes
	}
	res.details.Check = details
	return res
}
