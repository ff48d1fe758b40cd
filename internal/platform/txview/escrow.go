package txview

import "github.com/kislikjeka/xrplview/internal/xrpl"

const (
	escrowActionCreate = "create"
	escrowActionFinish = "finish"
	escrowActionCancel = "cancel"
)

var escrowActions = map[string]string{
	"escrowcreate":       escrowActionCreate,
	"escrowcreation":     escrowActionCreate,
	"escrowfinish":       escrowActionFinish,
	"escrowexecution":    escrowActionFinish,
	"escrowcancel":       escrowActionCancel,
	"escrowcancellation": escrowActionCancel,
}

// EscrowDetails are the fields of an escrow creation, execution or cancellation
type EscrowDetails struct {
	Action            string           `json:"action"`
	Owner             string           `json:"owner"`
	Destination       string           `json:"destination,omitempty"`
	EscrowSequence    *uint32          `json:"escrow_sequence,omitempty"`
	Amount            *FormattedAmount `json:"amount,omitempty"`
	Condition         string           `json:"condition,omitempty"`
	Fulfillment       string           `json:"fulfillment,omitempty"`
	AllowExecuteAfter string           `json:"allow_execute_after,omitempty"`
	AllowCancelAfter  string           `json:"allow_cancel_after,omitempty"`
	ExecutedBy        string           `json:"executed_by,omitempty"`
	DestinationTag    *uint32          `json:"destination_tag,omitempty"`
}

func formatEscrow(c *txContext) *formatResult {
	spec := c.spec()
	changes := c.escrowChanges()
	action := escrowActions[c.class.Type]

	owner := firstString(partyAddress(changes.Source), spec.Owner)
	if owner == "" && action == escrowActionCreate {
		owner = firstString(spec.SourceAddress(), c.submitter)
	}
	destination := firstString(partyAddress(changes.Destination), spec.DestinationAddress(), c.raw().Destination)

	seq := firstUint32(changes.EscrowSequence, spec.EscrowSequence, c.raw().OfferSequence)
	if seq == nil && action == escrowActionCreate {
		seq = c.tx.Sequence
	}

	details := &EscrowDetails{
		Action:            action,
		Owner:             owner,
		Destination:       destination,
		EscrowSequence:    seq,
		Amount:            formatPtr(firstAmount(changes.Amount, spec.Amount, c.rawAmount()), c.native),
		Condition:         firstString(changes.Condition, spec.Condition),
		Fulfillment:       spec.Fulfillment,
		AllowExecuteAfter: firstString(changes.AllowExecuteAfter, spec.AllowExecuteAfter),
		AllowCancelAfter:  firstString(changes.AllowCancelAfter, spec.AllowCancelAfter),
		DestinationTag:    c.tx.DestinationTag(),
	}

	// for the submitter the fee is already taken out, leaving only the escrowed amount
	res := &formatResult{direction: DirectionEscrow, mainList: c.changes}
	if (action == escrowActionFinish || action == escrowActionCancel) && !c.isSubmitter() {
		details.ExecutedBy = c.submitter
	}

	switch {
	case owner == destination:
	case c.address == owner:
		res.counterparty = destination
	default:
		res.counterparty = owner
	}

	res.details.Escrow = details
	return res
}

// escrowChanges returns the outcome's escrow object or an empty one, never nil
func (c *txContext) escrowChanges() *xrpl.EscrowChanges {
	if c.outcome() == nil || c.outcome().EscrowChanges == nil {
		return &xrpl.EscrowChanges{}
	}
	return c.outcome().EscrowChanges
}

func partyAddress(p *xrpl.Party) string {
	if p == nil {
		return ""
	}
	return p.Address
}
