package txview

import (
	"time"

	"github.com/kislikjeka/xrplview/internal/xrpl"
)

// DappRegistry resolves source tags of known applications
type DappRegistry interface {
	Lookup(sourceTag uint32) (name string, ok bool)
}

type noDapps struct{}

func (noDapps) Lookup(uint32) (string, bool) { return "", false }

// Processor turns transaction envelopes into view models for one network.
// It holds no mutable state and is safe for concurrent use.
type Processor struct {
	native string
	dapps  DappRegistry
}

// NewProcessor creates a processor for a network with the given native currency.
// dapps may be nil.
func NewProcessor(nativeCurrency string, dapps DappRegistry) *Processor {
	if dapps == nil {
		dapps = noDapps{}
	}
	return &Processor{
		native: nativeCurrency,
		dapps:  dapps,
	}
}

// NativeCurrency returns the currency code fees are paid in
func (p *Processor) NativeCurrency() string {
	return p.native
}

// ProcessTransactionBlocks processes every transaction as seen from address.
// The result has the same length and order as txs.
func (p *Processor) ProcessTransactionBlocks(txs []xrpl.Transaction, address string) []TransactionView {
	views := make([]TransactionView, len(txs))
	for i := range txs {
		views[i] = p.ProcessTransactionBlock(&txs[i], address)
	}
	return views
}

// ProcessTransactionBlock builds the view model of tx as seen from address. An empty address
// means the submitter's point of view. It never fails: unknown types and missing fields produce
// a sparsely populated view.
func (p *Processor) ProcessTransactionBlock(tx *xrpl.Transaction, address string) TransactionView {
	if tx == nil {
		return TransactionView{
			Family:    FamilyUnclassified,
			Direction: DirectionUnknown,
			MainList:  []FormattedAmount{},
			LowList:   []FormattedAmount{},
		}
	}

	rawType := tx.TypeName()
	class := Classify(rawType)
	if tx.Undecodable {
		class.Family = FamilyUnclassified
	}
	submitter := tx.SubmitterAddress()
	if address == "" {
		address = submitter
	}

	fee := tx.FeeValue()
	status := tx.Result()
	view := TransactionView{
		Type:        Label(rawType),
		RawType:     rawType,
		Family:      class.Family,
		Status:      status,
		StatusText:  StatusText(status),
		Failed:      status != SuccessCode,
		Hash:        tx.TxHash(),
		Fee:         fee.String(),
		FeeCurrency: p.native,
		Sequence:    tx.Sequence,
		Submitter:   submitter,
		Memos:       tx.DecodedMemos(),
		Direction:   DirectionUnknown,
	}
	if ts := tx.Time(); !ts.IsZero() {
		view.Date = ts.Format(time.RFC3339)
	}

	ctx := &txContext{
		tx:        tx,
		class:     class,
		address:   address,
		native:    p.native,
		submitter: submitter,
		changes:   AddressBalanceChanges(tx, address, p.native),
		dapps:     p.dapps,
	}

	res, hidden := p.format(ctx)
	view.Hidden = hidden
	if res != nil {
		if res.direction != "" {
			view.Direction = res.direction
		}
		view.Counterparty = res.counterparty
		view.CounterpartyDetails = res.counterpartyDetails
		view.Details = res.details
		view.MainList = formatList(res.mainList, p.native)
		view.LowList = formatList(res.lowList, p.native)
	}
	if view.MainList == nil {
		view.MainList = []FormattedAmount{}
	}
	if view.LowList == nil {
		view.LowList = []FormattedAmount{}
	}
	view.Arrow = view.Direction.Arrow()

	return view
}

// format dispatches to the family formatter. hidden is true when the formatter
// decided the transaction has no display row.
func (p *Processor) format(c *txContext) (res *formatResult, hidden bool) {
	switch c.class.Family {
	case FamilyPayment:
		res = formatPayment(c)
	case FamilyOrderCreate:
		res = formatOrderCreate(c)
	case FamilyOrderCancel:
		res = formatOrderCancel(c)
	case FamilyEscrow:
		res = formatEscrow(c)
	case FamilyNFT:
		res = formatNFT(c)
	case FamilyTrustline:
		res = formatTrustline(c)
	case FamilyAMM:
		res = formatAMM(c)
	case FamilyCheck:
		res = formatCheck(c)
	case FamilyAccountSet:
		res = formatAccountSet(c)
	case FamilyAccountDelete:
		res = formatAccountDelete(c)
	default:
		return &formatResult{direction: DirectionUnknown}, false
	}
	return res, res == nil
}
