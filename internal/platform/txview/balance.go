package txview

import "github.com/kislikjeka/xrplview/internal/xrpl"

// AddressBalanceChanges returns the balance changes of address in tx with the network fee taken out.
//
// It returns nil when tx has no outcome or the outcome has no entry for address. When address did
// not pay the fee the recorded changes are returned unchanged. Otherwise a new slice is built where
// the first native-currency entry is dropped if it is exactly the fee, or has the fee added back.
// The transaction is never modified.
func AddressBalanceChanges(tx *xrpl.Transaction, address, native string) []xrpl.Amount {
	if tx == nil || tx.Outcome == nil {
		return nil
	}

	entry := tx.Outcome.ChangesFor(address)
	if entry == nil {
		return nil
	}

	if feePayer(tx) != address {
		return entry.BalanceChanges
	}

	fee := tx.FeeValue()
	negFee := fee.Neg()

	out := make([]xrpl.Amount, 0, len(entry.BalanceChanges))
	adjusted := false
	for _, change := range entry.BalanceChanges {
		if adjusted || !change.IsNative(native) {
			out = append(out, change)
			continue
		}
		adjusted = true

		if change.Value.Equal(negFee) {
			continue
		}
		change.Value = change.Value.Add(fee)
		out = append(out, change)
	}

	return out
}

// feePayer is the account charged the fee: the specification source, or the submitter
func feePayer(tx *xrpl.Transaction) string {
	if source := tx.Specification.SourceAddress(); source != "" {
		return source
	}
	return tx.SubmitterAddress()
}
