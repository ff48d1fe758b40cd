package xrpl

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/kislikjeka/xrplview/pkg/money"
)

// RippleEpochOffset is the number of seconds between the Unix epoch and 2000-01-01T00:00:00Z
const RippleEpochOffset = 946684800

// Transaction is a transaction envelope as returned by the explorer API
type Transaction struct {
	Type           string          `json:"type"`
	ID             string          `json:"id,omitempty"`
	Hash           string          `json:"hash,omitempty"`
	Address        string          `json:"address,omitempty"`
	Sequence       *uint32         `json:"sequence,omitempty"`
	Submitter      string          `json:"submitter,omitempty"`
	Specification  Specification   `json:"specification"`
	Outcome        *Outcome        `json:"outcome,omitempty"`
	RawTransaction *RawTransaction `json:"rawTransaction,omitempty"`

	// Undecodable marks a placeholder built from an envelope ParseTransaction rejected
	Undecodable bool `json:"-"`
}

// RawMemo is a memo in ledger form with hex-encoded fields
type RawMemo struct {
	Memo struct {
		MemoType   string `json:"MemoType,omitempty"`
		MemoFormat string `json:"MemoFormat,omitempty"`
		MemoData   string `json:"MemoData,omitempty"`
	} `json:"Memo"`
}

// RawTransaction is the ledger's own view of the transaction
type RawTransaction struct {
	TransactionType string          `json:"TransactionType"`
	Account         string          `json:"Account"`
	Destination     string          `json:"Destination,omitempty"`
	Sequence        *uint32         `json:"Sequence,omitempty"`
	Fee             *money.Drops    `json:"Fee,omitempty"`
	Amount          json.RawMessage `json:"Amount,omitempty"`
	SourceTag       *uint32         `json:"SourceTag,omitempty"`
	DestinationTag  *uint32         `json:"DestinationTag,omitempty"`
	OfferSequence   *uint32         `json:"OfferSequence,omitempty"`
	Owner           string          `json:"Owner,omitempty"`
	Flags           *uint32         `json:"Flags,omitempty"`
	Date            *int64          `json:"date,omitempty"` // seconds since the ripple epoch
	Hash            string          `json:"hash,omitempty"`
	Memos           []RawMemo       `json:"Memos,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler
// Some explorers embed the raw transaction as a JSON string, both forms are accepted.
func (r *RawTransaction) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var embedded string
		if err := json.Unmarshal(data, &embedded); err != nil {
			return err
		}
		data = []byte(embedded)
	}

	type plain RawTransaction
	var decoded plain
	if err := ignoreTypeErrors(json.Unmarshal(data, &decoded)); err != nil {
		return fmt.Errorf("decode raw transaction: %w", err)
	}
	*r = RawTransaction(decoded)
	return nil
}

// ParseTransaction decodes a single transaction envelope.
// Fields of the wrong JSON type are left unset rather than failing the envelope.
func ParseTransaction(data []byte) (*Transaction, error) {
	var tx Transaction
	if err := ignoreTypeErrors(json.Unmarshal(data, &tx)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
	}
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	return &tx, nil
}

// ParseTransactions decodes a JSON array of transaction envelopes.
// Elements ParseTransaction rejects are returned as placeholders, so the result
// has one entry per array element.
func ParseTransactions(data []byte) ([]Transaction, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
	}

	txs := make([]Transaction, len(raws))
	for i, raw := range raws {
		tx, err := ParseTransaction(raw)
		if err != nil {
			tx = Placeholder(raw)
		}
		txs[i] = *tx
	}
	return txs, nil
}

// Placeholder builds an Undecodable envelope carrying whatever type, hash and outcome
// result can still be read from data. Anything unreadable is left empty.
func Placeholder(data []byte) *Transaction {
	var fields struct {
		Type    json.RawMessage `json:"type"`
		ID      json.RawMessage `json:"id"`
		Hash    json.RawMessage `json:"hash"`
		Outcome struct {
			Result    json.RawMessage `json:"result"`
			Timestamp json.RawMessage `json:"timestamp"`
		} `json:"outcome"`
	}
	_ = json.Unmarshal(data, &fields)

	tx := &Transaction{
		Type:        stringOf(fields.Type),
		ID:          stringOf(fields.ID),
		Hash:        stringOf(fields.Hash),
		Undecodable: true,
	}
	if result := stringOf(fields.Outcome.Result); result != "" {
		tx.Outcome = &Outcome{Result: result, Timestamp: stringOf(fields.Outcome.Timestamp)}
	}
	return tx
}

// stringOf returns the JSON string in raw, "" for anything else
func stringOf(raw json.RawMessage) string {
	var s string
	if json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

// Validate checks the minimum an envelope needs to be processed
func (t *Transaction) Validate() error {
	if t.TypeName() == "" {
		return fmt.Errorf("%w: missing type", ErrInvalidTransaction)
	}
	return nil
}

// TypeName returns the transaction type, falling back to the raw TransactionType
func (t *Transaction) TypeName() string {
	if t.Type != "" {
		return t.Type
	}
	if t.RawTransaction != nil {
		return t.RawTransaction.TransactionType
	}
	return ""
}

// TxHash returns the transaction hash from whichever field carries it
func (t *Transaction) TxHash() string {
	switch {
	case t.Hash != "":
		return t.Hash
	case t.ID != "":
		return t.ID
	case t.RawTransaction != nil:
		return t.RawTransaction.Hash
	}
	return ""
}

// SubmitterAddress returns the account that signed the transaction
func (t *Transaction) SubmitterAddress() string {
	if t.Submitter != "" {
		return t.Submitter
	}
	if t.Address != "" {
		return t.Address
	}
	if t.RawTransaction != nil && t.RawTransaction.Account != "" {
		return t.RawTransaction.Account
	}
	return t.Specification.SourceAddress()
}

// Result returns the engine result code, or "" when there is no outcome
func (t *Transaction) Result() string {
	if t.Outcome == nil {
		return ""
	}
	return t.Outcome.Result
}

// FeeValue returns the fee paid in native units
func (t *Transaction) FeeValue() decimal.Decimal {
	if t.Outcome != nil && t.Outcome.Fee != "" {
		if fee, err := decimal.NewFromString(t.Outcome.Fee); err == nil {
			return fee
		}
	}
	if t.RawTransaction != nil {
		return t.RawTransaction.Fee.Native()
	}
	return decimal.Zero
}

// Time returns when the transaction was validated, or the zero time when unknown
func (t *Transaction) Time() time.Time {
	if t.Outcome != nil && t.Outcome.Timestamp != "" {
		if ts, err := time.Parse(time.RFC3339, t.Outcome.Timestamp); err == nil {
			return ts.UTC()
		}
	}
	if t.RawTransaction != nil && t.RawTransaction.Date != nil {
		return time.Unix(*t.RawTransaction.Date+RippleEpochOffset, 0).UTC()
	}
	return time.Time{}
}

// SourceTag returns the source tag from the specification or the raw transaction
func (t *Transaction) SourceTag() *uint32 {
	if t.Specification.Source != nil && t.Specification.Source.Tag != nil {
		return t.Specification.Source.Tag
	}
	if t.RawTransaction != nil {
		return t.RawTransaction.SourceTag
	}
	return nil
}

// DestinationTag returns the destination tag from the specification or the raw transaction
func (t *Transaction) DestinationTag() *uint32 {
	if t.Specification.Destination != nil && t.Specification.Destination.Tag != nil {
		return t.Specification.Destination.Tag
	}
	if t.RawTransaction != nil {
		return t.RawTransaction.DestinationTag
	}
	return nil
}

// DecodedMemos returns the memos in readable form. Decoded specification memos win,
// otherwise the raw hex memos are decoded.
func (t *Transaction) DecodedMemos() []Memo {
	if len(t.Specification.Memos) > 0 {
		return t.Specification.Memos
	}
	if t.RawTransaction == nil || len(t.RawTransaction.Memos) == 0 {
		return nil
	}

	memos := make([]Memo, 0, len(t.RawTransaction.Memos))
	for _, raw := range t.RawTransaction.Memos {
		memo := Memo{
			Type:   DecodeHexText(raw.Memo.MemoType),
			Format: DecodeHexText(raw.Memo.MemoFormat),
			Data:   DecodeHexText(raw.Memo.MemoData),
		}
		if memo == (Memo{}) {
			continue
		}
		memos = append(memos, memo)
	}
	return memos
}

// DecodeHexText decodes a hex-encoded UTF-8 string. Input that is not hex, or that does not decode
// to printable text, is returned as is.
func DecodeHexText(s string) string {
	if s == "" {
		return ""
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return s
	}

	text := strings.TrimRight(string(raw), "\x00")
	if !utf8.ValidString(text) {
		return s
	}
	for _, r := range text {
		if !unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return s
		}
	}
	return text
}
