package transactions

import (
	"bytes"
	"encoding/json"

	"github.com/kislikjeka/xrplview/internal/platform/txview"
)

// AccountTransactionsPage is one page of an account's transactions
type AccountTransactionsPage struct {
	Address      string                   `json:"address"`
	Transactions []txview.TransactionView `json:"transactions"`
	Marker       string                   `json:"marker,omitempty"` // pass back to fetch the next page
}

// accountTransactionsResponse is the explorer's account transactions payload
type accountTransactionsResponse struct {
	Address      string            `json:"address"`
	Transactions []json.RawMessage `json:"transactions"`
	Marker       json.RawMessage   `json:"marker,omitempty"`
}

// markerString renders an opaque pagination marker for a query string: JSON strings unquoted,
// anything else as compact JSON text
func markerString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return string(raw)
	}
	return compact.String()
}
