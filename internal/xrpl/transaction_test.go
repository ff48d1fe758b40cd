package xrpl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const paymentJSON = `{
  "type": "payment",
  "address": "rSender",
  "sequence": 7,
  "id": "ABC123",
  "specification": {
    "source": {"address": "rSender", "tag": 101102979, "maxAmount": {"currency": "XRP", "value": "10"}},
    "destination": {"address": "rReceiver", "tag": 42},
    "memos": [{"type": "text", "data": "hello"}],
    "flags": {"partialPayment": false}
  },
  "outcome": {
    "result": "tesSUCCESS",
    "timestamp": "2024-03-01T10:00:00.000Z",
    "fee": "0.000012",
    "balanceChanges": [
      {"address": "rSender", "balanceChanges": [{"currency": "XRP", "value": "-10.000012"}]},
      {"address": "rReceiver", "balanceChanges": [{"currency": "XRP", "value": "10"}]}
    ],
    "deliveredAmount": {"currency": "XRP", "value": "10"}
  },
  "rawTransaction": "{\"TransactionType\":\"Payment\",\"Account\":\"rSender\",\"Fee\":\"12\",\"Amount\":\"10000000\",\"date\":762602400,\"Memos\":[{\"Memo\":{\"MemoData\":\"68656C6C6F\"}}]}"
}`

func TestParseTransaction(t *testing.T) {
	tx, err := ParseTransaction([]byte(paymentJSON))
	require.NoError(t, err)

	assert.Equal(t, "payment", tx.TypeName())
	assert.Equal(t, "ABC123", tx.TxHash())
	assert.Equal(t, "rSender", tx.SubmitterAddress())
	assert.Equal(t, "tesSUCCESS", tx.Result())
	assert.Equal(t, "0.000012", tx.FeeValue().String())
	require.NotNil(t, tx.Sequence)
	assert.Equal(t, uint32(7), *tx.Sequence)

	require.NotNil(t, tx.SourceTag())
	assert.Equal(t, uint32(101102979), *tx.SourceTag())
	require.NotNil(t, tx.DestinationTag())
	assert.Equal(t, uint32(42), *tx.DestinationTag())

	require.NotNil(t, tx.RawTransaction)
	assert.Equal(t, "Payment", tx.RawTransaction.TransactionType)
	assert.Equal(t, "12", tx.RawTransaction.Fee.String())

	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), tx.Time())

	changes := tx.Outcome.ChangesFor("rReceiver")
	require.NotNil(t, changes)
	assert.Equal(t, "10", changes.BalanceChanges[0].Value.String())
	assert.Nil(t, tx.Outcome.ChangesFor("rNobody"))

	assert.Equal(t, []Memo{{Type: "text", Data: "hello"}}, tx.DecodedMemos())
	assert.Contains(t, tx.Specification.Flags, "partialPayment")
	assert.Empty(t, tx.Specification.Flags.TrueNames())
}

func TestParseTransaction_RawFallbacks(t *testing.T) {
	tx, err := ParseTransaction([]byte(`{
	  "rawTransaction": {"TransactionType":"AccountSet","Account":"rAcct","Fee":"10","date":0,"hash":"H1",
	    "Memos":[{"Memo":{"MemoType":"74657874","MemoData":"6869"}}]}
	}`))
	require.NoError(t, err)

	assert.Equal(t, "AccountSet", tx.TypeName())
	assert.Equal(t, "H1", tx.TxHash())
	assert.Equal(t, "rAcct", tx.SubmitterAddress())
	assert.Equal(t, "0.00001", tx.FeeValue().String())
	assert.Equal(t, time.Unix(RippleEpochOffset, 0).UTC(), tx.Time())
	assert.Equal(t, []Memo{{Type: "text", Data: "hi"}}, tx.DecodedMemos())
}

func TestParseTransaction_Invalid(t *testing.T) {
	_, err := ParseTransaction([]byte(`{"specification":{}}`))
	assert.ErrorIs(t, err, ErrInvalidTransaction)

	_, err = ParseTransaction([]byte(`not json`))
	assert.ErrorIs(t, err, ErrInvalidTransaction)

	_, err = ParseTransaction([]byte(`{"type":"payment","rawTransaction":"not json"}`))
	assert.Error(t, err)

	_, err = ParseTransactions([]byte(`{"type":"payment"}`))
	assert.ErrorIs(t, err, ErrInvalidTransaction)
}

func TestParseTransaction_ToleratesMistypedFields(t *testing.T) {
	tx, err := ParseTransaction([]byte(`{
	  "type": "payment",
	  "id": "ABC",
	  "specification": {
	    "source": {"address": "rSrc", "tag": "5"},
	    "destination": {"address": "rDst", "tag": -1},
	    "amount": {"value": "", "currency": "USD"},
	    "invoiceID": 7,
	    "memos": [{"type": "note", "data": "hi"}]
	  },
	  "rawTransaction": {"TransactionType": "Payment", "Memos": "x", "Destination": "rDst"}
	}`))
	require.NoError(t, err)

	assert.Equal(t, "ABC", tx.TxHash())
	assert.False(t, tx.Undecodable)

	require.NotNil(t, tx.Specification.Source)
	assert.Equal(t, "rSrc", tx.Specification.Source.Address)
	assert.Nil(t, tx.Specification.Source.Tag)
	require.NotNil(t, tx.Specification.Destination)
	assert.Equal(t, "rDst", tx.Specification.Destination.Address)
	assert.Nil(t, tx.Specification.Destination.Tag)

	assert.Empty(t, tx.Specification.InvoiceID)
	assert.Len(t, tx.Specification.Memos, 1)

	require.NotNil(t, tx.Specification.Amount)
	assert.True(t, tx.Specification.Amount.Value.IsZero())
	assert.Equal(t, "USD", tx.Specification.Amount.Currency)

	require.NotNil(t, tx.RawTransaction)
	assert.Empty(t, tx.RawTransaction.Memos)
	assert.Equal(t, "rDst", tx.RawTransaction.Destination)
}

func TestParseTransactions_PlaceholderForRejectedElements(t *testing.T) {
	txs, err := ParseTransactions([]byte(`[
	  {"type":"payment","id":"OK"},
	  {"type":"","hash":"NOTYPE","outcome":{"result":"tecNO_DST","timestamp":"2024-01-02T03:04:05Z"}},
	  {"type":"payment","id":"RAW","rawTransaction":"not json"},
	  42
	]`))
	require.NoError(t, err)
	require.Len(t, txs, 4)

	assert.False(t, txs[0].Undecodable)
	assert.Equal(t, "OK", txs[0].TxHash())

	assert.True(t, txs[1].Undecodable)
	assert.Equal(t, "NOTYPE", txs[1].TxHash())
	assert.Equal(t, "tecNO_DST", txs[1].Result())
	assert.Equal(t, "2024-01-02T03:04:05Z", txs[1].Time().Format(time.RFC3339))

	assert.True(t, txs[2].Undecodable)
	assert.Equal(t, "payment", txs[2].TypeName())
	assert.Equal(t, "RAW", txs[2].TxHash())

	assert.True(t, txs[3].Undecodable)
	assert.Empty(t, txs[3].TxHash())
	assert.Nil(t, txs[3].Outcome)
}

func TestSpecification_BoolFields(t *testing.T) {
	tx, err := ParseTransaction([]byte(`{"type":"settings","specification":{"requireDestinationTag":true,"disallowIncomingXRP":false,"domain":"example.com"}}`))
	require.NoError(t, err)

	assert.Equal(t, map[string]bool{"requireDestinationTag": true, "disallowIncomingXRP": false}, tx.Specification.BoolFields())
	assert.Equal(t, []string{"disallowIncomingXRP", "domain", "requireDestinationTag"}, tx.Specification.FieldNames())
	assert.Equal(t, "example.com", tx.Specification.Domain)
}

func TestFlags(t *testing.T) {
	tx, err := ParseTransaction([]byte(`{"type":"order","specification":{"flags":{"sell":true,"passive":false,"immediateOrCancel":true}}}`))
	require.NoError(t, err)
	assert.True(t, tx.Specification.Flags.Has("sell"))
	assert.False(t, tx.Specification.Flags.Has("passive"))
	assert.Equal(t, []string{"immediateOrCancel", "sell"}, tx.Specification.Flags.TrueNames())

	numeric, err := ParseTransaction([]byte(`{"type":"order","specification":{"flags":131072}}`))
	require.NoError(t, err)
	assert.Empty(t, numeric.Specification.Flags)
}

func TestDecodeHexText(t *testing.T) {
	assert.Equal(t, "hello", DecodeHexText("68656C6C6F"))
	assert.Equal(t, "example.com", DecodeHexText("6578616D706C652E636F6D"))
	assert.Equal(t, "example.com", DecodeHexText("example.com"))
	assert.Equal(t, "00FF01", DecodeHexText("00FF01"))
	assert.Empty(t, DecodeHexText(""))
}
