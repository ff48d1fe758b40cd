package txview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values(list []FormattedAmount) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.Value)
	}
	return out
}

func escrowJSON(txType, submitter, spec, status, balances string) string {
	return `{
	  "type": "` + txType + `",
	  "address": "` + submitter + `",
	  "sequence": 21,
	  "specification": ` + spec + `,
	  "outcome": {
	    "result": "tesSUCCESS",
	    "fee": "0.000012",
	    "escrowChanges": {
	      "status": "` + status + `",
	      "escrowSequence": 21,
	      "amount": {"currency": "XRP", "value": "50"},
	      "source": {"address": "` + alice + `"},
	      "destination": {"address": "` + bob + `"}
	    },
	    "balanceChanges": ` + balances + `
	  }
	}`
}

func TestProcessTransactionBlock_Escrow(t *testing.T) {
	createSpec := `{"amount": {"currency": "XRP", "value": "50"}, "destination": {"address": "` + bob + `"}, "allowCancelAfter": "2025-01-01T00:00:00Z"}`
	cancelSpec := `{"owner": "` + alice + `", "escrowSequence": 21}`

	tests := []struct {
		name         string
		tx           string
		viewer       string
		action       string
		mainList     []string
		counterparty string
		executedBy   string
	}{
		{
			name:         "create seen by submitter",
			tx:           escrowJSON("escrowCreation", alice, createSpec, "created", `[{"address": "`+alice+`", "balanceChanges": [{"currency": "XRP", "value": "-50.000012"}]}]`),
			viewer:       alice,
			action:       "create",
			mainList:     []string{"-50"},
			counterparty: bob,
		},
		{
			name:         "create seen by destination",
			tx:           escrowJSON("EscrowCreate", alice, createSpec, "created", `[{"address": "`+alice+`", "balanceChanges": [{"currency": "XRP", "value": "-50.000012"}]}]`),
			viewer:       bob,
			action:       "create",
			mainList:     []string{},
			counterparty: alice,
		},
		{
			name:         "cancel seen by submitter",
			tx:           escrowJSON("escrowCancellation", alice, cancelSpec, "cancelled", `[{"address": "`+alice+`", "balanceChanges": [{"currency": "XRP", "value": "49.999988"}]}]`),
			viewer:       alice,
			action:       "cancel",
			mainList:     []string{"50"},
			counterparty: bob,
		},
		{
			name:   "cancel by a third account",
			tx:     escrowJSON("EscrowCancel", carol, cancelSpec, "cancelled", `[{"address": "`+alice+`", "balanceChanges": [{"currency": "XRP", "value": "50"}]}, {"address": "`+carol+`", "balanceChanges": [{"currency": "XRP", "value": "-0.000012"}]}]`),
			viewer: alice,
			action: "cancel",
			// the fee was paid by carol, so the refund is reported as recorded
			mainList:     []string{"50"},
			counterparty: bob,
			executedBy:   carol,
		},
	}

	p := newTestProcessor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := p.ProcessTransactionBlock(mustParse(t, tt.tx), tt.viewer)

			escrow := view.Details.Escrow
			require.NotNil(t, escrow)
			assert.Equal(t, FamilyEscrow, view.Family)
			assert.Equal(t, DirectionEscrow, view.Direction)
			assert.Equal(t, tt.action, escrow.Action)
			assert.Equal(t, alice, escrow.Owner)
			assert.Equal(t, bob, escrow.Destination)
			require.NotNil(t, escrow.EscrowSequence)
			assert.Equal(t, uint32(21), *escrow.EscrowSequence)
			assert.Equal(t, "50 XRP", escrow.Amount.Formatted)
			assert.Equal(t, tt.executedBy, escrow.ExecutedBy)
			assert.Equal(t, tt.counterparty, view.Counterparty)
			assert.Equal(t, tt.mainList, values(view.MainList))
		})
	}
}

func TestProcessTransactionBlock_NFT(t *testing.T) {
	feeOnly := `[{"address": "` + alice + `", "balanceChanges": [{"currency": "XRP", "value": "-0.000012"}]}]`

	tests := []struct {
		name   string
		tx     string
		viewer string
		check  func(t *testing.T, view TransactionView)
	}{
		{
			name: "mint takes uri and fee from the specification",
			tx: `{
			  "type": "nftokenMint",
			  "address": "` + alice + `",
			  "specification": {"uri": "68747470", "transferFee": 250},
			  "outcome": {
			    "result": "tesSUCCESS",
			    "fee": "0.000012",
			    "nftokenChanges": [{"address": "` + alice + `", "nftokenChanges": [{"status": "added", "nftokenID": "MINTED"}]}],
			    "balanceChanges": ` + feeOnly + `
			  }
			}`,
			viewer: alice,
			check: func(t *testing.T, view TransactionView) {
				nft := view.Details.NFT
				assert.Equal(t, "mint", nft.Action)
				require.Len(t, nft.Tokens, 1)
				token := nft.Tokens[0]
				assert.Equal(t, "MINTED", token.ID)
				assert.Equal(t, "added", token.Status)
				assert.Equal(t, alice, token.Owner)
				assert.Equal(t, "http", token.URI)
				require.NotNil(t, token.TransferFee)
				assert.Equal(t, uint32(250), *token.TransferFee)
				assert.Empty(t, nft.Offers)
				assert.Empty(t, view.MainList)
				assert.Empty(t, view.Counterparty)
			},
		},
		{
			name: "mint keeps the uri reported by the outcome",
			tx: `{
			  "type": "URITokenMint",
			  "address": "` + alice + `",
			  "specification": {"uri": "68747470"},
			  "outcome": {
			    "result": "tesSUCCESS",
			    "fee": "0.000012",
			    "uritokenChanges": [{"address": "` + alice + `", "uritokenChanges": [{"status": "added", "uritokenID": "U1", "uri": "697066733A2F2F6162"}]}]
			  }
			}`,
			viewer: alice,
			check: func(t *testing.T, view TransactionView) {
				require.Len(t, view.Details.NFT.Tokens, 1)
				assert.Equal(t, "ipfs://ab", view.Details.NFT.Tokens[0].URI)
			},
		},
		{
			name: "create sell offer",
			tx: `{
			  "type": "nftokenCreateOffer",
			  "address": "` + alice + `",
			  "specification": {"nftokenID": "TOKEN1", "amount": {"currency": "XRP", "value": "30"}, "flags": {"sellToken": true}},
			  "outcome": {
			    "result": "tesSUCCESS",
			    "fee": "0.000012",
			    "nftokenOfferChanges": [{"address": "` + alice + `", "nftokenOfferChanges": [{"status": "created", "index": "OFFER9", "nftokenID": "TOKEN1",
			      "amount": {"currency": "XRP", "value": "30"}, "flags": {"sellToken": true}}]}],
			    "balanceChanges": ` + feeOnly + `
			  }
			}`,
			viewer: alice,
			check: func(t *testing.T, view TransactionView) {
				nft := view.Details.NFT
				assert.Equal(t, "create offer", nft.Action)
				assert.Equal(t, "30 XRP", nft.Price.Formatted)
				require.Len(t, nft.Offers, 1)
				assert.Equal(t, "OFFER9", nft.Offers[0].Index)
				assert.Equal(t, "created", nft.Offers[0].Status)
				assert.Equal(t, alice, nft.Offers[0].Owner)
				assert.True(t, nft.Offers[0].Sell)
				require.Len(t, nft.Tokens, 1)
				assert.Equal(t, "TOKEN1", nft.Tokens[0].ID)
				assert.Empty(t, view.MainList)
			},
		},
		{
			name: "cancel offer",
			tx: `{
			  "type": "nftokenCancelOffer",
			  "address": "` + alice + `",
			  "specification": {"nftokenOffers": ["OFFER9"]},
			  "outcome": {
			    "result": "tesSUCCESS",
			    "fee": "0.000012",
			    "nftokenOfferChanges": [{"address": "` + alice + `", "nftokenOfferChanges": [{"status": "deleted", "index": "OFFER9", "nftokenID": "TOKEN1",
			      "amount": {"currency": "XRP", "value": "30"}, "flags": {"sellToken": true}}]}],
			    "balanceChanges": ` + feeOnly + `
			  }
			}`,
			viewer: alice,
			check: func(t *testing.T, view TransactionView) {
				nft := view.Details.NFT
				assert.Equal(t, "cancel offer", nft.Action)
				assert.Nil(t, nft.Price)
				require.Len(t, nft.Offers, 1)
				assert.Equal(t, "deleted", nft.Offers[0].Status)
				assert.Equal(t, "TOKEN1", nft.Offers[0].TokenID)
				assert.Empty(t, nft.Tokens)
			},
		},
		{
			name:   "uritoken buy without an added entry names the submitter as buyer",
			tx:     uriTokenBuyJSON,
			viewer: bob,
			check: func(t *testing.T, view TransactionView) {
				nft := view.Details.NFT
				assert.Equal(t, "buy", nft.Action)
				assert.Equal(t, alice, nft.Seller)
				assert.Equal(t, bob, nft.Buyer)
				assert.Equal(t, "12 XRP", nft.Price.Formatted)
				assert.Equal(t, alice, view.Counterparty)
				assert.Equal(t, []string{"-12"}, values(view.MainList))
			},
		},
		{
			name:   "uritoken buy seen by the seller",
			tx:     uriTokenBuyJSON,
			viewer: alice,
			check: func(t *testing.T, view TransactionView) {
				assert.Equal(t, bob, view.Counterparty)
				assert.Equal(t, []string{"12"}, values(view.MainList))
			},
		},
	}

	p := newTestProcessor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := p.ProcessTransactionBlock(mustParse(t, tt.tx), tt.viewer)
			assert.Equal(t, FamilyNFT, view.Family)
			assert.Equal(t, DirectionNFT, view.Direction)
			require.NotNil(t, view.Details.NFT)
			tt.check(t, view)
		})
	}
}

const uriTokenBuyJSON = `{
  "type": "URITokenBuy",
  "address": "` + bob + `",
  "specification": {"uritokenID": "URI1", "amount": {"currency": "XRP", "value": "12"}},
  "outcome": {
    "result": "tesSUCCESS",
    "fee": "0.000012",
    "uritokenChanges": [{"address": "` + alice + `", "uritokenChanges": [{"status": "removed", "uritokenID": "URI1"}]}],
    "balanceChanges": [
      {"address": "` + bob + `", "balanceChanges": [{"currency": "XRP", "value": "-12.000012"}]},
      {"address": "` + alice + `", "balanceChanges": [{"currency": "XRP", "value": "12"}]}
    ]
  }
}`

func TestProcessTransactionBlock_CheckCreate(t *testing.T) {
	tests := []struct {
		name   string
		tx     string
		source string
	}{
		{
			name: "source from check changes",
			tx: `{"type": "checkCreate", "address": "` + alice + `",
			  "specification": {"destination": {"address": "` + bob + `", "tag": 9}, "sendMax": {"currency": "XRP", "value": "100"}, "invoiceID": "INV7"},
			  "outcome": {"result": "tesSUCCESS", "fee": "0.000012",
			    "checkChanges": {"status": "created", "checkID": "CHK1", "source": {"address": "` + alice + `"}, "destination": {"address": "` + bob + `"}}}}`,
			source: alice,
		},
		{
			name: "submitter is the source when changes omit it",
			tx: `{"type": "CheckCreate", "address": "` + alice + `",
			  "specification": {"destination": {"address": "` + bob + `", "tag": 9}, "sendMax": {"currency": "XRP", "value": "100"}, "invoiceID": "INV7"},
			  "outcome": {"result": "tesSUCCESS", "fee": "0.000012",
			    "checkChanges": {"status": "created", "checkID": "CHK1", "destination": {"address": "` + bob + `"}},
			    "balanceChanges": [{"address": "` + alice + `", "balanceChanges": [{"currency": "XRP", "value": "-0.000012"}]}]}}`,
			source: alice,
		},
	}

	p := newTestProcessor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := p.ProcessTransactionBlock(mustParse(t, tt.tx), alice)

			check := view.Details.Check
			require.NotNil(t, check)
			assert.Equal(t, DirectionCheck, view.Direction)
			assert.Equal(t, "create", check.Action)
			assert.Equal(t, "CHK1", check.CheckID)
			assert.Equal(t, tt.source, check.Source)
			assert.Equal(t, bob, check.Destination)
			assert.Equal(t, "100 XRP", check.SendMax.Formatted)
			assert.Equal(t, "INV7", check.InvoiceID)
			require.NotNil(t, check.DestinationTag)
			assert.Equal(t, uint32(9), *check.DestinationTag)
			assert.Empty(t, view.MainList)
		})
	}
}

func TestProcessTransactionBlock_OrderCreate(t *testing.T) {
	sellFilled := `{
	  "type": "OfferCreate",
	  "address": "` + alice + `",
	  "sequence": 41,
	  "specification": {
	    "direction": "sell",
	    "quantity": {"currency": "XRP", "value": "30"},
	    "totalPrice": {"currency": "USD", "issuer": "` + carol + `", "value": "15"}
	  },
	  "outcome": {
	    "result": "tesSUCCESS",
	    "fee": "0.000012",
	    "balanceChanges": [
	      {"address": "` + alice + `", "balanceChanges": [
	        {"currency": "XRP", "value": "-30.000012"},
	        {"currency": "USD", "issuer": "` + carol + `", "value": "15"}
	      ]},
	      {"address": "` + bob + `", "balanceChanges": [
	        {"currency": "XRP", "value": "30"},
	        {"currency": "USD", "issuer": "` + carol + `", "value": "-15"}
	      ]}
	    ],
	    "orderbookChanges": [
	      {"address": "` + bob + `", "orderbookChanges": [{"direction": "buy", "status": "filled", "sequence": 5}]}
	    ]
	  }
	}`

	tests := []struct {
		name      string
		tx        string
		viewer    string
		orderType string
		direction Direction
		mainList  []string
	}{
		{"placed", feeOnlyOrder, alice, "Sell order placed", DirectionOrderbook, []string{}},
		{"placed and fulfilled", sellFilled, alice, "Sell order placed and fulfilled", DirectionExchange, []string{"-30", "15"}},
		{"fulfilled by another account", sellFilled, bob, "Buy order fulfilled by another account", DirectionExchange, []string{"30", "-15"}},
	}

	p := newTestProcessor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := p.ProcessTransactionBlock(mustParse(t, tt.tx), tt.viewer)
			require.NotNil(t, view.Details.Order)
			assert.Equal(t, tt.orderType, view.Details.Order.OrderType)
			assert.Equal(t, tt.direction, view.Direction)
			assert.Equal(t, tt.mainList, values(view.MainList))
		})
	}
}

func TestProcessTransactionBlock_EmptyAddressIsSubmitterView(t *testing.T) {
	fixtures := map[string]string{
		"payment":     paymentJSON(alice, bob),
		"order":       feeOnlyOrder,
		"escrow":      escrowJSON("EscrowCancel", carol, `{"owner": "`+alice+`", "escrowSequence": 21}`, "cancelled", `[{"address": "`+carol+`", "balanceChanges": [{"currency": "XRP", "value": "-0.000012"}]}]`),
		"uritoken":    uriTokenBuyJSON,
		"mistyped amount": `{"type": "payment", "id": "X", "address": "` + alice + `", "specification": {"amount": {"value": "", "currency": "USD"}}}`,
	}

	p := newTestProcessor()
	for name, raw := range fixtures {
		t.Run(name, func(t *testing.T) {
			tx := mustParse(t, raw)
			assert.Equal(t, p.ProcessTransactionBlock(tx, tx.SubmitterAddress()), p.ProcessTransactionBlock(tx, ""))
		})
	}
}
