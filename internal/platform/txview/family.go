package txview

import "strings"

// Family is the closed set of transaction groups that share a detail formatter
type Family int

const (
	FamilyUnclassified Family = iota
	FamilyPayment
	FamilyOrderCreate
	FamilyOrderCancel
	FamilyEscrow
	FamilyNFT
	FamilyTrustline
	FamilyAMM
	FamilyCheck
	FamilyAccountSet
	FamilyAccountDelete
)

var familyNames = map[Family]string{
	FamilyUnclassified:  "unclassified",
	FamilyPayment:       "payment",
	FamilyOrderCreate:   "order",
	FamilyOrderCancel:   "order_cancel",
	FamilyEscrow:        "escrow",
	FamilyNFT:           "nft",
	FamilyTrustline:     "trustline",
	FamilyAMM:           "amm",
	FamilyCheck:         "check",
	FamilyAccountSet:    "accountset",
	FamilyAccountDelete: "accountdelete",
}

// String returns the family name
func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return familyNames[FamilyUnclassified]
}

// MarshalText implements encoding.TextMarshaler
func (f Family) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Classification is the result of classifying a raw type string.
// RawType is kept so unclassified transactions still carry their original type.
type Classification struct {
	Family  Family
	Type    string // lowercase
	RawType string
}

// familyByType holds exact lowercase matches: ledger names and explorer API aliases
var familyByType = map[string]Family{
	"payment": FamilyPayment,

	"offercreate": FamilyOrderCreate,
	"order":       FamilyOrderCreate,

	"offercancel":       FamilyOrderCancel,
	"ordercancellation": FamilyOrderCancel,

	"escrowcreate":       FamilyEscrow,
	"escrowcreation":     FamilyEscrow,
	"escrowfinish":       FamilyEscrow,
	"escrowexecution":    FamilyEscrow,
	"escrowcancel":       FamilyEscrow,
	"escrowcancellation": FamilyEscrow,

	"trustset":  FamilyTrustline,
	"trustline": FamilyTrustline,

	"checkcreate": FamilyCheck,
	"checkcash":   FamilyCheck,
	"checkcancel": FamilyCheck,

	"accountset": FamilyAccountSet,
	"settings":   FamilyAccountSet,

	"accountdelete": FamilyAccountDelete,
}

// familyByPrefix is consulted only when there is no exact match
var familyByPrefix = []struct {
	prefix string
	family Family
}{
	{"nftoken", FamilyNFT},
	{"uritoken", FamilyNFT},
	{"amm", FamilyAMM},
}

// Classify maps a transaction type string to its family: exact lowercase match first,
// then prefix match, then FamilyUnclassified.
func Classify(rawType string) Classification {
	lower := strings.ToLower(strings.TrimSpace(rawType))
	c := Classification{Family: FamilyUnclassified, Type: lower, RawType: rawType}

	if family, ok := familyByType[lower]; ok {
		c.Family = family
		return c
	}

	for _, p := range familyByPrefix {
		if strings.HasPrefix(lower, p.prefix) {
			c.Family = p.family
			return c
		}
	}

	return c
}

// typeLabels maps lowercase types to display labels
var typeLabels = map[string]string{
	"payment":                 "Payment",
	"offercreate":             "Order",
	"order":                   "Order",
	"offercancel":             "Order cancellation",
	"ordercancellation":       "Order cancellation",
	"escrowcreate":            "Escrow creation",
	"escrowcreation":          "Escrow creation",
	"escrowfinish":            "Escrow execution",
	"escrowexecution":         "Escrow execution",
	"escrowcancel":            "Escrow cancellation",
	"escrowcancellation":      "Escrow cancellation",
	"trustset":                "Trust line",
	"trustline":               "Trust line",
	"accountset":              "Account settings",
	"settings":                "Account settings",
	"accountdelete":           "Account deletion",
	"checkcreate":             "Check creation",
	"checkcash":               "Check cash",
	"checkcancel":             "Check cancellation",
	"nftokenmint":             "NFT mint",
	"nftokenburn":             "NFT burn",
	"nftokencreateoffer":      "NFT offer creation",
	"nftokencanceloffer":      "NFT offer cancellation",
	"nftokenacceptoffer":      "NFT offer acceptance",
	"uritokenmint":            "URIToken mint",
	"uritokenburn":            "URIToken burn",
	"uritokenbuy":             "URIToken purchase",
	"uritokencreateselloffer": "URIToken sell offer",
	"uritokencancelselloffer": "URIToken sell offer cancellation",
	"ammcreate":               "AMM creation",
	"ammdeposit":              "AMM deposit",
	"ammwithdraw":             "AMM withdrawal",
	"ammvote":                 "AMM vote",
	"ammbid":                  "AMM bid",
	"ammdelete":               "AMM deletion",
	"setregularkey":           "Set regular key",
	"signerlistset":           "Signer list",
	"ticketcreate":            "Ticket creation",
	"depositpreauth":          "Deposit preauthorization",
	"paymentchannelcreate":    "Payment channel creation",
	"paymentchannelfund":      "Payment channel funding",
	"paymentchannelclaim":     "Payment channel claim",
	"sethook":                 "Set hook",
	"import":                  "Import",
	"invoke":                  "Invoke",
	"claimreward":             "Claim reward",
}

// Label returns the display label for a transaction type, or the raw type when unknown
func Label(rawType string) string {
	if label, ok := typeLabels[strings.ToLower(strings.TrimSpace(rawType))]; ok {
		return label
	}
	return rawType
}
