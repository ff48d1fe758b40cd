package txview

// SuccessCode is the only result code of a successful transaction
const SuccessCode = "tesSUCCESS"

// ResultCodes maps engine result codes to short descriptions
var ResultCodes = map[string]string{
	"tesSUCCESS": "Success",

	"tecCLAIM":                         "Fee claimed, transaction had no other effect",
	"tecDIR_FULL":                      "Owner directory is full",
	"tecDST_TAG_NEEDED":                "Destination tag required",
	"tecEXPIRED":                       "Expired",
	"tecFAILED_PROCESSING":             "Failed to process",
	"tecFROZEN":                        "Asset is frozen",
	"tecHAS_OBLIGATIONS":               "Account has obligations and cannot be deleted",
	"tecINSUFFICIENT_RESERVE":          "Insufficient reserve",
	"tecINSUFF_FEE":                    "Insufficient balance to pay the fee",
	"tecINSUFFICIENT_FUNDS":            "Insufficient funds",
	"tecINSUFFICIENT_PAYMENT":          "Insufficient payment",
	"tecKILLED":                        "Order killed: could not be filled entirely",
	"tecNO_AUTH":                       "Not authorized to hold this asset",
	"tecNO_DST":                        "Destination account does not exist",
	"tecNO_DST_INSUF_XRP":              "Destination does not exist, amount too small to create it",
	"tecNO_ENTRY":                      "Ledger object not found",
	"tecNO_ISSUER":                     "Issuer account does not exist",
	"tecNO_LINE":                       "No trust line",
	"tecNO_LINE_INSUF_RESERVE":         "No trust line and insufficient reserve to create it",
	"tecNO_PERMISSION":                 "No permission",
	"tecNO_TARGET":                     "Target not found",
	"tecOVERSIZE":                      "Transaction metadata too large",
	"tecPATH_DRY":                      "Path could not send partial amount",
	"tecPATH_PARTIAL":                  "Path could not send full amount",
	"tecUNFUNDED":                      "Unfunded",
	"tecUNFUNDED_OFFER":                "Order is unfunded",
	"tecUNFUNDED_PAYMENT":              "Insufficient balance to send",
	"tecOBJECT_NOT_FOUND":              "Object not found",
	"tecAMM_BALANCE":                   "AMM has insufficient balance",
	"tecAMM_FAILED":                    "AMM operation failed",
	"tecAMM_INVALID_TOKENS":            "Invalid LP token amount",
	"tecDUPLICATE":                     "Duplicate object",
	"tecCANT_ACCEPT_OWN_NFTOKEN_OFFER": "Cannot accept your own NFT offer",
	"tecMAX_SEQUENCE_REACHED":          "Maximum sequence reached",
	"tecNFTOKEN_BUY_SELL_MISMATCH":     "NFT buy and sell offers do not match",
	"tecNFTOKEN_OFFER_TYPE_MISMATCH":   "NFT offer type mismatch",

	"tefALREADY":          "Already applied",
	"tefBAD_AUTH":         "Bad authorization",
	"tefMAX_LEDGER":       "Last ledger sequence passed",
	"tefPAST_SEQ":         "Sequence already used",
	"tefNO_AUTH_REQUIRED": "Authorization not required",

	"telINSUF_FEE_P": "Fee too low for current load",

	"temBAD_AMOUNT":     "Bad amount",
	"temBAD_CURRENCY":   "Bad currency",
	"temBAD_EXPIRATION": "Bad expiration",
	"temBAD_FEE":        "Bad fee",
	"temBAD_OFFER":      "Bad order",
	"temBAD_PATH":       "Bad path",
	"temDST_IS_SRC":     "Destination is the source",
	"temDST_NEEDED":     "Destination required",
	"temMALFORMED":      "Malformed transaction",
	"temREDUNDANT":      "Redundant transaction",

	"terNO_ACCOUNT": "Source account does not exist",
	"terPRE_SEQ":    "Sequence is in the future",
	"terQUEUED":     "Queued",
}

// StatusText returns the description of a result code, or the code itself when unknown
func StatusText(code string) string {
	if text, ok := ResultCodes[code]; ok {
		return text
	}
	return code
}
