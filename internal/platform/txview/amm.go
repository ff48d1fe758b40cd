package txview

import "github.com/shopspring/decimal"

// ammFeeUnitsPerPercent converts trading fee units (1/100000) to percent
var ammFeeUnitsPerPercent = decimal.NewFromInt(1000)

// AMMDetails are the fields of AMM create, deposit, withdraw, vote, bid and delete
type AMMDetails struct {
	Flag              string           `json:"flag,omitempty"`
	Asset             string           `json:"asset,omitempty"`
	Asset2            string           `json:"asset2,omitempty"`
	Amount            *FormattedAmount `json:"amount,omitempty"`
	Amount2           *FormattedAmount `json:"amount2,omitempty"`
	EPrice            *FormattedAmount `json:"eprice,omitempty"`
	LPTokens          *FormattedAmount `json:"lp_tokens,omitempty"`
	TradingFee        *uint32          `json:"trading_fee,omitempty"`
	TradingFeePercent string           `json:"trading_fee_percent,omitempty"`
}

func formatAMM(c *txContext) *formatResult {
	spec := c.spec()

	details := &AMMDetails{
		Asset:      assetName(firstAmount(spec.Asset, spec.Amount), c.native),
		Asset2:     assetName(firstAmount(spec.Asset2, spec.Amount2), c.native),
		Amount:     formatPtr(spec.Amount, c.native),
		Amount2:    formatPtr(spec.Amount2, c.native),
		EPrice:     formatPtr(spec.EPrice, c.native),
		LPTokens:   formatPtr(firstAmount(spec.LPTokenOut, spec.LPTokenIn), c.native),
		TradingFee: spec.TradingFee,
	}
	if names := spec.Flags.TrueNames(); len(names) > 0 {
		details.Flag = names[0]
	}
	if spec.TradingFee != nil {
		details.TradingFeePercent = decimal.NewFromInt(int64(*spec.TradingFee)).Div(ammFeeUnitsPerPercent).String() + "%"
	}

	res := &formatResult{direction: DirectionAMM, mainList: c.changes}
	res.details.AMM = details
	return res
}
