package money

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Drops is an integer native-currency amount in drops, as found in raw ledger fields such as Fee
type Drops struct {
	*big.Int
}

// NewDrops creates Drops from an int64
func NewDrops(i int64) *Drops {
	return &Drops{Int: big.NewInt(i)}
}

// UnmarshalJSON implements json.Unmarshaler
// Supports: "12", 12, null
func (d *Drops) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		d.Int = nil
		return nil
	}

	// Raw ledger JSON encodes drops as strings
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		i := new(big.Int)
		if _, ok := i.SetString(s, 10); !ok {
			return fmt.Errorf("invalid drops string: %s", s)
		}
		d.Int = i
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		i := new(big.Int)
		if _, ok := i.SetString(n.String(), 10); !ok {
			return fmt.Errorf("invalid drops number: %s", n.String())
		}
		d.Int = i
		return nil
	}

	return fmt.Errorf("cannot unmarshal %s into Drops", string(data))
}

// MarshalJSON implements json.Marshaler
func (d *Drops) MarshalJSON() ([]byte, error) {
	if d == nil || d.Int == nil {
		return []byte("null"), nil
	}
	return json.Marshal(d.Int.String())
}

// IsNil returns true if no value was decoded
func (d *Drops) IsNil() bool {
	return d == nil || d.Int == nil
}

// Native returns the amount in whole native units (zero when nil)
func (d *Drops) Native() decimal.Decimal {
	if d.IsNil() {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(d.Int, -NativeScale)
}
