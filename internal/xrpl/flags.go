package xrpl

import (
	"encoding/json"
	"sort"
)

// Flags is a named boolean flag map, e.g. {"sell": true, "passive": false}.
// Numeric ledger flag words decode to an empty map.
type Flags map[string]bool

// UnmarshalJSON implements json.Unmarshaler
func (f *Flags) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*f = nil
		return nil
	}

	out := make(Flags, len(raw))
	for name, value := range raw {
		var b bool
		if err := json.Unmarshal(value, &b); err == nil {
			out[name] = b
		}
	}
	*f = out
	return nil
}

// Has reports whether the named flag is set
func (f Flags) Has(name string) bool {
	return f[name]
}

// TrueNames returns the names of all set flags in lexical order
func (f Flags) TrueNames() []string {
	var names []string
	for name, set := range f {
		if set {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
