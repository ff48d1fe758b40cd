package dapp

import "sort"

// builtin lists integrators known on every network
var builtin = []Dapp{
	{SourceTag: 101102979, Name: "Xaman", URL: "https://xaman.app"},
}

// Registry is an immutable source-tag lookup table
type Registry struct {
	byTag map[uint32]Dapp
}

// NewRegistry builds a registry from the given layers. Later layers override earlier ones.
func NewRegistry(layers ...[]Dapp) *Registry {
	r := &Registry{byTag: make(map[uint32]Dapp)}
	for _, layer := range layers {
		for _, d := range layer {
			r.byTag[d.SourceTag] = d
		}
	}
	return r
}

// Lookup returns the dapp name for a source tag
func (r *Registry) Lookup(sourceTag uint32) (string, bool) {
	if r == nil {
		return "", false
	}
	d, ok := r.byTag[sourceTag]
	return d.Name, ok
}

// Len returns the number of known tags
func (r *Registry) Len() int {
	return len(r.byTag)
}

// All returns every entry ordered by source tag
func (r *Registry) All() []Dapp {
	out := make([]Dapp, 0, len(r.byTag))
	for _, d := range r.byTag {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SourceTag < out[j].SourceTag })
	return out
}
