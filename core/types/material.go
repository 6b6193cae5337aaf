package types

import "sort"

// MaterialMap maps a line-item code to a quantity.
// Quantities are always non-negative.
type MaterialMap map[string]float64

// NewMaterialMap creates an empty material map
func NewMaterialMap() MaterialMap {
	return make(MaterialMap)
}

// Add increments the quantity for a code
func (m MaterialMap) Add(code string, qty float64) {
	if qty == 0 {
		return
	}
	m[code] += qty
}

// Merge adds every entry of other into m
func (m MaterialMap) Merge(other MaterialMap) {
	for code, qty := range other {
		m.Add(code, qty)
	}
}

// MergeScaled adds every entry of other multiplied by factor
func (m MaterialMap) MergeScaled(other MaterialMap, factor float64) {
	for code, qty := range other {
		m.Add(code, qty*factor)
	}
}

// Codes returns all codes in sorted order for deterministic iteration
func (m MaterialMap) Codes() []string {
	codes := make([]string, 0, len(m))
	for code := range m {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Get returns the quantity for a code (zero if absent)
func (m MaterialMap) Get(code string) float64 {
	return m[code]
}

// Has reports whether a code is present with nonzero quantity
func (m MaterialMap) Has(code string) bool {
	return m[code] != 0
}

// Clone returns a deep copy
func (m MaterialMap) Clone() MaterialMap {
	out := make(MaterialMap, len(m))
	for code, qty := range m {
		out[code] = qty
	}
	return out
}

// Total returns the sum of all quantities
func (m MaterialMap) Total() float64 {
	var total float64
	for _, qty := range m {
		total += qty
	}
	return total
}
