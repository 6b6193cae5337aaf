package kb

import (
	"pack-calc/core/types"
)

// Mapping is one knowledge-base entry: a canonical item key mapped to the
// consumables and labor required per unit. Read-only at calculation time.
type Mapping struct {
	// Category is the item category prefix of the canonical key
	Category string `json:"category" yaml:"category"`

	// Size is the size token of the canonical key (small/medium/large/xl,
	// or twin/full/queen/king for beds)
	Size string `json:"size" yaml:"size"`

	// Tier is the generic size bucket used for wrapping scale
	Tier types.SizeTier `json:"tier" yaml:"tier"`

	// Materials are consumable quantities per unit (code -> quantity)
	Materials types.MaterialMap `json:"materials" yaml:"materials"`

	// WeightLb is the approximate item weight in pounds
	WeightLb float64 `json:"weight_lb" yaml:"weight_lb"`

	// Fragile marks items that need wrapping consumables
	Fragile bool `json:"fragile" yaml:"fragile"`

	// RequiresDisassembly marks items taken apart before moving
	RequiresDisassembly bool `json:"requires_disassembly" yaml:"requires_disassembly"`

	// PackingHours is base packing labor per unit (never floor-scaled)
	PackingHours float64 `json:"packing_hours" yaml:"packing_hours"`

	// MovingHours is base moving labor per unit (floor-scaled per direction)
	MovingHours float64 `json:"moving_hours" yaml:"moving_hours"`
}

// KnowledgeBase is the immutable canonical-key registry.
// Built once at process start; never mutated afterwards.
type KnowledgeBase struct {
	entries    map[string]*Mapping
	order      []string
	byCategory map[string][]string
}

// New creates an empty knowledge base
func New() *KnowledgeBase {
	return &KnowledgeBase{
		entries:    make(map[string]*Mapping),
		byCategory: make(map[string][]string),
	}
}

// Register adds an entry under its canonical key.
// Later registrations of the same key replace earlier ones.
func (k *KnowledgeBase) Register(key string, m Mapping) {
	if _, exists := k.entries[key]; !exists {
		k.order = append(k.order, key)
		k.byCategory[m.Category] = append(k.byCategory[m.Category], key)
	}
	k.entries[key] = &m
}

// Get returns the mapping for a canonical key
func (k *KnowledgeBase) Get(key string) (*Mapping, bool) {
	m, ok := k.entries[key]
	return m, ok
}

// Has reports whether a canonical key exists
func (k *KnowledgeBase) Has(key string) bool {
	_, ok := k.entries[key]
	return ok
}

// Keys returns all canonical keys in registration order
func (k *KnowledgeBase) Keys() []string {
	out := make([]string, len(k.order))
	copy(out, k.order)
	return out
}

// KeysByCategory returns the canonical keys sharing a category prefix,
// in registration order
func (k *KnowledgeBase) KeysByCategory(category string) []string {
	keys := k.byCategory[category]
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// Len returns the number of entries
func (k *KnowledgeBase) Len() int {
	return len(k.entries)
}

// Overrides is an operator-curated name -> mapping snapshot.
// It is consulted before the static table on every lookup.
type Overrides map[string]Mapping

// Keys returns the override keys in sorted order
func (o Overrides) Keys() []string {
	return sortedOverrideKeys(o)
}

// View combines the static knowledge base with an override snapshot.
// A View is cheap to build and is allocated fresh per calculation, so
// concurrent calculations never share mutable state.
type View struct {
	static    *KnowledgeBase
	overrides Overrides
}

// NewView creates a view over the static table and an override snapshot
func NewView(static *KnowledgeBase, overrides Overrides) *View {
	return &View{static: static, overrides: overrides}
}

// Lookup resolves a key, overrides first
func (v *View) Lookup(key string) (*Mapping, bool) {
	if m, ok := v.overrides[key]; ok {
		return &m, true
	}
	return v.static.Get(key)
}

// Has reports whether a key resolves in either table
func (v *View) Has(key string) bool {
	_, ok := v.Lookup(key)
	return ok
}

// Keys returns override keys first, then static keys, without duplicates.
// Override-first ordering keeps operator entries preferred when similarity
// scores tie.
func (v *View) Keys() []string {
	seen := make(map[string]bool, len(v.overrides)+v.static.Len())
	out := make([]string, 0, len(v.overrides)+v.static.Len())
	for _, key := range sortedOverrideKeys(v.overrides) {
		seen[key] = true
		out = append(out, key)
	}
	for _, key := range v.static.Keys() {
		if !seen[key] {
			out = append(out, key)
		}
	}
	return out
}

// KeysByCategory returns keys for a category, overrides included
func (v *View) KeysByCategory(category string) []string {
	var out []string
	for _, key := range sortedOverrideKeys(v.overrides) {
		if v.overrides[key].Category == category {
			out = append(out, key)
		}
	}
	for _, key := range v.static.KeysByCategory(category) {
		if _, overridden := v.overrides[key]; !overridden {
			out = append(out, key)
		}
	}
	return out
}
