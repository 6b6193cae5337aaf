// Package determinism provides primitives for reproducible calculation
// output. Recomputing the same request must yield byte-identical
// aggregates and row identities.
package determinism

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/shopspring/decimal"

	"pack-calc/core/types"
)

// Round rounds half-away-from-zero to the given number of decimal places
// using decimal arithmetic, so the same value always rounds the same way.
func Round(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

// RoundQty rounds a material quantity to two decimal places
func RoundQty(v float64) float64 {
	return Round(v, 2)
}

// RoundHours rounds a labor-hour figure to two decimal places
func RoundHours(v float64) float64 {
	return Round(v, 2)
}

// RoundMaterials rounds every quantity in a map in place and returns it
func RoundMaterials(m types.MaterialMap) types.MaterialMap {
	for code, qty := range m {
		m[code] = RoundQty(qty)
	}
	return m
}

// StableID is a deterministic identifier derived from content
type StableID string

// IDGenerator generates stable row identities so that recomputing a
// calculation produces the same room and item IDs.
type IDGenerator struct {
	namespace string
}

// NewIDGenerator creates an ID generator scoped to a namespace
// (typically the calculation ID)
func NewIDGenerator(namespace string) *IDGenerator {
	return &IDGenerator{namespace: namespace}
}

// Generate creates a stable ID from the given parts
func (g *IDGenerator) Generate(parts ...string) StableID {
	h := sha256.New()
	h.Write([]byte(g.namespace))
	h.Write([]byte{0})
	for _, part := range parts {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return StableID(hex.EncodeToString(h.Sum(nil))[:16])
}
