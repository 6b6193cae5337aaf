// Package engine drives the full request -> result pipeline: item
// resolution, per-room and per-project aggregation, floor and crew
// scaling, protection, debris, and persistence.
package engine

import (
	"context"

	"pack-calc/core/kb"
	"pack-calc/core/types"
)

// Repository is the persistence collaborator. Writes carry the full
// aggregate including rooms and items; UpdateCalculation deletes and
// recreates the children inside a single transaction so no
// partially-visible intermediate state can be read. Failures propagate
// verbatim to the caller; the engine never retries.
type Repository interface {
	CreateCalculation(ctx context.Context, calc *types.Calculation) error
	GetCalculation(ctx context.Context, id string) (*types.Calculation, error)
	UpdateCalculation(ctx context.Context, calc *types.Calculation) error
	DeleteCalculation(ctx context.Context, id string) error

	// ListCalculations returns stored aggregates without their rooms,
	// newest first
	ListCalculations(ctx context.Context) ([]*types.Calculation, error)
}

// OverrideSource supplies the operator override snapshot consulted
// before the static knowledge base
type OverrideSource interface {
	Snapshot(ctx context.Context) (kb.Overrides, error)
}
