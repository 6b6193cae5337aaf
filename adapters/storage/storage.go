// Package storage provides the persistence backends: a sqlite store for
// normal operation and an in-memory store for tests and dry runs.
package storage

import (
	"context"

	"pack-calc/core/kb"
	"pack-calc/core/types"
	"pack-calc/internal/config"
	"pack-calc/internal/errors"
)

// Store is the full persistence surface: the engine repository, the
// correction store, the operator override table, and training snapshot
// bookkeeping.
type Store interface {
	CreateCalculation(ctx context.Context, calc *types.Calculation) error
	GetCalculation(ctx context.Context, id string) (*types.Calculation, error)
	UpdateCalculation(ctx context.Context, calc *types.Calculation) error
	DeleteCalculation(ctx context.Context, id string) error
	ListCalculations(ctx context.Context) ([]*types.Calculation, error)

	SaveCorrection(ctx context.Context, rec *types.CorrectionRecord) error
	CountApprovedCorrections(ctx context.Context) (int, error)

	// MarkTrainingSnapshot records that training consumed the approved
	// corrections accumulated so far; the count resets from here
	MarkTrainingSnapshot(ctx context.Context) error

	// Snapshot returns the operator override table
	Snapshot(ctx context.Context) (kb.Overrides, error)
	SetOverride(ctx context.Context, key string, mapping kb.Mapping) error
	DeleteOverride(ctx context.Context, key string) error

	Close() error
}

// Open creates the configured backend
func Open(cfg config.StorageConfig) (Store, error) {
	switch cfg.Backend {
	case "", "sqlite":
		return OpenSQLite(cfg.DatabasePath)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, errors.Newf(errors.TypeConfig, "unknown storage backend: %s", cfg.Backend)
	}
}
