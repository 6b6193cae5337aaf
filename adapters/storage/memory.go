package storage

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"pack-calc/core/kb"
	"pack-calc/core/types"
	"pack-calc/internal/errors"
)

// MemoryStore keeps everything in process memory. Used by tests and
// dry runs; semantics mirror the sqlite backend.
type MemoryStore struct {
	mu           sync.RWMutex
	calculations map[string]*types.Calculation
	corrections  []*types.CorrectionRecord
	overrides    kb.Overrides
	lastSnapshot time.Time
}

// NewMemory creates an empty in-memory store
func NewMemory() *MemoryStore {
	return &MemoryStore{
		calculations: make(map[string]*types.Calculation),
		overrides:    make(kb.Overrides),
	}
}

// Close is a no-op
func (s *MemoryStore) Close() error { return nil }

// cloneCalculation deep-copies via JSON so callers never share state
// with the store
func cloneCalculation(calc *types.Calculation) (*types.Calculation, error) {
	data, err := json.Marshal(calc)
	if err != nil {
		return nil, err
	}
	var out types.Calculation
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCalculation stores a deep copy of the aggregate
func (s *MemoryStore) CreateCalculation(_ context.Context, calc *types.Calculation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.calculations[calc.ID]; exists {
		return errors.Newf(errors.TypeStorage, "calculation already exists: %s", calc.ID)
	}
	clone, err := cloneCalculation(calc)
	if err != nil {
		return err
	}
	s.calculations[calc.ID] = clone
	return nil
}

// GetCalculation returns a deep copy of the stored aggregate
func (s *MemoryStore) GetCalculation(_ context.Context, id string) (*types.Calculation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	calc, ok := s.calculations[id]
	if !ok {
		return nil, errors.NotFound("calculation", id)
	}
	return cloneCalculation(calc)
}

// UpdateCalculation replaces the stored aggregate atomically
func (s *MemoryStore) UpdateCalculation(_ context.Context, calc *types.Calculation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.calculations[calc.ID]; !ok {
		return errors.NotFound("calculation", calc.ID)
	}
	clone, err := cloneCalculation(calc)
	if err != nil {
		return err
	}
	s.calculations[calc.ID] = clone
	return nil
}

// DeleteCalculation removes the aggregate
func (s *MemoryStore) DeleteCalculation(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.calculations[id]; !ok {
		return errors.NotFound("calculation", id)
	}
	delete(s.calculations, id)
	return nil
}

// ListCalculations returns aggregates without rooms, newest first
func (s *MemoryStore) ListCalculations(_ context.Context) ([]*types.Calculation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*types.Calculation, 0, len(s.calculations))
	for _, calc := range s.calculations {
		clone, err := cloneCalculation(calc)
		if err != nil {
			return nil, err
		}
		clone.Rooms = nil
		out = append(out, clone)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// SaveCorrection appends a copy of the record
func (s *MemoryStore) SaveCorrection(_ context.Context, rec *types.CorrectionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *rec
	clone.CorrectedMaterials = rec.CorrectedMaterials.Clone()
	clone.CorrectedLabor = rec.CorrectedLabor.Clone()
	s.corrections = append(s.corrections, &clone)
	return nil
}

// CountApprovedCorrections counts approved corrections newer than the
// latest training snapshot
func (s *MemoryStore) CountApprovedCorrections(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, rec := range s.corrections {
		if rec.ApprovedForTraining && rec.CreatedAt.After(s.lastSnapshot) {
			count++
		}
	}
	return count, nil
}

// MarkTrainingSnapshot resets the approved-correction count
func (s *MemoryStore) MarkTrainingSnapshot(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSnapshot = time.Now().UTC()
	return nil
}

// Snapshot returns a copy of the override table
func (s *MemoryStore) Snapshot(_ context.Context) (kb.Overrides, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(kb.Overrides, len(s.overrides))
	for key, mapping := range s.overrides {
		out[key] = mapping
	}
	return out, nil
}

// SetOverride inserts or replaces one override entry
func (s *MemoryStore) SetOverride(_ context.Context, key string, mapping kb.Mapping) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[key] = mapping
	return nil
}

// DeleteOverride removes one override entry
func (s *MemoryStore) DeleteOverride(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.overrides[key]; !ok {
		return errors.NotFound("override", key)
	}
	delete(s.overrides, key)
	return nil
}
