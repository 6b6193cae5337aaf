package matcher

import (
	"go.uber.org/zap"

	"pack-calc/core/kb"
	"pack-calc/core/types"
	"pack-calc/internal/logging"
)

// Strategy names, also used for confidence attribution
const (
	StrategyContentsGuard = "contents_guard"
	StrategyCompositeKey  = "composite_key"
	StrategyLegacyLookup  = "legacy_lookup"
	StrategySimilarity    = "similarity"
)

// DefaultSimilarityThreshold is the minimum accepted fuzzy-match score.
// Empirically tuned reference value; changing it silently changes
// billing output.
const DefaultSimilarityThreshold = 0.75

// Match is a resolved canonical key with its provenance
type Match struct {
	Key        string
	Mapping    *kb.Mapping
	Strategy   string
	Confidence float64
}

// Strategy is one rule in the prioritized matching chain.
// TryMatch returns the match (nil for "handled, no match") and whether
// the chain should stop.
type Strategy interface {
	Name() string
	TryMatch(a *Analysis, view *kb.View) (*Match, bool)
}

// Options tunes the matcher
type Options struct {
	// SimilarityThreshold overrides DefaultSimilarityThreshold when > 0
	SimilarityThreshold float64
}

// Matcher resolves free-text item names against a knowledge-base view.
// It is pure over the static and override tables: the same normalized
// input always yields the same key and confidence.
type Matcher struct {
	view       *kb.View
	strategies []Strategy
}

// New creates a matcher with the standard strategy chain:
// contents guard, composite key, legacy category lookup, similarity.
func New(view *kb.View, opts Options) *Matcher {
	threshold := opts.SimilarityThreshold
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}
	return &Matcher{
		view: view,
		strategies: []Strategy{
			contentsGuard{},
			compositeKey{},
			legacyLookup{},
			similaritySearch{threshold: threshold},
		},
	}
}

// Strategies returns the chain in evaluation order
func (m *Matcher) Strategies() []Strategy {
	out := make([]Strategy, len(m.strategies))
	copy(out, m.strategies)
	return out
}

// Match resolves a free-text item name. Returns nil when no strategy
// produces a match (including contents-tagged inputs, which are handed
// off to the contents estimator).
func (m *Matcher) Match(text string) *Match {
	return m.MatchAnalysis(m.Analyze(text))
}

// MatchAnalysis runs the strategy chain over a prepared analysis
func (m *Matcher) MatchAnalysis(a *Analysis) *Match {
	for _, s := range m.strategies {
		match, done := s.TryMatch(a, m.view)
		if !done {
			continue
		}
		if match != nil {
			logging.Debug("item matched",
				zap.String("input", a.Normalized),
				zap.String("key", match.Key),
				zap.String("strategy", s.Name()),
				zap.Float64("confidence", match.Confidence))
		} else {
			logging.Debug("matching stopped without result",
				zap.String("input", a.Normalized),
				zap.String("strategy", s.Name()))
		}
		return match
	}
	logging.Debug("no match", zap.String("input", a.Normalized))
	return nil
}

// contentsGuard halts matching for contents-tagged inputs so furniture
// and its contents never resolve to the same material lines
type contentsGuard struct{}

func (contentsGuard) Name() string { return StrategyContentsGuard }

func (contentsGuard) TryMatch(a *Analysis, _ *kb.View) (*Match, bool) {
	if a.ContentsTagged {
		return nil, true
	}
	return nil, false
}

// compositeKey builds {category}_{size} and returns it directly when the
// key exists and the composite confidence clears 0.5
type compositeKey struct{}

func (compositeKey) Name() string { return StrategyCompositeKey }

func (compositeKey) TryMatch(a *Analysis, view *kb.View) (*Match, bool) {
	if a.Category == "" {
		return nil, false
	}
	key := a.Category + "_" + a.Size
	mapping, ok := view.Lookup(key)
	if !ok || a.Confidence < 0.5 {
		return nil, false
	}
	return &Match{
		Key:        key,
		Mapping:    mapping,
		Strategy:   StrategyCompositeKey,
		Confidence: a.Confidence,
	}, true
}

// Confidence assigned by the legacy lookup fallback
const (
	legacySizeMatchConfidence = 0.65
	legacySmallestConfidence  = 0.55
)

// legacyLookup searches all keys sharing the detected category prefix:
// best size match first, else the smallest available variant
type legacyLookup struct{}

func (legacyLookup) Name() string { return StrategyLegacyLookup }

func (legacyLookup) TryMatch(a *Analysis, view *kb.View) (*Match, bool) {
	if a.Category == "" {
		return nil, false
	}
	keys := view.KeysByCategory(a.Category)
	if len(keys) == 0 {
		return nil, false
	}

	if a.SizeExplicit {
		for _, key := range keys {
			mapping, ok := view.Lookup(key)
			if ok && mapping.Size == a.Size {
				return &Match{
					Key:        key,
					Mapping:    mapping,
					Strategy:   StrategyLegacyLookup,
					Confidence: legacySizeMatchConfidence,
				}, true
			}
		}
	}

	// Smallest variant; registration order breaks tier ties
	var bestKey string
	var bestMapping *kb.Mapping
	for _, key := range keys {
		mapping, ok := view.Lookup(key)
		if !ok {
			continue
		}
		if bestMapping == nil || tierRank(mapping.Tier) < tierRank(bestMapping.Tier) {
			bestKey = key
			bestMapping = mapping
		}
	}
	if bestMapping == nil {
		return nil, false
	}
	return &Match{
		Key:        bestKey,
		Mapping:    bestMapping,
		Strategy:   StrategyLegacyLookup,
		Confidence: legacySmallestConfidence,
	}, true
}

func tierRank(t types.SizeTier) int {
	switch t {
	case types.SizeSmall:
		return 0
	case types.SizeMedium:
		return 1
	case types.SizeLarge:
		return 2
	case types.SizeXL:
		return 3
	default:
		return 1
	}
}
