// Package confidence tracks per-item estimation confidence with strategy
// attribution. No hiding uncertainty: every fallback is recorded and the
// overall score decides whether a calculation needs human review.
package confidence

import (
	"fmt"
	"strings"

	"pack-calc/core/types"
)

// Strategy identifies how a quantity was produced
type Strategy string

const (
	// StrategySeedData means a direct knowledge-base hit
	StrategySeedData Strategy = "seed_data"

	// StrategyFuzzyMatch means the similarity fallback resolved the item
	StrategyFuzzyMatch Strategy = "fuzzy_match"

	// StrategyContentsProfile means the contents estimator produced it
	StrategyContentsProfile Strategy = "contents_profile"

	// StrategyDefaultFallback means the hard-coded default material set
	StrategyDefaultFallback Strategy = "default_fallback"

	// StrategyAI is reserved for a future trained model
	StrategyAI Strategy = "ai"
)

// Record is one item's confidence entry
type Record struct {
	Item       string
	Strategy   Strategy
	Confidence float64
}

// Tracker accumulates confidence records for one calculation.
// Allocated fresh per calculation; never shared.
type Tracker struct {
	records []Record
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{}
}

// Record adds one item's score
func (t *Tracker) Record(item string, strategy Strategy, conf float64) {
	t.records = append(t.records, Record{Item: item, Strategy: strategy, Confidence: conf})
}

// Records returns all entries in recording order
func (t *Tracker) Records() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

// Overall returns the mean item confidence (1.0 when nothing was recorded)
func (t *Tracker) Overall() float64 {
	if len(t.records) == 0 {
		return 1.0
	}
	var sum float64
	for _, r := range t.records {
		sum += r.Confidence
	}
	return sum / float64(len(t.records))
}

// NeedsReview reports whether the overall confidence falls below threshold
func (t *Tracker) NeedsReview(threshold float64) bool {
	return t.Overall() < threshold
}

// DominantStrategy returns the most frequent strategy, ties broken by
// first occurrence. seed_data when nothing was recorded.
func (t *Tracker) DominantStrategy() Strategy {
	if len(t.records) == 0 {
		return StrategySeedData
	}
	counts := make(map[Strategy]int)
	var order []Strategy
	for _, r := range t.records {
		if counts[r.Strategy] == 0 {
			order = append(order, r.Strategy)
		}
		counts[r.Strategy]++
	}
	best := order[0]
	for _, s := range order[1:] {
		if counts[s] > counts[best] {
			best = s
		}
	}
	return best
}

// Axes returns the per-axis strategy attribution. Materials and labor
// follow the dominant item strategy; protection always comes from seed
// data because it is pure table arithmetic.
func (t *Tracker) Axes() map[types.Axis]string {
	dominant := string(t.DominantStrategy())
	return map[types.Axis]string{
		types.AxisMaterials:  dominant,
		types.AxisLabor:      dominant,
		types.AxisProtection: string(StrategySeedData),
	}
}

// Level returns a human-readable confidence band
func (t *Tracker) Level() string {
	return LevelFor(t.Overall())
}

// LevelFor maps a score to its band
func LevelFor(score float64) string {
	switch {
	case score >= 0.9:
		return "high"
	case score >= 0.7:
		return "medium"
	case score >= 0.5:
		return "low"
	case score >= 0.3:
		return "very_low"
	default:
		return "unreliable"
	}
}

// Explain returns a human-readable confidence summary
func (t *Tracker) Explain() string {
	if len(t.records) == 0 {
		return "Full confidence - no items scored"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Confidence: %.0f%% (%s)\n", t.Overall()*100, t.Level()))
	for i, r := range t.records {
		sb.WriteString(fmt.Sprintf("  %d. %s: %.0f%% via %s\n", i+1, r.Item, r.Confidence*100, r.Strategy))
	}
	return sb.String()
}
