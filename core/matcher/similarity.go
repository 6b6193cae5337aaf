package matcher

import (
	"strings"

	"github.com/agext/levenshtein"

	"pack-calc/core/kb"
)

// Word-bonus tuning for the similarity search. Empirically tuned
// reference values, overridable for experiments but not re-derived.
var (
	// WordBonus is added per input word whose best per-candidate-word
	// similarity exceeds WordSimilarityFloor
	WordBonus = 0.15

	// WordSimilarityFloor gates the per-word bonus
	WordSimilarityFloor = 0.8

	// minBonusWordLength excludes short words from the bonus
	minBonusWordLength = 4
)

// similaritySearch is the last-resort strategy: edit-distance similarity
// between the normalized input and every knowledge-base key
type similaritySearch struct {
	threshold float64
}

func (similaritySearch) Name() string { return StrategySimilarity }

func (s similaritySearch) TryMatch(a *Analysis, view *kb.View) (*Match, bool) {
	input := a.Normalized
	if input == "" {
		return nil, false
	}
	inputWords := bonusWords(input)

	var bestKey string
	var bestScore float64
	for _, key := range view.Keys() {
		candidate := strings.ReplaceAll(key, "_", " ")
		score := levenshtein.Similarity(input, candidate, nil)

		candidateWords := strings.Fields(candidate)
		for _, word := range inputWords {
			best := 0.0
			for _, cword := range candidateWords {
				if sim := levenshtein.Similarity(word, cword, nil); sim > best {
					best = sim
				}
			}
			if best > WordSimilarityFloor {
				score += WordBonus
			}
		}
		if score > 1.0 {
			score = 1.0
		}

		// Strict comparison keeps the earliest key on ties
		if score > bestScore {
			bestScore = score
			bestKey = key
		}
	}

	if bestKey == "" || bestScore < s.threshold {
		return nil, false
	}
	mapping, ok := view.Lookup(bestKey)
	if !ok {
		return nil, false
	}
	return &Match{
		Key:        bestKey,
		Mapping:    mapping,
		Strategy:   StrategySimilarity,
		Confidence: bestScore,
	}, true
}

func bonusWords(input string) []string {
	var out []string
	for _, word := range strings.Fields(input) {
		if len(word) >= minBonusWordLength {
			out = append(out, word)
		}
	}
	return out
}
