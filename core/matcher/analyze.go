package matcher

import (
	"regexp"
	"strconv"
	"strings"

	"pack-calc/core/types"
)

// Analysis is the attribute breakdown of a free-text item name
type Analysis struct {
	// Normalized is the cleaned-up input text
	Normalized string

	// ContentsTagged means the text carries a contents-marker phrase and
	// matching must be skipped in favor of the contents estimator
	ContentsTagged bool

	// Category is the detected item category ("" when none scored)
	Category      string
	CategoryScore int

	// Size is the size token used in the candidate key; for beds this is
	// the bed size, otherwise the generic tier
	Size string

	// Tier is the generic size bucket used for wrapping scale
	Tier types.SizeTier

	// SizeExplicit means a size keyword was present (not a default)
	SizeExplicit bool

	// Quantity extracted from the text, >= 1
	Quantity int

	// MaterialHint is the detected construction material ("" when none)
	MaterialHint string

	// Fragile is inferred from keywords
	Fragile bool

	// Confidence of the composite-key interpretation
	Confidence float64
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	quantityRe   = regexp.MustCompile(`\b(\d+)\s*(?:x\b|pcs?\b|pieces?\b|units?\b)?`)
)

// Normalize lowercases, converts hyphens and underscores to spaces, and
// collapses whitespace
func Normalize(text string) string {
	s := strings.ToLower(text)
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// IsContentsTagged reports whether normalized text carries a
// contents-marker phrase
func IsContentsTagged(normalized string) bool {
	for _, phrase := range contentsPhrases {
		if strings.Contains(normalized, phrase) {
			return true
		}
	}
	return false
}

// containsWord reports whether phrase appears in text on word boundaries
func containsWord(text, phrase string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], phrase)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(phrase)
		startOK := start == 0 || text[start-1] == ' '
		endOK := end == len(text) || text[end] == ' '
		if startOK && endOK {
			return true
		}
		idx = start + 1
		if idx >= len(text) {
			return false
		}
	}
}

// atWordBoundary reports whether phrase appears at the start or end of
// some word in text (but not as a whole word)
func atWordBoundary(text, phrase string) bool {
	for _, word := range strings.Fields(text) {
		if word == phrase {
			continue
		}
		if strings.HasPrefix(word, phrase) || strings.HasSuffix(word, phrase) {
			return true
		}
	}
	return false
}

// keywordScore scores one keyword against normalized text:
// 10 for a whole-word match, 5 for a word-boundary substring,
// 1 for any other substring, 0 otherwise.
func keywordScore(text, keyword string) int {
	if containsWord(text, keyword) {
		return 10
	}
	if atWordBoundary(text, keyword) {
		return 5
	}
	if strings.Contains(text, keyword) {
		return 1
	}
	return 0
}

// detectCategory scores every category and returns the winner.
// Ties go to the first-registered category.
func detectCategory(normalized string) (string, int) {
	bestCategory := ""
	bestScore := 0
	for _, entry := range categoryKeywords {
		score := 0
		for _, kw := range entry.Keywords {
			score += keywordScore(normalized, kw)
		}
		if score > bestScore {
			bestScore = score
			bestCategory = entry.Category
		}
	}
	return bestCategory, bestScore
}

// DetectSize scores the generic size tiers. Whole-word matches earn a
// word-boundary bonus. If "large" wins and the text contains the token
// "extra", the size upgrades to xl. Returns the tier and whether any
// keyword matched (explicit vs. default).
func DetectSize(normalized string) (types.SizeTier, bool) {
	bestTier := types.SizeTier("")
	bestScore := 0
	for _, entry := range sizeKeywords {
		score := 0
		for _, kw := range entry.Keywords {
			if containsWord(normalized, kw) {
				score += 2
			} else if strings.Contains(normalized, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			bestTier = entry.Tier
		}
	}
	if bestScore == 0 {
		return "", false
	}
	if bestTier == types.SizeLarge && countToken(normalized, "extra") > 0 {
		bestTier = types.SizeXL
	}
	return bestTier, true
}

// detectBedSize finds the bed size token, defaulting when absent
func detectBedSize(normalized string) (string, bool) {
	for _, entry := range bedSizeKeywords {
		for _, kw := range entry.Keywords {
			if containsWord(normalized, kw) {
				return entry.Size, true
			}
		}
	}
	return defaultBedSize, false
}

func countToken(text, token string) int {
	count := 0
	for _, word := range strings.Fields(text) {
		if word == token {
			count++
		}
	}
	return count
}

// detectQuantity extracts the item count: numeric first, then the fixed
// word table, defaulting to 1
func detectQuantity(normalized string) int {
	if m := quantityRe.FindStringSubmatch(normalized); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 {
			return n
		}
	}
	for _, entry := range quantityWords {
		if containsWord(normalized, entry.Word) {
			return entry.Count
		}
	}
	return 1
}

func detectMaterial(normalized string) string {
	for _, kw := range materialKeywords {
		if containsWord(normalized, kw) {
			return kw
		}
	}
	return ""
}

func detectFragile(normalized, category string) bool {
	switch category {
	case "mirror", "picture", "lamp", "tv":
		return true
	}
	for _, kw := range fragileKeywords {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}

// Analyze breaks a free-text item name into matching attributes.
// Pure over the keyword tables; same input always yields the same result.
func (m *Matcher) Analyze(text string) *Analysis {
	normalized := Normalize(text)

	a := &Analysis{
		Normalized: normalized,
		Quantity:   detectQuantity(normalized),
	}

	if IsContentsTagged(normalized) {
		a.ContentsTagged = true
	}

	a.Category, a.CategoryScore = detectCategory(normalized)
	a.MaterialHint = detectMaterial(normalized)
	a.Fragile = detectFragile(normalized, a.Category)

	if a.Category == "bed" {
		size, explicit := detectBedSize(normalized)
		a.Size = size
		a.Tier = bedSizeTiers[size]
		a.SizeExplicit = explicit
	} else {
		tier, explicit := DetectSize(normalized)
		if !explicit {
			tier = types.SizeMedium
			if def, ok := categorySizeDefaults[a.Category]; ok {
				tier = def
			}
		}
		a.Size = string(tier)
		a.Tier = tier
		a.SizeExplicit = explicit
	}

	a.Confidence = compositeConfidence(a)
	return a
}

// ApplyExplicit overrides detected attributes with explicit request
// values and recomputes the composite confidence. An explicit size
// counts as non-default.
func (a *Analysis) ApplyExplicit(size types.SizeTier, category string) {
	if category != "" {
		a.Category = category
		if a.CategoryScore < 10 {
			a.CategoryScore = 10
		}
	}
	if size != "" {
		a.Size = string(size)
		a.Tier = size
		a.SizeExplicit = true
	}
	a.Confidence = compositeConfidence(a)
}

// compositeConfidence is the confidence of the {category}_{size} key:
// 0.5 base, +0.3 for an explicit (non-default) size, +0.1 for quantity
// above one, +0.1 for a detected material keyword, capped at 1.0.
func compositeConfidence(a *Analysis) float64 {
	conf := 0.5
	if a.SizeExplicit {
		conf += 0.3
	}
	if a.Quantity > 1 {
		conf += 0.1
	}
	if a.MaterialHint != "" {
		conf += 0.1
	}
	if conf > 1.0 {
		conf = 1.0
	}
	return conf
}
