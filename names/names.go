package names

import (
	"regexp"
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
)

// DefaultThreshold is the minimum similarity score a candidate must
// reach before a correction is accepted.
const DefaultThreshold = 0.6

const (
	substringPenalty = 0.9
	phoneticPenalty  = 0.8
)

var wordRe = regexp.MustCompile(`\b\w+\b`)

// phoneticEntry ties one known name variant to its canonical form.
type phoneticEntry struct {
	variant   string
	canonical string
}

// Corrector resolves misspelled character names to canonical forms.
// Both derived indices are built once and read-only afterward.
type Corrector struct {
	threshold   float64
	nameMap     map[string]string
	nameKeys    []string
	allNames    []string
	phoneticMap map[string][]phoneticEntry
}

// NewCorrector builds a Corrector over the character database with the
// default threshold.
func NewCorrector() *Corrector {
	return NewCorrectorWithThreshold(DefaultThreshold)
}

// NewCorrectorWithThreshold builds a Corrector with a custom minimum
// similarity score.
func NewCorrectorWithThreshold(threshold float64) *Corrector {
	c := &Corrector{
		threshold:   threshold,
		nameMap:     buildNameMap(),
		phoneticMap: buildPhoneticMap(),
	}

	seen := map[string]bool{}
	for key, canonical := range c.nameMap {
		c.nameKeys = append(c.nameKeys, key)
		if !seen[key] {
			seen[key] = true
			c.allNames = append(c.allNames, key)
		}
		if !seen[canonical] {
			seen[canonical] = true
			c.allNames = append(c.allNames, canonical)
		}
	}
	// Deterministic iteration for the substring and edit-distance scans.
	sort.Strings(c.nameKeys)
	sort.Strings(c.allNames)
	return c
}

// buildNameMap maps every lowercase variant, alias, and seeded
// misspelling to its lowercase canonical name.
func buildNameMap() map[string]string {
	nameMap := map[string]string{}

	// Sorted key order keeps shared aliases resolving to the same
	// primary on every run.
	keys := make([]string, 0, len(Characters))
	for key := range Characters {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		char := Characters[key]
		primary := strings.ToLower(char.PrimaryName)
		nameMap[primary] = primary

		for _, alias := range char.Aliases {
			aliasLower := strings.ToLower(alias)
			if _, taken := nameMap[aliasLower]; !taken {
				nameMap[aliasLower] = primary
			}

			for _, variant := range commonMisspellings[aliasLower] {
				if _, taken := nameMap[variant]; !taken {
					nameMap[variant] = primary
				}
			}
		}
	}

	for primary, variants := range commonMisspellings {
		canonical, known := nameMap[primary]
		if !known {
			continue
		}
		for _, variant := range variants {
			if _, taken := nameMap[variant]; !taken {
				nameMap[variant] = canonical
			}
		}
	}

	return nameMap
}

// buildPhoneticMap indexes every known name under its soundex,
// metaphone, and nysiis hashes.
func buildPhoneticMap() map[string][]phoneticEntry {
	phoneticMap := map[string][]phoneticEntry{}

	for _, char := range Characters {
		primary := strings.ToLower(char.PrimaryName)
		variants := append([]string{primary}, char.Aliases...)

		for _, variant := range variants {
			v := strings.ToLower(variant)
			entry := phoneticEntry{variant: v, canonical: primary}
			for _, hash := range phoneticHashes(v) {
				phoneticMap[hash] = append(phoneticMap[hash], entry)
			}
		}
	}

	return phoneticMap
}

// phoneticHashes returns the soundex, metaphone, and nysiis codes of a
// lowercase name. Empty hashes are dropped.
func phoneticHashes(name string) []string {
	metaphone, _ := matchr.DoubleMetaphone(name)
	hashes := []string{
		"sdx:" + matchr.Soundex(name),
		"mtp:" + metaphone,
		"nys:" + matchr.NYSIIS(name),
	}
	out := hashes[:0]
	for _, h := range hashes {
		if !strings.HasSuffix(h, ":") {
			out = append(out, h)
		}
	}
	return out
}

// editSimilarity is normalized Levenshtein similarity in [0,1].
func editSimilarity(a, b string) float64 {
	maxLen := max(len(a), len(b))
	if maxLen == 0 {
		return 1.0
	}
	dist := matchr.Levenshtein(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}

// CorrectName resolves a possibly misspelled name to its lowercase
// canonical form with a confidence in [0,1]. Stages short-circuit on
// the first score at or above the threshold; if none succeed the result
// is ("", 0.0).
func (c *Corrector) CorrectName(name string) (string, float64) {
	name = lowerTrim(name)
	if name == "" {
		return "", 0.0
	}

	// Exact variant hit.
	if canonical, ok := c.nameMap[name]; ok {
		return canonical, 1.0
	}

	// Bidirectional substring containment, scored by length ratio.
	for _, known := range c.nameKeys {
		if strings.Contains(known, name) || strings.Contains(name, known) {
			ratio := float64(min(len(name), len(known))) / float64(max(len(name), len(known)))
			if ratio >= c.threshold {
				return c.nameMap[known], ratio * substringPenalty
			}
		}
	}

	// Edit distance across all known keys and canonical values.
	bestMatch := ""
	bestScore := 0.0
	for _, known := range c.allNames {
		score := editSimilarity(name, known)
		if score > bestScore && score >= c.threshold {
			bestMatch = known
			bestScore = score
		}
	}
	if bestMatch != "" {
		return c.canonicalOf(bestMatch), bestScore
	}

	// Phonetic fallback: candidates sharing any hash, best by edit
	// similarity, with a further confidence penalty.
	if variant, canonical, ok := c.bestPhoneticMatch(name); ok {
		score := editSimilarity(name, variant)
		if score >= c.threshold {
			return canonical, score * phoneticPenalty
		}
	}

	return "", 0.0
}

// bestPhoneticMatch collects every known name sharing a phonetic hash
// with the input and picks the closest by edit similarity.
func (c *Corrector) bestPhoneticMatch(name string) (variant, canonical string, ok bool) {
	seen := map[string]bool{}
	var candidates []phoneticEntry
	for _, hash := range phoneticHashes(name) {
		for _, entry := range c.phoneticMap[hash] {
			if !seen[entry.variant] {
				seen[entry.variant] = true
				candidates = append(candidates, entry)
			}
		}
	}
	if len(candidates) == 0 {
		return "", "", false
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].variant < candidates[j].variant
	})

	best := candidates[0]
	bestScore := editSimilarity(name, best.variant)
	for _, cand := range candidates[1:] {
		if score := editSimilarity(name, cand.variant); score > bestScore {
			best = cand
			bestScore = score
		}
	}
	return best.variant, best.canonical, true
}

func (c *Corrector) canonicalOf(known string) string {
	if canonical, ok := c.nameMap[known]; ok {
		return canonical
	}
	return known
}

// CorrectText corrects every recognizable character name in a piece of
// text and returns the corrected text plus an audit map of the
// substitutions made. Original capitalization is preserved: an all-caps
// token stays all-caps, anything else becomes the capitalized proper
// form.
func (c *Corrector) CorrectText(text string) (string, map[string]string) {
	if text == "" {
		return text, map[string]string{}
	}

	corrections := map[string]string{}

	for _, word := range wordRe.FindAllString(text, -1) {
		if len(word) < 3 {
			continue
		}
		if _, done := corrections[word]; done {
			continue
		}

		canonical, score := c.CorrectName(word)
		if canonical == "" || score < c.threshold || strings.ToLower(word) == canonical {
			continue
		}

		corrections[word] = castName(word, canonical)
	}

	for original, corrected := range corrections {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(original) + `\b`)
		text = re.ReplaceAllString(text, corrected)
	}

	return text, corrections
}

// castName shapes a lowercase canonical name after the original
// token's capitalization.
func castName(original, canonical string) string {
	if isAllUpper(original) {
		return strings.ToUpper(canonical)
	}
	return strings.ToUpper(canonical[:1]) + canonical[1:]
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter && len(s) > 1
}

func lowerTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
