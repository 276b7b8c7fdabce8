package gitadoc

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	caseTransitionRe = regexp.MustCompile(`[a-z][A-Z]`)
	digitLetterRe    = regexp.MustCompile(`[a-zA-Z][0-9]|[0-9][a-zA-Z]`)
	vowelRunRe       = regexp.MustCompile(`[aeiouAEIOU]{4,}`)
	consonantRunRe   = regexp.MustCompile(`[bcdfghjklmnpqrstvwxyzBCDFGHJKLMNPQRSTVWXYZ]{5,}`)
	punctAfterRe     = regexp.MustCompile(`([.,;:!?])([A-Za-z])`)
	caseSplitRe      = regexp.MustCompile(`([a-z])([A-Z])`)
)

// IsLikelyError classifies a token as a probable extraction error.
// Domain vocabulary and short function words are never flagged; tokens
// already known to the correction map always are.
func (c *Corrector) IsLikelyError(word string) bool {
	if len(word) < 2 {
		return false
	}

	lower := strings.ToLower(word)
	if len(word) <= 2 && shortFunctionWords[lower] {
		return false
	}
	if domainTerms[lower] {
		return false
	}
	if _, known := c.correctionMap[word]; known {
		return true
	}

	// Structural patterns that valid tokens do not exhibit.
	switch {
	case caseTransitionRe.MatchString(word):
		return true
	case digitLetterRe.MatchString(word):
		return true
	case hasRepeatedRun(word, 3):
		return true
	case vowelRunRe.MatchString(word):
		return true
	case consonantRunRe.MatchString(word):
		return true
	case strings.ContainsAny(word, " \t"):
		return true
	case hasDisallowedPunct(word):
		return true
	}

	// Headings and known vocabulary are presumed correct.
	if isAllUpper(word) {
		return false
	}
	if isKnownWord(lower) {
		return false
	}

	// Unknown tokens containing confusable sequences are suspect.
	for _, sub := range ocrSubstitutions {
		if strings.Contains(lower, sub.bad) && len(sub.bad) > 1 {
			return true
		}
	}

	// A long unbroken alphabetic token outside the dictionary is most
	// likely a concatenation.
	if len(word) > 15 && isAlpha(word) && !hasUpperAfterFirst(word) {
		return true
	}

	return false
}

// SuggestCorrection generates a correction for a token flagged by
// IsLikelyError. Strategies are tried in priority order; a token no
// strategy applies to comes back unchanged.
func (c *Corrector) SuggestCorrection(word string) string {
	if len(word) < 2 {
		return word
	}

	word = strings.TrimSpace(word)

	if repl, ok := c.correctionMap[word]; ok {
		return repl
	}
	if repl, ok := commonConcatenations[word]; ok {
		return repl
	}

	// Substring hits against the seeded table, longest keys first so a
	// contained shorter key never preempts a longer one.
	for _, key := range concatKeysByLength {
		if len(key) > 5 && strings.Contains(word, key) {
			return strings.Replace(word, key, commonConcatenations[key], 1)
		}
	}

	if fixed, ok := splitCaseTransition(word); ok {
		return fixed
	}
	if fixed, ok := rejoinStrayI(word); ok {
		return fixed
	}

	spaced := punctAfterRe.ReplaceAllString(word, "$1 $2")

	if strings.Contains(spaced, " ") {
		if fixed, ok := recombineParts(spaced); ok {
			return fixed
		}
	}

	if fixed, ok := splitLongToken(word); ok {
		return fixed
	}

	if fixed, ok := correctByOCRVariant(word); ok {
		return fixed
	}

	if spaced != word {
		return spaced
	}
	return word
}

// splitCaseTransition inserts spaces at lower-to-upper boundaries. The
// split is only trusted when the first segment is a function word or a
// dictionary word.
func splitCaseTransition(word string) (string, bool) {
	if !caseTransitionRe.MatchString(word) {
		return word, false
	}

	split := caseSplitRe.ReplaceAllString(word, "$1 $2")
	first, _, ok := strings.Cut(split, " ")
	if !ok {
		return word, false
	}

	firstLower := strings.ToLower(first)
	if splitFirstWords[firstLower] || isKnownWord(firstLower) {
		return split, true
	}
	return word, false
}

// rejoinStrayI removes a stray space next to "i", a frequent extraction
// break ("acti ons" -> "actions"), when the joined form is a known word.
func rejoinStrayI(word string) (string, bool) {
	if !strings.Contains(word, "i ") && !strings.Contains(word, " i") {
		return word, false
	}

	joined := strings.ReplaceAll(word, "i ", "i")
	joined = strings.ReplaceAll(joined, " i", "i")
	if isKnownWord(strings.ToLower(joined)) {
		return joined, true
	}
	return word, false
}

// recombineParts handles multi-part tokens: joining every part into one
// known word wins, otherwise the first boundary where both sides are
// plausible words is kept.
func recombineParts(word string) (string, bool) {
	parts := strings.Fields(word)
	if len(parts) < 2 {
		return word, false
	}

	combined := strings.Join(parts, "")
	if isKnownWord(strings.ToLower(combined)) {
		return combined, true
	}

	for i := 1; i < len(parts); i++ {
		left := strings.Join(parts[:i], " ")
		right := strings.Join(parts[i:], " ")
		leftValid := isKnownWord(strings.ToLower(left))
		rightValid := isKnownWord(strings.ToLower(right))

		switch {
		case leftValid && rightValid:
			return left + " " + right, true
		case leftValid && len(right) > 2:
			return left + " " + right, true
		case rightValid && len(left) > 2:
			return left + " " + right, true
		}
	}
	return word, false
}

// splitLongToken searches split points in long unbroken alphabetic
// tokens where both halves read as words, or where a prefix/suffix
// boundary is recognizable.
func splitLongToken(word string) (string, bool) {
	if len(word) <= 10 || !isAlpha(word) || hasUpperAfterFirst(word) {
		return word, false
	}

	limit := min(len(word)-2, 10)
	for i := 3; i <= limit; i++ {
		left, right := word[:i], word[i:]
		leftLower := strings.ToLower(left)
		rightLower := strings.ToLower(right)

		if isKnownWord(leftLower) && isKnownWord(rightLower) {
			return left + " " + right, true
		}

		for prefix := range commonPrefixes {
			if strings.HasPrefix(rightLower, prefix) && isKnownWord(leftLower) {
				return left + " " + right, true
			}
		}
		for suffix := range commonSuffixes {
			if strings.HasSuffix(leftLower, suffix) && isKnownWord(rightLower) {
				return left + " " + right, true
			}
		}
	}
	return word, false
}

// correctByOCRVariant tries confusable-sequence replacements and accepts
// the first variant that lands in the dictionary.
func correctByOCRVariant(word string) (string, bool) {
	lower := strings.ToLower(word)
	if isKnownWord(lower) {
		return word, false
	}

	for _, sub := range ocrSubstitutions {
		if !strings.Contains(lower, sub.bad) {
			continue
		}
		variant := strings.ReplaceAll(lower, sub.bad, sub.good)
		if isKnownWord(variant) {
			return applyCasing(word, variant), true
		}
	}
	return word, false
}

// applyCasing carries the original token's casing pattern onto a
// lowercase correction.
func applyCasing(original, correction string) string {
	if isAllUpper(original) {
		return strings.ToUpper(correction)
	}
	if isTitleCase(original) {
		return strings.ToUpper(correction[:1]) + correction[1:]
	}
	return correction
}

func hasRepeatedRun(word string, n int) bool {
	run := 1
	var prev rune
	for i, r := range word {
		if i > 0 && r == prev {
			run++
			if run >= n {
				return true
			}
		} else {
			run = 1
		}
		prev = r
	}
	return false
}

func hasDisallowedPunct(word string) bool {
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		if r == '\'' || r == '-' {
			continue
		}
		return true
	}
	return false
}

func isAlpha(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(word) > 0
}

func hasUpperAfterFirst(word string) bool {
	for i, r := range word {
		if i > 0 && unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func isTitleCase(s string) bool {
	runes := []rune(s)
	if len(runes) < 2 {
		return false
	}
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if unicode.IsLetter(r) && unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
