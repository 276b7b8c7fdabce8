package gitadoc

import (
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"
)

var (
	tokenRe          = regexp.MustCompile(`\S+`)
	corpusWordRe     = regexp.MustCompile(`[\w'-]+`)
	squeezeSpaceRe   = regexp.MustCompile(`\s+`)
	spaceBeforeStop  = regexp.MustCompile(`\s+([.,!?;:])`)
	spaceAfterParen  = regexp.MustCompile(`\(\s+`)
	spaceBeforeParen = regexp.MustCompile(`\s+\)`)
)

// concatKeysByLength orders the seeded concatenation table longest key
// first, so substring matching prefers the most specific repair.
var concatKeysByLength = func() []string {
	keys := make([]string, 0, len(commonConcatenations))
	for k := range commonConcatenations {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// Corrector repairs OCR and extraction artifacts in corpus text. The
// correction map is mutable only during the build phase; at query time
// it is read-only and the Corrector is safe for concurrent readers.
type Corrector struct {
	correctionMap map[string]string
	multiWordKeys []string
	logger        *zap.Logger
}

// NewCorrector creates a Corrector with an empty correction map.
func NewCorrector(logger *zap.Logger) *Corrector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Corrector{
		correctionMap: map[string]string{},
		logger:        logger,
	}
}

// CorrectionMap returns the current bad-token to corrected-token table.
func (c *Corrector) CorrectionMap() map[string]string {
	return c.correctionMap
}

// SetCorrectionMap replaces the correction table. Identity entries are
// dropped so a no-op correction is never stored.
func (c *Corrector) SetCorrectionMap(m map[string]string) {
	cleaned := make(map[string]string, len(m))
	for bad, good := range m {
		if bad == good {
			continue
		}
		cleaned[bad] = good
	}
	c.correctionMap = cleaned
	c.multiWordKeys = c.multiWordKeys[:0]
	for bad := range cleaned {
		if strings.Contains(bad, " ") {
			c.multiWordKeys = append(c.multiWordKeys, bad)
		}
	}
	sort.Slice(c.multiWordKeys, func(i, j int) bool {
		if len(c.multiWordKeys[i]) != len(c.multiWordKeys[j]) {
			return len(c.multiWordKeys[i]) > len(c.multiWordKeys[j])
		}
		return c.multiWordKeys[i] < c.multiWordKeys[j]
	})
}

// BuildCorrectionMap scans the full corpus once, classifies every
// distinct token, and fills the correction table with the non-identity
// repairs, most frequent tokens first. The seeded known errors are
// always included.
func (c *Corrector) BuildCorrectionMap(pages []PageText) map[string]string {
	freq := map[string]int{}
	for _, page := range pages {
		for _, word := range corpusWordRe.FindAllString(strings.ToLower(page.Text), -1) {
			freq[word]++
		}
	}

	words := make([]string, 0, len(freq))
	for w := range freq {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if freq[words[i]] != freq[words[j]] {
			return freq[words[i]] > freq[words[j]]
		}
		return words[i] < words[j]
	})

	built := map[string]string{}
	for _, word := range words {
		if !c.IsLikelyError(word) {
			continue
		}
		correction := c.SuggestCorrection(word)
		if correction != word {
			built[word] = correction
		}
	}

	for bad, good := range commonConcatenations {
		built[bad] = good
	}

	c.SetCorrectionMap(built)
	c.logger.Info("built correction map",
		zap.Int("distinct_words", len(freq)),
		zap.Int("corrections", len(c.correctionMap)))
	return c.correctionMap
}

// CorrectText repairs a block of text line by line. If the repaired
// output is dramatically shorter than a non-trivial input the repair is
// judged destructive and the original is returned.
func (c *Corrector) CorrectText(text string) string {
	if text == "" {
		return text
	}

	if repl, ok := c.correctionMap[strings.TrimSpace(text)]; ok {
		return repl
	}

	var result string
	if strings.Contains(text, "\n") {
		lines := strings.Split(text, "\n")
		for i, line := range lines {
			if strings.TrimSpace(line) == "" {
				continue
			}
			lines[i] = c.processLine(line)
		}
		result = strings.Join(lines, "\n")
	} else {
		result = c.processLine(text)
	}

	if len(text) > 10 && len(result) < len(text)*8/10 {
		return text
	}
	return result
}

// processLine runs the per-line repair pipeline: token substitution,
// multi-word substitution, then whitespace and punctuation cleanup.
// Each step is a pure rewrite of its input.
func (c *Corrector) processLine(line string) string {
	for _, step := range []Transform{
		c.substituteTokens,
		c.substituteMultiWord,
		normalizeSpacing,
	} {
		line = step(line)
	}
	return line
}

// substituteTokens replaces each token via the correction map, falling
// back to the heuristic generator for tokens the classifier flags.
func (c *Corrector) substituteTokens(line string) string {
	return tokenRe.ReplaceAllStringFunc(line, func(word string) string {
		if repl, ok := c.correctionMap[word]; ok {
			return repl
		}
		if c.IsLikelyError(word) {
			return c.SuggestCorrection(word)
		}
		return word
	})
}

// substituteMultiWord applies map entries whose keys span multiple
// tokens, longest key first.
func (c *Corrector) substituteMultiWord(line string) string {
	for _, bad := range c.multiWordKeys {
		if strings.Contains(line, bad) {
			line = strings.ReplaceAll(line, bad, c.correctionMap[bad])
		}
	}
	return line
}

// normalizeSpacing squeezes whitespace and reattaches punctuation that
// substitution may have floated.
func normalizeSpacing(line string) string {
	line = squeezeSpaceRe.ReplaceAllString(line, " ")
	line = spaceBeforeStop.ReplaceAllString(line, "$1")
	line = spaceAfterParen.ReplaceAllString(line, "(")
	line = spaceBeforeParen.ReplaceAllString(line, ")")
	return strings.TrimSpace(line)
}
