package gitadoc

import (
	"regexp"
	"strings"
)

// Transform is a pure text rewrite step. CleanPage composes them in a
// fixed order so each step stays independently testable.
type Transform func(string) string

var (
	standalonePageNumRe = regexp.MustCompile(`(?m)^\s*-?\s*\d+\s*-?\s*$`)
	runningHeaderRe     = regexp.MustCompile(`(?im)^.*Bhagavad[\x{2010}-\x{2015}-]g(ī|i)t(ā|a) As It Is.*$`)
	copyrightRe         = regexp.MustCompile(`(?im)^.*(copyright|all rights reserved|bhaktivedanta book trust).*$`)
	multiSpaceRe        = regexp.MustCompile(`[ \t]{2,}`)
	multiBlankRe        = regexp.MustCompile(`\n{3,}`)
)

// stripPageNumbers drops lines that are only a page number, with or
// without surrounding dashes.
func stripPageNumbers(text string) string {
	return standalonePageNumRe.ReplaceAllString(text, "")
}

// stripRunningHeaders drops the edition's running title lines. Both the
// diacritic and plain spellings occur depending on how the font decoded.
func stripRunningHeaders(text string) string {
	return runningHeaderRe.ReplaceAllString(text, "")
}

// stripCopyrightNotices drops publisher boilerplate lines.
func stripCopyrightNotices(text string) string {
	return copyrightRe.ReplaceAllString(text, "")
}

// collapseWhitespace squeezes runs of spaces and blank lines and trims
// the result.
func collapseWhitespace(text string) string {
	text = multiSpaceRe.ReplaceAllString(text, " ")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	text = multiBlankRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// pageCleanPipeline is the ordered set of rewrites applied to every page.
var pageCleanPipeline = []Transform{
	stripPageNumbers,
	stripRunningHeaders,
	stripCopyrightNotices,
	collapseWhitespace,
}

// CleanPage applies the page cleaning pipeline to raw extracted text.
func CleanPage(text string) string {
	for _, t := range pageCleanPipeline {
		text = t(text)
	}
	return text
}

// HeaderDetector finds running headers and footers that repeat across
// pages, tolerating page numbers and small extraction differences.
type HeaderDetector struct {
	// MinPagesSeen is how many pages must be recorded before detection
	// yields anything.
	MinPagesSeen int

	firstLines []string
	lastLines  []string
}

// NewHeaderDetector creates a detector requiring at least three recorded
// pages before reporting patterns.
func NewHeaderDetector() *HeaderDetector {
	return &HeaderDetector{MinPagesSeen: 3}
}

// RecordPage records the first and last non-blank line of a page as
// header/footer candidates.
func (hd *HeaderDetector) RecordPage(pageText string) {
	lines := strings.Split(strings.TrimSpace(pageText), "\n")
	if len(lines) == 0 {
		return
	}

	first := strings.TrimSpace(lines[0])
	if first != "" {
		hd.firstLines = append(hd.firstLines, first)
	}

	last := strings.TrimSpace(lines[len(lines)-1])
	if last != "" {
		hd.lastLines = append(hd.lastLines, last)
	}
}

// Headers returns lines repeating at the top of at least 60% of pages.
func (hd *HeaderDetector) Headers() []string {
	return hd.findRepeating(hd.firstLines, 0.6)
}

// Footers returns lines repeating at the bottom of at least 60% of pages.
func (hd *HeaderDetector) Footers() []string {
	return hd.findRepeating(hd.lastLines, 0.6)
}

// findRepeating groups similar lines and returns representatives of
// groups covering at least the threshold fraction of pages.
func (hd *HeaderDetector) findRepeating(lines []string, threshold float64) []string {
	if len(lines) < hd.MinPagesSeen {
		return nil
	}

	type lineGroup struct {
		representative string
		count          int
	}

	var groups []lineGroup
	for _, line := range lines {
		found := false
		for i := range groups {
			if similarLines(line, groups[i].representative) {
				groups[i].count++
				found = true
				break
			}
		}
		if !found {
			groups = append(groups, lineGroup{representative: line, count: 1})
		}
	}

	minCount := int(float64(len(lines)) * threshold)
	var patterns []string
	for _, g := range groups {
		if g.count >= minCount {
			patterns = append(patterns, g.representative)
		}
	}
	return patterns
}

// RemoveFrom strips detected header/footer lines from page text.
func (hd *HeaderDetector) RemoveFrom(pageText string) string {
	headers := hd.Headers()
	footers := hd.Footers()
	if len(headers) == 0 && len(footers) == 0 {
		return pageText
	}

	lines := strings.Split(pageText, "\n")
	kept := lines[:0]
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		// Verse boundary lines normalize like numbered headers; never
		// drop them.
		if _, _, isBoundary := parseBoundary(trimmed); isBoundary {
			kept = append(kept, line)
			continue
		}
		drop := false
		for _, h := range headers {
			if similarLines(trimmed, h) {
				drop = true
				break
			}
		}
		if !drop {
			for _, f := range footers {
				if similarLines(trimmed, f) {
					drop = true
					break
				}
			}
		}
		if !drop {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// StripRepeatedHeaders removes running header and footer lines that
// repeat across the given pages. Pages come back in order with the
// repeating lines dropped; with fewer pages than the detector minimum
// the input is returned unchanged.
func StripRepeatedHeaders(pages []PageText) []PageText {
	hd := NewHeaderDetector()
	for _, page := range pages {
		hd.RecordPage(page.Text)
	}

	out := make([]PageText, len(pages))
	for i, page := range pages {
		out[i] = PageText{Page: page.Page, Text: hd.RemoveFrom(page.Text)}
	}
	return out
}

var (
	comparePageNumRe = regexp.MustCompile(`(?i)(page\s*)?\d+(\s*of\s*\d+)?`)
	compareDateRe    = regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`)
)

// similarLines reports whether two lines are the same header up to page
// numbers, dates, and a normalized edit distance under 0.3.
func similarLines(a, b string) bool {
	aNorm := normalizeForComparison(a)
	bNorm := normalizeForComparison(b)

	if aNorm == bNorm {
		return true
	}

	maxLen := max(len(aNorm), len(bNorm))
	if maxLen == 0 {
		return true
	}

	dist := levenshteinDistance(aNorm, bNorm)
	return float64(dist)/float64(maxLen) < 0.3
}

// normalizeForComparison strips the variable parts of header lines.
func normalizeForComparison(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = comparePageNumRe.ReplaceAllString(s, "")
	s = compareDateRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// levenshteinDistance calculates the edit distance between two strings
// using the two-row optimization. Inputs are capped at 100 bytes.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	if len(a) > 100 {
		a = a[:100]
	}
	if len(b) > 100 {
		b = b[:100]
	}

	aRunes := []rune(a)
	bRunes := []rune(b)

	prev := make([]int, len(bRunes)+1)
	curr := make([]int, len(bRunes)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(aRunes); i++ {
		curr[0] = i
		for j := 1; j <= len(bRunes); j++ {
			cost := 1
			if aRunes[i-1] == bRunes[j-1] {
				cost = 0
			}
			curr[j] = min(min(prev[j]+1, curr[j-1]+1), prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(bRunes)]
}
