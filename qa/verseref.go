package qa

import (
	"regexp"
	"strconv"
	"strings"
)

// versePatterns recognize explicit verse references in questions, tried
// in order. The last pattern accepts spelled-out word numbers.
var versePatterns = []*regexp.Regexp{
	// "verse 2.46", "verse 2:46", "verse 2, 46"
	regexp.MustCompile(`verse[\s,:-]*(\d+)[\s,:.-]+(?:verse|v\.?|vs\.?)?\s*(\d+)`),
	// "2.46", "2:46", "2, 46"
	regexp.MustCompile(`(?:^|\s)(\d+)[.:,-]\s*(\d+)(?:\s|$)`),
	// "chapter 2 verse 46"
	regexp.MustCompile(`chapter\s+(\d+)\s+verse\s+(\d+)`),
	// "chapter two verse forty seven"
	regexp.MustCompile(`chapter\s+([a-z]+(?:[\s-][a-z]+)?)\s+verse\s+([a-z]+(?:[\s-][a-z]+)?)`),
}

var wordNumbers = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19, "twenty": 20,
	"thirty": 30, "forty": 40, "fifty": 50, "sixty": 60, "seventy": 70,
	"eighty": 80, "ninety": 90,
}

// ParseVerseReference extracts a chapter/verse pair from a question.
// Both numeric ("2.47", "chapter 2 verse 47") and spelled ("chapter two
// verse forty seven") forms are accepted.
func ParseVerseReference(question string) (chapter, verse int, ok bool) {
	lower := strings.ToLower(question)

	for _, pattern := range versePatterns {
		m := pattern.FindStringSubmatch(lower)
		if m == nil {
			continue
		}

		chapter, okc := parseNumberWord(m[1])
		verse, okv := parseNumberWord(m[2])
		if okc && okv && chapter >= 1 && verse >= 1 {
			return chapter, verse, true
		}
	}
	return 0, 0, false
}

// chapterPatterns recognize a chapter mention with no verse number.
var chapterPatterns = []*regexp.Regexp{
	regexp.MustCompile(`chapter\s+(\d+)`),
	regexp.MustCompile(`chapter\s+([a-z]+(?:[\s-][a-z]+)?)`),
}

// ParseChapterReference extracts a chapter-only reference from a
// question, digits or spelled out. Questions carrying a full
// chapter/verse pair should be routed through ParseVerseReference
// first; this parser does not look for a verse number.
func ParseChapterReference(question string) (chapter int, ok bool) {
	lower := strings.ToLower(question)

	for _, pattern := range chapterPatterns {
		m := pattern.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		if n, okn := parseNumberWord(m[1]); okn && n >= 1 {
			return n, true
		}
	}
	return 0, false
}

// parseNumberWord reads either digits or additive word numbers
// ("forty seven" / "forty-seven" -> 47).
func parseNumberWord(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}

	total := 0
	for _, word := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '-'
	}) {
		n, ok := wordNumbers[word]
		if !ok {
			// The capture may greedily take a trailing non-number word.
			if total > 0 {
				break
			}
			return 0, false
		}
		total += n
	}
	if total == 0 {
		return 0, false
	}
	return total, true
}
