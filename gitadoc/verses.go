package gitadoc

import (
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

var (
	verseBoundaryRe = regexp.MustCompile(`^(?:Bg\s*)?(\d+)\.(\d+)(?:\s|$)`)
	inlineVerseRe   = regexp.MustCompile(`(\d+)\s*\.\s*(\d+)`)
)

// VerseIndex is the read-only "chapter.verse" index built at startup.
type VerseIndex map[string]Verse

// Lookup returns the verse stored for a chapter/verse pair, if any.
func (vi VerseIndex) Lookup(chapter, verse int) (Verse, bool) {
	v, ok := vi[VerseKey(chapter, verse)]
	return v, ok
}

// VerseIndexer builds a VerseIndex from raw per-page text by detecting
// verse boundary markers and accumulating the lines between them.
type VerseIndexer struct {
	logger *zap.Logger
}

// NewVerseIndexer creates an indexer logging through the given logger.
func NewVerseIndexer(logger *zap.Logger) *VerseIndexer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VerseIndexer{logger: logger}
}

// BuildIndex scans pages in order and returns the verse index. A verse
// accumulates until the next boundary or the end of its page, then is
// sealed under its "chapter.verse" key. Later occurrences of a key
// overwrite earlier ones. Chapter and verse numbers are stored as
// found, without validation against the canonical verse counts.
func (idx *VerseIndexer) BuildIndex(pages []PageText) VerseIndex {
	index := VerseIndex{}

	for _, page := range pages {
		idx.indexPage(index, page)
	}

	idx.logger.Info("built verse index", zap.Int("verses", len(index)))
	return index
}

// indexPage scans one page's lines, sealing any open accumulation at
// the end of the page.
func (idx *VerseIndexer) indexPage(index VerseIndex, page PageText) {
	var (
		open    bool
		current Verse
		lines   []string
	)

	seal := func() {
		if !open {
			return
		}
		current.Text = strings.TrimSpace(strings.Join(lines, " "))
		current.Page = page.Page
		index[current.Key()] = current
		open = false
		lines = nil
	}

	for _, raw := range strings.Split(page.Text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if chapter, verse, ok := parseBoundary(line); ok {
			seal()
			open = true
			current = Verse{Chapter: chapter, Verse: verse}
			// Any trailing words on the boundary line itself are the
			// start of the verse text.
			if rest := boundaryRemainder(line); rest != "" {
				lines = append(lines, rest)
			}
			continue
		}

		if !open {
			continue
		}

		// Label lines leak from the layout between boundary and text.
		if strings.HasPrefix(line, "TEXT") || strings.HasPrefix(line, "Bg") {
			continue
		}
		lines = append(lines, line)
	}

	seal()
}

// parseBoundary recognizes a verse boundary line, either the plain
// "2.47" / "Bg 2.47" form at the start of a line or the inline
// "TEXT 47 ... Bg 2.47" layout idiom.
func parseBoundary(line string) (chapter, verse int, ok bool) {
	if m := verseBoundaryRe.FindStringSubmatch(line); m != nil {
		return atoiPair(m[1], m[2])
	}

	if strings.Contains(line, "TEXT") && strings.Contains(line, "Bg") {
		_, after, found := strings.Cut(line, "Bg")
		if !found {
			return 0, 0, false
		}
		if m := inlineVerseRe.FindStringSubmatch(after); m != nil {
			return atoiPair(m[1], m[2])
		}
	}

	return 0, 0, false
}

// boundaryRemainder returns the verse text that follows the reference
// on a plain boundary line, if any.
func boundaryRemainder(line string) string {
	m := verseBoundaryRe.FindStringIndex(line)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(line[m[1]:])
}

func atoiPair(a, b string) (int, int, bool) {
	chapter, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, false
	}
	verse, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, false
	}
	if chapter < 1 || verse < 1 {
		return 0, 0, false
	}
	return chapter, verse, true
}

// BuildDocuments turns pages into cleaned page documents. Pages whose
// cleaned content is at or below the length threshold are dropped from
// the document list; they may still have contributed verses.
func BuildDocuments(pages []PageText, source string) []Document {
	docs := make([]Document, 0, len(pages))
	for _, page := range pages {
		cleaned := CleanPage(page.Text)
		if len(cleaned) <= minDocumentChars {
			continue
		}
		docs = append(docs, Document{
			PageContent: cleaned,
			Metadata:    DocumentMetadata{Page: page.Page, Source: source},
		})
	}
	return docs
}
