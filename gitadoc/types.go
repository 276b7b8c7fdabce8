package gitadoc

import "fmt"

// PageText is the raw extracted text of a single PDF page, in page order.
type PageText struct {
	// Page is the 1-based page number within the source PDF.
	Page int

	// Text is the raw extracted text, line-structured where the extractor
	// could recover rows.
	Text string
}

// DocumentMetadata identifies where a Document came from.
type DocumentMetadata struct {
	Page   int    `json:"page"`
	Source string `json:"source"`
}

// Document is one cleaned PDF page with non-trivial content.
// Immutable after construction.
type Document struct {
	PageContent string           `json:"page_content"`
	Metadata    DocumentMetadata `json:"metadata"`
}

// Verse is a single indexed verse. Keyed externally by "chapter.verse".
type Verse struct {
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
	Text    string `json:"text"`
	Page    int    `json:"page"`
}

// Key returns the canonical "chapter.verse" index key.
func (v Verse) Key() string {
	return fmt.Sprintf("%d.%d", v.Chapter, v.Verse)
}

// VerseKey builds the canonical index key for a chapter/verse pair.
func VerseKey(chapter, verse int) string {
	return fmt.Sprintf("%d.%d", chapter, verse)
}

// PageError records a page whose extraction or indexing failed.
// Failures are isolated per page and never abort a corpus build.
type PageError struct {
	Page int
	Err  error
}

func (e PageError) Error() string {
	return fmt.Sprintf("page %d: %v", e.Page, e.Err)
}

func (e PageError) Unwrap() error {
	return e.Err
}
