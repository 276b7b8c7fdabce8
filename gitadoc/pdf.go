package gitadoc

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// DefaultStartPage skips the front matter (cover, preface, contents) of the
// standard edition before verse text begins.
const DefaultStartPage = 10

// minDocumentChars is the cleaned-content threshold below which a page does
// not become a Document. Short pages may still contribute verses.
const minDocumentChars = 100

// Extractor reads per-page text from a PDF using the ledongthuc/pdf library.
type Extractor struct {
	// StartPage is the first 1-based page to extract. Zero means
	// DefaultStartPage.
	StartPage int

	logger *zap.Logger
}

// NewExtractor creates an Extractor logging through the given logger.
func NewExtractor(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{StartPage: DefaultStartPage, logger: logger}
}

// ExtractPages opens the PDF at path and returns the raw text of every page
// from StartPage onward, in page order. A page that cannot be decoded is
// logged and skipped; its failure is reported in the returned PageError slice.
// A missing or unreadable file is fatal and returned as an error.
func (e *Extractor) ExtractPages(path string) ([]PageText, []PageError, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, nil, fmt.Errorf("source PDF unavailable: %w", err)
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer f.Close()

	start := e.StartPage
	if start < 1 {
		start = DefaultStartPage
	}

	totalPages := reader.NumPage()
	pages := make([]PageText, 0, totalPages)
	var failures []PageError

	for pageNum := start; pageNum <= totalPages; pageNum++ {
		text, err := extractPage(reader, pageNum)
		if err != nil {
			e.logger.Warn("skipping unreadable page",
				zap.Int("page", pageNum), zap.Error(err))
			failures = append(failures, PageError{Page: pageNum, Err: err})
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, PageText{Page: pageNum, Text: text})
	}

	pages = StripRepeatedHeaders(pages)

	e.logger.Info("extracted PDF pages",
		zap.String("path", path),
		zap.Int("pages", len(pages)),
		zap.Int("failed", len(failures)))

	return pages, failures, nil
}

// extractPage decodes a single page into row-ordered text. The underlying
// library panics on some malformed content streams, so decoding faults are
// converted into errors here to keep failures page-local.
func extractPage(reader *pdf.Reader, pageNum int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page decode panic: %v", r)
		}
	}()

	page := reader.Page(pageNum)
	if page.V.IsNull() {
		return "", fmt.Errorf("page %d is null", pageNum)
	}

	rows, err := page.GetTextByRow()
	if err != nil {
		return "", fmt.Errorf("row extraction failed: %w", err)
	}

	var sb strings.Builder
	for _, row := range rows {
		var words []string
		for _, word := range row.Content {
			if word.S != "" {
				words = append(words, word.S)
			}
		}
		if len(words) == 0 {
			continue
		}
		sb.WriteString(strings.Join(words, " "))
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
