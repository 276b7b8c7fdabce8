package qa

import (
	"sort"
	"strings"

	"github.com/gitaqa/gitaqa-go/gitadoc"
)

const (
	// minTermMatches is how many distinct query terms a document must
	// contain before it qualifies at all.
	minTermMatches = 2

	// minTopScore is the overlap ratio the best match must exceed for
	// ranked results to be trusted over the middle-of-corpus fallback.
	minTopScore = 0.3

	// minTermLen drops query tokens too short to be discriminating.
	minTermLen = 2
)

// Matcher ranks page documents against a question by lexical term
// overlap.
type Matcher struct{}

// NewMatcher creates a Matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// queryTerms lowercases and tokenizes a query, dropping short tokens.
func queryTerms(query string) []string {
	seen := map[string]bool{}
	var terms []string
	for _, term := range strings.Fields(strings.ToLower(query)) {
		if len(term) <= minTermLen || seen[term] {
			continue
		}
		seen[term] = true
		terms = append(terms, term)
	}
	return terms
}

// Score computes the term-overlap ratio of one document against the
// query terms: distinct matched terms over total query terms, zero when
// fewer than minTermMatches terms match.
func (m *Matcher) Score(terms []string, doc gitadoc.Document) float64 {
	if len(terms) == 0 {
		return 0
	}

	content := strings.ToLower(doc.PageContent)
	matches := 0
	for _, term := range terms {
		if strings.Contains(content, term) {
			matches++
		}
	}
	if matches < minTermMatches {
		return 0
	}
	return float64(matches) / float64(len(terms))
}

// Rank orders documents by overlap score, descending and stable, and
// returns the top k. If even the best score does not exceed
// minTopScore, the k documents at the middle of the corpus are returned
// instead as a deterministic soft-fail.
func (m *Matcher) Rank(query string, docs []gitadoc.Document, k int) []gitadoc.Document {
	if len(docs) == 0 || k <= 0 {
		return nil
	}

	terms := queryTerms(query)

	type scoredDoc struct {
		score float64
		doc   gitadoc.Document
	}
	var scored []scoredDoc
	for _, doc := range docs {
		if score := m.Score(terms, doc); score > 0 {
			scored = append(scored, scoredDoc{score: score, doc: doc})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > 0 && scored[0].score > minTopScore {
		n := min(k, len(scored))
		out := make([]gitadoc.Document, n)
		for i := range out {
			out[i] = scored[i].doc
		}
		return out
	}

	return middleOfCorpus(docs, k)
}

// middleOfCorpus returns up to k documents starting at the midpoint of
// the corpus.
func middleOfCorpus(docs []gitadoc.Document, k int) []gitadoc.Document {
	mid := len(docs) / 2
	end := min(mid+k, len(docs))
	return docs[mid:end]
}

// TopScore reports the best overlap score for a query, used to decide
// whether ranked results were trusted.
func (m *Matcher) TopScore(query string, docs []gitadoc.Document) float64 {
	terms := queryTerms(query)
	best := 0.0
	for _, doc := range docs {
		if score := m.Score(terms, doc); score > best {
			best = score
		}
	}
	return best
}
