package qa

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/gitaqa/gitaqa-go/gitadoc"
	"github.com/gitaqa/gitaqa-go/names"
)

// rankK is how many corpus documents the matcher retrieves per question.
const rankK = 3

// System answers questions against an indexed corpus.
type System struct {
	docs          []gitadoc.Document
	verses        gitadoc.VerseIndex
	textCorrector *gitadoc.Corrector
	nameCorrector *names.Corrector
	matcher       *Matcher
	pairs         []QAPair
	source        string
	logger        *zap.Logger
}

type SystemConfig struct {
	Docs          []gitadoc.Document
	Verses        gitadoc.VerseIndex
	TextCorrector *gitadoc.Corrector
	Source        string
}

func NewSystem(cfg SystemConfig, logger *zap.Logger) *System {
	return &System{
		docs:          cfg.Docs,
		verses:        cfg.Verses,
		textCorrector: cfg.TextCorrector,
		nameCorrector: names.NewCorrector(),
		matcher:       NewMatcher(),
		pairs:         DefaultQAPairs,
		source:        cfg.Source,
		logger:        logger,
	}
}

// Ready reports whether the corpus was indexed.
func (s *System) Ready() bool {
	return len(s.docs) > 0 && len(s.verses) > 0
}

// Stats describes the loaded corpus.
type Stats struct {
	Documents int `json:"documents"`
	Verses    int `json:"verses"`
	QAPairs   int `json:"qa_pairs"`
}

func (s *System) Stats() Stats {
	return Stats{Documents: len(s.docs), Verses: len(s.verses), QAPairs: len(s.pairs)}
}

// AnswerQuestion resolves a question to an answer, trying the curated
// pairs, then the character database, then explicit verse and chapter
// references, then the chapter overview, then the corpus search.
func (s *System) AnswerQuestion(question string) Result {
	question = strings.TrimSpace(question)
	if question == "" {
		return NotFound{Reason: "Please ask a question about the Bhagavad Gita."}
	}

	corrected, corrections := s.nameCorrector.CorrectText(question)
	if len(corrections) > 0 {
		s.logger.Info("corrected names in question",
			zap.String("original", question),
			zap.String("corrected", corrected),
			zap.Any("corrections", corrections))
		question = corrected
	}

	if qa, ok := MatchQAPair(question, s.pairs); ok {
		return Answered{
			Text: AnswerPrefix + qa.Answer,
			Sources: []gitadoc.DocumentMetadata{
				{Page: 0, Source: "Bhagavad Gita As It Is, " + strings.Join(qa.VerseReferences, ", ")},
			},
			Confidence: ConfidenceQAPair,
		}
	}

	if subject, ok := characterQuery(question); ok {
		if result, found := s.answerCharacter(subject); found {
			return result
		}
	}

	if chapter, verse, ok := ParseVerseReference(question); ok {
		if result, found := s.answerVerse(chapter, verse); found {
			return result
		}
		return NotFound{Reason: fmt.Sprintf("Verse %d.%d was not found in the indexed text.", chapter, verse)}
	}

	if chapter, ok := ParseChapterReference(question); ok {
		if summary, found := ChapterSummary(chapter); found {
			return Answered{
				Text:       fmt.Sprintf("%sHere is an overview of chapter %d:\n\n%s", AnswerPrefix, chapter, summary),
				Sources:    []gitadoc.DocumentMetadata{{Page: 0, Source: s.source}},
				Confidence: ConfidenceQAPair,
			}
		}
	}

	if IsSummaryRequest(question) {
		return Answered{
			Text:       AnswerPrefix + "Here is a summary of each chapter of the Bhagavad Gita:\n\n" + ChapterSummariesText(),
			Sources:    []gitadoc.DocumentMetadata{{Page: 0, Source: s.source}},
			Confidence: ConfidenceQAPair,
		}
	}

	return s.answerFromCorpus(question)
}

var characterQueryRe = regexp.MustCompile(`(?i)^(?:who (?:is|was)|tell me about)\s+([a-zA-Z' ]+?)[?.!\s]*$`)

// characterQuery pulls the subject out of a who-is style question.
func characterQuery(question string) (string, bool) {
	m := characterQueryRe.FindStringSubmatch(strings.TrimSpace(question))
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// answerCharacter serves a character profile when the subject resolves
// to an entry in the character database.
func (s *System) answerCharacter(subject string) (Result, bool) {
	canonical, _ := s.nameCorrector.CorrectName(subject)
	if canonical == "" {
		return nil, false
	}
	char, ok := names.CharacterInfo(canonical)
	if !ok {
		return nil, false
	}

	text := fmt.Sprintf("%s%s, %s. %s.", AnswerPrefix, char.PrimaryName, char.Role, char.Description)
	return Answered{
		Text:       text,
		Sources:    []gitadoc.DocumentMetadata{{Page: 0, Source: "Bhagavad Gita character reference"}},
		Confidence: ConfidenceQAPair,
	}, true
}

func (s *System) answerVerse(chapter, verse int) (Result, bool) {
	v, ok := s.verses.Lookup(chapter, verse)
	if !ok {
		return nil, false
	}
	text := v.Text
	if s.textCorrector != nil {
		text = s.textCorrector.CorrectText(text)
	}
	answer := fmt.Sprintf("%sHere is verse %d.%d from the Bhagavad Gita:\n\n%s\n\n(Page %d)",
		AnswerPrefix, chapter, verse, text, v.Page)
	return Answered{
		Text:       answer,
		Sources:    []gitadoc.DocumentMetadata{{Page: v.Page, Source: s.source}},
		Confidence: ConfidenceExactVerse,
	}, true
}

func (s *System) answerFromCorpus(question string) Result {
	if len(s.docs) == 0 {
		return NotFound{Reason: "I couldn't find relevant information in the text to answer your question."}
	}

	ranked := s.matcher.Rank(question, s.docs, rankK)
	if len(ranked) == 0 {
		return NotFound{Reason: "I couldn't find relevant information in the text to answer your question."}
	}

	top := s.matcher.TopScore(question, s.docs)
	if top > minTopScore {
		best := ranked[0]
		answer := ExtractBestAnswer(question, best.PageContent)
		if s.textCorrector != nil {
			answer = s.textCorrector.CorrectText(answer)
		}
		return Answered{
			Text:       answer,
			Sources:    []gitadoc.DocumentMetadata{best.Metadata},
			Confidence: ConfidenceStrongDoc,
		}
	}

	// Weak match: answer from the middle-of-corpus fallback slice.
	var combined strings.Builder
	sources := make([]gitadoc.DocumentMetadata, 0, len(ranked))
	for i, doc := range ranked {
		if i > 0 {
			combined.WriteString(" ")
		}
		combined.WriteString(doc.PageContent)
		sources = append(sources, doc.Metadata)
	}
	answer := ExtractBestAnswer(question, combined.String())
	if s.textCorrector != nil {
		answer = s.textCorrector.CorrectText(answer)
	}
	return Answered{
		Text:       answer,
		Sources:    sources,
		Confidence: ConfidenceWeakDoc,
	}
}

// Related returns curated questions near the user question.
func (s *System) Related(question string) []QAPair {
	return RelatedQuestions(question, s.pairs, 5)
}

// PairsByCategory returns the curated questions filed under a category.
func (s *System) PairsByCategory(category string) []QAPair {
	return QAPairsByCategory(category, s.pairs)
}
