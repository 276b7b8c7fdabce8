package qa

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gitaqa/gitaqa-go/gitadoc"
)

func testSystem() *System {
	verses := gitadoc.VerseIndex{
		gitadoc.VerseKey(2, 47): {
			Chapter: 2,
			Verse:   47,
			Text:    "You have a right to perform your prescribed duty, but you are not entitled to the fruits of action.",
			Page:    56,
		},
	}

	return NewSystem(SystemConfig{
		Docs:   testDocs(),
		Verses: verses,
		Source: "gita.pdf",
	}, zap.NewNop())
}

func TestSystem_AnswerQuestion_Empty(t *testing.T) {
	s := testSystem()

	for _, q := range []string{"", "   ", "\n"} {
		res := s.AnswerQuestion(q)
		nf, ok := res.(NotFound)
		if !ok {
			t.Fatalf("AnswerQuestion(%q) = %T, want NotFound", q, res)
		}
		if nf.Reason == "" {
			t.Error("NotFound carries no reason")
		}
	}
}

func TestSystem_AnswerQuestion_VerseReference(t *testing.T) {
	s := testSystem()

	res := s.AnswerQuestion("Please quote verse 2.47")
	ans, ok := res.(Answered)
	require.True(t, ok, "expected Answered, got %T", res)

	require.Equal(t, ConfidenceExactVerse, ans.Confidence)
	require.True(t, strings.HasPrefix(ans.Text, AnswerPrefix))
	require.Contains(t, ans.Text, "You have a right to perform your prescribed duty")
	require.Contains(t, ans.Text, "(Page 56)")
	require.Len(t, ans.Sources, 1)
	require.Equal(t, 56, ans.Sources[0].Page)
}

func TestSystem_AnswerQuestion_UnknownVerse(t *testing.T) {
	s := testSystem()

	res := s.AnswerQuestion("Please quote verse 9.99")
	nf, ok := res.(NotFound)
	if !ok {
		t.Fatalf("got %T, want NotFound", res)
	}
	if !strings.Contains(nf.Reason, "9.99") {
		t.Errorf("reason = %q, want the missing reference named", nf.Reason)
	}
}

func TestSystem_AnswerQuestion_QAPair(t *testing.T) {
	s := testSystem()

	res := s.AnswerQuestion("What is the Bhagavad Gita?")
	ans, ok := res.(Answered)
	require.True(t, ok, "expected Answered, got %T", res)

	require.Equal(t, ConfidenceQAPair, ans.Confidence)
	require.True(t, strings.HasPrefix(ans.Text, AnswerPrefix))
	require.Contains(t, ans.Text, "700-verse")
}

func TestSystem_AnswerQuestion_NameCorrection(t *testing.T) {
	s := testSystem()

	// "bheeshma" is not in the corpus but its canonical spelling is the
	// name the matcher needs; the correction happens before matching.
	res := s.AnswerQuestion("did bheeshma fight on the battlefield of kurukshetra")
	ans, ok := res.(Answered)
	require.True(t, ok, "expected Answered, got %T", res)
	require.True(t, ans.Confidence >= ConfidenceWeakDoc)
}

func TestSystem_AnswerQuestion_ChapterOverview(t *testing.T) {
	s := testSystem()

	res := s.AnswerQuestion("tell me about chapter 12")
	ans, ok := res.(Answered)
	require.True(t, ok, "expected Answered, got %T", res)

	require.Equal(t, ConfidenceQAPair, ans.Confidence)
	require.True(t, strings.HasPrefix(ans.Text, AnswerPrefix))
	require.Contains(t, ans.Text, "chapter 12")
	require.Contains(t, ans.Text, "The Path of Devotion")
}

func TestSystem_AnswerQuestion_ChapterOverview_SpelledNumber(t *testing.T) {
	s := testSystem()

	res := s.AnswerQuestion("summarize chapter twelve")
	ans, ok := res.(Answered)
	require.True(t, ok, "expected Answered, got %T", res)
	require.Contains(t, ans.Text, "The Path of Devotion")
}

func TestSystem_AnswerQuestion_ChapterOutOfRange(t *testing.T) {
	s := testSystem()

	// No chapter 19 exists, so the question falls through to the
	// corpus search instead of the overview path.
	res := s.AnswerQuestion("explain chapter 19")
	ans, ok := res.(Answered)
	require.True(t, ok, "expected Answered, got %T", res)
	require.Equal(t, ConfidenceWeakDoc, ans.Confidence)
}

func TestSystem_AnswerQuestion_Character(t *testing.T) {
	s := testSystem()

	res := s.AnswerQuestion("Who is Bhishma?")
	ans, ok := res.(Answered)
	require.True(t, ok, "expected Answered, got %T", res)

	require.Equal(t, ConfidenceQAPair, ans.Confidence)
	require.True(t, strings.HasPrefix(ans.Text, AnswerPrefix))
	require.Contains(t, ans.Text, "Grandsire of the Kuru dynasty")
}

func TestSystem_AnswerQuestion_Character_Misspelled(t *testing.T) {
	s := testSystem()

	res := s.AnswerQuestion("who is bheeshma")
	ans, ok := res.(Answered)
	require.True(t, ok, "expected Answered, got %T", res)
	require.Contains(t, ans.Text, "Bhishma")
	require.Contains(t, ans.Text, "Grandsire of the Kuru dynasty")
}

func TestSystem_AnswerQuestion_Character_Unknown(t *testing.T) {
	s := testSystem()

	// An unresolvable subject falls through to the corpus search.
	res := s.AnswerQuestion("who is xylophone")
	ans, ok := res.(Answered)
	require.True(t, ok, "expected Answered, got %T", res)
	require.Equal(t, ConfidenceWeakDoc, ans.Confidence)
}

func TestSystem_PairsByCategory(t *testing.T) {
	s := testSystem()

	pairs := s.PairsByCategory("Basic Information")
	require.NotEmpty(t, pairs)
	for _, pair := range pairs {
		require.Equal(t, "Basic Information", pair.Category)
	}

	require.Empty(t, s.PairsByCategory("No Such Category"))
}

func TestSystem_AnswerQuestion_ChapterSummaries(t *testing.T) {
	s := testSystem()

	res := s.AnswerQuestion("give me a chapter summary please")
	ans, ok := res.(Answered)
	require.True(t, ok, "expected Answered, got %T", res)

	require.Contains(t, ans.Text, "Chapter 1:")
	require.Contains(t, ans.Text, "Chapter 18:")
}

func TestSystem_AnswerQuestion_CorpusSearch(t *testing.T) {
	s := testSystem()

	res := s.AnswerQuestion("how does krishna teach arjuna about duty")
	ans, ok := res.(Answered)
	require.True(t, ok, "expected Answered, got %T", res)

	require.Equal(t, ConfidenceStrongDoc, ans.Confidence)
	require.True(t, strings.HasPrefix(ans.Text, AnswerPrefix))
	require.Len(t, ans.Sources, 1)
	require.Equal(t, 10, ans.Sources[0].Page)
}

func TestSystem_AnswerQuestion_WeakFallback(t *testing.T) {
	s := testSystem()

	res := s.AnswerQuestion("completely disconnected subject matter entirely")
	ans, ok := res.(Answered)
	require.True(t, ok, "expected Answered, got %T", res)

	require.Equal(t, ConfidenceWeakDoc, ans.Confidence)
	require.NotEmpty(t, ans.Sources)
}

func TestSystem_ConfidenceBounds(t *testing.T) {
	s := testSystem()

	questions := []string{
		"Please quote verse 2.47",
		"What is the Bhagavad Gita?",
		"how does krishna teach arjuna about duty",
		"completely disconnected subject matter entirely",
	}
	for _, q := range questions {
		if ans, ok := s.AnswerQuestion(q).(Answered); ok {
			if ans.Confidence < 0 || ans.Confidence > 1 {
				t.Errorf("AnswerQuestion(%q) confidence = %.3f, out of range", q, ans.Confidence)
			}
		}
	}
}

func TestSystem_Ready(t *testing.T) {
	s := testSystem()
	if !s.Ready() {
		t.Error("populated system reports not ready")
	}

	empty := NewSystem(SystemConfig{}, zap.NewNop())
	if empty.Ready() {
		t.Error("empty system reports ready")
	}
}

func TestSystem_Stats(t *testing.T) {
	s := testSystem()
	stats := s.Stats()
	if stats.Documents != 4 || stats.Verses != 1 {
		t.Errorf("Stats() = %+v, want 4 documents and 1 verse", stats)
	}
	if stats.QAPairs == 0 {
		t.Error("Stats() reports no curated pairs")
	}
}
