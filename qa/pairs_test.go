package qa

import (
	"strings"
	"testing"
)

func TestMatchQAPair(t *testing.T) {
	tests := []struct {
		name     string
		question string
		wantOK   bool
		wantSub  string // substring expected in the matched answer
	}{
		{
			name:     "near verbatim question",
			question: "what is the bhagavad gita",
			wantOK:   true,
			wantSub:  "700-verse",
		},
		{
			name:     "authorship question",
			question: "who wrote the bhagavad gita",
			wantOK:   true,
			wantSub:  "Vyasa",
		},
		{
			name:     "insufficient overlap",
			question: "tell me something",
			wantOK:   false,
		},
		{
			name:     "empty question",
			question: "",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qa, ok := MatchQAPair(tt.question, DefaultQAPairs)
			if ok != tt.wantOK {
				t.Fatalf("MatchQAPair(%q) ok = %v, want %v", tt.question, ok, tt.wantOK)
			}
			if ok && !strings.Contains(qa.Answer, tt.wantSub) {
				t.Errorf("matched answer %q does not contain %q", qa.Answer, tt.wantSub)
			}
		})
	}
}

func TestRelatedQuestions(t *testing.T) {
	related := RelatedQuestions("who wrote the bhagavad gita", DefaultQAPairs, 5)
	if len(related) == 0 {
		t.Fatal("no related questions found")
	}
	if len(related) > 5 {
		t.Fatalf("got %d related questions, limit is 5", len(related))
	}
	if related[0].Question != "Who wrote the Bhagavad Gita?" {
		t.Errorf("top related question = %q", related[0].Question)
	}

	// Scores must be non-increasing down the list.
	userWords := wordSet("who wrote the bhagavad gita")
	prev := 2.0
	for _, qa := range related {
		overlap := 0
		for w := range wordSet(qa.Question) {
			if userWords[w] {
				overlap++
			}
		}
		score := float64(overlap) / float64(len(userWords))
		if score > prev {
			t.Fatalf("related questions not sorted by score: %q", qa.Question)
		}
		prev = score
	}
}

func TestRelatedQuestions_NoMatches(t *testing.T) {
	if got := RelatedQuestions("completely unrelated topic entirely", DefaultQAPairs, 5); len(got) != 0 {
		t.Errorf("RelatedQuestions = %v, want none", got)
	}
}

func TestQAPairsByCategory(t *testing.T) {
	basic := QAPairsByCategory("Basic Information", DefaultQAPairs)
	if len(basic) == 0 {
		t.Fatal("no pairs in Basic Information")
	}
	for _, qa := range basic {
		if qa.Category != "Basic Information" {
			t.Errorf("pair %q has category %q", qa.Question, qa.Category)
		}
	}

	if got := QAPairsByCategory("No Such Category", DefaultQAPairs); len(got) != 0 {
		t.Errorf("unknown category returned %d pairs", len(got))
	}
}

func TestDefaultQAPairs_Complete(t *testing.T) {
	known := map[string]bool{}
	for _, c := range Categories {
		known[c] = true
	}

	for _, qa := range DefaultQAPairs {
		if qa.Question == "" || qa.Answer == "" {
			t.Errorf("incomplete pair: %+v", qa)
		}
		if !known[qa.Category] {
			t.Errorf("pair %q has unlisted category %q", qa.Question, qa.Category)
		}
	}
}
