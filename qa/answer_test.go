package qa

import (
	"strings"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "three terminators",
			in:   "First sentence. Second one! Third here?",
			want: []string{"First sentence.", "Second one!", "Third here?"},
		},
		{
			name: "newline separated",
			in:   "The soul is eternal.\nIt never dies.",
			want: []string{"The soul is eternal.", "It never dies."},
		},
		{
			name: "no terminator",
			in:   "an unterminated fragment",
			want: []string{"an unterminated fragment"},
		},
		{
			name: "decimal number stays whole",
			in:   "See verse 2.47 for details. It is famous.",
			want: []string{"See verse 2.47 for details.", "It is famous."},
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitSentences(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("splitSentences(%q) = %q, want %q", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("sentence %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestExtractBestAnswer(t *testing.T) {
	text := "The sky was dark over the field. Duty means performing prescribed action without attachment. The warriors assembled."

	t.Run("picks the sentence with the key terms", func(t *testing.T) {
		got := ExtractBestAnswer("what is duty and attachment", text)
		if !strings.HasPrefix(got, AnswerPrefix) {
			t.Errorf("answer %q lacks prefix", got)
		}
		if !strings.Contains(got, "Duty means performing prescribed action") {
			t.Errorf("answer = %q, want the duty sentence", got)
		}
	})

	t.Run("falls back to the first sentence", func(t *testing.T) {
		got := ExtractBestAnswer("zzz qqq", text)
		want := AnswerPrefix + "The sky was dark over the field."
		if got != want {
			t.Errorf("answer = %q, want %q", got, want)
		}
	})

	t.Run("teaching question prefers reported speech", func(t *testing.T) {
		teachText := "The battle began at dawn. Krishna said that the soul can never be cut to pieces by any weapon."
		got := ExtractBestAnswer("what does krishna teach about the soul", teachText)
		if !strings.Contains(got, "Krishna said") {
			t.Errorf("answer = %q, want the reported-speech sentence", got)
		}
	})

	t.Run("empty text", func(t *testing.T) {
		got := ExtractBestAnswer("anything", "")
		if got != AnswerPrefix+"No answer found" {
			t.Errorf("answer = %q", got)
		}
	})
}
