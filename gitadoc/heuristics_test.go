package gitadoc

import (
	"testing"
)

func TestCorrector_IsLikelyError(t *testing.T) {
	c := NewCorrector(nil)

	tests := []struct {
		name string
		word string
		want bool
	}{
		{
			name: "domain term is never an error",
			word: "krishna",
			want: false,
		},
		{
			name: "domain term stays safe regardless of case",
			word: "Bhishma",
			want: false,
		},
		{
			name: "short function word",
			word: "an",
			want: false,
		},
		{
			name: "common dictionary word",
			word: "knowledge",
			want: false,
		},
		{
			name: "all caps heading is presumed correct",
			word: "CHAPTER",
			want: false,
		},
		{
			name: "mid-word case transition",
			word: "butKrishna",
			want: true,
		},
		{
			name: "digit inside a word",
			word: "under5tanding",
			want: true,
		},
		{
			name: "repeated character run",
			word: "dutyyy",
			want: true,
		},
		{
			name: "embedded punctuation",
			word: "duty.Krishna",
			want: true,
		},
		{
			name: "long unbroken merged token",
			word: "thisisaverylongmergedtoken",
			want: true,
		},
		{
			name: "unknown word with confusable sequence",
			word: "modern",
			want: true,
		},
		{
			name: "single character",
			word: "x",
			want: false,
		},
		{
			name: "hyphenated word keeps its hyphen",
			word: "self-realization",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.IsLikelyError(tt.word); got != tt.want {
				t.Errorf("IsLikelyError(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestCorrector_SuggestCorrection(t *testing.T) {
	c := NewCorrector(nil)

	tests := []struct {
		name string
		word string
		want string
	}{
		{
			name: "seeded concatenation",
			word: "theBhagavad",
			want: "the Bhagavad",
		},
		{
			name: "long seeded concatenation",
			word: "theSupremePersonalityofGodhead",
			want: "the Supreme Personality of Godhead",
		},
		{
			name: "seeded concatenation as substring",
			word: "theGita.",
			want: "the Gita.",
		},
		{
			name: "case transition split after function word",
			word: "butKrishna",
			want: "but Krishna",
		},
		{
			name: "stray space around i rejoined",
			word: "medi tation",
			want: "meditation",
		},
		{
			name: "ocr digit confusion",
			word: "under5tanding",
			want: "understanding",
		},
		{
			name: "missing space after period",
			word: "duty.Krishna",
			want: "duty. Krishna",
		},
		{
			name: "merged dictionary words",
			word: "knowledgeand",
			want: "knowledge and",
		},
		{
			name: "no strategy applies",
			word: "modern",
			want: "modern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.SuggestCorrection(tt.word); got != tt.want {
				t.Errorf("SuggestCorrection(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestHasRepeatedRun(t *testing.T) {
	tests := []struct {
		word string
		n    int
		want bool
	}{
		{"aaa", 3, true},
		{"aab", 3, false},
		{"bookkeeper", 3, false},
		{"dutyyy", 3, true},
		{"", 3, false},
	}

	for _, tt := range tests {
		if got := hasRepeatedRun(tt.word, tt.n); got != tt.want {
			t.Errorf("hasRepeatedRun(%q, %d) = %v, want %v", tt.word, tt.n, got, tt.want)
		}
	}
}
