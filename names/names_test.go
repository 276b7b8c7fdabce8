package names

import (
	"sort"
	"testing"
)

func TestCorrector_CorrectName(t *testing.T) {
	c := NewCorrector()

	tests := []struct {
		name      string
		in        string
		want      string
		wantScore float64 // minimum expected confidence, 0 means exact
	}{
		{
			name:      "canonical name",
			in:        "krishna",
			want:      "krishna",
			wantScore: 1.0,
		},
		{
			name:      "alias resolves to primary",
			in:        "partha",
			want:      "arjuna",
			wantScore: 1.0,
		},
		{
			name:      "seeded misspelling",
			in:        "bheeshma",
			want:      "bhishma",
			wantScore: 1.0,
		},
		{
			name:      "seeded misspelling of karna",
			in:        "karan",
			want:      "karna",
			wantScore: 1.0,
		},
		{
			name:      "mixed case and whitespace",
			in:        "  KRISHNA  ",
			want:      "krishna",
			wantScore: 1.0,
		},
		{
			name:      "partial name",
			in:        "dronachary",
			want:      "dronacharya",
			wantScore: 0.7,
		},
		{
			name:      "transposition",
			in:        "krsihna",
			want:      "krishna",
			wantScore: 0.6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, score := c.CorrectName(tt.in)
			if got != tt.want {
				t.Errorf("CorrectName(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if score < tt.wantScore {
				t.Errorf("CorrectName(%q) score = %.3f, want >= %.3f", tt.in, score, tt.wantScore)
			}
			if score > 1.0 {
				t.Errorf("CorrectName(%q) score = %.3f, exceeds 1.0", tt.in, score)
			}
		})
	}
}

func TestCorrector_CorrectName_NoMatch(t *testing.T) {
	c := NewCorrector()

	for _, in := range []string{"", "   ", "xylophone", "qqqqq"} {
		got, score := c.CorrectName(in)
		if got != "" || score != 0.0 {
			t.Errorf("CorrectName(%q) = (%q, %.3f), want empty result", in, got, score)
		}
	}
}

func TestCorrector_CorrectName_Deterministic(t *testing.T) {
	c := NewCorrector()

	first, firstScore := c.CorrectName("krsihna")
	for i := 0; i < 10; i++ {
		got, score := c.CorrectName("krsihna")
		if got != first || score != firstScore {
			t.Fatalf("CorrectName varies across calls: (%q, %.3f) vs (%q, %.3f)", got, score, first, firstScore)
		}
	}
}

func TestCorrector_CorrectText(t *testing.T) {
	c := NewCorrector()

	text, corrections := c.CorrectText("Tell me about bheeshma and karan")

	want := map[string]string{
		"bheeshma": "Bhishma",
		"karan":    "Karna",
	}
	if len(corrections) != len(want) {
		t.Fatalf("corrections = %v, want %v", corrections, want)
	}
	for from, to := range want {
		if corrections[from] != to {
			t.Errorf("corrections[%q] = %q, want %q", from, corrections[from], to)
		}
	}
	if text != "Tell me about Bhishma and Karna" {
		t.Errorf("corrected text = %q", text)
	}
}

func TestCorrector_CorrectText_PreservesAllCaps(t *testing.T) {
	c := NewCorrector()

	text, corrections := c.CorrectText("BHEESHMA spoke first")
	if corrections["BHEESHMA"] != "BHISHMA" {
		t.Errorf("corrections = %v, want all caps preserved", corrections)
	}
	if text != "BHISHMA spoke first" {
		t.Errorf("corrected text = %q", text)
	}
}

func TestCorrector_CorrectText_LeavesCanonicalAlone(t *testing.T) {
	c := NewCorrector()

	text, corrections := c.CorrectText("Krishna instructs Arjuna")
	if len(corrections) != 0 {
		t.Errorf("corrections = %v, want none", corrections)
	}
	if text != "Krishna instructs Arjuna" {
		t.Errorf("text = %q, want unchanged", text)
	}
}

func TestCorrector_CorrectText_Empty(t *testing.T) {
	c := NewCorrector()

	text, corrections := c.CorrectText("")
	if text != "" || len(corrections) != 0 {
		t.Errorf("CorrectText(\"\") = (%q, %v)", text, corrections)
	}
}

func TestCharacterInfo(t *testing.T) {
	char, ok := CharacterInfo("krishna")
	if !ok {
		t.Fatal("krishna missing from character database")
	}
	if char.PrimaryName != "Krishna" {
		t.Errorf("PrimaryName = %q, want Krishna", char.PrimaryName)
	}
	if len(char.Aliases) == 0 {
		t.Error("krishna has no aliases")
	}

	if _, ok := CharacterInfo("nobody"); ok {
		t.Error("CharacterInfo returned ok for unknown name")
	}
}

func TestAllNames(t *testing.T) {
	names := AllNames()
	if len(names) == 0 {
		t.Fatal("AllNames returned nothing")
	}

	found := map[string]bool{}
	for _, n := range names {
		found[n] = true
	}
	for _, want := range []string{"Krishna", "Arjuna", "Bhishma", "Karna"} {
		if !found[want] {
			t.Errorf("AllNames missing %q", want)
		}
	}

	if !sort.StringsAreSorted(names) {
		t.Error("AllNames is not sorted")
	}
	if len(found) != len(names) {
		t.Errorf("AllNames has %d duplicates", len(names)-len(found))
	}
}
