package gitadoc

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCorrector_BuildCorrectionMap(t *testing.T) {
	c := NewCorrector(nil)

	pages := []PageText{
		{Page: 10, Text: "The process of under5tanding the self takes practice. under5tanding grows."},
		{Page: 11, Text: "The soul is eternal and imperishable."},
	}

	m := c.BuildCorrectionMap(pages)

	if got := m["under5tanding"]; got != "understanding" {
		t.Errorf("map[under5tanding] = %q, want %q", got, "understanding")
	}

	// Seeded known errors are always present.
	if got := m["donot"]; got != "do not" {
		t.Errorf("map[donot] = %q, want %q", got, "do not")
	}
	if got := m["th is"]; got != "this" {
		t.Errorf("map[th is] = %q, want %q", got, "this")
	}

	// Valid corpus words never enter the map.
	for _, word := range []string{"soul", "eternal", "process", "krishna"} {
		if _, ok := m[word]; ok {
			t.Errorf("map contains valid word %q", word)
		}
	}
}

func TestCorrector_BuildCorrectionMap_NoIdentityEntries(t *testing.T) {
	c := NewCorrector(nil)

	// "modern" is flagged by the classifier but no strategy can repair
	// it, so it must stay out of the map rather than map to itself.
	pages := []PageText{{Page: 10, Text: "modern modern modern"}}
	m := c.BuildCorrectionMap(pages)

	if _, ok := m["modern"]; ok {
		t.Errorf("map contains identity entry for %q", "modern")
	}
}

func TestCorrector_CorrectText(t *testing.T) {
	c := NewCorrector(nil)
	c.SetCorrectionMap(map[string]string{
		"th is":         "this",
		"donot":         "do not",
		"under5tanding": "understanding",
	})

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "whole input is a known error",
			in:   "donot",
			want: "do not",
		},
		{
			name: "multi word key inside a line",
			in:   "th is is the whole point",
			want: "this is the whole point",
		},
		{
			name: "token level replacement",
			in:   "true under5tanding of the self",
			want: "true understanding of the self",
		},
		{
			name: "clean text passes through",
			in:   "The soul is eternal and imperishable.",
			want: "The soul is eternal and imperishable.",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "spacing is normalized",
			in:   "the  soul   is eternal .",
			want: "the soul is eternal.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.CorrectText(tt.in); got != tt.want {
				t.Errorf("CorrectText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCorrector_CorrectText_Idempotent(t *testing.T) {
	c := NewCorrector(nil)
	c.SetCorrectionMap(map[string]string{
		"th is": "this",
		"donot": "do not",
	})

	inputs := []string{
		"th is is what Krishna taught, donot forget it",
		"perform your duty without attachment",
		"the  soul   is eternal",
	}

	for _, in := range inputs {
		once := c.CorrectText(in)
		twice := c.CorrectText(once)
		if once != twice {
			t.Errorf("CorrectText not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestCorrector_CorrectText_RejectsDestructiveRepair(t *testing.T) {
	c := NewCorrector(nil)
	c.SetCorrectionMap(map[string]string{
		"xxxxxxxx": "x",
	})

	in := "xxxxxxxx xxxxxxxx xxxxxxxx"
	if got := c.CorrectText(in); got != in {
		t.Errorf("CorrectText(%q) = %q, want original back", in, got)
	}
}

func TestCorrector_SetCorrectionMap_DropsIdentity(t *testing.T) {
	c := NewCorrector(nil)
	c.SetCorrectionMap(map[string]string{
		"same":  "same",
		"wrong": "right",
	})

	m := c.CorrectionMap()
	if _, ok := m["same"]; ok {
		t.Error("identity entry survived SetCorrectionMap")
	}
	if m["wrong"] != "right" {
		t.Errorf("map[wrong] = %q, want %q", m["wrong"], "right")
	}
}

func TestCorrector_SaveLoadCorrectionMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "correction_map.json")

	c := NewCorrector(nil)
	c.SetCorrectionMap(map[string]string{
		"th is": "this",
		"donot": "do not",
	})
	if err := c.SaveCorrectionMap(path); err != nil {
		t.Fatalf("SaveCorrectionMap: %v", err)
	}

	loaded := NewCorrector(nil)
	if err := loaded.LoadCorrectionMap(path); err != nil {
		t.Fatalf("LoadCorrectionMap: %v", err)
	}

	m := loaded.CorrectionMap()
	if len(m) != 2 {
		t.Fatalf("loaded %d entries, want 2", len(m))
	}
	if m["th is"] != "this" || m["donot"] != "do not" {
		t.Errorf("loaded map %v does not round-trip", m)
	}
}

func TestCorrector_LoadCorrectionMap_MissingFile(t *testing.T) {
	c := NewCorrector(nil)
	err := c.LoadCorrectionMap(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
