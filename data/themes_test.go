package data

import (
	"errors"
	"testing"

	"golang.org/x/image/colornames"
)

func TestEmbeddedThemesLoad(t *testing.T) {
	themes, err := LoadThemes()
	if err != nil {
		t.Fatalf("LoadThemes: %v", err)
	}
	forest := themes.Get("forest")
	if forest.Wall.Rune() != '"' || forest.Floor.Rune() != ';' {
		t.Fatalf("forest tiles %q %q", forest.Wall.Glyph, forest.Floor.Glyph)
	}
	if forest.Wall.RGBA() != colornames.Forestgreen {
		t.Fatalf("forest wall color not resolved")
	}
	if got := themes.Get("swamp"); got.ID != "dungeon" {
		t.Fatalf("unknown theme fell back to %q", got.ID)
	}
}

func TestParseThemesRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"empty", "themes: []", ErrNoThemes},
		{"missing id", "themes:\n  - name: Cave\n", nil},
		{"duplicate", "themes:\n  - id: a\n  - id: a\n", nil},
		{"not yaml", "themes: [", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseThemes("test.yaml", []byte(tt.raw))
			if err == nil {
				t.Fatalf("expected an error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}
