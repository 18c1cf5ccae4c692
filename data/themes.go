package data

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

const themesFile = "themes.yaml"

// ErrNoThemes is returned when a theme file defines no themes
var ErrNoThemes = errors.New("data: no themes")

// TileLook is how one tile type is drawn
type TileLook struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// Rune returns the first character of the glyph
func (l TileLook) Rune() rune {
	for _, r := range l.Glyph {
		return r
	}
	return '?'
}

// RGBA resolves the color name; unknown names render white
func (l TileLook) RGBA() color.RGBA {
	return namedColor(l.Color)
}

// ThemeDefinition is the look of a level
type ThemeDefinition struct {
	ID    string   `yaml:"id"`
	Name  string   `yaml:"name"`
	Wall  TileLook `yaml:"wall"`
	Floor TileLook `yaml:"floor"`
	Exit  TileLook `yaml:"exit"`
	// Color of tiles seen before but not currently in view
	Remembered string `yaml:"remembered"`
}

// RememberedRGBA resolves the remembered-tile color
func (t *ThemeDefinition) RememberedRGBA() color.RGBA {
	return namedColor(t.Remembered)
}

// Themes holds theme definitions by id
type Themes struct {
	Themes []ThemeDefinition `yaml:"themes"`
	byID   map[string]*ThemeDefinition
}

// LoadThemes loads the embedded theme set
func LoadThemes() (*Themes, error) {
	raw, err := templatesFS.ReadFile(themesFile)
	if err != nil {
		return nil, fmt.Errorf("data: load %s: %w", themesFile, err)
	}
	return ParseThemes(themesFile, raw)
}

// ParseThemes decodes and validates theme YAML
func ParseThemes(name string, raw []byte) (*Themes, error) {
	var t Themes
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("data: unmarshal %s: %w", name, err)
	}
	if len(t.Themes) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoThemes, name)
	}
	t.byID = make(map[string]*ThemeDefinition, len(t.Themes))
	for i := range t.Themes {
		theme := &t.Themes[i]
		if theme.ID == "" {
			return nil, fmt.Errorf("data: %s entry %d: theme is missing id", name, i)
		}
		if _, dup := t.byID[theme.ID]; dup {
			return nil, fmt.Errorf("data: %s: duplicate theme %q", name, theme.ID)
		}
		t.byID[theme.ID] = theme
	}
	return &t, nil
}

// Get returns the theme with the given id, or the first theme when there
// is none
func (t *Themes) Get(id string) *ThemeDefinition {
	if theme, ok := t.byID[id]; ok {
		return theme
	}
	return &t.Themes[0]
}

func namedColor(name string) color.RGBA {
	if c, ok := colornames.Map[strings.ToLower(name)]; ok {
		return c
	}
	return colornames.White
}
