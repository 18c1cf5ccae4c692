package data

import (
	"embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// DefaultTemplateFile is the embedded template set used when no path is
// configured
const DefaultTemplateFile = "template.yaml"

//go:embed template.yaml themes.yaml
var templatesFS embed.FS

// ErrNoTemplates is returned when a template file defines no entities
var ErrNoTemplates = errors.New("data: no entity templates")

// EntityType says what a template spawns
type EntityType string

const (
	EntityEnemy EntityType = "enemy"
	EntityItem  EntityType = "item"
)

// Effect kinds an item can provide
const (
	ProvidesHealing  = "healing"
	ProvidesMagicMap = "magic_map"
)

// AI behaviours an enemy can use
const (
	AIChasing = "chasing"
	AIRandom  = "random"
)

// Provides is one effect an item has when used
type Provides struct {
	Kind   string `yaml:"kind"`
	Amount int    `yaml:"amount"`
}

// EntityTemplate describes a monster or item that can be spawned on a
// level
type EntityTemplate struct {
	EntityType EntityType `yaml:"entity_type"`
	Name       string     `yaml:"name"`
	Glyph      string     `yaml:"glyph"`
	Color      string     `yaml:"color"`
	Levels     []int      `yaml:"levels"`
	Frequency  int        `yaml:"frequency"`
	Provides   []Provides `yaml:"provides"`
	HP         int        `yaml:"hp"`
	BaseDamage int        `yaml:"base_damage"`
	AI         string     `yaml:"ai"`
}

// Rune returns the first character of the glyph
func (t *EntityTemplate) Rune() rune {
	for _, r := range t.Glyph {
		return r
	}
	return '?'
}

// RGBA resolves the color name; unknown names render white
func (t *EntityTemplate) RGBA() color.RGBA {
	return namedColor(t.Color)
}

// OnLevel reports whether the template may appear on level
func (t *EntityTemplate) OnLevel(level int) bool {
	return slices.Contains(t.Levels, level)
}

// Templates is the full set of spawnable entities
type Templates struct {
	Entities []EntityTemplate `yaml:"entities"`
}

// Load reads a template file from disk, falling back to the embedded
// default when path is empty
func Load(path string) ([]byte, error) {
	if path == "" {
		return templatesFS.ReadFile(DefaultTemplateFile)
	}
	return os.ReadFile(path)
}

// LoadTemplates loads and validates a template file. An empty path loads
// the embedded set.
func LoadTemplates(path string) (*Templates, error) {
	name := path
	if name == "" {
		name = DefaultTemplateFile
	}
	raw, err := Load(path)
	if err != nil {
		return nil, fmt.Errorf("data: load %s: %w", name, err)
	}
	return ParseTemplates(name, raw)
}

// ParseTemplates decodes and validates template YAML
func ParseTemplates(name string, raw []byte) (*Templates, error) {
	var t Templates
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("data: unmarshal %s: %w", name, err)
	}
	if len(t.Entities) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoTemplates, name)
	}
	for i := range t.Entities {
		if err := t.Entities[i].validate(); err != nil {
			return nil, fmt.Errorf("data: %s entry %d: %w", name, i, err)
		}
	}
	return &t, nil
}

func (t *EntityTemplate) validate() error {
	switch t.EntityType {
	case EntityEnemy:
		if t.HP < 1 {
			return fmt.Errorf("enemy %q needs hp >= 1", t.Name)
		}
		if t.AI != "" && t.AI != AIChasing && t.AI != AIRandom {
			return fmt.Errorf("enemy %q has unknown ai %q", t.Name, t.AI)
		}
	case EntityItem:
	default:
		return fmt.Errorf("%q has unknown entity_type %q", t.Name, t.EntityType)
	}
	if t.Name == "" {
		return errors.New("template without a name")
	}
	if t.Frequency < 0 {
		return fmt.Errorf("%q has negative frequency", t.Name)
	}
	for _, p := range t.Provides {
		if p.Kind != ProvidesHealing && p.Kind != ProvidesMagicMap {
			return fmt.Errorf("%q provides unknown effect %q", t.Name, p.Kind)
		}
	}
	return nil
}
