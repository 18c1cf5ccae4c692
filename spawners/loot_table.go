package spawners

import (
	"dungeon-crawl/data"
	"dungeon-crawl/rng"
)

// LootTable is a weighted choice over the templates allowed on one level
type LootTable struct {
	Entries     []LootTableEntry
	totalWeight int
}

// LootTableEntry represents a single entry in a loot table
type LootTableEntry struct {
	Template *data.EntityTemplate
	Weight   int
}

// NewLootTable builds the table for level, weighting each template by its
// frequency
func NewLootTable(templates *data.Templates, level int) *LootTable {
	lt := &LootTable{}
	for i := range templates.Entities {
		tpl := &templates.Entities[i]
		if !tpl.OnLevel(level) || tpl.Frequency <= 0 {
			continue
		}
		lt.Entries = append(lt.Entries, LootTableEntry{Template: tpl, Weight: tpl.Frequency})
		lt.totalWeight += tpl.Frequency
	}
	return lt
}

// Empty reports whether nothing can be picked
func (lt *LootTable) Empty() bool {
	return lt.totalWeight == 0
}

// Pick returns one template, chosen with probability proportional to its
// weight
func (lt *LootTable) Pick(r *rng.RandomNumberGenerator) (*data.EntityTemplate, bool) {
	if lt.Empty() {
		return nil, false
	}
	roll := r.Range(0, lt.totalWeight)
	for _, entry := range lt.Entries {
		if roll < entry.Weight {
			return entry.Template, true
		}
		roll -= entry.Weight
	}
	return nil, false
}
