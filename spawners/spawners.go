package spawners

import (
	"log/slog"

	"golang.org/x/image/colornames"

	"dungeon-crawl/components"
	"dungeon-crawl/data"
	"dungeon-crawl/ecs"
	"dungeon-crawl/rng"
)

const (
	playerHealth     = 10
	playerVision     = 8
	playerDamage     = 1
	monsterVision    = 6
	AmuletName       = "Amulet of Yala"
	amuletGlyph      = '|'
	defaultMonsterAI = data.AIChasing
)

// EntitySpawner manages the creation of game entities
type EntitySpawner struct {
	world     *ecs.World
	templates *data.Templates
}

// NewEntitySpawner creates a new entity spawner
func NewEntitySpawner(world *ecs.World, templates *data.Templates) *EntitySpawner {
	return &EntitySpawner{
		world:     world,
		templates: templates,
	}
}

// SetTemplates swaps the template set used for later levels
func (s *EntitySpawner) SetTemplates(templates *data.Templates) {
	s.templates = templates
}

// CreatePlayer creates a player entity at the given position
func (s *EntitySpawner) CreatePlayer(pt components.Point) ecs.EntityID {
	player := s.world.CreateEntity()
	s.world.TagEntity(player.ID, components.TagPlayer)
	s.world.AddComponent(player.ID, components.Position, components.NewPositionComponent(pt))
	s.world.AddComponent(player.ID, components.Renderable, components.NewRenderableComponent('@', colornames.White))
	s.world.AddComponent(player.ID, components.Name, components.NewNameComponent("Player"))
	s.world.AddComponent(player.ID, components.Player, &components.PlayerComponent{MapLevel: 0})
	s.world.AddComponent(player.ID, components.Health, components.NewHealthComponent(playerHealth))
	s.world.AddComponent(player.ID, components.FOV, components.NewFOVComponent(playerVision))
	s.world.AddComponent(player.ID, components.Damage, &components.DamageComponent{Amount: playerDamage})
	return player.ID
}

// CreateAmulet places the Amulet of Yala
func (s *EntitySpawner) CreateAmulet(pt components.Point) ecs.EntityID {
	amulet := s.world.CreateEntity()
	s.world.TagEntity(amulet.ID, components.TagItem)
	s.world.TagEntity(amulet.ID, components.TagAmulet)
	s.world.AddComponent(amulet.ID, components.Position, components.NewPositionComponent(pt))
	s.world.AddComponent(amulet.ID, components.Renderable, components.NewRenderableComponent(amuletGlyph, colornames.Gold))
	s.world.AddComponent(amulet.ID, components.Name, components.NewNameComponent(AmuletName))
	return amulet.ID
}

// SpawnLevel places one weighted random template on each point, skipping
// the player's tile
func (s *EntitySpawner) SpawnLevel(r *rng.RandomNumberGenerator, level int, points []components.Point, playerStart components.Point) int {
	table := NewLootTable(s.templates, level)
	if table.Empty() {
		slog.Warn("no templates for level", "level", level)
		return 0
	}
	spawned := 0
	for _, pt := range points {
		if pt == playerStart {
			continue
		}
		tpl, ok := table.Pick(r)
		if !ok {
			continue
		}
		s.CreateFromTemplate(pt, tpl)
		spawned++
	}
	return spawned
}

// CreateFromTemplate creates a monster or item from a template
func (s *EntitySpawner) CreateFromTemplate(pt components.Point, tpl *data.EntityTemplate) ecs.EntityID {
	entity := s.world.CreateEntity()
	id := entity.ID
	s.world.AddComponent(id, components.Position, components.NewPositionComponent(pt))
	s.world.AddComponent(id, components.Renderable, components.NewRenderableComponent(tpl.Rune(), tpl.RGBA()))
	s.world.AddComponent(id, components.Name, components.NewNameComponent(tpl.Name))

	switch tpl.EntityType {
	case data.EntityItem:
		s.world.TagEntity(id, components.TagItem)
	case data.EntityEnemy:
		s.world.TagEntity(id, components.TagEnemy)
		s.world.AddComponent(id, components.FOV, components.NewFOVComponent(monsterVision))
		s.world.AddComponent(id, components.Health, components.NewHealthComponent(tpl.HP))
		ai := tpl.AI
		if ai == "" {
			ai = defaultMonsterAI
		}
		if ai == data.AIRandom {
			s.world.TagEntity(id, components.TagMovingRandomly)
		} else {
			s.world.TagEntity(id, components.TagChasingPlayer)
		}
	}

	for _, p := range tpl.Provides {
		switch p.Kind {
		case data.ProvidesHealing:
			s.world.AddComponent(id, components.ProvidesHealing, &components.ProvidesHealingComponent{Amount: p.Amount})
		case data.ProvidesMagicMap:
			s.world.TagEntity(id, components.TagProvidesDungeonMap)
		}
	}

	if tpl.BaseDamage != 0 {
		s.world.AddComponent(id, components.Damage, &components.DamageComponent{Amount: tpl.BaseDamage})
		if tpl.EntityType == data.EntityItem {
			s.world.TagEntity(id, components.TagWeapon)
		}
	}
	return id
}
