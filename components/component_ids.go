package components

import (
	"dungeon-crawl/ecs"
)

// Define component IDs for our game
const (
	Position ecs.ComponentID = iota
	Renderable
	Name
	Health
	FOV
	Damage
	Player
	Carried          // Item held by another entity
	ProvidesHealing  // Consumable restores health
	WantsToMove      // Movement intent, consumed by the movement system
	WantsToAttack    // Attack intent, consumed by the combat system
	ActivateItem     // Item use intent, consumed by the item system
)

// Tags mark entities that carry no data of their own
const (
	TagPlayer             = "player"
	TagEnemy              = "enemy"
	TagItem               = "item"
	TagWeapon             = "weapon"
	TagAmulet             = "amulet_of_yala"
	TagChasingPlayer      = "chasing_player"
	TagMovingRandomly     = "moving_randomly"
	TagProvidesDungeonMap = "provides_dungeon_map"
)
