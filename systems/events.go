package systems

import (
	"dungeon-crawl/ecs"
)

// Event type constants
const (
	EventCombat     ecs.EventType = "combat"
	EventDeath      ecs.EventType = "death"
	EventItemPickup ecs.EventType = "item_pickup"
	EventItemUsed   ecs.EventType = "item_used"
	EventLevel      ecs.EventType = "level"
)

// CombatEvent is emitted for every resolved attack
type CombatEvent struct {
	AttackerID   ecs.EntityID
	DefenderID   ecs.EntityID
	AttackerName string
	DefenderName string
	Damage       int
	HealthLeft   int
}

// Type returns the event type
func (e CombatEvent) Type() ecs.EventType {
	return EventCombat
}

// DeathEvent is emitted when a monster is killed
type DeathEvent struct {
	EntityID ecs.EntityID // Entity that died
	KillerID ecs.EntityID // Entity that caused the death
	Name     string
}

// Type returns the event type
func (e DeathEvent) Type() ecs.EventType {
	return EventDeath
}

// ItemPickupEvent is emitted when an entity picks up an item
type ItemPickupEvent struct {
	EntityID ecs.EntityID // Entity picking up the item
	ItemID   ecs.EntityID // Item being picked up
	ItemName string
	Replaced []string // Weapons dropped in favour of this one
}

// Type returns the event type
func (e ItemPickupEvent) Type() ecs.EventType {
	return EventItemPickup
}

// ItemUsedEvent is emitted when an item is consumed
type ItemUsedEvent struct {
	UserID   ecs.EntityID
	ItemID   ecs.EntityID
	ItemName string
	Healed   int
	Revealed bool
}

// Type returns the event type
func (e ItemUsedEvent) Type() ecs.EventType {
	return EventItemUsed
}

// LevelEvent is emitted when the player enters a new level
type LevelEvent struct {
	Level int
	Final bool
}

// Type returns the event type
func (e LevelEvent) Type() ecs.EventType {
	return EventLevel
}
