package systems

import (
	"dungeon-crawl/components"
	"dungeon-crawl/ecs"
)

// PlayerInputSystem turns the frame's player command into an intent and
// hands the turn to the player pipeline
type PlayerInputSystem struct{}

// NewPlayerInputSystem creates a new player input system
func NewPlayerInputSystem() *PlayerInputSystem {
	return &PlayerInputSystem{}
}

// Update maps res.Input to at most one intent
func (s *PlayerInputSystem) Update(world *ecs.World, res *Resources, commands *ecs.CommandBuffer) {
	if res.Input == nil || res.Input.Kind == ActionRestart {
		return
	}
	player := FindPlayer(world)
	pos, ok := positionOf(world, player)
	if !ok {
		panic("systems: player has no position")
	}

	switch res.Input.Kind {
	case ActionMove:
		dest := pos.Point().Add(res.Input.Direction)
		if enemy, found := enemyAt(world, dest); found {
			queueAttack(commands, player, enemy)
		} else {
			queueMove(commands, player, dest)
		}
	case ActionPickUp:
		pickUp(world, player, pos.Point(), commands)
	case ActionUseItem:
		items := CarriedBy(world, player)
		if res.Input.Slot >= 0 && res.Input.Slot < len(items) {
			commands.Spawn(map[ecs.ComponentID]ecs.Component{
				components.ActivateItem: &components.ActivateItemComponent{User: player, Item: items[res.Input.Slot]},
			})
		}
	case ActionWait:
	}

	res.TurnState = PlayerTurn
}

// enemyAt returns the first enemy standing on pt
func enemyAt(world *ecs.World, pt components.Point) (ecs.EntityID, bool) {
	for _, id := range world.GetEntitiesWithTag(components.TagEnemy) {
		if pos, ok := positionOf(world, id); ok && pos.Point() == pt {
			return id, true
		}
	}
	return 0, false
}
