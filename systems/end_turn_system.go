package systems

import (
	"dungeon-crawl/components"
	"dungeon-crawl/ecs"
)

// EndTurnSystem decides the next phase once a pipeline has run
type EndTurnSystem struct{}

// NewEndTurnSystem creates a new end of turn evaluator
func NewEndTurnSystem() *EndTurnSystem {
	return &EndTurnSystem{}
}

// Update advances res.TurnState. Checks run in a fixed order: death first,
// then the amulet, then the exit stairs.
func (s *EndTurnSystem) Update(world *ecs.World, res *Resources, commands *ecs.CommandBuffer) {
	var next TurnState
	switch res.TurnState {
	case PlayerTurn:
		next = MonsterTurn
	case MonsterTurn:
		next = AwaitingInput
	default:
		return
	}

	player := FindPlayer(world)
	pos, ok := positionOf(world, player)
	if !ok {
		panic("systems: player has no position")
	}

	switch {
	case playerDead(world, player):
		next = GameOver
	case onAmulet(world, pos.Point()):
		next = Victory
	case res.Map.Tile(pos.Point()) == components.TileExit:
		next = NextLevel
	}
	res.TurnState = next
}

func playerDead(world *ecs.World, player ecs.EntityID) bool {
	health, ok := healthOf(world, player)
	return ok && health.Current < 1
}

func onAmulet(world *ecs.World, pt components.Point) bool {
	for _, id := range world.GetEntitiesWithTag(components.TagAmulet) {
		if pos, ok := positionOf(world, id); ok && pos.Point() == pt {
			return true
		}
	}
	return false
}
