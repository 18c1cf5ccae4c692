package systems

import (
	"dungeon-crawl/components"
	"dungeon-crawl/ecs"
)

var cardinals = [4]components.Point{West, East, North, South}

// RandomMoveSystem makes wandering monsters step in a random direction
type RandomMoveSystem struct{}

// NewRandomMoveSystem creates a new random movement AI system
func NewRandomMoveSystem() *RandomMoveSystem {
	return &RandomMoveSystem{}
}

// Update queues one intent per wandering monster
func (s *RandomMoveSystem) Update(world *ecs.World, res *Resources, commands *ecs.CommandBuffer) {
	wanderers := world.GetEntitiesWithTag(components.TagMovingRandomly)
	if len(wanderers) == 0 {
		return
	}
	player := FindPlayer(world)
	occupied := occupants(world)

	for _, id := range wanderers {
		pos, ok := positionOf(world, id)
		if !ok {
			continue
		}
		dest := pos.Point().Add(cardinals[res.RNG.Range(0, 4)])
		actOn(commands, occupied, player, id, dest)
	}
}
