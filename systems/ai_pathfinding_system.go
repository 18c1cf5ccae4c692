package systems

import (
	"dungeon-crawl/components"
	"dungeon-crawl/ecs"
	"dungeon-crawl/navigation"
)

const (
	chaseCutoff = 1024
	// Closer than this a chaser attacks instead of stepping
	meleeRange = 1.2
)

// ChasingSystem walks every chasing monster one step along the shortest
// path to the player, or attacks when adjacent
type ChasingSystem struct{}

// NewChasingSystem creates a new chasing AI system
func NewChasingSystem() *ChasingSystem {
	return &ChasingSystem{}
}

// Update queues one intent per chasing monster
func (s *ChasingSystem) Update(world *ecs.World, res *Resources, commands *ecs.CommandBuffer) {
	chasers := world.GetEntitiesWithTag(components.TagChasingPlayer)
	if len(chasers) == 0 {
		return
	}
	player := FindPlayer(world)
	playerPos, ok := positionOf(world, player)
	if !ok {
		return
	}
	target := playerPos.Point()
	field := navigation.New(res.Map, []components.Point{target}, chaseCutoff)
	occupied := occupants(world)

	for _, id := range chasers {
		pos, ok := positionOf(world, id)
		if !ok {
			continue
		}
		from := pos.Point()

		dest := target
		if distance(from, target) > meleeRange {
			next, found := field.LowestExit(from)
			if !found {
				continue
			}
			dest = next
		}
		actOn(commands, occupied, player, id, dest)
	}
}

// actOn attacks the player if it stands on dest, holds still if another
// creature does, and moves otherwise
func actOn(commands *ecs.CommandBuffer, occupied map[components.Point]ecs.EntityID, player, mover ecs.EntityID, dest components.Point) {
	if victim, taken := occupied[dest]; taken {
		if victim == player {
			queueAttack(commands, mover, player)
		}
		return
	}
	queueMove(commands, mover, dest)
}
