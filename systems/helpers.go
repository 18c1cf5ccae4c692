package systems

import (
	"math"
	"strconv"

	"dungeon-crawl/components"
	"dungeon-crawl/ecs"
)

// FindPlayer returns the player entity. A world without one is a bug.
func FindPlayer(world *ecs.World) ecs.EntityID {
	players := world.GetEntitiesWithTag(components.TagPlayer)
	if len(players) == 0 {
		panic("systems: no player entity")
	}
	return players[0]
}

// isPlayer checks whether an entity is the player
func isPlayer(world *ecs.World, entityID ecs.EntityID) bool {
	return world.HasTag(entityID, components.TagPlayer)
}

// positionOf returns an entity's position, if it has one
func positionOf(world *ecs.World, entityID ecs.EntityID) (*components.PositionComponent, bool) {
	comp, ok := world.GetComponent(entityID, components.Position)
	if !ok {
		return nil, false
	}
	return comp.(*components.PositionComponent), true
}

// healthOf returns an entity's health, if it has one
func healthOf(world *ecs.World, entityID ecs.EntityID) (*components.HealthComponent, bool) {
	comp, ok := world.GetComponent(entityID, components.Health)
	if !ok {
		return nil, false
	}
	return comp.(*components.HealthComponent), true
}

// damageOf returns the damage an entity deals or adds, 0 when it has none
func damageOf(world *ecs.World, entityID ecs.EntityID) int {
	comp, ok := world.GetComponent(entityID, components.Damage)
	if !ok {
		return 0
	}
	return comp.(*components.DamageComponent).Amount
}

// getEntityName returns an entity's display name
func getEntityName(world *ecs.World, entityID ecs.EntityID) string {
	if isPlayer(world, entityID) {
		return "Player"
	}
	if comp, ok := world.GetComponent(entityID, components.Name); ok {
		return comp.(*components.NameComponent).Name
	}
	return "Entity #" + strconv.FormatUint(uint64(entityID), 10)
}

// CarriedBy lists the items owner carries, ordered by id
func CarriedBy(world *ecs.World, owner ecs.EntityID) []ecs.EntityID {
	var items []ecs.EntityID
	for _, id := range world.GetEntitiesWithComponent(components.Carried) {
		comp, _ := world.GetComponent(id, components.Carried)
		if comp.(*components.CarriedComponent).Owner == owner {
			items = append(items, id)
		}
	}
	return items
}

// occupants maps each tile to the lowest-id entity with health standing on
// it. Positions only change at command flush, so the snapshot holds for
// the rest of a system pass.
func occupants(world *ecs.World) map[components.Point]ecs.EntityID {
	out := make(map[components.Point]ecs.EntityID)
	for _, id := range world.Query(components.Position, components.Health) {
		pos, _ := positionOf(world, id)
		if _, taken := out[pos.Point()]; !taken {
			out[pos.Point()] = id
		}
	}
	return out
}

// distance is the straight-line distance between two tiles
func distance(a, b components.Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// queueMove spawns a movement intent
func queueMove(commands *ecs.CommandBuffer, entity ecs.EntityID, dest components.Point) {
	commands.Spawn(map[ecs.ComponentID]ecs.Component{
		components.WantsToMove: &components.WantsToMoveComponent{Entity: entity, Destination: dest},
	})
}

// queueAttack spawns an attack intent
func queueAttack(commands *ecs.CommandBuffer, attacker, victim ecs.EntityID) {
	commands.Spawn(map[ecs.ComponentID]ecs.Component{
		components.WantsToAttack: &components.WantsToAttackComponent{Attacker: attacker, Victim: victim},
	})
}
