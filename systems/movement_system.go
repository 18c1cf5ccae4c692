package systems

import (
	"dungeon-crawl/components"
	"dungeon-crawl/ecs"
)

// MovementSystem applies movement intents
type MovementSystem struct{}

// NewMovementSystem creates a new movement system
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Update commits every valid WantsToMove and removes all of them
func (s *MovementSystem) Update(world *ecs.World, res *Resources, commands *ecs.CommandBuffer) {
	for _, msg := range world.GetEntitiesWithComponent(components.WantsToMove) {
		comp, _ := world.GetComponent(msg, components.WantsToMove)
		want := comp.(*components.WantsToMoveComponent)

		if world.IsAlive(want.Entity) && res.Map.CanEnterTile(want.Destination) {
			commands.AddComponent(want.Entity, components.Position, components.NewPositionComponent(want.Destination))

			if fovComp, ok := world.GetComponent(want.Entity, components.FOV); ok {
				fov := fovComp.(*components.FOVComponent)
				fov.Dirty = true

				if isPlayer(world, want.Entity) {
					if res.Camera != nil {
						res.Camera.OnPlayerMove(want.Destination)
					}
					fov.VisibleTiles.Each(res.Map.Reveal)
				}
			}
		}

		commands.Despawn(msg)
	}
}
