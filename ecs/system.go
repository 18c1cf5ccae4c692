package ecs

// System processes entities once per pass. R carries the shared resources
// (map, camera, turn state, RNG...) handed to every system explicitly.
type System[R any] interface {
	// Update reads the world and queues structural changes on commands
	Update(world *World, res R, commands *CommandBuffer)
}

// Schedule is an ordered list of systems. The command buffer is flushed
// after each system, so a system sees the structural changes of the
// systems before it and none of its own until it returns.
type Schedule[R any] struct {
	systems  []System[R]
	commands *CommandBuffer
}

// NewSchedule creates a schedule running systems in the given order
func NewSchedule[R any](systems ...System[R]) *Schedule[R] {
	return &Schedule[R]{
		systems:  systems,
		commands: NewCommandBuffer(),
	}
}

// Run executes every system in order
func (s *Schedule[R]) Run(world *World, res R) {
	for _, system := range s.systems {
		system.Update(world, res, s.commands)
		s.commands.Flush(world)
	}
}
