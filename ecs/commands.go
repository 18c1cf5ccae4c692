package ecs

import "sort"

// CommandBuffer queues structural changes (spawn, despawn, add/remove
// component, tag) so a system can issue them while iterating a query.
// Flush applies them in the order they were recorded.
type CommandBuffer struct {
	commands []func(*World)
}

// NewCommandBuffer creates an empty command buffer
func NewCommandBuffer() *CommandBuffer {
	return &CommandBuffer{}
}

// Spawn queues creation of an entity with the given components and tags
func (cb *CommandBuffer) Spawn(comps map[ComponentID]Component, tags ...string) {
	cb.commands = append(cb.commands, func(w *World) {
		entity := w.CreateEntity()
		// Apply in id order so flushing is reproducible
		ids := make([]ComponentID, 0, len(comps))
		for id := range comps {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		for _, id := range ids {
			w.AddComponent(entity.ID, id, comps[id])
		}
		for _, tag := range tags {
			w.TagEntity(entity.ID, tag)
		}
	})
}

// Despawn queues removal of an entity. Despawning twice is harmless.
func (cb *CommandBuffer) Despawn(id EntityID) {
	cb.commands = append(cb.commands, func(w *World) {
		w.RemoveEntity(id)
	})
}

// AddComponent queues adding or replacing a component
func (cb *CommandBuffer) AddComponent(id EntityID, componentID ComponentID, component Component) {
	cb.commands = append(cb.commands, func(w *World) {
		w.AddComponent(id, componentID, component)
	})
}

// RemoveComponent queues removal of a component
func (cb *CommandBuffer) RemoveComponent(id EntityID, componentID ComponentID) {
	cb.commands = append(cb.commands, func(w *World) {
		w.RemoveComponent(id, componentID)
	})
}

// Tag queues tagging an entity
func (cb *CommandBuffer) Tag(id EntityID, tag string) {
	cb.commands = append(cb.commands, func(w *World) {
		w.TagEntity(id, tag)
	})
}

// Len returns the number of queued commands
func (cb *CommandBuffer) Len() int {
	return len(cb.commands)
}

// Flush applies every queued command to the world and empties the buffer
func (cb *CommandBuffer) Flush(w *World) {
	for i, cmd := range cb.commands {
		cmd(w)
		cb.commands[i] = nil
	}
	cb.commands = cb.commands[:0]
}
