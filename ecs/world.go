package ecs

import "sort"

// World manages all entities and components
type World struct {
	nextID   EntityID
	entities map[EntityID]*Entity
	// One sparse set per component type
	stores map[ComponentID]*componentStore
	// Tag-based entity lookup for quick access
	entityTags map[string]map[EntityID]bool
	// Event manager for system communication
	eventManager *EventManager
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	return &World{
		entities:     make(map[EntityID]*Entity),
		stores:       make(map[ComponentID]*componentStore),
		entityTags:   make(map[string]map[EntityID]bool),
		eventManager: NewEventManager(),
	}
}

// CreateEntity creates a new entity and adds it to the world.
// Systems must not call this while iterating; use a CommandBuffer instead.
func (w *World) CreateEntity() *Entity {
	w.nextID++
	entity := newEntity(w.nextID)
	w.entities[entity.ID] = entity
	return entity
}

// RemoveEntity removes an entity and all its components from the world
func (w *World) RemoveEntity(entityID EntityID) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}
	for tag := range entity.Tags {
		delete(w.entityTags[tag], entityID)
		if len(w.entityTags[tag]) == 0 {
			delete(w.entityTags, tag)
		}
	}
	for _, store := range w.stores {
		store.remove(entityID)
	}
	delete(w.entities, entityID)
}

// IsAlive reports whether the entity exists
func (w *World) IsAlive(entityID EntityID) bool {
	_, ok := w.entities[entityID]
	return ok
}

// AddComponent adds or replaces a component on an entity.
// Adding to a removed entity is a no-op.
func (w *World) AddComponent(entityID EntityID, componentID ComponentID, component Component) {
	if _, exists := w.entities[entityID]; !exists {
		return
	}
	store, ok := w.stores[componentID]
	if !ok {
		store = newComponentStore()
		w.stores[componentID] = store
	}
	store.set(entityID, component)
}

// GetComponent retrieves a component from an entity
func (w *World) GetComponent(entityID EntityID, componentID ComponentID) (Component, bool) {
	store, ok := w.stores[componentID]
	if !ok {
		return nil, false
	}
	return store.get(entityID)
}

// HasComponent checks if an entity has a specific component
func (w *World) HasComponent(entityID EntityID, componentID ComponentID) bool {
	store, ok := w.stores[componentID]
	return ok && store.has(entityID)
}

// RemoveComponent removes a component from an entity
func (w *World) RemoveComponent(entityID EntityID, componentID ComponentID) {
	if store, ok := w.stores[componentID]; ok {
		store.remove(entityID)
	}
}

// TagEntity adds a tag to an entity and updates the tag lookup
func (w *World) TagEntity(entityID EntityID, tag string) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}
	entity.Tags[tag] = true
	if _, exists := w.entityTags[tag]; !exists {
		w.entityTags[tag] = make(map[EntityID]bool)
	}
	w.entityTags[tag][entityID] = true
}

// HasTag reports whether the entity carries the tag
func (w *World) HasTag(entityID EntityID, tag string) bool {
	return w.entityTags[tag][entityID]
}

// GetEntitiesWithTag returns all entities with a specific tag, ordered by id
func (w *World) GetEntitiesWithTag(tag string) []EntityID {
	ids := make([]EntityID, 0, len(w.entityTags[tag]))
	for id := range w.entityTags[tag] {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

// GetEntitiesWithComponent returns all entities that have a specific
// component, ordered by id
func (w *World) GetEntitiesWithComponent(componentID ComponentID) []EntityID {
	store, ok := w.stores[componentID]
	if !ok {
		return nil
	}
	ids := make([]EntityID, len(store.entities))
	copy(ids, store.entities)
	sortIDs(ids)
	return ids
}

// Query returns the entities holding every listed component, ordered by id
func (w *World) Query(first ComponentID, rest ...ComponentID) []EntityID {
	candidates := w.GetEntitiesWithComponent(first)
	if len(rest) == 0 {
		return candidates
	}
	out := candidates[:0]
	for _, id := range candidates {
		keep := true
		for _, c := range rest {
			if !w.HasComponent(id, c) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, id)
		}
	}
	return out
}

// GetAllEntities returns every live entity id, ordered by id
func (w *World) GetAllEntities() []EntityID {
	ids := make([]EntityID, 0, len(w.entities))
	for id := range w.entities {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.entities)
}

// CountComponent returns how many entities hold the component
func (w *World) CountComponent(componentID ComponentID) int {
	if store, ok := w.stores[componentID]; ok {
		return store.len()
	}
	return 0
}

// GetEventManager returns the world's event manager
func (w *World) GetEventManager() *EventManager {
	return w.eventManager
}

// EmitEvent is a convenience method to emit an event
func (w *World) EmitEvent(event Event) {
	w.eventManager.Emit(event)
}

func sortIDs(ids []EntityID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
