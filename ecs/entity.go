package ecs

// EntityID is a unique identifier for an entity within one World.
// IDs are handed out in increasing order and never reused, so sorting by id
// gives creation order.
type EntityID uint64

// Entity represents a game object in the ECS architecture
type Entity struct {
	ID EntityID
	// Tags are marker flags without data (e.g. "enemy", "item")
	Tags map[string]bool
}

func newEntity(id EntityID) *Entity {
	return &Entity{
		ID:   id,
		Tags: make(map[string]bool),
	}
}
