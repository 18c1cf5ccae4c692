package ecs

// ComponentID is a unique identifier for component types
type ComponentID uint

// Component is the base interface for all components
type Component interface{}

// componentStore is a sparse set of one component type keyed by entity.
// Dense slices keep iteration order stable; removal swaps the last element
// into the hole.
type componentStore struct {
	index    map[EntityID]int
	entities []EntityID
	values   []Component
}

func newComponentStore() *componentStore {
	return &componentStore{index: make(map[EntityID]int)}
}

func (s *componentStore) get(id EntityID) (Component, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.values[i], true
}

func (s *componentStore) has(id EntityID) bool {
	_, ok := s.index[id]
	return ok
}

func (s *componentStore) set(id EntityID, c Component) {
	if i, ok := s.index[id]; ok {
		s.values[i] = c
		return
	}
	s.index[id] = len(s.entities)
	s.entities = append(s.entities, id)
	s.values = append(s.values, c)
}

func (s *componentStore) remove(id EntityID) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	last := len(s.entities) - 1
	if i != last {
		s.entities[i] = s.entities[last]
		s.values[i] = s.values[last]
		s.index[s.entities[i]] = i
	}
	s.entities = s.entities[:last]
	s.values[last] = nil
	s.values = s.values[:last]
	delete(s.index, id)
}

func (s *componentStore) len() int {
	return len(s.entities)
}
