package ecs

import (
	"cmp"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// World manages all entities and components
type World struct {
	entities map[EntityID]*Entity
	// Store components as map[EntityID]map[ComponentID]Component
	components map[EntityID]ComponentMap
	// Systems run in registration order
	systems []System
	// Tag-based entity lookup for quick access
	entityTags map[string]mapset.Set[EntityID]
	// Event manager for system communication
	eventManager *EventManager
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	return &World{
		entities:     make(map[EntityID]*Entity),
		components:   make(map[EntityID]ComponentMap),
		systems:      make([]System, 0),
		entityTags:   make(map[string]mapset.Set[EntityID]),
		eventManager: NewEventManager(),
	}
}

// CreateEntity creates a new entity and adds it to the world
func (w *World) CreateEntity() *Entity {
	entity := NewEntity()
	w.entities[entity.ID] = entity
	w.components[entity.ID] = make(ComponentMap)
	return entity
}

// RemoveEntity removes an entity and all its components from the world.
// A ComponentRemovedEvent is queued for every component the entity carried.
func (w *World) RemoveEntity(entityID EntityID) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}

	for tag := range entity.Tags {
		w.untag(entityID, tag)
	}

	componentMap := w.components[entityID]
	ids := make([]ComponentID, 0, len(componentMap))
	for id := range componentMap {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		w.eventManager.Queue(ComponentRemovedEvent{
			EntityID:    entityID,
			ComponentID: id,
			Component:   componentMap[id],
		})
	}

	delete(w.components, entityID)
	delete(w.entities, entityID)
}

// AddComponent adds a component to an entity, replacing any previous value
func (w *World) AddComponent(entityID EntityID, componentID ComponentID, component Component) {
	if _, exists := w.entities[entityID]; !exists {
		return
	}

	if _, exists := w.components[entityID]; !exists {
		w.components[entityID] = make(ComponentMap)
	}

	w.components[entityID][componentID] = component
}

// GetComponent retrieves a component from an entity
func (w *World) GetComponent(entityID EntityID, componentID ComponentID) (Component, bool) {
	if componentMap, exists := w.components[entityID]; exists {
		component, exists := componentMap[componentID]
		return component, exists
	}
	return nil, false
}

// HasComponent checks if an entity has a specific component
func (w *World) HasComponent(entityID EntityID, componentID ComponentID) bool {
	if componentMap, exists := w.components[entityID]; exists {
		_, exists := componentMap[componentID]
		return exists
	}
	return false
}

// RemoveComponent removes a component from an entity and queues a ComponentRemovedEvent
func (w *World) RemoveComponent(entityID EntityID, componentID ComponentID) {
	componentMap, exists := w.components[entityID]
	if !exists {
		return
	}
	component, exists := componentMap[componentID]
	if !exists {
		return
	}

	delete(componentMap, componentID)
	w.eventManager.Queue(ComponentRemovedEvent{
		EntityID:    entityID,
		ComponentID: componentID,
		Component:   component,
	})
}

// AddSystem adds a system to the world
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
}

// Update flushes the events queued since the last tick and then runs every
// system in order. The first system error stops the tick and is returned.
func (w *World) Update(dt float64) error {
	w.eventManager.Flush()

	for _, system := range w.systems {
		if err := system.Update(w, dt); err != nil {
			return err
		}
	}
	return nil
}

// TagEntity adds a tag to an entity and updates the tag lookup
func (w *World) TagEntity(entityID EntityID, tag string) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}

	entity.AddTag(tag)

	set, exists := w.entityTags[tag]
	if !exists {
		set = mapset.New[EntityID]()
		w.entityTags[tag] = set
	}
	set.Put(entityID)
}

// UntagEntity removes a tag from an entity and the tag lookup
func (w *World) UntagEntity(entityID EntityID, tag string) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}
	entity.RemoveTag(tag)
	w.untag(entityID, tag)
}

func (w *World) untag(entityID EntityID, tag string) {
	set, exists := w.entityTags[tag]
	if !exists {
		return
	}
	set.Remove(entityID)
	if set.Size() == 0 {
		delete(w.entityTags, tag)
	}
}

// GetEntitiesWithTag returns all entities with a specific tag, ordered by ID
func (w *World) GetEntitiesWithTag(tag string) []*Entity {
	entities := make([]*Entity, 0)

	if taggedEntities, exists := w.entityTags[tag]; exists {
		taggedEntities.Each(func(entityID EntityID) {
			if entity, ok := w.entities[entityID]; ok {
				entities = append(entities, entity)
			}
		})
	}

	sortByID(entities)
	return entities
}

// CountWithTag returns how many entities carry a tag
func (w *World) CountWithTag(tag string) int {
	if taggedEntities, exists := w.entityTags[tag]; exists {
		return taggedEntities.Size()
	}
	return 0
}

// GetAllEntities returns a slice of all entities in the world, ordered by ID
func (w *World) GetAllEntities() []*Entity {
	entities := make([]*Entity, 0, len(w.entities))
	for _, entity := range w.entities {
		entities = append(entities, entity)
	}
	sortByID(entities)
	return entities
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.entities)
}

// GetEventManager returns the world's event manager
func (w *World) GetEventManager() *EventManager {
	return w.eventManager
}

// EmitEvent is a convenience method to emit an event immediately
func (w *World) EmitEvent(event Event) {
	w.eventManager.Emit(event)
}

// QueueEvent is a convenience method to queue an event for the next tick
func (w *World) QueueEvent(event Event) {
	w.eventManager.Queue(event)
}

// GetEntity returns an entity by its ID
func (w *World) GetEntity(entityID EntityID) *Entity {
	entity, exists := w.entities[entityID]
	if !exists {
		return nil
	}
	return entity
}

// GetEntitiesWithComponent returns all entities that have a specific component, ordered by ID
func (w *World) GetEntitiesWithComponent(componentID ComponentID) []*Entity {
	entities := make([]*Entity, 0)

	for id, componentMap := range w.components {
		if _, hasComponent := componentMap[componentID]; hasComponent {
			if entity, ok := w.entities[id]; ok {
				entities = append(entities, entity)
			}
		}
	}

	sortByID(entities)
	return entities
}

func sortByID(entities []*Entity) {
	slices.SortFunc(entities, func(a, b *Entity) int {
		return cmp.Compare(a.ID, b.ID)
	})
}
