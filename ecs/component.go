package ecs

// ComponentID is a unique identifier for component types
type ComponentID uint

// Component is the base interface for all components
type Component interface{}

// ComponentMap stores components by their type ID
type ComponentMap map[ComponentID]Component

// EventComponentRemoved is queued whenever a component leaves an entity,
// including when the whole entity is removed from the world
const EventComponentRemoved EventType = "component_removed"

// ComponentRemovedEvent reports a component detached from an entity
type ComponentRemovedEvent struct {
	EntityID    EntityID
	ComponentID ComponentID
	Component   Component // The value that was attached
}

// Type returns the event type
func (e ComponentRemovedEvent) Type() EventType {
	return EventComponentRemoved
}
