package ecs

// System defines an interface for processing entities with specific components
type System interface {
	// Update is called each tick to process entities.
	// A returned error aborts the rest of the tick.
	Update(world *World, dt float64) error
}
