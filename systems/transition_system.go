package systems

import (
	"scavenger-board/components"
	"scavenger-board/ecs"
	"scavenger-board/spawners"
)

// TransitionDelaySystem counts level transition delays down and removes the
// delay entity once it runs out, which is what LevelSystem reacts to
type TransitionDelaySystem struct {
	spawner *spawners.EntitySpawner
	delay   float64 // Seconds between completing a level and the next board
}

// NewTransitionDelaySystem creates a new transition delay system
func NewTransitionDelaySystem(spawner *spawners.EntitySpawner, delay float64) *TransitionDelaySystem {
	return &TransitionDelaySystem{
		spawner: spawner,
		delay:   delay,
	}
}

// Start begins a transition delay
func (s *TransitionDelaySystem) Start() *ecs.Entity {
	return s.spawner.CreateTransitionDelay(s.delay)
}

// Active reports whether a transition is counting down
func (s *TransitionDelaySystem) Active(world *ecs.World) bool {
	return len(world.GetEntitiesWithComponent(components.LevelTransitionDelay)) > 0
}

// Update advances every running delay by dt
func (s *TransitionDelaySystem) Update(world *ecs.World, dt float64) error {
	for _, entity := range world.GetEntitiesWithComponent(components.LevelTransitionDelay) {
		comp, _ := world.GetComponent(entity.ID, components.LevelTransitionDelay)
		delay := comp.(*components.LevelTransitionDelayComponent)

		delay.Remaining -= dt
		if delay.Remaining <= 0 {
			world.RemoveEntity(entity.ID)
		}
	}
	return nil
}
