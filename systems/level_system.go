package systems

import (
	"fmt"

	"scavenger-board/components"
	"scavenger-board/ecs"
	"scavenger-board/generation"
	"scavenger-board/spawners"
)

// LevelSystem tears the board down and builds the next one each time a level
// transition delay ends.
//
// The delay ending is observed as the removal of a LevelTransitionDelay
// component. Removals are only counted while events are flushed; the rebuild
// runs afterwards in Update, so any number of removals in one tick gives a
// single board.
type LevelSystem struct {
	builder     generation.BoardBuilder
	spawner     *spawners.EntitySpawner
	logMessage  func(string)
	initialized bool
	stateID     ecs.EntityID
	triggers    int // Delay removals seen since the last rebuild
	lastReport  generation.BuildReport
}

// NewLevelSystem creates a new level system
func NewLevelSystem(builder generation.BoardBuilder, spawner *spawners.EntitySpawner, logFunc func(string)) *LevelSystem {
	return &LevelSystem{
		builder:    builder,
		spawner:    spawner,
		logMessage: logFunc,
	}
}

// Initialize creates the game state (board size, level 1) and subscribes to
// component removals. Calling it again has no effect.
func (s *LevelSystem) Initialize(world *ecs.World) {
	if s.initialized {
		return
	}

	columns, rows := s.builder.Dimensions()
	s.stateID = s.spawner.CreateGameState(columns, rows, 1).ID
	s.log(fmt.Sprintf("Create GameBoard %dx%d", columns, rows))

	world.GetEventManager().Subscribe(ecs.EventComponentRemoved, func(event ecs.Event) {
		removed := event.(ecs.ComponentRemovedEvent)
		if removed.ComponentID == components.LevelTransitionDelay {
			s.triggers++
		}
	})

	s.initialized = true
}

// Update rebuilds the board once if any transition ended since the last tick
func (s *LevelSystem) Update(world *ecs.World, dt float64) error {
	if !s.initialized {
		s.Initialize(world)
	}
	if s.triggers == 0 {
		return nil
	}

	triggers := s.triggers
	s.triggers = 0

	report, err := s.Rebuild(world)
	if err != nil {
		return err
	}

	world.QueueEvent(BoardBuiltEvent{Report: report, Triggers: triggers})
	return nil
}

// PendingTriggers returns the transition ends waiting for the next Update
func (s *LevelSystem) PendingTriggers() int {
	return s.triggers
}

// Rebuild destroys every delete_on_exit entity and then builds the board for
// the current level. Teardown always completes before generation starts.
func (s *LevelSystem) Rebuild(world *ecs.World) (generation.BuildReport, error) {
	if !s.initialized {
		s.Initialize(world)
	}

	// delete previous elements
	stale := world.GetEntitiesWithTag(components.TagDeleteOnExit)
	for _, entity := range stale {
		world.RemoveEntity(entity.ID)
	}

	level := s.Level(world)
	report, err := s.builder.Build(level)
	if err != nil {
		world.EmitEvent(BuildFailedEvent{Level: level, Err: err})
		return report, fmt.Errorf("rebuild level %d: %w", level, err)
	}

	s.lastReport = report
	return report, nil
}

// LastReport returns the report of the last successful build
func (s *LevelSystem) LastReport() generation.BuildReport {
	return s.lastReport
}

// Level returns the current level, 1 before initialization
func (s *LevelSystem) Level(world *ecs.World) int {
	if comp, ok := world.GetComponent(s.stateID, components.Level); ok {
		return comp.(*components.LevelComponent).Level
	}
	return 1
}

// SetLevel changes the level the next board is built for
func (s *LevelSystem) SetLevel(world *ecs.World, level int) {
	if comp, ok := world.GetComponent(s.stateID, components.Level); ok {
		comp.(*components.LevelComponent).Level = level
	}
}

// AdvanceLevel moves to the next level and returns it
func (s *LevelSystem) AdvanceLevel(world *ecs.World) int {
	level := s.Level(world) + 1
	s.SetLevel(world, level)
	return level
}

// Board returns the board size held by the game state
func (s *LevelSystem) Board(world *ecs.World) (columns, rows int) {
	if comp, ok := world.GetComponent(s.stateID, components.GameBoard); ok {
		board := comp.(*components.GameBoardComponent)
		return board.Columns, board.Rows
	}
	return s.builder.Dimensions()
}

func (s *LevelSystem) log(msg string) {
	if s.logMessage != nil {
		s.logMessage(msg)
	}
}
