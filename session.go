package main

import (
	"fmt"

	"scavenger-board/config"
	"scavenger-board/ecs"
	"scavenger-board/generation"
	"scavenger-board/spawners"
	"scavenger-board/systems"
)

// Session owns the world and the systems that build boards in it. Both the
// window and the terminal viewer drive one.
type Session struct {
	world       *ecs.World
	spawner     *spawners.EntitySpawner
	generator   *generation.BoardGenerator
	levelSystem *systems.LevelSystem
	transitions *systems.TransitionDelaySystem
	logMessage  func(string)
}

// NewSession loads the board configuration and wires the systems. The first
// transition is started right away, so level 1 appears once it runs out.
func NewSession(cfg config.Config, logFunc func(string)) (*Session, error) {
	board, err := cfg.Board()
	if err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	spawner := spawners.NewEntitySpawner(world, logFunc)
	generator := generation.NewBoardGenerator(spawner, board, cfg.NewRand(), logFunc)

	levelSystem := systems.NewLevelSystem(generator, spawner, logFunc)
	transitions := systems.NewTransitionDelaySystem(spawner, cfg.TransitionDelay)

	// Delays are counted down before the level system looks at the triggers
	world.AddSystem(transitions)
	world.AddSystem(levelSystem)

	s := &Session{
		world:       world,
		spawner:     spawner,
		generator:   generator,
		levelSystem: levelSystem,
		transitions: transitions,
		logMessage:  logFunc,
	}

	levelSystem.Initialize(world)
	world.GetEventManager().Subscribe(systems.EventBoardBuilt, s.onBoardBuilt)
	world.GetEventManager().Subscribe(systems.EventBuildFailed, s.onBuildFailed)

	transitions.Start()
	return s, nil
}

// World returns the session's world
func (s *Session) World() *ecs.World {
	return s.world
}

// LevelSystem returns the system owning the level state
func (s *Session) LevelSystem() *systems.LevelSystem {
	return s.levelSystem
}

// Transitions returns the transition delay system
func (s *Session) Transitions() *systems.TransitionDelaySystem {
	return s.transitions
}

// NextLevel moves to the next level and starts its transition
func (s *Session) NextLevel() {
	if s.transitions.Active(s.world) {
		return
	}
	level := s.levelSystem.AdvanceLevel(s.world)
	s.log(fmt.Sprintf("Day %d", level))
	s.transitions.Start()
}

// Replay rebuilds the current level after a transition
func (s *Session) Replay() {
	if s.transitions.Active(s.world) {
		return
	}
	s.transitions.Start()
}

// Update advances the world by dt seconds
func (s *Session) Update(dt float64) error {
	return s.world.Update(dt)
}

func (s *Session) onBoardBuilt(event ecs.Event) {
	built := event.(systems.BoardBuiltEvent)
	s.log(fmt.Sprintf("Board ready: level %d, %d enemies", built.Report.Level, len(built.Report.Enemies)))
}

func (s *Session) onBuildFailed(event ecs.Event) {
	failed := event.(systems.BuildFailedEvent)
	systems.GetMessageLog().AddAlert(fmt.Sprintf("Level %d failed: %v", failed.Level, failed.Err))
}

func (s *Session) log(msg string) {
	if s.logMessage != nil {
		s.logMessage(msg)
	}
}
