package systems

import (
	"testing"

	"scavenger-board/components"
	"scavenger-board/ecs"
	"scavenger-board/spawners"
)

func TestTransitionDelayCountsDown(t *testing.T) {
	world := ecs.NewWorld()
	spawner := spawners.NewEntitySpawner(world, nil)
	transitions := NewTransitionDelaySystem(spawner, 1.0)
	world.AddSystem(transitions)

	delay := transitions.Start()
	if !transitions.Active(world) {
		t.Fatalf("Expected an active transition")
	}

	if err := world.Update(0.5); err != nil {
		t.Fatal(err)
	}
	comp, ok := world.GetComponent(delay.ID, components.LevelTransitionDelay)
	if !ok {
		t.Fatalf("Expected delay still running")
	}
	if remaining := comp.(*components.LevelTransitionDelayComponent).Remaining; remaining != 0.5 {
		t.Errorf("Expected 0.5s left, got %v", remaining)
	}

	if err := world.Update(0.5); err != nil {
		t.Fatal(err)
	}
	if transitions.Active(world) || world.GetEntity(delay.ID) != nil {
		t.Errorf("Expected delay entity removed")
	}
}

// Test the full runtime loop: delay ends, board appears on the next tick
func TestTransitionStartsBoard(t *testing.T) {
	world, levelSystem, spawner := newRealLevelSystem(7)
	transitions := NewTransitionDelaySystem(spawner, 0.1)
	world.AddSystem(transitions)
	levelSystem.Initialize(world)

	transitions.Start()

	// Tick 1 expires the delay, tick 2 flushes the removal and builds
	for i := 0; i < 2; i++ {
		if err := world.Update(0.2); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}

	if got := world.CountWithTag(components.TagExit); got != 1 {
		t.Errorf("Expected a board with one exit, got %d", got)
	}
	if levelSystem.LastReport().Level != 1 {
		t.Errorf("Expected level 1 board, got %d", levelSystem.LastReport().Level)
	}
}
