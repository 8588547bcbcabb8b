package ecs

import (
	"errors"
	"testing"
)

const testComponent ComponentID = 1
const otherComponent ComponentID = 2

type countingSystem struct {
	calls int
	err   error
}

func (s *countingSystem) Update(world *World, dt float64) error {
	s.calls++
	return s.err
}

// Test tag lookups stay in sync with entity removal
func TestTagIndexFollowsRemoval(t *testing.T) {
	world := NewWorld()

	a := world.CreateEntity()
	b := world.CreateEntity()
	world.TagEntity(a.ID, "delete_on_exit")
	world.TagEntity(b.ID, "delete_on_exit")

	if got := world.CountWithTag("delete_on_exit"); got != 2 {
		t.Fatalf("Expected 2 tagged entities, got %d", got)
	}

	world.RemoveEntity(a.ID)

	tagged := world.GetEntitiesWithTag("delete_on_exit")
	if len(tagged) != 1 || tagged[0].ID != b.ID {
		t.Errorf("Expected only entity %d tagged, got %v", b.ID, tagged)
	}

	world.RemoveEntity(b.ID)
	if got := world.CountWithTag("delete_on_exit"); got != 0 {
		t.Errorf("Expected 0 tagged entities, got %d", got)
	}
	if world.EntityCount() != 0 {
		t.Errorf("Expected empty world, got %d entities", world.EntityCount())
	}
}

// Test tagged entities come back ordered by ID
func TestGetEntitiesWithTagOrdered(t *testing.T) {
	world := NewWorld()
	for i := 0; i < 20; i++ {
		e := world.CreateEntity()
		world.TagEntity(e.ID, "tile")
	}

	tagged := world.GetEntitiesWithTag("tile")
	for i := 1; i < len(tagged); i++ {
		if tagged[i-1].ID >= tagged[i].ID {
			t.Fatalf("Expected ascending IDs, got %d before %d", tagged[i-1].ID, tagged[i].ID)
		}
	}
}

func TestUntagEntity(t *testing.T) {
	world := NewWorld()
	e := world.CreateEntity()
	world.TagEntity(e.ID, "exit")
	world.UntagEntity(e.ID, "exit")

	if e.HasTag("exit") {
		t.Errorf("Expected tag removed from entity")
	}
	if world.CountWithTag("exit") != 0 {
		t.Errorf("Expected tag removed from index")
	}
}

// Test component removal is reported through the queue, not immediately
func TestRemoveComponentQueuesEvent(t *testing.T) {
	world := NewWorld()
	e := world.CreateEntity()
	world.AddComponent(e.ID, testComponent, "delay")

	var seen []ComponentRemovedEvent
	world.GetEventManager().Subscribe(EventComponentRemoved, func(ev Event) {
		seen = append(seen, ev.(ComponentRemovedEvent))
	})

	world.RemoveComponent(e.ID, testComponent)
	if len(seen) != 0 {
		t.Fatalf("Expected no dispatch before flush, got %d", len(seen))
	}
	if world.HasComponent(e.ID, testComponent) {
		t.Errorf("Expected component to be gone")
	}

	if err := world.Update(0); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(seen) != 1 {
		t.Fatalf("Expected 1 event after flush, got %d", len(seen))
	}
	if seen[0].EntityID != e.ID || seen[0].ComponentID != testComponent || seen[0].Component != "delay" {
		t.Errorf("Unexpected event %+v", seen[0])
	}

	// Removing a missing component is silent
	world.RemoveComponent(e.ID, testComponent)
	if world.GetEventManager().Pending() != 0 {
		t.Errorf("Expected no queued events for a missing component")
	}
}

// Test entity removal reports each component it carried
func TestRemoveEntityQueuesComponentEvents(t *testing.T) {
	world := NewWorld()
	e := world.CreateEntity()
	world.AddComponent(e.ID, otherComponent, 2)
	world.AddComponent(e.ID, testComponent, 1)

	world.RemoveEntity(e.ID)

	var ids []ComponentID
	world.GetEventManager().Subscribe(EventComponentRemoved, func(ev Event) {
		ids = append(ids, ev.(ComponentRemovedEvent).ComponentID)
	})
	world.GetEventManager().Flush()

	if len(ids) != 2 || ids[0] != testComponent || ids[1] != otherComponent {
		t.Errorf("Expected events for components [1 2], got %v", ids)
	}
}

// Test that a failing system stops the tick
func TestUpdateStopsOnSystemError(t *testing.T) {
	world := NewWorld()
	boom := errors.New("boom")
	first := &countingSystem{err: boom}
	second := &countingSystem{}
	world.AddSystem(first)
	world.AddSystem(second)

	err := world.Update(1.0 / 60.0)
	if !errors.Is(err, boom) {
		t.Fatalf("Expected boom, got %v", err)
	}
	if first.calls != 1 || second.calls != 0 {
		t.Errorf("Expected calls 1/0, got %d/%d", first.calls, second.calls)
	}
}

func TestAddComponentIgnoresUnknownEntity(t *testing.T) {
	world := NewWorld()
	world.AddComponent(EntityID(999999), testComponent, 1)
	if world.HasComponent(EntityID(999999), testComponent) {
		t.Errorf("Expected no component on unknown entity")
	}
}
