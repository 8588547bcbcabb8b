package ecs

import "testing"

type testEvent struct {
	n int
}

func (e testEvent) Type() EventType { return "test" }

func TestEmitDispatchesImmediately(t *testing.T) {
	em := NewEventManager()
	got := 0
	em.Subscribe("test", func(ev Event) { got += ev.(testEvent).n })

	em.Emit(testEvent{n: 3})
	if got != 3 {
		t.Errorf("Expected 3, got %d", got)
	}
}

// Test queued events are delivered in FIFO order on flush
func TestQueueFlushOrder(t *testing.T) {
	em := NewEventManager()
	var order []int
	em.Subscribe("test", func(ev Event) { order = append(order, ev.(testEvent).n) })

	em.Queue(testEvent{n: 1})
	em.Queue(testEvent{n: 2})
	em.Queue(testEvent{n: 3})

	if em.Pending() != 3 {
		t.Fatalf("Expected 3 pending, got %d", em.Pending())
	}
	if n := em.Flush(); n != 3 {
		t.Errorf("Expected flush of 3, got %d", n)
	}
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("Expected [1 2 3], got %v", order)
	}
	if em.Flush() != 0 {
		t.Errorf("Expected empty second flush")
	}
}

// Test events queued by a handler wait for the next flush
func TestQueueDuringFlushDeferred(t *testing.T) {
	em := NewEventManager()
	calls := 0
	em.Subscribe("test", func(ev Event) {
		calls++
		if ev.(testEvent).n == 1 {
			em.Queue(testEvent{n: 2})
		}
	})

	em.Queue(testEvent{n: 1})
	em.Flush()
	if calls != 1 {
		t.Fatalf("Expected 1 call in first flush, got %d", calls)
	}
	em.Flush()
	if calls != 2 {
		t.Errorf("Expected 2 calls after second flush, got %d", calls)
	}
	if em.HandlerCount("test") != 1 {
		t.Errorf("Expected 1 handler, got %d", em.HandlerCount("test"))
	}
}
