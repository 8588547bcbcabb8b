package ecs

// EventType identifies different types of events
type EventType string

// Event interface that all events must implement
type Event interface {
	Type() EventType
}

// EventHandler is a function that processes events
type EventHandler func(Event)

// EventManager manages event subscriptions and dispatches.
//
// Emit dispatches immediately. Queue defers the event until the next Flush,
// which the World runs once at the start of every tick, so every handler sees
// the whole batch of a tick before any system acts on it.
type EventManager struct {
	subscribers map[EventType][]EventHandler
	pending     []Event
}

// NewEventManager creates a new event manager
func NewEventManager() *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]EventHandler),
	}
}

// Subscribe registers a handler for a specific event type
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) {
	em.subscribers[eventType] = append(em.subscribers[eventType], handler)
}

// HandlerCount returns the number of handlers registered for the given type
func (em *EventManager) HandlerCount(eventType EventType) int {
	return len(em.subscribers[eventType])
}

// Emit dispatches an event to all subscribed handlers
func (em *EventManager) Emit(event Event) {
	for _, handler := range em.subscribers[event.Type()] {
		handler(event)
	}
}

// Queue stores an event for the next Flush
func (em *EventManager) Queue(event Event) {
	em.pending = append(em.pending, event)
}

// Pending returns the number of queued events
func (em *EventManager) Pending() int {
	return len(em.pending)
}

// Flush dispatches all queued events in FIFO order.
// Events queued by handlers during the flush wait for the next one.
func (em *EventManager) Flush() int {
	if len(em.pending) == 0 {
		return 0
	}

	batch := em.pending
	em.pending = nil

	for _, event := range batch {
		em.Emit(event)
	}
	return len(batch)
}
