package systems

import (
	"scavenger-board/ecs"
	"scavenger-board/generation"
)

// Event type constants
const (
	EventBoardBuilt  ecs.EventType = "board_built"
	EventBuildFailed ecs.EventType = "build_failed"
)

// BoardBuiltEvent is emitted after a new board is in place
type BoardBuiltEvent struct {
	Report   generation.BuildReport
	Triggers int // Transition triggers folded into this build
}

// Type returns the event type
func (e BoardBuiltEvent) Type() ecs.EventType {
	return EventBoardBuilt
}

// BuildFailedEvent is emitted when a rebuild aborts. The board is left incomplete.
type BuildFailedEvent struct {
	Level int
	Err   error
}

// Type returns the event type
func (e BuildFailedEvent) Type() ecs.EventType {
	return EventBuildFailed
}
