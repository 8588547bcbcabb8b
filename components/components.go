package components

import (
	"scavenger-board/data"
)

// PositionComponent stores entity position
type PositionComponent struct {
	X, Y int
}

// ResourceComponent names the visual variant of an entity
type ResourceComponent struct {
	Prefab data.Prefab
}

// DestructibleComponent gives an entity hit points
type DestructibleComponent struct {
	HP int
}

// DamageSpriteComponent is the sprite a damaged wall switches to
type DamageSpriteComponent struct {
	Sprite data.Sprite
}

// FoodComponent is the reward granted on pickup
type FoodComponent struct {
	Points int
}

// AudioSourceComponent lists interchangeable cues; one is picked at play time.
// It is stored under AudioPickupSource, AudioAttackSource, AudioDeathSource or AudioWalkSource.
type AudioSourceComponent struct {
	Clips []data.Audio
}

// NewAudioSourceComponent copies the clip list so shared cue tables stay untouched
func NewAudioSourceComponent(clips ...data.Audio) *AudioSourceComponent {
	return &AudioSourceComponent{Clips: append([]data.Audio(nil), clips...)}
}

// TurnBasedComponent orders actors within a turn
type TurnBasedComponent struct {
	Index int     // 0 is the player
	Delay float64 // Seconds between actions
}

// FoodDamagerComponent is the amount of food an attack takes away
type FoodDamagerComponent struct {
	Points int
}

// SmoothMoveComponent is the tween duration of a move in seconds
type SmoothMoveComponent struct {
	Duration float64
}

// GameBoardComponent holds the playable board size
type GameBoardComponent struct {
	Columns int
	Rows    int
}

// LevelComponent holds the current level, starting at 1
type LevelComponent struct {
	Level int
}

// LevelTransitionDelayComponent counts down the pause between levels.
// Its removal is what starts the next board.
type LevelTransitionDelayComponent struct {
	Remaining float64 // Seconds left
}
