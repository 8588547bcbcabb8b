package components

import (
	"scavenger-board/ecs"
)

// Define component IDs for the board
const (
	Position ecs.ComponentID = iota
	Resource                 // Visual variant id consumed by renderers
	Destructible             // Durability of inner walls
	DamageSprite             // Sprite shown once a wall is hit
	Food                     // Reward of a pickup
	AudioPickupSource
	AudioAttackSource
	AudioDeathSource
	AudioWalkSource
	TurnBased   // Turn order and delay
	FoodDamager // Attack strength
	SmoothMove  // Movement tween duration
	GameBoard   // Board dimensions, on the game state entity
	Level       // Current level, on the game state entity
	LevelTransitionDelay
)

// Tags used for lifecycle and role lookups
const (
	// TagDeleteOnExit marks entities destroyed on the next level transition
	TagDeleteOnExit = "delete_on_exit"
	// TagGameBoardElement marks dynamically placed objects, never floor or border tiles
	TagGameBoardElement = "game_board_element"
	// TagBoardTile marks floor and outer wall tiles
	TagBoardTile = "board_tile"

	TagExit            = "exit"
	TagControllable    = "controllable"
	TagActiveTurnBased = "active_turn_based"
	TagAIMove          = "ai_move"
	TagAIMoveTarget    = "ai_move_target"

	// TagGameState marks the singleton carrying GameBoard and Level
	TagGameState = "game_state"
)
