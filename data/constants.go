package data

// Gameplay values shared with the turn and combat subsystems
const (
	FoodPoints = 10
	SodaPoints = 20

	Enemy1Damage = 10
	Enemy2Damage = 20

	// WallHitPoints is the durability of every inner wall
	WallHitPoints = 4

	// MoveDelay is the turn delay and smooth move duration in seconds
	MoveDelay = 0.1

	// PlayerTurnIndex is reserved; enemies start at PlayerTurnIndex+1
	PlayerTurnIndex = 0
)
