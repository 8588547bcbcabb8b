package spawners

import (
	"fmt"

	"scavenger-board/components"
	"scavenger-board/data"
	"scavenger-board/ecs"
)

// EntityFactory is the part of the runtime the spawner needs.
// *ecs.World satisfies it.
type EntityFactory interface {
	CreateEntity() *ecs.Entity
	RemoveEntity(entityID ecs.EntityID)
	TagEntity(entityID ecs.EntityID, tag string)
	AddComponent(entityID ecs.EntityID, componentID ecs.ComponentID, component ecs.Component)
	GetComponent(entityID ecs.EntityID, componentID ecs.ComponentID) (ecs.Component, bool)
}

// EntitySpawner manages the creation of board entities
type EntitySpawner struct {
	world      EntityFactory
	logMessage func(string) // Function for logging messages
}

// NewEntitySpawner creates a new entity spawner
func NewEntitySpawner(world EntityFactory, logFunc func(string)) *EntitySpawner {
	return &EntitySpawner{
		world:      world,
		logMessage: logFunc,
	}
}

// World returns the factory entities are created in
func (s *EntitySpawner) World() EntityFactory {
	return s.world
}

func (s *EntitySpawner) tag(entity *ecs.Entity, tags ...string) {
	for _, tag := range tags {
		s.world.TagEntity(entity.ID, tag)
	}
}

func (s *EntitySpawner) place(entity *ecs.Entity, x, y int, prefab data.Prefab) {
	s.world.AddComponent(entity.ID, components.Position, &components.PositionComponent{
		X: x,
		Y: y,
	})
	s.world.AddComponent(entity.ID, components.Resource, &components.ResourceComponent{
		Prefab: prefab,
	})
}

// CreateTile creates a floor or outer wall tile. Tiles are removed on level
// exit but are not board elements.
func (s *EntitySpawner) CreateTile(x, y int, prefab data.Prefab) *ecs.Entity {
	tile := s.world.CreateEntity()
	s.tag(tile, components.TagDeleteOnExit, components.TagBoardTile)
	s.place(tile, x, y, prefab)
	return tile
}

// CreateBoardElement creates a randomly placed object (wall, pickup, enemy)
func (s *EntitySpawner) CreateBoardElement(x, y int, prefab data.Prefab) *ecs.Entity {
	element := s.world.CreateEntity()
	s.tag(element, components.TagGameBoardElement, components.TagDeleteOnExit)
	s.place(element, x, y, prefab)
	return element
}

// MakeDestructible gives a wall hit points and the sprite it shows once damaged
func (s *EntitySpawner) MakeDestructible(entity *ecs.Entity, hp int, damaged data.Sprite) {
	s.world.AddComponent(entity.ID, components.Destructible, &components.DestructibleComponent{HP: hp})
	s.world.AddComponent(entity.ID, components.DamageSprite, &components.DamageSpriteComponent{Sprite: damaged})
}

// MakePickup turns an entity into food worth points, with its pickup cues
func (s *EntitySpawner) MakePickup(entity *ecs.Entity, points int, cues []data.Audio) {
	s.world.AddComponent(entity.ID, components.Food, &components.FoodComponent{Points: points})
	s.world.AddComponent(entity.ID, components.AudioPickupSource, components.NewAudioSourceComponent(cues...))
}

// MakeEnemy turns an entity into an AI controlled actor taking its turn at turnIndex
func (s *EntitySpawner) MakeEnemy(entity *ecs.Entity, turnIndex, damage int) {
	s.world.AddComponent(entity.ID, components.TurnBased, &components.TurnBasedComponent{
		Index: turnIndex,
		Delay: data.MoveDelay,
	})
	s.tag(entity, components.TagAIMove)
	s.world.AddComponent(entity.ID, components.FoodDamager, &components.FoodDamagerComponent{Points: damage})
	s.world.AddComponent(entity.ID, components.SmoothMove, &components.SmoothMoveComponent{Duration: data.MoveDelay})
	s.world.AddComponent(entity.ID, components.AudioAttackSource, components.NewAudioSourceComponent(data.EnemyAttack...))
}

// CreateExit creates the level exit
func (s *EntitySpawner) CreateExit(x, y int) *ecs.Entity {
	exit := s.world.CreateEntity()
	s.place(exit, x, y, data.Exit)
	s.tag(exit, components.TagExit, components.TagGameBoardElement, components.TagDeleteOnExit)
	return exit
}

// CreatePlayer creates a player entity at the given position.
// The player is rebuilt with every board.
func (s *EntitySpawner) CreatePlayer(x, y int) *ecs.Entity {
	player := s.world.CreateEntity()
	s.place(player, x, y, data.Player)
	s.tag(player,
		components.TagGameBoardElement,
		components.TagDeleteOnExit,
		components.TagControllable,
		components.TagActiveTurnBased,
		components.TagAIMoveTarget,
	)

	s.world.AddComponent(player.ID, components.SmoothMove, &components.SmoothMoveComponent{Duration: data.MoveDelay})
	s.world.AddComponent(player.ID, components.TurnBased, &components.TurnBasedComponent{
		Index: data.PlayerTurnIndex,
		Delay: data.MoveDelay,
	})
	s.world.AddComponent(player.ID, components.AudioAttackSource, components.NewAudioSourceComponent(data.PlayerAttack...))
	s.world.AddComponent(player.ID, components.AudioDeathSource, components.NewAudioSourceComponent(data.PlayerDeath...))
	s.world.AddComponent(player.ID, components.AudioWalkSource, components.NewAudioSourceComponent(data.PlayerWalk...))

	if s.logMessage != nil {
		s.logMessage(fmt.Sprintf("Player created at %d,%d", x, y))
	}

	return player
}

// CreateGameState creates the singleton holding board size and level
func (s *EntitySpawner) CreateGameState(columns, rows, level int) *ecs.Entity {
	state := s.world.CreateEntity()
	s.tag(state, components.TagGameState)
	s.world.AddComponent(state.ID, components.GameBoard, &components.GameBoardComponent{
		Columns: columns,
		Rows:    rows,
	})
	s.world.AddComponent(state.ID, components.Level, &components.LevelComponent{Level: level})
	return state
}

// CreateTransitionDelay starts the pause before the next board.
// The board is rebuilt once the delay component is removed.
func (s *EntitySpawner) CreateTransitionDelay(seconds float64) *ecs.Entity {
	delay := s.world.CreateEntity()
	s.world.AddComponent(delay.ID, components.LevelTransitionDelay, &components.LevelTransitionDelayComponent{
		Remaining: seconds,
	})
	return delay
}
