package generation

import (
	"fmt"

	"scavenger-board/components"
	"scavenger-board/data"
	"scavenger-board/ecs"
)

// prefabOf reads back the variant the planner attached
func (g *BoardGenerator) prefabOf(entity *ecs.Entity) data.Prefab {
	if comp, ok := g.spawner.World().GetComponent(entity.ID, components.Resource); ok {
		return comp.(*components.ResourceComponent).Prefab
	}
	return data.PrefabNone
}

// decorateObstacle gives inner walls durability and the damaged sprite of
// their variant
func (g *BoardGenerator) decorateObstacle(entity *ecs.Entity, i, variantIndex int) error {
	prefab := g.prefabOf(entity)
	sprite, ok := data.DamagedWalls[prefab]
	if !ok {
		return fmt.Errorf("%w: no damaged sprite for %v", ErrWrongPrefabFamily, prefab)
	}
	g.spawner.MakeDestructible(entity, data.WallHitPoints, sprite)
	return nil
}

// decoratePickup splits pickups into the soda and food tiers
func (g *BoardGenerator) decoratePickup(entity *ecs.Entity, i, variantIndex int) error {
	switch prefab := g.prefabOf(entity); prefab {
	case data.Soda:
		g.spawner.MakePickup(entity, data.SodaPoints, data.SodaCues)
	case data.Food:
		g.spawner.MakePickup(entity, data.FoodPoints, data.FruitCues)
	default:
		return fmt.Errorf("%w: %v is not a pickup", ErrWrongPrefabFamily, prefab)
	}
	return nil
}

// decorateEnemy assigns turn order after the player and the variant's damage
func (g *BoardGenerator) decorateEnemy(entity *ecs.Entity, i, variantIndex int) error {
	var damage int
	switch prefab := g.prefabOf(entity); prefab {
	case data.Enemy1:
		damage = data.Enemy1Damage
	case data.Enemy2:
		damage = data.Enemy2Damage
	default:
		return fmt.Errorf("%w: %v is not an enemy", ErrWrongPrefabFamily, prefab)
	}
	// start at 1 because 0 is reserved for player
	g.spawner.MakeEnemy(entity, data.PlayerTurnIndex+1+i, damage)
	return nil
}
