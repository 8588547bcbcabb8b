package generation

import (
	"fmt"
	"math/rand"

	"scavenger-board/data"
	"scavenger-board/ecs"
	"scavenger-board/spawners"
)

// Category describes one randomly placed kind of object
type Category struct {
	Name       string
	Candidates []data.Prefab
	Min, Max   int // Inclusive count range
}

// Decorator attaches category specific components to a freshly placed entity.
// i is the zero based placement sequence, variantIndex the index of the
// chosen prefab in the category candidates. A decorator error aborts the
// placement.
type Decorator func(entity *ecs.Entity, i, variantIndex int) error

// Planner places objects at unique interior cells
type Planner struct {
	rng      *rand.Rand
	pool     *PositionPool
	selector *VariantSelector
	spawner  *spawners.EntitySpawner
}

// NewPlanner creates a planner drawing positions from pool
func NewPlanner(rng *rand.Rand, pool *PositionPool, selector *VariantSelector, spawner *spawners.EntitySpawner) *Planner {
	return &Planner{
		rng:      rng,
		pool:     pool,
		selector: selector,
		spawner:  spawner,
	}
}

// Place draws a count in [Min, Max] and creates that many board elements.
// Positions never repeat within a pool generation; variants may.
// Errors are returned as they happen, already placed entities stay.
func (p *Planner) Place(category Category, decorate Decorator) ([]ecs.EntityID, error) {
	if category.Min < 0 || category.Min > category.Max {
		return nil, fmt.Errorf("%s: %w: [%d, %d]", category.Name, ErrInvalidCategoryRange, category.Min, category.Max)
	}

	count := category.Min + p.rng.Intn(category.Max-category.Min+1)
	if count > 0 && len(category.Candidates) == 0 {
		return nil, fmt.Errorf("%s: %w", category.Name, ErrEmptyCandidateList)
	}

	placed := make([]ecs.EntityID, 0, count)
	for i := 0; i < count; i++ {
		pos, err := p.pool.TakeRandom()
		if err != nil {
			return placed, fmt.Errorf("%s %d of %d: %w", category.Name, i+1, count, err)
		}

		variantIndex, prefab, err := p.selector.Pick(category.Candidates)
		if err != nil {
			return placed, fmt.Errorf("%s: %w", category.Name, err)
		}

		entity := p.spawner.CreateBoardElement(pos.X, pos.Y, prefab)
		placed = append(placed, entity.ID)
		if decorate != nil {
			if err := decorate(entity, i, variantIndex); err != nil {
				return placed, fmt.Errorf("%s: %w", category.Name, err)
			}
		}
	}

	return placed, nil
}
