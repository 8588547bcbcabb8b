package generation

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/zyedidia/generic/mapset"

	"scavenger-board/components"
	"scavenger-board/data"
	"scavenger-board/ecs"
	"scavenger-board/spawners"
)

func newTestPlanner(seed int64, columns, rows int) (*ecs.World, *Planner, *PositionPool) {
	world := ecs.NewWorld()
	rng := rand.New(rand.NewSource(seed))
	pool := NewPositionPool(rng)
	pool.Reset(columns, rows)
	planner := NewPlanner(rng, pool, NewVariantSelector(rng), spawners.NewEntitySpawner(world, nil))
	return world, planner, pool
}

// Test counts stay in range and every value in range shows up
func TestPlaceCountRange(t *testing.T) {
	seen := make(map[int]bool)
	for trial := 0; trial < 400; trial++ {
		_, planner, _ := newTestPlanner(int64(trial), 8, 8)

		placed, err := planner.Place(Category{
			Name:       "walls",
			Candidates: []data.Prefab{data.Wall1},
			Min:        5,
			Max:        9,
		}, nil)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(placed) < 5 || len(placed) > 9 {
			t.Fatalf("Count %d outside [5, 9]", len(placed))
		}
		seen[len(placed)] = true
	}

	for n := 5; n <= 9; n++ {
		if !seen[n] {
			t.Errorf("Count %d never drawn", n)
		}
	}
}

func TestPlaceExactCount(t *testing.T) {
	_, planner, _ := newTestPlanner(11, 8, 8)
	placed, err := planner.Place(Category{Name: "enemies", Candidates: []data.Prefab{data.Enemy1}, Min: 3, Max: 3}, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(placed) != 3 {
		t.Errorf("Expected 3, got %d", len(placed))
	}
}

// Test positions are unique and variants may repeat
func TestPlaceUniquePositions(t *testing.T) {
	world, planner, pool := newTestPlanner(12, 8, 8)

	placed, err := planner.Place(Category{
		Name:       "walls",
		Candidates: []data.Prefab{data.Wall1, data.Wall2},
		Min:        36,
		Max:        36,
	}, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if pool.Len() != 0 {
		t.Errorf("Expected pool drained, %d left", pool.Len())
	}

	positions := mapset.New[Position]()
	for _, id := range placed {
		positions.Put(positionOf(t, world, id))
		e := world.GetEntity(id)
		if !e.HasTag(components.TagGameBoardElement) || !e.HasTag(components.TagDeleteOnExit) {
			t.Errorf("Entity %d missing lifecycle tags: %v", id, e.Tags)
		}
	}
	if positions.Size() != 36 {
		t.Errorf("Expected 36 distinct positions, got %d", positions.Size())
	}
}

func TestPlaceDecoratorArguments(t *testing.T) {
	world, planner, _ := newTestPlanner(13, 8, 8)
	candidates := []data.Prefab{data.Food, data.Soda}

	var sequence []int
	_, err := planner.Place(Category{Name: "pickups", Candidates: candidates, Min: 4, Max: 4},
		func(entity *ecs.Entity, i, variantIndex int) error {
			sequence = append(sequence, i)
			if got := prefabOf(t, world, entity.ID); got != candidates[variantIndex] {
				t.Errorf("Variant index %d does not match prefab %v", variantIndex, got)
			}
			return nil
		})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(sequence) != 4 {
		t.Fatalf("Expected 4 decorator calls, got %d", len(sequence))
	}
	for i, n := range sequence {
		if i != n {
			t.Errorf("Expected sequence index %d, got %d", i, n)
		}
	}
}

func TestPlaceDecoratorErrorAborts(t *testing.T) {
	_, planner, _ := newTestPlanner(15, 8, 8)
	failure := errors.New("decorate failed")

	calls := 0
	placed, err := planner.Place(Category{Name: "walls", Candidates: []data.Prefab{data.Wall1}, Min: 3, Max: 3},
		func(entity *ecs.Entity, i, variantIndex int) error {
			calls++
			if i == 1 {
				return failure
			}
			return nil
		})
	if !errors.Is(err, failure) {
		t.Fatalf("Expected decorator error, got %v", err)
	}
	if calls != 2 || len(placed) != 2 {
		t.Errorf("Expected to stop after 2 placements, got %d calls and %d placed", calls, len(placed))
	}
}

func TestPlaceGridExhausted(t *testing.T) {
	_, planner, _ := newTestPlanner(14, 4, 4)

	placed, err := planner.Place(Category{Name: "walls", Candidates: []data.Prefab{data.Wall1}, Min: 5, Max: 5}, nil)
	if !errors.Is(err, ErrGridExhausted) {
		t.Fatalf("Expected ErrGridExhausted, got %v", err)
	}
	if len(placed) != 4 {
		t.Errorf("Expected the 4 interior cells used before failing, got %d", len(placed))
	}
}

func TestPlaceInvalidRange(t *testing.T) {
	_, planner, _ := newTestPlanner(15, 8, 8)

	if _, err := planner.Place(Category{Name: "walls", Candidates: []data.Prefab{data.Wall1}, Min: 3, Max: 1}, nil); !errors.Is(err, ErrInvalidCategoryRange) {
		t.Errorf("Expected ErrInvalidCategoryRange, got %v", err)
	}
	if _, err := planner.Place(Category{Name: "walls", Candidates: []data.Prefab{data.Wall1}, Min: -1, Max: 1}, nil); !errors.Is(err, ErrInvalidCategoryRange) {
		t.Errorf("Expected ErrInvalidCategoryRange for negative min, got %v", err)
	}
}

func TestPlaceEmptyCandidates(t *testing.T) {
	_, planner, pool := newTestPlanner(16, 8, 8)

	if _, err := planner.Place(Category{Name: "walls", Min: 1, Max: 1}, nil); !errors.Is(err, ErrEmptyCandidateList) {
		t.Errorf("Expected ErrEmptyCandidateList, got %v", err)
	}
	if pool.Len() != 36 {
		t.Errorf("Expected no position consumed, %d left", pool.Len())
	}

	// Zero placements need no candidates
	placed, err := planner.Place(Category{Name: "enemies", Min: 0, Max: 0}, nil)
	if err != nil || len(placed) != 0 {
		t.Errorf("Expected empty placement, got %v, %v", placed, err)
	}
}
