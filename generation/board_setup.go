package generation

import (
	"fmt"

	"scavenger-board/data"
	"scavenger-board/spawners"
)

// TileCounts reports what BoardSetup created
type TileCounts struct {
	OuterWalls int
	Floors     int
}

// Total returns the number of tiles
func (c TileCounts) Total() int {
	return c.OuterWalls + c.Floors
}

// BoardSetup lays out the floor and the outer wall ring.
//
// Every cell of [-1, columns] x [-1, rows] gets exactly one tile: an outer wall
// on the margin, a floor inside.
func BoardSetup(spawner *spawners.EntitySpawner, selector *VariantSelector, columns, rows int, outerWalls, floors []data.Prefab) (TileCounts, error) {
	var counts TileCounts

	// start at -1 to place the outer edges
	for x := -1; x <= columns; x++ {
		for y := -1; y <= rows; y++ {
			edge := x == -1 || x == columns || y == -1 || y == rows

			candidates := floors
			if edge {
				candidates = outerWalls
			}

			_, prefab, err := selector.Pick(candidates)
			if err != nil {
				if edge {
					return counts, fmt.Errorf("outer walls: %w", err)
				}
				return counts, fmt.Errorf("floors: %w", err)
			}

			spawner.CreateTile(x, y, prefab)
			if edge {
				counts.OuterWalls++
			} else {
				counts.Floors++
			}
		}
	}

	return counts, nil
}
