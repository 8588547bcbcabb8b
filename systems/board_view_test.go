package systems

import (
	"testing"

	"scavenger-board/data"
	"scavenger-board/ecs"
	"scavenger-board/spawners"
)

func TestBoardCellsDrawTilesFirst(t *testing.T) {
	world := ecs.NewWorld()
	spawner := spawners.NewEntitySpawner(world, nil)

	spawner.CreatePlayer(0, 0)
	spawner.CreateTile(0, 0, data.Floor2)
	spawner.CreateGameState(8, 8, 1)

	cells := BoardCells(world)
	if len(cells) != 2 {
		t.Fatalf("Expected 2 cells, got %d", len(cells))
	}
	if cells[0].Prefab != data.Floor2 || cells[1].Prefab != data.Player {
		t.Errorf("Expected floor then player, got %v then %v", cells[0].Prefab, cells[1].Prefab)
	}
}

func TestEveryPrefabHasAppearance(t *testing.T) {
	for p := data.OuterWall1; p.Valid(); p++ {
		if _, ok := Tileset[p]; !ok {
			t.Errorf("No appearance for %v", p)
		}
	}
}
