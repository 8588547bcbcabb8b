package systems

import (
	"scavenger-board/components"
	"scavenger-board/data"
	"scavenger-board/ecs"
)

// BoardCell is one drawable cell of the board
type BoardCell struct {
	X, Y   int
	Prefab data.Prefab
}

// BoardCells returns the tiles first and the board elements after them, so
// drawing in order puts objects on top of the floor
func BoardCells(world *ecs.World) []BoardCell {
	var cells []BoardCell
	for _, tag := range []string{components.TagBoardTile, components.TagGameBoardElement} {
		for _, entity := range world.GetEntitiesWithTag(tag) {
			posComp, ok := world.GetComponent(entity.ID, components.Position)
			if !ok {
				continue
			}
			resComp, ok := world.GetComponent(entity.ID, components.Resource)
			if !ok {
				continue
			}
			pos := posComp.(*components.PositionComponent)
			cells = append(cells, BoardCell{
				X:      pos.X,
				Y:      pos.Y,
				Prefab: resComp.(*components.ResourceComponent).Prefab,
			})
		}
	}
	return cells
}
