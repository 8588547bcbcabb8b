package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"scavenger-board/config"
	"scavenger-board/ecs"
)

// RenderSystem handles drawing the board to the screen
type RenderSystem struct {
	levelSystem *LevelSystem
	transitions *TransitionDelaySystem
}

// NewRenderSystem creates a new rendering system
func NewRenderSystem(levelSystem *LevelSystem, transitions *TransitionDelaySystem) *RenderSystem {
	return &RenderSystem{
		levelSystem: levelSystem,
		transitions: transitions,
	}
}

// Draw renders the board, the level banner and the message panel
func (s *RenderSystem) Draw(world *ecs.World, screen *ebiten.Image) {
	// Clear the screen
	screen.Fill(color.RGBA{0, 0, 0, 255})

	level := s.levelSystem.Level(world)
	if s.transitions != nil && s.transitions.Active(world) {
		s.drawBanner(world, screen, fmt.Sprintf("Day %d", level))
		return
	}

	s.drawBoard(world, screen)
	s.drawMessagesPanel(world, screen, level)
}

// drawBoard draws every tile and board element. Row 0 is at the bottom.
func (s *RenderSystem) drawBoard(world *ecs.World, screen *ebiten.Image) {
	_, rows := s.levelSystem.Board(world)
	size := float32(config.TileSize)

	for _, cell := range BoardCells(world) {
		appearance := GetTileAppearance(cell.Prefab)

		// shift by one so the outer wall at -1 lands on screen
		px := float32(cell.X+1) * size
		py := float32(rows-cell.Y) * size

		vector.DrawFilledRect(screen, px, py, size, size, appearance.BG, false)
		vector.DrawFilledRect(screen, px+size/4, py+size/4, size/2, size/2, appearance.FG, false)
	}
}

func (s *RenderSystem) drawBanner(world *ecs.World, screen *ebiten.Image, text string) {
	w, h := config.GetScreenDimensions(s.levelSystem.Board(world))
	ebitenutil.DebugPrintAt(screen, text, w/2-len(text)*3, h/2)
}

func (s *RenderSystem) drawMessagesPanel(world *ecs.World, screen *ebiten.Image, level int) {
	columns, _ := s.levelSystem.Board(world)
	x := config.MessagePanelX(columns) * config.TileSize
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Level %d   [N] next level  [R] rebuild", level), x, 0)

	for i, msg := range GetMessageLog().RecentMessages(config.MessagePanelLines) {
		ebitenutil.DebugPrintAt(screen, msg.Text, x, (i+2)*16)
	}
}
