package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"scavenger-board/config"
	"scavenger-board/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	session      *Session
	renderSystem *systems.RenderSystem
}

// NewGame creates a new game instance
func NewGame(session *Session) *Game {
	return &Game{
		session:      session,
		renderSystem: systems.NewRenderSystem(session.LevelSystem(), session.Transitions()),
	}
}

// Update updates the game state. A failed rebuild ends the game loop.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.NextLevel()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Replay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	return g.session.Update(1.0 / 60.0) // passing approximate dt value
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderSystem.Draw(g.session.World(), screen)

	// Print FPS for debugging
	h := screen.Bounds().Dy()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()), 0, h-16)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions(g.session.LevelSystem().Board(g.session.World()))
}
