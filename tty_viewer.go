package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"scavenger-board/config"
	"scavenger-board/systems"
)

// TTYViewer draws the session in a terminal, one cell per board square
type TTYViewer struct {
	screen  tcell.Screen
	session *Session
}

// NewTTYViewer initializes the terminal screen
func NewTTYViewer(session *Session) (*TTYViewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	if err := screen.Init(); err != nil {
		return nil, err
	}

	return &TTYViewer{
		screen:  screen,
		session: session,
	}, nil
}

// Run processes input and ticks the session at ~60 FPS until quit or a
// failed rebuild
func (v *TTYViewer) Run() error {
	defer v.screen.Fini()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, 100)
	go forwardEvents(v.screen, eventChan, done)

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return nil
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if err := v.session.Update(dt); err != nil {
				return err
			}
			v.draw()
		}
	}
}

// forwardEvents pumps terminal events into out until the screen is finalized
// or done is closed
func forwardEvents(source interface{ PollEvent() tcell.Event }, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := source.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

func (v *TTYViewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case 'n':
			v.session.NextLevel()
		case 'r':
			v.session.Replay()
		}

	case *tcell.EventResize:
		v.screen.Sync()
	}

	return true
}

func (v *TTYViewer) draw() {
	v.screen.Clear()

	world := v.session.World()
	levelSystem := v.session.LevelSystem()
	columns, rows := levelSystem.Board(world)
	level := levelSystem.Level(world)

	if v.session.Transitions().Active(world) {
		v.drawText(columns/2, rows/2, fmt.Sprintf("Day %d", level), tcell.StyleDefault.Bold(true))
		v.screen.Show()
		return
	}

	for _, cell := range systems.BoardCells(world) {
		appearance := systems.GetTileAppearance(cell.Prefab)
		style := tcell.StyleDefault.Foreground(rgb(appearance.FG)).Background(rgb(appearance.BG))
		v.screen.SetContent(cell.X+1, rows-cell.Y, appearance.Glyph, nil, style)
	}

	x := config.MessagePanelX(columns)
	v.drawText(x, 0, fmt.Sprintf("Level %d   [n] next  [r] rebuild  [q] quit", level), tcell.StyleDefault)
	for i, msg := range systems.GetMessageLog().RecentMessages(config.MessagePanelLines) {
		v.drawText(x, i+2, msg.Text, tcell.StyleDefault.Foreground(rgb(msg.GetColor())))
	}

	v.screen.Show()
}

func (v *TTYViewer) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
