package tui

import (
	"fmt"

	"github.com/gridrun/lightcycles/internal/core"
	"github.com/gridrun/lightcycles/internal/game"
)

// Glyphs for the arena entities.
const (
	glyphHead   = 'O'
	glyphTrail  = 'o'
	glyphWalker = 'x'
)

// render draws the whole session view into the screen buffer: HUD, the
// bordered arena with every entity, and state overlays on top.
func (m Model) render(dst *core.Screen) {
	dst.Clear()

	arena := m.engine.Arena()
	// Arena plus border plus HUD must fit.
	if dst.Width() < arena.Width+2 || dst.Height() < arena.Height+2+hudHeight+footerH {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need at least %dx%d", arena.Width+2, arena.Height+2+hudHeight+footerH))
		return
	}

	m.renderHUD(dst)

	offX := (dst.Width() - arena.Width - 2) / 2
	offY := hudHeight
	dst.DrawBox(offX, offY, arena.Width+2, arena.Height+2, core.ColorGray)

	m.renderEntities(dst, offX+1, offY+1)
	m.renderFooter(dst)

	switch m.engine.State() {
	case game.StateMenu:
		renderOverlay(dst, "LIGHT CYCLES", "Press Enter to start")
	case game.StateGameOver:
		winner, draw := m.engine.Winner()
		headline := fmt.Sprintf("Player %d wins!", winner)
		if draw {
			headline = "Draw!"
		}
		renderOverlay(dst, headline, "R rematch / Esc menu")
	case game.StatePaused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar with session scores and tick count.
func (m Model) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Light Cycles [%s] — P1 %d : %d P2   tick %d",
		m.mode, m.engine.Score(core.Player1), m.engine.Score(core.Player2), m.engine.TickCount())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderEntities draws trails, heads and walkers at the arena offset.
// Trails go first so a live head always wins the cell.
func (m Model) renderEntities(dst *core.Screen, offX, offY int) {
	for _, c := range m.engine.Cycles() {
		for _, t := range c.Trail {
			dst.SetCell(offX+t.X, offY+t.Y, glyphTrail, c.Color)
		}
	}

	for _, w := range m.engine.Walkers() {
		dst.SetCell(offX+w.Pos.X, offY+w.Pos.Y, glyphWalker, core.ColorBrightRed)
	}

	arena := m.engine.Arena()
	for _, c := range m.engine.Cycles() {
		if c.Dead || !arena.Contains(c.Head) {
			continue
		}
		dst.SetCell(offX+c.Head.X, offY+c.Head.Y, glyphHead, c.Color)
	}
}

// renderFooter draws the key hints on the bottom line.
func (m Model) renderFooter(dst *core.Screen) {
	hints := " P1: a/d   P2: ←/→   Esc: menu   Q: quit"
	if m.mode != "duel" {
		hints = " Steer: a/d or ←/→   Esc: menu   Q: quit"
	}
	dst.DrawTextColored(0, dst.Height()-1, hints, core.ColorGray)
}

// renderOverlay draws a centered boxed message over the current frame.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 6
	boxH := 5
	// On a terminal narrower than the box, pin it to the origin instead
	// of drawing at negative coordinates.
	boxX := core.Clamp((dst.Width()-boxW)/2, 0, dst.Width())
	boxY := core.Clamp((dst.Height()-boxH)/2, 0, dst.Height())

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		for x := boxX + 1; x < boxX+boxW-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBrightWhite)

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
