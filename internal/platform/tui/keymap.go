package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gridrun/lightcycles/internal/core"
)

// KeyMap maps physical keys to per-player steering turns.
type KeyMap struct {
	p1Left  map[string]bool
	p1Right map[string]bool
	p2Left  map[string]bool
	p2Right map[string]bool
}

// DefaultKeyMap returns the two-player shared-keyboard layout:
// player 1 on a/d, player 2 on the arrow keys.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		p1Left:  keySet("a"),
		p1Right: keySet("d"),
		p2Left:  keySet("left"),
		p2Right: keySet("right"),
	}
}

// SoloKeyMap returns the single-human layout: player 1 steers with
// either a/d or the arrow keys.
func SoloKeyMap() KeyMap {
	return KeyMap{
		p1Left:  keySet("a", "left"),
		p1Right: keySet("d", "right"),
		p2Left:  keySet(),
		p2Right: keySet(),
	}
}

func keySet(keys ...string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}

// MapSteering resolves a key press to a player turn. The second return
// value is false when the key is not a steering key.
func (k KeyMap) MapSteering(msg tea.KeyMsg) (core.PlayerID, core.Turn, bool) {
	s := msg.String()
	switch {
	case k.p1Left[s]:
		return core.Player1, core.TurnLeft, true
	case k.p1Right[s]:
		return core.Player1, core.TurnRight, true
	case k.p2Left[s]:
		return core.Player2, core.TurnLeft, true
	case k.p2Right[s]:
		return core.Player2, core.TurnRight, true
	}
	return 0, 0, false
}

// MapAction resolves a key press to a non-steering action.
func MapAction(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "q", "ctrl+c":
		return core.ActionQuit
	case "enter", " ":
		return core.ActionConfirm
	case "esc":
		return core.ActionBack
	case "r":
		return core.ActionRestart
	case "p":
		return core.ActionPause
	}
	return core.ActionNone
}
