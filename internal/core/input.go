package core

// PlayerID identifies one of the two cycles in a match.
type PlayerID int

const (
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "Unknown"
	}
}

// Turn is a relative steering request. A cycle can never reverse, so the
// only intents the simulation ever consumes are 90-degree turns.
type Turn int

const (
	TurnLeft Turn = iota
	TurnRight
)

func (t Turn) String() string {
	if t == TurnRight {
		return "right"
	}
	return "left"
}

// Action represents a semantic platform action, abstracted from physical
// key presses. Steering is not an Action: turn intents carry a PlayerID
// and go through the engine's turn queue instead.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter - start match from menu
	ActionBack           // Esc, B - abort to menu
	ActionRestart        // R - restart after game over
	ActionPause          // P - pause/unpause (reserved)
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
