package game

import "github.com/gridrun/lightcycles/internal/core"

// Event is a discrete gameplay occurrence emitted by the engine. The
// engine performs no I/O; the platform layer consumes events to drive
// rendering effects, sound hooks and persistence.
type Event interface {
	gameEvent()
}

// MatchStartedEvent is emitted on the MENU -> PLAYING transition.
type MatchStartedEvent struct {
	Seed int64
}

func (MatchStartedEvent) gameEvent() {}

// TurnAppliedEvent is emitted when a cycle's facing actually changes,
// whether from a queued player turn or a pilot decision.
type TurnAppliedEvent struct {
	Player core.PlayerID
	Dir    core.Dir
}

func (TurnAppliedEvent) gameEvent() {}

// CrashCause describes what killed a cycle.
type CrashCause int

const (
	CrashWall CrashCause = iota
	CrashTrail
	CrashWalker
	CrashHeadOn
)

func (c CrashCause) String() string {
	switch c {
	case CrashWall:
		return "wall"
	case CrashTrail:
		return "trail"
	case CrashWalker:
		return "walker"
	case CrashHeadOn:
		return "head-on"
	default:
		return "unknown"
	}
}

// CrashEvent is emitted for every cycle that died this tick. At carries
// the death cell; for a wall crash it is the out-of-bounds cell the head
// briefly occupied.
type CrashEvent struct {
	Player core.PlayerID
	At     core.Coord
	Cause  CrashCause
}

func (CrashEvent) gameEvent() {}

// MatchEndedEvent is emitted on the PLAYING -> GAME_OVER transition.
// Winner is zero when Draw is set. Scores is the session tally after any
// win was applied.
type MatchEndedEvent struct {
	Winner core.PlayerID
	Draw   bool
	Ticks  uint64
	Scores map[core.PlayerID]int
}

func (MatchEndedEvent) gameEvent() {}
