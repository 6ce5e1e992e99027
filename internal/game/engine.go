package game

import (
	"math/rand"
	"time"

	"github.com/gridrun/lightcycles/internal/core"
)

// State is the match state machine. Restarting goes through a fresh
// MENU -> PLAYING transition; StatePaused is reserved and currently unused
// by the simulation.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// walkerClearance is the minimum horizontal distance, in columns, between
// a spawned walker and any cycle's start cell.
const walkerClearance = 5

// StartSpot fixes where a cycle begins a match.
type StartSpot struct {
	ID    core.PlayerID
	Pos   core.Coord
	Dir   core.Dir
	Color core.Color
	Human bool
}

// Options carries the tunable match parameters. The defaults mirror the
// embedded YAML config; none of them is an invariant.
type Options struct {
	Arena         core.Arena
	TickInterval  time.Duration
	WalkerCount   int
	WalkerCadence int // walkers move every Nth simulation tick
	FloodDepth    int
	Starts        []StartSpot
}

// DefaultOptions returns a standard two-cycle match on a 60x40 grid:
// player 1 on the left facing right, a CPU pilot on the right facing left.
func DefaultOptions() Options {
	return Options{
		Arena:         core.Arena{Width: 60, Height: 40},
		TickInterval:  80 * time.Millisecond,
		WalkerCount:   5,
		WalkerCadence: 2,
		FloodDepth:    defaultFloodDepth,
		Starts: []StartSpot{
			{ID: core.Player1, Pos: core.C(10, 20), Dir: core.DirRight, Color: core.ColorBrightCyan, Human: true},
			{ID: core.Player2, Pos: core.C(49, 20), Dir: core.DirLeft, Color: core.ColorOrange, Human: false},
		},
	}
}

// Engine owns every match entity - cycles, walkers, turn queues and the
// state machine - and advances the world one tick at a time. It is
// single-owner state mutated only from the tick-admission path, so it
// needs no locking. Each Step is atomic: deaths collected during the
// collision pass are applied only after every check has run.
type Engine struct {
	opts    Options
	arena   core.Arena
	seed    int64
	rng     *rand.Rand
	pilot   *Pilot
	queue   *TurnQueue
	cycles  []*Cycle
	walkers []*Walker
	scores  map[core.PlayerID]int
	state   State
	winner  core.PlayerID
	draw    bool
	tick    uint64
}

// NewEngine creates an engine in the MENU state. The seed drives every
// random decision (pilot shuffles and walker steps); a fixed seed makes
// the whole match deterministic for a fixed input sequence.
func NewEngine(opts Options, seed int64) *Engine {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	return &Engine{
		opts:   opts,
		arena:  opts.Arena,
		seed:   seed,
		rng:    rng,
		pilot:  NewPilot(rng, opts.FloodDepth),
		queue:  NewTurnQueue(),
		scores: make(map[core.PlayerID]int),
		state:  StateMenu,
	}
}

// State returns the current match state.
func (e *Engine) State() State {
	return e.state
}

// Arena returns the grid bounds.
func (e *Engine) Arena() core.Arena {
	return e.arena
}

// TickInterval returns the fixed simulation step duration.
func (e *Engine) TickInterval() time.Duration {
	return e.opts.TickInterval
}

// TickCount returns the number of simulation ticks in the current match.
func (e *Engine) TickCount() uint64 {
	return e.tick
}

// Cycles exposes the live entity collection for the renderer. Callers
// must not retain the slice across ticks.
func (e *Engine) Cycles() []*Cycle {
	return e.cycles
}

// Walkers exposes the hazard pool for the renderer. Callers must not
// retain the slice across ticks.
func (e *Engine) Walkers() []*Walker {
	return e.walkers
}

// Score returns the session score for the given cycle.
func (e *Engine) Score(id core.PlayerID) int {
	return e.scores[id]
}

// Winner returns the winning cycle of a finished match, and whether the
// match was a draw. Zero/false until the match ends.
func (e *Engine) Winner() (core.PlayerID, bool) {
	return e.winner, e.draw
}

// StartMatch builds fresh cycles and walkers and transitions to PLAYING.
// A no-op while a match is already running. Session scores carry over;
// use ResetScores to zero them.
func (e *Engine) StartMatch() []Event {
	if e.state == StatePlaying {
		return nil
	}

	e.cycles = e.cycles[:0]
	for _, s := range e.opts.Starts {
		e.cycles = append(e.cycles, &Cycle{
			ID:    s.ID,
			Head:  s.Pos,
			Trail: make([]core.Coord, 0, 64),
			Dir:   s.Dir,
			Color: s.Color,
			Human: s.Human,
		})
		if _, ok := e.scores[s.ID]; !ok {
			e.scores[s.ID] = 0
		}
	}

	e.spawnWalkers()
	e.queue.Clear()
	e.tick = 0
	e.winner = 0
	e.draw = false
	e.state = StatePlaying

	return []Event{MatchStartedEvent{Seed: e.seed}}
}

// Restart aborts any finished or running match and begins a new one.
func (e *Engine) Restart() []Event {
	e.Abort()
	return e.StartMatch()
}

// Abort returns to the MENU at a tick boundary. Entities from the aborted
// match are discarded; scores are kept.
func (e *Engine) Abort() {
	e.state = StateMenu
	e.cycles = nil
	e.walkers = nil
	e.queue.Clear()
}

// TogglePause freezes or resumes a running match. A no-op in any other
// state.
func (e *Engine) TogglePause() {
	switch e.state {
	case StatePlaying:
		e.state = StatePaused
	case StatePaused:
		e.state = StatePlaying
	}
}

// ResetScores zeroes the session tally.
func (e *Engine) ResetScores() {
	e.scores = make(map[core.PlayerID]int)
}

// spawnWalkers places the hazard pool at random cells horizontally clear
// of every start column. Placement retries a bounded number of times and
// then takes whatever it has, so tiny grids still get their walkers.
func (e *Engine) spawnWalkers() {
	e.walkers = e.walkers[:0]
	for i := 0; i < e.opts.WalkerCount; i++ {
		pos := core.C(e.rng.Intn(max(e.arena.Width, 1)), e.rng.Intn(max(e.arena.Height, 1)))
		for range 100 {
			clear := true
			for _, s := range e.opts.Starts {
				if core.Abs(pos.X-s.Pos.X) <= walkerClearance {
					clear = false
					break
				}
			}
			if clear {
				break
			}
			pos = core.C(e.rng.Intn(max(e.arena.Width, 1)), e.rng.Intn(max(e.arena.Height, 1)))
		}
		e.walkers = append(e.walkers, &Walker{Pos: pos})
	}
}

// SubmitTurn queues a steering intent for the given cycle. Turns for
// unknown or dead cycles, or outside an active match, are silently
// ignored: that is a caller-contract violation, not a game error.
func (e *Engine) SubmitTurn(id core.PlayerID, turn core.Turn) {
	if e.state != StatePlaying {
		return
	}
	c := e.cycle(id)
	if c == nil || !c.Alive() {
		return
	}
	e.queue.Push(id, c.Dir, turn)
}

func (e *Engine) cycle(id core.PlayerID) *Cycle {
	for _, c := range e.cycles {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Step advances one simulation tick and returns the events it produced.
// Outside PLAYING it is a no-op. The order within a tick is fixed:
// steering, walkers, movement, collision pass, deaths, terminal check.
func (e *Engine) Step() []Event {
	if e.state != StatePlaying {
		return nil
	}
	e.tick++

	var events []Event

	// Steering: at most one queued turn per cycle per tick. CPU cycles
	// without queued input ask the pilot.
	for _, c := range e.cycles {
		if !c.Alive() {
			continue
		}
		if dir, ok := e.queue.Pop(c.ID); ok {
			if dir != c.Dir {
				c.Dir = dir
				events = append(events, TurnAppliedEvent{Player: c.ID, Dir: dir})
			}
		} else if !c.Human {
			if dir := e.pilot.Choose(c, e.cycles, e.arena); dir != c.Dir {
				c.Dir = dir
				events = append(events, TurnAppliedEvent{Player: c.ID, Dir: dir})
			}
		}
	}

	// Walkers roam on their own cadence.
	for _, w := range e.walkers {
		w.step(e.arena, e.opts.WalkerCadence, e.rng)
	}

	// Heads advance; the previous head becomes trail. An out-of-bounds
	// head is allowed to exist until the collision pass records it as the
	// death cell.
	for _, c := range e.cycles {
		if !c.Alive() {
			continue
		}
		c.Trail = append(c.Trail, c.Head)
		c.Head = c.Head.Step(c.Dir)
	}

	// Collision pass. Deaths are only collected here so every check sees
	// the same pre-death world; a tick where both cycles collide marks
	// both dead.
	trails := obstacles(e.cycles, false)
	crashed := make(map[core.PlayerID]CrashEvent)
	for _, c := range e.cycles {
		if !c.Alive() {
			continue
		}
		switch {
		case !e.arena.Contains(c.Head):
			crashed[c.ID] = CrashEvent{Player: c.ID, At: c.Head, Cause: CrashWall}
		case trails.has(c.Head):
			crashed[c.ID] = CrashEvent{Player: c.ID, At: c.Head, Cause: CrashTrail}
		case e.walkerAt(c.Head):
			crashed[c.ID] = CrashEvent{Player: c.ID, At: c.Head, Cause: CrashWalker}
		default:
			for _, o := range e.cycles {
				if o != c && o.Alive() && o.Head == c.Head {
					crashed[c.ID] = CrashEvent{Player: c.ID, At: c.Head, Cause: CrashHeadOn}
					break
				}
			}
		}
	}

	// Apply deaths, in stable cycle order for deterministic event streams.
	died := 0
	for _, c := range e.cycles {
		if ev, ok := crashed[c.ID]; ok {
			c.Dead = true
			died++
			events = append(events, ev)
		}
	}

	// Terminal check, only when this tick killed someone: a one-cycle
	// practice match keeps PLAYING until its cycle crashes.
	if died > 0 {
		alive := e.aliveCycles()
		switch len(alive) {
		case 0:
			e.state = StateGameOver
			e.draw = true
			events = append(events, MatchEndedEvent{Draw: true, Ticks: e.tick, Scores: e.scoreTally()})
		case 1:
			e.state = StateGameOver
			e.winner = alive[0].ID
			e.scores[e.winner]++
			events = append(events, MatchEndedEvent{Winner: e.winner, Ticks: e.tick, Scores: e.scoreTally()})
		}
	}

	return events
}

func (e *Engine) aliveCycles() []*Cycle {
	var alive []*Cycle
	for _, c := range e.cycles {
		if c.Alive() {
			alive = append(alive, c)
		}
	}
	return alive
}

func (e *Engine) walkerAt(pos core.Coord) bool {
	for _, w := range e.walkers {
		if w.Pos == pos {
			return true
		}
	}
	return false
}

func (e *Engine) scoreTally() map[core.PlayerID]int {
	tally := make(map[core.PlayerID]int, len(e.scores))
	for id, s := range e.scores {
		tally[id] = s
	}
	return tally
}
