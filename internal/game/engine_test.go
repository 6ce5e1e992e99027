package game

import (
	"reflect"
	"testing"

	"github.com/gridrun/lightcycles/internal/core"
)

// soloOptions builds a one-cycle match with no walkers, handy for pinning
// down movement and collision behavior without interference.
func soloOptions(w, h int, start core.Coord, dir core.Dir) Options {
	return Options{
		Arena:         core.Arena{Width: w, Height: h},
		TickInterval:  DefaultTickInterval,
		WalkerCount:   0,
		WalkerCadence: 2,
		Starts: []StartSpot{
			{ID: core.Player1, Pos: start, Dir: dir, Human: true},
		},
	}
}

// duelOptions builds a two-human-cycle match with no walkers.
func duelOptions(w, h int, p1, p2 StartSpot) Options {
	p1.ID = core.Player1
	p2.ID = core.Player2
	p1.Human = true
	p2.Human = true
	return Options{
		Arena:         core.Arena{Width: w, Height: h},
		TickInterval:  DefaultTickInterval,
		WalkerCount:   0,
		WalkerCadence: 2,
		Starts:        []StartSpot{p1, p2},
	}
}

func TestWallCrashScenario(t *testing.T) {
	// 10x10 grid, cycle at (5,5) facing right, no turns: after 5 ticks
	// the head reaches x=10, one past the last valid column, and the
	// cycle dies with a 5-cell trail.
	e := NewEngine(soloOptions(10, 10, core.C(5, 5), core.DirRight), 1)
	e.StartMatch()

	for i := 0; i < 4; i++ {
		e.Step()
		if e.State() != StatePlaying {
			t.Fatalf("match ended early at tick %d", i+1)
		}
	}

	events := e.Step()

	c := e.Cycles()[0]
	if !c.Dead {
		t.Fatal("cycle should be dead after driving off the grid")
	}
	if c.Head != core.C(10, 5) {
		t.Errorf("death head = %v, expected (10,5)", c.Head)
	}
	if len(c.Trail) != 5 {
		t.Errorf("trail length = %d, expected 5", len(c.Trail))
	}
	if e.State() != StateGameOver {
		t.Errorf("state = %v, expected game_over", e.State())
	}

	var crash *CrashEvent
	for _, ev := range events {
		if ce, ok := ev.(CrashEvent); ok {
			crash = &ce
		}
	}
	if crash == nil {
		t.Fatal("no CrashEvent emitted")
	}
	if crash.Cause != CrashWall {
		t.Errorf("crash cause = %v, expected wall", crash.Cause)
	}
	if crash.At != core.C(10, 5) {
		t.Errorf("crash cell = %v, expected the out-of-bounds head (10,5)", crash.At)
	}
}

func TestHeadOnDrawScenario(t *testing.T) {
	// Two cycles on the same row, facing each other, an even number of
	// cells apart: their heads coincide in the same tick and both die.
	e := NewEngine(duelOptions(20, 20,
		StartSpot{Pos: core.C(8, 10), Dir: core.DirRight},
		StartSpot{Pos: core.C(12, 10), Dir: core.DirLeft},
	), 1)
	e.StartMatch()

	e.Step()
	events := e.Step()

	for _, c := range e.Cycles() {
		if !c.Dead {
			t.Fatalf("%v survived a head-on collision", c.ID)
		}
		if c.Head != core.C(10, 10) {
			t.Errorf("%v head = %v, expected (10,10)", c.ID, c.Head)
		}
	}

	if _, draw := e.Winner(); !draw {
		t.Error("head-on mutual death should be a draw")
	}
	if e.Score(core.Player1) != 0 || e.Score(core.Player2) != 0 {
		t.Error("a draw must not change any score")
	}

	crashes := 0
	ended := false
	for _, ev := range events {
		switch ev := ev.(type) {
		case CrashEvent:
			crashes++
			if ev.Cause != CrashHeadOn {
				t.Errorf("crash cause = %v, expected head-on", ev.Cause)
			}
		case MatchEndedEvent:
			ended = true
			if !ev.Draw {
				t.Error("MatchEndedEvent should carry the draw flag")
			}
		}
	}
	if crashes != 2 {
		t.Errorf("CrashEvents = %d, expected 2", crashes)
	}
	if !ended {
		t.Error("no MatchEndedEvent emitted")
	}
}

func TestSelfTrailCrash(t *testing.T) {
	// Drive a tight clockwise box; the fourth side re-enters the start
	// cell, which is trail by then.
	e := NewEngine(soloOptions(10, 10, core.C(5, 5), core.DirRight), 1)
	e.StartMatch()

	e.Step() // head (6,5)
	e.SubmitTurn(core.Player1, core.TurnRight)
	e.Step() // head (6,6) facing down
	e.SubmitTurn(core.Player1, core.TurnRight)
	e.Step() // head (5,6) facing left
	e.SubmitTurn(core.Player1, core.TurnRight)
	events := e.Step() // head (5,5) facing up, on own trail

	c := e.Cycles()[0]
	if !c.Dead {
		t.Fatal("cycle should die crossing its own trail")
	}

	found := false
	for _, ev := range events {
		if ce, ok := ev.(CrashEvent); ok {
			found = true
			if ce.Cause != CrashTrail {
				t.Errorf("crash cause = %v, expected trail", ce.Cause)
			}
			if ce.At != core.C(5, 5) {
				t.Errorf("crash cell = %v, expected (5,5)", ce.At)
			}
		}
	}
	if !found {
		t.Error("no CrashEvent emitted")
	}
}

func TestWalkerOverlapDeath(t *testing.T) {
	// Walker parked at (3,3), cycle's next head is (3,3) with no wall or
	// trail in the way: death by walker overlap.
	e := NewEngine(soloOptions(10, 10, core.C(2, 3), core.DirRight), 1)
	e.StartMatch()
	e.walkers = []*Walker{{Pos: core.C(3, 3)}} // cadence 2: holds still on tick 1

	events := e.Step()

	if !e.Cycles()[0].Dead {
		t.Fatal("cycle should die on walker overlap")
	}
	for _, ev := range events {
		if ce, ok := ev.(CrashEvent); ok {
			if ce.Cause != CrashWalker {
				t.Errorf("crash cause = %v, expected walker", ce.Cause)
			}
			if ce.At != core.C(3, 3) {
				t.Errorf("crash cell = %v, expected (3,3)", ce.At)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	// Two engines with the same seed and a CPU-vs-CPU match must produce
	// identical snapshots tick by tick.
	opts := DefaultOptions()
	for i := range opts.Starts {
		opts.Starts[i].Human = false
	}

	e1 := NewEngine(opts, 12345)
	e2 := NewEngine(opts, 12345)
	e1.StartMatch()
	e2.StartMatch()

	for i := 0; i < 500; i++ {
		e1.Step()
		e2.Step()

		s1 := e1.Snapshot()
		s2 := e2.Snapshot()
		if !reflect.DeepEqual(s1, s2) {
			t.Fatalf("snapshots diverged at tick %d:\n%+v\n%+v", i+1, s1, s2)
		}
		if e1.State() == StateGameOver {
			return
		}
	}
}

func TestTrailMonotonicity(t *testing.T) {
	// While alive, a trail grows by exactly one cell per tick; once dead
	// it is frozen.
	opts := DefaultOptions()
	for i := range opts.Starts {
		opts.Starts[i].Human = false
	}

	e := NewEngine(opts, 7)
	e.StartMatch()

	prev := make(map[core.PlayerID]int)
	wasDead := make(map[core.PlayerID]bool)
	for _, c := range e.Cycles() {
		prev[c.ID] = len(c.Trail)
	}

	for i := 0; i < 2000 && e.State() == StatePlaying; i++ {
		e.Step()
		for _, c := range e.Cycles() {
			grown := len(c.Trail) - prev[c.ID]
			if wasDead[c.ID] {
				if grown != 0 {
					t.Fatalf("%v trail grew after death", c.ID)
				}
			} else if grown != 1 {
				t.Fatalf("%v trail grew by %d in one tick, expected 1", c.ID, grown)
			}
			prev[c.ID] = len(c.Trail)
			wasDead[c.ID] = c.Dead
		}
	}
}

func TestBoundsInvariant(t *testing.T) {
	// After any number of ticks, every living cycle and every walker is
	// inside the arena; an out-of-bounds head only ever belongs to a
	// cycle marked dead that same tick.
	opts := DefaultOptions()
	for i := range opts.Starts {
		opts.Starts[i].Human = false
	}

	e := NewEngine(opts, 99)
	e.StartMatch()

	for i := 0; i < 2000 && e.State() == StatePlaying; i++ {
		e.Step()
		for _, c := range e.Cycles() {
			if !c.Dead && !e.Arena().Contains(c.Head) {
				t.Fatalf("living cycle %v out of bounds at %v", c.ID, c.Head)
			}
		}
		for _, w := range e.Walkers() {
			if !e.Arena().Contains(w.Pos) {
				t.Fatalf("walker out of bounds at %v", w.Pos)
			}
		}
	}
}

func TestWinnerScoresOnce(t *testing.T) {
	// Player 2 drives straight into the left wall; player 1 survives and
	// scores exactly one point.
	e := NewEngine(duelOptions(20, 20,
		StartSpot{Pos: core.C(10, 10), Dir: core.DirRight},
		StartSpot{Pos: core.C(1, 5), Dir: core.DirLeft},
	), 1)
	e.StartMatch()

	e.Step()
	events := e.Step()

	if e.State() != StateGameOver {
		t.Fatalf("state = %v, expected game_over", e.State())
	}
	winner, draw := e.Winner()
	if draw || winner != core.Player1 {
		t.Fatalf("winner = %v (draw=%v), expected player 1", winner, draw)
	}
	if e.Score(core.Player1) != 1 || e.Score(core.Player2) != 0 {
		t.Errorf("scores = %d/%d, expected 1/0", e.Score(core.Player1), e.Score(core.Player2))
	}

	for _, ev := range events {
		if me, ok := ev.(MatchEndedEvent); ok {
			if me.Winner != core.Player1 || me.Draw {
				t.Errorf("MatchEndedEvent = %+v, expected player 1 win", me)
			}
			if me.Scores[core.Player1] != 1 {
				t.Errorf("event score tally = %d, expected 1", me.Scores[core.Player1])
			}
		}
	}
}

func TestScoresPersistAcrossMatches(t *testing.T) {
	e := NewEngine(duelOptions(20, 20,
		StartSpot{Pos: core.C(10, 10), Dir: core.DirRight},
		StartSpot{Pos: core.C(1, 5), Dir: core.DirLeft},
	), 1)
	e.StartMatch()
	e.Step()
	e.Step()

	if e.Score(core.Player1) != 1 {
		t.Fatalf("setup failed: score = %d", e.Score(core.Player1))
	}

	e.Restart()

	if e.State() != StatePlaying {
		t.Errorf("state after Restart = %v, expected playing", e.State())
	}
	if e.Score(core.Player1) != 1 {
		t.Error("session score did not survive the restart")
	}
	for _, c := range e.Cycles() {
		if c.Dead || len(c.Trail) != 0 {
			t.Error("restart did not produce fresh cycles")
		}
	}

	e.ResetScores()
	if e.Score(core.Player1) != 0 {
		t.Error("ResetScores did not zero the tally")
	}
}

func TestSubmitTurnContract(t *testing.T) {
	e := NewEngine(soloOptions(10, 10, core.C(5, 5), core.DirRight), 1)

	// Outside PLAYING: silent no-op.
	e.SubmitTurn(core.Player1, core.TurnLeft)

	e.StartMatch()

	// Unknown player: silent no-op.
	e.SubmitTurn(core.PlayerID(99), core.TurnLeft)
	if e.queue.Len(core.PlayerID(99)) != 0 {
		t.Error("turn for unknown player was queued")
	}

	e.SubmitTurn(core.Player1, core.TurnLeft)
	if e.queue.Len(core.Player1) != 1 {
		t.Error("valid turn was not queued")
	}
}

func TestOneTurnAppliedPerTick(t *testing.T) {
	// Three queued turns drain over three ticks, not in one.
	e := NewEngine(soloOptions(30, 30, core.C(15, 15), core.DirRight), 1)
	e.StartMatch()

	e.SubmitTurn(core.Player1, core.TurnLeft)
	e.SubmitTurn(core.Player1, core.TurnLeft)
	e.SubmitTurn(core.Player1, core.TurnLeft)

	e.Step()
	if got := e.Cycles()[0].Dir; got != core.DirUp {
		t.Errorf("after tick 1 facing = %v, expected up", got)
	}
	e.Step()
	if got := e.Cycles()[0].Dir; got != core.DirLeft {
		t.Errorf("after tick 2 facing = %v, expected left", got)
	}
	e.Step()
	if got := e.Cycles()[0].Dir; got != core.DirDown {
		t.Errorf("after tick 3 facing = %v, expected down", got)
	}
}

func TestAbortReturnsToMenu(t *testing.T) {
	e := NewEngine(soloOptions(10, 10, core.C(5, 5), core.DirRight), 1)
	e.StartMatch()
	e.Step()

	e.Abort()

	if e.State() != StateMenu {
		t.Errorf("state = %v, expected menu", e.State())
	}
	if len(e.Cycles()) != 0 {
		t.Error("aborted match left cycles behind")
	}
	if e.Step() != nil {
		t.Error("Step in menu state should be a no-op")
	}
}

func TestTogglePauseFreezesSimulation(t *testing.T) {
	e := NewEngine(soloOptions(10, 10, core.C(5, 5), core.DirRight), 1)
	e.StartMatch()
	e.Step()

	e.TogglePause()
	if e.State() != StatePaused {
		t.Fatalf("state = %v, expected paused", e.State())
	}
	if e.Step() != nil {
		t.Error("Step while paused should be a no-op")
	}
	if e.TickCount() != 1 {
		t.Errorf("tick count advanced while paused: %d", e.TickCount())
	}

	e.TogglePause()
	if e.State() != StatePlaying {
		t.Fatalf("state = %v, expected playing after resume", e.State())
	}
	e.Step()
	if e.TickCount() != 2 {
		t.Errorf("tick count = %d after resume, expected 2", e.TickCount())
	}

	// Pausing outside a match does nothing.
	e.Abort()
	e.TogglePause()
	if e.State() != StateMenu {
		t.Errorf("pause in menu moved state to %v", e.State())
	}
}

func TestWalkerSpawnClearance(t *testing.T) {
	opts := DefaultOptions()
	e := NewEngine(opts, 1)
	e.StartMatch()

	if len(e.Walkers()) != opts.WalkerCount {
		t.Fatalf("spawned %d walkers, expected %d", len(e.Walkers()), opts.WalkerCount)
	}
	for _, w := range e.Walkers() {
		for _, s := range opts.Starts {
			if core.Abs(w.Pos.X-s.Pos.X) <= walkerClearance {
				t.Errorf("walker at %v spawned within %d columns of start %v",
					w.Pos, walkerClearance, s.Pos)
			}
		}
	}
}

func TestMatchStartedEvent(t *testing.T) {
	e := NewEngine(soloOptions(10, 10, core.C(5, 5), core.DirRight), 1)

	events := e.StartMatch()
	if len(events) != 1 {
		t.Fatalf("StartMatch produced %d events, expected 1", len(events))
	}
	if _, ok := events[0].(MatchStartedEvent); !ok {
		t.Errorf("StartMatch event = %T, expected MatchStartedEvent", events[0])
	}

	// Starting again while playing is a no-op.
	if e.StartMatch() != nil {
		t.Error("StartMatch while playing should be a no-op")
	}
}
