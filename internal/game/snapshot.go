package game

import "github.com/gridrun/lightcycles/internal/core"

// CycleSnapshot captures one cycle's observable state.
type CycleSnapshot struct {
	ID       core.PlayerID
	Head     core.Coord
	Dir      core.Dir
	TrailLen int
	Dead     bool
	Score    int
}

// Snapshot captures the complete engine state for determinism testing.
// Slices rather than maps so snapshots compare with reflect.DeepEqual.
type Snapshot struct {
	Tick    uint64
	State   State
	Winner  core.PlayerID
	Draw    bool
	Cycles  []CycleSnapshot
	Walkers []core.Coord
}

// Snapshot returns the current engine snapshot, in stable cycle order.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   e.tick,
		State:  e.state,
		Winner: e.winner,
		Draw:   e.draw,
	}
	for _, c := range e.cycles {
		snap.Cycles = append(snap.Cycles, CycleSnapshot{
			ID:       c.ID,
			Head:     c.Head,
			Dir:      c.Dir,
			TrailLen: len(c.Trail),
			Dead:     c.Dead,
			Score:    e.scores[c.ID],
		})
	}
	for _, w := range e.walkers {
		snap.Walkers = append(snap.Walkers, w.Pos)
	}
	return snap
}
