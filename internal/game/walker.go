package game

import (
	"math/rand"

	"github.com/gridrun/lightcycles/internal/core"
)

// Walker is a roaming hazard. It drifts one cell in a random direction on
// its own cadence, ignores trails entirely (it may sit on them) and never
// dies; a cycle whose head overlaps a walker does.
type Walker struct {
	Pos       core.Coord
	moveTimer int
}

// step advances the walker's cadence timer and, when it is due, moves it
// to a uniformly random in-bounds orthogonal neighbor. On a degenerate
// grid with no in-bounds neighbor the walker stays put.
func (w *Walker) step(arena core.Arena, cadence int, rng *rand.Rand) {
	w.moveTimer++
	if w.moveTimer < cadence {
		return
	}
	w.moveTimer = 0

	var neighbors []core.Coord
	for d := core.DirUp; d <= core.DirLeft; d++ {
		if n := w.Pos.Step(d); arena.Contains(n) {
			neighbors = append(neighbors, n)
		}
	}
	if len(neighbors) == 0 {
		return
	}
	w.Pos = neighbors[rng.Intn(len(neighbors))]
}
