// Package game implements the light-cycle simulation core: the grid world
// model, movement and collision resolution, the CPU pilot heuristic, walker
// hazards, input turn queueing and the match state machine. It contains no
// I/O and no external dependencies so the whole simulation is testable in
// isolation; the platform layer drives it and consumes its events.
package game

import (
	"github.com/gridrun/lightcycles/internal/core"
)

// Cycle is one light-cycle: a head, the permanent trail behind it and a
// facing. The trail grows by exactly one cell per tick while the cycle is
// alive and is frozen once it is dead.
type Cycle struct {
	ID    core.PlayerID
	Head  core.Coord
	Trail []core.Coord // oldest first, append-only
	Dir   core.Dir
	Dead  bool
	Human bool
	Color core.Color
}

// Alive reports whether the cycle is still in the match.
func (c *Cycle) Alive() bool {
	return !c.Dead
}

// obstacleSet is a hash-set of occupied grid cells. Membership checks are
// O(1), which keeps the collision pass and the pilot's flood fill linear
// in total trail length even on larger grids.
type obstacleSet map[core.Coord]struct{}

func (s obstacleSet) add(c core.Coord) {
	s[c] = struct{}{}
}

func (s obstacleSet) has(c core.Coord) bool {
	_, ok := s[c]
	return ok
}

// obstacles collects every trail cell of every cycle, plus the current
// heads when includeHeads is set. Trails of dead cycles stay lethal.
func obstacles(cycles []*Cycle, includeHeads bool) obstacleSet {
	set := make(obstacleSet)
	for _, c := range cycles {
		for _, t := range c.Trail {
			set.add(t)
		}
		if includeHeads {
			set.add(c.Head)
		}
	}
	return set
}

// hitsWallOrTrail reports whether a candidate head cell collides with the
// arena bounds or with any cell in the obstacle set. A cycle can die on
// its own trail; the owner gets no exemption.
func hitsWallOrTrail(head core.Coord, arena core.Arena, obs obstacleSet) bool {
	if !arena.Contains(head) {
		return true
	}
	return obs.has(head)
}
