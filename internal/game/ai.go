package game

import (
	"math/rand"

	"github.com/gridrun/lightcycles/internal/core"
)

// Flood fill tuning. The visit cap bounds the cost of a decision; the
// reachable-area count is only a survivability proxy, so exactness past
// the cap buys nothing.
const (
	defaultFloodDepth = 20
	floodCapPerDepth  = 5
)

// Pilot selects moves for CPU-controlled cycles with a greedy open-space
// heuristic: consider straight, left and right, discard moves that die
// immediately, and prefer the candidate from which the largest free area
// is reachable. No lookahead beyond the flood fill - the classic Tron bot.
type Pilot struct {
	rng      *rand.Rand
	floodCap int
}

// NewPilot creates a pilot. The rng drives candidate shuffling and is the
// injection point for deterministic tests. depth <= 0 selects the default.
func NewPilot(rng *rand.Rand, depth int) *Pilot {
	if depth <= 0 {
		depth = defaultFloodDepth
	}
	return &Pilot{
		rng:      rng,
		floodCap: depth * floodCapPerDepth,
	}
}

// Choose returns the next facing for the given cycle. Candidates are
// shuffled before evaluation so that ties between equally open moves do
// not systematically favor one rotational direction; a strictly larger
// flood count wins, so the shuffle decides ties. If every candidate dies
// immediately the cycle keeps going straight and accepts the crash.
func (p *Pilot) Choose(self *Cycle, cycles []*Cycle, arena core.Arena) core.Dir {
	// Every direction except straight back into the cycle's own trail.
	back := self.Dir.Opposite()
	candidates := make([]core.Dir, 0, 3)
	for d := core.DirUp; d <= core.DirLeft; d++ {
		if d != back {
			candidates = append(candidates, d)
		}
	}
	p.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	obs := obstacles(cycles, true)

	best := self.Dir
	bestCount := -1
	for _, d := range candidates {
		next := self.Head.Step(d)
		if hitsWallOrTrail(next, arena, obs) {
			continue
		}
		if n := p.floodCount(next, arena, obs); n > bestCount {
			best, bestCount = d, n
		}
	}

	if bestCount < 0 {
		return self.Dir
	}
	return best
}

// floodCount breadth-first counts free cells reachable from start, capped
// at the pilot's visit budget.
func (p *Pilot) floodCount(start core.Coord, arena core.Arena, obs obstacleSet) int {
	visited := map[core.Coord]struct{}{start: {}}
	queue := []core.Coord{start}

	count := 0
	for len(queue) > 0 && count < p.floodCap {
		cur := queue[0]
		queue = queue[1:]
		count++

		for d := core.DirUp; d <= core.DirLeft; d++ {
			n := cur.Step(d)
			if !arena.Contains(n) || obs.has(n) {
				continue
			}
			if _, seen := visited[n]; seen {
				continue
			}
			visited[n] = struct{}{}
			queue = append(queue, n)
		}
	}
	return count
}
