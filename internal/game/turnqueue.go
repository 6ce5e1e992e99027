package game

import (
	"github.com/gridrun/lightcycles/internal/core"
)

// maxQueuedTurns bounds how much steering input may buffer ahead of the
// simulation. Keys repeat far faster than the 80ms tick; without a cap a
// held key would build up seconds of queued turns.
const maxQueuedTurns = 3

// TurnQueue buffers per-cycle steering intents until the engine consumes
// them, at most one per tick. Queued entries are absolute facings: the
// relative left/right request is resolved against the pending facing at
// enqueue time.
type TurnQueue struct {
	pending map[core.PlayerID][]core.Dir
}

// NewTurnQueue creates an empty queue.
func NewTurnQueue() *TurnQueue {
	return &TurnQueue{
		pending: make(map[core.PlayerID][]core.Dir),
	}
}

// Push resolves a relative turn against the pending facing (the last
// queued direction if any, else the live facing) and appends the result.
// A request whose result equals the live facing is dropped: left-then-right
// before either is consumed would only re-queue the direction the cycle is
// already traveling. Requests beyond the depth cap are silently dropped.
func (q *TurnQueue) Push(id core.PlayerID, live core.Dir, turn core.Turn) {
	queued := q.pending[id]
	if len(queued) >= maxQueuedTurns {
		return
	}

	base := live
	if len(queued) > 0 {
		base = queued[len(queued)-1]
	}

	next := base.TurnLeft()
	if turn == core.TurnRight {
		next = base.TurnRight()
	}
	if len(queued) > 0 && next == live {
		return
	}

	q.pending[id] = append(queued, next)
}

// Pop removes and returns the oldest queued facing for the cycle.
func (q *TurnQueue) Pop(id core.PlayerID) (core.Dir, bool) {
	queued := q.pending[id]
	if len(queued) == 0 {
		return 0, false
	}
	dir := queued[0]
	q.pending[id] = queued[1:]
	return dir, true
}

// Len returns the number of turns waiting for the cycle.
func (q *TurnQueue) Len(id core.PlayerID) int {
	return len(q.pending[id])
}

// Clear drops all queued turns for all cycles.
func (q *TurnQueue) Clear() {
	q.pending = make(map[core.PlayerID][]core.Dir)
}
