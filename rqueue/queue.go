// Package rqueue implements the queue header and processor at the heart of
// the update queue: a persistent chain of update.Update records, a base
// state they are folded against, and the fold itself (ProcessQueue).
package rqueue

import (
	"github.com/Ccheng2729111/fiberqueue/priority"
	"github.com/Ccheng2729111/fiberqueue/update"
)

// Queue is a header over a shared singly-linked list of update records. Two
// headers (e.g. a binding.Node's current and alternate) can alias the same
// chain by structural sharing; see New and Clone.
type Queue struct {
	// BaseState is the state against which the first remaining update is
	// applied.
	BaseState interface{}

	firstUpdate, lastUpdate *update.Update

	// firstCapturedUpdate/lastCapturedUpdate hold updates produced by
	// error-boundary capture during rendering. Populated only on a
	// work-in-progress queue.
	firstCapturedUpdate, lastCapturedUpdate *update.Update

	// firstEffect/lastEffect and firstCapturedEffect/lastCapturedEffect are
	// rebuilt from scratch on every processing pass and are never persisted
	// across commits.
	firstEffect, lastEffect                 *update.Update
	firstCapturedEffect, lastCapturedEffect *update.Update
}

// New returns a queue header with baseState set and every chain empty.
func New(baseState interface{}) *Queue {
	return &Queue{BaseState: baseState}
}

// Clone returns a new header whose BaseState, firstUpdate, and lastUpdate
// are identical to q's (structural sharing of the chain) and whose captured
// and effect fields are all nil. Cloning never copies the chain; it creates
// a new viewport onto it.
func Clone(q *Queue) *Queue {
	return &Queue{
		BaseState:   q.BaseState,
		firstUpdate: q.firstUpdate,
		lastUpdate:  q.lastUpdate,
	}
}

// FirstUpdate returns the head of the normal insertion chain.
func (q *Queue) FirstUpdate() *update.Update { return q.firstUpdate }

// LastUpdate returns the tail of the normal insertion chain.
func (q *Queue) LastUpdate() *update.Update { return q.lastUpdate }

// FirstCapturedUpdate returns the head of the captured-update chain.
func (q *Queue) FirstCapturedUpdate() *update.Update { return q.firstCapturedUpdate }

// IsEmpty reports whether the normal insertion chain holds no updates.
func (q *Queue) IsEmpty() bool { return q.firstUpdate == nil }

// ResidualPriority returns the highest priority still present in either
// chain, or priority.NoWork if both are fully drained. It is recomputed by
// walking the chains rather than cached, since the chains can be mutated by
// enqueue between processing passes.
func (q *Queue) ResidualPriority() priority.Priority {
	residual := priority.NoWork
	for u := q.firstUpdate; u != nil; u = u.Next() {
		residual = priority.Max(residual, u.Priority)
	}
	for u := q.firstCapturedUpdate; u != nil; u = u.Next() {
		residual = priority.Max(residual, u.Priority)
	}
	return residual
}

// Append adds u to the tail of the normal insertion chain.
func Append(q *Queue, u *update.Update) {
	if q.lastUpdate == nil {
		q.firstUpdate = u
	} else {
		q.lastUpdate.SetNext(u)
	}
	q.lastUpdate = u
}

// AppendCaptured adds u to the tail of the captured-update chain.
func AppendCaptured(q *Queue, u *update.Update) {
	if q.lastCapturedUpdate == nil {
		q.firstCapturedUpdate = u
	} else {
		q.lastCapturedUpdate.SetNext(u)
	}
	q.lastCapturedUpdate = u
}

// SetLastUpdate rewrites q's tail pointer without appending. Used by the
// double-buffered binding when two queue headers share a tail record: one
// side appends for real, and the other side's lastUpdate is moved onto the
// new record so both sides see it without the record becoming its own next.
func SetLastUpdate(q *Queue, u *update.Update) {
	q.lastUpdate = u
}
