// Package binding implements the double-buffered per-node pair: a committed
// Node and its work-in-progress Alternate, at most one Queue header each,
// the two sharing a chain tail by structural sharing.
package binding

import (
	"log/slog"

	"github.com/Ccheng2729111/fiberqueue/priority"
	"github.com/Ccheng2729111/fiberqueue/rqueue"
	"github.com/Ccheng2729111/fiberqueue/sched"
	"github.com/Ccheng2729111/fiberqueue/update"
)

// EffectFlags is a bitset of per-node effect bookkeeping: a pending
// callback, and the error-boundary capture state.
type EffectFlags uint8

const (
	FlagNone EffectFlags = 0
	// FlagCallback marks a node with at least one effect awaiting commit.
	FlagCallback EffectFlags = 1 << iota
	// FlagShouldCapture marks a node an error boundary should intercept.
	FlagShouldCapture
	// FlagDidCapture marks a node that already captured an error this pass.
	FlagDidCapture
)

// Node is one side of a tree node's double buffer. A tree node owns a
// current/alternate pair; each Node carries at most one *rqueue.Queue.
type Node struct {
	MemoizedState interface{}

	// ResidualPriority is the highest priority still pending in this node's
	// queue after its last processing pass, or priority.NoWork.
	ResidualPriority priority.Priority

	Flags EffectFlags

	alternate *Node
	queue     *rqueue.Queue
}

// NewNode returns an unpaired Node seeded with the given initial state. Call
// Pair to link it to its alternate.
func NewNode(initialState interface{}) *Node {
	return &Node{MemoizedState: initialState, ResidualPriority: priority.NoWork}
}

// Pair links a and b as each other's alternate, as a reconciler does when it
// creates the work-in-progress side of a tree node from its committed side.
func Pair(a, b *Node) {
	a.alternate = b
	b.alternate = a
}

// Alternate returns the other side of the double buffer, or nil if this Node
// has not been paired.
func (n *Node) Alternate() *Node { return n.alternate }

// Queue returns this side's queue header, or nil if nothing has ever been
// enqueued on it.
func (n *Node) Queue() *rqueue.Queue { return n.queue }

// HasFlag reports whether f is set.
func (n *Node) HasFlag(f EffectFlags) bool { return n.Flags&f != 0 }

// rqueue.Target implementation -- the processor's hooks back into the node.

// ClearShouldCapture implements rqueue.Target.
func (n *Node) ClearShouldCapture() { n.Flags &^= FlagShouldCapture }

// SetDidCapture implements rqueue.Target.
func (n *Node) SetDidCapture() { n.Flags |= FlagDidCapture }

// MarkEffectPending implements rqueue.Target.
func (n *Node) MarkEffectPending() { n.Flags |= FlagCallback }

func (n *Node) ensureQueue() {
	if n.queue == nil {
		n.queue = rqueue.New(n.MemoizedState)
	}
}

// EnqueueUpdate attaches u to both sides of n's double buffer, cloning
// whichever side lacks a queue and preserving structural sharing of the
// chain tail between sides that already have one.
func EnqueueUpdate(n *Node, u *update.Update) {
	a := n
	b := n.alternate

	if b == nil {
		a.ensureQueue()
		rqueue.Append(a.queue, u)
		return
	}

	if a.queue == nil && b.queue == nil {
		a.queue = rqueue.New(a.MemoizedState)
		b.queue = rqueue.New(b.MemoizedState)
	} else if a.queue == nil {
		a.queue = rqueue.Clone(b.queue)
	} else if b.queue == nil {
		b.queue = rqueue.Clone(a.queue)
	}

	q1, q2 := a.queue, b.queue

	if q1 == q2 {
		rqueue.Append(q1, u)
		return
	}

	if q1.IsEmpty() || q2.IsEmpty() {
		rqueue.Append(q1, u)
		rqueue.Append(q2, u)
		return
	}

	// Both non-empty: their tails are the same record by structural sharing.
	// Append once, then move the other side's tail pointer -- appending
	// again would make the new record its own next.
	rqueue.Append(q1, u)
	rqueue.SetLastUpdate(q2, u)
}

// EnqueueCapturedUpdate appends u to the work-in-progress side's captured
// chain only. workInProgress's queue is first made a fresh clone if it is
// currently object-identical to the committed queue, so captured updates
// never leak into the committed view.
func EnqueueCapturedUpdate(workInProgress *Node, u *update.Update) {
	current := workInProgress.alternate

	switch {
	case workInProgress.queue == nil && current != nil && current.queue != nil:
		workInProgress.queue = rqueue.Clone(current.queue)
	case workInProgress.queue == nil:
		workInProgress.queue = rqueue.New(workInProgress.MemoizedState)
	case current != nil && workInProgress.queue == current.queue:
		workInProgress.queue = rqueue.Clone(workInProgress.queue)
	}

	rqueue.AppendCaptured(workInProgress.queue, u)
}

// EnsureWorkInProgressClone guarantees workInProgress.queue is not the same
// object as its alternate's queue, cloning it in place if needed. This is
// the precondition ProcessNode relies on before folding a queue.
func EnsureWorkInProgressClone(workInProgress *Node) {
	current := workInProgress.alternate

	if workInProgress.queue == nil {
		if current != nil && current.queue != nil {
			workInProgress.queue = rqueue.Clone(current.queue)
		} else {
			workInProgress.queue = rqueue.New(workInProgress.MemoizedState)
		}
		return
	}

	if current != nil && workInProgress.queue == current.queue {
		workInProgress.queue = rqueue.Clone(workInProgress.queue)
	}
}

// ProcessNode folds workInProgress's queue at renderPriority, storing the
// result back onto the node: MemoizedState and ResidualPriority. props is
// passed to every Reducer payload unchanged; instance is handed to
// rqueue.ProcessQueue but no Reducer receives it. Callbacks get their
// instance from Commit, not from here.
func ProcessNode(ctx *sched.ProcessContext, workInProgress *Node, props, instance interface{}, renderPriority priority.Priority) error {
	EnsureWorkInProgressClone(workInProgress)

	state, residual, err := rqueue.ProcessQueue(ctx, workInProgress, workInProgress.queue, props, instance, renderPriority)
	if err != nil {
		return err
	}

	workInProgress.MemoizedState = state
	workInProgress.ResidualPriority = residual
	return nil
}

// Commit fires workInProgress's pending effects with instance as their
// receiver argument, using logger for any recovered callback panics (nil is
// fine and silences logging).
func Commit(workInProgress *Node, instance interface{}, logger *slog.Logger) {
	if workInProgress.queue == nil {
		return
	}
	rqueue.CommitQueue(workInProgress.queue, instance, logger)
	workInProgress.Flags &^= FlagCallback
}

// Discard drops workInProgress's queue, re-cloning it from current the next
// time work starts. This is how a host cancels an interrupted render;
// nothing here touches the committed side.
func Discard(workInProgress *Node) {
	workInProgress.queue = nil
	workInProgress.Flags &^= (FlagCallback | FlagDidCapture | FlagShouldCapture)
}
