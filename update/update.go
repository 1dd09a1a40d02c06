// Package update defines the single requested mutation that flows through a
// rqueue.Queue: a payload, a tag, a priority, an optional completion
// callback, and the two forward links (insertion chain and effects chain)
// that rqueue and binding thread it onto.
package update

import (
	"errors"

	"github.com/Ccheng2729111/fiberqueue/priority"
)

// ErrInvalidCallback is returned by SetCallback when v is neither nil nor a
// func(interface{}), surfaced at call time since the core cannot recover
// from a caller passing the wrong shape.
var ErrInvalidCallback = errors.New("update: callback must be a func(interface{}) or nil")

// Tag discriminates how a record's payload should be folded into state.
type Tag uint8

const (
	// UpdateState merges a partial state into the previous state.
	UpdateState Tag = iota
	// ReplaceState replaces the previous state outright.
	ReplaceState
	// ForceUpdate carries no state change; it only flips hasForceUpdate.
	ForceUpdate
	// CaptureUpdate is UpdateState semantics plus DidCapture bookkeeping,
	// injected by error-boundary recovery during render.
	CaptureUpdate
)

func (t Tag) String() string {
	switch t {
	case UpdateState:
		return "UpdateState"
	case ReplaceState:
		return "ReplaceState"
	case ForceUpdate:
		return "ForceUpdate"
	case CaptureUpdate:
		return "CaptureUpdate"
	default:
		return "Tag(?)"
	}
}

// Reducer derives a state fragment from the previous state and the node's
// current props. It receives no host instance: the processor calls it with
// the previous state and the props only.
type Reducer func(prevState, nextProps interface{}) interface{}

// RootPayload is the payload shape used for updates enqueued on the root of
// the tree: it carries the new tree element rather than a state fragment.
type RootPayload struct {
	Element interface{}
}

// Update is a single requested mutation. It is append-only after creation
// except for Callback (cleared once fired) and nextEffect (reset at the
// start of every processing pass).
type Update struct {
	Priority priority.Priority
	Tag      Tag

	// Payload is nil, a state fragment, a Reducer, or a RootPayload.
	Payload interface{}

	// Callback fires once after commit, with the host instance as its
	// argument. Cleared before it is invoked so a retry can't double-fire it.
	Callback func(instance interface{})

	next       *Update
	nextEffect *Update
}

// New returns a fresh UpdateState record at the given priority. It is the
// only constructor; callers mutate Payload, Callback, and Tag before enqueue.
func New(p priority.Priority) *Update {
	return &Update{
		Priority: p,
		Tag:      UpdateState,
	}
}

// Next returns the next record in the insertion chain, or nil at the tail.
func (u *Update) Next() *Update { return u.next }

// NextEffect returns the next record in the effects chain assembled during
// the most recent processing pass.
func (u *Update) NextEffect() *Update { return u.nextEffect }

// SetNext links u to the next record in an insertion chain. Only rqueue and
// binding, which own chain construction, are expected to call this.
func (u *Update) SetNext(n *Update) { u.next = n }

// SetNextEffect links u to the next record in an effects chain. Reset to nil
// at the start of every processing pass, per the queue header's invariant
// that the effects chain is rebuilt from scratch each time.
func (u *Update) SetNextEffect(n *Update) { u.nextEffect = n }

// SetCallback validates v and assigns it as u.Callback. It exists for hosts
// that receive the callback as an interface{} (e.g. decoded from a dynamic
// configuration value or bridged from another language binding) rather than
// a statically typed func. Code calling from ordinary Go can just assign
// u.Callback directly.
func (u *Update) SetCallback(v interface{}) error {
	if v == nil {
		u.Callback = nil
		return nil
	}

	cb, ok := v.(func(interface{}))
	if !ok {
		return ErrInvalidCallback
	}

	u.Callback = cb
	return nil
}
