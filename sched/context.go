// Package sched holds the process-scoped state the processor needs between
// calls: the hasForceUpdate flag and a dev-mode "currently processing queue"
// pointer. Rather than true package globals, both live on a ProcessContext
// keyed by the calling goroutine, so two independent hosts never step on
// each other's flag.
package sched

import (
	"sync"

	"github.com/petermattis/goid"
)

// ProcessContext carries the state a single host's queue processing needs
// across calls. It is not itself safe for concurrent use by two goroutines
// driving the same host; the concurrency model assumes one goroutine per
// host.
type ProcessContext struct {
	hasForceUpdate bool

	// currentlyProcessing is set for the duration of ProcessQueue and read
	// through CurrentlyProcessing, so a caller can detect a reducer that
	// enqueues while its queue is being folded. Nothing in this module checks
	// it or emits a warning.
	currentlyProcessing interface{}
}

var (
	contexts sync.Map // goroutine id (int64) -> *ProcessContext
)

// For returns the ProcessContext for the calling goroutine, creating one on
// first use.
func For() *ProcessContext {
	gid := goid.Get()

	if ctx, ok := contexts.Load(gid); ok {
		return ctx.(*ProcessContext)
	}

	ctx := &ProcessContext{}
	contexts.Store(gid, ctx)
	return ctx
}

// ResetHasForceUpdate clears the flag before a processing pass begins.
func (c *ProcessContext) ResetHasForceUpdate() {
	c.hasForceUpdate = false
}

// ConsumeHasForceUpdate reports whether a ForceUpdate record was applied
// during the most recent processing pass. It does not reset the flag itself;
// callers call ResetHasForceUpdate before the next pass.
func (c *ProcessContext) ConsumeHasForceUpdate() bool {
	return c.hasForceUpdate
}

// MarkForceUpdate is called by the processor when it applies a ForceUpdate
// record.
func (c *ProcessContext) MarkForceUpdate() {
	c.hasForceUpdate = true
}

// BeginProcessing records queue as the one currently being folded, so a
// reentrant enqueue from inside a reducer can be flagged. It returns a
// function that clears the pointer; callers defer it.
func (c *ProcessContext) BeginProcessing(queue interface{}) func() {
	prev := c.currentlyProcessing
	c.currentlyProcessing = queue
	return func() { c.currentlyProcessing = prev }
}

// CurrentlyProcessing returns the queue being folded right now, or nil.
func (c *ProcessContext) CurrentlyProcessing() interface{} {
	return c.currentlyProcessing
}
