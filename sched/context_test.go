package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForIsPerGoroutine(t *testing.T) {
	a := For()
	b := For()
	assert.Same(t, a, b, "same goroutine must reuse the same ProcessContext")

	done := make(chan *ProcessContext, 1)
	go func() {
		done <- For()
	}()
	other := <-done

	assert.NotSame(t, a, other, "a different goroutine must get its own ProcessContext")
}

func TestForceUpdateFlag(t *testing.T) {
	ctx := &ProcessContext{}

	ctx.ResetHasForceUpdate()
	assert.False(t, ctx.ConsumeHasForceUpdate())

	ctx.MarkForceUpdate()
	assert.True(t, ctx.ConsumeHasForceUpdate())

	ctx.ResetHasForceUpdate()
	assert.False(t, ctx.ConsumeHasForceUpdate())
}

func TestBeginProcessing(t *testing.T) {
	ctx := &ProcessContext{}
	assert.Nil(t, ctx.CurrentlyProcessing())

	end := ctx.BeginProcessing("queue-a")
	assert.Equal(t, "queue-a", ctx.CurrentlyProcessing())

	inner := ctx.BeginProcessing("queue-b")
	assert.Equal(t, "queue-b", ctx.CurrentlyProcessing())
	inner()
	assert.Equal(t, "queue-a", ctx.CurrentlyProcessing())

	end()
	assert.Nil(t, ctx.CurrentlyProcessing())
}
