package rqueue

import (
	"testing"

	"github.com/Ccheng2729111/fiberqueue/priority"
	"github.com/Ccheng2729111/fiberqueue/update"
	"github.com/stretchr/testify/assert"
)

func TestNewQueueIsEmpty(t *testing.T) {
	q := New("base")
	assert.Equal(t, "base", q.BaseState)
	assert.True(t, q.IsEmpty())
	assert.Nil(t, q.FirstUpdate())
	assert.Nil(t, q.LastUpdate())
	assert.Equal(t, priority.NoWork, q.ResidualPriority())
}

func TestAppendGrowsChain(t *testing.T) {
	q := New("base")

	u1 := update.New(1)
	u2 := update.New(2)

	Append(q, u1)
	assert.Same(t, u1, q.FirstUpdate())
	assert.Same(t, u1, q.LastUpdate())
	assert.False(t, q.IsEmpty())

	Append(q, u2)
	assert.Same(t, u1, q.FirstUpdate())
	assert.Same(t, u2, q.LastUpdate())
	assert.Same(t, u2, u1.Next())
	assert.Equal(t, priority.Priority(2), q.ResidualPriority())
}

func TestCloneSharesChainButNotCapturedOrEffects(t *testing.T) {
	q := New("base")
	u := update.New(1)
	Append(q, u)
	AppendCaptured(q, update.New(1))
	q.firstEffect = update.New(1)
	q.lastEffect = q.firstEffect

	clone := Clone(q)

	assert.Same(t, q.FirstUpdate(), clone.FirstUpdate())
	assert.Same(t, q.LastUpdate(), clone.LastUpdate())
	assert.Nil(t, clone.FirstCapturedUpdate())
	assert.Nil(t, clone.firstEffect)
	assert.Nil(t, clone.lastEffect)
	assert.Equal(t, q.BaseState, clone.BaseState)
}

func TestSetLastUpdateDoesNotAppend(t *testing.T) {
	q := New("base")
	u1 := update.New(1)
	Append(q, u1)

	u2 := update.New(2)
	// Simulate the "append to one chain, move the other's tail" case: u2 is
	// linked onto u1 by some other queue sharing the same tail record, and
	// this queue just needs its lastUpdate moved.
	u1.SetNext(u2)
	SetLastUpdate(q, u2)

	assert.Same(t, u2, q.LastUpdate())
	assert.Same(t, u1, q.FirstUpdate())
}
