package registry

import (
	"testing"

	"github.com/Ccheng2729111/fiberqueue/binding"
	"github.com/Ccheng2729111/fiberqueue/priority"
	"github.com/stretchr/testify/assert"
)

func TestUpsertAndHighest(t *testing.T) {
	r := New()

	low := binding.NewNode(nil)
	low.ResidualPriority = 1
	high := binding.NewNode(nil)
	high.ResidualPriority = 5

	r.Upsert(low)
	r.Upsert(high)

	assert.Equal(t, 2, r.Len())

	node, ok := r.Highest()
	assert.True(t, ok)
	assert.Same(t, high, node)
}

func TestUpsertRemovesWhenNoWork(t *testing.T) {
	r := New()

	n := binding.NewNode(nil)
	n.ResidualPriority = 3
	r.Upsert(n)
	assert.Equal(t, 1, r.Len())

	n.ResidualPriority = priority.NoWork
	r.Upsert(n)
	assert.Equal(t, 0, r.Len())

	_, ok := r.Highest()
	assert.False(t, ok)
}

func TestRemove(t *testing.T) {
	r := New()
	n := binding.NewNode(nil)
	n.ResidualPriority = 2
	r.Upsert(n)

	r.Remove(n)
	assert.Equal(t, 0, r.Len())
}

func TestAtOrAboveDescendingOrderAndFloor(t *testing.T) {
	r := New()

	n1 := binding.NewNode(nil)
	n1.ResidualPriority = 1
	n2 := binding.NewNode(nil)
	n2.ResidualPriority = 3
	n3 := binding.NewNode(nil)
	n3.ResidualPriority = 2

	r.Upsert(n1)
	r.Upsert(n2)
	r.Upsert(n3)

	var seen []*binding.Node
	r.AtOrAbove(2, func(n *binding.Node) bool {
		seen = append(seen, n)
		return true
	})

	assert.Equal(t, []*binding.Node{n2, n3}, seen)
}

func TestUpsertReindexesOnPriorityChange(t *testing.T) {
	r := New()
	n := binding.NewNode(nil)
	n.ResidualPriority = 1
	r.Upsert(n)

	n.ResidualPriority = 9
	r.Upsert(n)

	assert.Equal(t, 1, r.Len())
	node, ok := r.Highest()
	assert.True(t, ok)
	assert.Same(t, n, node)
}
