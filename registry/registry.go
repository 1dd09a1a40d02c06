// Package registry is bookkeeping, not policy: it indexes every live
// *binding.Node by the residual priority its queue reported after its last
// processing pass, so a host's scheduler can ask "what's the highest
// pending priority across every node" without rescanning the whole tree. It
// never triggers processing itself; Registry only remembers what
// ProcessQueue already computed.
package registry

import (
	"sync"

	"github.com/Ccheng2729111/fiberqueue/binding"
	"github.com/Ccheng2729111/fiberqueue/priority"
	"github.com/tidwall/btree"
)

type entry struct {
	priority priority.Priority
	seq      uint64
	node     *binding.Node
}

// less orders entries by descending priority (a higher residual priority
// sorts first), with insertion sequence breaking ties so equal-priority
// nodes come out in the order they were last upserted.
func less(a, b entry) bool {
	if a.priority != b.priority {
		return a.priority > b.priority
	}
	return a.seq < b.seq
}

// Registry is safe for concurrent use; unlike rqueue/binding, it is meant to
// be read from a devtools goroutine while hosts keep processing their own
// queues on their own goroutines.
type Registry struct {
	mu     sync.Mutex
	tree   *btree.BTreeG[entry]
	byNode map[*binding.Node]entry
	seq    uint64
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		tree:   btree.NewBTreeG(less),
		byNode: make(map[*binding.Node]entry),
	}
}

// Upsert (re)indexes n under its current ResidualPriority. A node whose
// residual has dropped to priority.NoWork is removed -- there is nothing
// pending to report.
func (r *Registry) Upsert(n *binding.Node) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.byNode[n]; ok {
		r.tree.Delete(old)
		delete(r.byNode, n)
	}

	if n.ResidualPriority == priority.NoWork {
		return
	}

	r.seq++
	e := entry{priority: n.ResidualPriority, seq: r.seq, node: n}
	r.tree.Set(e)
	r.byNode[n] = e
}

// Remove drops n from the registry entirely, e.g. when its owning tree node
// is disposed.
func (r *Registry) Remove(n *binding.Node) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.byNode[n]; ok {
		r.tree.Delete(old)
		delete(r.byNode, n)
	}
}

// Highest returns the node with the highest pending residual priority, or
// (nil, false) if the registry is empty.
func (r *Registry) Highest() (*binding.Node, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.tree.Min()
	if !ok {
		return nil, false
	}
	return e.node, true
}

// AtOrAbove calls fn, in descending priority order, for every registered
// node whose residual priority is >= floor. Iteration stops early if fn
// returns false, or as soon as a lower-priority node is reached.
func (r *Registry) AtOrAbove(floor priority.Priority, fn func(*binding.Node) bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tree.Scan(func(e entry) bool {
		if e.priority < floor {
			return false
		}
		return fn(e.node)
	})
}

// Len reports how many nodes currently have pending work registered.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tree.Len()
}
