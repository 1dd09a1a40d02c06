package inspector

import (
	"fmt"

	"github.com/Ccheng2729111/fiberqueue/binding"
	"github.com/Ccheng2729111/fiberqueue/priority"
	"github.com/Ccheng2729111/fiberqueue/registry"
	"github.com/Ccheng2729111/fiberqueue/update"
)

// Row is one registered node's view as of the moment the snapshot was taken.
type Row struct {
	Node     *binding.Node
	Priority priority.Priority
	Chain    []string
	Captured []string
}

// Snapshot is a point-in-time read of every node a registry.Registry has
// pending work for, highest priority first. Taking a snapshot never mutates
// the registry or any node -- it only walks the exported accessors rqueue
// and update already provide.
func Snapshot(r *registry.Registry) []Row {
	var rows []Row
	r.AtOrAbove(priority.NoWork, func(n *binding.Node) bool {
		row := Row{Node: n, Priority: n.ResidualPriority}
		if q := n.Queue(); q != nil {
			row.Chain = describeChain(q.FirstUpdate())
			row.Captured = describeChain(q.FirstCapturedUpdate())
		}
		rows = append(rows, row)
		return true
	})
	return rows
}

func describeChain(first *update.Update) []string {
	var out []string
	for u := first; u != nil; u = u.Next() {
		out = append(out, fmt.Sprintf("%s@%d", u.Tag, u.Priority))
	}
	return out
}

// PriorityLabel returns cfg's display name for p, or p's raw integer value
// if no name was configured.
func (c Config) PriorityLabel(p priority.Priority) string {
	if c.PriorityNames != nil {
		if name, ok := c.PriorityNames[int64(p)]; ok {
			return name
		}
	}
	return fmt.Sprintf("%d", p)
}
