package rqueue

import (
	"github.com/Ccheng2729111/fiberqueue/priority"
	"github.com/Ccheng2729111/fiberqueue/sched"
	"github.com/Ccheng2729111/fiberqueue/update"
)

// ProcessQueue folds q against renderPriority, producing a new memoized
// state. It never mutates records that are not reachable from q's own
// chains, and it writes the new BaseState/chains back onto q itself — so
// callers must pass a work-in-progress clone, never a queue shared with a
// committed node. Ensuring that is the caller's responsibility here, since
// only the binding package knows which side of a double buffer q came from;
// see binding.ProcessNode.
//
// It returns the new memoized state and the residual priority: the highest
// priority among updates that were skipped for insufficient priority, or
// priority.NoWork if nothing was skipped.
func ProcessQueue(ctx *sched.ProcessContext, target Target, q *Queue, props, instance interface{}, renderPriority priority.Priority) (interface{}, priority.Priority, error) {
	ctx.ResetHasForceUpdate()
	end := ctx.BeginProcessing(q)
	defer end()

	resultState := q.BaseState
	newBaseState := q.BaseState
	var newFirstUpdate *update.Update
	newResidualPriority := priority.NoWork
	normalSkipped := false

	q.firstEffect = nil
	q.lastEffect = nil

	for record := q.firstUpdate; record != nil; {
		next := record.Next()

		if !priority.Sufficient(record.Priority, renderPriority) {
			if newFirstUpdate == nil {
				newFirstUpdate = record
				newBaseState = resultState
			}
			if record.Priority > newResidualPriority {
				newResidualPriority = record.Priority
			}
			normalSkipped = true
		} else {
			state, err := applyUpdate(ctx, target, record, resultState, props, instance)
			if err != nil {
				return nil, priority.NoWork, err
			}
			resultState = state

			if record.Callback != nil {
				target.MarkEffectPending()
				record.SetNextEffect(nil)
				if q.lastEffect == nil {
					q.firstEffect = record
				} else {
					q.lastEffect.SetNextEffect(record)
				}
				q.lastEffect = record
			}
		}

		record = next
	}

	var newFirstCapturedUpdate *update.Update
	capturedSkipped := false

	q.firstCapturedEffect = nil
	q.lastCapturedEffect = nil

	for record := q.firstCapturedUpdate; record != nil; {
		next := record.Next()

		if !priority.Sufficient(record.Priority, renderPriority) {
			if newFirstCapturedUpdate == nil {
				newFirstCapturedUpdate = record
				if !normalSkipped {
					newBaseState = resultState
				}
			}
			if record.Priority > newResidualPriority {
				newResidualPriority = record.Priority
			}
			capturedSkipped = true
		} else {
			state, err := applyUpdate(ctx, target, record, resultState, props, instance)
			if err != nil {
				return nil, priority.NoWork, err
			}
			resultState = state

			if record.Callback != nil {
				target.MarkEffectPending()
				record.SetNextEffect(nil)
				if q.lastCapturedEffect == nil {
					q.firstCapturedEffect = record
				} else {
					q.lastCapturedEffect.SetNextEffect(record)
				}
				q.lastCapturedEffect = record
			}
		}

		record = next
	}

	// newBaseState is frozen at the final resultState only when neither loop
	// skipped anything.
	if !normalSkipped && !capturedSkipped {
		newBaseState = resultState
	}

	if newFirstUpdate == nil {
		q.lastUpdate = nil
	}
	if newFirstCapturedUpdate == nil {
		q.lastCapturedUpdate = nil
	}
	if capturedSkipped || q.firstCapturedEffect != nil {
		target.MarkEffectPending()
	}

	q.BaseState = newBaseState
	q.firstUpdate = newFirstUpdate
	q.firstCapturedUpdate = newFirstCapturedUpdate

	return resultState, newResidualPriority, nil
}
