package rqueue

import (
	"log/slog"

	"github.com/Ccheng2729111/fiberqueue/update"
)

// CommitQueue splices any captured chain onto the normal chain so a later,
// lower-priority re-render rebases them, then fires every pending callback
// effect with instance as its argument, normal effects before captured
// effects.
//
// Each callback's panic is recovered and logged so the remaining effects in
// the chain still fire; the first panic encountered is re-raised once every
// effect has run, so the host still observes the failure.
func CommitQueue(q *Queue, instance interface{}, log *slog.Logger) {
	if q.firstCapturedUpdate != nil {
		spliceCaptured(q)
	}

	firstPanic := runEffects(&q.firstEffect, &q.lastEffect, instance, log, nil)
	firstPanic = runEffects(&q.firstCapturedEffect, &q.lastCapturedEffect, instance, log, firstPanic)

	if firstPanic != nil {
		panic(firstPanic)
	}
}

func spliceCaptured(q *Queue) {
	if q.lastUpdate != nil {
		q.lastUpdate.SetNext(q.firstCapturedUpdate)
	} else {
		q.firstUpdate = q.firstCapturedUpdate
	}
	q.lastUpdate = q.lastCapturedUpdate

	q.firstCapturedUpdate = nil
	q.lastCapturedUpdate = nil
}

func runEffects(first, last **update.Update, instance interface{}, log *slog.Logger, firstPanic interface{}) interface{} {
	record := *first

	for record != nil {
		next := record.NextEffect()

		if cb := record.Callback; cb != nil {
			record.Callback = nil
			if p := invokeCallback(cb, instance, log); p != nil && firstPanic == nil {
				firstPanic = p
			}
		}

		record = next
	}

	*first = nil
	*last = nil

	return firstPanic
}

func invokeCallback(cb func(interface{}), instance interface{}, log *slog.Logger) (panicValue interface{}) {
	defer func() {
		if r := recover(); r != nil {
			if log != nil {
				log.Error("update callback panicked", "panic", r)
			}
			panicValue = r
		}
	}()

	cb(instance)
	return nil
}
