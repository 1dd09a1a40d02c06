package rqueue

import (
	"reflect"

	"github.com/Ccheng2729111/fiberqueue/sched"
	"github.com/Ccheng2729111/fiberqueue/update"
)

// Target is the minimal node-side surface a processing pass needs to flip
// flags on. binding.Node implements this; nothing else in rqueue depends on
// binding, keeping the two packages in dependency order leaves-first:
// update record -> queue header -> enqueue path -> processor.
type Target interface {
	// ClearShouldCapture clears the ShouldCapture flag (CaptureUpdate
	// semantics).
	ClearShouldCapture()
	// SetDidCapture sets the DidCapture flag (CaptureUpdate semantics).
	SetDidCapture()
	// MarkEffectPending notes that this node has at least one callback
	// effect (normal or captured) awaiting commit.
	MarkEffectPending()
}

// applyUpdate folds a single record into prevState according to its Tag.
// nextProps is the node's current props and is passed to a Reducer payload;
// instance is not passed to the Reducer, whose signature takes only the
// previous state and the props.
func applyUpdate(ctx *sched.ProcessContext, target Target, record *update.Update, prevState, nextProps, instance interface{}) (interface{}, error) {
	switch record.Tag {
	case update.ReplaceState:
		return resolvePayload(record.Payload, prevState, nextProps, instance)

	case update.UpdateState:
		partial, err := resolvePayload(record.Payload, prevState, nextProps, instance)
		if err != nil {
			return nil, err
		}
		if partial == nil {
			return prevState, nil
		}
		return shallowMerge(prevState, partial), nil

	case update.CaptureUpdate:
		target.ClearShouldCapture()
		target.SetDidCapture()

		partial, err := resolvePayload(record.Payload, prevState, nextProps, instance)
		if err != nil {
			return nil, err
		}
		if partial == nil {
			return prevState, nil
		}
		return shallowMerge(prevState, partial), nil

	case update.ForceUpdate:
		ctx.MarkForceUpdate()
		return prevState, nil

	default:
		return prevState, nil
	}
}

// resolvePayload validates and, if it is a Reducer, invokes the payload.
func resolvePayload(payload, prevState, nextProps, instance interface{}) (interface{}, error) {
	switch p := payload.(type) {
	case nil:
		return nil, nil
	case update.Reducer:
		return p(prevState, nextProps), nil
	case func(interface{}, interface{}) interface{}:
		return p(prevState, nextProps), nil
	case update.RootPayload:
		return p, nil
	default:
		if isFunc(payload) {
			return nil, ErrInvalidPayload
		}
		return payload, nil
	}
}

func isFunc(v interface{}) bool {
	if v == nil {
		return false
	}
	return reflect.TypeOf(v).Kind() == reflect.Func
}

// shallowMerge returns a new map with the union of prev's and partial's
// keys; for overlapping keys partial wins. Both must be map[string]any for
// the merge to apply structurally; any other pairing simply has partial
// replace prev outright, matching hosts that model state as an opaque value
// rather than a field bag.
func shallowMerge(prev, partial interface{}) interface{} {
	prevMap, prevOK := prev.(map[string]interface{})
	partialMap, partialOK := partial.(map[string]interface{})

	if !prevOK || !partialOK {
		return partial
	}

	merged := make(map[string]interface{}, len(prevMap)+len(partialMap))
	for k, v := range prevMap {
		merged[k] = v
	}
	for k, v := range partialMap {
		merged[k] = v
	}
	return merged
}
