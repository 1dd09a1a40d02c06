package rqueue

import "errors"

// ErrInvalidPayload is a misuse error, surfaced at call time: a payload that
// is neither nil, a state fragment, nor an update.Reducer. Not recoverable
// by the core -- it guards a caller contract, not a runtime condition.
var ErrInvalidPayload = errors.New("rqueue: payload must be nil, a state fragment, or an update.Reducer")
