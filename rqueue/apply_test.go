package rqueue

import (
	"testing"

	"github.com/Ccheng2729111/fiberqueue/sched"
	"github.com/Ccheng2729111/fiberqueue/update"
	"github.com/stretchr/testify/assert"
)

func TestApplyUpdateRejectsWrongShapedFunc(t *testing.T) {
	q := New(0)
	ctx := &sched.ProcessContext{}
	target := &fakeTarget{}

	u := update.New(1)
	u.Payload = func() {} // not an update.Reducer
	Append(q, u)

	_, _, err := ProcessQueue(ctx, target, q, nil, nil, 1)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestShallowMergeNonMapReplacesOutright(t *testing.T) {
	result := shallowMerge(42, "replacement")
	assert.Equal(t, "replacement", result)
}
