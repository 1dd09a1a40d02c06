package update

import (
	"testing"

	"github.com/Ccheng2729111/fiberqueue/priority"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	u := New(priority.Priority(5))

	assert.Equal(t, priority.Priority(5), u.Priority)
	assert.Equal(t, UpdateState, u.Tag)
	assert.Nil(t, u.Payload)
	assert.Nil(t, u.Callback)
	assert.Nil(t, u.Next())
	assert.Nil(t, u.NextEffect())
}

func TestTagString(t *testing.T) {
	assert.Equal(t, "UpdateState", UpdateState.String())
	assert.Equal(t, "ReplaceState", ReplaceState.String())
	assert.Equal(t, "ForceUpdate", ForceUpdate.String())
	assert.Equal(t, "CaptureUpdate", CaptureUpdate.String())
	assert.Equal(t, "Tag(?)", Tag(99).String())
}

func TestSetCallback(t *testing.T) {
	u := New(1)

	assert.NoError(t, u.SetCallback(nil))
	assert.Nil(t, u.Callback)

	called := false
	assert.NoError(t, u.SetCallback(func(interface{}) { called = true }))
	u.Callback(nil)
	assert.True(t, called)

	err := u.SetCallback("not a function")
	assert.ErrorIs(t, err, ErrInvalidCallback)
}

func TestLinking(t *testing.T) {
	a := New(1)
	b := New(2)

	a.SetNext(b)
	assert.Same(t, b, a.Next())

	a.SetNextEffect(b)
	assert.Same(t, b, a.NextEffect())
}
