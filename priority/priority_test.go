package priority

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSufficient(t *testing.T) {
	assert.True(t, Sufficient(5, 5))
	assert.True(t, Sufficient(5, 3))
	assert.False(t, Sufficient(3, 5))
	assert.False(t, Sufficient(NoWork, 0))
}

func TestMax(t *testing.T) {
	assert.Equal(t, Priority(5), Max(5, 3))
	assert.Equal(t, Priority(5), Max(3, 5))
	assert.Equal(t, Priority(0), Max(NoWork, 0))
}
