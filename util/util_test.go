package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLast(t *testing.T) {
	assert.Equal(t, 3, Last([]int{1, 2, 3}))
	assert.Equal(t, "a", Last([]string{"a"}))
}

func TestClamp(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(5, Clamp(5, 0, 10))
	assert.Equal(0, Clamp(-3, 0, 10))
	assert.Equal(10, Clamp(42, 0, 10))
	assert.Equal(127.0, Clamp(130.2, 0.0, 127.0))
}

func TestMin(t *testing.T) {
	assert.Equal(t, 1, Min(1, 2))
	assert.Equal(t, 1.5, Min(2.5, 1.5))
}
