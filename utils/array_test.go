package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeSlice(t *testing.T) {
	assert.Equal(t, []int{1, 2}, SafeSlice([]int{1, 2, 3, 4}, 2))
	assert.Equal(t, []int{1, 2, 3}, SafeSlice([]int{1, 2, 3}, 10))
	assert.Empty(t, SafeSlice([]int{1, 2, 3}, 0))
	assert.Nil(t, SafeSlice[int](nil, 5))
}
