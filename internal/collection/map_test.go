package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncMap(t *testing.T) {
	aMap := NewSyncMap[string, int]()
	aMap.Put("a", 1)
	aMap.Put("b", 2)
	value, ok := aMap.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, value)
	assert.Equal(t, 2, aMap.Len())

	sum := 0
	aMap.Range(func(_ string, value int) bool {
		sum += value
		return true
	})
	assert.Equal(t, 3, sum)

	aMap.Delete("a")
	_, ok = aMap.Get("a")
	assert.False(t, ok)

	assert.Equal(t, []int{2}, aMap.Drain())
	assert.Equal(t, 0, aMap.Len())
}
