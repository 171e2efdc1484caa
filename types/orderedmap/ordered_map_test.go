package orderedmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedMap_SetGet(t *testing.T) {
	om := New[string, int]()

	_, existed := om.Set("a", 1)
	assert.False(t, existed)

	prev, existed := om.Set("a", 2)
	assert.True(t, existed)
	assert.Equal(t, 1, prev)

	v, ok := om.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = om.Get("missing")
	assert.False(t, ok)
}

func TestOrderedMap_IterationOrder(t *testing.T) {
	om := New[string, int]()
	om.Set("c", 3)
	om.Set("a", 1)
	om.Set("b", 2)

	var keys []string
	for it := om.Front(); it != nil; it = it.Next() {
		keys = append(keys, it.Key())
	}
	assert.Equal(t, []string{"c", "a", "b"}, keys)
}

func TestOrderedMap_Delete(t *testing.T) {
	om := New[string, int]()
	om.Set("a", 1)

	assert.True(t, om.Delete("a"))
	assert.False(t, om.Delete("a"))
	assert.Equal(t, 0, om.Count())
}

func TestOrderedMap_FrontEmpty(t *testing.T) {
	om := New[string, int]()
	assert.Nil(t, om.Front())
}
