package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTabIDSet_KeepsInsertionOrder(t *testing.T) {
	var s TabIDSet

	assert.True(t, s.Add("b"))
	assert.True(t, s.Add("a"))
	assert.True(t, s.Add("c"))
	assert.False(t, s.Add("a"), "duplicate must be ignored")
	assert.False(t, s.Add(""), "empty id must be ignored")

	assert.Equal(t, []TabID{"b", "a", "c"}, s.IDs())
	assert.Equal(t, 3, s.Len())
}

func TestTabIDSet_RemoveLeavesOthers(t *testing.T) {
	var s TabIDSet
	s.Add("1")
	s.Add("2")
	s.Add("3")

	assert.True(t, s.Remove("2"))
	assert.False(t, s.Remove("2"))

	assert.Equal(t, []TabID{"1", "3"}, s.IDs())
	assert.False(t, s.Contains("2"))
}

func TestTabIDSet_IDsReturnsCopy(t *testing.T) {
	var s TabIDSet
	s.Add("x")

	ids := s.IDs()
	ids[0] = "mutated"

	assert.Equal(t, []TabID{"x"}, s.IDs())
}
