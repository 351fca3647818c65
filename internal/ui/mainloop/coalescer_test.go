package mainloop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoalescerRunsLatestTaskOfBurstOnce(t *testing.T) {
	var queue []func()
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	value := 0
	for i := 1; i <= 5; i++ {
		v := i
		c.Post("rearrange:menu", func() { value = v })
	}

	require.Len(t, queue, 1)
	assert.True(t, c.Pending("rearrange:menu"))

	queue[0]()

	assert.Equal(t, 5, value)
	assert.False(t, c.Pending("rearrange:menu"))
}

func TestCoalescerKeysAreIndependent(t *testing.T) {
	var queue []func()
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	var ran []string
	c.Post("a", func() { ran = append(ran, "a") })
	c.Post("b", func() { ran = append(ran, "b") })

	require.Len(t, queue, 2)
	for _, fn := range queue {
		fn()
	}
	assert.Equal(t, []string{"a", "b"}, ran)
}

func TestCoalescerSchedulesAgainAfterRun(t *testing.T) {
	var queue []func()
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	count := 0
	c.Post("k", func() { count++ })
	queue[0]()
	c.Post("k", func() { count++ })

	require.Len(t, queue, 2)
	queue[1]()
	assert.Equal(t, 2, count)
}

func TestCoalescerDropsWorkAfterDestroy(t *testing.T) {
	var queue []func()
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	ran := false
	c.Post("k", func() { ran = true })
	c.Destroy()
	queue[0]()
	c.Post("k", func() { ran = true })

	assert.False(t, ran)
	assert.Len(t, queue, 1)
}

func TestNewCoalescerPanicsOnNilPost(t *testing.T) {
	assert.Panics(t, func() { NewCoalescer(nil) })
}
