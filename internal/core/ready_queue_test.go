package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadyQueue_FIFO(t *testing.T) {
	ass := assert.New(t)
	q := NewReadyQueue(2)

	_, ok := q.RemoveFromTop()
	ass.False(ok)

	for pid := 1; pid <= 100; pid++ {
		q.AddToEnd(pid)
	}
	for want := 1; want <= 60; want++ {
		pid, ok := q.RemoveFromTop()
		ass.True(ok)
		ass.Equal(want, pid)
	}
	q.AddToEnd(101)
	ass.Equal(41, q.Len())
	for want := 61; want <= 101; want++ {
		pid, ok := q.RemoveFromTop()
		ass.True(ok)
		ass.Equal(want, pid)
	}
	ass.Equal(0, q.Len())
}
