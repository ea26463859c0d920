package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueOrdering(t *testing.T) {
	q := NewQueue()
	q.Push(NewSiteEvent(1, 10, 0))
	q.Push(NewSiteEvent(5, 20, 1))
	q.Push(NewSiteEvent(0, 20, 2)) // same Y as above, lower X: pops first among the two.

	first := q.PopTop()
	assert.Equal(t, 20.0, first.Y)
	assert.Equal(t, 0.0, first.X)

	second := q.PopTop()
	assert.Equal(t, 20.0, second.Y)
	assert.Equal(t, 5.0, second.X)

	third := q.PopTop()
	assert.Equal(t, 10.0, third.Y)

	assert.Nil(t, q.PopTop())
}

func TestInvalidateIsLogicalAndIdempotent(t *testing.T) {
	q := NewQueue()
	e1 := NewCircleEvent(0, 10, nil)
	e2 := NewSiteEvent(0, 5, 0)
	q.Push(e1)
	q.Push(e2)

	require.Equal(t, 2, q.Len())
	e1.Invalidate()
	e1.Invalidate() // no-op, must not panic or double-remove
	assert.Equal(t, 2, q.Len(), "invalidation must not remove the heap entry")

	popped := q.PopTop()
	require.NotNil(t, popped)
	assert.Equal(t, e2, popped, "invalidated circle event must be skipped transparently")
	assert.Nil(t, q.PopTop())
}

func TestSiteEventsAlwaysValid(t *testing.T) {
	e := NewSiteEvent(0, 0, 0)
	assert.True(t, e.Valid())
	e.Invalidate() // no-op for site events
	assert.True(t, e.Valid())
}
