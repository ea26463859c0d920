// Package events implements the Fortune sweep's priority queue: a
// container/heap-backed max-heap of site and circle events ordered by
// (Y desc, X asc), with O(1) logical invalidation of circle events.
//
// The queue never removes an entry by identity. Invalidating a circle
// event flips a shared flag; PopTop skips and discards invalidated
// entries transparently until it finds a valid one or the heap is
// empty. This mirrors the teacher's own event queue (a plain
// container/heap.Interface with a validity check on pop) and the
// independent choice of the same mechanism in the rest of the corpus's
// own Fortune's-algorithm reference.
package events

import "container/heap"

// Kind distinguishes a site event from a circle event.
type Kind uint8

const (
	// Site marks an event where a new site crosses the directrix.
	Site Kind = iota
	// Circle marks an event where three neighbouring arcs meet.
	Circle
)

// Event is one entry in the sweep's priority queue. SiteIndex is only
// meaningful for Site events; Arc is only meaningful for Circle
// events.
type Event struct {
	Kind Kind
	X, Y float64

	SiteIndex int // valid for Kind == Site

	Arc any // valid for Kind == Circle; holds the target *beachline.Arc

	valid *bool
	index int // heap position, maintained by container/heap
}

// Valid reports whether a circle event is still live. Site events are
// always valid.
func (e *Event) Valid() bool {
	return e.valid == nil || *e.valid
}

// Invalidate marks a circle event as logically removed. It never
// touches heap order and is idempotent: invalidating an
// already-invalid event is a no-op.
func (e *Event) Invalidate() {
	if e.valid == nil {
		return
	}
	*e.valid = false
}

// NewSiteEvent builds a Site event for the site at (x, y).
func NewSiteEvent(x, y float64, siteIndex int) *Event {
	return &Event{Kind: Site, X: x, Y: y, SiteIndex: siteIndex}
}

// NewCircleEvent builds a Circle event at (x, y) for the given arc
// handle, with a fresh validity flag the caller can retain (e.g. on a
// beachline arc) to invalidate it later via Event.Invalidate.
func NewCircleEvent(x, y float64, arc any) *Event {
	v := true
	return &Event{Kind: Circle, X: x, Y: y, Arc: arc, valid: &v}
}

// heapSlice implements container/heap.Interface, ordered by (Y desc,
// X asc) so the highest event pops first.
type heapSlice []*Event

func (h heapSlice) Len() int { return len(h) }

func (h heapSlice) Less(i, j int) bool {
	if h[i].Y != h[j].Y {
		return h[i].Y > h[j].Y
	}
	return h[i].X < h[j].X
}

func (h heapSlice) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *heapSlice) Push(x any) {
	e := x.(*Event)
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *heapSlice) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

// Queue is a max-priority queue of events, keyed by (Y desc, X asc).
type Queue struct {
	h heapSlice
}

// NewQueue returns an empty Queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Len returns the number of entries still on the heap, including any
// not-yet-popped invalidated circle events.
func (q *Queue) Len() int {
	return q.h.Len()
}

// Push adds an event to the queue.
func (q *Queue) Push(e *Event) {
	heap.Push(&q.h, e)
}

// PopTop removes and returns the highest-priority valid event, or nil
// if the queue is (effectively) empty. Invalidated circle events are
// discarded transparently.
func (q *Queue) PopTop() *Event {
	for q.h.Len() > 0 {
		e := heap.Pop(&q.h).(*Event)
		if e.Valid() {
			return e
		}
	}
	return nil
}
