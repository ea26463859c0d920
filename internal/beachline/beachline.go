// Package beachline implements the Fortune sweep's beachline: the
// ordered sequence of parabolic arcs currently traced on the sweep
// front, kept as a doubly linked list for O(1) neighbour access plus a
// github.com/google/btree BTreeG index for O(log n) descent to the
// arc above a given x.
//
// The tree's comparator is dynamic, the way the corpus's own
// sweep-line status structures key their ordering on the sweep
// position rather than a stored field: each arc's sort key is the x
// of its own left breakpoint against its current predecessor,
// recomputed from internal/geom.BreakpointX at comparison time using
// the beachline's current directrix. Because arc order along the
// beachline never changes except through InsertSite and RemoveArc
// themselves (Fortune's core invariant), the tree never needs
// rebuilding as the directrix moves — only the comparator's closed-
// over directrix value needs to track it.
package beachline

import (
	"errors"
	"math"

	"github.com/google/btree"
	"github.com/sherlockjack/geovoronoi/internal/dcel"
	"github.com/sherlockjack/geovoronoi/internal/events"
	"github.com/sherlockjack/geovoronoi/internal/geom"
)

// ErrEmpty is returned by FindArcAbove when the beachline has no arcs.
var ErrEmpty = errors.New("beachline: empty")

// Arc is one parabolic arc on the beachline, focused at Site.
type Arc struct {
	Site      geom.Point
	SiteIndex int

	Prev, Next *Arc

	// CircleEvent is the pending circle event predicted for this arc,
	// if any; cleared (and the event invalidated) when the arc's
	// neighbours change before the event fires.
	CircleEvent *events.Event

	// LeftEdge and RightEdge are the half-edges this arc currently
	// bounds on its left and right. They are inherited unchanged across
	// splits of a neighbouring arc and finished exactly once, when this
	// arc is removed by a circle event.
	LeftEdge, RightEdge *dcel.HalfEdge

	searchKey bool // true only for ephemeral lookup keys, never inserted
	searchX   float64
}

// Beachline is the ordered collection of arcs.
type Beachline struct {
	tree       *btree.BTreeG[*Arc]
	directrixY float64
}

// New returns an empty Beachline.
func New() *Beachline {
	bl := &Beachline{}
	bl.tree = btree.NewG(32, bl.less)
	return bl
}

func (bl *Beachline) key(a *Arc) float64 {
	if a.searchKey {
		return a.searchX
	}
	if a.Prev == nil {
		return math.Inf(-1)
	}
	return geom.BreakpointX(a.Prev.Site, a.Site, bl.directrixY)
}

func (bl *Beachline) less(a, b *Arc) bool {
	ka, kb := bl.key(a), bl.key(b)
	if ka != kb {
		return ka < kb
	}
	// Equal keys: a zero-width arc (just inserted at the directrix, or
	// vanishing at a circle event) shares its left breakpoint with its
	// successor, so list order decides.
	return b.Prev == a
}

// SetDirectrix updates the sweep position used to key arc comparisons.
// Must be called before any operation performed at a new event's y.
func (bl *Beachline) SetDirectrix(y float64) {
	bl.directrixY = y
}

// Len returns the number of arcs currently on the beachline.
func (bl *Beachline) Len() int {
	return bl.tree.Len()
}

// FindArcAbove returns the arc whose span contains x at the current
// directrix: the arc with the greatest left-breakpoint at or below x.
func (bl *Beachline) FindArcAbove(x float64) (*Arc, error) {
	if bl.tree.Len() == 0 {
		return nil, ErrEmpty
	}
	pivot := &Arc{searchKey: true, searchX: x}
	var found *Arc
	bl.tree.DescendLessOrEqual(pivot, func(a *Arc) bool {
		found = a
		return false
	})
	if found == nil {
		// Every breakpoint sits to the right of x: x is under the
		// leftmost arc, whose own key is -Inf and so should have
		// matched. Defensive fallback only; should not occur.
		found, _ = bl.tree.Min()
	}
	return found, nil
}

// InsertFirst seeds an empty beachline with the sole arc for site,
// used for the very first site event.
func (bl *Beachline) InsertFirst(site geom.Point, siteIndex int) *Arc {
	a := &Arc{Site: site, SiteIndex: siteIndex}
	bl.tree.ReplaceOrInsert(a)
	return a
}

// SplitResult names the arcs created or consumed by InsertSite, so the
// sweep driver can predict circle events and wire diagram edges around
// them without re-deriving neighbour relationships.
type SplitResult struct {
	// Degenerate is true when site shared the directrix with the arc
	// above it, so only a single new breakpoint was created.
	Degenerate bool

	// Left, New and Right are populated for the generic (non-degenerate)
	// three-way split: the two surviving copies of the arc that was
	// above site, and the new arc for site, in left-to-right order.
	Left, New, Right *Arc

	// NewOnly is populated instead, for the degenerate split: the new
	// arc and the pre-existing arc it now sits beside.
	NewOnly, Sibling *Arc
}

// InsertSite splits the arc currently above site and returns the arcs
// involved. The beachline must not be empty; callers insert the very
// first site with InsertFirst instead.
func (bl *Beachline) InsertSite(site geom.Point, siteIndex int) (SplitResult, error) {
	above, err := bl.FindArcAbove(site.X)
	if err != nil {
		return SplitResult{}, err
	}

	if above.CircleEvent != nil {
		above.CircleEvent.Invalidate()
		above.CircleEvent = nil
	}

	if above.Site.Y == site.Y {
		return bl.insertDegenerate(above, site, siteIndex), nil
	}
	return bl.insertGeneric(above, site, siteIndex), nil
}

func (bl *Beachline) insertGeneric(above *Arc, site geom.Point, siteIndex int) SplitResult {
	oldPrev, oldNext := above.Prev, above.Next
	bl.tree.Delete(above)

	left := &Arc{Site: above.Site, SiteIndex: above.SiteIndex, Prev: oldPrev, LeftEdge: above.LeftEdge}
	mid := &Arc{Site: site, SiteIndex: siteIndex, Prev: left}
	right := &Arc{Site: above.Site, SiteIndex: above.SiteIndex, Prev: mid, Next: oldNext, RightEdge: above.RightEdge}
	left.Next = mid
	mid.Next = right

	if oldPrev != nil {
		oldPrev.Next = left
	}
	if oldNext != nil {
		oldNext.Prev = right
	}

	bl.tree.ReplaceOrInsert(left)
	bl.tree.ReplaceOrInsert(mid)
	bl.tree.ReplaceOrInsert(right)

	return SplitResult{Left: left, New: mid, Right: right}
}

func (bl *Beachline) insertDegenerate(above *Arc, site geom.Point, siteIndex int) SplitResult {
	mid := &Arc{Site: site, SiteIndex: siteIndex}

	if site.X < above.Site.X {
		// New arc goes to the left of above.
		oldPrev := above.Prev
		mid.Prev = oldPrev
		mid.Next = above
		above.Prev = mid
		if oldPrev != nil {
			oldPrev.Next = mid
		}
	} else {
		oldNext := above.Next
		mid.Prev = above
		mid.Next = oldNext
		above.Next = mid
		if oldNext != nil {
			oldNext.Prev = mid
		}
	}
	bl.tree.ReplaceOrInsert(mid)

	return SplitResult{Degenerate: true, NewOnly: mid, Sibling: above}
}

// RemoveArc removes arc from the beachline (a circle event consuming
// it), splicing its neighbours together, and returns them so the
// caller can finish arc's edges and predict the neighbours' next
// circle events.
func (bl *Beachline) RemoveArc(arc *Arc) (prev, next *Arc) {
	prev, next = arc.Prev, arc.Next

	if arc.CircleEvent != nil {
		arc.CircleEvent.Invalidate()
		arc.CircleEvent = nil
	}
	bl.tree.Delete(arc)

	if prev != nil {
		prev.Next = next
	}
	if next != nil {
		next.Prev = prev
	}
	return prev, next
}

// PredictCircle checks whether prevArc, arc and nextArc converge to a
// single point, and if so returns the circle event to push onto the
// queue, placed at the bottom of the three sites' circumcircle. Returns
// nil if any arc is missing, the three sites don't turn clockwise
// (CCWSign >= 0, so the arcs diverge rather than converge), the three
// sites are colinear, or the circle's bottom lies above the directrix
// by more than epsilon.
func (bl *Beachline) PredictCircle(prevArc, arc, nextArc *Arc, epsilon float64) *events.Event {
	if prevArc == nil || arc == nil || nextArc == nil {
		return nil
	}
	if prevArc.SiteIndex == nextArc.SiteIndex {
		return nil
	}
	if geom.CCWSign(prevArc.Site, arc.Site, nextArc.Site) >= 0 {
		return nil
	}
	center, radius, ok := geom.Circumcircle(prevArc.Site, arc.Site, nextArc.Site)
	if !ok {
		return nil
	}
	bottomY := center.Y - radius
	if bottomY > bl.directrixY+epsilon {
		return nil
	}
	ev := events.NewCircleEvent(center.X, bottomY, arc)
	arc.CircleEvent = ev
	return ev
}
