// Package sweep drives Fortune's algorithm: it owns the event queue,
// the beachline and the diagram builder, and runs the site/circle
// event loop that turns a set of sites into a set of half-edges and
// vertices.
//
// Sites are assumed already deduplicated and finite by the caller
// (geovoronoi.Compute); this package only sweeps them.
package sweep

import (
	"errors"
	"fmt"
	"log"

	"github.com/sherlockjack/geovoronoi/internal/beachline"
	"github.com/sherlockjack/geovoronoi/internal/dcel"
	"github.com/sherlockjack/geovoronoi/internal/events"
	"github.com/sherlockjack/geovoronoi/internal/geom"
)

// ErrInternalInvariant is returned (wrapped, with the assertion
// message attached) by Run when a debug assertion built with
// -tags debug catches an impossible beachline state — a neighbour
// pointer mismatch that should be unreachable in correct code. It is
// recovered at Run's single call boundary rather than left as a
// panic, so a caller can treat it like any other error.
var ErrInternalInvariant = errors.New("sweep: internal invariant violated")

// Driver runs the sweep for one set of sites.
type Driver struct {
	sites   []geom.Point
	box     dcel.BoundingBox
	epsilon float64
	verbose bool

	bl         *beachline.Beachline
	q          *events.Queue
	builder    *dcel.Builder
	directrixY float64
}

// NewDriver builds a Driver for sites, clipping open edges to box.
func NewDriver(sites []geom.Point, box dcel.BoundingBox, epsilon float64, verbose bool) *Driver {
	return &Driver{
		sites:   sites,
		box:     box,
		epsilon: epsilon,
		verbose: verbose,
		bl:      beachline.New(),
		q:       events.NewQueue(),
		builder: dcel.NewBuilder(),
	}
}

func (d *Driver) logf(format string, args ...any) {
	if d.verbose {
		log.Printf(format, args...)
	}
}

// Run executes the full sweep and returns the builder holding every
// vertex and (now-clipped) half-edge produced. A debug assertion
// failure (only possible in a -tags debug build) is recovered here
// and reported as ErrInternalInvariant rather than propagated as a
// panic.
func (d *Driver) Run() (result *dcel.Builder, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrInternalInvariant, r)
		}
	}()

	for i, s := range d.sites {
		d.q.Push(events.NewSiteEvent(s.X, s.Y, i))
	}

	for d.q.Len() > 0 {
		ev := d.q.PopTop()
		if ev == nil {
			break
		}
		d.setDirectrix(ev.Y)
		switch ev.Kind {
		case events.Site:
			d.handleSite(ev)
		case events.Circle:
			d.handleCircle(ev)
		}
	}

	d.builder.FinalizeOpenEdges(d.box, d.epsilon)
	return d.builder, nil
}

func (d *Driver) setDirectrix(y float64) {
	d.directrixY = y
	d.bl.SetDirectrix(y)
}

func (d *Driver) handleSite(ev *events.Event) {
	site := d.sites[ev.SiteIndex]
	d.logf("site event: index=%d at (%.6f, %.6f)", ev.SiteIndex, site.X, site.Y)

	if d.bl.Len() == 0 {
		d.bl.InsertFirst(site, ev.SiteIndex)
		return
	}

	res, err := d.bl.InsertSite(site, ev.SiteIndex)
	if err != nil {
		return
	}
	if res.Degenerate {
		d.handleDegenerateSplit(res)
	} else {
		d.handleGenericSplit(res)
	}
}

func (d *Driver) handleGenericSplit(res beachline.SplitResult) {
	left, mid, right := res.Left, res.New, res.Right

	start := geom.Point{X: mid.Site.X, Y: geom.ParabolaY(left.Site, mid.Site.X, d.directrixY)}

	leftEdge := d.builder.NewEdge(start, left.SiteIndex, left.Site, mid.SiteIndex, mid.Site)
	rightEdge := d.builder.NewEdge(start, mid.SiteIndex, mid.Site, right.SiteIndex, right.Site)

	left.RightEdge = leftEdge
	mid.LeftEdge = leftEdge
	mid.RightEdge = rightEdge
	right.LeftEdge = rightEdge

	d.tryPredict(left)
	d.tryPredict(right)
}

func (d *Driver) handleDegenerateSplit(res beachline.SplitResult) {
	mid, sib := res.NewOnly, res.Sibling
	start := geom.Point{X: (mid.Site.X + sib.Site.X) / 2, Y: d.box.YMax}

	var e *dcel.HalfEdge
	if mid.Next == sib {
		e = d.builder.NewEdge(start, mid.SiteIndex, mid.Site, sib.SiteIndex, sib.Site)
		mid.RightEdge = e
		sib.LeftEdge = e
	} else {
		e = d.builder.NewEdge(start, sib.SiteIndex, sib.Site, mid.SiteIndex, mid.Site)
		sib.RightEdge = e
		mid.LeftEdge = e
	}

	for _, a := range []*beachline.Arc{mid, sib, mid.Prev, mid.Next, sib.Prev, sib.Next} {
		d.tryPredict(a)
	}
}

func (d *Driver) tryPredict(a *beachline.Arc) {
	if a == nil {
		return
	}
	if a.CircleEvent != nil {
		a.CircleEvent.Invalidate()
		a.CircleEvent = nil
	}
	if a.Prev == nil || a.Next == nil {
		return
	}
	if ev := d.bl.PredictCircle(a.Prev, a, a.Next, d.epsilon); ev != nil {
		d.q.Push(ev)
	}
}

func (d *Driver) handleCircle(ev *events.Event) {
	arc, ok := ev.Arc.(*beachline.Arc)
	if !ok || arc == nil || arc.CircleEvent != ev {
		return // stale event superseded by a neighbour change
	}

	prev, next := arc.Prev, arc.Next
	invariant(prev != nil && next != nil,
		"handleCircle: arc %d has a live circle event but a missing neighbour", arc.SiteIndex)

	center, _, ok := geom.Circumcircle(prev.Site, arc.Site, next.Site)
	invariant(ok, "handleCircle: circumcircle recomputation failed for arc %d, contradicting its own prediction", arc.SiteIndex)

	d.logf("circle event: sites=(%d,%d,%d) vertex=(%.6f,%.6f)",
		prev.SiteIndex, arc.SiteIndex, next.SiteIndex, center.X, center.Y)

	d.builder.NewVertex(center, [3]int{prev.SiteIndex, arc.SiteIndex, next.SiteIndex})
	d.builder.Finish(arc.LeftEdge, center)
	d.builder.Finish(arc.RightEdge, center)

	prevArc, nextArc := d.bl.RemoveArc(arc)

	newEdge := d.builder.NewEdge(center, prevArc.SiteIndex, prevArc.Site, nextArc.SiteIndex, nextArc.Site)
	prevArc.RightEdge = newEdge
	nextArc.LeftEdge = newEdge

	d.tryPredict(prevArc)
	d.tryPredict(nextArc)
}
