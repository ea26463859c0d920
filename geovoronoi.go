// Package geovoronoi computes planar Voronoi diagrams with Fortune's
// sweep-line algorithm: a balanced-tree beachline sweeps a directrix
// down through the plane, site events split arcs and circle events
// remove them, and every surviving half-edge is clipped to a bounding
// rectangle around the input sites.
//
// The sweep itself lives in internal/sweep, built from internal/geom
// (geometric primitives), internal/events (the priority queue),
// internal/beachline (the beachline) and internal/dcel (the half-edge
// diagram builder). Compute is the only entry point a caller needs.
package geovoronoi

import (
	"errors"
	"fmt"
	"math"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/sherlockjack/geovoronoi/internal/dcel"
	"github.com/sherlockjack/geovoronoi/internal/geom"
	"github.com/sherlockjack/geovoronoi/internal/lec"
	"github.com/sherlockjack/geovoronoi/internal/sweep"
)

// Point is a site or vertex location in the plane.
type Point = geom.Point

// ErrNoSites is returned by Compute when called with no sites.
var ErrNoSites = errors.New("geovoronoi: no sites provided")

// ErrNonFiniteSite is returned by Compute when a site's coordinate is
// NaN or infinite.
var ErrNonFiniteSite = errors.New("geovoronoi: site coordinate is not finite")

// ErrSiteOutsideBoundingBox is returned by Compute when a site falls
// outside an explicit bounding box set with WithBoundingBox.
var ErrSiteOutsideBoundingBox = errors.New("geovoronoi: site lies outside the bounding box")

// ErrInternalInvariant is returned by Compute when a debug assertion
// (only active in a -tags debug build) catches an impossible sweep
// state. A release build can never produce it: the assertion library
// compiles to a no-op without the debug tag, so Run can never panic.
var ErrInternalInvariant = sweep.ErrInternalInvariant

// BoundingBox is the axis-aligned rectangle every Voronoi edge is
// clipped to.
type BoundingBox struct {
	XMin, YMin, XMax, YMax float64
}

func (b BoundingBox) toInternal() dcel.BoundingBox {
	return dcel.BoundingBox{XMin: b.XMin, YMin: b.YMin, XMax: b.XMax, YMax: b.YMax}
}

// Vertex is a Voronoi vertex: the circumcenter of the three sites
// whose cells meet there.
type Vertex struct {
	Point Point
	Sites [3]int
}

// Edge is one Voronoi edge, the perpendicular-bisector segment
// separating the cells of LeftSite and RightSite.
type Edge struct {
	Start, End          Point
	LeftSite, RightSite int
}

// Circle is one largest-empty-circle candidate: a circle centered at
// a Voronoi vertex, touching its three defining sites, containing no
// other site.
type Circle struct {
	Center Point
	Radius float64
	Sites  [3]int
}

// Diagram is the result of Compute.
type Diagram struct {
	// Sites holds the deduplicated input sites, in order of first
	// occurrence; Vertex.Sites, Edge.LeftSite and Edge.RightSite index
	// into this slice.
	Sites []Point

	Vertices []Vertex
	Edges    []Edge

	BoundingBox BoundingBox

	// LargestEmptyCircles is populated only when WithLargestEmptyCircles
	// was passed true: every empty circle centered at a Voronoi vertex
	// whose radius equals the maximum found, within epsilon.
	LargestEmptyCircles []Circle
}

// Compute builds the Voronoi diagram of sites. Sites are deduplicated
// by exact coordinate match before the sweep runs, so the resulting
// Diagram.Sites may be shorter than the input.
func Compute(sites []Point, opts ...Option) (*Diagram, error) {
	if len(sites) == 0 {
		return nil, ErrNoSites
	}
	for _, s := range sites {
		if math.IsNaN(s.X) || math.IsNaN(s.Y) || math.IsInf(s.X, 0) || math.IsInf(s.Y, 0) {
			return nil, fmt.Errorf("%w: (%v, %v)", ErrNonFiniteSite, s.X, s.Y)
		}
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	deduped := dedupeSites(sites)

	box, err := resolveBoundingBox(deduped, o)
	if err != nil {
		return nil, err
	}

	driver := sweep.NewDriver(deduped, box.toInternal(), o.epsilon, o.verbose)
	builder, err := driver.Run()
	if err != nil {
		return nil, err
	}

	diagram := &Diagram{
		Sites:       deduped,
		BoundingBox: box,
	}
	for _, e := range builder.Edges {
		diagram.Edges = append(diagram.Edges, Edge{
			Start: e.Start, End: e.End,
			LeftSite: e.LeftSite, RightSite: e.RightSite,
		})
	}
	for _, v := range builder.Vertices {
		diagram.Vertices = append(diagram.Vertices, Vertex{Point: v.Point, Sites: v.Sites})
	}

	if o.computeLargestEmptyCircles {
		for _, c := range lec.Compute(deduped, builder.Vertices, box.toInternal(), o.epsilon) {
			diagram.LargestEmptyCircles = append(diagram.LargestEmptyCircles, Circle{
				Center: c.Center, Radius: c.Radius, Sites: c.Sites,
			})
		}
	}

	return diagram, nil
}

// dedupeSites drops exact coordinate duplicates, keeping each site's
// first occurrence, using a red-black tree for the O(n log n) lookup
// the way the rest of the corpus reaches for emirpasic/gods for
// ordered-set bookkeeping rather than a plain map.
func dedupeSites(sites []Point) []Point {
	seen := redblacktree.NewWith(comparePoints)
	out := make([]Point, 0, len(sites))
	for _, s := range sites {
		if _, found := seen.Get(s); found {
			continue
		}
		seen.Put(s, struct{}{})
		out = append(out, s)
	}
	return out
}

func comparePoints(a, b interface{}) int {
	pa, pb := a.(Point), b.(Point)
	switch {
	case pa.X < pb.X:
		return -1
	case pa.X > pb.X:
		return 1
	case pa.Y < pb.Y:
		return -1
	case pa.Y > pb.Y:
		return 1
	default:
		return 0
	}
}

func resolveBoundingBox(sites []Point, o options) (BoundingBox, error) {
	if o.explicitBox != nil {
		box := *o.explicitBox
		for _, s := range sites {
			if s.X < box.XMin-o.epsilon || s.X > box.XMax+o.epsilon ||
				s.Y < box.YMin-o.epsilon || s.Y > box.YMax+o.epsilon {
				return BoundingBox{}, fmt.Errorf("%w: (%v, %v)", ErrSiteOutsideBoundingBox, s.X, s.Y)
			}
		}
		return box, nil
	}

	minX, minY := sites[0].X, sites[0].Y
	maxX, maxY := sites[0].X, sites[0].Y
	for _, s := range sites[1:] {
		minX = math.Min(minX, s.X)
		minY = math.Min(minY, s.Y)
		maxX = math.Max(maxX, s.X)
		maxY = math.Max(maxY, s.Y)
	}

	span := math.Max(maxX-minX, maxY-minY)
	if span == 0 {
		span = 1
	}
	margin := o.boundingMarginRatio * span

	return BoundingBox{
		XMin: minX - margin, YMin: minY - margin,
		XMax: maxX + margin, YMax: maxY + margin,
	}, nil
}
