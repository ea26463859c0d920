// Package dcel is the diagram builder: it owns the growing collection
// of half-edges and vertices produced by the sweep, and knows how to
// clip the edges that are still open when the event queue drains to
// the bounding rectangle.
//
// It plays the role the teacher's Voronoi.DCEL field (backed by
// github.com/quasoft/dcel) plays in Shamos.go — NewVertex/NewEdge
// call shapes are kept (there are no faces and no NewFace), but the
// structure itself is owned by
// this module: the teacher's half-edge dependency is not present in
// the retrieved corpus, so its exact surface cannot be grounded (see
// DESIGN.md).
package dcel

import "github.com/sherlockjack/geovoronoi/internal/geom"

// HalfEdge is one Voronoi edge, bounded by the two sites whose cells
// it separates. Start is known when the edge is created (at a site
// split or a vertex); End is absent until the far vertex is found (by
// a circle event) or the sweep finishes and the edge is clipped to
// the bounding box.
type HalfEdge struct {
	Start    geom.Point
	End      geom.Point
	Finished bool

	LeftSite, RightSite int

	leftPt, rightPt geom.Point // the two flanking sites, for clip direction only
}

// Vertex is a Voronoi vertex: the circumcenter of the three sites
// whose arcs met at the circle event that produced it.
type Vertex struct {
	Point geom.Point
	Sites [3]int
}

// BoundingBox is the axis-aligned rectangle every finalized edge is
// clipped to.
type BoundingBox struct {
	XMin, YMin, XMax, YMax float64
}

// Contains reports whether p lies within the box, within epsilon.
func (b BoundingBox) Contains(p geom.Point, epsilon float64) bool {
	return p.X >= b.XMin-epsilon && p.X <= b.XMax+epsilon &&
		p.Y >= b.YMin-epsilon && p.Y <= b.YMax+epsilon
}

func (b BoundingBox) clamp(p geom.Point) geom.Point {
	x := p.X
	if x < b.XMin {
		x = b.XMin
	} else if x > b.XMax {
		x = b.XMax
	}
	y := p.Y
	if y < b.YMin {
		y = b.YMin
	} else if y > b.YMax {
		y = b.YMax
	}
	return geom.Point{X: x, Y: y}
}

// rayExit returns the point where the ray start+t*dir (t>0) first
// leaves the box, by testing against all four box edges and keeping
// the smallest positive t whose crossing point is within bounds.
func (b BoundingBox) rayExit(start, dir geom.Point, epsilon float64) geom.Point {
	bestT := -1.0
	best := start
	consider := func(t float64, p geom.Point) {
		if t <= 0 {
			return
		}
		if bestT < 0 || t < bestT {
			bestT = t
			best = p
		}
	}

	if dir.X != 0 {
		for _, x := range [2]float64{b.XMin, b.XMax} {
			t := (x - start.X) / dir.X
			y := start.Y + t*dir.Y
			if y >= b.YMin-epsilon && y <= b.YMax+epsilon {
				consider(t, geom.Point{X: x, Y: y})
			}
		}
	}
	if dir.Y != 0 {
		for _, y := range [2]float64{b.YMin, b.YMax} {
			t := (y - start.Y) / dir.Y
			x := start.X + t*dir.X
			if x >= b.XMin-epsilon && x <= b.XMax+epsilon {
				consider(t, geom.Point{X: x, Y: y})
			}
		}
	}
	if bestT < 0 {
		// Direction parallel to a box edge and outside it, or zero
		// vector: nothing to extend to, stay put (clamped).
		return b.clamp(start)
	}
	return best
}

// Builder accumulates half-edges and vertices as the sweep runs.
type Builder struct {
	Edges    []*HalfEdge
	Vertices []*Vertex
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// NewEdge creates a half-edge starting at start, bounded by leftSite
// (at leftPt) on one side and rightSite (at rightPt) on the other.
func (b *Builder) NewEdge(start geom.Point, leftSite int, leftPt geom.Point, rightSite int, rightPt geom.Point) *HalfEdge {
	e := &HalfEdge{
		Start:     start,
		LeftSite:  leftSite,
		RightSite: rightSite,
		leftPt:    leftPt,
		rightPt:   rightPt,
	}
	b.Edges = append(b.Edges, e)
	return e
}

// Finish sets e's endpoint and marks it finished. Idempotent: finishing
// an already-finished edge is a no-op, so callers don't need to guard
// against a half-edge being closed from both its flanking arcs.
func (b *Builder) Finish(e *HalfEdge, end geom.Point) {
	if e == nil || e.Finished {
		return
	}
	e.End = end
	e.Finished = true
}

// NewVertex records a new Voronoi vertex at p, defined by sites.
func (b *Builder) NewVertex(p geom.Point, sites [3]int) *Vertex {
	v := &Vertex{Point: p, Sites: sites}
	b.Vertices = append(b.Vertices, v)
	return v
}

// FinalizeOpenEdges clips every still-unfinished half-edge to box: the
// edge's direction is inferred from its flanking sites, (dy, -dx) of
// (rightPt - leftPt), and the far endpoint is set where that ray
// leaves box. If an edge's start already lies outside box, the start
// is clamped to the box boundary too, so both endpoints end up inside
// or on the rectangle.
func (b *Builder) FinalizeOpenEdges(box BoundingBox, epsilon float64) {
	for _, e := range b.Edges {
		if e.Finished {
			continue
		}
		start := e.Start
		if !box.Contains(start, epsilon) {
			start = box.clamp(start)
		}
		dir := geom.Point{
			X: e.rightPt.Y - e.leftPt.Y,
			Y: -(e.rightPt.X - e.leftPt.X),
		}
		end := box.rayExit(start, dir, epsilon)
		e.Start = start
		e.End = end
		e.Finished = true
	}
}
