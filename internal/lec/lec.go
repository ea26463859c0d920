// Package lec finds the largest empty circles of a Voronoi diagram:
// among all circles centered at a Voronoi vertex, touching its three
// defining sites, and containing no other site, the ones whose radius
// equals the maximum such radius, within epsilon.
//
// Every Voronoi vertex is already equidistant from three sites by
// construction; what makes it a candidate is that no other site sits
// closer. Checking every vertex against every site is O(V*N), so
// candidate sites are indexed in a github.com/google/btree BTreeG
// ordered by x and queried with AscendRange over [center.X-radius,
// center.X+radius], the same spatial-pruning role btree plays for the
// beachline, applied here to sites instead of arcs.
package lec

import (
	"math"

	"github.com/google/btree"
	"github.com/sherlockjack/geovoronoi/internal/dcel"
	"github.com/sherlockjack/geovoronoi/internal/geom"
)

// Candidate is one largest-empty-circle candidate.
type Candidate struct {
	Center geom.Point
	Radius float64
	Sites  [3]int
}

type siteEntry struct {
	idx int
	x   float64
}

func lessEntry(a, b siteEntry) bool {
	if a.x != b.x {
		return a.x < b.x
	}
	return a.idx < b.idx
}

// Compute returns every largest-empty-circle candidate among
// vertices: among the vertices whose circumcircle contains no other
// site, those whose radius equals the maximum such radius, within
// epsilon (spec.md §4.6). Only vertices within box (the clipping
// rectangle) are considered, since a circle whose center has been
// discarded as outside the diagram's domain of interest isn't
// meaningful output.
func Compute(sites []geom.Point, vertices []*dcel.Vertex, box dcel.BoundingBox, epsilon float64) []Candidate {
	tree := btree.NewG(32, lessEntry)
	for i, s := range sites {
		tree.ReplaceOrInsert(siteEntry{idx: i, x: s.X})
	}

	var candidates []Candidate
	maxRadius := math.Inf(-1)
	for _, v := range vertices {
		if !box.Contains(v.Point, epsilon) {
			continue
		}
		radius := v.Point.Dist(sites[v.Sites[0]])

		defining := [3]int{v.Sites[0], v.Sites[1], v.Sites[2]}
		lo := siteEntry{idx: math.MinInt, x: v.Point.X - radius}
		hi := siteEntry{idx: math.MaxInt, x: v.Point.X + radius + epsilon}

		empty := true
		tree.AscendRange(lo, hi, func(e siteEntry) bool {
			if e.idx == defining[0] || e.idx == defining[1] || e.idx == defining[2] {
				return true
			}
			if v.Point.Dist(sites[e.idx]) < radius-epsilon {
				empty = false
				return false
			}
			return true
		})
		if empty {
			candidates = append(candidates, Candidate{Center: v.Point, Radius: radius, Sites: defining})
			if radius > maxRadius {
				maxRadius = radius
			}
		}
	}

	largest := candidates[:0]
	for _, c := range candidates {
		if c.Radius >= maxRadius-epsilon {
			largest = append(largest, c)
		}
	}
	return largest
}
