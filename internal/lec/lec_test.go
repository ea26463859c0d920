package lec

import (
	"testing"

	"github.com/sherlockjack/geovoronoi/internal/dcel"
	"github.com/sherlockjack/geovoronoi/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangleSites() []geom.Point {
	return []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8.6602540378}}
}

func triangleVertex() *dcel.Vertex {
	return &dcel.Vertex{Point: geom.Point{X: 5, Y: 2.8867513459}, Sites: [3]int{0, 1, 2}}
}

func bigBox() dcel.BoundingBox {
	return dcel.BoundingBox{XMin: -50, YMin: -50, XMax: 50, YMax: 50}
}

func TestComputeFindsUnobstructedVertex(t *testing.T) {
	sites := triangleSites()
	v := triangleVertex()

	candidates := Compute(sites, []*dcel.Vertex{v}, bigBox(), 1e-9)
	require.Len(t, candidates, 1)
	assert.InDelta(t, v.Point.Dist(sites[0]), candidates[0].Radius, 1e-9)
	assert.Equal(t, [3]int{0, 1, 2}, candidates[0].Sites)
}

func TestComputeExcludesVertexWithCloserSite(t *testing.T) {
	sites := append(triangleSites(), geom.Point{X: 5, Y: 2.9}) // sits well inside the circle
	v := triangleVertex()

	candidates := Compute(sites, []*dcel.Vertex{v}, bigBox(), 1e-9)
	assert.Empty(t, candidates)
}

func TestComputeKeepsOnlyMaxRadiusAmongSeveralEmptyVertices(t *testing.T) {
	// Two unrelated empty triangles at very different scales: only the
	// larger-radius vertex should survive, the smaller one is dropped
	// even though it has no closer site of its own.
	sites := []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8.6602540378}, // small-ish triangle
		{X: 100, Y: 100}, {X: 120, Y: 100}, {X: 110, Y: 117.32050808}, // larger, far-off triangle
	}
	small := &dcel.Vertex{Point: geom.Point{X: 5, Y: 2.8867513459}, Sites: [3]int{0, 1, 2}}
	large := &dcel.Vertex{Point: geom.Point{X: 110, Y: 105.7735027}, Sites: [3]int{3, 4, 5}}

	candidates := Compute(sites, []*dcel.Vertex{small, large}, dcel.BoundingBox{XMin: -200, YMin: -200, XMax: 200, YMax: 200}, 1e-6)
	require.Len(t, candidates, 1)
	assert.Equal(t, [3]int{3, 4, 5}, candidates[0].Sites)
}

func TestComputeKeepsAllVerticesTiedForMaxRadius(t *testing.T) {
	// Two separate equilateral triangles of identical size: both
	// vertices have the same circumradius, so both survive the filter.
	sites := []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8.6602540378},
		{X: 100, Y: 0}, {X: 110, Y: 0}, {X: 105, Y: 8.6602540378},
	}
	first := &dcel.Vertex{Point: geom.Point{X: 5, Y: 2.8867513459}, Sites: [3]int{0, 1, 2}}
	second := &dcel.Vertex{Point: geom.Point{X: 105, Y: 2.8867513459}, Sites: [3]int{3, 4, 5}}

	candidates := Compute(sites, []*dcel.Vertex{first, second}, dcel.BoundingBox{XMin: -50, YMin: -50, XMax: 200, YMax: 50}, 1e-6)
	require.Len(t, candidates, 2)
}

func TestComputeExcludesVertexOutsideBox(t *testing.T) {
	sites := triangleSites()
	v := triangleVertex()
	tiny := dcel.BoundingBox{XMin: -1, YMin: -1, XMax: 1, YMax: 1}

	candidates := Compute(sites, []*dcel.Vertex{v}, tiny, 1e-9)
	assert.Empty(t, candidates)
}
