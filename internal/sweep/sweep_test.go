package sweep

import (
	"testing"

	"github.com/sherlockjack/geovoronoi/internal/dcel"
	"github.com/sherlockjack/geovoronoi/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bigBox() dcel.BoundingBox {
	return dcel.BoundingBox{XMin: -50, YMin: -50, XMax: 50, YMax: 50}
}

func TestRunThreeSitesProducesOneVertex(t *testing.T) {
	sites := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8.6602540378}}
	d := NewDriver(sites, bigBox(), 1e-9, false)
	builder, err := d.Run()
	require.NoError(t, err)

	require.Len(t, builder.Vertices, 1)
	v := builder.Vertices[0]
	assert.InDelta(t, 5.0, v.Point.X, 1e-6)
	assert.InDelta(t, 2.8867513459, v.Point.Y, 1e-6)
	assert.ElementsMatch(t, []int{0, 1, 2}, v.Sites[:])

	require.Len(t, builder.Edges, 3)
	for _, e := range builder.Edges {
		assert.True(t, e.Finished)
	}
}

func TestRunTwoSitesSharedYDegenerateSplit(t *testing.T) {
	sites := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
	d := NewDriver(sites, bigBox(), 1e-9, false)
	builder, err := d.Run()
	require.NoError(t, err)

	assert.Empty(t, builder.Vertices)
	require.Len(t, builder.Edges, 1)

	e := builder.Edges[0]
	assert.True(t, e.Finished)
	assert.InDelta(t, 5.0, e.Start.X, 1e-9)
	assert.InDelta(t, 5.0, e.End.X, 1e-9)
	assert.InDelta(t, 50.0, e.Start.Y, 1e-9)
	assert.InDelta(t, -50.0, e.End.Y, 1e-9)
}

func TestRunIsDeterministic(t *testing.T) {
	sites := []geom.Point{{X: 1, Y: 1}, {X: 4, Y: 9}, {X: -3, Y: 2}, {X: 7, Y: -1}, {X: 0, Y: 0}}

	d1 := NewDriver(append([]geom.Point(nil), sites...), bigBox(), 1e-9, false)
	b1, err := d1.Run()
	require.NoError(t, err)

	d2 := NewDriver(append([]geom.Point(nil), sites...), bigBox(), 1e-9, false)
	b2, err := d2.Run()
	require.NoError(t, err)

	require.Equal(t, len(b1.Vertices), len(b2.Vertices))
	require.Equal(t, len(b1.Edges), len(b2.Edges))
	for i := range b1.Vertices {
		assert.InDelta(t, b1.Vertices[i].Point.X, b2.Vertices[i].Point.X, 1e-9)
		assert.InDelta(t, b1.Vertices[i].Point.Y, b2.Vertices[i].Point.Y, 1e-9)
	}
}

func TestRunAllFinishedEdgesLieWithinBox(t *testing.T) {
	sites := []geom.Point{{X: 1, Y: 1}, {X: 4, Y: 9}, {X: -3, Y: 2}, {X: 7, Y: -1}, {X: 0, Y: 0}, {X: 3, Y: 3}}
	box := bigBox()
	d := NewDriver(sites, box, 1e-9, false)
	builder, err := d.Run()
	require.NoError(t, err)

	for _, e := range builder.Edges {
		require.True(t, e.Finished)
		assert.True(t, box.Contains(e.Start, 1e-6))
		assert.True(t, box.Contains(e.End, 1e-6))
	}
}
