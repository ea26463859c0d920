//go:build debug

package sweep

import (
	"testing"

	"github.com/sherlockjack/geovoronoi/internal/beachline"
	"github.com/sherlockjack/geovoronoi/internal/events"
	"github.com/stretchr/testify/assert"
)

// Only built with -tags debug, the same way github.com/arl/assertgo
// itself is only live under that tag: this is the one place the
// debug assertions can actually fire, so it's the one place that can
// test Run's recover boundary.
func TestRunRecoversInvariantViolation(t *testing.T) {
	d := NewDriver(nil, bigBox(), 1e-9, false)

	// An arc with a live circle event but no neighbours: impossible in
	// correct code, since PredictCircle never emits an event without
	// both neighbours present.
	arc := &beachline.Arc{SiteIndex: 0}
	ev := events.NewCircleEvent(0, 0, arc)
	arc.CircleEvent = ev
	d.q.Push(ev)

	_, err := d.Run()
	assert.ErrorIs(t, err, ErrInternalInvariant)
}
