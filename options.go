package geovoronoi

// Option configures a call to Compute.
type Option func(*options)

type options struct {
	epsilon                    float64
	boundingMarginRatio        float64
	explicitBox                *BoundingBox
	computeLargestEmptyCircles bool
	verbose                    bool
}

func defaultOptions() options {
	return options{
		epsilon:             1e-10,
		boundingMarginRatio: 0.2,
	}
}

// WithEpsilon overrides the tolerance used for equality and boundary
// comparisons throughout the sweep. The default is 1e-10.
func WithEpsilon(epsilon float64) Option {
	return func(o *options) {
		o.epsilon = epsilon
	}
}

// WithBoundingMarginRatio sets the margin added around the sites'
// bounding rectangle, as a ratio of the larger of its two spans, when
// no explicit bounding box is given via WithBoundingBox. The default
// is 0.2.
func WithBoundingMarginRatio(ratio float64) Option {
	return func(o *options) {
		o.boundingMarginRatio = ratio
	}
}

// WithBoundingBox fixes the clipping rectangle explicitly, overriding
// the margin-derived default. Every site must lie within the box, or
// Compute returns an error.
func WithBoundingBox(xMin, yMin, xMax, yMax float64) Option {
	return func(o *options) {
		o.explicitBox = &BoundingBox{XMin: xMin, YMin: yMin, XMax: xMax, YMax: yMax}
	}
}

// WithLargestEmptyCircles enables largest-empty-circle analysis:
// Diagram.LargestEmptyCircles is populated with every empty circle
// centered at a Voronoi vertex whose radius equals the maximum found,
// within epsilon. Off by default, since it checks every vertex against
// the sites in its circle's x-range and most callers don't need it.
func WithLargestEmptyCircles(enabled bool) Option {
	return func(o *options) {
		o.computeLargestEmptyCircles = enabled
	}
}

// WithVerbose turns on step-by-step sweep logging via the standard
// log package. Off by default.
func WithVerbose(v bool) Option {
	return func(o *options) {
		o.verbose = v
	}
}
