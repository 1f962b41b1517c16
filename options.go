package pen

// Option configures a Creator or Editor during construction.
//
// Example:
//
//	c := pen.NewCreator(host, pen.WithSmoothing(0.5))
type Option func(*machineOptions)

// machineOptions holds the interaction tuning shared by both state
// machines. All radii are screen pixels; the machines divide by the host
// zoom so the interactive feel is constant regardless of camera zoom.
type machineOptions struct {
	smoothing    float64 // handle length factor for synthesized handles
	hitRadius    float64 // segment hit-test threshold
	anchorRadius float64 // anchor hit and exclusion threshold
	closeRadius  float64 // closing-click distance to the first anchor
	cornerRadius float64 // drags shorter than this leave a corner point
}

// Default interaction radii, in screen pixels. The anchor radius is
// deliberately tighter than the segment radius so anchors win hit-testing.
const (
	defaultSmoothing    = 0.4
	defaultHitRadius    = 10
	defaultAnchorRadius = 6
	defaultCloseRadius  = 8
	defaultCornerRadius = 3
)

func defaultMachineOptions() machineOptions {
	return machineOptions{
		smoothing:    defaultSmoothing,
		hitRadius:    defaultHitRadius,
		anchorRadius: defaultAnchorRadius,
		closeRadius:  defaultCloseRadius,
		cornerRadius: defaultCornerRadius,
	}
}

// WithSmoothing sets the handle length factor in [0, 1] used when
// synthesizing handles from a drag gesture.
func WithSmoothing(s float64) Option {
	return func(o *machineOptions) {
		if s < 0 {
			s = 0
		}
		if s > 1 {
			s = 1
		}
		o.smoothing = s
	}
}

// WithHitRadius sets the segment hit-test threshold in screen pixels.
func WithHitRadius(r float64) Option {
	return func(o *machineOptions) { o.hitRadius = r }
}

// WithAnchorRadius sets the anchor hit and exclusion threshold in screen
// pixels.
func WithAnchorRadius(r float64) Option {
	return func(o *machineOptions) { o.anchorRadius = r }
}

// WithCloseRadius sets the closing-click threshold in screen pixels.
func WithCloseRadius(r float64) Option {
	return func(o *machineOptions) { o.closeRadius = r }
}

// WithCornerRadius sets the minimum drag distance in screen pixels before
// a newly placed anchor grows handles.
func WithCornerRadius(r float64) Option {
	return func(o *machineOptions) { o.cornerRadius = r }
}
