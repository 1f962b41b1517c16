package pen

import "testing"

func TestOptions_Defaults(t *testing.T) {
	o := defaultMachineOptions()
	if o.anchorRadius >= o.hitRadius {
		t.Errorf("anchor radius %v must be tighter than segment radius %v",
			o.anchorRadius, o.hitRadius)
	}
	if o.smoothing <= 0 || o.smoothing > 1 {
		t.Errorf("default smoothing %v outside (0, 1]", o.smoothing)
	}
}

func TestWithSmoothing_Clamped(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-1, 0},
		{0.7, 0.7},
		{5, 1},
	}
	for _, tt := range tests {
		o := defaultMachineOptions()
		WithSmoothing(tt.in)(&o)
		if o.smoothing != tt.want {
			t.Errorf("WithSmoothing(%v) = %v, want %v", tt.in, o.smoothing, tt.want)
		}
	}
}

func TestOptions_ApplyToCreator(t *testing.T) {
	h := NewMemHost()
	c := NewCreator(h,
		WithHitRadius(20),
		WithAnchorRadius(12),
		WithCloseRadius(30),
		WithCornerRadius(9),
	)

	// A close radius of 30 lets a click 20 units out close the curve.
	for _, p := range []Point{Pt(0, 0), Pt(50, 0), Pt(50, 50)} {
		c.PointerDown(PointerEvent{Pos: p, Pressed: true})
		c.PointerUp(PointerEvent{Pos: p})
	}
	c.PointerDown(PointerEvent{Pos: Pt(20, 0), Pressed: true})
	if c.State() != CreateCommitted || !c.Curve().Closed {
		t.Errorf("state = %v closed = %v, want committed and closed",
			c.State(), c.Curve().Closed)
	}
}
