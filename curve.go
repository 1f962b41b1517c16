package pen

import "math"

// CurvePoint is an anchor on a curve. In and Out are optional control
// points governing the curvature of the segment arriving at and leaving
// the anchor; a nil handle means the segment on that side is straight.
// All coordinates, handles included, are in the curve's local space,
// relative to the bounding-box origin.
type CurvePoint struct {
	Pos Point
	In  *Point
	Out *Point
}

// Corner reports whether the point has no handles on either side.
func (cp CurvePoint) Corner() bool {
	return cp.In == nil && cp.Out == nil
}

// clone returns a deep copy so that handle pointers are never shared
// between curve values.
func (cp CurvePoint) clone() CurvePoint {
	out := CurvePoint{Pos: cp.Pos}
	if cp.In != nil {
		in := *cp.In
		out.In = &in
	}
	if cp.Out != nil {
		o := *cp.Out
		out.Out = &o
	}
	return out
}

// clonePoints deep-copies a point slice.
func clonePoints(points []CurvePoint) []CurvePoint {
	out := make([]CurvePoint, len(points))
	for i, p := range points {
		out[i] = p.clone()
	}
	return out
}

// Curve is an editable multi-segment Bezier path. Points are in path
// order; when Closed, an implicit segment connects the last point back to
// the first using the last point's Out handle and the first point's In
// handle. W and H are the bounding box, derived from anchors and handles
// and never authored directly.
//
// Curve values are copy-on-write: every mutating operation returns a new
// value, matching the whole-shape replacement contract of the host.
type Curve struct {
	Points []CurvePoint
	Closed bool
	W, H   float64
}

// Valid reports whether the curve has enough points to be a shape.
func (c Curve) Valid() bool {
	return len(c.Points) >= 2
}

// NumSegments returns the number of segments, including the closing
// segment of a closed curve.
func (c Curve) NumSegments() int {
	n := len(c.Points)
	if n < 2 {
		return 0
	}
	if c.Closed {
		return n
	}
	return n - 1
}

// Segment returns the endpoints of segment i. The closing segment of a
// closed curve wraps from the last point to the first.
func (c Curve) Segment(i int) (p1, p2 CurvePoint, err error) {
	if i < 0 || i >= c.NumSegments() {
		return CurvePoint{}, CurvePoint{}, ErrInvalidSegment
	}
	p1 = c.Points[i]
	p2 = c.Points[(i+1)%len(c.Points)]
	return p1, p2, nil
}

// Path converts the curve to a path-command sequence. Each segment is a
// cubic when both adjacent handles are present, a quadratic when exactly
// one is, and a line when neither is. The closing segment of a closed
// curve follows the same rule before the final Close. This basis
// selection matches SegmentPoint exactly.
func (c Curve) Path() *Path {
	p := NewPath()
	if len(c.Points) == 0 {
		return p
	}
	first := c.Points[0]
	p.MoveTo(first.Pos.X, first.Pos.Y)
	for i := 1; i < len(c.Points); i++ {
		appendSegment(p, c.Points[i-1], c.Points[i])
	}
	if c.Closed && len(c.Points) > 1 {
		appendSegment(p, c.Points[len(c.Points)-1], first)
		p.Close()
	}
	return p
}

// appendSegment emits the command for the segment p1 -> p2, choosing the
// basis from handle presence.
func appendSegment(p *Path, p1, p2 CurvePoint) {
	switch {
	case p1.Out != nil && p2.In != nil:
		p.CubicTo(p1.Out.X, p1.Out.Y, p2.In.X, p2.In.Y, p2.Pos.X, p2.Pos.Y)
	case p1.Out != nil:
		p.QuadraticTo(p1.Out.X, p1.Out.Y, p2.Pos.X, p2.Pos.Y)
	case p2.In != nil:
		p.QuadraticTo(p2.In.X, p2.In.Y, p2.Pos.X, p2.Pos.Y)
	default:
		p.LineTo(p2.Pos.X, p2.Pos.Y)
	}
}

// RecomputeBounds returns the bounding box of all anchors and all present
// handles. Handles can protrude outside the anchor hull, so they count.
// Width and height are floored at 1 to avoid degenerate shapes.
func RecomputeBounds(points []CurvePoint) Rect {
	if len(points) == 0 {
		return Rect{Max: Pt(1, 1)}
	}
	r := Rect{Min: points[0].Pos, Max: points[0].Pos}
	for _, cp := range points {
		r = r.expand(cp.Pos)
		if cp.In != nil {
			r = r.expand(*cp.In)
		}
		if cp.Out != nil {
			r = r.expand(*cp.Out)
		}
	}
	if r.Width() < 1 {
		r.Max.X = r.Min.X + 1
	}
	if r.Height() < 1 {
		r.Max.Y = r.Min.Y + 1
	}
	return r
}

// Normalize re-expresses all anchor and handle coordinates relative to the
// recomputed bounding-box origin and updates W and H. It returns the new
// curve and the origin delta, which the caller must absorb into the
// shape's external position so the geometry does not move on screen.
//
// Normalize is idempotent: applying it to an already normalized curve
// returns identical coordinates and a zero delta.
func (c Curve) Normalize() (Curve, Point) {
	out := Curve{Points: clonePoints(c.Points), Closed: c.Closed, W: 1, H: 1}
	if len(out.Points) == 0 {
		return out, Point{}
	}
	bounds := RecomputeBounds(out.Points)
	delta := bounds.Min
	for i := range out.Points {
		cp := &out.Points[i]
		cp.Pos = cp.Pos.Sub(delta)
		if cp.In != nil {
			*cp.In = cp.In.Sub(delta)
		}
		if cp.Out != nil {
			*cp.Out = cp.Out.Sub(delta)
		}
	}
	out.W = bounds.Width()
	out.H = bounds.Height()
	return out, delta
}

// AppendPoint adds a point at the end of the path and normalizes.
func (c Curve) AppendPoint(p CurvePoint) (Curve, Point) {
	points := clonePoints(c.Points)
	points = append(points, p.clone())
	next := Curve{Points: points, Closed: c.Closed}
	return next.Normalize()
}

// InsertPoint splices p immediately after the start of segment i,
// leaving neighboring handles untouched (no automatic smoothing), and
// normalizes. Inserting on the closing segment of a closed curve appends
// after the last point. The returned Point is the normalization delta
// for the shape's external position.
func (c Curve) InsertPoint(i int, p CurvePoint) (Curve, Point, error) {
	if i < 0 || i >= c.NumSegments() {
		return c, Point{}, ErrInvalidSegment
	}
	points := clonePoints(c.Points)
	points = append(points, CurvePoint{})
	copy(points[i+2:], points[i+1:])
	points[i+1] = p.clone()
	next := Curve{Points: points, Closed: c.Closed}
	out, delta := next.Normalize()
	return out, delta, nil
}

// RemovePoint splices out point i and normalizes. It fails with
// ErrMinimumPoints when the curve has two or fewer points; the curve is
// returned unchanged in that case. Handles are not reconnected across the
// removed point: the surviving segment is whatever the remaining points'
// own handles dictate.
func (c Curve) RemovePoint(i int) (Curve, Point, error) {
	if len(c.Points) <= 2 {
		return c, Point{}, ErrMinimumPoints
	}
	if i < 0 || i >= len(c.Points) {
		return c, Point{}, ErrInvalidSegment
	}
	points := clonePoints(c.Points)
	points = append(points[:i], points[i+1:]...)
	next := Curve{Points: points, Closed: c.Closed}
	out, delta := next.Normalize()
	return out, delta, nil
}

// Bounds returns the current bounding box in local space.
func (c Curve) Bounds() Rect {
	return Rect{Max: Pt(math.Max(c.W, 1), math.Max(c.H, 1))}
}
