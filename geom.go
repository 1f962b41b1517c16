package pen

import "math"

// Pure geometry used by the model and both state machines. Everything in
// this file is stateless and safe to call concurrently for independent
// curves.

// SegmentPoint evaluates the segment p1 -> p2 at parameter t in [0, 1].
// The basis is cubic when both p1.Out and p2.In are present, quadratic
// when exactly one is, and linear otherwise, matching Curve.Path exactly.
func SegmentPoint(p1, p2 CurvePoint, t float64) Point {
	switch {
	case p1.Out != nil && p2.In != nil:
		return cubicPoint(p1.Pos, *p1.Out, *p2.In, p2.Pos, t)
	case p1.Out != nil:
		return quadPoint(p1.Pos, *p1.Out, p2.Pos, t)
	case p2.In != nil:
		return quadPoint(p1.Pos, *p2.In, p2.Pos, t)
	default:
		return p1.Pos.Lerp(p2.Pos, t)
	}
}

// cubicPoint evaluates a cubic Bezier with the standard Bernstein basis.
func cubicPoint(p0, c1, c2, p3 Point, t float64) Point {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*c1.X + c*c2.X + d*p3.X,
		Y: a*p0.Y + b*c1.Y + c*c2.Y + d*p3.Y,
	}
}

// quadPoint evaluates a quadratic Bezier.
func quadPoint(p0, c, p1 Point, t float64) Point {
	u := 1 - t
	a := u * u
	b := 2 * u * t
	d := t * t
	return Point{
		X: a*p0.X + b*c.X + d*p1.X,
		Y: a*p0.Y + b*c.Y + d*p1.Y,
	}
}

// SegmentDistance returns the distance from q to the segment p1 -> p2.
//
// Curved segments are approximated by the straight chord between the
// anchors. All hit-testing in this package uses this same approximation;
// callers must not mix it with a more precise curve distance, or the
// interactive feel becomes inconsistent between call sites.
func SegmentDistance(q Point, p1, p2 CurvePoint) float64 {
	d, _ := chordDistance(q, p1.Pos, p2.Pos)
	return d
}

// chordDistance returns the distance from q to the segment a -> b and the
// clamped projection parameter t in [0, 1].
func chordDistance(q, a, b Point) (float64, float64) {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return q.Distance(a), 0
	}
	t := q.Sub(a).Dot(ab) / lenSq
	t = math.Max(0, math.Min(1, t))
	return q.Distance(a.Lerp(b, t)), t
}

// NearestSegment scans every segment of the curve, including the closing
// segment when closed, and returns the index and parameter of the segment
// nearest to q, by chord distance. The hit threshold is in screen pixels
// and divided by zoom, keeping hit-testing feel constant under camera
// zoom. It reports no hit when no segment is within threshold, or when q
// is within the tighter anchor-exclusion radius of any anchor: anchors
// always take priority over segments.
func NearestSegment(points []CurvePoint, closed bool, q Point, zoom float64) (seg int, t float64, ok bool) {
	return nearestSegment(points, closed, q, zoom, defaultHitRadius, defaultAnchorRadius)
}

func nearestSegment(points []CurvePoint, closed bool, q Point, zoom, hitRadius, anchorRadius float64) (int, float64, bool) {
	if zoom <= 0 {
		zoom = 1
	}
	exclusion := anchorRadius / zoom
	for _, cp := range points {
		if q.Distance(cp.Pos) < exclusion {
			return 0, 0, false
		}
	}

	n := len(points)
	segments := n - 1
	if closed {
		segments = n
	}
	if n < 2 {
		return 0, 0, false
	}

	bestSeg, bestT := -1, 0.0
	bestDist := hitRadius / zoom
	for i := 0; i < segments; i++ {
		a := points[i].Pos
		b := points[(i+1)%n].Pos
		d, t := chordDistance(q, a, b)
		if d < bestDist {
			bestSeg, bestT, bestDist = i, t, d
		}
	}
	if bestSeg < 0 {
		return 0, 0, false
	}
	return bestSeg, bestT, true
}

// anchorAt returns the index of the first anchor within radius/zoom of q,
// or -1.
func anchorAt(points []CurvePoint, q Point, zoom, radius float64) int {
	if zoom <= 0 {
		zoom = 1
	}
	limit := radius / zoom
	for i, cp := range points {
		if q.Distance(cp.Pos) < limit {
			return i
		}
	}
	return -1
}

// SynthesizeHandles derives symmetric In/Out handles for cur from its
// neighbors. The handle direction is the tangent next.Pos - prev.Pos and
// each handle's length is proportional to the distance to that neighbor,
// scaled by smoothing in [0, 1]. A missing neighbor yields a one-sided
// handle derived from the remaining neighbor. Coincident neighbors (a
// zero-length tangent) degrade to zero-offset handles rather than
// dividing by zero, leaving the point an effective corner.
func SynthesizeHandles(prev, cur, next *CurvePoint, smoothing float64) (in, out *Point) {
	if cur == nil {
		return nil, nil
	}
	switch {
	case prev == nil && next == nil:
		return nil, nil
	case prev == nil:
		h := cur.Pos.Add(next.Pos.Sub(cur.Pos).Mul(smoothing))
		return nil, &h
	case next == nil:
		h := cur.Pos.Add(prev.Pos.Sub(cur.Pos).Mul(smoothing))
		return &h, nil
	}

	tangent := next.Pos.Sub(prev.Pos)
	length := tangent.Length()
	if length == 0 {
		// Coincident neighbors leave no usable tangent.
		zin, zout := cur.Pos, cur.Pos
		return &zin, &zout
	}
	unit := tangent.Mul(1 / length)
	hin := cur.Pos.Sub(unit.Mul(cur.Pos.Distance(prev.Pos) * smoothing))
	hout := cur.Pos.Add(unit.Mul(cur.Pos.Distance(next.Pos) * smoothing))
	return &hin, &hout
}

// snapAngle snaps the vector to the nearest 45 degree increment,
// preserving its length.
func snapAngle(v Point) Point {
	length := v.Length()
	if length == 0 {
		return v
	}
	const step = math.Pi / 4
	angle := math.Round(v.Angle()/step) * step
	return Point{X: length * math.Cos(angle), Y: length * math.Sin(angle)}
}
