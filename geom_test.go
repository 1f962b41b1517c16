package pen

import (
	"math"
	"testing"
)

func TestSegmentPoint_Linear(t *testing.T) {
	p1 := CurvePoint{Pos: Pt(0, 0)}
	p2 := CurvePoint{Pos: Pt(100, 50)}
	tests := []struct {
		t    float64
		want Point
	}{
		{0, Pt(0, 0)},
		{0.5, Pt(50, 25)},
		{1, Pt(100, 50)},
	}
	for _, tt := range tests {
		got := SegmentPoint(p1, p2, tt.t)
		if !pointsEqual(got, tt.want, epsilon) {
			t.Errorf("SegmentPoint(t=%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestSegmentPoint_QuadraticNotLinear(t *testing.T) {
	// A single outgoing handle must select the quadratic basis, not
	// linear interpolation: B(0.5) = 0.25*P0 + 0.5*C + 0.25*P1.
	p1 := CurvePoint{Pos: Pt(10, 10), Out: handle(40, -10)}
	p2 := CurvePoint{Pos: Pt(60, 10)}

	got := SegmentPoint(p1, p2, 0.5)
	want := Pt(37.5, 0)
	if !pointsEqual(got, want, epsilon) {
		t.Errorf("SegmentPoint = %v, want quadratic %v", got, want)
	}
	if linear := p1.Pos.Lerp(p2.Pos, 0.5); pointsEqual(got, linear, epsilon) {
		t.Errorf("SegmentPoint degraded to linear interpolation %v", linear)
	}
}

func TestSegmentPoint_IncomingQuadratic(t *testing.T) {
	// The quadratic basis is symmetric in which side carries the handle.
	out := SegmentPoint(CurvePoint{Pos: Pt(0, 0), Out: handle(50, 40)}, CurvePoint{Pos: Pt(100, 0)}, 0.25)
	in := SegmentPoint(CurvePoint{Pos: Pt(0, 0)}, CurvePoint{Pos: Pt(100, 0), In: handle(50, 40)}, 0.25)
	if !pointsEqual(out, in, epsilon) {
		t.Errorf("quadratic basis differs by handle side: %v vs %v", out, in)
	}
}

func TestSegmentPoint_Cubic(t *testing.T) {
	p1 := CurvePoint{Pos: Pt(0, 0), Out: handle(0, 40)}
	p2 := CurvePoint{Pos: Pt(60, 0), In: handle(60, 40)}
	// At t=0.5: (p0 + 3c1 + 3c2 + p3) / 8.
	want := Pt((0+3*0+3*60+60)/8.0, (0+3*40+3*40+0)/8.0)
	got := SegmentPoint(p1, p2, 0.5)
	if !pointsEqual(got, want, epsilon) {
		t.Errorf("cubic SegmentPoint = %v, want %v", got, want)
	}
}

func TestSegmentPoint_MatchesPathBasis(t *testing.T) {
	// The basis chosen by SegmentPoint must be the one Path emits for
	// the same handle configuration.
	tests := []struct {
		name   string
		p1, p2 CurvePoint
		want   string
	}{
		{"corner", CurvePoint{Pos: Pt(0, 0)}, CurvePoint{Pos: Pt(10, 0)}, "line"},
		{"out only", CurvePoint{Pos: Pt(0, 0), Out: handle(5, 5)}, CurvePoint{Pos: Pt(10, 0)}, "quad"},
		{"in only", CurvePoint{Pos: Pt(0, 0)}, CurvePoint{Pos: Pt(10, 0), In: handle(5, 5)}, "quad"},
		{"both", CurvePoint{Pos: Pt(0, 0), Out: handle(2, 5)}, CurvePoint{Pos: Pt(10, 0), In: handle(8, 5)}, "cubic"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Curve{Points: []CurvePoint{tt.p1, tt.p2}}
			elem := c.Path().Elements()[1]
			var kind string
			switch elem.(type) {
			case LineTo:
				kind = "line"
			case QuadTo:
				kind = "quad"
			case CubicTo:
				kind = "cubic"
			}
			if kind != tt.want {
				t.Errorf("path emits %s, want %s", kind, tt.want)
			}
			// Endpoints agree regardless of basis.
			if got := SegmentPoint(tt.p1, tt.p2, 0); !pointsEqual(got, tt.p1.Pos, epsilon) {
				t.Errorf("SegmentPoint(0) = %v, want %v", got, tt.p1.Pos)
			}
			if got := SegmentPoint(tt.p1, tt.p2, 1); !pointsEqual(got, tt.p2.Pos, epsilon) {
				t.Errorf("SegmentPoint(1) = %v, want %v", got, tt.p2.Pos)
			}
		})
	}
}

func TestSegmentDistance_IgnoresCurvature(t *testing.T) {
	// Hit-testing deliberately measures against the straight chord, so
	// handles must not change the result.
	q := Pt(50, 10)
	straight := SegmentDistance(q, CurvePoint{Pos: Pt(0, 0)}, CurvePoint{Pos: Pt(100, 0)})
	curved := SegmentDistance(q,
		CurvePoint{Pos: Pt(0, 0), Out: handle(25, 80)},
		CurvePoint{Pos: Pt(100, 0), In: handle(75, 80)})
	if straight != curved {
		t.Errorf("chord distance changed with handles: %v vs %v", straight, curved)
	}
	if math.Abs(straight-10) > epsilon {
		t.Errorf("SegmentDistance = %v, want 10", straight)
	}
}

func TestSegmentDistance_ClampsToEndpoints(t *testing.T) {
	p1 := CurvePoint{Pos: Pt(0, 0)}
	p2 := CurvePoint{Pos: Pt(100, 0)}
	got := SegmentDistance(Pt(-30, 40), p1, p2)
	if math.Abs(got-50) > epsilon {
		t.Errorf("distance beyond endpoint = %v, want 50", got)
	}
}

func TestNearestSegment(t *testing.T) {
	points := corners(Pt(0, 0), Pt(100, 0), Pt(100, 100))

	tests := []struct {
		name    string
		closed  bool
		q       Point
		zoom    float64
		wantSeg int
		wantT   float64
		wantOK  bool
	}{
		{
			name: "mid first segment",
			q:    Pt(50, 5), zoom: 1,
			wantSeg: 0, wantT: 0.5, wantOK: true,
		},
		{
			name: "mid second segment",
			q:    Pt(96, 50), zoom: 1,
			wantSeg: 1, wantT: 0.5, wantOK: true,
		},
		{
			name: "beyond threshold",
			q:    Pt(50, 40), zoom: 1,
			wantOK: false,
		},
		{
			name:   "closing segment only exists when closed",
			closed: true,
			q:      Pt(52, 48), zoom: 1,
			wantSeg: 2, wantOK: true,
		},
		{
			name: "same screen distance hits at high zoom",
			q:    Pt(50, 2), zoom: 4,
			wantSeg: 0, wantT: 0.5, wantOK: true,
		},
		{
			name: "model distance fine at zoom 1 misses at high zoom",
			q:    Pt(50, 5), zoom: 4,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg, tv, ok := NearestSegment(points, tt.closed, tt.q, tt.zoom)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if seg != tt.wantSeg {
				t.Errorf("segment = %d, want %d", seg, tt.wantSeg)
			}
			if tt.wantT != 0 && math.Abs(tv-tt.wantT) > 1e-6 {
				t.Errorf("t = %v, want %v", tv, tt.wantT)
			}
		})
	}
}

func TestNearestSegment_AnchorExclusion(t *testing.T) {
	// A query near an anchor must yield no segment hit even though the
	// segment itself is well within its own (looser) threshold.
	points := corners(Pt(0, 0), Pt(100, 0))
	q := Pt(2, 2) // ~2.8 from anchor 0, 2 from the segment

	if _, _, ok := NearestSegment(points, false, q, 1); ok {
		t.Error("segment hit inside the anchor exclusion radius")
	}

	// The same query farther from any anchor hits normally.
	if _, _, ok := NearestSegment(points, false, Pt(50, 2), 1); !ok {
		t.Error("expected a segment hit away from anchors")
	}
}

func TestNearestSegment_ZoomInvariance(t *testing.T) {
	// For a fixed screen-pixel distance, the same segment must be
	// returned at zoom 1 and zoom 4 when the model-space offset is
	// adjusted accordingly.
	points := corners(Pt(0, 0), Pt(100, 0), Pt(100, 100))
	const screenDist = 8.0

	seg1, t1, ok1 := NearestSegment(points, false, Pt(50, screenDist/1), 1)
	seg4, t4, ok4 := NearestSegment(points, false, Pt(50, screenDist/4), 4)
	if !ok1 || !ok4 {
		t.Fatalf("hits: zoom1=%v zoom4=%v, want both", ok1, ok4)
	}
	if seg1 != seg4 {
		t.Errorf("segments differ across zoom: %d vs %d", seg1, seg4)
	}
	if math.Abs(t1-t4) > 1e-6 {
		t.Errorf("parameters differ across zoom: %v vs %v", t1, t4)
	}
}

func TestNearestSegment_TooFewPoints(t *testing.T) {
	if _, _, ok := NearestSegment(corners(Pt(0, 0)), false, Pt(0, 20), 1); ok {
		t.Error("hit reported on a single-point curve")
	}
	if _, _, ok := NearestSegment(nil, false, Pt(0, 0), 1); ok {
		t.Error("hit reported on an empty curve")
	}
}

func TestSynthesizeHandles_Interior(t *testing.T) {
	prev := &CurvePoint{Pos: Pt(0, 0)}
	cur := &CurvePoint{Pos: Pt(50, 30)}
	next := &CurvePoint{Pos: Pt(100, 0)}

	in, out := SynthesizeHandles(prev, cur, next, 0.5)
	if in == nil || out == nil {
		t.Fatal("interior point must get both handles")
	}

	// Both handles lie on the tangent line through cur, pointing along
	// next - prev.
	tangent := next.Pos.Sub(prev.Pos).Normalize()
	inDir := cur.Pos.Sub(*in).Normalize()
	outDir := out.Sub(cur.Pos).Normalize()
	if !pointsEqual(inDir, tangent, 1e-9) {
		t.Errorf("In handle direction %v, want tangent %v", inDir, tangent)
	}
	if !pointsEqual(outDir, tangent, 1e-9) {
		t.Errorf("Out handle direction %v, want tangent %v", outDir, tangent)
	}

	// Lengths are proportional to the distance to each neighbor.
	wantIn := cur.Pos.Distance(prev.Pos) * 0.5
	wantOut := cur.Pos.Distance(next.Pos) * 0.5
	if math.Abs(cur.Pos.Distance(*in)-wantIn) > epsilon {
		t.Errorf("In handle length = %v, want %v", cur.Pos.Distance(*in), wantIn)
	}
	if math.Abs(cur.Pos.Distance(*out)-wantOut) > epsilon {
		t.Errorf("Out handle length = %v, want %v", cur.Pos.Distance(*out), wantOut)
	}
}

func TestSynthesizeHandles_Endpoints(t *testing.T) {
	first := &CurvePoint{Pos: Pt(0, 0)}
	second := &CurvePoint{Pos: Pt(100, 0)}

	in, out := SynthesizeHandles(nil, first, second, 0.4)
	if in != nil {
		t.Error("first point must not get an incoming handle")
	}
	if out == nil || !pointsEqual(*out, Pt(40, 0), epsilon) {
		t.Errorf("first point Out = %v, want (40, 0)", out)
	}

	in, out = SynthesizeHandles(first, second, nil, 0.4)
	if out != nil {
		t.Error("last point must not get an outgoing handle")
	}
	if in == nil || !pointsEqual(*in, Pt(60, 0), epsilon) {
		t.Errorf("last point In = %v, want (60, 0)", in)
	}
}

func TestSynthesizeHandles_DegenerateTangent(t *testing.T) {
	// Coincident neighbors give a zero-length tangent. The fallback is
	// zero-offset handles, never a division by zero.
	shared := &CurvePoint{Pos: Pt(10, 10)}
	cur := &CurvePoint{Pos: Pt(50, 50)}

	in, out := SynthesizeHandles(shared, cur, shared, 0.5)
	if in == nil || out == nil {
		t.Fatal("degenerate tangent must still yield handles")
	}
	if !pointsEqual(*in, cur.Pos, epsilon) || !pointsEqual(*out, cur.Pos, epsilon) {
		t.Errorf("handles = %v / %v, want zero-offset at %v", *in, *out, cur.Pos)
	}
}

func TestSynthesizeHandles_NoNeighbors(t *testing.T) {
	cur := &CurvePoint{Pos: Pt(0, 0)}
	if in, out := SynthesizeHandles(nil, cur, nil, 0.5); in != nil || out != nil {
		t.Error("isolated point must stay a corner")
	}
}

func TestSnapAngle(t *testing.T) {
	tests := []struct {
		name string
		v    Point
		want float64 // snapped angle in radians
	}{
		{"near horizontal", Pt(10, 1), 0},
		{"near diagonal", Pt(9, 10), math.Pi / 4},
		{"near vertical", Pt(-1, 12), math.Pi / 2},
		{"negative diagonal", Pt(-10, -11), -3 * math.Pi / 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := snapAngle(tt.v)
			if math.Abs(got.Angle()-tt.want) > 1e-9 {
				t.Errorf("angle = %v, want %v", got.Angle(), tt.want)
			}
			if math.Abs(got.Length()-tt.v.Length()) > 1e-9 {
				t.Errorf("length changed: %v -> %v", tt.v.Length(), got.Length())
			}
		})
	}
}
