package pen

// Shape is the closed set of shape variants the host can store. The
// unexported marker method seals the set, so dispatch sites use exhaustive
// type switches instead of string tags.
type Shape interface {
	// Path converts the shape to a path-command sequence in local space.
	Path() *Path

	// Bounds returns the shape's local bounding rectangle.
	Bounds() Rect

	// Origin returns the shape's position on the page. Local coordinates
	// are relative to this point.
	Origin() Point

	isShape()
}

// ShapeKind returns a stable name for the shape variant. The switch is
// exhaustive over the sealed set.
func ShapeKind(s Shape) string {
	switch s.(type) {
	case *CurveShape:
		return "curve"
	case *RectShape:
		return "rect"
	case *EllipseShape:
		return "ellipse"
	default:
		return "unknown"
	}
}

// CurveShape is an editable Bezier curve placed on the page. While
// EditMode is true the Editor may structurally modify the curve and the
// host renders the edit UI (anchors, control lines, hover preview);
// while false the curve is an inert rendered shape.
type CurveShape struct {
	Pos      Point
	Curve    Curve
	EditMode bool

	// Preview is the transient hover-preview marker in local space, set
	// by the Editor while the insertion modifier is held. It is never
	// committed and nil when no preview is active.
	Preview *Point
}

func (s *CurveShape) isShape() {}

// Path returns the curve's path commands in local space.
func (s *CurveShape) Path() *Path { return s.Curve.Path() }

// Bounds returns the curve's bounding box.
func (s *CurveShape) Bounds() Rect { return s.Curve.Bounds() }

// Origin returns the shape's page position.
func (s *CurveShape) Origin() Point { return s.Pos }

// clone returns a copy suitable for whole-shape replacement.
func (s *CurveShape) clone() *CurveShape {
	out := &CurveShape{Pos: s.Pos, EditMode: s.EditMode}
	out.Curve = Curve{Points: clonePoints(s.Curve.Points), Closed: s.Curve.Closed, W: s.Curve.W, H: s.Curve.H}
	if s.Preview != nil {
		p := *s.Preview
		out.Preview = &p
	}
	return out
}

// RectShape is an axis-aligned rectangle.
type RectShape struct {
	Pos  Point
	W, H float64
}

func (s *RectShape) isShape() {}

// Path returns the rectangle outline.
func (s *RectShape) Path() *Path {
	p := NewPath()
	p.Rectangle(0, 0, s.W, s.H)
	return p
}

// Bounds returns the rectangle extent.
func (s *RectShape) Bounds() Rect { return Rect{Max: Pt(s.W, s.H)} }

// Origin returns the shape's page position.
func (s *RectShape) Origin() Point { return s.Pos }

// EllipseShape is an axis-aligned ellipse.
type EllipseShape struct {
	Pos    Point
	Rx, Ry float64
}

func (s *EllipseShape) isShape() {}

// Path returns the ellipse outline as cubic Beziers.
func (s *EllipseShape) Path() *Path {
	p := NewPath()
	p.Ellipse(s.Rx, s.Ry, s.Rx, s.Ry)
	return p
}

// Bounds returns the ellipse extent.
func (s *EllipseShape) Bounds() Rect { return Rect{Max: Pt(2*s.Rx, 2*s.Ry)} }

// Origin returns the shape's page position.
func (s *EllipseShape) Origin() Point { return s.Pos }
