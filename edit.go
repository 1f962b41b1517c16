package pen

import "fmt"

// EditAction reports what a pointer interaction did to the curve, so the
// host can hand off to its own machinery (anchor drags) or refresh its
// edit UI (structure changes).
type EditAction int

const (
	// EditNone means the interaction changed nothing.
	EditNone EditAction = iota
	// EditAnchor means an anchor was hit; the host's generic handle-drag
	// machinery takes over. The Editor itself never moves points.
	EditAnchor
	// EditInserted means a corner point was inserted on a segment.
	EditInserted
	// EditRemoved means an anchor was deleted.
	EditRemoved
	// EditSmoothed means an anchor was toggled between corner and smooth.
	EditSmoothed
)

// Editor is the finite-state machine modifying a committed curve while
// its shape's EditMode flag is set: click a segment to insert a corner
// point, double-click an anchor to delete it, hold the preview modifier
// to see where a click would insert. Anchor and handle dragging is the
// host's job; the Editor only decides whether a click adds or removes
// structure.
//
// All event positions are document coordinates.
type Editor struct {
	host Host
	opts machineOptions
	id   ShapeID
	done bool

	// Last observed hover state, consumed by Frame.
	hoverPos  *Point
	hoverMods Modifiers
}

// NewEditor enters edit mode for the curve shape stored under id setting
// its EditMode flag. It fails when id does not name a curve shape.
func NewEditor(host Host, id ShapeID, opts ...Option) (*Editor, error) {
	o := defaultMachineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	e := &Editor{host: host, opts: o, id: id}
	s, ok := e.curveShape()
	if !ok {
		return nil, fmt.Errorf("pen: shape %q is not an editable curve", id)
	}
	next := s.clone()
	next.EditMode = true
	host.ReplaceShape(id, next)
	Logger().Debug("pen: editor enter", "shape", string(id))
	return e, nil
}

// Done reports whether the editor has exited edit mode.
func (e *Editor) Done() bool { return e.done }

// PointerDown decides whether the press hits an anchor (deferring to the
// host's drag machinery, or toggling corner/smooth when ModAlt is held)
// or a segment (inserting a corner point at the press position, without
// smoothing neighboring handles).
func (e *Editor) PointerDown(ev PointerEvent) EditAction {
	s, ok := e.activeShape()
	if !ok {
		return EditNone
	}
	e.clearPreview(s)
	local := ev.Pos.Sub(s.Pos)
	zoom := e.zoom()

	if i := anchorAt(s.Curve.Points, local, zoom, e.opts.anchorRadius); i >= 0 {
		if ev.Mods.Has(ModAlt) {
			return e.toggleSmooth(s, i)
		}
		return EditAnchor
	}

	seg, _, ok := nearestSegment(s.Curve.Points, s.Curve.Closed, local, zoom,
		e.opts.hitRadius, e.opts.anchorRadius)
	if !ok {
		return EditNone
	}
	next, delta, err := s.Curve.InsertPoint(seg, CurvePoint{Pos: local})
	if err != nil {
		// Invariant violation from stale hit-testing; absorbed.
		Logger().Debug("pen: insert rejected", "shape", string(e.id), "segment", seg, "err", err)
		return EditNone
	}
	out := s.clone()
	out.Curve = next
	out.Pos = out.Pos.Add(delta)
	out.Preview = nil
	e.host.ReplaceShape(e.id, out)
	return EditInserted
}

// DoubleClick deletes the anchor under the pointer when more than two
// points remain. Double-clicks on segments or empty space change nothing.
func (e *Editor) DoubleClick(ev PointerEvent) EditAction {
	s, ok := e.activeShape()
	if !ok {
		return EditNone
	}
	local := ev.Pos.Sub(s.Pos)
	i := anchorAt(s.Curve.Points, local, e.zoom(), e.opts.anchorRadius)
	if i < 0 || len(s.Curve.Points) <= 2 {
		return EditNone
	}
	next, delta, err := s.Curve.RemovePoint(i)
	if err != nil {
		Logger().Debug("pen: remove rejected", "shape", string(e.id), "point", i, "err", err)
		return EditNone
	}
	out := s.clone()
	out.Curve = next
	out.Pos = out.Pos.Add(delta)
	out.Preview = nil
	e.host.ReplaceShape(e.id, out)
	return EditRemoved
}

// toggleSmooth converts a corner anchor into a smooth one by synthesizing
// tangent-based handles from its neighbors, or strips an already-smooth
// anchor back to a corner.
func (e *Editor) toggleSmooth(s *CurveShape, i int) EditAction {
	points := clonePoints(s.Curve.Points)
	cp := &points[i]
	if !cp.Corner() {
		cp.In, cp.Out = nil, nil
	} else {
		var prev, next *CurvePoint
		n := len(points)
		if i > 0 {
			prev = &points[i-1]
		} else if s.Curve.Closed {
			prev = &points[n-1]
		}
		if i < n-1 {
			next = &points[i+1]
		} else if s.Curve.Closed {
			next = &points[0]
		}
		cp.In, cp.Out = SynthesizeHandles(prev, cp, next, e.opts.smoothing)
		if cp.Corner() {
			return EditNone
		}
	}

	out := s.clone()
	var delta Point
	out.Curve, delta = Curve{Points: points, Closed: s.Curve.Closed}.Normalize()
	out.Pos = out.Pos.Add(delta)
	out.Preview = nil
	e.host.ReplaceShape(e.id, out)
	return EditSmoothed
}

// PointerMove records the hover position and modifier state for Frame.
// A move with the button held is a drag: the preview is cleared and stays
// off until the button is released.
func (e *Editor) PointerMove(ev PointerEvent) {
	pos := ev.Pos
	e.hoverPos = &pos
	e.hoverMods = ev.Mods
	if ev.Pressed {
		e.hoverMods &^= ModCtrl
		if s, ok := e.activeShape(); ok {
			e.clearPreview(s)
		}
	}
}

// Frame recomputes the hover insertion preview. The host calls it on
// every animation frame while it keeps returning true; a false return
// means the loop no longer qualifies (edit mode ended, the tool changed,
// or the preview modifier was released) and must stop being scheduled.
//
// The preview is position-only: the nearest segment is evaluated with
// SegmentPoint at the hit parameter, with no handle synthesis, so the
// per-frame cost stays trivial.
func (e *Editor) Frame() bool {
	s, ok := e.activeShape()
	if !ok || e.host.ActiveTool() != ToolPointer ||
		e.hoverPos == nil || !e.hoverMods.Has(ModCtrl) {
		if ok {
			e.clearPreview(s)
		}
		return false
	}

	local := e.hoverPos.Sub(s.Pos)
	seg, t, hit := nearestSegment(s.Curve.Points, s.Curve.Closed, local, e.zoom(),
		e.opts.hitRadius, e.opts.anchorRadius)
	if !hit {
		e.clearPreview(s)
		return true
	}
	p1, p2, err := s.Curve.Segment(seg)
	if err != nil {
		Logger().Debug("pen: preview rejected", "shape", string(e.id), "segment", seg, "err", err)
		e.clearPreview(s)
		return true
	}
	preview := SegmentPoint(p1, p2, t)
	out := s.clone()
	out.Preview = &preview
	e.host.ReplaceShape(e.id, out)
	return true
}

// KeyDown exits edit mode on Escape or Enter, returning control and
// selection to the host.
func (e *Editor) KeyDown(k Key) {
	if k == KeyEnter || k == KeyEscape {
		e.Exit()
	}
}

// Exit leaves edit mode: the preview is cleared, the shape's EditMode
// flag is dropped, and the editor becomes inert. Safe to call more than
// once.
func (e *Editor) Exit() {
	if e.done {
		return
	}
	e.done = true
	if s, ok := e.curveShape(); ok {
		out := s.clone()
		out.EditMode = false
		out.Preview = nil
		e.host.ReplaceShape(e.id, out)
	}
	Logger().Debug("pen: editor exit", "shape", string(e.id))
}

// activeShape returns the edited shape while editing is permitted.
func (e *Editor) activeShape() (*CurveShape, bool) {
	if e.done {
		return nil, false
	}
	s, ok := e.curveShape()
	if !ok || !s.EditMode {
		return nil, false
	}
	return s, true
}

func (e *Editor) zoom() float64 {
	z := e.host.Zoom()
	if z <= 0 {
		return 1
	}
	return z
}

func (e *Editor) curveShape() (*CurveShape, bool) {
	s, ok := e.host.Shape(e.id)
	if !ok {
		return nil, false
	}
	cs, ok := s.(*CurveShape)
	return cs, ok
}

func (e *Editor) clearPreview(s *CurveShape) {
	if s.Preview == nil {
		return
	}
	out := s.clone()
	out.Preview = nil
	e.host.ReplaceShape(e.id, out)
}
