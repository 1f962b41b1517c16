package pen

import "fmt"

// CreateState is the phase of a Creator.
type CreateState int

const (
	// CreateIdle waits for the first pointer-down on empty canvas.
	CreateIdle CreateState = iota
	// CreateActive has an in-progress curve accepting anchors.
	CreateActive
	// CreateCommitted handed the finished curve to the host. Terminal.
	CreateCommitted
	// CreateDiscarded deleted the in-progress curve. Terminal.
	CreateDiscarded
)

// String returns the state name.
func (s CreateState) String() string {
	switch s {
	case CreateIdle:
		return "idle"
	case CreateActive:
		return "active"
	case CreateCommitted:
		return "committed"
	case CreateDiscarded:
		return "discarded"
	default:
		return fmt.Sprintf("create(%d)", int(s))
	}
}

// Creator is the finite-state machine driving freehand curve creation:
// one anchor per pointer-down, drag-to-extrude control handles, closing
// click near the first anchor, Enter/double-click to commit, Escape to
// discard. All event positions are document coordinates.
//
// A Creator drives exactly one curve; construct a new one per gesture.
type Creator struct {
	host  Host
	opts  machineOptions
	state CreateState

	id    ShapeID
	pos   Point // shape page position; absorbs normalization deltas
	curve Curve

	// dragAnchor is the placement position (document space) of the most
	// recently placed anchor while the button is still held, the pivot
	// of the handle-authoring gesture.
	dragAnchor *Point
}

// NewCreator creates an idle creation machine writing into host.
func NewCreator(host Host, opts ...Option) *Creator {
	o := defaultMachineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Creator{host: host, opts: o}
}

// State returns the machine's current state.
func (c *Creator) State() CreateState { return c.state }

// ShapeID returns the id of the in-progress (or committed) shape, empty
// while idle.
func (c *Creator) ShapeID() ShapeID { return c.id }

// Curve returns the in-progress curve value.
func (c *Creator) Curve() Curve { return c.curve }

// PointerDown places an anchor. The first press seeds a new curve; a
// press within the closing threshold of the first anchor (with more than
// two points placed) closes the curve and commits.
func (c *Creator) PointerDown(ev PointerEvent) {
	switch c.state {
	case CreateIdle:
		c.curve, c.pos = Curve{Points: []CurvePoint{{Pos: ev.Pos}}}.Normalize()
		c.id = c.host.CreateShape(c.shape())
		c.dragAnchor = &ev.Pos
		c.transition(CreateActive)
	case CreateActive:
		if len(c.curve.Points) > 2 {
			first := c.pos.Add(c.curve.Points[0].Pos)
			if ev.Pos.Distance(first)*c.zoom() < c.opts.closeRadius {
				c.curve.Closed = true
				c.publish()
				c.commit()
				return
			}
		}
		var delta Point
		c.curve, delta = c.curve.AppendPoint(CurvePoint{Pos: ev.Pos.Sub(c.pos)})
		c.pos = c.pos.Add(delta)
		c.dragAnchor = &ev.Pos
		c.publish()
	}
}

// PointerMove authors handles on the most recently placed anchor while
// the button is held: the drag vector from the anchor's placement
// position becomes the outgoing handle, mirrored into the incoming handle
// unless ModAlt breaks symmetry. ModShift snaps the vector to 45 degree
// increments first. Drags shorter than the corner threshold (screen
// pixels, zoom independent) leave the anchor a sharp corner.
func (c *Creator) PointerMove(ev PointerEvent) {
	if c.state != CreateActive || !ev.Pressed || c.dragAnchor == nil {
		return
	}
	drag := ev.Pos.Sub(*c.dragAnchor)
	if ev.Mods.Has(ModShift) {
		drag = snapAngle(drag)
	}

	points := clonePoints(c.curve.Points)
	last := &points[len(points)-1]
	if drag.Length()*c.zoom() > c.opts.cornerRadius {
		out := last.Pos.Add(drag)
		last.Out = &out
		if ev.Mods.Has(ModAlt) {
			last.In = nil
		} else {
			in := last.Pos.Sub(drag)
			last.In = &in
		}
	} else {
		last.In, last.Out = nil, nil
	}

	var delta Point
	c.curve, delta = Curve{Points: points, Closed: c.curve.Closed}.Normalize()
	c.pos = c.pos.Add(delta)
	if c.dragAnchor != nil {
		// Keep the pivot stable in document space across normalization.
		a := *c.dragAnchor
		c.dragAnchor = &a
	}
	c.publish()
}

// PointerUp ends the active handle drag. The machine stays active,
// awaiting the next anchor.
func (c *Creator) PointerUp(ev PointerEvent) {
	c.dragAnchor = nil
}

// DoubleClick commits the curve without closing it.
func (c *Creator) DoubleClick(ev PointerEvent) {
	if c.state == CreateActive {
		c.commit()
	}
}

// KeyDown commits on Enter and discards on Escape.
func (c *Creator) KeyDown(k Key) {
	if c.state != CreateActive {
		return
	}
	switch k {
	case KeyEnter:
		c.commit()
	case KeyEscape:
		c.discard()
	}
}

// commit hands the curve to the host as a persisted inert shape. A curve
// with fewer than two points cannot be committed and is discarded
// instead.
func (c *Creator) commit() {
	if !c.curve.Valid() {
		c.discard()
		return
	}
	c.dragAnchor = nil
	c.publish()
	c.transition(CreateCommitted)
}

// discard deletes the in-progress shape from the host.
func (c *Creator) discard() {
	if c.id != "" {
		c.host.DeleteShape(c.id)
	}
	c.dragAnchor = nil
	c.transition(CreateDiscarded)
}

// publish submits a whole-shape replacement to the host.
func (c *Creator) publish() {
	c.host.ReplaceShape(c.id, c.shape())
}

func (c *Creator) shape() *CurveShape {
	s := &CurveShape{Pos: c.pos, Curve: c.curve}
	return s.clone()
}

func (c *Creator) zoom() float64 {
	z := c.host.Zoom()
	if z <= 0 {
		return 1
	}
	return z
}

func (c *Creator) transition(next CreateState) {
	Logger().Debug("pen: creator transition",
		"from", c.state.String(), "to", next.String(),
		"points", len(c.curve.Points))
	c.state = next
}
