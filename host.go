package pen

import (
	"fmt"
	"math"
)

// Modifiers is a bitmask of modifier keys held during a pointer event.
type Modifiers uint8

const (
	// ModShift constrains handle drags to 45 degree increments.
	ModShift Modifiers = 1 << iota
	// ModAlt breaks handle symmetry while creating (a drag authors only
	// the outgoing handle) and toggles corner/smooth anchors while
	// editing.
	ModAlt
	// ModCtrl enables the hover insertion preview while editing.
	ModCtrl
	// ModMeta is reserved for host use.
	ModMeta
)

// Has reports whether all bits of mod are set.
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod == mod
}

// Key identifies the keyboard events the state machines react to.
type Key int

const (
	// KeyEnter commits an in-progress curve or exits edit mode.
	KeyEnter Key = iota + 1
	// KeyEscape discards an in-progress curve or exits edit mode.
	KeyEscape
)

// Tool identifies the host's active tool.
type Tool int

const (
	// ToolPointer is the default selection/drag tool.
	ToolPointer Tool = iota
	// ToolPen is the curve creation tool.
	ToolPen
)

// String returns the tool name.
func (t Tool) String() string {
	switch t {
	case ToolPointer:
		return "pointer"
	case ToolPen:
		return "pen"
	default:
		return fmt.Sprintf("tool(%d)", int(t))
	}
}

// PointerEvent is a pointer callback from the host. Pos is in document
// coordinates, already camera/zoom corrected by the host. Pressed reports
// whether a button is held, which distinguishes a handle-authoring drag
// from plain hover on move events.
type PointerEvent struct {
	Pos     Point
	Mods    Modifiers
	Pressed bool
}

// ShapeID identifies a shape in the host's store.
type ShapeID string

// ShapeStore is the shape CRUD surface of the host editor. The machines
// only ever submit whole-shape replacements, never partial patches.
type ShapeStore interface {
	// CreateShape adds a shape and returns its identifier.
	CreateShape(s Shape) ShapeID
	// Shape looks up a shape by identifier.
	Shape(id ShapeID) (Shape, bool)
	// ReplaceShape replaces the shape stored under id wholesale.
	ReplaceShape(id ShapeID, s Shape)
	// DeleteShape removes a shape.
	DeleteShape(id ShapeID)
}

// Host is the boundary to the surrounding editor. The host serializes all
// input callbacks, so machine methods are never re-entered concurrently
// for the same curve.
type Host interface {
	ShapeStore

	// Zoom returns the current camera zoom. Screen-pixel thresholds are
	// divided by this to get model-space distances.
	Zoom() float64

	// ActiveTool returns the currently selected tool.
	ActiveTool() Tool
	// SetActiveTool switches the current tool.
	SetActiveTool(Tool)
}

// MemHost is an in-memory Host: an arena of shapes by id with
// copy-on-write replacement. It backs the reference terminal host and is
// convenient for tests and embedding.
type MemHost struct {
	shapes map[ShapeID]Shape
	order  []ShapeID
	nextID int
	zoom   float64
	tool   Tool
}

// NewMemHost creates an empty host with zoom 1 and the pointer tool.
func NewMemHost() *MemHost {
	return &MemHost{
		shapes: make(map[ShapeID]Shape),
		zoom:   1,
	}
}

// CreateShape adds a shape and returns its new identifier.
func (h *MemHost) CreateShape(s Shape) ShapeID {
	h.nextID++
	id := ShapeID(fmt.Sprintf("shape-%d", h.nextID))
	h.shapes[id] = s
	h.order = append(h.order, id)
	return id
}

// Shape looks up a shape by identifier.
func (h *MemHost) Shape(id ShapeID) (Shape, bool) {
	s, ok := h.shapes[id]
	return s, ok
}

// ReplaceShape replaces the stored shape wholesale. Unknown ids are
// ignored.
func (h *MemHost) ReplaceShape(id ShapeID, s Shape) {
	if _, ok := h.shapes[id]; !ok {
		return
	}
	h.shapes[id] = s
}

// DeleteShape removes a shape. Unknown ids are ignored.
func (h *MemHost) DeleteShape(id ShapeID) {
	if _, ok := h.shapes[id]; !ok {
		return
	}
	delete(h.shapes, id)
	for i, sid := range h.order {
		if sid == id {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

// Zoom returns the current camera zoom.
func (h *MemHost) Zoom() float64 { return h.zoom }

// SetZoom sets the camera zoom, clamped to a sane positive range.
func (h *MemHost) SetZoom(z float64) {
	h.zoom = math.Max(0.05, math.Min(64, z))
}

// ActiveTool returns the current tool.
func (h *MemHost) ActiveTool() Tool { return h.tool }

// SetActiveTool switches the current tool.
func (h *MemHost) SetActiveTool(t Tool) { h.tool = t }

// IDs returns the shape identifiers in creation order.
func (h *MemHost) IDs() []ShapeID {
	out := make([]ShapeID, len(h.order))
	copy(out, h.order)
	return out
}
