// Package pen implements interactive multi-segment Bezier curve editing for
// a host vector canvas.
//
// # Overview
//
// pen owns the data model for editable curves (anchors with optional
// incoming/outgoing control handles), the pure geometry used to evaluate and
// hit-test them, and the two interaction state machines that let a pointer
// device create and reshape them. The surrounding editor (shape storage,
// rendering, selection, camera) is a collaborator reached through the Host
// interface; pen never mutates host state except by submitting whole-shape
// replacements.
//
// # Quick Start
//
//	import "github.com/govec/pen"
//
//	host := pen.NewMemHost()
//	c := pen.NewCreator(host)
//
//	// Feed pointer events from your input loop:
//	c.PointerDown(pen.PointerEvent{Pos: pen.Pt(10, 10)})
//	c.PointerDown(pen.PointerEvent{Pos: pen.Pt(60, 10)})
//	c.KeyDown(pen.KeyEnter) // commit the curve to the host
//
// Committed curves are edited through an Editor while the shape's EditMode
// flag is set, and exposed to the host's generic drag machinery as Handle
// values via CurveHandles and ApplyHandleMove.
//
// # Architecture
//
// The library is organized into:
//   - Model: Curve, CurvePoint, Path (curve.go, path.go)
//   - Geometry: SegmentPoint, NearestSegment, SynthesizeHandles (geom.go)
//   - Interaction: Creator, Editor state machines (create.go, edit.go)
//   - Host boundary: Shape variants, Host, handle projection
//     (shape.go, host.go, handles.go)
//
// A reference terminal host lives in cmd/pen-tui.
package pen
