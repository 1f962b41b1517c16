package pen

import (
	"fmt"
	"strconv"
	"strings"
)

// HandleKind classifies an interactive handle for the host's generic
// drag machinery.
type HandleKind int

const (
	// HandleVertex is an anchor of the curve.
	HandleVertex HandleKind = iota
	// HandleVirtual is a control point (incoming or outgoing handle).
	HandleVirtual
)

// String returns the kind name.
func (k HandleKind) String() string {
	switch k {
	case HandleVertex:
		return "vertex"
	case HandleVirtual:
		return "virtual"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Handle is one interactive handle projected from a curve, in document
// coordinates. The ID encodes the point index and role so the host can
// report moves back unambiguously.
type Handle struct {
	ID   string
	Kind HandleKind
	Pos  Point
}

// Handle id roles. IDs look like "anchor:3", "cp-in:0", "cp-out:2".
const (
	roleAnchor = "anchor"
	roleIn     = "cp-in"
	roleOut    = "cp-out"
)

// CurveHandles projects the curve's points into the host's interactive
// handle contract: one vertex handle per anchor and one virtual handle
// per present control point.
func CurveHandles(s *CurveShape) []Handle {
	handles := make([]Handle, 0, len(s.Curve.Points)*3)
	for i, cp := range s.Curve.Points {
		handles = append(handles, Handle{
			ID:   fmt.Sprintf("%s:%d", roleAnchor, i),
			Kind: HandleVertex,
			Pos:  s.Pos.Add(cp.Pos),
		})
		if cp.In != nil {
			handles = append(handles, Handle{
				ID:   fmt.Sprintf("%s:%d", roleIn, i),
				Kind: HandleVirtual,
				Pos:  s.Pos.Add(*cp.In),
			})
		}
		if cp.Out != nil {
			handles = append(handles, Handle{
				ID:   fmt.Sprintf("%s:%d", roleOut, i),
				Kind: HandleVirtual,
				Pos:  s.Pos.Add(*cp.Out),
			})
		}
	}
	return handles
}

// ApplyHandleMove writes a reported handle move (document coordinates)
// into the corresponding CurvePoint field and re-normalizes. It performs
// no other geometric recomputation. The returned shape is a replacement
// value for the host's store; the input shape is left untouched.
func ApplyHandleMove(s *CurveShape, id string, pos Point) (*CurveShape, error) {
	role, index, err := parseHandleID(id)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(s.Curve.Points) {
		return nil, ErrUnknownHandle
	}

	out := s.clone()
	local := pos.Sub(out.Pos)
	cp := &out.Curve.Points[index]
	switch role {
	case roleAnchor:
		cp.Pos = local
	case roleIn:
		cp.In = &local
	case roleOut:
		cp.Out = &local
	}

	var delta Point
	out.Curve, delta = out.Curve.Normalize()
	out.Pos = out.Pos.Add(delta)
	return out, nil
}

// parseHandleID decodes "role:index" ids produced by CurveHandles.
func parseHandleID(id string) (role string, index int, err error) {
	role, num, ok := strings.Cut(id, ":")
	if !ok {
		return "", 0, ErrUnknownHandle
	}
	switch role {
	case roleAnchor, roleIn, roleOut:
	default:
		return "", 0, ErrUnknownHandle
	}
	index, err = strconv.Atoi(num)
	if err != nil {
		return "", 0, ErrUnknownHandle
	}
	return role, index, nil
}
