package tui

import (
	"math"

	"github.com/govec/pen"
)

// The canvas draws into a braille micro-grid: every terminal cell holds a
// 2x4 block of dots, so line work lands at four times the vertical and
// twice the horizontal resolution of the character grid. Markers for
// anchors and handles are plain runes overlaid on top of the dots.

type brailleBuf struct {
	w, h    int       // in cells
	mask    [][]uint8 // per-cell 8-bit braille mask
	overlay [][]rune  // marker runes, 0 when empty
}

func newBrailleBuf(w, h int) *brailleBuf {
	mask := make([][]uint8, h)
	overlay := make([][]rune, h)
	for i := range mask {
		mask[i] = make([]uint8, w)
		overlay[i] = make([]rune, w)
	}
	return &brailleBuf{w: w, h: h, mask: mask, overlay: overlay}
}

// setPixel sets one micro-pixel (2x4 dots per cell).
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cx >= b.w || cy >= b.h {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.mask[cy][cx] |= bit
}

// drawLineMicro draws a Bresenham line on the micro-grid.
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// setMarker places a marker rune at a micro position, replacing the cell.
func (b *brailleBuf) setMarker(mx, my int, r rune) {
	cx, cy := mx/2, my/4
	if cx < 0 || cy < 0 || cx >= b.w || cy >= b.h {
		return
	}
	b.overlay[cy][cx] = r
}

func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			switch {
			case b.overlay[y][x] != 0:
				row[x] = b.overlay[y][x]
			case b.mask[y][x] != 0:
				row[x] = rune(0x2800 + int(b.mask[y][x]))
			default:
				row[x] = ' '
			}
		}
		out[y] = string(row)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// canvasRect returns the canvas cell region: full width below a one-line
// header, above a status line and a help line.
func (m Model) canvasRect() (ox, oy, w, h int) {
	w = m.width
	if w < 10 {
		w = 10
	}
	h = m.height - 3
	if h < 4 {
		h = 4
	}
	return 0, 1, w, h
}

// docToMicro projects a document-space point onto the micro-grid. One
// document unit is one micro-pixel at zoom 1.
func (m Model) docToMicro(p pen.Point) (int, int) {
	z := m.host.Zoom()
	return int(math.Round((p.X - m.panX) * z)), int(math.Round((p.Y - m.panY) * z))
}

// cellToDoc maps a canvas cell (relative to the canvas origin) back to
// document space through the center of the cell.
func (m Model) cellToDoc(cx, cy int) pen.Point {
	z := m.host.Zoom()
	mx := float64(cx*2) + 1
	my := float64(cy*4) + 2
	return pen.Pt(mx/z+m.panX, my/z+m.panY)
}

// flattenSteps is the sample count per curved path element.
const flattenSteps = 24

// renderCanvas draws every shape in the store plus the overlays of the
// active session (in-progress curve, edit handles, hover preview).
func (m Model) renderCanvas(w, h int) []string {
	buf := newBrailleBuf(w, h)

	for _, id := range m.host.IDs() {
		s, ok := m.host.Shape(id)
		if !ok {
			continue
		}
		m.drawShape(buf, s)
		if cs, isCurve := s.(*pen.CurveShape); isCurve && cs.EditMode {
			m.drawHandles(buf, cs)
			if cs.Preview != nil {
				px, py := m.docToMicro(cs.Pos.Add(*cs.Preview))
				buf.setMarker(px, py, '+')
			}
		}
	}
	return buf.toLines()
}

func (m Model) drawShape(buf *brailleBuf, s pen.Shape) {
	origin := s.Origin()
	var prev pen.Point
	var start pen.Point
	for _, el := range s.Path().Elements() {
		switch el := el.(type) {
		case pen.MoveTo:
			prev = origin.Add(el.Point)
			start = prev
		case pen.LineTo:
			next := origin.Add(el.Point)
			m.drawLine(buf, prev, next)
			prev = next
		case pen.QuadTo:
			c := origin.Add(el.Control)
			next := origin.Add(el.Point)
			m.drawQuad(buf, prev, c, next)
			prev = next
		case pen.CubicTo:
			c1 := origin.Add(el.Control1)
			c2 := origin.Add(el.Control2)
			next := origin.Add(el.Point)
			m.drawCubic(buf, prev, c1, c2, next)
			prev = next
		case pen.Close:
			m.drawLine(buf, prev, start)
			prev = start
		}
	}
}

func (m Model) drawLine(buf *brailleBuf, a, b pen.Point) {
	ax, ay := m.docToMicro(a)
	bx, by := m.docToMicro(b)
	buf.drawLineMicro(ax, ay, bx, by)
}

func (m Model) drawQuad(buf *brailleBuf, p0, c, p1 pen.Point) {
	prev := p0
	for i := 1; i <= flattenSteps; i++ {
		t := float64(i) / flattenSteps
		a := p0.Lerp(c, t)
		b := c.Lerp(p1, t)
		q := a.Lerp(b, t)
		m.drawLine(buf, prev, q)
		prev = q
	}
}

func (m Model) drawCubic(buf *brailleBuf, p0, c1, c2, p1 pen.Point) {
	prev := p0
	for i := 1; i <= flattenSteps; i++ {
		t := float64(i) / flattenSteps
		a := p0.Lerp(c1, t)
		b := c1.Lerp(c2, t)
		c := c2.Lerp(p1, t)
		ab := a.Lerp(b, t)
		bc := b.Lerp(c, t)
		q := ab.Lerp(bc, t)
		m.drawLine(buf, prev, q)
		prev = q
	}
}

// drawHandles renders the projected handles of a curve in edit mode:
// square markers for anchors, circles for control points, with tangent
// lines from each anchor to its controls.
func (m Model) drawHandles(buf *brailleBuf, s *pen.CurveShape) {
	for _, cp := range s.Curve.Points {
		anchor := s.Pos.Add(cp.Pos)
		if cp.In != nil {
			m.drawLine(buf, anchor, s.Pos.Add(*cp.In))
		}
		if cp.Out != nil {
			m.drawLine(buf, anchor, s.Pos.Add(*cp.Out))
		}
	}
	for _, h := range pen.CurveHandles(s) {
		mx, my := m.docToMicro(h.Pos)
		switch h.Kind {
		case pen.HandleVertex:
			buf.setMarker(mx, my, '■')
		case pen.HandleVirtual:
			buf.setMarker(mx, my, '○')
		}
	}
}
