package pen

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// Rasterize renders the shape's local path into an alpha coverage mask at
// the given scale. This is a preview/debug surface for hosts without a
// real rendering pipeline (cell shading in the terminal host, coverage
// assertions in tests); it is not a paint API.
func Rasterize(s Shape, scale float64) *image.Alpha {
	if scale <= 0 {
		scale = 1
	}
	b := s.Bounds()
	w := int(math.Ceil(b.Width() * scale))
	h := int(math.Ceil(b.Height() * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	r := vector.NewRasterizer(w, h)
	for _, elem := range s.Path().Elements() {
		switch e := elem.(type) {
		case MoveTo:
			r.MoveTo(float32(e.Point.X*scale), float32(e.Point.Y*scale))
		case LineTo:
			r.LineTo(float32(e.Point.X*scale), float32(e.Point.Y*scale))
		case QuadTo:
			r.QuadTo(
				float32(e.Control.X*scale), float32(e.Control.Y*scale),
				float32(e.Point.X*scale), float32(e.Point.Y*scale))
		case CubicTo:
			r.CubeTo(
				float32(e.Control1.X*scale), float32(e.Control1.Y*scale),
				float32(e.Control2.X*scale), float32(e.Control2.Y*scale),
				float32(e.Point.X*scale), float32(e.Point.Y*scale))
		case Close:
			r.ClosePath()
		}
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}
