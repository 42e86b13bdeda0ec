package rendertree

import "github.com/rastereng/vgraphics/internal/pathfig"

// NewRectangle returns a Shape whose path is an axis-aligned rectangle
// at (x,y) sized w x h, optionally with uniformly rounded corners.
func NewRectangle(x, y, w, h, cornerRadius float64) *Shape {
	s := NewShape("Rectangle")
	if cornerRadius <= 0 {
		s.Path.MoveTo(x, y)
		s.Path.LineTo(x+w, y)
		s.Path.LineTo(x+w, y+h)
		s.Path.LineTo(x, y+h)
		s.Path.Close(true)
		return s
	}
	r := cornerRadius
	if r > w/2 {
		r = w / 2
	}
	if r > h/2 {
		r = h / 2
	}
	s.Path.MoveTo(x+r, y)
	s.Path.LineTo(x+w-r, y)
	s.Path.ArcTo(r, r, 0, false, true, x+w, y+r)
	s.Path.LineTo(x+w, y+h-r)
	s.Path.ArcTo(r, r, 0, false, true, x+w-r, y+h)
	s.Path.LineTo(x+r, y+h)
	s.Path.ArcTo(r, r, 0, false, true, x, y+h-r)
	s.Path.LineTo(x, y+r)
	s.Path.ArcTo(r, r, 0, false, true, x+r, y)
	s.Path.Close(true)
	return s
}

// NewCircle returns a Shape whose path is a circle centered at (cx,cy)
// with the given radius, built from two 180-degree arcs.
func NewCircle(cx, cy, radius float64) *Shape {
	return NewEllipse(cx, cy, radius, radius)
}

// NewEllipse returns a Shape whose path is an ellipse centered at
// (cx,cy) with the given radii, built from two 180-degree arcs (the
// same construction SVG importers use for a circle/ellipse element).
func NewEllipse(cx, cy, rx, ry float64) *Shape {
	s := NewShape("Ellipse")
	s.Path.MoveTo(cx-rx, cy)
	s.Path.ArcTo(rx, ry, 0, false, true, cx+rx, cy)
	s.Path.ArcTo(rx, ry, 0, false, true, cx-rx, cy)
	s.Path.Close(true)
	return s
}

// NewLine returns a Shape whose path is a single open segment from
// (x0,y0) to (x1,y1); filling an open path has no effect, so a line is
// typically drawn with DrawStroke.
func NewLine(x0, y0, x1, y1 float64) *Shape {
	s := NewShape("Line")
	s.Path.MoveTo(x0, y0)
	s.Path.LineTo(x1, y1)
	s.Path.Close(false)
	return s
}

// NewPath returns a Shape over an arbitrary, already-built command
// stream (the result of public path_* operations), e.g. a
// pathfig.Builder the caller drove directly with MoveTo/LineTo/
// QuadraticTo/CubicTo/ArcTo/Close.
func NewPath(cmds []pathfig.Command) *Shape {
	s := NewShape("Path")
	s.Path.Commands = append([]pathfig.Command(nil), cmds...)
	return s
}
