package pathfig

import "github.com/rastereng/vgraphics/internal/curve"

// Generator receives the flattened, fully-resolved vertex stream that
// Normalize produces from a command stream.
type Generator interface {
	PolygonAdd()
	VertexAdd(x, y float64)
	PolygonClose(closed bool)
	Done()
}

// normState carries the {last, last_ctrl} state the normalizer needs to
// resolve smooth-quadratic/smooth-cubic references.
type normState struct {
	lastX, lastY         float64
	lastCtrlX, lastCtrlY float64
	haveCtrl             bool
	prevKind             CommandKind
}

// Flatness, when zero, selects curve.DefaultFlatness.
// Normalize walks cmds, expanding curved segments via internal/curve and
// calling gen's callbacks with straight-line vertices only.
func Normalize(cmds []Command, flatness float64, gen Generator) {
	var st normState
	open := false

	sinkTo := func(gen Generator) curve.Sink {
		return curve.SinkFunc(func(x, y float64) { gen.VertexAdd(x, y) })
	}

	for _, c := range cmds {
		switch c.Kind {
		case MoveTo:
			if open {
				gen.PolygonClose(false)
			}
			gen.PolygonAdd()
			gen.VertexAdd(c.X, c.Y)
			st.lastX, st.lastY = c.X, c.Y
			st.haveCtrl = false
			open = true

		case LineTo:
			gen.VertexAdd(c.X, c.Y)
			st.lastX, st.lastY = c.X, c.Y
			st.haveCtrl = false

		case QuadTo:
			curve.Quadratic(st.lastX, st.lastY, c.CX, c.CY, c.X, c.Y, flatness, sinkTo(gen))
			st.lastCtrlX, st.lastCtrlY = c.CX, c.CY
			st.lastX, st.lastY = c.X, c.Y
			st.haveCtrl = true

		case SmoothQuadTo:
			cx, cy := st.lastX, st.lastY
			if st.haveCtrl && (st.prevKind == QuadTo || st.prevKind == SmoothQuadTo) {
				cx, cy = curve.Reflect(st.lastX, st.lastY, st.lastCtrlX, st.lastCtrlY)
			}
			curve.Quadratic(st.lastX, st.lastY, cx, cy, c.X, c.Y, flatness, sinkTo(gen))
			st.lastCtrlX, st.lastCtrlY = cx, cy
			st.lastX, st.lastY = c.X, c.Y
			st.haveCtrl = true

		case CubicTo:
			curve.Cubic(st.lastX, st.lastY, c.CX0, c.CY0, c.CX1, c.CY1, c.X, c.Y, flatness, sinkTo(gen))
			st.lastCtrlX, st.lastCtrlY = c.CX1, c.CY1
			st.lastX, st.lastY = c.X, c.Y
			st.haveCtrl = true

		case SmoothCubicTo:
			cx0, cy0 := st.lastX, st.lastY
			if st.haveCtrl && (st.prevKind == CubicTo || st.prevKind == SmoothCubicTo) {
				cx0, cy0 = curve.Reflect(st.lastX, st.lastY, st.lastCtrlX, st.lastCtrlY)
			}
			curve.Cubic(st.lastX, st.lastY, cx0, cy0, c.CX1, c.CY1, c.X, c.Y, flatness, sinkTo(gen))
			st.lastCtrlX, st.lastCtrlY = c.CX1, c.CY1
			st.lastX, st.lastY = c.X, c.Y
			st.haveCtrl = true

		case ArcTo:
			curve.Arc(st.lastX, st.lastY, c.Rx, c.Ry, c.XAxisRotation, c.LargeArc, c.Sweep, c.X, c.Y, flatness, sinkTo(gen))
			st.lastX, st.lastY = c.X, c.Y
			st.haveCtrl = false

		case Close:
			gen.PolygonClose(c.CloseFlag)
			open = false
			st.haveCtrl = false
		}
		st.prevKind = c.Kind
	}
	if open {
		gen.PolygonClose(false)
	}
	gen.Done()
}
