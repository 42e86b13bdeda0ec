// Package pathfig consumes a path command stream and emits a figure (an
// ordered list of polygons), in both a strokeless (outline-only)
// variant and a stroked variant that additionally generates offset
// polygons with join/cap geometry. It also flattens curved commands via
// internal/curve before handing vertices to either generator, which
// share the same command dispatch.
package pathfig

// CommandKind tags a path command stream entry.
type CommandKind int

const (
	MoveTo CommandKind = iota
	LineTo
	QuadTo
	SmoothQuadTo
	CubicTo
	SmoothCubicTo
	ArcTo
	Close
)

// Command is one entry of the path command stream. Only the fields
// relevant to Kind are meaningful; relative variants do not exist at
// this layer — path importers resolve relative coordinates before
// building the stream.
type Command struct {
	Kind CommandKind

	X, Y float64 // MoveTo, LineTo, QuadTo, SmoothQuadTo, CubicTo, SmoothCubicTo, ArcTo (end point)
	CX, CY   float64 // QuadTo control point
	CX0, CY0 float64 // CubicTo first control point
	CX1, CY1 float64 // CubicTo/SmoothCubicTo second control point

	// ArcTo
	Rx, Ry         float64
	XAxisRotation  float64
	LargeArc, Sweep bool

	CloseFlag bool // Close
}

// Builder accumulates a command stream, the in-memory representation
// path.move_to/line_to/... calls build up.
type Builder struct {
	Commands []Command
}

func (b *Builder) MoveTo(x, y float64) {
	b.Commands = append(b.Commands, Command{Kind: MoveTo, X: x, Y: y})
}

func (b *Builder) LineTo(x, y float64) {
	b.Commands = append(b.Commands, Command{Kind: LineTo, X: x, Y: y})
}

func (b *Builder) QuadraticTo(cx, cy, x, y float64) {
	b.Commands = append(b.Commands, Command{Kind: QuadTo, CX: cx, CY: cy, X: x, Y: y})
}

func (b *Builder) SmoothQuadraticTo(x, y float64) {
	b.Commands = append(b.Commands, Command{Kind: SmoothQuadTo, X: x, Y: y})
}

func (b *Builder) CubicTo(cx0, cy0, cx1, cy1, x, y float64) {
	b.Commands = append(b.Commands, Command{Kind: CubicTo, CX0: cx0, CY0: cy0, CX1: cx1, CY1: cy1, X: x, Y: y})
}

func (b *Builder) SmoothCubicTo(cx1, cy1, x, y float64) {
	b.Commands = append(b.Commands, Command{Kind: SmoothCubicTo, CX1: cx1, CY1: cy1, X: x, Y: y})
}

func (b *Builder) ArcTo(rx, ry, xAxisRotation float64, largeArc, sweep bool, x, y float64) {
	b.Commands = append(b.Commands, Command{
		Kind: ArcTo, Rx: rx, Ry: ry, XAxisRotation: xAxisRotation,
		LargeArc: largeArc, Sweep: sweep, X: x, Y: y,
	})
}

func (b *Builder) Close(close bool) {
	b.Commands = append(b.Commands, Command{Kind: Close, CloseFlag: close})
}

// Clear empties the command stream in place, for the public API's
// command_clear operation.
func (b *Builder) Clear() {
	b.Commands = b.Commands[:0]
}
