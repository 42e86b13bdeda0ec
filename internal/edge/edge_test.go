package edge

import (
	"errors"
	"testing"

	"github.com/rastereng/vgraphics/internal/fixed"
	"github.com/rastereng/vgraphics/internal/geom"
	"github.com/rastereng/vgraphics/internal/pathfig"
)

func squareFigure() *pathfig.Figure {
	fig := pathfig.NewFigure()
	poly := pathfig.NewPolygon()
	poly.Append(0, 0)
	poly.Append(10, 0)
	poly.Append(10, 10)
	poly.Append(0, 10)
	poly.Closed = true
	fig.AppendPolygon(poly)
	return fig
}

func TestBuildSquareProducesFourVectors(t *testing.T) {
	tbl, err := Build(squareFigure())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(tbl.Vectors) != 4 {
		t.Fatalf("got %d vectors, want 4", len(tbl.Vectors))
	}
	if tbl.Left != 0 || tbl.Top != 0 || tbl.Right != 10 || tbl.Bottom != 10 {
		t.Fatalf("bounds = (%d,%d,%d,%d), want (0,0,10,10)", tbl.Left, tbl.Top, tbl.Right, tbl.Bottom)
	}
}

func TestBuildOpenPolygonSkipsClosingEdge(t *testing.T) {
	fig := pathfig.NewFigure()
	poly := pathfig.NewPolygon()
	poly.Append(0, 0)
	poly.Append(10, 0)
	poly.Append(10, 10)
	fig.AppendPolygon(poly)

	tbl, err := Build(fig)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(tbl.Vectors) != 2 {
		t.Fatalf("got %d vectors, want 2", len(tbl.Vectors))
	}
}

func TestBuildDegenerateEdgeErrors(t *testing.T) {
	fig := pathfig.NewFigure()
	poly := &pathfig.Polygon{Threshold: -1} // bypass Append's merge threshold
	poly.Points = append(poly.Points, geom.Point{X: 0, Y: 0}, geom.Point{X: 0, Y: 0})
	fig.AppendPolygon(poly)

	_, err := Build(fig)
	if !errors.Is(err, ErrDegenerateEdge) {
		t.Fatalf("err = %v, want ErrDegenerateEdge", err)
	}
}

func TestVectorEvalOnLine(t *testing.T) {
	v, err := buildVector(0, 0, 10, 0)
	if err != nil {
		t.Fatalf("buildVector: %v", err)
	}
	// A point on the line should evaluate to (near) zero.
	mid := v.Eval(fixed.FromDouble(5), fixed.FromDouble(0))
	if d := fixed.ToDouble(mid); d < -0.01 || d > 0.01 {
		t.Fatalf("Eval on-line = %v, want ~0", d)
	}
}

func TestVectorActiveAt(t *testing.T) {
	v, err := buildVector(0, 0, 0, 10)
	if err != nil {
		t.Fatalf("buildVector: %v", err)
	}
	if !v.ActiveAt(fixed.FromDouble(5)) {
		t.Fatalf("expected active at y=5")
	}
	if v.ActiveAt(fixed.FromDouble(50)) {
		t.Fatalf("expected inactive at y=50")
	}
}
