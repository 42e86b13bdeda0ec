package rendertree

import (
	"github.com/rastereng/vgraphics/internal/bifigure"
	"github.com/rastereng/vgraphics/internal/colorspace"
	"github.com/rastereng/vgraphics/internal/config"
	"github.com/rastereng/vgraphics/internal/geom"
	"github.com/rastereng/vgraphics/internal/pathfig"
	"github.com/rastereng/vgraphics/internal/scanraster"
	"github.com/rastereng/vgraphics/internal/vgerr"
)

// Shape is the common renderer for rectangle, circle, ellipse, line and
// path shapes: it owns a path command stream plus fill and stroke
// properties, and feeds both through pathfig, edge and bifigure to
// produce one composited span per row.
type Shape struct {
	Base
	Path pathfig.Builder

	FillColor    colorspace.Color
	FillPaint    Renderer
	FillRule     scanraster.FillRule

	StrokeWeight   float64
	StrokeColor    colorspace.Color
	StrokePaint    Renderer
	StrokeLocation pathfig.Location
	StrokeCap      pathfig.Cap
	StrokeJoin     pathfig.Join
	Dash           *pathfig.DashPattern

	Mode bifigure.DrawMode

	compositor *bifigure.Compositor
	fillSpan   SpanFunc
	strokeSpan SpanFunc
	baseName   string
}

// NewShape returns an empty Shape with Fill mode active and a solid
// opaque black fill, the defaults a bare shape renderer starts from.
func NewShape(baseName string) *Shape {
	s := &Shape{Mode: bifigure.DrawFill, FillColor: colorspace.ARGB(0xff, 0, 0, 0), baseName: baseName}
	s.InitDefaults(AutoName(baseName))
	return s
}

func (s *Shape) BaseName() string { return s.baseName }

func (s *Shape) rawBounds() geom.Rect {
	gen := pathfig.NewStrokelessGenerator()
	pathfig.Normalize(s.Path.Commands, config.CurveFlatness(), gen)
	b := gen.Figure.Bounds()
	if s.Mode&bifigure.DrawStroke != 0 {
		half := s.StrokeWeight
		b = geom.Rect{X: b.X - half, Y: b.Y - half, W: b.W + 2*half, H: b.H + 2*half}
	}
	return b
}

func (s *Shape) Bounds() geom.Rect { return s.rawBounds() }

func (s *Shape) DestinationBounds() geom.IntRect {
	return transformedBounds(s.rawBounds(), s.Current).ToIntRect()
}

func (s *Shape) FeatureFlags() Features {
	return FeatureTranslate | FeatureAffine | FeatureProjective | FeatureARGB8888 | FeatureColorMask | FeatureROP
}

func (s *Shape) HasChanged() bool { return s.HasChangedBase() }

func (s *Shape) Damages(oldBounds geom.IntRect, cb DamageFunc) {
	defaultDamages(s, oldBounds, cb)
}

// buildFigures flattens the path into a fill figure and, when stroking
// is active, a stroke figure built from either the undashed outline or
// the dash-split sub-polylines.
func (s *Shape) buildFigures() (fillFig *pathfig.Figure, strokeFig *pathfig.Figure) {
	flatness := config.CurveFlatness()
	strokeless := pathfig.NewStrokelessGenerator()
	pathfig.Normalize(s.Path.Commands, flatness, strokeless)
	fillFig = strokeless.Figure

	if s.Mode&bifigure.DrawStroke == 0 || s.StrokeWeight <= 0 {
		return fillFig, nil
	}

	opts := pathfig.Options{
		Width:    s.StrokeWeight,
		Location: s.StrokeLocation,
		Cap:      s.StrokeCap,
		Join:     s.StrokeJoin,
		Flatness: flatness,
	}
	strokeGen := pathfig.NewStrokedGenerator(opts)
	for _, poly := range fillFig.Polygons {
		if s.Dash != nil {
			runs := s.Dash.Apply(poly.Points, poly.Closed)
			for _, run := range runs {
				feedPolyline(strokeGen, run, false)
			}
			continue
		}
		feedPolyline(strokeGen, poly.Points, poly.Closed)
	}
	strokeGen.Done()
	strokeFig = strokeGen.Figure
	return fillFig, strokeFig
}

func feedPolyline(gen pathfig.Generator, pts []geom.Point, closed bool) {
	gen.PolygonAdd()
	for _, p := range pts {
		gen.VertexAdd(p.X, p.Y)
	}
	gen.PolygonClose(closed)
}

func (s *Shape) Setup(target *Surface, rop colorspace.Rop) (SpanFunc, error) {
	if err := s.BeginSetup(); err != nil {
		return nil, err
	}
	fillFig, strokeFig := s.buildFigures()

	compositor, err := bifigure.New(bifigure.Figure{
		Fill:         fillFig,
		FillRule:     s.FillRule,
		Stroke:       strokeFig,
		StrokeWeight: s.StrokeWeight,
		Mode:         s.Mode,
	})
	if err != nil {
		s.setUp = false
		return nil, &vgerr.SetupError{Kind: vgerr.ErrInvalidGeometry}
	}
	s.compositor = compositor
	compositor.SetTransform(inverseTransform(s.Current))

	if s.FillPaint != nil {
		span, err := s.FillPaint.Setup(target, colorspace.Fill)
		if err != nil {
			s.setUp = false
			return nil, err
		}
		s.fillSpan = span
	}
	if s.StrokePaint != nil {
		span, err := s.StrokePaint.Setup(target, colorspace.Fill)
		if err != nil {
			if s.FillPaint != nil {
				s.FillPaint.Cleanup(target)
			}
			s.setUp = false
			return nil, err
		}
		s.strokeSpan = span
	}

	colorMask := s.Current.Color
	if colorMask == 0 {
		colorMask = colorspace.ARGB(0xff, 0xff, 0xff, 0xff)
	}
	fillColor := colorspace.Mul4Sym(s.FillColor, colorMask)
	strokeColor := colorspace.Mul4Sym(s.StrokeColor, colorMask)

	return func(x, y, length int, dst []colorspace.Color) {
		var fillSrc, strokeSrc []colorspace.Color
		if s.FillPaint != nil && s.fillSpan != nil {
			fillSrc = make([]colorspace.Color, length)
			s.fillSpan(x, y, length, fillSrc)
		}
		if s.StrokePaint != nil && s.strokeSpan != nil {
			strokeSrc = make([]colorspace.Color, length)
			s.strokeSpan(x, y, length, strokeSrc)
		}
		s.compositor.Span(y, x, length, dst, fillSrc, strokeSrc, fillColor, strokeColor)
	}, nil
}

func (s *Shape) Cleanup(target *Surface) {
	if s.StrokePaint != nil {
		s.StrokePaint.Cleanup(target)
	}
	if s.FillPaint != nil {
		s.FillPaint.Cleanup(target)
	}
	s.compositor = nil
	s.fillSpan = nil
	s.strokeSpan = nil
	s.EndCleanup()
}
