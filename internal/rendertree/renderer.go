// Package rendertree implements the renderer interface and driver loop:
// every renderer exposes bounds/features/damage/setup/cleanup/sw_fill,
// carries a current and a committed past state for damage tracking, and
// is evaluated by a driver against a destination surface row by row,
// optionally striped across goroutines.
package rendertree

import (
	"sync"

	"github.com/rastereng/vgraphics/internal/colorspace"
	"github.com/rastereng/vgraphics/internal/geom"
	"github.com/rastereng/vgraphics/internal/matrix"
	"github.com/rastereng/vgraphics/internal/surface"
	"github.com/rastereng/vgraphics/internal/vgerr"
)

// Surface is a re-export of surface.Surface for signatures in this
// package that don't otherwise need the surface package name.
type Surface = surface.Surface

// Features is a bitmask a renderer advertises so the driver can reject
// unsupported transform classes or destination formats before setup.
type Features int

const (
	FeatureTranslate Features = 1 << iota
	FeatureAffine
	FeatureProjective
	FeatureARGB8888
	FeatureColorMask
	FeatureQuality
	FeatureROP
)

// State holds the common renderer properties damage tracking diffs
// against; Commit copies current into a caller-held past snapshot.
type State struct {
	Visible        bool
	Rop            colorspace.Rop
	Color          colorspace.Color
	Transformation matrix.Matrix
	OriginX, OriginY float64
	Mask           Renderer
	Name           string
	changed        bool
}

// MarkChanged flags the state as differing from its last commit.
func (s *State) MarkChanged() { s.changed = true }

// Changed reports whether the state differs from its last commit.
func (s *State) Changed() bool { return s.changed }

// Commit clears the changed flag after a caller has folded current
// into past.
func (s *State) Commit() { s.changed = false }

// SpanFunc renders length destination pixels of row y starting at x
// into dst, in the renderer's already-set-up state.
type SpanFunc func(x, y, length int, dst []colorspace.Color)

// DamageFunc receives one damaged rectangle and whether it reflects the
// renderer's prior (was_old) or current bounds.
type DamageFunc func(r geom.IntRect, wasOld bool)

// Renderer is the polymorphic interface every leaf and composite
// renderer in the tree implements.
type Renderer interface {
	// BaseName returns the short class name used for auto-generated
	// instance names ("<class><n>").
	BaseName() string
	// Bounds returns bounds in the renderer's own coordinate space,
	// before origin/transform are applied.
	Bounds() geom.Rect
	// DestinationBounds returns bounds in destination pixel
	// coordinates, after origin and transformation.
	DestinationBounds() geom.IntRect
	// FeatureFlags reports the capability bitmask.
	FeatureFlags() Features
	// HasChanged reports whether any property differs from the
	// committed past state, including nested renderers recursively.
	HasChanged() bool
	// Damages reports the rectangles needing redraw via cb.
	Damages(oldBounds geom.IntRect, cb DamageFunc)
	// Setup locks inputs, selects a scanline kernel, and returns the
	// SpanFunc the driver will call per row. Setup is reentrancy
	// guarded: calling Setup again before Cleanup is a contract
	// violation and returns an error.
	Setup(target *Surface, rop colorspace.Rop) (SpanFunc, error)
	// Cleanup releases per-surface state and commits current into past.
	Cleanup(target *Surface)
}

// Base is embedded by every concrete renderer; it implements the state
// bookkeeping (current/past discipline, setup reentrancy guard) common
// to all variants so each leaf only needs to supply geometry/paint
// logic and a BaseName.
type Base struct {
	Current State
	past    State
	setUp   bool
}

// Commit folds Current into the committed past snapshot.
func (b *Base) Commit() {
	b.past = b.Current
	b.Current.Commit()
	b.past.Commit()
}

// HasChangedBase reports whether Current differs from the committed
// past snapshot. Concrete renderers with extra fields override
// HasChanged to also compare those, typically ORing in this result.
func (b *Base) HasChangedBase() bool {
	return b.Current.Changed() ||
		b.Current.Visible != b.past.Visible ||
		b.Current.Rop != b.past.Rop ||
		b.Current.Color != b.past.Color ||
		b.Current.Transformation != b.past.Transformation ||
		b.Current.OriginX != b.past.OriginX ||
		b.Current.OriginY != b.past.OriginY ||
		b.Current.Mask != b.past.Mask
}

// PropertyHolder is the set of common property accessors promoted onto
// every concrete renderer through Base, letting a caller holding only a
// Renderer still reach the shared knobs without a type switch.
type PropertyHolder interface {
	SetVisible(bool)
	Visible() bool
	SetColorMask(colorspace.Color)
	ColorMask() colorspace.Color
	SetRop(colorspace.Rop)
	RopValue() colorspace.Rop
	SetTransformation(matrix.Matrix)
	TransformationValue() matrix.Matrix
	SetOrigin(x, y float64)
	OriginValue() (x, y float64)
	SetMask(Renderer)
	MaskValue() Renderer
	Name() string
	SetName(string)
}

// InitDefaults sets the defaults every concrete constructor starts
// from: visible, identity transformation, and the auto-generated name.
// Every New* constructor must call this (directly or via NewShape),
// since a zero-value State's Transformation has all-zero coefficients
// rather than an identity matrix.
func (b *Base) InitDefaults(name string) {
	b.Current.Visible = true
	b.Current.Transformation = matrix.NewIdentity()
	b.Current.Name = name
}

func (b *Base) SetVisible(v bool) { b.Current.Visible = v; b.Current.MarkChanged() }
func (b *Base) Visible() bool     { return b.Current.Visible }

func (b *Base) SetColorMask(c colorspace.Color) { b.Current.Color = c; b.Current.MarkChanged() }
func (b *Base) ColorMask() colorspace.Color     { return b.Current.Color }

func (b *Base) SetRop(r colorspace.Rop) { b.Current.Rop = r; b.Current.MarkChanged() }
func (b *Base) RopValue() colorspace.Rop { return b.Current.Rop }

func (b *Base) SetTransformation(m matrix.Matrix) {
	b.Current.Transformation = m
	b.Current.MarkChanged()
}
func (b *Base) TransformationValue() matrix.Matrix { return b.Current.Transformation }

func (b *Base) SetOrigin(x, y float64) {
	b.Current.OriginX, b.Current.OriginY = x, y
	b.Current.MarkChanged()
}
func (b *Base) OriginValue() (x, y float64) { return b.Current.OriginX, b.Current.OriginY }

func (b *Base) SetMask(m Renderer) { b.Current.Mask = m; b.Current.MarkChanged() }
func (b *Base) MaskValue() Renderer { return b.Current.Mask }

func (b *Base) Name() string      { return b.Current.Name }
func (b *Base) SetName(n string)  { b.Current.Name = n }

// BeginSetup enforces the reentrancy guard every renderer's Setup must
// call first.
func (b *Base) BeginSetup() error {
	if b.setUp {
		return &vgerr.SetupError{Kind: vgerr.ErrChildSetupFailed}
	}
	b.setUp = true
	return nil
}

// EndCleanup clears the reentrancy guard and commits state; every
// renderer's Cleanup must call this last.
func (b *Base) EndCleanup() {
	b.setUp = false
	b.Commit()
}

var (
	nameMu      sync.Mutex
	nameCounter = map[string]int{}
)

// AutoName returns "<baseName><n>" where n is a per-class counter that
// increments on every call, used to name renderers that were never
// given an explicit name.
func AutoName(baseName string) string {
	nameMu.Lock()
	defer nameMu.Unlock()
	n := nameCounter[baseName]
	nameCounter[baseName]++
	return baseName + itoa(n)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
