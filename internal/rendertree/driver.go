package rendertree

import (
	"sync"

	"github.com/rastereng/vgraphics/internal/colorspace"
	"github.com/rastereng/vgraphics/internal/config"
	"github.com/rastereng/vgraphics/internal/geom"
	"github.com/rastereng/vgraphics/internal/surface"
	"github.com/rastereng/vgraphics/internal/vgerr"
)

// nodeState tracks a renderer's DFS coloring in checkAcyclic.
type nodeState int

const (
	white nodeState = iota
	gray
	black
)

// children returns r's owned renderer children: the renderer tree is a
// strictly owning DAG, so every composite and paint-bearing renderer
// that can hold another renderer is listed here alongside the common
// clip mask every renderer may carry.
func children(r Renderer) []Renderer {
	var kids []Renderer
	switch v := r.(type) {
	case *Compound:
		for _, l := range v.Layers {
			kids = append(kids, l.Renderer)
		}
	case *Clipper:
		kids = append(kids, v.Content)
	case *Transition:
		kids = append(kids, v.Source, v.Target)
	case *Proxy:
		kids = append(kids, v.Wrapped)
	case *Pattern:
		kids = append(kids, v.Source)
	case *RadialDistortion:
		kids = append(kids, v.Source)
	case *Hswitch:
		kids = append(kids, v.Left, v.Right)
	case *Shape:
		if v.FillPaint != nil {
			kids = append(kids, v.FillPaint)
		}
		if v.StrokePaint != nil {
			kids = append(kids, v.StrokePaint)
		}
	}
	if holder, ok := r.(PropertyHolder); ok {
		if m := holder.MaskValue(); m != nil {
			kids = append(kids, m)
		}
	}
	return kids
}

// checkAcyclic walks root's renderer tree with a three-color DFS,
// detecting a back edge (a renderer reachable from itself through its
// own descendants) before setup ever begins.
func checkAcyclic(root Renderer) error {
	state := map[Renderer]nodeState{}
	var visit func(r Renderer) error
	visit = func(r Renderer) error {
		if r == nil {
			return nil
		}
		switch state[r] {
		case gray:
			return &vgerr.SetupError{Kind: vgerr.ErrCycleDetected}
		case black:
			return nil
		}
		state[r] = gray
		for _, c := range children(r) {
			if err := visit(c); err != nil {
				return err
			}
		}
		state[r] = black
		return nil
	}
	return visit(root)
}

// Draw computes the effective draw area (clip ∩ surface bounds ∩
// renderer destination bounds, each optionally shifted by (dx,dy)),
// locks target for write, sets up root, runs span_fn across every row
// in the area — striped across config.WorkerCount() goroutines when it
// is greater than 1, otherwise sequentially — then cleans up and
// unlocks.
func Draw(target *surface.Surface, root Renderer, clip *geom.IntRect, dx, dy int) error {
	return drawAreas(target, root, singleArea(clip), dx, dy)
}

// DrawList is Draw's multi-rectangle form: each clip rectangle is
// processed independently, all under one setup/cleanup pair.
func DrawList(target *surface.Surface, root Renderer, clips []geom.IntRect, dx, dy int) error {
	return drawAreas(target, root, clips, dx, dy)
}

func singleArea(clip *geom.IntRect) []geom.IntRect {
	if clip == nil {
		return []geom.IntRect{{X: -1 << 30, Y: -1 << 30, W: 1 << 31, H: 1 << 31}}
	}
	return []geom.IntRect{*clip}
}

func drawAreas(target *surface.Surface, root Renderer, clips []geom.IntRect, dx, dy int) error {
	if err := checkAcyclic(root); err != nil {
		return err
	}

	target.Lock(surface.LockWrite)
	defer target.Unlock(surface.LockWrite)

	span, err := root.Setup(target, colorspace.Fill)
	if err != nil {
		return err
	}
	defer root.Cleanup(target)

	buf := target.Buffer
	surfBounds := geom.IntRect{X: 0, Y: 0, W: buf.Width, H: buf.Height}
	destBounds := root.DestinationBounds()
	destBounds = geom.IntRect{X: destBounds.X + dx, Y: destBounds.Y + dy, W: destBounds.W, H: destBounds.H}

	for _, clip := range clips {
		area := surfBounds.Intersect(destBounds).Intersect(clip)
		if area.IsEmpty() {
			continue
		}
		drawArea(buf, span, area, dx, dy)
	}
	return nil
}

// drawArea renders every row of area, striping rows across
// config.WorkerCount() goroutines by row_index mod N when N > 1.
func drawArea(buf *surface.Buffer, span SpanFunc, area geom.IntRect, dx, dy int) {
	n := config.WorkerCount()
	if n <= 1 {
		for y := area.Y; y < area.Y+area.H; y++ {
			drawRow(buf, span, y, area.X, area.W, dx, dy)
		}
		return
	}

	var wg sync.WaitGroup
	for k := 0; k < n; k++ {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			for y := area.Y + k; y < area.Y+area.H; y += n {
				drawRow(buf, span, y, area.X, area.W, dx, dy)
			}
		}(k)
	}
	wg.Wait()
}

func drawRow(buf *surface.Buffer, span SpanFunc, y, x, length, dx, dy int) {
	row := make([]colorspace.Color, length)
	span(x-dx, y-dy, length, row)
	for i, c := range row {
		writePixel(buf, x+i, y, c)
	}
}

func writePixel(buf *surface.Buffer, x, y int, c colorspace.Color) {
	if x < 0 || y < 0 || x >= buf.Width || y >= buf.Height {
		return
	}
	bpp := colorspace.BytesPerPixel(buf.Format)
	off := y*buf.Stride + x*bpp
	if off+4 > len(buf.Data) {
		return
	}
	buf.Data[off] = c.A()
	buf.Data[off+1] = c.R()
	buf.Data[off+2] = c.G()
	buf.Data[off+3] = c.B()
}
