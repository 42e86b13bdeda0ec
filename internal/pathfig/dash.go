package pathfig

import (
	"math"

	"github.com/rastereng/vgraphics/internal/geom"
)

// MaxDashes bounds the number of on/off lengths a DashPattern holds,
// matching AGG's vcgen_dash fixed-size dash array.
const MaxDashes = 32

// DashPattern splits a polyline into alternating "on" and "off" runs
// measured along its arc length, grounded on AGG's internal/vcgen/dash.go
// but adapted to operate on an already-flattened vertex slice instead of
// a generic vertex-source pipeline: path curves are flattened by
// internal/curve before a DashPattern ever sees the point stream.
type DashPattern struct {
	lengths []float64 // alternating on, off, on, off, ...
	start   float64
}

// NewDashPattern builds a pattern from alternating on/off lengths,
// truncated to MaxDashes entries, with an optional starting phase
// offset measured into the repeating cycle.
func NewDashPattern(start float64, lengths ...float64) *DashPattern {
	if len(lengths) > MaxDashes {
		lengths = lengths[:MaxDashes]
	}
	cp := make([]float64, len(lengths))
	copy(cp, lengths)
	return &DashPattern{lengths: cp, start: start}
}

func (d *DashPattern) totalLen() float64 {
	var total float64
	for _, l := range d.lengths {
		total += l
	}
	return total
}

// Apply walks pts (a single polygon's flattened vertices, closed or
// open) and emits each "on" run as a separate polyline to emit. It
// returns nil if the pattern has no positive-length total cycle (no
// dashing is applied in that case, the caller should fall back to the
// plain undashed polyline).
func (d *DashPattern) Apply(pts []geom.Point, closed bool) [][]geom.Point {
	total := d.totalLen()
	if total <= 0 || len(pts) < 2 {
		return nil
	}

	segs := pts
	if closed && len(pts) > 0 {
		segs = append(append([]geom.Point{}, pts...), pts[0])
	}

	phase := math.Mod(d.start, total)
	if phase < 0 {
		phase += total
	}
	idx, into := d.cycleAt(phase)

	var result [][]geom.Point
	var current []geom.Point
	on := idx%2 == 0
	if on {
		current = append(current, segs[0])
	}

	remaining := d.lengths[idx] - into

	for i := 0; i < len(segs)-1; i++ {
		a, b := segs[i], segs[i+1]
		segLen := math.Hypot(b.X-a.X, b.Y-a.Y)
		pos := 0.0
		for segLen-pos > remaining {
			pos += remaining
			t := pos / segLen
			cut := geom.Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
			if on {
				current = append(current, cut)
				if len(current) >= 2 {
					result = append(result, current)
				}
				current = nil
			} else {
				current = []geom.Point{cut}
			}
			on = !on
			idx = (idx + 1) % len(d.lengths)
			remaining = d.lengths[idx]
		}
		remaining -= segLen - pos
		if on {
			current = append(current, b)
		}
	}
	if on && len(current) >= 2 {
		result = append(result, current)
	}
	return result
}

// cycleAt locates which dash-array entry a given phase distance into
// the total cycle falls into, and how far into that entry it is.
func (d *DashPattern) cycleAt(phase float64) (idx int, into float64) {
	remaining := phase
	for i, l := range d.lengths {
		if remaining < l {
			return i, remaining
		}
		remaining -= l
	}
	return 0, 0
}
