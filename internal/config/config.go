// Package config holds process-wide tunables for the rasterization
// engine: curve flattening tolerance, polygon point-merge distance, the
// row-striping worker count, and the default pixel format new buffers
// are created in.
package config

import (
	"sync"

	"github.com/rastereng/vgraphics/internal/colorspace"
	"github.com/rastereng/vgraphics/internal/curve"
	"github.com/rastereng/vgraphics/internal/pathfig"
)

// Config holds the global tunables.
type Config struct {
	// CurveFlatness bounds the deviation a flattened curve segment may
	// have from its control polygon. Zero selects curve.DefaultFlatness.
	CurveFlatness float64

	// PolygonMergeThreshold bounds the distance below which consecutive
	// polygon points are merged. Zero selects pathfig.DefaultMergeThreshold.
	PolygonMergeThreshold float64

	// WorkerCount is the number of goroutines the renderer-tree driver
	// stripes scanlines across. Zero or negative selects single-threaded
	// mode.
	WorkerCount int

	// DefaultFormat is the pixel format new Buffers are allocated in
	// when the caller doesn't specify one.
	DefaultFormat colorspace.Format
}

var (
	mu     sync.RWMutex
	global = Config{
		CurveFlatness:         curve.DefaultFlatness,
		PolygonMergeThreshold: pathfig.DefaultMergeThreshold,
		WorkerCount:           0,
		DefaultFormat:         colorspace.ARGB8888Pre,
	}
)

// Get returns a copy of the current global configuration.
func Get() Config {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Set replaces the global configuration.
func Set(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	global = cfg
}

// CurveFlatness returns the configured curve flattening tolerance,
// falling back to curve.DefaultFlatness when unset.
func CurveFlatness() float64 {
	mu.RLock()
	defer mu.RUnlock()
	if global.CurveFlatness <= 0 {
		return curve.DefaultFlatness
	}
	return global.CurveFlatness
}

// WorkerCount returns the configured row-striping worker count.
func WorkerCount() int {
	mu.RLock()
	defer mu.RUnlock()
	return global.WorkerCount
}
