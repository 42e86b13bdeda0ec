// Package surface implements Buffer (owned pixel memory, reference
// counted) and Surface (a Buffer bound to a backend, with a
// single-writer/multi-reader lock).
package surface

import (
	"fmt"
	"sync"

	"github.com/rastereng/vgraphics/internal/colorspace"
)

// Provenance records where a Buffer's pixel memory came from, which
// determines what happens on last unref.
type Provenance int

const (
	// OwnedByPool means the buffer's pool allocated and will free the
	// pixel memory.
	OwnedByPool Provenance = iota
	// ExternallySupplied means a caller-provided free callback runs
	// instead of freeing via the pool.
	ExternallySupplied
	// Copied means the pixel memory is a private copy the pool frees,
	// even though the source wasn't pool-allocated.
	Copied
)

// FreeFunc is called on the last unref of an ExternallySupplied buffer.
type FreeFunc func(data []byte)

// Buffer owns pixel memory in one of colorspace.Format's encodings,
// reference counted: the last Unref releases the memory (or invokes
// Free for ExternallySupplied buffers).
type Buffer struct {
	mu sync.Mutex

	Format Format
	Width  int
	Height int
	Stride int
	Data   []byte

	provenance Provenance
	free       FreeFunc
	refs       int
}

// Format is a re-export of colorspace.Format for buffer declarations
// that don't otherwise need the colorspace package.
type Format = colorspace.Format

// New allocates a buffer of w x h pixels in format, owned by the
// default pool (the system allocator backing a plain Go slice).
func New(format Format, w, h int) (*Buffer, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("surface: invalid size %dx%d", w, h)
	}
	stride := w * colorspace.BytesPerPixel(format)
	return &Buffer{
		Format: format, Width: w, Height: h, Stride: stride,
		Data:       make([]byte, stride*h),
		provenance: OwnedByPool,
		refs:       1,
	}, nil
}

// NewFromData wraps externally supplied data. If copy is true the data
// is duplicated and the provenance becomes Copied; otherwise the buffer
// references data directly and free runs on last unref.
func NewFromData(format Format, w, h, stride int, data []byte, copy_ bool, free FreeFunc) (*Buffer, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("surface: invalid size %dx%d", w, h)
	}
	if len(data) < stride*h {
		return nil, fmt.Errorf("surface: data too small for %dx%d stride %d", w, h, stride)
	}
	b := &Buffer{Format: format, Width: w, Height: h, Stride: stride, refs: 1}
	if copy_ {
		b.Data = append([]byte(nil), data...)
		b.provenance = Copied
	} else {
		b.Data = data
		b.provenance = ExternallySupplied
		b.free = free
	}
	return b, nil
}

// Ref increments the reference count.
func (b *Buffer) Ref() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.refs++
}

// Unref decrements the reference count, releasing pixel memory (or
// invoking the external free callback) when it reaches zero.
func (b *Buffer) Unref() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.refs--
	if b.refs > 0 {
		return
	}
	if b.provenance == ExternallySupplied && b.free != nil {
		b.free(b.Data)
	}
	b.Data = nil
}

// Size returns the buffer's pixel dimensions.
func (b *Buffer) Size() (w, h int) { return b.Width, b.Height }

// LockMode selects how a Surface is locked.
type LockMode int

const (
	LockRead LockMode = iota
	LockWrite
)

// Surface binds a Buffer to a rendering backend, enforcing a
// single-writer/multi-reader discipline so a draw acquiring write
// access can't race an image renderer reading the same surface.
type Surface struct {
	Buffer *Buffer

	mu      sync.RWMutex
	writing bool
}

// New returns a Surface over buf. buf's ref count is not touched here;
// callers manage Buffer lifetime independently of Surface lifetime.
func New(buf *Buffer) *Surface {
	return &Surface{Buffer: buf}
}

// Lock acquires the surface for read or write; write is exclusive
// against both other writers and readers, per the setup→draw→cleanup
// ordering invariant.
func (s *Surface) Lock(mode LockMode) {
	if mode == LockWrite {
		s.mu.Lock()
		s.writing = true
		return
	}
	s.mu.RLock()
}

// Unlock releases a previously acquired lock matching the mode last
// passed to Lock.
func (s *Surface) Unlock(mode LockMode) {
	if mode == LockWrite {
		s.writing = false
		s.mu.Unlock()
		return
	}
	s.mu.RUnlock()
}
