package vgraphics

import (
	"github.com/rastereng/vgraphics/internal/surface"
)

// Buffer is reference-counted pixel memory in one of Format's
// encodings.
type Buffer struct {
	buf *surface.Buffer
}

// NewBuffer allocates a w x h buffer in format, owned by the default
// pool.
func NewBuffer(format Format, w, h int) (*Buffer, error) {
	b, err := surface.New(format, w, h)
	if err != nil {
		return nil, err
	}
	return &Buffer{buf: b}, nil
}

// NewBufferFromData wraps externally supplied pixel memory. If dup is
// true the data is duplicated into a buffer the pool owns; otherwise
// free is invoked on the buffer's last Unref.
func NewBufferFromData(format Format, w, h, stride int, data []byte, dup bool, free func(data []byte)) (*Buffer, error) {
	b, err := surface.NewFromData(format, w, h, stride, data, dup, surface.FreeFunc(free))
	if err != nil {
		return nil, err
	}
	return &Buffer{buf: b}, nil
}

// Ref increments the reference count.
func (b *Buffer) Ref() { b.buf.Ref() }

// Unref decrements the reference count, releasing the pixel memory (or
// invoking the supplied free callback) once it reaches zero.
func (b *Buffer) Unref() { b.buf.Unref() }

// Size returns the buffer's pixel dimensions.
func (b *Buffer) Size() (w, h int) { return b.buf.Size() }

// Format returns the buffer's pixel format.
func (b *Buffer) Format() Format { return b.buf.Format }

// Data exposes the raw pixel bytes; callers must hold a Surface lock
// over the buffer before reading or writing.
func (b *Buffer) Data() []byte { return b.buf.Data }

// Surface binds a Buffer to the rendering pipeline, enforcing the
// single-writer/multi-reader discipline Draw relies on.
type Surface struct {
	surf *surface.Surface
	buf  *Buffer
}

// NewSurface returns a Surface over buf.
func NewSurface(buf *Buffer) *Surface {
	return &Surface{surf: surface.New(buf.buf), buf: buf}
}

// Buffer returns the backing Buffer.
func (s *Surface) Buffer() *Buffer { return s.buf }

// Lock acquires the surface for reading or writing. A write lock is
// exclusive against both other writers and readers.
func (s *Surface) Lock(write bool) {
	if write {
		s.surf.Lock(surface.LockWrite)
		return
	}
	s.surf.Lock(surface.LockRead)
}

// Unlock releases a lock acquired with the matching write argument.
func (s *Surface) Unlock(write bool) {
	if write {
		s.surf.Unlock(surface.LockWrite)
		return
	}
	s.surf.Unlock(surface.LockRead)
}
