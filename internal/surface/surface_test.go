package surface

import (
	"testing"

	"github.com/rastereng/vgraphics/internal/colorspace"
)

func TestNewAllocatesStride(t *testing.T) {
	b, err := New(colorspace.ARGB8888Pre, 4, 3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if b.Stride != 16 {
		t.Fatalf("Stride = %d, want 16", b.Stride)
	}
	if len(b.Data) != 48 {
		t.Fatalf("len(Data) = %d, want 48", len(b.Data))
	}
}

func TestNewRejectsZeroSize(t *testing.T) {
	if _, err := New(colorspace.ARGB8888Pre, 0, 4); err == nil {
		t.Fatalf("expected error for zero width")
	}
}

func TestUnrefRunsExternalFree(t *testing.T) {
	data := make([]byte, 16)
	freed := false
	b, err := NewFromData(colorspace.ARGB8888Pre, 2, 2, 8, data, false, func([]byte) { freed = true })
	if err != nil {
		t.Fatalf("NewFromData: %v", err)
	}
	b.Ref()
	b.Unref()
	if freed {
		t.Fatalf("free ran before last unref")
	}
	b.Unref()
	if !freed {
		t.Fatalf("free did not run on last unref")
	}
}

func TestCopiedProvenanceDoesNotAliasSource(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	b, err := NewFromData(colorspace.ARGB8888Pre, 2, 1, 4, data, true, nil)
	if err != nil {
		t.Fatalf("NewFromData: %v", err)
	}
	data[0] = 0xff
	if b.Data[0] == 0xff {
		t.Fatalf("copied buffer aliases source data")
	}
}

func TestSurfaceWriteLockExcludesReaders(t *testing.T) {
	b, _ := New(colorspace.ARGB8888Pre, 1, 1)
	s := New(b)
	s.Lock(LockWrite)
	done := make(chan struct{})
	go func() {
		s.Lock(LockRead)
		close(done)
		s.Unlock(LockRead)
	}()
	select {
	case <-done:
		t.Fatalf("reader acquired lock while writer held it")
	default:
	}
	s.Unlock(LockWrite)
	<-done
}
