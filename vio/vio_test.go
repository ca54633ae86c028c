// SPDX-License-Identifier: EPL-2.0

package vio

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// ring is a fixed-capacity ring buffer with no stream abstraction of its
// own, exposed through hand-written callbacks.
type ring struct {
	data  []byte
	head  int
	count int
	read  int64
}

func newRing(capacity int) *ring {
	return &ring{data: make([]byte, capacity)}
}

func (r *ring) callbacks() Callbacks {
	return Callbacks{
		Length: func() int64 { return int64(r.count) },
		Seek: func(offset int64, whence int) int64 {
			// only a zero-length relative seek is meaningful for a ring
			return r.read
		},
		Read: func(p []byte) int64 {
			n := min(len(p), r.count)
			for i := range n {
				p[i] = r.data[(r.head+i)%len(r.data)]
			}
			r.head = (r.head + n) % len(r.data)
			r.count -= n
			r.read += int64(n)
			return int64(n)
		},
		Write: func(p []byte) int64 {
			n := min(len(p), len(r.data)-r.count)
			for i := range n {
				r.data[(r.head+r.count+i)%len(r.data)] = p[i]
			}
			r.count += n
			return int64(n)
		},
		Position: func() int64 { return r.read },
	}
}

func TestNew_MissingCallback(t *testing.T) {
	t.Parallel()

	full := newRing(4).callbacks()
	tests := []struct {
		name  string
		strip func(*Callbacks)
	}{
		{"length", func(c *Callbacks) { c.Length = nil }},
		{"seek", func(c *Callbacks) { c.Seek = nil }},
		{"read", func(c *Callbacks) { c.Read = nil }},
		{"write", func(c *Callbacks) { c.Write = nil }},
		{"position", func(c *Callbacks) { c.Position = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cb := full
			tt.strip(&cb)
			_, err := New(cb)
			if !errors.Is(err, ErrMissingCallback) {
				t.Errorf("New() error = %v, want ErrMissingCallback", err)
			}
		})
	}
}

func TestNew_RingBuffer(t *testing.T) {
	t.Parallel()

	r := newRing(8)
	v, err := New(r.callbacks())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if n := v.Write([]byte("0123456789")); n != 8 {
		t.Errorf("Write() = %d, want 8 (ring capacity)", n)
	}
	if n := v.Length(); n != 8 {
		t.Errorf("Length() = %d, want 8", n)
	}

	buf := make([]byte, 5)
	if n := v.Read(buf); n != 5 {
		t.Fatalf("Read() = %d, want 5", n)
	}
	if string(buf) != "01234" {
		t.Errorf("Read() data = %q, want %q", buf, "01234")
	}
	if pos := v.Position(); pos != 5 {
		t.Errorf("Position() = %d, want 5", pos)
	}

	if n := v.Read(buf); n != 3 {
		t.Errorf("second Read() = %d, want 3", n)
	}
	if n := v.Read(buf); n != 0 {
		t.Errorf("Read() at end = %d, want 0", n)
	}
	if err := v.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
}

func TestFromStream_Nil(t *testing.T) {
	t.Parallel()

	if _, err := FromStream(nil); !errors.Is(err, ErrNilStream) {
		t.Errorf("FromStream(nil) error = %v, want ErrNilStream", err)
	}
}

func TestFromStream_ReadOnlyStore(t *testing.T) {
	t.Parallel()

	v, err := FromStream(bytes.NewReader([]byte("abcdef")))
	if err != nil {
		t.Fatalf("FromStream() error = %v", err)
	}

	if n := v.Write([]byte("xyz")); n != 0 {
		t.Errorf("Write() on read-only store = %d, want 0", n)
	}
	if err := v.Err(); err != nil {
		t.Errorf("Err() after refused write = %v, want nil", err)
	}

	if n := v.Length(); n != 6 {
		t.Errorf("Length() = %d, want 6", n)
	}

	if pos := v.Seek(2, io.SeekStart); pos != 2 {
		t.Errorf("Seek() = %d, want 2", pos)
	}
	buf := make([]byte, 10)
	n := v.Read(buf)
	if n != 4 || string(buf[:n]) != "cdef" {
		t.Errorf("Read() = %d %q, want 4 \"cdef\"", n, buf[:n])
	}
}

func TestFromStream_WriteOnlyStore(t *testing.T) {
	t.Parallel()

	var sink writeSeeker
	v, err := FromStream(&sink)
	if err != nil {
		t.Fatalf("FromStream() error = %v", err)
	}

	if n := v.Read(make([]byte, 4)); n != 0 {
		t.Errorf("Read() on write-only store = %d, want 0", n)
	}
	if n := v.Write([]byte("abc")); n != 3 {
		t.Errorf("Write() = %d, want 3", n)
	}
}

type writeSeeker struct {
	buf bytes.Buffer
}

func (w *writeSeeker) Write(p []byte) (int, error) { return w.buf.Write(p) }
func (w *writeSeeker) Seek(offset int64, whence int) (int64, error) {
	return int64(w.buf.Len()), nil
}

func TestFromStream_LengthRestoresPosition(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "store.bin"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer f.Close()

	if _, err := f.Write(make([]byte, 100)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	v, err := FromStream(f)
	if err != nil {
		t.Fatalf("FromStream() error = %v", err)
	}

	v.Seek(10, io.SeekStart)
	if n := v.Length(); n != 100 {
		t.Errorf("Length() = %d, want 100", n)
	}
	if pos := v.Position(); pos != 10 {
		t.Errorf("Position() after Length() = %d, want 10", pos)
	}
}

func TestFromStream_WithLength(t *testing.T) {
	t.Parallel()

	v, err := FromStream(bytes.NewReader(make([]byte, 10)), WithLength(1234))
	if err != nil {
		t.Fatalf("FromStream() error = %v", err)
	}
	if n := v.Length(); n != 1234 {
		t.Errorf("Length() = %d, want 1234", n)
	}
}

type failingStore struct {
	err error
}

func (f failingStore) Read(p []byte) (int, error)                   { return 0, f.err }
func (f failingStore) Write(p []byte) (int, error)                  { return 0, f.err }
func (f failingStore) Seek(offset int64, whence int) (int64, error) { return 0, f.err }

func TestFromStream_StoreErrorsAreSwallowed(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk on fire")
	v, err := FromStream(failingStore{err: boom})
	if err != nil {
		t.Fatalf("FromStream() error = %v", err)
	}

	if n := v.Read(make([]byte, 8)); n != 0 {
		t.Errorf("Read() = %d, want 0", n)
	}
	if !errors.Is(v.TakeErr(), boom) {
		t.Error("TakeErr() did not return the store error")
	}
	if v.TakeErr() != nil {
		t.Error("TakeErr() did not clear the fault")
	}

	if n := v.Write([]byte("x")); n != 0 {
		t.Errorf("Write() = %d, want 0", n)
	}
	if v.Faults() < 2 {
		t.Errorf("Faults() = %d, want at least 2", v.Faults())
	}
}

func TestVirtualIO_PanicsAreSwallowed(t *testing.T) {
	t.Parallel()

	v, err := New(Callbacks{
		Length:   func() int64 { panic("length") },
		Seek:     func(int64, int) int64 { panic("seek") },
		Read:     func([]byte) int64 { panic("read") },
		Write:    func([]byte) int64 { panic("write") },
		Position: func() int64 { panic("position") },
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if n := v.Length(); n != 0 {
		t.Errorf("Length() = %d, want 0", n)
	}
	if pos := v.Seek(100, io.SeekStart); pos != 0 {
		t.Errorf("Seek() = %d, want unchanged position 0", pos)
	}
	if n := v.Read(make([]byte, 4)); n != 0 {
		t.Errorf("Read() = %d, want 0", n)
	}
	if n := v.Write(make([]byte, 4)); n != 0 {
		t.Errorf("Write() = %d, want 0", n)
	}
	if pos := v.Position(); pos != 0 {
		t.Errorf("Position() = %d, want 0", pos)
	}

	if !errors.Is(v.Err(), ErrCallbackPanic) {
		t.Errorf("Err() = %v, want ErrCallbackPanic", v.Err())
	}
	if v.Faults() != 5 {
		t.Errorf("Faults() = %d, want 5", v.Faults())
	}
}

func TestVirtualIO_ZeroValue(t *testing.T) {
	t.Parallel()

	var v VirtualIO
	if err := v.Check(); !errors.Is(err, ErrMissingCallback) {
		t.Errorf("Check() error = %v, want ErrMissingCallback", err)
	}

	// nil callbacks fault like panicking ones and nothing escapes
	if n := v.Read(make([]byte, 4)); n != 0 {
		t.Errorf("Read() = %d, want 0", n)
	}
	if pos := v.Seek(8, io.SeekStart); pos != 0 {
		t.Errorf("Seek() = %d, want 0", pos)
	}
	if !errors.Is(v.Err(), ErrCallbackPanic) {
		t.Errorf("Err() = %v, want ErrCallbackPanic", v.Err())
	}
	if v.Faults() != 2 {
		t.Errorf("Faults() = %d, want 2", v.Faults())
	}
}

func TestVirtualIO_BadResults(t *testing.T) {
	t.Parallel()

	v, err := New(Callbacks{
		Length:   func() int64 { return -1 },
		Seek:     func(int64, int) int64 { return -7 },
		Read:     func(p []byte) int64 { return int64(len(p) + 1) },
		Write:    func(p []byte) int64 { return -1 },
		Position: func() int64 { return -1 },
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if v.Length() != 0 || v.Read(make([]byte, 2)) != 0 || v.Write(make([]byte, 2)) != 0 {
		t.Error("invalid callback results were not reported as zero progress")
	}
	if v.Seek(5, io.SeekStart) != 0 || v.Position() != 0 {
		t.Error("invalid positions were not replaced by the last known position")
	}
	if !errors.Is(v.Err(), ErrBadResult) {
		t.Errorf("Err() = %v, want ErrBadResult", v.Err())
	}
}

func TestFile_View(t *testing.T) {
	t.Parallel()

	buf := NewBuffer(nil)
	v, err := FromStream(buf)
	if err != nil {
		t.Fatalf("FromStream() error = %v", err)
	}
	f := v.File()

	if _, err := f.Write([]byte("hello world")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if _, err := f.Seek(6, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}

	got, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(got) != "world" {
		t.Errorf("ReadAll() = %q, want %q", got, "world")
	}
}

func TestFile_ReportsFault(t *testing.T) {
	t.Parallel()

	boom := errors.New("unplugged")
	v, _ := FromStream(failingStore{err: boom})
	f := v.File()

	if _, err := f.Read(make([]byte, 4)); !errors.Is(err, boom) {
		t.Errorf("Read() error = %v, want %v", err, boom)
	}
	if _, err := f.Write([]byte("abc")); !errors.Is(err, boom) {
		t.Errorf("Write() error = %v, want %v", err, boom)
	}
}

func TestFile_ShortWrite(t *testing.T) {
	t.Parallel()

	r := newRing(2)
	v, _ := New(r.callbacks())

	n, err := v.File().Write([]byte("abcd"))
	if n != 2 || !errors.Is(err, io.ErrShortWrite) {
		t.Errorf("Write() = %d, %v; want 2, io.ErrShortWrite", n, err)
	}
}
