// SPDX-License-Identifier: EPL-2.0

package vio

import (
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuffer_WriteGrows(t *testing.T) {
	t.Parallel()

	b := NewBuffer(nil)
	b.Write([]byte("abc"))
	if _, err := b.Seek(6, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	b.Write([]byte("xy"))

	want := []byte{'a', 'b', 'c', 0, 0, 0, 'x', 'y'}
	if diff := cmp.Diff(want, b.Bytes()); diff != "" {
		t.Errorf("Bytes() mismatch (-want +got):\n%s", diff)
	}
	if b.Size() != 8 {
		t.Errorf("Size() = %d, want 8", b.Size())
	}
}

func TestBuffer_Overwrite(t *testing.T) {
	t.Parallel()

	b := NewBuffer([]byte("hello world"))
	b.Seek(-5, io.SeekEnd)
	b.Write([]byte("there"))

	if string(b.Bytes()) != "hello there" {
		t.Errorf("Bytes() = %q, want %q", b.Bytes(), "hello there")
	}
}

func TestBuffer_ReadEOF(t *testing.T) {
	t.Parallel()

	b := NewBuffer([]byte("ab"))
	p := make([]byte, 4)

	n, err := b.Read(p)
	if n != 2 || err != nil {
		t.Errorf("Read() = %d, %v; want 2, nil", n, err)
	}
	n, err = b.Read(p)
	if n != 0 || err != io.EOF {
		t.Errorf("Read() at end = %d, %v; want 0, io.EOF", n, err)
	}
}

func TestBuffer_SeekErrors(t *testing.T) {
	t.Parallel()

	b := NewBuffer([]byte("abc"))

	tests := []struct {
		name   string
		offset int64
		whence int
		want   error
	}{
		{"negative start", -1, io.SeekStart, ErrNegativeOffset},
		{"negative end", -4, io.SeekEnd, ErrNegativeOffset},
		{"bad whence", 0, 42, ErrInvalidWhence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := b.Seek(tt.offset, tt.whence); !errors.Is(err, tt.want) {
				t.Errorf("Seek() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBuffer_Truncate(t *testing.T) {
	t.Parallel()

	b := NewBuffer([]byte("abcdef"))
	if err := b.Truncate(3); err != nil {
		t.Fatalf("Truncate(3) error = %v", err)
	}
	if string(b.Bytes()) != "abc" {
		t.Errorf("Bytes() = %q, want %q", b.Bytes(), "abc")
	}

	if err := b.Truncate(5); err != nil {
		t.Fatalf("Truncate(5) error = %v", err)
	}
	if diff := cmp.Diff([]byte{'a', 'b', 'c', 0, 0}, b.Bytes()); diff != "" {
		t.Errorf("Bytes() mismatch (-want +got):\n%s", diff)
	}

	if err := b.Truncate(-1); !errors.Is(err, ErrNegativeOffset) {
		t.Errorf("Truncate(-1) error = %v, want ErrNegativeOffset", err)
	}
}

func TestBuffer_TruncateThenGrowZeroes(t *testing.T) {
	t.Parallel()

	b := NewBuffer([]byte("abcdef"))
	b.Truncate(2)
	b.Truncate(4)

	if diff := cmp.Diff([]byte{'a', 'b', 0, 0}, b.Bytes()); diff != "" {
		t.Errorf("Bytes() mismatch (-want +got):\n%s", diff)
	}
}

func BenchmarkBuffer_Write(b *testing.B) {
	chunk := make([]byte, 4096)

	b.ReportAllocs()
	for b.Loop() {
		buf := NewBuffer(nil)
		for range 64 {
			buf.Write(chunk)
		}
	}
}
