// SPDX-License-Identifier: EPL-2.0

package vio

import (
	"fmt"
	"io"
)

// Buffer is a growable in-memory backing store. It implements io.Reader,
// io.Writer and io.Seeker, so it can be passed straight to FromStream.
//
// Writing past the end grows the buffer; seeking past the end and writing
// leaves a zero-filled gap.
type Buffer struct {
	data []byte
	pos  int64
}

// NewBuffer returns a Buffer holding b. The Buffer takes ownership of b.
func NewBuffer(b []byte) *Buffer {
	return &Buffer{data: b}
}

// Bytes returns the buffer contents. The slice aliases the buffer until the
// next write.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the number of bytes stored.
func (b *Buffer) Len() int { return len(b.data) }

// Size returns the number of bytes stored as an int64.
func (b *Buffer) Size() int64 { return int64(len(b.data)) }

func (b *Buffer) Read(p []byte) (int, error) {
	if b.pos >= int64(len(b.data)) {
		return 0, io.EOF
	}
	n := copy(p, b.data[b.pos:])
	b.pos += int64(n)
	return n, nil
}

func (b *Buffer) Write(p []byte) (int, error) {
	end := b.pos + int64(len(p))
	if end > int64(len(b.data)) {
		b.grow(end)
	}
	n := copy(b.data[b.pos:], p)
	b.pos += int64(n)
	return n, nil
}

// Seek behaves like io.Seeker. Seeking beyond the end is allowed.
func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = b.pos + offset
	case io.SeekEnd:
		abs = int64(len(b.data)) + offset
	default:
		return b.pos, fmt.Errorf("%w: %d", ErrInvalidWhence, whence)
	}

	if abs < 0 {
		return b.pos, ErrNegativeOffset
	}
	b.pos = abs
	return abs, nil
}

// Truncate changes the size of the buffer. The position is left untouched.
func (b *Buffer) Truncate(n int64) error {
	switch {
	case n < 0:
		return ErrNegativeOffset
	case n <= int64(len(b.data)):
		b.data = b.data[:n]
	default:
		b.grow(n)
	}
	return nil
}

// Reset empties the buffer and rewinds it.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
	b.pos = 0
}

func (b *Buffer) grow(n int64) {
	if n <= int64(cap(b.data)) {
		old := len(b.data)
		b.data = b.data[:n]
		clear(b.data[old:])
		return
	}

	newCap := max(n, int64(2*cap(b.data)))
	grown := make([]byte, n, newCap)
	copy(grown, b.data)
	b.data = grown
}
