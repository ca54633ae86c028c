// SPDX-License-Identifier: EPL-2.0

package vio

// Callbacks is the set of functions an engine calls to reach a backing store.
// Each function captures whatever context it needs.
type Callbacks struct {
	// Length reports the total size of the backing store in bytes.
	Length func() int64

	// Seek repositions the store and returns the resulting absolute offset.
	// whence is one of io.SeekStart, io.SeekCurrent or io.SeekEnd.
	Seek func(offset int64, whence int) int64

	// Read fills up to len(p) bytes and returns how many were copied.
	// 0 means end of data. It must not block indefinitely.
	Read func(p []byte) int64

	// Write consumes up to len(p) bytes and returns how many were accepted.
	Write func(p []byte) int64

	// Position reports the current offset without moving it.
	Position func() int64
}

func (c Callbacks) missing() string {
	switch {
	case c.Length == nil:
		return "length"
	case c.Seek == nil:
		return "seek"
	case c.Read == nil:
		return "read"
	case c.Write == nil:
		return "write"
	case c.Position == nil:
		return "position"
	}
	return ""
}
