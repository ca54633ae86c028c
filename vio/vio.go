// SPDX-License-Identifier: EPL-2.0

package vio

import (
	"fmt"
	"io"
	"log/slog"
)

// VirtualIO binds a set of callbacks into the structure an engine invokes.
//
// The callbacks are read-only after construction. A VirtualIO belongs to a
// single session and is not safe for concurrent use; synchronizing a backing
// store shared between sessions is the store's responsibility.
type VirtualIO struct {
	cb     Callbacks
	logger *slog.Logger

	// last known absolute offset, reported when a callback faults
	last int64

	fault  error
	faults int
}

// Option configures a VirtualIO.
type Option func(*options)

type options struct {
	logger *slog.Logger
	length func() int64
}

// WithLogger sets the logger used to report swallowed callback faults.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLength fixes the length reported by a store built with FromStream.
// Use it for stores whose size is known up front and that cannot cheaply seek
// to their end.
func WithLength(n int64) Option {
	return func(o *options) {
		o.length = func() int64 { return n }
	}
}

// WithLengthFunc is like WithLength for stores whose size changes.
func WithLengthFunc(fn func() int64) Option {
	return func(o *options) {
		o.length = fn
	}
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// New binds five caller-supplied callbacks. All of them are required.
func New(cb Callbacks, opts ...Option) (*VirtualIO, error) {
	if name := cb.missing(); name != "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingCallback, name)
	}

	o := buildOptions(opts)
	return &VirtualIO{
		cb:     cb,
		logger: o.logger.With("component", "vio"),
	}, nil
}

// FromStream forwards the callbacks to a stream-like object. s must be able to
// seek; reading and writing are enabled when s also implements io.Reader or
// io.Writer.
func FromStream(s io.Seeker, opts ...Option) (*VirtualIO, error) {
	if s == nil {
		return nil, ErrNilStream
	}

	o := buildOptions(opts)
	v := &VirtualIO{
		logger: o.logger.With("component", "vio"),
	}
	st := &streamStore{s: s, v: v, fixedLen: o.length}
	st.r, _ = s.(io.Reader)
	st.w, _ = s.(io.Writer)

	v.cb = Callbacks{
		Length:   st.length,
		Seek:     st.seek,
		Read:     st.read,
		Write:    st.write,
		Position: st.position,
	}
	return v, nil
}

// Length calls the Length callback. A faulting callback reports 0.
func (v *VirtualIO) Length() (n int64) {
	defer func() {
		if r := recover(); r != nil {
			v.record("length", fmt.Errorf("%w: %v", ErrCallbackPanic, r))
			n = 0
		}
	}()

	n = v.cb.Length()
	if n < 0 {
		v.record("length", fmt.Errorf("%w: length %d", ErrBadResult, n))
		return 0
	}
	return n
}

// Seek calls the Seek callback. A faulting callback leaves the reported
// position unchanged.
func (v *VirtualIO) Seek(offset int64, whence int) (pos int64) {
	defer func() {
		if r := recover(); r != nil {
			v.record("seek", fmt.Errorf("%w: %v", ErrCallbackPanic, r))
			pos = v.last
		}
	}()

	pos = v.cb.Seek(offset, whence)
	if pos < 0 {
		v.record("seek", fmt.Errorf("%w: offset %d", ErrBadResult, pos))
		return v.last
	}
	v.last = pos
	return pos
}

// Read calls the Read callback. A faulting callback reports 0 bytes.
func (v *VirtualIO) Read(p []byte) (n int64) {
	if len(p) == 0 {
		return 0
	}

	defer func() {
		if r := recover(); r != nil {
			v.record("read", fmt.Errorf("%w: %v", ErrCallbackPanic, r))
			n = 0
		}
	}()

	n = v.cb.Read(p)
	if n < 0 || n > int64(len(p)) {
		v.record("read", fmt.Errorf("%w: read %d of %d", ErrBadResult, n, len(p)))
		return 0
	}
	v.last += n
	return n
}

// Write calls the Write callback. A faulting callback reports 0 bytes.
func (v *VirtualIO) Write(p []byte) (n int64) {
	if len(p) == 0 {
		return 0
	}

	defer func() {
		if r := recover(); r != nil {
			v.record("write", fmt.Errorf("%w: %v", ErrCallbackPanic, r))
			n = 0
		}
	}()

	n = v.cb.Write(p)
	if n < 0 || n > int64(len(p)) {
		v.record("write", fmt.Errorf("%w: wrote %d of %d", ErrBadResult, n, len(p)))
		return 0
	}
	v.last += n
	return n
}

// Position calls the Position callback. A faulting callback reports the last
// known position.
func (v *VirtualIO) Position() (pos int64) {
	defer func() {
		if r := recover(); r != nil {
			v.record("position", fmt.Errorf("%w: %v", ErrCallbackPanic, r))
			pos = v.last
		}
	}()

	pos = v.cb.Position()
	if pos < 0 {
		v.record("position", fmt.Errorf("%w: position %d", ErrBadResult, pos))
		return v.last
	}
	v.last = pos
	return pos
}

// Check reports ErrMissingCallback when v was not built by New or
// FromStream and lacks a callback. The zero VirtualIO fails the check.
func (v *VirtualIO) Check() error {
	if name := v.cb.missing(); name != "" {
		return fmt.Errorf("%w: %s", ErrMissingCallback, name)
	}
	return nil
}

// Err returns the most recent swallowed fault, if any.
func (v *VirtualIO) Err() error {
	return v.fault
}

// TakeErr returns the most recent swallowed fault and clears it.
func (v *VirtualIO) TakeErr() error {
	err := v.fault
	v.fault = nil
	return err
}

// Faults reports how many callback faults were swallowed so far.
func (v *VirtualIO) Faults() int {
	return v.faults
}

func (v *VirtualIO) record(op string, err error) {
	v.fault = err
	v.faults++

	logger := v.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("virtual io callback fault", "op", op, "err", err)
}

// File returns an io.ReadWriteSeeker view of v for codec libraries that work
// on Go streams. Zero progress is turned back into io.EOF, io.ErrShortWrite or
// the recorded fault.
func (v *VirtualIO) File() io.ReadWriteSeeker {
	return file{v: v}
}

type file struct {
	v *VirtualIO
}

func (f file) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	n := f.v.Read(p)
	if n == 0 {
		if err := f.v.TakeErr(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	return int(n), nil
}

func (f file) Write(p []byte) (int, error) {
	n := f.v.Write(p)
	if n < int64(len(p)) {
		if err := f.v.TakeErr(); err != nil {
			return int(n), err
		}
		return int(n), io.ErrShortWrite
	}
	return int(n), nil
}

func (f file) Seek(offset int64, whence int) (int64, error) {
	pos := f.v.Seek(offset, whence)
	if err := f.v.TakeErr(); err != nil {
		return pos, err
	}
	return pos, nil
}

// streamStore implements the callbacks over an io.Seeker.
type streamStore struct {
	s        io.Seeker
	r        io.Reader
	w        io.Writer
	v        *VirtualIO
	fixedLen func() int64
}

type sizer interface {
	Size() int64
}

func (st *streamStore) length() int64 {
	if st.fixedLen != nil {
		return st.fixedLen()
	}
	if sz, ok := st.s.(sizer); ok {
		return sz.Size()
	}

	cur, err := st.s.Seek(0, io.SeekCurrent)
	if err != nil {
		st.v.record("length", err)
		return 0
	}
	end, err := st.s.Seek(0, io.SeekEnd)
	if err != nil {
		st.v.record("length", err)
		return 0
	}
	if _, err := st.s.Seek(cur, io.SeekStart); err != nil {
		st.v.record("length", err)
	}
	return end
}

func (st *streamStore) seek(offset int64, whence int) int64 {
	pos, err := st.s.Seek(offset, whence)
	if err != nil {
		st.v.record("seek", err)
		return st.position()
	}
	return pos
}

func (st *streamStore) read(p []byte) int64 {
	if st.r == nil {
		return 0
	}

	n, err := io.ReadFull(st.r, p)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		st.v.record("read", err)
	}
	return int64(n)
}

func (st *streamStore) write(p []byte) int64 {
	if st.w == nil {
		return 0
	}

	n, err := st.w.Write(p)
	if err != nil {
		st.v.record("write", err)
	}
	return int64(n)
}

func (st *streamStore) position() int64 {
	pos, err := st.s.Seek(0, io.SeekCurrent)
	if err != nil {
		st.v.record("position", err)
		return st.v.last
	}
	return pos
}
