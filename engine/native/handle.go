// SPDX-License-Identifier: EPL-2.0

//go:build cgo && sndfile

package native

/*
#cgo pkg-config: sndfile
#include <sndfile.h>
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"log/slog"
	"runtime/cgo"
	"unsafe"

	"github.com/ik5/sndstream/audio"
	"github.com/ik5/sndstream/vio"
)

// handle implements audio.Handle over a SNDFILE pointer.
type handle struct {
	sf     *C.SNDFILE
	mode   audio.Mode
	info   audio.Info
	v      *vio.VirtualIO
	pin    cgo.Handle
	logger *slog.Logger

	code   audio.ErrorCode
	closed bool
}

func newHandle(sf *C.SNDFILE, mode audio.Mode, info audio.Info, v *vio.VirtualIO, pin cgo.Handle, logger *slog.Logger) *handle {
	return &handle{
		sf:     sf,
		mode:   mode,
		info:   info,
		v:      v,
		pin:    pin,
		logger: logger,
	}
}

// failure converts the session error into an EngineError.
func (h *handle) failure() error {
	code := audio.ErrorCode(C.sf_error(h.sf))
	if code == audio.CodeNone {
		return nil
	}
	msg := C.GoString(C.sf_strerror(h.sf))
	if h.v != nil {
		if fault := h.v.TakeErr(); fault != nil {
			code = audio.CodeSystem
			msg = fmt.Sprintf("%s (%v)", msg, fault)
		}
	}
	h.code = code
	return audio.NewEngineError(code, msg)
}

func (h *handle) check(mode audio.Mode, samples int) (C.sf_count_t, error) {
	if h.closed {
		return 0, audio.ErrClosed
	}
	if h.mode != mode {
		return 0, fmt.Errorf("%w: session opened for %s", ErrWrongMode, h.mode)
	}
	if samples%h.info.Channels != 0 {
		return 0, fmt.Errorf("%w: %d samples, %d channels", ErrUnaligned, samples, h.info.Channels)
	}
	return C.sf_count_t(samples / h.info.Channels), nil
}

// done finishes a transfer of want frames that moved n.
func (h *handle) done(n, want C.sf_count_t) (int64, error) {
	if n < want {
		if err := h.failure(); err != nil {
			return int64(n), err
		}
	}
	return int64(n), nil
}

func (h *handle) Seek(frames int64, whence int) (int64, error) {
	if h.closed {
		return 0, audio.ErrClosed
	}
	pos := C.sf_seek(h.sf, C.sf_count_t(frames), C.int(whence))
	if pos < 0 {
		return 0, fmt.Errorf("%w: %s", ErrSeek, C.GoString(C.sf_strerror(h.sf)))
	}
	return int64(pos), nil
}

func (h *handle) ReadInt16(buf []int16) (int64, error) {
	want, err := h.check(audio.ModeRead, len(buf))
	if err != nil || want == 0 {
		return 0, err
	}
	n := C.sf_readf_short(h.sf, (*C.short)(unsafe.Pointer(&buf[0])), want)
	return h.done(n, want)
}

func (h *handle) ReadInt32(buf []int32) (int64, error) {
	want, err := h.check(audio.ModeRead, len(buf))
	if err != nil || want == 0 {
		return 0, err
	}
	n := C.sf_readf_int(h.sf, (*C.int)(unsafe.Pointer(&buf[0])), want)
	return h.done(n, want)
}

func (h *handle) ReadFloat32(buf []float32) (int64, error) {
	want, err := h.check(audio.ModeRead, len(buf))
	if err != nil || want == 0 {
		return 0, err
	}
	n := C.sf_readf_float(h.sf, (*C.float)(unsafe.Pointer(&buf[0])), want)
	return h.done(n, want)
}

func (h *handle) ReadFloat64(buf []float64) (int64, error) {
	want, err := h.check(audio.ModeRead, len(buf))
	if err != nil || want == 0 {
		return 0, err
	}
	n := C.sf_readf_double(h.sf, (*C.double)(unsafe.Pointer(&buf[0])), want)
	return h.done(n, want)
}

func (h *handle) WriteInt16(buf []int16) (int64, error) {
	want, err := h.check(audio.ModeWrite, len(buf))
	if err != nil || want == 0 {
		return 0, err
	}
	n := C.sf_writef_short(h.sf, (*C.short)(unsafe.Pointer(&buf[0])), want)
	return h.done(n, want)
}

func (h *handle) WriteInt32(buf []int32) (int64, error) {
	want, err := h.check(audio.ModeWrite, len(buf))
	if err != nil || want == 0 {
		return 0, err
	}
	n := C.sf_writef_int(h.sf, (*C.int)(unsafe.Pointer(&buf[0])), want)
	return h.done(n, want)
}

func (h *handle) WriteFloat32(buf []float32) (int64, error) {
	want, err := h.check(audio.ModeWrite, len(buf))
	if err != nil || want == 0 {
		return 0, err
	}
	n := C.sf_writef_float(h.sf, (*C.float)(unsafe.Pointer(&buf[0])), want)
	return h.done(n, want)
}

func (h *handle) WriteFloat64(buf []float64) (int64, error) {
	want, err := h.check(audio.ModeWrite, len(buf))
	if err != nil || want == 0 {
		return 0, err
	}
	n := C.sf_writef_double(h.sf, (*C.double)(unsafe.Pointer(&buf[0])), want)
	return h.done(n, want)
}

func (h *handle) String(kind audio.StringKind) string {
	if h.closed {
		return ""
	}
	s := C.sf_get_string(h.sf, C.int(kind))
	if s == nil {
		return ""
	}
	return C.GoString(s)
}

func (h *handle) SetString(kind audio.StringKind, value string) error {
	if h.closed {
		return audio.ErrClosed
	}
	if h.mode != audio.ModeWrite {
		return fmt.Errorf("%w: session opened for %s", ErrWrongMode, h.mode)
	}

	cs := C.CString(value)
	defer C.free(unsafe.Pointer(cs))

	if rc := C.sf_set_string(h.sf, C.int(kind), cs); rc != 0 {
		return fmt.Errorf("%w: %s", audio.ErrInvalidOperation, C.GoString(C.sf_error_number(rc)))
	}
	return nil
}

func (h *handle) Flush() error {
	if h.closed {
		return audio.ErrClosed
	}
	if h.mode == audio.ModeWrite {
		C.sf_write_sync(h.sf)
		return h.failure()
	}
	return nil
}

func (h *handle) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true

	rc := C.sf_close(h.sf)
	h.sf = nil
	if h.pin != 0 {
		h.pin.Delete()
		h.pin = 0
	}
	h.logger.Debug("session closed", "mode", h.mode)

	if rc != 0 {
		h.code = audio.ErrorCode(rc)
		return audio.NewEngineError(h.code, C.GoString(C.sf_error_number(rc)))
	}
	return nil
}

func (h *handle) Error() audio.ErrorCode {
	return h.code
}
