// SPDX-License-Identifier: EPL-2.0

//go:build cgo && sndfile

package native

/*
#cgo pkg-config: sndfile
#include <sndfile.h>
#include <stdint.h>
#include <stdlib.h>

extern sf_count_t goVioLength(void *user);
extern sf_count_t goVioSeek(sf_count_t offset, int whence, void *user);
extern sf_count_t goVioRead(void *ptr, sf_count_t count, void *user);
extern sf_count_t goVioWrite(void *ptr, sf_count_t count, void *user);
extern sf_count_t goVioTell(void *user);

static sf_count_t vio_write(const void *ptr, sf_count_t count, void *user) {
	return goVioWrite((void *)ptr, count, user);
}

static SF_VIRTUAL_IO go_vio = {
	goVioLength,
	goVioSeek,
	goVioRead,
	vio_write,
	goVioTell,
};

static SNDFILE *open_virtual(int mode, SF_INFO *info, uintptr_t handle) {
	return sf_open_virtual(&go_vio, mode, info, (void *)handle);
}
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

func init() {
	audio.Register(New())
}

// Available reports whether the binding was compiled in.
func Available() bool { return true }

// Version returns the libsndfile version string.
func Version() string {
	return C.GoString(C.sf_version_string())
}

// Engine implements audio.Engine on libsndfile.
type Engine struct {
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	e.logger = e.logger.With("engine", Name)
	return e
}

func (e *Engine) Name() string { return Name }

func (e *Engine) OpenPath(path string, mode audio.Mode, info *audio.Info) (audio.Handle, error) {
	if info == nil {
		info = &audio.Info{}
	}
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	cinfo := toC(*info)
	sf := C.sf_open(cpath, C.int(mode), &cinfo)
	if sf == nil {
		return nil, openError(nil)
	}

	*info = fromC(cinfo, mode)
	e.logger.Debug("opened path", "path", path, "mode", mode, "format", info.Format())
	return newHandle(sf, mode, *info, nil, 0, e.logger), nil
}

func (e *Engine) OpenVirtual(v *vio.VirtualIO, mode audio.Mode, info *audio.Info) (audio.Handle, error) {
	if v == nil {
		return nil, ErrNilVirtualIO
	}
	if info == nil {
		info = &audio.Info{}
	}

	pin := cgo.NewHandle(v)
	cinfo := toC(*info)
	sf := C.open_virtual(C.int(mode), &cinfo, C.uintptr_t(pin))
	if sf == nil {
		pin.Delete()
		return nil, openError(v)
	}

	*info = fromC(cinfo, mode)
	e.logger.Debug("opened virtual io", "mode", mode, "format", info.Format())
	return newHandle(sf, mode, *info, v, pin, e.logger), nil
}

func (e *Engine) FormatCheck(info audio.Info) bool {
	cinfo := toC(info)
	return C.sf_format_check(&cinfo) != 0
}

func (e *Engine) ErrorMessage(code audio.ErrorCode) string {
	return C.GoString(C.sf_error_number(C.int(code)))
}

func toC(info audio.Info) C.SF_INFO {
	return C.SF_INFO{
		frames:     C.sf_count_t(info.Frames),
		samplerate: C.int(info.SampleRate),
		channels:   C.int(info.Channels),
		format:     C.int(info.Format()),
	}
}

func fromC(cinfo C.SF_INFO, mode audio.Mode) audio.Info {
	info := audio.Info{
		Frames:     int64(cinfo.frames),
		SampleRate: int(cinfo.samplerate),
		Channels:   int(cinfo.channels),
		Seekable:   cinfo.seekable != 0,
	}
	info.SetFormat(audio.Format(cinfo.format))
	if mode == audio.ModeWrite {
		info.Frames = 0
	}
	return info
}

// openError reports the global libsndfile error left by a failed open.
func openError(v *vio.VirtualIO) error {
	code := audio.ErrorCode(C.sf_error(nil))
	msg := C.GoString(C.sf_strerror(nil))
	if v != nil {
		if fault := v.TakeErr(); fault != nil {
			return audio.NewEngineError(audio.CodeSystem, fmt.Sprintf("%s (%v)", msg, fault))
		}
	}
	if code == audio.CodeNone {
		code = audio.CodeSystem
	}
	return audio.NewEngineError(code, msg)
}
