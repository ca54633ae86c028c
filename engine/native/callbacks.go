// SPDX-License-Identifier: EPL-2.0

//go:build cgo && sndfile

package native

/*
#cgo pkg-config: sndfile
#include <sndfile.h>
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	"github.com/ik5/sndstream/vio"
)

func bindingOf(user unsafe.Pointer) *vio.VirtualIO {
	return cgo.Handle(uintptr(user)).Value().(*vio.VirtualIO)
}

//export goVioLength
func goVioLength(user unsafe.Pointer) C.sf_count_t {
	return C.sf_count_t(bindingOf(user).Length())
}

//export goVioSeek
func goVioSeek(offset C.sf_count_t, whence C.int, user unsafe.Pointer) C.sf_count_t {
	return C.sf_count_t(bindingOf(user).Seek(int64(offset), int(whence)))
}

//export goVioRead
func goVioRead(ptr unsafe.Pointer, count C.sf_count_t, user unsafe.Pointer) C.sf_count_t {
	if count <= 0 {
		return 0
	}
	buf := unsafe.Slice((*byte)(ptr), int(count))
	return C.sf_count_t(bindingOf(user).Read(buf))
}

//export goVioWrite
func goVioWrite(ptr unsafe.Pointer, count C.sf_count_t, user unsafe.Pointer) C.sf_count_t {
	if count <= 0 {
		return 0
	}
	buf := unsafe.Slice((*byte)(ptr), int(count))
	return C.sf_count_t(bindingOf(user).Write(buf))
}

//export goVioTell
func goVioTell(user unsafe.Pointer) C.sf_count_t {
	return C.sf_count_t(bindingOf(user).Position())
}
