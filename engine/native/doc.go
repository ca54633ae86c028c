// SPDX-License-Identifier: EPL-2.0

// Package native binds libsndfile through cgo and exposes it as an
// audio.Engine named "native".
//
// The binding is only compiled with cgo and the sndfile build tag:
//
//	go build -tags sndfile ./...
//
// libsndfile is located with pkg-config. Without the tag the package builds
// a stub whose Available reports false and whose open calls fail with
// ErrUnavailable, and nothing is registered.
//
// Virtual I/O sessions pin their *vio.VirtualIO in a runtime/cgo.Handle that
// is passed to sf_open_virtual as user data and deleted after sf_close.
// Callbacks re-enter Go through the safe vio entry points, so a panicking
// or failing store never unwinds across C frames.
package native
