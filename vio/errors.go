// SPDX-License-Identifier: EPL-2.0

package vio

import "errors"

var (
	// ErrMissingCallback is returned by New and Check when one of the five
	// callbacks is nil.
	ErrMissingCallback = errors.New("missing virtual io callback")

	// ErrNilStream is returned by FromStream for a nil backing store.
	ErrNilStream = errors.New("nil backing stream")

	// ErrCallbackPanic records a callback that panicked.
	ErrCallbackPanic = errors.New("virtual io callback panicked")

	// ErrBadResult records a callback that returned an impossible value.
	ErrBadResult = errors.New("virtual io callback returned an invalid result")

	// ErrNegativeOffset is returned when a seek would move before the start.
	ErrNegativeOffset = errors.New("negative offset")

	// ErrInvalidWhence is returned for a whence other than io.SeekStart,
	// io.SeekCurrent or io.SeekEnd.
	ErrInvalidWhence = errors.New("invalid whence")
)
