// SPDX-License-Identifier: EPL-2.0

// Package stream adapts a frame-oriented codec session into a byte stream.
//
// A Stream implements io.Reader, io.Writer, io.Seeker and io.Closer. Bytes
// hold interleaved samples of the SampleKind chosen at open time in native
// byte order, so one frame is Channels × kind.Width() bytes. Reads and
// writes move whole frames only:
//
//	s, err := stream.OpenRead("voice.wav", audio.Int16)
//	if err != nil {
//		return err
//	}
//	defer s.Close()
//
//	buf := make([]byte, 4096)
//	n, err := s.Read(buf) // n is a multiple of s.BytesPerFrame()
//
// Seek converts byte offsets to frames by integer division, so an offset
// that is not frame aligned rounds down to the previous whole frame.
//
// # Virtual I/O
//
// OpenReadVirtual and OpenWriteVirtual take a *vio.VirtualIO instead of a
// path. The Stream keeps the binding reachable until its session is closed
// and only then releases it.
//
// # Failures
//
// Capability mismatches, such as writing to a read stream, fail with errors
// wrapping audio.ErrInvalidOperation and leave the stream usable. A failure
// reported by the engine closes the session and leaves the stream dead.
//
// A Stream is not safe for concurrent use. Distinct streams are independent.
package stream
