// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic frame sources, capturing sinks and
// in-memory fixtures for tests.
package audiotest

import (
	"fmt"
	"io"
	"math"

	"github.com/ik5/sndstream/audio"
)

// Source is an audio.FrameReader that generates frames from a waveform.
type Source struct {
	info     audio.Info
	pos      int64
	waveform func(frame, channel int) float64
	strings  map[audio.StringKind]string

	failAt  int64
	failErr error
}

// NewSource creates a seekable source of frames frames.
func NewSource(sampleRate, channels int, frames int64, waveform func(frame, channel int) float64) *Source {
	return &Source{
		info: audio.Info{
			Frames:     frames,
			SampleRate: sampleRate,
			Channels:   channels,
			Container:  audio.ContainerAU,
			Subtype:    audio.SubtypeDouble,
			Seekable:   true,
		},
		waveform: waveform,
		strings:  make(map[audio.StringKind]string),
		failAt:   -1,
	}
}

// NewSilentSource creates a source of zeros.
func NewSilentSource(sampleRate, channels int, frames int64) *Source {
	return NewSource(sampleRate, channels, frames, func(int, int) float64 {
		return 0
	})
}

// NewSineSource creates a source of a sine wave, identical on every channel.
func NewSineSource(sampleRate, channels int, frames int64, frequency float64) *Source {
	return NewSource(sampleRate, channels, frames, func(frame, _ int) float64 {
		t := float64(frame) / float64(sampleRate)
		return math.Sin(2 * math.Pi * frequency * t)
	})
}

// NewConstantSource creates a source with a constant value.
func NewConstantSource(sampleRate, channels int, frames int64, value float64) *Source {
	return NewSource(sampleRate, channels, frames, func(int, int) float64 {
		return value
	})
}

// NewRampSource creates a source whose 16-bit value encodes the frame index
// and channel, so a read can be traced back to its position.
func NewRampSource(sampleRate, channels int, frames int64) *Source {
	return NewSource(sampleRate, channels, frames, func(frame, channel int) float64 {
		return float64(int16(frame*channels+channel)) / 32768
	})
}

// FailAfter makes ReadFrames return err once frames frames were read.
func (s *Source) FailAfter(frames int64, err error) *Source {
	s.failAt = frames
	s.failErr = err
	return s
}

// SetString attaches a metadata string.
func (s *Source) SetString(kind audio.StringKind, value string) *Source {
	s.strings[kind] = value
	return s
}

// Samples returns every sample the source generates, interleaved.
func (s *Source) Samples() []float64 {
	ch := s.info.Channels
	out := make([]float64, int(s.info.Frames)*ch)
	for i := range out {
		out[i] = s.waveform(i/ch, i%ch)
	}
	return out
}

func (s *Source) Info() audio.Info { return s.info }

// Position returns the next frame to be read.
func (s *Source) Position() int64 { return s.pos }

func (s *Source) String(kind audio.StringKind) string { return s.strings[kind] }

func (s *Source) ReadFrames(dst []float64) (int, error) {
	ch := s.info.Channels
	if len(dst)%ch != 0 {
		return 0, fmt.Errorf("%w: %d samples, %d channels", audio.ErrInvalidOperation, len(dst), ch)
	}

	end := s.info.Frames
	if s.failAt >= 0 {
		end = min(end, s.failAt)
	}
	if s.pos >= end {
		if s.failAt >= 0 && s.pos >= s.failAt {
			return 0, s.failErr
		}
		return 0, io.EOF
	}

	frames := min(int64(len(dst)/ch), end-s.pos)
	for f := range int(frames) {
		for c := range ch {
			dst[f*ch+c] = s.waveform(int(s.pos)+f, c)
		}
	}
	s.pos += frames
	return int(frames), nil
}

func (s *Source) SeekFrame(frame int64) error {
	if frame < 0 || frame > s.info.Frames {
		return fmt.Errorf("%w: frame %d of %d", audio.ErrInvalidOperation, frame, s.info.Frames)
	}
	s.pos = frame
	return nil
}

// Sink is an audio.FrameWriter that keeps everything written to it.
type Sink struct {
	Info    audio.Info
	Samples []float64
	Strings map[audio.StringKind]string
	Flushes int
	Closed  bool

	failAt  int64
	failErr error
}

// NewSink creates an empty sink.
func NewSink() *Sink {
	return &Sink{
		Strings: make(map[audio.StringKind]string),
		failAt:  -1,
	}
}

// FailAfter makes WriteFrames accept at most frames frames, then return err.
func (s *Sink) FailAfter(frames int64, err error) *Sink {
	s.failAt = frames
	s.failErr = err
	return s
}

// Frames returns the number of frames written.
func (s *Sink) Frames() int64 {
	if s.Info.Channels == 0 {
		return 0
	}
	return int64(len(s.Samples) / s.Info.Channels)
}

func (s *Sink) WriteFrames(src []float64) (int, error) {
	ch := s.Info.Channels
	frames := int64(len(src) / ch)

	if s.failAt >= 0 && s.Frames()+frames > s.failAt {
		room := max(s.failAt-s.Frames(), 0)
		s.Samples = append(s.Samples, src[:room*int64(ch)]...)
		return int(room), s.failErr
	}

	s.Samples = append(s.Samples, src...)
	return int(frames), nil
}

func (s *Sink) SetString(kind audio.StringKind, value string) error {
	s.Strings[kind] = value
	return nil
}

func (s *Sink) Flush() error {
	s.Flushes++
	return nil
}

func (s *Sink) Close() error {
	s.Closed = true
	return nil
}

// Codec serves Source for decoding and Sink for encoding. It claims the AU
// container unless Format is set, and never probes.
type Codec struct {
	Format audio.Container
	Source *Source
	Sink   *Sink
}

func (c Codec) Container() audio.Container {
	if c.Format == 0 {
		return audio.ContainerAU
	}
	return c.Format
}

func (c Codec) Probe([]byte) bool { return false }

func (c Codec) Decode(io.ReadSeeker, audio.Info) (audio.FrameReader, error) {
	if c.Source == nil {
		return nil, audio.ErrUnrecognizedFormat
	}
	return c.Source, nil
}

func (c Codec) Check(audio.Info) bool { return c.Sink != nil }

func (c Codec) Encode(_ io.WriteSeeker, info audio.Info) (audio.FrameWriter, error) {
	if c.Sink == nil {
		return nil, audio.ErrFormatUnsupported
	}
	c.Sink.Info = info
	return c.Sink, nil
}
