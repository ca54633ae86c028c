// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"
)

// Info describes an open sound. The engine fills it in when reading; the
// caller supplies it when writing, with Frames left at zero.
type Info struct {
	Frames     int64
	SampleRate int
	Channels   int
	Container  Container
	Subtype    Subtype
	Endian     Endian
	Seekable   bool
}

// Format returns the packed format code.
func (i Info) Format() Format {
	return MakeFormat(i.Container, i.Subtype, i.Endian)
}

// SetFormat unpacks f into the container, subtype and endian fields.
func (i *Info) SetFormat(f Format) {
	i.Container = f.Container()
	i.Subtype = f.Subtype()
	i.Endian = f.Endian()
}

// Duration returns the play time of Frames at SampleRate.
func (i Info) Duration() time.Duration {
	if i.SampleRate <= 0 || i.Frames <= 0 {
		return 0
	}
	sec := i.Frames / int64(i.SampleRate)
	rem := i.Frames % int64(i.SampleRate)
	return time.Duration(sec)*time.Second +
		time.Duration(rem)*time.Second/time.Duration(i.SampleRate)
}

// Validate checks the fields a writer needs. Unknown format combinations are
// left to the engine's format check.
func (i Info) Validate() error {
	switch {
	case i.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrFormatUnsupported, i.SampleRate)
	case i.Channels <= 0:
		return fmt.Errorf("%w: channel count %d", ErrFormatUnsupported, i.Channels)
	case i.Container == 0:
		return fmt.Errorf("%w: no container", ErrFormatUnsupported)
	case i.Subtype == 0:
		return fmt.Errorf("%w: no subtype", ErrFormatUnsupported)
	}
	return nil
}

func (i Info) String() string {
	return fmt.Sprintf("%s %d Hz %d ch %d frames", i.Format(), i.SampleRate, i.Channels, i.Frames)
}
