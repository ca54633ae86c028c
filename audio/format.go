// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"strings"
)

// Format packs a container, a subtype and an endianness into one code using
// the libsndfile layout, so codes pass unchanged to a native engine.
type Format int

const (
	SubtypeMask   Format = 0x0000FFFF
	ContainerMask Format = 0x0FFF0000
	EndianMask    Format = 0x30000000
)

// MakeFormat combines the three parts of a format code.
func MakeFormat(c Container, s Subtype, e Endian) Format {
	return Format(c) | Format(s) | Format(e)
}

func (f Format) Container() Container { return Container(f & ContainerMask) }
func (f Format) Subtype() Subtype     { return Subtype(f & SubtypeMask) }
func (f Format) Endian() Endian       { return Endian(f & EndianMask) }

func (f Format) String() string {
	s := f.Container().String() + "/" + f.Subtype().String()
	if e := f.Endian(); e != EndianFile {
		s += "/" + e.String()
	}
	return s
}

// Container is the major format, the file layout wrapping the samples.
type Container int

const (
	ContainerWAV  Container = 0x010000
	ContainerAIFF Container = 0x020000
	ContainerAU   Container = 0x030000
	ContainerRAW  Container = 0x040000
	ContainerFLAC Container = 0x170000
	ContainerOGG  Container = 0x200000
	ContainerMPEG Container = 0x230000
)

var containerNames = map[Container]string{
	ContainerWAV:  "wav",
	ContainerAIFF: "aiff",
	ContainerAU:   "au",
	ContainerRAW:  "raw",
	ContainerFLAC: "flac",
	ContainerOGG:  "ogg",
	ContainerMPEG: "mpeg",
}

func (c Container) String() string {
	if name, ok := containerNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Container(%#x)", int(c))
}

// Extension returns the usual file extension for c, without the dot.
func (c Container) Extension() string {
	switch c {
	case ContainerMPEG:
		return "mp3"
	case ContainerRAW:
		return "pcm"
	}
	return c.String()
}

// ParseContainer accepts the names returned by Container.String and the
// common file extensions ("wave", "aif", "mp3", "oga", "pcm").
func ParseContainer(s string) (Container, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")
	switch s {
	case "wave":
		return ContainerWAV, nil
	case "aif", "aifc":
		return ContainerAIFF, nil
	case "snd":
		return ContainerAU, nil
	case "pcm":
		return ContainerRAW, nil
	case "mp3":
		return ContainerMPEG, nil
	case "oga", "vorbis":
		return ContainerOGG, nil
	}
	for c, name := range containerNames {
		if name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: container %q", ErrUnrecognizedFormat, s)
}

// Subtype is the minor format, the encoding of the samples.
type Subtype int

const (
	SubtypePCMS8        Subtype = 0x0001
	SubtypePCM16        Subtype = 0x0002
	SubtypePCM24        Subtype = 0x0003
	SubtypePCM32        Subtype = 0x0004
	SubtypePCMU8        Subtype = 0x0005
	SubtypeFloat        Subtype = 0x0006
	SubtypeDouble       Subtype = 0x0007
	SubtypeULaw         Subtype = 0x0010
	SubtypeALaw         Subtype = 0x0011
	SubtypeVorbis       Subtype = 0x0060
	SubtypeMPEGLayerIII Subtype = 0x0082
)

var subtypeNames = map[Subtype]string{
	SubtypePCMS8:        "pcm_s8",
	SubtypePCM16:        "pcm_16",
	SubtypePCM24:        "pcm_24",
	SubtypePCM32:        "pcm_32",
	SubtypePCMU8:        "pcm_u8",
	SubtypeFloat:        "float",
	SubtypeDouble:       "double",
	SubtypeULaw:         "ulaw",
	SubtypeALaw:         "alaw",
	SubtypeVorbis:       "vorbis",
	SubtypeMPEGLayerIII: "mpeg_layer_iii",
}

func (s Subtype) String() string {
	if name, ok := subtypeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Subtype(%#x)", int(s))
}

// ParseSubtype accepts the names returned by Subtype.String. "pcm16",
// "s16", "f32", "f64" and "mp3" are accepted as aliases.
func ParseSubtype(s string) (Subtype, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "s8", "pcm8":
		return SubtypePCMS8, nil
	case "u8":
		return SubtypePCMU8, nil
	case "s16", "pcm16":
		return SubtypePCM16, nil
	case "s24", "pcm24":
		return SubtypePCM24, nil
	case "s32", "pcm32":
		return SubtypePCM32, nil
	case "f32", "float32":
		return SubtypeFloat, nil
	case "f64", "float64":
		return SubtypeDouble, nil
	case "mp3":
		return SubtypeMPEGLayerIII, nil
	}
	for st, name := range subtypeNames {
		if name == s {
			return st, nil
		}
	}
	return 0, fmt.Errorf("%w: subtype %q", ErrUnsupportedEncoding, s)
}

// BitDepth returns the stored bits per sample of a linear subtype, or 0 for
// compressed and unknown subtypes.
func (s Subtype) BitDepth() int {
	switch s {
	case SubtypePCMS8, SubtypePCMU8:
		return 8
	case SubtypePCM16:
		return 16
	case SubtypePCM24:
		return 24
	case SubtypePCM32, SubtypeFloat:
		return 32
	case SubtypeDouble:
		return 64
	default:
		return 0
	}
}

// IsFloat reports whether s stores IEEE floating point samples.
func (s Subtype) IsFloat() bool {
	return s == SubtypeFloat || s == SubtypeDouble
}

// IsLinear reports whether s stores uncompressed samples of a fixed width.
func (s Subtype) IsLinear() bool {
	return s.BitDepth() != 0
}

// Endian selects the byte order of the stored samples.
type Endian int

const (
	EndianFile   Endian = 0x00000000
	EndianLittle Endian = 0x10000000
	EndianBig    Endian = 0x20000000
	EndianCPU    Endian = 0x30000000
)

func (e Endian) String() string {
	switch e {
	case EndianFile:
		return "file"
	case EndianLittle:
		return "little"
	case EndianBig:
		return "big"
	case EndianCPU:
		return "cpu"
	default:
		return fmt.Sprintf("Endian(%#x)", int(e))
	}
}
