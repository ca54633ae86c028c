// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"
)

func TestMakeFormat_Split(t *testing.T) {
	t.Parallel()

	f := MakeFormat(ContainerWAV, SubtypePCM16, EndianLittle)
	if f != 0x10010002 {
		t.Errorf("MakeFormat() = %#x, want 0x10010002", int(f))
	}
	if f.Container() != ContainerWAV {
		t.Errorf("Container() = %v", f.Container())
	}
	if f.Subtype() != SubtypePCM16 {
		t.Errorf("Subtype() = %v", f.Subtype())
	}
	if f.Endian() != EndianLittle {
		t.Errorf("Endian() = %v", f.Endian())
	}
	if got := f.String(); got != "wav/pcm_16/little" {
		t.Errorf("String() = %q", got)
	}
}

func TestFormat_LibsndfileCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  Format
		want int
	}{
		{"wav pcm16", MakeFormat(ContainerWAV, SubtypePCM16, EndianFile), 0x010002},
		{"aiff pcm24", MakeFormat(ContainerAIFF, SubtypePCM24, EndianFile), 0x020003},
		{"wav float", MakeFormat(ContainerWAV, SubtypeFloat, EndianFile), 0x010006},
		{"ogg vorbis", MakeFormat(ContainerOGG, SubtypeVorbis, EndianFile), 0x200060},
		{"mpeg layer iii", MakeFormat(ContainerMPEG, SubtypeMPEGLayerIII, EndianFile), 0x230082},
		{"raw big", MakeFormat(ContainerRAW, SubtypePCM32, EndianBig), 0x20040004},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if int(tt.got) != tt.want {
				t.Errorf("format = %#x, want %#x", int(tt.got), tt.want)
			}
		})
	}
}

func TestParseContainer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Container
	}{
		{"wav", ContainerWAV},
		{".WAV", ContainerWAV},
		{"wave", ContainerWAV},
		{"aif", ContainerAIFF},
		{"aiff", ContainerAIFF},
		{"mp3", ContainerMPEG},
		{"ogg", ContainerOGG},
		{"pcm", ContainerRAW},
		{"flac", ContainerFLAC},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseContainer(tt.in)
			if err != nil {
				t.Fatalf("ParseContainer() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseContainer() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := ParseContainer("midi"); !errors.Is(err, ErrUnrecognizedFormat) {
		t.Errorf("ParseContainer(midi) error = %v, want ErrUnrecognizedFormat", err)
	}
}

func TestParseSubtype(t *testing.T) {
	t.Parallel()

	for st, name := range subtypeNames {
		got, err := ParseSubtype(name)
		if err != nil || got != st {
			t.Errorf("ParseSubtype(%q) = %v, %v; want %v", name, got, err, st)
		}
	}

	if got, _ := ParseSubtype("s24"); got != SubtypePCM24 {
		t.Errorf("ParseSubtype(s24) = %v", got)
	}
	if _, err := ParseSubtype("gsm610"); !errors.Is(err, ErrUnsupportedEncoding) {
		t.Errorf("ParseSubtype(gsm610) error = %v", err)
	}
}

func TestSubtype_BitDepth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		st     Subtype
		bits   int
		float  bool
		linear bool
	}{
		{SubtypePCMS8, 8, false, true},
		{SubtypePCMU8, 8, false, true},
		{SubtypePCM16, 16, false, true},
		{SubtypePCM24, 24, false, true},
		{SubtypePCM32, 32, false, true},
		{SubtypeFloat, 32, true, true},
		{SubtypeDouble, 64, true, true},
		{SubtypeVorbis, 0, false, false},
		{SubtypeULaw, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.st.String(), func(t *testing.T) {
			t.Parallel()

			if got := tt.st.BitDepth(); got != tt.bits {
				t.Errorf("BitDepth() = %d, want %d", got, tt.bits)
			}
			if got := tt.st.IsFloat(); got != tt.float {
				t.Errorf("IsFloat() = %v, want %v", got, tt.float)
			}
			if got := tt.st.IsLinear(); got != tt.linear {
				t.Errorf("IsLinear() = %v, want %v", got, tt.linear)
			}
		})
	}
}
