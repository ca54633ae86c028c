// SPDX-License-Identifier: EPL-2.0

package sndstream

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ik5/sndstream/audio"
	"github.com/ik5/sndstream/internal/audiotest"
	"github.com/ik5/sndstream/stream"
	"github.com/ik5/sndstream/vio"
)

func readBack(t *testing.T, data []byte, kind audio.SampleKind) (audio.Info, []byte) {
	t.Helper()

	s, err := stream.OpenReadMemory(data, kind)
	if err != nil {
		t.Fatalf("OpenReadMemory() error = %v", err)
	}
	defer s.Close()

	got, err := io.ReadAll(s)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	return s.Info(), got
}

func TestCopyBuffer(t *testing.T) {
	t.Parallel()

	const channels, frames = 2, 1000
	samples := audiotest.Ramp16(frames, channels)

	tests := []struct {
		name string
		buf  []byte
	}{
		{"default", nil},
		{"shorter than a frame", make([]byte, 3)},
		{"partial frame", make([]byte, 6)},
		{"odd size", make([]byte, 1001)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, err := stream.OpenReadMemory(audiotest.PCM16WAV(8000, channels, samples), audio.Int16)
			if err != nil {
				t.Fatalf("OpenReadMemory() error = %v", err)
			}
			defer src.Close()

			buf := vio.NewBuffer(nil)
			dst, err := stream.CreateMemoryWAV(buf, 8000, channels, audio.SubtypePCM16, audio.Int16)
			if err != nil {
				t.Fatalf("CreateMemoryWAV() error = %v", err)
			}

			n, err := CopyBuffer(dst, src, tt.buf)
			if err != nil {
				t.Fatalf("CopyBuffer() error = %v", err)
			}
			if n != frames {
				t.Errorf("CopyBuffer() = %d frames, want %d", n, frames)
			}
			if err := dst.Close(); err != nil {
				t.Fatalf("Close() error = %v", err)
			}

			_, got := readBack(t, buf.Bytes(), audio.Int16)
			if diff := cmp.Diff(audiotest.Int16Bytes(samples), got); diff != "" {
				t.Errorf("copied samples mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCopy_FrameMismatch(t *testing.T) {
	t.Parallel()

	data := audiotest.PCM16WAV(8000, 1, audiotest.Ramp16(10, 1))

	tests := []struct {
		name     string
		kind     audio.SampleKind
		channels int
	}{
		{"kind", audio.Float32, 1},
		{"channels", audio.Int16, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, err := stream.OpenReadMemory(data, audio.Int16)
			if err != nil {
				t.Fatalf("OpenReadMemory() error = %v", err)
			}
			defer src.Close()

			dst, err := stream.CreateMemoryWAV(vio.NewBuffer(nil), 8000, tt.channels, audio.SubtypePCM16, tt.kind)
			if err != nil {
				t.Fatalf("CreateMemoryWAV() error = %v", err)
			}
			defer dst.Close()

			_, err = Copy(dst, src)
			if !errors.Is(err, ErrFrameMismatch) {
				t.Errorf("Copy() error = %v, want ErrFrameMismatch", err)
			}
			if !errors.Is(err, audio.ErrInvalidOperation) {
				t.Errorf("Copy() error = %v, want ErrInvalidOperation", err)
			}
		})
	}
}

func TestCopy_ClosedDestination(t *testing.T) {
	t.Parallel()

	src, err := stream.OpenReadMemory(audiotest.PCM16WAV(8000, 1, audiotest.Ramp16(10, 1)), audio.Int16)
	if err != nil {
		t.Fatalf("OpenReadMemory() error = %v", err)
	}
	defer src.Close()

	dst, err := stream.CreateMemoryWAV(vio.NewBuffer(nil), 8000, 1, audio.SubtypePCM16, audio.Int16)
	if err != nil {
		t.Fatalf("CreateMemoryWAV() error = %v", err)
	}
	dst.Close()

	n, err := Copy(dst, src)
	if !errors.Is(err, audio.ErrClosed) {
		t.Errorf("Copy() error = %v, want ErrClosed", err)
	}
	if n != 0 {
		t.Errorf("Copy() = %d frames, want 0", n)
	}
}

func TestConvertFile(t *testing.T) {
	t.Parallel()

	const channels, frames = 2, 500
	samples := audiotest.Ramp16(frames, channels)

	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	if err := os.WriteFile(in, audiotest.PCM16WAV(16000, channels, samples), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		out  string
		to   audio.Info
		want audio.Info
	}{
		{
			name: "container from extension",
			out:  "out.aiff",
			want: audio.Info{
				Frames: frames, SampleRate: 16000, Channels: channels,
				Container: audio.ContainerAIFF, Subtype: audio.SubtypePCM16, Seekable: true,
			},
		},
		{
			name: "explicit subtype",
			out:  "out.wav",
			to:   audio.Info{Subtype: audio.SubtypePCM32},
			want: audio.Info{
				Frames: frames, SampleRate: 16000, Channels: channels,
				Container: audio.ContainerWAV, Subtype: audio.SubtypePCM32, Seekable: true,
			},
		},
		{
			name: "rate comes from the source",
			out:  "rate.wav",
			to:   audio.Info{SampleRate: 8000},
			want: audio.Info{
				Frames: frames, SampleRate: 16000, Channels: channels,
				Container: audio.ContainerWAV, Subtype: audio.SubtypePCM16, Seekable: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := filepath.Join(dir, tt.out)
			n, err := ConvertFile(out, in, tt.to, audio.Int16)
			if err != nil {
				t.Fatalf("ConvertFile() error = %v", err)
			}
			if n != frames {
				t.Errorf("ConvertFile() = %d frames, want %d", n, frames)
			}

			data, err := os.ReadFile(out)
			if err != nil {
				t.Fatal(err)
			}
			info, got := readBack(t, data, audio.Int16)
			info.Endian = 0
			if diff := cmp.Diff(tt.want, info); diff != "" {
				t.Errorf("Info mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(audiotest.Int16Bytes(samples), got); diff != "" {
				t.Errorf("converted samples mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConvertFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	if err := os.WriteFile(in, audiotest.PCM16WAV(8000, 1, audiotest.Ramp16(10, 1)), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		in   string
		out  string
		want error
	}{
		{"unknown extension", in, filepath.Join(dir, "out.xyz"), audio.ErrUnrecognizedFormat},
		{"missing source", filepath.Join(dir, "none.wav"), filepath.Join(dir, "out.wav"), audio.ErrSystem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ConvertFile(tt.out, tt.in, audio.Info{}, audio.Int16)
			if !errors.Is(err, tt.want) {
				t.Errorf("ConvertFile() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func BenchmarkCopy(b *testing.B) {
	data := audiotest.PCM16WAV(44100, 2, audiotest.Ramp16(44100, 2))
	buf := vio.NewBuffer(make([]byte, 0, len(data)))

	for b.Loop() {
		src, err := stream.OpenReadMemory(data, audio.Int16)
		if err != nil {
			b.Fatal(err)
		}
		buf.Reset()
		dst, err := stream.CreateMemoryWAV(buf, 44100, 2, audio.SubtypePCM16, audio.Int16)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := Copy(dst, src); err != nil {
			b.Fatal(err)
		}
		dst.Close()
		src.Close()
	}
}

func TestCopyStrings(t *testing.T) {
	t.Parallel()

	tagged := vio.NewBuffer(nil)
	w, err := stream.CreateMemoryWAV(tagged, 8000, 1, audio.SubtypePCM16, audio.Int16)
	if err != nil {
		t.Fatalf("CreateMemoryWAV() error = %v", err)
	}
	w.SetTitle("Take 3")
	w.SetArtist("Quartet")
	if _, err := w.Write(audiotest.Int16Bytes([]int16{1, 2, 3})); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	tests := []struct {
		name      string
		container audio.Container
		want      int
	}{
		{"wav keeps strings", audio.ContainerWAV, 2},
		{"aiff skips strings", audio.ContainerAIFF, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, err := stream.OpenReadMemory(tagged.Bytes(), audio.Int16)
			if err != nil {
				t.Fatalf("OpenReadMemory() error = %v", err)
			}
			defer src.Close()

			out := vio.NewBuffer(nil)
			v, err := vio.FromStream(out)
			if err != nil {
				t.Fatal(err)
			}
			info := audio.Info{SampleRate: 8000, Channels: 1, Container: tt.container, Subtype: audio.SubtypePCM16}
			dst, err := stream.OpenWriteVirtual(v, info, audio.Int16)
			if err != nil {
				t.Fatalf("OpenWriteVirtual() error = %v", err)
			}

			n, err := CopyStrings(dst, src)
			if err != nil {
				t.Fatalf("CopyStrings() error = %v", err)
			}
			if n != tt.want {
				t.Errorf("CopyStrings() = %d, want %d", n, tt.want)
			}
			if err := dst.Close(); err != nil {
				t.Fatalf("Close() error = %v", err)
			}

			if tt.want == 0 {
				return
			}
			back, err := stream.OpenReadMemory(out.Bytes(), audio.Int16)
			if err != nil {
				t.Fatalf("OpenReadMemory() error = %v", err)
			}
			defer back.Close()
			if title, _ := back.Title(); title != "Take 3" {
				t.Errorf("Title() = %q, want Take 3", title)
			}
			if artist, _ := back.Artist(); artist != "Quartet" {
				t.Errorf("Artist() = %q, want Quartet", artist)
			}
		})
	}
}

func TestDeriveInfo(t *testing.T) {
	t.Parallel()

	from := audio.Info{
		Frames: 100, SampleRate: 44100, Channels: 2,
		Container: audio.ContainerOGG, Subtype: audio.SubtypeVorbis, Seekable: true,
	}

	tests := []struct {
		name string
		path string
		from audio.Info
		to   audio.Info
		want audio.Info
	}{
		{
			name: "compressed source falls back to pcm_16",
			path: "out.wav",
			from: from,
			want: audio.Info{SampleRate: 44100, Channels: 2, Container: audio.ContainerWAV, Subtype: audio.SubtypePCM16},
		},
		{
			name: "linear source keeps its subtype",
			path: "out.aif",
			from: audio.Info{SampleRate: 8000, Channels: 1, Subtype: audio.SubtypePCM24},
			want: audio.Info{SampleRate: 8000, Channels: 1, Container: audio.ContainerAIFF, Subtype: audio.SubtypePCM24},
		},
		{
			name: "explicit format wins over the extension",
			path: "out.bin",
			from: from,
			to:   audio.Info{Container: audio.ContainerRAW, Subtype: audio.SubtypeFloat, Endian: audio.EndianBig},
			want: audio.Info{
				SampleRate: 44100, Channels: 2,
				Container: audio.ContainerRAW, Subtype: audio.SubtypeFloat, Endian: audio.EndianBig,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := DeriveInfo(tt.path, tt.from, tt.to)
			if err != nil {
				t.Fatalf("DeriveInfo() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DeriveInfo() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := DeriveInfo("out", from, audio.Info{}); !errors.Is(err, audio.ErrUnrecognizedFormat) {
		t.Errorf("DeriveInfo(no extension) error = %v, want ErrUnrecognizedFormat", err)
	}
}
