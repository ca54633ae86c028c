// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"

	"github.com/ik5/sndstream/audio"
	"github.com/ik5/sndstream/blob"
	"github.com/ik5/sndstream/engine/native"
	"github.com/ik5/sndstream/internal/audiotest"
	"github.com/ik5/sndstream/internal/config"
	"github.com/ik5/sndstream/stream"
)

// memClient keeps objects in a map.
type memClient struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (c *memClient) Stat(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.objects[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", blob.ErrNotFound, key)
	}
	return int64(len(data)), nil
}

func (c *memClient) ReadAt(_ context.Context, key string, p []byte, off int64) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data := c.objects[key]
	if off >= int64(len(data)) {
		return 0, io.EOF
	}
	n := copy(p, data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (c *memClient) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.objects[key] = data
	return nil
}

func runApp(t *testing.T, client *memClient, args ...string) (code int, stdout, stderr string) {
	t.Helper()

	var out, errOut bytes.Buffer
	a := newApp(&out, &errOut)
	if client != nil {
		a.newBlob = func(_ context.Context, opts ...blob.Option) (*blob.Store, error) {
			return blob.New(client, opts...), nil
		}
	}

	base := []string{"--no-color", "--log-level", "none", "--config", ""}
	code = a.run(context.Background(), append(base, args...))
	return code, out.String(), errOut.String()
}

func writeTagged(t *testing.T, path string, samples []int16) {
	t.Helper()

	s, err := stream.CreateWAV(path, 8000, 1, audio.SubtypePCM16, audio.Int16)
	if err != nil {
		t.Fatalf("CreateWAV() error = %v", err)
	}
	if err := s.SetTitle("Take 3"); err != nil {
		t.Fatalf("SetTitle() error = %v", err)
	}
	if _, err := s.Write(audiotest.Int16Bytes(samples)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	code, out, _ := runApp(t, nil, "--help")
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !strings.Contains(out, "Usage: sndcat") {
		t.Errorf("help output %q", out)
	}

	code, out, _ = runApp(t, nil, "--version")
	if code != 0 || !strings.HasPrefix(out, "sndcat dev\n") {
		t.Errorf("version = %d, %q", code, out)
	}
}

func TestRun_UsageErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no command", nil, "no command given"},
		{"unknown command", []string{"play", "x.wav"}, `unknown command "play"`},
		{"unknown flag", []string{"--loud"}, "unknown flag: --loud"},
		{"missing argument", []string{"convert", "in.wav"}, "want 2 arguments, got 1"},
		{"bad kind", []string{"info", "--kind", "int8", "in.wav"}, "sample kind"},
		{"bad container", []string{"convert", "--container", "mod", "in.wav", "out.mod"}, "container"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, _, errOut := runApp(t, nil, tt.args...)
			if code != 2 {
				t.Errorf("exit code = %d, want 2", code)
			}
			if !strings.Contains(errOut, tt.want) {
				t.Errorf("stderr = %q, want it to mention %q", errOut, tt.want)
			}
		})
	}
}

func TestRun_Info(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "take.wav")
	writeTagged(t, path, []int16{1, 2, 3, 4})

	code, out, errOut := runApp(t, nil, "info", path)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr %q", code, errOut)
	}

	want := strings.Join([]string{
		"file       " + path,
		"format     wav/pcm_16",
		"rate       8000 Hz",
		"channels   1",
		"frames     4",
		"duration   500µs",
		"seekable   true",
		"engine     go",
		"title      Take 3",
	}, "\n") + "\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("info output mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_InfoMissingFile(t *testing.T) {
	t.Parallel()

	code, _, errOut := runApp(t, nil, "info", filepath.Join(t.TempDir(), "none.wav"))
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.HasPrefix(errOut, "sndcat: info: ") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestRun_NativeEngine(t *testing.T) {
	t.Parallel()

	if _, err := audio.LookupEngine(native.Name); err != nil {
		t.Fatalf("LookupEngine(%q) error = %v", native.Name, err)
	}

	path := filepath.Join(t.TempDir(), "take.wav")
	writeTagged(t, path, []int16{1, 2, 3, 4})

	code, out, errOut := runApp(t, nil, "--engine", native.Name, "info", path)
	if native.Available() {
		if code != 0 || !strings.Contains(out, "engine     native") {
			t.Errorf("exit code = %d, stdout %q, stderr %q", code, out, errOut)
		}
		return
	}
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(errOut, "libsndfile support not enabled") {
		t.Errorf("stderr = %q, want the unavailable engine reported", errOut)
	}
}

func TestRun_Convert(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	samples := audiotest.Ramp16(50, 1)
	writeTagged(t, in, samples)

	out := filepath.Join(dir, "out.aiff")
	code, stdout, errOut := runApp(t, nil, "convert", "--subtype", "pcm_24", in, out)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr %q", code, errOut)
	}
	if want := "wrote 50 frames to " + out + "\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}

	s, err := stream.OpenRead(out, audio.Int16)
	if err != nil {
		t.Fatalf("OpenRead() error = %v", err)
	}
	defer s.Close()

	if got := s.Info().Format(); got != audio.MakeFormat(audio.ContainerAIFF, audio.SubtypePCM24, 0) {
		t.Errorf("format = %s, want aiff/pcm_24", got)
	}
	got, err := io.ReadAll(s)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if diff := cmp.Diff(audiotest.Int16Bytes(samples), got); diff != "" {
		t.Errorf("converted samples mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_PutFetch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	samples := audiotest.Ramp16(64, 1)
	writeTagged(t, in, samples)

	client := &memClient{objects: make(map[string][]byte)}

	code, _, errOut := runApp(t, client, "put", "--kind", "int16", in, "takes/take.wav")
	if code != 0 {
		t.Fatalf("put exit code = %d, stderr %q", code, errOut)
	}
	if _, ok := client.objects["takes/take.wav"]; !ok {
		t.Fatal("put stored nothing")
	}

	code, out, errOut := runApp(t, client, "info", "--remote", "takes/take.wav")
	if code != 0 {
		t.Fatalf("info exit code = %d, stderr %q", code, errOut)
	}
	if !strings.Contains(out, "title      Take 3") || !strings.Contains(out, "frames     64") {
		t.Errorf("remote info = %q", out)
	}

	back := filepath.Join(dir, "back.wav")
	code, _, errOut = runApp(t, client, "fetch", "takes/take.wav", back)
	if code != 0 {
		t.Fatalf("fetch exit code = %d, stderr %q", code, errOut)
	}

	s, err := stream.OpenRead(back, audio.Int16)
	if err != nil {
		t.Fatalf("OpenRead() error = %v", err)
	}
	defer s.Close()
	got, err := io.ReadAll(s)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if diff := cmp.Diff(audiotest.Int16Bytes(samples), got); diff != "" {
		t.Errorf("fetched samples mismatch (-want +got):\n%s", diff)
	}

	code, _, errOut = runApp(t, client, "fetch", "takes/none.wav", back)
	if code != 1 || !strings.Contains(errOut, "not found") {
		t.Errorf("fetch of a missing key = %d, %q", code, errOut)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	ec := &config.EngineConfig{Engine: "go", LogLevel: "info"}

	t.Run("flags over file over environment", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "sndcat.yaml")
		data := "engine: native\nlog-level: debug\nwindow: 4096\n"
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}

		flags := globalFlags()
		if err := flags.Parse([]string{"--config", path, "--engine", "other"}); err != nil {
			t.Fatal(err)
		}

		v := viper.New()
		found, err := loadConfig(v, flags, ec)
		if err != nil || !found {
			t.Fatalf("loadConfig() = %v, %v", found, err)
		}

		got := map[string]any{
			keyEngine:   v.GetString(keyEngine),
			keyLogLevel: v.GetString(keyLogLevel),
			keyKind:     v.GetString(keyKind),
			keyWindow:   v.GetInt(keyWindow),
		}
		want := map[string]any{
			keyEngine:   "other",
			keyLogLevel: "debug",
			keyKind:     "float64",
			keyWindow:   4096,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("config mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		flags := globalFlags()
		if err := flags.Parse([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}); err != nil {
			t.Fatal(err)
		}

		v := viper.New()
		found, err := loadConfig(v, flags, ec)
		if err != nil || found {
			t.Errorf("loadConfig() = %v, %v, want false, nil", found, err)
		}
		if v.GetString(keyEngine) != "go" {
			t.Errorf("engine = %q, want go", v.GetString(keyEngine))
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("engine: [go\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		flags := globalFlags()
		if err := flags.Parse([]string{"--config", path}); err != nil {
			t.Fatal(err)
		}
		if _, err := loadConfig(viper.New(), flags, ec); err == nil {
			t.Error("loadConfig() accepted a malformed file")
		}
	})
}
