// SPDX-License-Identifier: EPL-2.0

package blob

import (
	"context"
	"log/slog"

	"github.com/ik5/sndstream/audio"
	"github.com/ik5/sndstream/internal/config"
	"github.com/ik5/sndstream/stream"
	"github.com/ik5/sndstream/vio"
)

// Store opens objects as streams.
type Store struct {
	client Client
	logger *slog.Logger
	window int
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger passed to bindings and streams.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithWindow sets the read-ahead size of opened objects.
func WithWindow(n int) Option {
	return func(s *Store) {
		s.window = n
	}
}

func New(client Client, opts ...Option) *Store {
	s := &Store{client: client, window: DefaultWindow}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("component", "blob")
	return s
}

// NewFromEnv connects to the store described by the MINIO_* variables and
// makes sure the bucket exists.
func NewFromEnv(ctx context.Context, opts ...Option) (*Store, error) {
	cfg, err := config.NewMinioConfigFromEnv()
	if err != nil {
		return nil, err
	}

	client, err := NewMinioClient(*cfg)
	if err != nil {
		return nil, err
	}
	if err := client.EnsureBucket(ctx); err != nil {
		return nil, err
	}
	return New(client, opts...), nil
}

// Open returns a reader for key.
func (s *Store) Open(ctx context.Context, key string) (*Object, error) {
	return openObject(ctx, s.client, key, s.window)
}

// Create returns an upload for key.
func (s *Store) Create(ctx context.Context, key, contentType string) (*Upload, error) {
	return newUpload(ctx, s.client, key, contentType)
}

// OpenStream opens key for reading samples of kind.
func (s *Store) OpenStream(ctx context.Context, key string, kind audio.SampleKind, opts ...stream.Option) (*stream.Stream, error) {
	obj, err := s.Open(ctx, key)
	if err != nil {
		return nil, err
	}
	v, err := obj.VirtualIO(vio.WithLogger(s.logger))
	if err != nil {
		return nil, err
	}

	s.logger.Debug("opening object", "key", key, "size", obj.Size())
	opts = append([]stream.Option{stream.WithLogger(s.logger)}, opts...)
	return stream.OpenReadVirtual(v, kind, opts...)
}

// CreateStream opens a write stream whose bytes are stored under key when
// the stream is closed.
func (s *Store) CreateStream(ctx context.Context, key string, info audio.Info, kind audio.SampleKind, opts ...stream.Option) (*stream.Stream, error) {
	up, err := s.Create(ctx, key, ContentType(info.Container))
	if err != nil {
		return nil, err
	}
	v, err := up.VirtualIO(vio.WithLogger(s.logger))
	if err != nil {
		return nil, err
	}

	opts = append([]stream.Option{stream.WithLogger(s.logger)}, opts...)
	opts = append(opts, stream.WithCloser(up))

	st, err := stream.OpenWriteVirtual(v, info, kind, opts...)
	if err != nil {
		up.Discard()
		return nil, err
	}
	return st, nil
}

// ContentType returns the MIME type stored with objects of container c.
func ContentType(c audio.Container) string {
	switch c {
	case audio.ContainerWAV:
		return "audio/wav"
	case audio.ContainerAIFF:
		return "audio/aiff"
	case audio.ContainerAU:
		return "audio/basic"
	case audio.ContainerFLAC:
		return "audio/flac"
	case audio.ContainerOGG:
		return "audio/ogg"
	case audio.ContainerMPEG:
		return "audio/mpeg"
	default:
		return "application/octet-stream"
	}
}
