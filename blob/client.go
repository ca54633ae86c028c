// SPDX-License-Identifier: EPL-2.0

package blob

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/ik5/sndstream/internal/config"
)

// Client is the object store API the backing stores need.
type Client interface {
	// Stat returns the size of the object.
	Stat(ctx context.Context, key string) (int64, error)
	// ReadAt reads len(p) bytes at off. It returns io.EOF with fewer bytes at
	// the end of the object.
	ReadAt(ctx context.Context, key string, p []byte, off int64) (int, error)
	// Put stores size bytes from r under key.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
}

// MinioClient implements Client for one bucket.
type MinioClient struct {
	client *minio.Client
	bucket string
}

var _ Client = (*MinioClient)(nil)

func NewMinioClient(cfg config.MinioConfig) (*MinioClient, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Username, cfg.Password, ""),
		Secure: cfg.Secure,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, err
	}

	return &MinioClient{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

// Bucket returns the bucket the client works on.
func (c *MinioClient) Bucket() string { return c.bucket }

func (c *MinioClient) EnsureBucket(ctx context.Context) error {
	err := c.client.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "BucketAlreadyOwnedByYou" {
			return nil
		}
		return err
	}
	return nil
}

func (c *MinioClient) Stat(ctx context.Context, key string) (int64, error) {
	info, err := c.client.StatObject(ctx, c.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return 0, translate(key, err)
	}
	return info.Size, nil
}

func (c *MinioClient) ReadAt(ctx context.Context, key string, p []byte, off int64) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	opts := minio.GetObjectOptions{}
	if err := opts.SetRange(off, off+int64(len(p))-1); err != nil {
		return 0, err
	}

	obj, err := c.client.GetObject(ctx, c.bucket, key, opts)
	if err != nil {
		return 0, translate(key, err)
	}
	defer obj.Close()

	n, err := io.ReadFull(obj, p)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		err = io.EOF
	}
	if err != nil && !errors.Is(err, io.EOF) {
		err = translate(key, err)
	}
	return n, err
}

func (c *MinioClient) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := c.client.PutObject(ctx, c.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func translate(key string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return err
}
