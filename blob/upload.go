// SPDX-License-Identifier: EPL-2.0

package blob

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ik5/sndstream/vio"
)

// Upload buffers an object in memory and stores it on Close.
type Upload struct {
	*vio.Buffer

	ctx         context.Context
	client      Client
	key         string
	contentType string
	closed      bool
}

func newUpload(ctx context.Context, client Client, key, contentType string) (*Upload, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	return &Upload{
		Buffer:      vio.NewBuffer(nil),
		ctx:         ctx,
		client:      client,
		key:         key,
		contentType: contentType,
	}, nil
}

func (u *Upload) Key() string { return u.key }

// VirtualIO binds the upload buffer for an engine.
func (u *Upload) VirtualIO(opts ...vio.Option) (*vio.VirtualIO, error) {
	return vio.FromStream(u.Buffer, opts...)
}

// Close stores the buffered bytes. Later calls fail with ErrUploadClosed.
func (u *Upload) Close() error {
	if u.closed {
		return ErrUploadClosed
	}
	u.closed = true

	data := u.Bytes()
	if err := u.client.Put(u.ctx, u.key, bytes.NewReader(data), int64(len(data)), u.contentType); err != nil {
		return fmt.Errorf("uploading %s: %w", u.key, err)
	}
	return nil
}

// Discard drops the buffered bytes without storing them.
func (u *Upload) Discard() {
	u.closed = true
	u.Reset()
}
