// SPDX-License-Identifier: EPL-2.0

package blob

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/sndstream/vio"
)

// DefaultWindow is the read-ahead size of an Object.
const DefaultWindow = 256 << 10

// Object is a read-only, seekable view of a stored object.
type Object struct {
	ctx    context.Context
	client Client
	key    string
	size   int64
	pos    int64

	window   int
	cache    []byte
	cacheOff int64
	requests int
}

func openObject(ctx context.Context, client Client, key string, window int) (*Object, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	size, err := client.Stat(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", key, err)
	}
	if window <= 0 {
		window = DefaultWindow
	}

	return &Object{
		ctx:    ctx,
		client: client,
		key:    key,
		size:   size,
		window: window,
	}, nil
}

func (o *Object) Key() string { return o.key }

// Size returns the object size in bytes.
func (o *Object) Size() int64 { return o.size }

// Requests reports how many range reads were issued.
func (o *Object) Requests() int { return o.requests }

func (o *Object) Read(p []byte) (int, error) {
	if o.pos >= o.size {
		return 0, io.EOF
	}

	var done int
	for done < len(p) && o.pos < o.size {
		if !o.cached(o.pos) {
			if err := o.fill(o.pos); err != nil {
				return done, err
			}
		}
		n := copy(p[done:], o.cache[o.pos-o.cacheOff:])
		done += n
		o.pos += int64(n)
	}
	return done, nil
}

func (o *Object) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = o.pos + offset
	case io.SeekEnd:
		abs = o.size + offset
	default:
		return o.pos, fmt.Errorf("%w: %d", vio.ErrInvalidWhence, whence)
	}
	if abs < 0 {
		return o.pos, vio.ErrNegativeOffset
	}
	o.pos = abs
	return abs, nil
}

// VirtualIO binds the object for an engine.
func (o *Object) VirtualIO(opts ...vio.Option) (*vio.VirtualIO, error) {
	return vio.FromStream(o, opts...)
}

func (o *Object) cached(off int64) bool {
	return off >= o.cacheOff && off < o.cacheOff+int64(len(o.cache))
}

func (o *Object) fill(off int64) error {
	n := min(int64(o.window), o.size-off)
	if cap(o.cache) < int(n) {
		o.cache = make([]byte, n)
	}
	o.cache = o.cache[:n]

	o.requests++
	got, err := o.client.ReadAt(o.ctx, o.key, o.cache, off)
	o.cache = o.cache[:got]
	o.cacheOff = off
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading %s at %d: %w", o.key, off, err)
	}
	if got == 0 {
		return io.ErrUnexpectedEOF
	}
	return nil
}
