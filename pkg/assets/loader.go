// Package assets loads and decodes the image assets an applet preloads
// during its load phase.
package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"time"

	// Registered decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultTimeout bounds how long Load waits for a decode to complete.
const DefaultTimeout = 5 * time.Second

// Sentinel errors for asset loading.
var (
	// ErrNotFound is returned when the asset does not exist.
	ErrNotFound = errors.New("assets: not found")

	// ErrDecode is returned when the asset is not a decodable image.
	ErrDecode = errors.New("assets: decode failed")

	// ErrTimeout is returned when decoding did not complete in time.
	ErrTimeout = errors.New("assets: timed out waiting for decode")
)

// Error describes a failed asset load.
type Error struct {
	Name string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("asset %q: %v", e.Name, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Loader decodes images from a file system.
type Loader struct {
	// FS is the file system assets are read from.
	FS fs.FS
	// Timeout bounds each Load. Zero means DefaultTimeout; negative disables it.
	Timeout time.Duration
}

// NewLoader returns a loader reading from fsys with the default timeout.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{FS: fsys}
}

type result struct {
	img image.Image
	err error
}

// Load decodes the named image and waits for completion, the context, or
// the loader timeout, whichever comes first.
func (l *Loader) Load(ctx context.Context, name string) (image.Image, error) {
	if l == nil || l.FS == nil {
		return nil, &Error{Name: name, Err: ErrNotFound}
	}
	timeout := l.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	done := make(chan result, 1)
	go func() {
		img, err := l.decode(name)
		done <- result{img: img, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return nil, &Error{Name: name, Err: r.err}
		}
		return r.img, nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, &Error{Name: name, Err: ErrTimeout}
		}
		return nil, &Error{Name: name, Err: ctx.Err()}
	}
}

func (l *Loader) decode(name string) (image.Image, error) {
	f, err := l.FS.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}
