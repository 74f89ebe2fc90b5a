// Package file implements the local filesystem input source.
package file

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Local opens a data file or dictionary from the local disk.
type Local struct{ path string }

// NewLocal returns a Local bound to path.
func NewLocal(path string) *Local { return &Local{path: path} }

// Name returns the path the source was created with.
func (l *Local) Name() string { return l.path }

// Open opens the file for reading. A canceled context is returned before the
// filesystem is touched. Errors keep the os error chain, so
// errors.Is(err, os.ErrNotExist) works for missing files. Directories are
// rejected.
func (l *Local) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", l.path, err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %s: %w", l.path, err)
	}
	if fi.IsDir() {
		f.Close()
		return nil, fmt.Errorf("open %s: is a directory", l.path)
	}
	return f, nil
}
