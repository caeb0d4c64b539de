package covers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"audioshelf/internal/ports"
)

// FileLoader implements ports.CoverLoader over a local directory
type FileLoader struct {
	dir string
}

var _ ports.CoverLoader = (*FileLoader)(nil)

// NewFileLoader creates a loader reading covers from dir
func NewFileLoader(dir string) *FileLoader {
	return &FileLoader{dir: dir}
}

// Dir returns the covers directory
func (l *FileLoader) Dir() string {
	return l.dir
}

// Path resolves a cover key to its file path
func (l *FileLoader) Path(key string) (string, error) {
	if key == "" || key != filepath.Base(key) || strings.HasPrefix(key, ".") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(l.dir, key), nil
}

// Stat reports whether the cover file can be opened and its size
func (l *FileLoader) Stat(ctx context.Context, key string) (ports.CoverInfo, error) {
	path, err := l.Path(key)
	if err != nil {
		return ports.CoverInfo{}, nil
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ports.CoverInfo{}, nil
	}
	if err != nil {
		return ports.CoverInfo{}, err
	}
	if !info.Mode().IsRegular() {
		return ports.CoverInfo{}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		// Present but unreadable
		return ports.CoverInfo{Size: info.Size()}, nil
	}
	f.Close()

	return ports.CoverInfo{Readable: true, Size: info.Size()}, nil
}

// Load reads the whole cover file, stopping early when ctx is cancelled
func (l *FileLoader) Load(ctx context.Context, key string) ([]byte, error) {
	path, err := l.Path(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(&contextReader{ctx: ctx, r: f})
}

// contextReader aborts reads once its context is done
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
