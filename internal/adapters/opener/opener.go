package opener

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"audioshelf/internal/ports"
)

var _ ports.CoverOpener = (*Opener)(nil)

// ErrNoCover is returned when the cover file does not exist
var ErrNoCover = errors.New("cover file not found")

// Opener implements ports.CoverOpener with the system image viewer
type Opener struct {
	dir  string
	goos string
}

// NewOpener creates an opener for covers stored in dir
func NewOpener(dir string) *Opener {
	return &Opener{dir: dir, goos: runtime.GOOS}
}

// OpenCover opens the cover file in the default viewer
func (o *Opener) OpenCover(key string) error {
	cmd, err := o.Command(key)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns the exec.Cmd that opens the cover for key
func (o *Opener) Command(key string) (*exec.Cmd, error) {
	path, err := o.coverPath(key)
	if err != nil {
		return nil, err
	}

	switch o.goos {
	case "darwin":
		return exec.Command("open", path), nil
	case "linux", "freebsd", "openbsd":
		return exec.Command("xdg-open", path), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", o.goos)
	}
}

func (o *Opener) coverPath(key string) (string, error) {
	if key == "" || key != filepath.Base(key) || strings.HasPrefix(key, ".") {
		return "", fmt.Errorf("invalid cover key: %q", key)
	}

	path := filepath.Join(o.dir, key)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s", ErrNoCover, path)
	}
	return path, nil
}
