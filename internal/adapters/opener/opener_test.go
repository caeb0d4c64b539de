package opener

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestOpener(t *testing.T, goos string) (*Opener, string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "kindred.png"), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	return &Opener{dir: dir, goos: goos}, dir
}

func TestCommand(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantLast int
	}{
		{"darwin", "open", 1},
		{"linux", "xdg-open", 1},
		{"windows", "cmd", 4},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			o, dir := newTestOpener(t, tt.goos)
			cmd, err := o.Command("kindred.png")
			if err != nil {
				t.Fatalf("Command() error = %v", err)
			}
			if filepath.Base(cmd.Args[0]) != tt.wantName {
				t.Errorf("Args[0] = %q, want %q", cmd.Args[0], tt.wantName)
			}
			want := filepath.Join(dir, "kindred.png")
			if len(cmd.Args) != tt.wantLast+1 || cmd.Args[tt.wantLast] != want {
				t.Errorf("Args = %v, want path %q last", cmd.Args, want)
			}
		})
	}
}

func TestCommand_UnsupportedOS(t *testing.T) {
	o, _ := newTestOpener(t, "plan9")
	if _, err := o.Command("kindred.png"); err == nil {
		t.Error("expected error for unsupported OS")
	}
}

func TestCommand_InvalidKeys(t *testing.T) {
	o, dir := newTestOpener(t, "linux")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	for _, key := range []string{"", "../kindred.png", "sub/kindred.png", ".hidden", "sub"} {
		if _, err := o.Command(key); err == nil {
			t.Errorf("Command(%q) expected error", key)
		}
	}

	_, err := o.Command("missing.png")
	if !errors.Is(err, ErrNoCover) {
		t.Errorf("Command(missing) error = %v, want ErrNoCover", err)
	}
}
