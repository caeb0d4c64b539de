package cmd

import (
	"testing"

	"audioshelf/internal/domain"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"3", 3, false},
		{"42", 42, false},
		{"", 0, true},
		{"three", 0, true},
		{"3.5", 0, true},
	}
	for _, tt := range tests {
		got, err := parseID(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseID(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseID(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestByAuthor(t *testing.T) {
	if got := byAuthor(domain.Book{Name: "Kindred"}); got != "" {
		t.Errorf("byAuthor() = %q, want empty", got)
	}
	if got := byAuthor(domain.Book{Name: "Hyperion", Author: "Dan Simmons"}); got != " by Dan Simmons" {
		t.Errorf("byAuthor() = %q", got)
	}
}

func TestProgressLabel(t *testing.T) {
	hour := int64(3600000)
	if got := progressLabel(domain.Book{Position: hour, Duration: 2 * hour}); got != "01:00/02:00" {
		t.Errorf("progressLabel() = %q", got)
	}
	if got := progressLabel(domain.Book{Position: 2 * hour, Duration: 2 * hour}); got != "finished" {
		t.Errorf("progressLabel() = %q, want finished", got)
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := map[string]bool{"list": false, "current": false, "add": false, "progress": false, "select": false, "remove": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}
