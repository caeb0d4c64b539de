package shelf

import (
	"slices"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestClampLines(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		maxLines int
		want     []string
	}{
		{"fits", "Dune", 10, 1, []string{"Dune"}},
		{"truncated", "The Left Hand of Darkness", 10, 1, []string{"The Left …"}},
		{"wraps at space", "The Left Hand of Darkness", 10, 2, []string{"The Left", "Hand of D…"}},
		{"two lines fit", "The Left Hand", 10, 2, []string{"The Left", "Hand"}},
		{"no room", "Dune", 0, 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampLines(tt.text, tt.width, tt.maxLines)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ClampLines() = %q, want %q", got, tt.want)
			}
			for _, l := range got {
				if runewidth.StringWidth(l) > tt.width {
					t.Errorf("line %q wider than %d", l, tt.width)
				}
			}
		})
	}
}

func TestRenderer_Row(t *testing.T) {
	r := NewRenderer(DefaultCoverCols, DefaultCoverRows)
	s := NewSlot(0)
	s.Title = "Solaris"
	s.Author = "Stanisław Lem"
	s.AuthorVisible = true
	s.Elapsed = "01:00"
	s.Remaining = "02:30"
	s.Progress = 0.3

	row := r.Row(s, 60, false)
	for _, want := range []string{"Solaris", "Stanisław Lem", "01:00 / -02:30"} {
		if !strings.Contains(row, want) {
			t.Errorf("row missing %q:\n%s", want, row)
		}
	}
	if strings.Contains(row, indicator) {
		t.Error("indicator shown for a book that is not current")
	}

	s.IndicatorVisible = true
	s.AuthorVisible = false
	row = r.Row(s, 60, true)
	if !strings.Contains(row, indicator) || !strings.Contains(row, menuMarker) {
		t.Errorf("row missing markers:\n%s", row)
	}
	if strings.Contains(row, "Stanisław Lem") {
		t.Error("hidden author rendered")
	}
}
