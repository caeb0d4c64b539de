package shelf

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"audioshelf/internal/adapters/tui/styles"
)

const (
	ellipsis    = "…"
	indicator   = "▶"
	menuMarker  = "⋮"
	labelsWidth = len("00:00 / -00:00")
)

// Renderer draws slots as text rows
type Renderer struct {
	cols, rows int
	bar        progress.Model
}

// NewRenderer creates a renderer for covers of cols×rows cells
func NewRenderer(cols, rows int) *Renderer {
	return &Renderer{
		cols: cols,
		rows: rows,
		bar: progress.New(
			progress.WithSolidFill(string(styles.Primary)),
			progress.WithoutPercentage(),
		),
	}
}

// Row renders s into a block width cells wide. focused highlights the
// title and shows the menu marker.
func (r *Renderer) Row(s *Slot, width int, focused bool) string {
	textWidth := max(width-r.cols-4, 8)

	lines := make([]string, 0, 4)
	titleStyle := styles.BookTitle
	if focused {
		titleStyle = styles.BookTitleFocused
	}
	for _, l := range ClampLines(s.Title, textWidth, s.TitleMaxLines) {
		lines = append(lines, titleStyle.Render(l))
	}
	if s.AuthorVisible {
		lines = append(lines, styles.BookAuthor.Render(runewidth.Truncate(s.Author, textWidth, ellipsis)))
	}

	r.bar.Width = max(textWidth-labelsWidth-1, 4)
	lines = append(lines, r.bar.ViewAs(s.Progress)+" "+
		styles.MutedText.Render(s.Elapsed+" / -"+s.Remaining))

	marker := " "
	if s.IndicatorVisible {
		marker = styles.Indicator.Render(indicator)
	}
	menu := " "
	if focused {
		menu = styles.MutedText.Render(menuMarker)
	}

	text := lipgloss.NewStyle().Width(textWidth).Render(strings.Join(lines, "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top,
		marker, " ",
		r.cover(s), " ",
		text, menu,
	)
}

func (r *Renderer) cover(s *Slot) string {
	if s.CoverState == CoverEmpty || s.Cover == "" {
		return lipgloss.NewStyle().Width(r.cols).Height(r.rows).Render("")
	}
	return s.Cover
}

// ClampLines breaks text into at most maxLines lines of width cells,
// ending the last line with an ellipsis when text does not fit.
func ClampLines(text string, width, maxLines int) []string {
	if maxLines <= 0 || width <= 0 {
		return nil
	}

	var lines []string
	rest := strings.TrimSpace(text)
	for len(lines) < maxLines-1 && runewidth.StringWidth(rest) > width {
		line := runewidth.Truncate(rest, width, "")
		// Prefer breaking at the last space of the line
		if i := strings.LastIndexByte(line, ' '); i > 0 {
			line = line[:i]
		}
		lines = append(lines, line)
		rest = strings.TrimSpace(rest[len(line):])
	}
	return append(lines, runewidth.Truncate(rest, width, ellipsis))
}
