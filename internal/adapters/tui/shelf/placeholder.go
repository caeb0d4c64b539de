package shelf

import (
	"hash/fnv"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"audioshelf/internal/adapters/tui/styles"
)

// Placeholder draws the stand-in cover for a book: the first letter of its
// name on a colour derived from the name.
func Placeholder(name string, cols, rows int) string {
	return lipgloss.NewStyle().
		Width(cols).
		Height(rows).
		Align(lipgloss.Center, lipgloss.Center).
		Background(PlaceholderColor(name)).
		Foreground(styles.White).
		Bold(true).
		Render(PlaceholderLetter(name))
}

// PlaceholderLetter returns the upper-cased first letter of name, or "?"
func PlaceholderLetter(name string) string {
	for _, r := range strings.TrimSpace(name) {
		return string(unicode.ToUpper(r))
	}
	return "?"
}

// PlaceholderColor picks a palette colour from the name
func PlaceholderColor(name string) lipgloss.Color {
	h := fnv.New32a()
	h.Write([]byte(name))
	return styles.CoverPalette[h.Sum32()%uint32(len(styles.CoverPalette))]
}
