package covers

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/imageorient"
	"github.com/nfnt/resize"
)

// upperHalf draws the top pixel in the foreground and the bottom one in the background
const upperHalf = "▀"

// Decode decodes an image, applying its EXIF orientation
func Decode(data []byte) (image.Image, error) {
	img, _, err := imageorient.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode cover: %w", err)
	}
	return img, nil
}

// RenderArt decodes data and renders it as cols×rows terminal cells
func RenderArt(data []byte, cols, rows int) (string, error) {
	img, err := Decode(data)
	if err != nil {
		return "", err
	}
	return Render(img, cols, rows), nil
}

// Render scales img to cols×(2·rows) pixels and draws two pixels per cell
func Render(img image.Image, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	thumb := resize.Resize(uint(cols), uint(rows*2), img, resize.Bilinear)
	bounds := thumb.Bounds()

	lines := make([]string, rows)
	for y := 0; y < rows; y++ {
		var b strings.Builder
		for x := 0; x < cols; x++ {
			top := thumb.At(bounds.Min.X+x, bounds.Min.Y+2*y)
			bottom := thumb.At(bounds.Min.X+x, bounds.Min.Y+2*y+1)
			b.WriteString(lipgloss.NewStyle().
				Foreground(hex(top)).
				Background(hex(bottom)).
				Render(upperHalf))
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func hex(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", r>>8, g>>8, b>>8))
}
