// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Each terminal cell shows a 2x4 block of pixels as one braille glyph.
const (
	cellWidth  = 2
	cellHeight = 4
)

// brailleDots maps a pixel offset inside a cell to its braille dot bit.
var brailleDots = [cellHeight][cellWidth]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

var selectedInk = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

// inkAt reports whether the pixel is dark enough to show as a dot, and
// whether it is predominantly red.
func inkAt(img *image.RGBA, x, y int) (ink, red bool) {
	if !(image.Point{X: x, Y: y}.In(img.Rect)) {
		return false, false
	}
	c := img.RGBAAt(x, y)
	if c.A < 0x80 {
		return false, false
	}
	lum := (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
	red = int(c.R) > int(c.G)+0x40
	return lum < 0xc0, red
}

// brailleText converts img to rows of braille glyphs. Cells containing red
// ink are rendered in the selection color.
func brailleText(img *image.RGBA, cols, rows int) string {
	var b strings.Builder
	for cy := range rows {
		if cy > 0 {
			b.WriteByte('\n')
		}
		for cx := range cols {
			var bits rune
			red := false
			for dy := range cellHeight {
				for dx := range cellWidth {
					ink, r := inkAt(img, img.Rect.Min.X+cx*cellWidth+dx, img.Rect.Min.Y+cy*cellHeight+dy)
					if ink {
						bits |= brailleDots[dy][dx]
						red = red || r
					}
				}
			}
			if bits == 0 {
				b.WriteByte(' ')
				continue
			}
			glyph := string(0x2800 + bits)
			if red {
				glyph = selectedInk.Render(glyph)
			}
			b.WriteString(glyph)
		}
	}
	return b.String()
}
