package icon

import (
	"image"
	"image/color"
)

// Palette matching the demo theme
var (
	bgCol     = color.RGBA{R: 0x12, G: 0x14, B: 0x1A, A: 0xFF}
	headerCol = color.RGBA{R: 0x2E, G: 0x6E, B: 0x8E, A: 0xFF}
	accentCol = color.RGBA{R: 0xE8, G: 0x9A, B: 0x3C, A: 0xFF}
	rowCol    = color.RGBA{R: 0x2A, G: 0x30, B: 0x3E, A: 0xFF}
)

// Generate returns 64x64 and 32x32 icon images for use with
// ebiten.SetWindowIcon: a collapsing header bar over a row feed.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRect(img, 0, 0, s, s, bgCol)

	// Header block in the upper third, with an accent strip on top.
	fillRect(img, 0, 0, s, s*0.34, headerCol)
	fillRect(img, 0, 0, s, s*0.08, accentCol)

	// Feed rows below the header.
	rowH := s * 0.12
	gap := s * 0.06
	y := s*0.34 + gap
	for y+rowH <= s {
		fillRect(img, s*0.10, y, s*0.80, rowH, rowCol)
		y += rowH + gap
	}

	return img
}

func fillRect(img *image.RGBA, x, y, w, h float64, clr color.RGBA) {
	x1, y1 := int(x+w), int(y+h)
	b := img.Bounds()
	for py := int(y); py < y1 && py < b.Max.Y; py++ {
		if py < 0 {
			continue
		}
		for px := int(x); px < x1 && px < b.Max.X; px++ {
			if px < 0 {
				continue
			}
			img.SetRGBA(px, py, clr)
		}
	}
}
