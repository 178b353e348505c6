package demo

import "image/color"

// Colors — dark theme for the demo app
var (
	ColorBackground   = color.RGBA{R: 0x12, G: 0x14, B: 0x1A, A: 0xFF}
	ColorSurface      = color.RGBA{R: 0x1E, G: 0x22, B: 0x2C, A: 0xFF}
	ColorSurfaceAlt   = color.RGBA{R: 0x2A, G: 0x30, B: 0x3E, A: 0xFF}
	ColorHeader       = color.RGBA{R: 0x2E, G: 0x6E, B: 0x8E, A: 0xFF}
	ColorHeaderDeep   = color.RGBA{R: 0x1D, G: 0x4A, B: 0x62, A: 0xFF}
	ColorBarReveal    = color.RGBA{R: 0x0E, G: 0x2A, B: 0x3A, A: 0xFF}
	ColorChrome       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x50}
	ColorText         = color.RGBA{R: 0xE4, G: 0xE4, B: 0xE4, A: 0xFF}
	ColorAccent       = color.RGBA{R: 0xE8, G: 0x9A, B: 0x3C, A: 0xFF}
	ColorHUDBackdrop  = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xB0}
	ColorHUDSeparator = color.RGBA{R: 0x3A, G: 0x42, B: 0x52, A: 0xFF}
)

// Layout constants
const (
	CardHeight     = 96
	CardGap        = 14
	SectionPadding = 28
)
