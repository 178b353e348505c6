package demo

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Feed is a vertical list of placeholder cards scrolling under (or with)
// the header.
type Feed struct {
	Count int
	Width int
}

func NewFeed(count, width int) *Feed {
	return &Feed{Count: count, Width: width}
}

// Height is the total extent of the feed content.
func (f *Feed) Height() float64 {
	return float64(f.Count) * (CardHeight + CardGap)
}

// MaxScroll is how far the feed can scroll inside a viewport that starts at
// contentTop.
func (f *Feed) MaxScroll(viewHeight, contentTop float64) float64 {
	maxScroll := f.Height() - (viewHeight - contentTop)
	if maxScroll < 0 {
		return 0
	}
	return maxScroll
}

// Draw renders the cards starting at baseY (already scroll-adjusted).
func (f *Feed) Draw(dst *ebiten.Image, baseY float64) {
	viewH := float64(dst.Bounds().Dy())
	w := float64(f.Width) - SectionPadding*2

	for i := 0; i < f.Count; i++ {
		y := baseY + float64(i)*(CardHeight+CardGap)

		// Skip offscreen cards
		if y+CardHeight < 0 || y > viewH {
			continue
		}

		clr := ColorSurface
		if i%2 == 1 {
			clr = ColorSurfaceAlt
		}
		vector.DrawFilledRect(dst, SectionPadding, float32(y), float32(w), CardHeight, clr, false)
		vector.DrawFilledRect(dst, SectionPadding+16, float32(y+18), 64, 64, ColorHeaderDeep, false)
		ebitenutil.DebugPrintAt(dst, fmt.Sprintf("Item %d", i+1), SectionPadding+96, int(y)+20)
	}
}
