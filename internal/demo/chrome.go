package demo

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/stretchyheader/collapse"
)

// DrawChrome draws the simulated platform chrome foreground: a translucent
// status strip with a clock, and a separator under the navigation bar area.
// The bar *background* that slides in behind it is owned by the header view;
// this is only the always-on-top content.
func DrawChrome(dst *ebiten.Image, m collapse.Metrics) {
	w := float32(dst.Bounds().Dx())

	if m.StatusBarHeight > 0 {
		vector.DrawFilledRect(dst, 0, 0, w, float32(m.StatusBarHeight), ColorChrome, false)
		ebitenutil.DebugPrintAt(dst, time.Now().Format("15:04"), 10, int(m.StatusBarHeight)/2-8)
	}

	if m.StatusBarPlusNavBarHeight > m.StatusBarHeight {
		vector.DrawFilledRect(dst, 0, float32(m.StatusBarPlusNavBarHeight)-1, w, 1, ColorHUDSeparator, false)
	}
}
