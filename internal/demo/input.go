package demo

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/stretchyheader/collapse"
)

// MouseWheelDelta returns the mouse wheel scroll delta.
func MouseWheelDelta() (dx, dy float64) {
	return ebiten.Wheel()
}

// ModeFromKeys maps the 1/2/3 keys to a collapse mode, so the demo can swap
// the policy mid-scroll. Returns false when no mode key was pressed.
func ModeFromKeys(fixedHeight float64) (collapse.Mode, bool) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit1):
		return collapse.RevealStatusBarBackground{}, true
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit2):
		return collapse.RevealNavigationBarBackground{}, true
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit3):
		return collapse.FixedHeight(fixedHeight), true
	}
	return nil, false
}
