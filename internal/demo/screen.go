package demo

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Screen is the interface for the demo screens.
type Screen interface {
	// Update handles input and logic.
	Update() error
	// Draw renders the screen.
	Draw(dst *ebiten.Image)
	// Name returns the screen name shown in the HUD.
	Name() string
}

// Switcher cycles between screens with Tab.
type Switcher struct {
	screens []Screen
	current int
}

func NewSwitcher(screens ...Screen) *Switcher {
	return &Switcher{screens: screens}
}

func (sw *Switcher) Current() Screen {
	if len(sw.screens) == 0 {
		return nil
	}
	return sw.screens[sw.current]
}

func (sw *Switcher) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) && len(sw.screens) > 1 {
		sw.current = (sw.current + 1) % len(sw.screens)
	}
	s := sw.Current()
	if s == nil {
		return nil
	}
	return s.Update()
}

func (sw *Switcher) Draw(dst *ebiten.Image) {
	if s := sw.Current(); s != nil {
		s.Draw(dst)
	}
}
