package demo

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/stretchyheader/collapse"
)

var hudVisible = true

// ToggleHUD toggles the geometry HUD on F12.
func ToggleHUD() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		hudVisible = !hudVisible
	}
}

// DrawHUD prints the live geometry outputs for the current frame.
func DrawHUD(dst *ebiten.Image, screenName string, offset float64, out collapse.Outputs) {
	if !hudVisible {
		return
	}

	const (
		panelW  = 250.0
		lineH   = 16
		padX    = 10
		padY    = 8
		marginR = 16.0
		marginB = 16.0
	)

	lines := []string{
		fmt.Sprintf("%s  (Tab: variant, 1/2/3: mode)", screenName),
		fmt.Sprintf("offset         %8.2f", offset),
		fmt.Sprintf("contentHeight  %8.2f", out.ContentHeight),
		fmt.Sprintf("opacity        %8.3f", out.Opacity),
		fmt.Sprintf("verticalOffset %8.2f", out.VerticalOffset),
		fmt.Sprintf("barBackgroundY %8.2f", out.BarBackgroundOffsetY),
	}

	panelH := float64(len(lines)*lineH + padY*2)
	px := float64(dst.Bounds().Dx()) - panelW - marginR
	py := float64(dst.Bounds().Dy()) - panelH - marginB

	vector.DrawFilledRect(dst, float32(px), float32(py), panelW, float32(panelH), ColorHUDBackdrop, false)

	y := int(py) + padY
	for _, line := range lines {
		ebitenutil.DebugPrintAt(dst, line, int(px)+padX, y)
		y += lineH
	}
}
