package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/stretchyheader/assets/icon"
	"github.com/depeter/stretchyheader/internal/config"
	"github.com/depeter/stretchyheader/internal/demo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	mode, err := cfg.CollapseMode()
	if err != nil {
		log.Fatalf("Invalid header config: %v", err)
	}

	w, h := cfg.Window.Width, cfg.Window.Height
	screens := demo.NewSwitcher(
		demo.NewPinnedScreen(cfg, mode, w, h),
		demo.NewInlineScreen(cfg, mode, w, h),
	)
	game := demo.NewGame(screens, w, h)

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Stretchy Header Demo")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
