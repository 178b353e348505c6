package demo

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/stretchyheader/collapse"
	"github.com/depeter/stretchyheader/headerview"
	"github.com/depeter/stretchyheader/internal/config"
)

// PinnedScreen demonstrates the container variant: the header is pinned at
// the top and receives the scroll offset from the feed's scroll state.
type PinnedScreen struct {
	header *headerview.HeaderView
	scroll headerview.ScrollState
	feed   *Feed

	cfg           *config.Config
	width, height int
}

func NewPinnedScreen(cfg *config.Config, mode collapse.Mode, width, height int) *PinnedScreen {
	s := &PinnedScreen{
		cfg:    cfg,
		width:  width,
		height: height,
		feed:   NewFeed(40, width),
	}
	s.header = &headerview.HeaderView{
		Mode:          mode,
		Height:        cfg.Header.Height,
		TopInset:      cfg.Header.TopInset,
		Spacing:       cfg.Header.Spacing,
		Metrics:       collapse.StaticMetrics(cfg.Metrics()),
		BarBackground: ColorBarReveal,
		DrawContent:   s.drawHeaderContent,
	}
	s.scroll.MaxStretch = cfg.Header.MaxStretch
	s.scroll.MaxScroll = s.feed.MaxScroll(float64(height), s.header.ContentTop())
	return s
}

func (s *PinnedScreen) Name() string { return "Pinned" }

func (s *PinnedScreen) Update() error {
	_, wy := MouseWheelDelta()
	s.scroll.HandleWheel(wy)

	if mode, ok := ModeFromKeys(s.cfg.Header.FixedHeight); ok {
		s.header.Mode = mode
	}
	return nil
}

func (s *PinnedScreen) Draw(dst *ebiten.Image) {
	s.scroll.Animate()
	s.header.SetOffset(s.scroll.Offset())

	// Feed scrolls underneath the pinned header.
	s.feed.Draw(dst, s.header.ContentTop()-s.scroll.ScrollY)

	s.header.Draw(dst)
	DrawChrome(dst, s.cfg.Metrics())
	DrawHUD(dst, s.Name(), s.scroll.Offset(), s.header.Geometry())
}

// drawHeaderContent renders the header surface at the computed size. The
// view fades and places it according to the geometry.
func (s *PinnedScreen) drawHeaderContent(dst *ebiten.Image, out collapse.Outputs) {
	w := float32(dst.Bounds().Dx())
	h := float32(out.ContentHeight)

	vector.DrawFilledRect(dst, 0, 0, w, h, ColorHeader, false)
	vector.DrawFilledRect(dst, 0, h-56, w, 56, ColorHeaderDeep, false)
	ebitenutil.DebugPrintAt(dst, "Stretchy Header", SectionPadding, int(h)-40)
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("height %.0f", out.ContentHeight), SectionPadding, int(h)-24)
}
