package demo

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/stretchyheader/collapse"
	"github.com/depeter/stretchyheader/headerview"
	"github.com/depeter/stretchyheader/internal/config"
)

// InlineScreen demonstrates the proxy variant: the header is the first
// in-flow element of the feed, and its own on-screen top edge drives the
// geometry each frame.
type InlineScreen struct {
	view   *headerview.InlineHeaderView
	scroll headerview.ScrollState
	feed   *Feed

	cfg           *config.Config
	width, height int
}

func NewInlineScreen(cfg *config.Config, mode collapse.Mode, width, height int) *InlineScreen {
	s := &InlineScreen{
		cfg:    cfg,
		width:  width,
		height: height,
		feed:   NewFeed(40, width),
	}
	s.view = &headerview.InlineHeaderView{
		Mode:          mode,
		Height:        cfg.Header.Height,
		Metrics:       collapse.StaticMetrics(cfg.Metrics()),
		BarBackground: ColorBarReveal,
		DrawContent:   s.drawHeaderContent,
	}
	s.scroll.MaxStretch = cfg.Header.MaxStretch
	s.scroll.MaxScroll = s.feed.MaxScroll(float64(height), s.view.RestHeight()+cfg.Header.Spacing)
	return s
}

func (s *InlineScreen) Name() string { return "Inline" }

func (s *InlineScreen) Update() error {
	_, wy := MouseWheelDelta()
	s.scroll.HandleWheel(wy)

	if mode, ok := ModeFromKeys(s.cfg.Header.FixedHeight); ok {
		s.view.Mode = mode
	}
	return nil
}

func (s *InlineScreen) Draw(dst *ebiten.Image) {
	s.scroll.Animate()

	// The header's top edge relative to the viewport is the proxy offset.
	offset := s.scroll.Offset()

	// In-flow content follows the header's rest-position bottom edge.
	contentTop := offset + s.view.RestHeight() + s.cfg.Header.Spacing
	s.feed.Draw(dst, contentTop)

	s.view.Draw(dst, offset)
	DrawChrome(dst, s.cfg.Metrics())
	DrawHUD(dst, s.Name(), offset, s.view.GeometryAt(offset))
}

func (s *InlineScreen) drawHeaderContent(dst *ebiten.Image, out collapse.Outputs) {
	w := float32(dst.Bounds().Dx())
	h := float32(out.ContentHeight)

	vector.DrawFilledRect(dst, 0, 0, w, h, ColorHeaderDeep, false)
	vector.DrawFilledRect(dst, 0, 0, w, 8, ColorAccent, false)
	ebitenutil.DebugPrintAt(dst, "Inline Stretchy Header", SectionPadding, int(h)-28)
}
