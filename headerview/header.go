// Package headerview hosts the collapse geometry on Ebitengine: it wires a
// scroll-offset source to the pure computation in package collapse and
// applies the resulting height, opacity and translations to the screen.
package headerview

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/stretchyheader/collapse"
)

// DefaultHeight is the rest height used when a view's Height is unset.
const DefaultHeight = 320

// HeaderView is the container variant: the header stays pinned at the top
// of the screen while an externally tracked scroll offset is pushed in via
// SetOffset. Content scrolling happens underneath it.
type HeaderView struct {
	// Mode selects the collapse policy. May be replaced at runtime; the
	// geometry is recomputed from scratch every frame.
	Mode collapse.Mode
	// Height is the rest height. Zero or negative falls back to
	// DefaultHeight.
	Height float64
	// TopInset reserves space above the header for other UI.
	TopInset float64
	// Spacing is the gap between the header's rest bottom edge and the
	// content that follows it. It is not part of the geometry math.
	Spacing float64
	// Metrics supplies the platform chrome constants. Nil means no chrome.
	Metrics collapse.MetricsProvider
	// BarBackground fills the revealed bar rectangle for the reveal modes.
	BarBackground color.Color
	// DrawContent renders the header content into a buffer sized to the
	// computed ContentHeight. The view fades it by Opacity and places it.
	DrawContent func(dst *ebiten.Image, out collapse.Outputs)

	offset float64
	buf    *ebiten.Image
}

// SetOffset receives the current scroll offset from the host's scroll
// observer. Positive = pulled down past rest, negative = scrolled up.
func (h *HeaderView) SetOffset(offset float64) {
	h.offset = offset
}

// RestHeight is the configured rest height with the default applied.
func (h *HeaderView) RestHeight() float64 {
	if h.Height > 0 {
		return h.Height
	}
	return DefaultHeight
}

// ContentTop is the y position where content following the header starts
// when the scroll is at rest.
func (h *HeaderView) ContentTop() float64 {
	return h.RestHeight() + h.Spacing
}

// Geometry recomputes the render outputs for the current offset.
func (h *HeaderView) Geometry() collapse.Outputs {
	return collapse.Compute(h.mode(), collapse.Inputs{
		Offset:       h.offset,
		HeaderHeight: h.RestHeight(),
		TopInset:     h.TopInset,
		Metrics:      h.metrics(),
	})
}

// Draw applies the current geometry: bar background first, then the header
// content clipped to ContentHeight and faded by Opacity.
func (h *HeaderView) Draw(dst *ebiten.Image) {
	out := h.Geometry()
	w := dst.Bounds().Dx()

	mode := collapse.EffectiveMode(h.mode(), h.TopInset)
	if collapse.RevealsBarBackground(mode) && h.BarBackground != nil {
		barH := mode.CollapsedHeight(h.metrics())
		if barH > 0 {
			vector.DrawFilledRect(dst, 0, float32(h.TopInset+out.BarBackgroundOffsetY),
				float32(w), float32(barH), h.BarBackground, false)
		}
	}

	h.drawContent(dst, out, w, h.TopInset)
}

func (h *HeaderView) drawContent(dst *ebiten.Image, out collapse.Outputs, w int, top float64) {
	if h.DrawContent == nil || out.ContentHeight <= 0 || out.Opacity <= 0 {
		return
	}

	bufH := int(math.Ceil(out.ContentHeight))
	if h.buf == nil || h.buf.Bounds().Dx() != w || h.buf.Bounds().Dy() < bufH {
		h.buf = ebiten.NewImage(w, bufH)
	}
	h.buf.Clear()
	h.DrawContent(h.buf, out)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, top)
	op.ColorScale.ScaleAlpha(float32(out.Opacity))
	region := h.buf.SubImage(image.Rect(0, 0, w, bufH)).(*ebiten.Image)
	dst.DrawImage(region, op)
}

func (h *HeaderView) mode() collapse.Mode {
	if h.Mode == nil {
		return collapse.FixedHeight(0)
	}
	return h.Mode
}

func (h *HeaderView) metrics() collapse.Metrics {
	if h.Metrics == nil {
		return collapse.Metrics{}
	}
	return h.Metrics.ChromeMetrics()
}
