package headerview

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/stretchyheader/collapse"
)

// InlineHeaderView is the proxy variant: the header is a normal in-flow
// element of a scrolling surface rather than a pinned overlay. The host
// reads the header's top edge position relative to the viewport each frame
// and passes it as the offset; the shrink is expressed via translation
// instead of a height change.
type InlineHeaderView struct {
	Mode collapse.Mode
	// Height is the rest height. Zero or negative falls back to
	// DefaultHeight.
	Height        float64
	Metrics       collapse.MetricsProvider
	BarBackground color.Color
	DrawContent   func(dst *ebiten.Image, out collapse.Outputs)

	buf *ebiten.Image
}

// RestHeight is the configured rest height with the default applied.
func (v *InlineHeaderView) RestHeight() float64 {
	if v.Height > 0 {
		return v.Height
	}
	return DefaultHeight
}

// GeometryAt recomputes the render outputs for the given top edge offset.
func (v *InlineHeaderView) GeometryAt(offset float64) collapse.Outputs {
	return collapse.ComputeInline(v.mode(), collapse.InlineInputs{
		Offset:     offset,
		RestHeight: v.RestHeight(),
		Metrics:    v.metrics(),
	})
}

// Draw renders the header for the given top edge offset. The frame is
// placed at offset + VerticalOffset, which pins the top edge while
// stretching and holds the collapsed floor on screen once the scroll moves
// past the full-collapse point.
func (v *InlineHeaderView) Draw(dst *ebiten.Image, offset float64) {
	out := v.GeometryAt(offset)
	w := dst.Bounds().Dx()
	top := offset + out.VerticalOffset

	mode := v.mode()
	if collapse.RevealsBarBackground(mode) && v.BarBackground != nil {
		barH := mode.CollapsedHeight(v.metrics())
		if barH > 0 {
			vector.DrawFilledRect(dst, 0, float32(out.BarBackgroundOffsetY),
				float32(w), float32(barH), v.BarBackground, false)
		}
	}

	if v.DrawContent == nil || out.ContentHeight <= 0 || out.Opacity <= 0 {
		return
	}

	bufH := int(math.Ceil(out.ContentHeight))
	if v.buf == nil || v.buf.Bounds().Dx() != w || v.buf.Bounds().Dy() < bufH {
		v.buf = ebiten.NewImage(w, bufH)
	}
	v.buf.Clear()
	v.DrawContent(v.buf, out)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, top)
	op.ColorScale.ScaleAlpha(float32(out.Opacity))
	region := v.buf.SubImage(image.Rect(0, 0, w, bufH)).(*ebiten.Image)
	dst.DrawImage(region, op)
}

// Bottom is the y position of the header's bottom edge at the given offset,
// which is where following in-flow content starts.
func (v *InlineHeaderView) Bottom(offset float64) float64 {
	out := v.GeometryAt(offset)
	return offset + out.VerticalOffset + out.ContentHeight
}

func (v *InlineHeaderView) mode() collapse.Mode {
	if v.Mode == nil {
		return collapse.FixedHeight(0)
	}
	return v.Mode
}

func (v *InlineHeaderView) metrics() collapse.Metrics {
	if v.Metrics == nil {
		return collapse.Metrics{}
	}
	return v.Metrics.ChromeMetrics()
}
