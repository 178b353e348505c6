package collapse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpacity(t *testing.T) {
	tests := []struct {
		name         string
		offset       float64
		headerHeight float64
		want         float64
	}{
		{"stretched", 50, 300, 1},
		{"adjusted offset exactly zero", 44, 300, 1},
		// adjusted -44, maxHeight 212, maxOffset 44 -> |(44-212)/212|
		{"at rest", 0, 300, 168.0 / 212.0},
		// adjusted -300, clamped to the full 212 travel
		{"fully collapsed", -300, 300, 0},
		{"full collapse boundary", 44 - 300, 300, 0},
		{"zero travel guard", -50, 88, 1},
		{"negative travel guard", -50, 60, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Opacity(tt.offset, tt.headerHeight, testMetrics)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestOpacityBounds(t *testing.T) {
	for _, h := range []float64{0, 44, 88, 120, 300, 1000} {
		for offset := -2 * h; offset <= h+100; offset += 7 {
			got := Opacity(offset, h, testMetrics)
			require.GreaterOrEqual(t, got, 0.0, "h=%v offset=%v", h, offset)
			require.LessOrEqual(t, got, 1.0, "h=%v offset=%v", h, offset)
		}
	}
}

func TestComputeScenario(t *testing.T) {
	// header 300, status bar 44, status+nav 88,
	// RevealStatusBarBackground, no inset.
	in := Inputs{HeaderHeight: 300, Metrics: testMetrics}
	mode := RevealStatusBarBackground{}

	in.Offset = 50
	out := Compute(mode, in)
	assert.Equal(t, 350.0, out.ContentHeight)
	assert.Equal(t, 1.0, out.Opacity)
	assert.Zero(t, out.VerticalOffset)

	in.Offset = 0
	out = Compute(mode, in)
	assert.Equal(t, 300.0, out.ContentHeight)
	assert.InDelta(t, 0.7924528, out.Opacity, 1e-6)

	in.Offset = -300
	out = Compute(mode, in)
	assert.Equal(t, 44.0, out.ContentHeight, "clamped to the collapsed floor")
	assert.Zero(t, out.Opacity)
}

func TestComputeModeSubstitution(t *testing.T) {
	in := Inputs{HeaderHeight: 300, TopInset: 20, Metrics: testMetrics}
	mode := RevealStatusBarBackground{}

	for offset := -400.0; offset <= 100; offset += 20 {
		in.Offset = offset
		out := Compute(mode, in)
		// Effective mode FixedHeight(0): no floor, no bar reveal.
		assert.Zero(t, out.BarBackgroundOffsetY, "offset %v", offset)
		if offset <= -280 {
			assert.Zero(t, out.ContentHeight, "offset %v", offset)
		}
	}
}

func TestComputeMonotonicStretch(t *testing.T) {
	modes := []Mode{FixedHeight(100), RevealStatusBarBackground{}, RevealNavigationBarBackground{}}
	for _, mode := range modes {
		prev := -1.0
		for offset := 0.0; offset <= 500; offset += 10 {
			out := Compute(mode, Inputs{Offset: offset, HeaderHeight: 300, Metrics: testMetrics})
			require.GreaterOrEqual(t, out.ContentHeight, prev, "mode %T offset %v", mode, offset)
			prev = out.ContentHeight
		}
	}
}

func TestComputeFloorInvariant(t *testing.T) {
	modes := []Mode{FixedHeight(0), FixedHeight(100), FixedHeight(500),
		RevealStatusBarBackground{}, RevealNavigationBarBackground{}}
	for _, mode := range modes {
		floor := clamp(mode.CollapsedHeight(testMetrics), 0, 300)
		for offset := -800.0; offset <= 200; offset += 13 {
			out := Compute(mode, Inputs{Offset: offset, HeaderHeight: 300, Metrics: testMetrics})
			require.GreaterOrEqual(t, out.ContentHeight, floor, "mode %T offset %v", mode, offset)
		}
	}
}

func TestComputeDegenerateHeaderHeight(t *testing.T) {
	for _, h := range []float64{0, -50} {
		out := Compute(RevealStatusBarBackground{}, Inputs{Offset: -100, HeaderHeight: h, Metrics: testMetrics})
		assert.GreaterOrEqual(t, out.ContentHeight, 0.0)
		assert.Equal(t, 1.0, out.Opacity)
	}
}

func TestComputeInlineStretch(t *testing.T) {
	in := InlineInputs{RestHeight: 300, Metrics: testMetrics}
	mode := FixedHeight(100)

	in.Offset = 80
	out := ComputeInline(mode, in)
	assert.Equal(t, 380.0, out.ContentHeight)
	assert.Equal(t, -80.0, out.VerticalOffset, "top edge pinned against downward growth")

	in.Offset = -50
	out = ComputeInline(mode, in)
	assert.Equal(t, 300.0, out.ContentHeight, "shrink is expressed via translation, not height")
	assert.Zero(t, out.VerticalOffset, "still inside the collapsing range")
}

func TestComputeInlineParallax(t *testing.T) {
	// rest 300, FixedHeight(100) -> sizeOffScreen 200.
	mode := FixedHeight(100)
	in := InlineInputs{Offset: -250, RestHeight: 300, Metrics: testMetrics}
	out := ComputeInline(mode, in)
	assert.Equal(t, 50.0, out.VerticalOffset)

	// Exactly at the full-collapse boundary there is no excess yet.
	in.Offset = -200
	assert.Zero(t, ComputeInline(mode, in).VerticalOffset)
}

func TestComputeInlineRegions(t *testing.T) {
	// rest 300, collapsed 100 -> three offset regimes.
	mode := FixedHeight(100)
	tests := []struct {
		name         string
		offset       float64
		wantHeight   float64
		wantVertical float64
	}{
		{"stretched", 120, 420, -120},
		{"at rest", 0, 300, 0},
		{"collapsing", -199, 300, 0},
		{"just past collapse", -201, 300, 1},
		{"deep past collapse", -500, 300, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ComputeInline(mode, InlineInputs{Offset: tt.offset, RestHeight: 300, Metrics: testMetrics})
			assert.Equal(t, tt.wantHeight, out.ContentHeight)
			assert.InDelta(t, tt.wantVertical, out.VerticalOffset, 1e-9)
		})
	}
}

func TestStaticMetricsProvider(t *testing.T) {
	var p MetricsProvider = StaticMetrics(testMetrics)
	assert.Equal(t, testMetrics, p.ChromeMetrics())
}
