package collapse

import "math"

// Inputs is the per-recompute snapshot for the container variant, where the
// header is pinned by layout and the scroll offset is pushed in from an
// external scroll observer.
type Inputs struct {
	// Offset is the signed scroll displacement. Positive = content pulled
	// down past rest (the header stretches), negative = content scrolled
	// up past rest (the header collapses).
	Offset float64
	// HeaderHeight is the configured rest height before the top inset is
	// applied.
	HeaderHeight float64
	// TopInset reduces the usable header height and triggers the
	// status-bar-mode substitution (see EffectiveMode).
	TopInset float64
	// Metrics are the platform chrome constants for this recompute.
	Metrics Metrics
}

// InlineInputs is the per-recompute snapshot for the proxy variant, where
// the header is a normal in-flow element and Offset is its own top edge
// position relative to the scroll container's origin.
type InlineInputs struct {
	Offset     float64
	RestHeight float64
	Metrics    Metrics
}

// Outputs holds everything the renderer applies for one recompute.
type Outputs struct {
	// ContentHeight is the header's rendered height at this offset.
	ContentHeight float64
	// Opacity is the content fade factor in [0, 1].
	Opacity float64
	// VerticalOffset is the translation applied to the whole header.
	// Always 0 for the container variant.
	VerticalOffset float64
	// BarBackgroundOffsetY is the translation applied to the bar
	// background rectangle.
	BarBackgroundOffsetY float64
}

// Opacity returns the content fade factor for the given offset. The header
// counts as fully opaque once it is scrolled at least one status-bar-height
// past rest, and fades linearly to 0 over the collapsible travel distance
// (rest height minus the always-visible bar area). When that travel
// distance is zero or negative the header cannot fade and stays at 1.
func Opacity(offset, headerHeight float64, m Metrics) float64 {
	adjusted := offset - m.StatusBarHeight
	if adjusted >= 0 {
		return 1
	}
	maxHeight := headerHeight - m.StatusBarPlusNavBarHeight
	if maxHeight <= 0 {
		return 1
	}
	maxOffset := math.Min(maxHeight, -adjusted)
	return math.Abs((maxOffset - maxHeight) / maxHeight)
}

// Compute is the container-variant geometry: the header never renders
// shorter than its collapsed floor, stretches 1:1 with positive offset and
// shrinks 1:1 with negative offset down to the floor. VerticalOffset is
// always 0 — the header stays pinned via layout, not translation.
func Compute(mode Mode, in Inputs) Outputs {
	mode = EffectiveMode(mode, in.TopInset)
	h := in.HeaderHeight - in.TopInset

	collapsed := clamp(mode.CollapsedHeight(in.Metrics), 0, h)
	return Outputs{
		ContentHeight:        math.Max(collapsed, h+in.Offset),
		Opacity:              Opacity(in.Offset, h, in.Metrics),
		VerticalOffset:       0,
		BarBackgroundOffsetY: BarBackgroundRevealOffsetY(mode, in.Offset, h, collapsed),
	}
}

// ComputeInline is the proxy-variant geometry: positive offset stretches
// the frame while VerticalOffset pins the top edge; within the collapsing
// range the header is covered naturally and needs no translation; past the
// fully-collapsed point the excess scroll keeps sliding the header up,
// leaving the collapsed floor pinned on screen.
func ComputeInline(mode Mode, in InlineInputs) Outputs {
	rest := in.RestHeight
	collapsed := clamp(mode.CollapsedHeight(in.Metrics), 0, rest)
	sizeOffScreen := rest - collapsed

	current := rest
	if in.Offset > 0 {
		current = rest + in.Offset
	}

	var vertical float64
	switch {
	case in.Offset > 0:
		vertical = -in.Offset
	case in.Offset < -sizeOffScreen:
		vertical = math.Abs(math.Min(-sizeOffScreen, in.Offset)) - sizeOffScreen
	}

	return Outputs{
		ContentHeight:        math.Max(rest, current),
		Opacity:              Opacity(in.Offset, rest, in.Metrics),
		VerticalOffset:       vertical,
		BarBackgroundOffsetY: BarBackgroundRevealOffsetY(mode, in.Offset, rest, collapsed),
	}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
