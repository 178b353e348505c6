// Package collapse computes the geometry of a collapsing header: the pure
// mapping from a scroll offset and a header configuration to the height,
// opacity and translations the renderer should apply. It has no dependency
// on any rendering framework and retains no state between calls.
package collapse

// Metrics holds the platform chrome constants supplied by the host.
// The core never measures these itself.
type Metrics struct {
	// StatusBarHeight is the height of the system status bar.
	StatusBarHeight float64
	// StatusBarPlusNavBarHeight is the combined height of the status bar
	// and the navigation bar. Callers are responsible for keeping it
	// >= StatusBarHeight.
	StatusBarPlusNavBarHeight float64
}

// MetricsProvider supplies the current chrome metrics. Hosts resolve it once
// per recompute; the core never caches the result.
type MetricsProvider interface {
	ChromeMetrics() Metrics
}

// StaticMetrics is a MetricsProvider returning fixed values.
type StaticMetrics Metrics

func (s StaticMetrics) ChromeMetrics() Metrics { return Metrics(s) }

// Mode describes how a header collapses as content scrolls up. It is a
// closed set: FixedHeight, RevealStatusBarBackground and
// RevealNavigationBarBackground. The sealed method keeps external packages
// from adding variants, and a new variant here must implement every
// behavior method before it compiles.
type Mode interface {
	// CollapsedHeight is the floor the header shrinks to under this mode.
	CollapsedHeight(m Metrics) float64

	revealsBarBackground() bool
}

// FixedHeight collapses the header down to an exact height. Zero is the
// degenerate "fully scrolled off" case.
type FixedHeight float64

func (f FixedHeight) CollapsedHeight(Metrics) float64 { return float64(f) }
func (FixedHeight) revealsBarBackground() bool        { return false }

// RevealStatusBarBackground collapses the header down to the status bar
// height, sliding a bar background in behind it.
type RevealStatusBarBackground struct{}

func (RevealStatusBarBackground) CollapsedHeight(m Metrics) float64 {
	return m.StatusBarHeight
}
func (RevealStatusBarBackground) revealsBarBackground() bool { return true }

// RevealNavigationBarBackground collapses the header down to the combined
// status bar + navigation bar height.
type RevealNavigationBarBackground struct{}

func (RevealNavigationBarBackground) CollapsedHeight(m Metrics) float64 {
	return m.StatusBarPlusNavBarHeight
}
func (RevealNavigationBarBackground) revealsBarBackground() bool { return true }

// EffectiveMode applies the container-variant substitution rule: revealing
// the status bar makes no sense when the header already sits below it, so
// RevealStatusBarBackground with a nonzero top inset becomes FixedHeight(0).
// All other modes pass through unchanged.
func EffectiveMode(mode Mode, topInset float64) Mode {
	if _, ok := mode.(RevealStatusBarBackground); ok && topInset != 0 {
		return FixedHeight(0)
	}
	return mode
}

// RevealsBarBackground reports whether the mode slides a bar background in
// behind the collapsing header.
func RevealsBarBackground(mode Mode) bool {
	return mode.revealsBarBackground()
}

// BarBackgroundRevealOffsetY is the translation applied to the bar
// background rectangle so it slides in from behind the collapsing header.
// Modes that do not reveal a bar always get 0.
func BarBackgroundRevealOffsetY(mode Mode, offset, headerHeight, collapsedHeight float64) float64 {
	if !mode.revealsBarBackground() {
		return 0
	}
	// The offset at which the header has fully collapsed to bar height.
	barOffset := -(headerHeight - collapsedHeight)
	if offset < 0 && barOffset > offset {
		return offset - barOffset
	}
	return 0
}
