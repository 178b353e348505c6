package headerview

// ScrollAnimSpeed is the lerp factor used for smooth scroll interpolation.
const ScrollAnimSpeed = 0.12

// ScrollWheelSpeed is pixels per mouse wheel scroll unit.
const ScrollWheelSpeed = 60

// rubberBandSpeed pulls overscroll back toward rest once wheel input stops.
const rubberBandSpeed = 0.18

// ScrollState provides vertical scroll tracking with smooth animation and
// overscroll rubber-banding. ScrollY is positive when content is scrolled
// up and goes negative while the content is pulled down past the top, which
// is what lets a header stretch. Embed it in screens that need scrollable
// content and feed Offset() to the header.
type ScrollState struct {
	ScrollY       float64
	TargetScrollY float64

	// MaxScroll limits how far down the content scrolls. Zero or negative
	// means unlimited.
	MaxScroll float64
	// MaxStretch limits how far past the top the content can be pulled.
	// Zero means no overscroll at all.
	MaxStretch float64
}

// HandleWheel updates the target scroll position from a mouse wheel delta.
// Call this from Update() with the vertical wheel delta.
func (s *ScrollState) HandleWheel(wy float64) {
	if wy == 0 {
		return
	}
	s.TargetScrollY -= wy * ScrollWheelSpeed
	if s.TargetScrollY < -s.MaxStretch {
		s.TargetScrollY = -s.MaxStretch
	}
	if s.MaxScroll > 0 && s.TargetScrollY > s.MaxScroll {
		s.TargetScrollY = s.MaxScroll
	}
}

// Animate performs smooth scroll interpolation and springs any overscroll
// back to the rest position. Call this once per frame from Draw().
func (s *ScrollState) Animate() {
	if s.TargetScrollY < 0 {
		s.TargetScrollY = Lerp(s.TargetScrollY, 0, rubberBandSpeed)
		if s.TargetScrollY > -0.5 {
			s.TargetScrollY = 0
		}
	}
	s.ScrollY = Lerp(s.ScrollY, s.TargetScrollY, ScrollAnimSpeed)
}

// Offset is the header-space scroll offset: positive while the content is
// pulled down past the top (stretch), negative as it scrolls up (collapse).
func (s *ScrollState) Offset() float64 {
	return -s.ScrollY
}

// Reset sets scroll position back to top.
func (s *ScrollState) Reset() {
	s.ScrollY = 0
	s.TargetScrollY = 0
}

// Lerp for smooth scrolling
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
