package retained

import (
	"math"
	"time"
)

// ============================================================================
// Easing Functions
// ============================================================================

// EasingFunc maps linear progress to eased progress.
// Input t is 0-1 (time progress), output is 0-1 (value progress).
type EasingFunc func(t float64) float64

// Common easing functions
var (
	// EaseLinear - constant speed
	EaseLinear EasingFunc = func(t float64) float64 { return t }

	// EaseInQuad - accelerate from zero
	EaseInQuad EasingFunc = func(t float64) float64 { return t * t }

	// EaseOutQuad - decelerate to zero
	EaseOutQuad EasingFunc = func(t float64) float64 { return t * (2 - t) }

	// EaseInOutQuad - accelerate then decelerate
	EaseInOutQuad EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	}

	// EaseOutCubic - smooth deceleration, the default for scrolling
	EaseOutCubic EasingFunc = func(t float64) float64 {
		t--
		return t*t*t + 1
	}

	// EaseInOutCubic - smooth acceleration and deceleration
	EaseInOutCubic EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		return (t-1)*(2*t-2)*(2*t-2) + 1
	}

	// EaseOutExpo - fast start with a long tail
	EaseOutExpo EasingFunc = func(t float64) float64 {
		if t >= 1 {
			return 1
		}
		return 1 - math.Pow(2, -10*t)
	}
)

// EasingByName returns the easing function for a given name.
// Returns nil if the name is unknown.
func EasingByName(name string) EasingFunc {
	switch name {
	case "linear":
		return EaseLinear
	case "ease-in":
		return EaseInQuad
	case "ease-out":
		return EaseOutQuad
	case "ease", "ease-in-out":
		return EaseInOutQuad
	case "cubic":
		return EaseOutCubic
	case "cubic-in-out":
		return EaseInOutCubic
	case "expo":
		return EaseOutExpo
	default:
		return nil
	}
}

// ============================================================================
// Smooth Scrolling
// ============================================================================

// frameInterval is the step between smooth-scroll frames.
const frameInterval = 16 * time.Millisecond

// ScrollToConfig configures a smooth scroll.
type ScrollToConfig struct {
	Duration   time.Duration // Animation duration (default: 250ms)
	Easing     EasingFunc    // Easing function (default: EaseOutCubic)
	Padding    float32       // Space kept between a target widget and the viewport edge (default: 20)
	OnComplete func()        // Called when the scroll finishes, not when cancelled
}

// DefaultScrollToConfig returns sensible defaults for smooth scrolling.
func DefaultScrollToConfig() ScrollToConfig {
	return ScrollToConfig{
		Duration: 250 * time.Millisecond,
		Easing:   EaseOutCubic,
		Padding:  20,
	}
}

func (cfg *ScrollToConfig) applyDefaults() {
	if cfg.Duration <= 0 {
		cfg.Duration = 250 * time.Millisecond
	}
	if cfg.Easing == nil {
		cfg.Easing = EaseOutCubic
	}
	if cfg.Padding == 0 {
		cfg.Padding = 20
	}
}

// SmoothScrollTo animates the scroll offset to y, one step per frame on the
// view's task queue. Any running smooth scroll is replaced; a touch down or
// ScrollTo cancels it.
func (s *ScrollView) SmoothScrollTo(y float32, cfg ScrollToConfig) {
	cfg.applyDefaults()
	s.cancelSmoothScroll()

	from := s.scrollY
	to := min(max(y, 0), s.MaxScrollY())
	if from == to {
		if cfg.OnComplete != nil {
			cfg.OnComplete()
		}
		return
	}

	start := s.tasks.now()
	var step func()
	step = func() {
		elapsed := s.tasks.now().Sub(start)
		progress := float64(elapsed) / float64(cfg.Duration)
		if progress >= 1 {
			s.smooth = nil
			s.scrollTo(to)
			if cfg.OnComplete != nil {
				cfg.OnComplete()
			}
			return
		}
		s.scrollTo(lerp(from, to, float32(cfg.Easing(progress))))
		s.smooth = s.tasks.Post(step, frameInterval)
	}
	s.smooth = s.tasks.Post(step, 0)
}

// IsSmoothScrolling reports whether a smooth scroll is in progress.
func (s *ScrollView) IsSmoothScrolling() bool {
	return s.smooth.Pending()
}

func (s *ScrollView) cancelSmoothScroll() {
	if s.smooth != nil {
		s.smooth.Cancel()
		s.smooth = nil
	}
}

// ScrollToWidget smooth-scrolls just far enough to bring target fully into
// view, keeping cfg.Padding between it and the viewport edge. Returns false
// if target is not in the content or is already visible.
func (s *ScrollView) ScrollToWidget(target *Widget, cfg ScrollToConfig) bool {
	cfg.applyDefaults()
	y, ok := s.scrollTargetFor(target, cfg.Padding)
	if !ok {
		return false
	}
	s.SmoothScrollTo(y, cfg)
	return true
}

// scrollTargetFor computes the scroll offset that makes target visible.
func (s *ScrollView) scrollTargetFor(target *Widget, padding float32) (float32, bool) {
	r, ok := resolveInContent(s.content, target)
	if !ok {
		return s.scrollY, false
	}
	// The content sits at the top padding, so content y is scroll y.
	top, bottom := r.Top, r.Bottom
	visible := s.widget.height - s.widget.padding[0] - s.widget.padding[2]

	visibleTop := s.scrollY + padding
	visibleBottom := s.scrollY + visible - padding
	if top >= visibleTop && bottom <= visibleBottom {
		return s.scrollY, false
	}

	var y float32
	if bottom > visibleBottom {
		y = bottom - visible + padding
		// Don't scroll so far that the top leaves the viewport.
		y = min(y, top-padding)
	} else {
		y = top - padding
	}
	return min(max(y, 0), s.MaxScrollY()), true
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
