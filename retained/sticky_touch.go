package retained

// ============================================================================
// Touch redirection
// ============================================================================

// The pinned view is drawn away from its place in the content, so touches
// landing on it are shifted to where the view really sits before the base
// scroll view hit tests them. Events that reach the scroll view's own
// handler are shifted back first.

// preDispatchTouch decides at each event whether the gesture still targets
// the pinned view and, if so, rewrites the event's y.
func (s *StickyScrollView) preDispatchTouch(ev *TouchEvent) {
	if ev.Action == TouchDown {
		s.redirectTouches = true
	}
	if s.redirectTouches {
		s.redirectTouches = s.pinned != nil && s.hitsPinned(ev.X, ev.Y)
	}
	if s.redirectTouches {
		ev.OffsetLocation(0, -s.redirectDelta())
	}
}

// onTouchEvent undoes the redirection and feeds the scroll drag. If the
// down of this gesture went to a child, the drag handler gets a synthetic
// down first so it starts from the current position.
func (s *StickyScrollView) onTouchEvent(ev *TouchEvent) bool {
	if s.redirectTouches {
		ev.OffsetLocation(0, s.redirectDelta())
	}
	if ev.Action == TouchDown {
		s.needsSyntheticDown = false
	}
	if s.needsSyntheticDown {
		down := ObtainTouchEvent(ev)
		down.Action = TouchDown
		s.ScrollView.OnTouchEvent(down)
		down.Release()
		s.needsSyntheticDown = false
	}
	if ev.Action.IsGestureEnd() {
		s.needsSyntheticDown = true
	}
	return s.ScrollView.OnTouchEvent(ev)
}

// postDispatchTouch ends the redirection with the gesture. It runs after
// onTouchEvent has shifted the event back.
func (s *StickyScrollView) postDispatchTouch(ev *TouchEvent) {
	if ev.Action.IsGestureEnd() {
		s.redirectTouches = false
	}
}

// IsRedirectingTouches reports whether the current gesture is being routed
// to the pinned view.
func (s *StickyScrollView) IsRedirectingTouches() bool {
	return s.redirectTouches
}

// hitsPinned reports whether a point in view coordinates falls on the
// pinned view as drawn: within its horizontal extent and above its bottom.
func (s *StickyScrollView) hitsPinned(x, y float32) bool {
	r, ok := s.resolve(s.pinned)
	if !ok {
		return false
	}
	padL := s.widget.padding[3]
	top := s.topOffset
	if s.clippingToPadding {
		top += s.widget.padding[0]
	}
	return y <= top+s.pinned.height && x >= padL+r.Left && x <= padL+r.Right
}

// redirectDelta is the distance from where the pinned view sits in the
// scrolled content to where it is drawn.
func (s *StickyScrollView) redirectDelta() float32 {
	if s.pinned == nil {
		return 0
	}
	r, _ := s.resolve(s.pinned)
	padTop := s.widget.padding[0]
	drawnTop := s.scrollY + s.topOffset
	if s.clippingToPadding {
		drawnTop += padTop
	}
	return drawnTop - (r.Top + padTop)
}
