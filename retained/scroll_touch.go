package retained

// ============================================================================
// Touch Dispatch
// ============================================================================

// DispatchTouch routes a touch event given in the scroll view's own
// coordinates. A down is offered to the deepest widget under the pointer and
// bubbles up until someone consumes it; that widget receives the rest of the
// gesture in its local coordinates. A drag that leaves the touch slop is
// taken over by the scroll view, and the child receives a cancel.
// Events no child consumes are handled by OnTouchEvent.
func (s *ScrollView) DispatchTouch(ev *TouchEvent) bool {
	s.hooks.preDispatchTouch(ev)
	handled := s.dispatchTouch(ev)
	s.hooks.postDispatchTouch(ev)
	return handled
}

func (s *ScrollView) dispatchTouch(ev *TouchEvent) bool {
	if ev.Action == TouchDown {
		s.touchTarget = nil
		s.touchChain = s.touchChain[:0]
		s.touchDownY = ev.Y
		if s.dispatchDown(ev) {
			return true
		}
		return s.hooks.onTouchEvent(ev)
	}

	if s.touchTarget == nil {
		return s.hooks.onTouchEvent(ev)
	}

	if ev.Action == TouchMove && absf(ev.Y-s.touchDownY) > s.touchSlop {
		cancel := ObtainTouchEvent(ev)
		cancel.Action = TouchCancel
		s.deliver(s.touchTarget, cancel)
		cancel.Release()
		logf("scroll view %d intercepted gesture from widget %d", s.widget.id, s.touchTarget.id)
		s.touchTarget = nil
		return s.hooks.onTouchEvent(ev)
	}

	handled := s.deliver(s.touchTarget, ev)
	if ev.Action.IsGestureEnd() {
		s.touchTarget = nil
	}
	return handled
}

// OnTouchEvent drags the content: each move scrolls by the distance the
// pointer travelled since the previous sample. Moves without a preceding
// down are ignored.
func (s *ScrollView) OnTouchEvent(ev *TouchEvent) bool {
	switch ev.Action {
	case TouchDown:
		s.cancelSmoothScroll()
		s.downSeen = true
		s.lastY = ev.Y
		return true
	case TouchMove:
		if !s.downSeen {
			return false
		}
		dy := s.lastY - ev.Y
		s.lastY = ev.Y
		s.ScrollBy(dy)
		return true
	case TouchUp, TouchCancel:
		seen := s.downSeen
		s.downSeen = false
		return seen
	}
	return false
}

// TouchTarget returns the widget receiving the current gesture, or nil.
func (s *ScrollView) TouchTarget() *Widget {
	return s.touchTarget
}

// dispatchDown hit tests the content and offers the down along the chain,
// deepest first.
func (s *ScrollView) dispatchDown(ev *TouchEvent) bool {
	if s.content == nil {
		return false
	}
	if hitTest(s.content, ev.X, ev.Y+s.scrollY, &s.touchChain) == nil {
		return false
	}
	for i := len(s.touchChain) - 1; i >= 0; i-- {
		w := s.touchChain[i]
		if s.deliver(w, ev) {
			s.touchTarget = w
			return true
		}
	}
	return false
}

// deliver hands w a copy of ev translated into w's local coordinates.
func (s *ScrollView) deliver(w *Widget, ev *TouchEvent) bool {
	dx, dy, ok := s.offsetOf(w)
	if !ok {
		return false
	}
	local := ObtainTouchEvent(ev)
	local.OffsetLocation(-dx, -dy)
	handled := w.handleTouch(local)
	local.Release()
	return handled
}

// offsetOf returns the position of w's origin in the scroll view's
// coordinates, scroll offset applied. ok is false when w is not hosted here.
func (s *ScrollView) offsetOf(w *Widget) (x, y float32, ok bool) {
	for v := w; v != nil; v = v.parent {
		if v == s.widget {
			return x, y - s.scrollY, true
		}
		x += v.left
		y += v.top
	}
	return 0, 0, false
}

// hitTest finds the deepest visible widget containing the point, given in
// the coordinates of w's parent. Widgets are appended to chain from w down
// to the target. Children are checked in reverse order; the last child is
// drawn on top. Nested scroll views are treated as leaves and route the
// gesture themselves.
func hitTest(w *Widget, x, y float32, chain *[]*Widget) *Widget {
	if !w.visible {
		return nil
	}
	lx, ly := x-w.left, y-w.top
	if lx < 0 || ly < 0 || lx >= w.width || ly >= w.height {
		return nil
	}
	*chain = append(*chain, w)
	if w.scroller != nil {
		return w
	}

	for i := len(w.children) - 1; i >= 0; i-- {
		mark := len(*chain)
		if target := hitTest(w.children[i], lx, ly, chain); target != nil {
			return target
		}
		*chain = (*chain)[:mark]
	}
	return w
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
