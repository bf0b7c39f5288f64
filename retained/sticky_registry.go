package retained

// rescan rebuilds the sticky set from the content and re-runs the pin
// decision. Anything pinned is released first.
func (s *StickyScrollView) rescan() {
	prev := s.pinned
	s.stopSticking()

	clear(s.stickyViews)
	s.stickyViews = s.stickyViews[:0]
	if s.content != nil {
		collectStickyViews(s.content, &s.stickyViews)
	}
	logf("rescan found %d sticky views", len(s.stickyViews))

	s.doStickyDecision()
	s.reportPinChange(prev)
	s.Invalidate()
}

// collectStickyViews appends the sticky views under root in depth-first
// order. A sticky child is collected without looking inside it. Nested
// scroll views manage their own content and are not entered.
func collectStickyViews(root *Widget, into *[]*Widget) {
	if !root.IsComposite() {
		if root.IsSticky() {
			*into = append(*into, root)
		}
		return
	}
	for _, child := range root.children {
		switch {
		case child.IsSticky():
			*into = append(*into, child)
		case child.IsComposite() && child.scroller == nil:
			collectStickyViews(child, into)
		}
	}
}
