package retained

import "github.com/agiangrant/stickyscroll/render"

// drawPinned paints the pinned view and its shadow over the content. The
// canvas is in content-scroll space: the base view has already translated
// by -scrollY and clipped to its viewport.
func (s *StickyScrollView) drawPinned(c *render.Canvas) {
	v := s.pinned
	if v == nil {
		return
	}
	w := s.widget

	var clipTop float32
	dy := s.scrollY + s.topOffset
	if s.clippingToPadding {
		clipTop = -s.topOffset
		dy += w.padding[0]
	}

	c.Save()
	c.Translate(w.padding[3]+s.leftOffset, dy)

	// Room for the shadow strip below the view.
	c.ClipRect(0, clipTop, w.width-s.leftOffset, v.height+s.shadowHeight+1)
	if s.shadow != nil {
		s.shadow.SetBounds(render.Rect{Top: v.height, Right: v.width, Bottom: v.height + s.shadowHeight})
		s.shadow.Draw(c)
	}

	c.ClipRect(0, clipTop, w.width, v.height)
	if s.pinnedFlags.Has(FlagHasTransparency) {
		hidden := v.opacity
		v.opacity = 1
		v.Draw(c)
		v.opacity = hidden
	} else {
		v.Draw(c)
	}
	c.Restore()
}
