package retained

import "github.com/agiangrant/stickyscroll/render"

// resolve returns v's edges relative to the content child.
func (s *StickyScrollView) resolve(v *Widget) (render.Rect, bool) {
	return resolveInContent(s.content, v)
}

// resolveInContent walks up from v, adding each ancestor's offset, until it
// reaches content. The result is v's rectangle in content coordinates.
// content itself resolves to its size at the origin. ok is false when v is
// not inside content.
func resolveInContent(content, v *Widget) (r render.Rect, ok bool) {
	if content == nil || v == nil {
		return render.Rect{}, false
	}
	if v == content {
		return render.Rect{Right: v.width, Bottom: v.height}, true
	}

	r = v.Frame()
	for p := v.parent; p != content; p = p.parent {
		if p == nil {
			return render.Rect{}, false
		}
		r = r.Offset(p.left, p.top)
	}
	return r, true
}
