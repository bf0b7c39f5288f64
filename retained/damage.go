package retained

import "github.com/agiangrant/stickyscroll/render"

// DamageTracker collects the regions of a scroll view that need repainting
// before the next frame. Rectangles are in scroll coordinates: the scroll
// view's own coordinates with the scroll offset added.
type DamageTracker struct {
	full  bool
	rects []render.Rect
	frame uint64
}

// Invalidate marks the whole view dirty.
func (d *DamageTracker) Invalidate() {
	d.full = true
	d.rects = d.rects[:0]
}

// InvalidateRect marks a region dirty. Empty rectangles are ignored, and
// nothing is recorded while the whole view is already dirty.
func (d *DamageTracker) InvalidateRect(r render.Rect) {
	if d.full || r.Empty() {
		return
	}
	d.rects = append(d.rects, r)
}

// IsDirty reports whether anything needs repainting.
func (d *DamageTracker) IsDirty() bool {
	return d.full || len(d.rects) > 0
}

// Damage returns the dirty regions and whether the whole view is dirty.
func (d *DamageTracker) Damage() ([]render.Rect, bool) {
	out := make([]render.Rect, len(d.rects))
	copy(out, d.rects)
	return out, d.full
}

// Bounds returns the union of the dirty regions.
func (d *DamageTracker) Bounds() render.Rect {
	var u render.Rect
	for _, r := range d.rects {
		u = u.Union(r)
	}
	return u
}

// Clear marks the damage as repainted and advances the frame counter.
func (d *DamageTracker) Clear() {
	d.full = false
	d.rects = d.rects[:0]
	d.frame++
}

// Frame returns the number of frames cleared so far.
func (d *DamageTracker) Frame() uint64 {
	return d.frame
}
