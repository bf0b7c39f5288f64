package retained

import (
	"time"

	"github.com/agiangrant/stickyscroll/render"
)

// ============================================================================
// StickyScrollView
// ============================================================================

// StickyScrollView is a ScrollView that pins sticky descendants to the top
// of its viewport. Of all sticky views that have scrolled past the top, the
// one that arrived last is drawn at the top edge on top of the content; the
// next sticky view approaching from below pushes it up and out.
//
// Sticky views are found by scanning the content for widgets whose flags
// include FlagSticky (see Widget.SetTag and ParseStickyTag).
type StickyScrollView struct {
	*ScrollView

	stickyViews []*Widget

	// Pinned state
	pinned       *Widget
	pinnedFlags  StickyFlags // latched when pinning
	topOffset    float32     // <= 0
	leftOffset   float32     // latched when pinning
	savedOpacity float32

	// Redraw tick for FlagNonConstant views
	invalidateTask     *Task
	invalidateInterval time.Duration

	// clippingToPadding decides where pinned views sit. It stays false until
	// the first layout unless SetClipToPadding was called.
	clippingToPadding    bool
	clippingToPaddingSet bool

	shadowHeight float32
	shadow       Drawable

	// Touch redirection
	redirectTouches    bool
	needsSyntheticDown bool

	onPinChange func(prev, next *Widget)
}

// NewStickyScrollView creates a sticky scroll view from cfg. Recurring
// redraws and smooth scrolls are posted to tasks; nil creates a private
// queue.
func NewStickyScrollView(cfg StickyConfig, tasks *TaskQueue) (*StickyScrollView, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	shadow, err := cfg.ShadowDrawable()
	if err != nil {
		return nil, err
	}

	s := &StickyScrollView{
		ScrollView:         &ScrollView{},
		invalidateInterval: cfg.InvalidateInterval(),
		shadowHeight:       float32(cfg.ShadowHeightPx()),
		shadow:             shadow,
		needsSyntheticDown: true,
	}
	s.ScrollView.init(tasks, s)
	s.SetTouchSlop(cfg.TouchSlop)
	if cfg.ClipToPadding != nil {
		s.SetClipToPadding(*cfg.ClipToPadding)
	}
	return s, nil
}

// SetContent replaces the content child and rescans it for sticky views.
func (s *StickyScrollView) SetContent(content *Widget) *StickyScrollView {
	s.ScrollView.SetContent(content)
	return s
}

// SetClipToPadding sets clipping for the content and the pinned view.
func (s *StickyScrollView) SetClipToPadding(clip bool) *StickyScrollView {
	s.ScrollView.SetClipToPadding(clip)
	s.clippingToPadding = clip
	s.clippingToPaddingSet = true
	return s
}

// SetShadowHeight sets the thickness, in pixels, of the shadow painted
// under the pinned view.
func (s *StickyScrollView) SetShadowHeight(px int) *StickyScrollView {
	s.shadowHeight = float32(max(0, px))
	s.Invalidate()
	return s
}

// ShadowHeight returns the shadow thickness in pixels.
func (s *StickyScrollView) ShadowHeight() float32 {
	return s.shadowHeight
}

// SetShadowDrawable replaces the shadow. Nil disables it.
func (s *StickyScrollView) SetShadowDrawable(d Drawable) *StickyScrollView {
	s.shadow = d
	s.Invalidate()
	return s
}

// OnPinChange registers a callback for pin transitions. next is nil when the
// pinned view is released without a replacement.
func (s *StickyScrollView) OnPinChange(fn func(prev, next *Widget)) *StickyScrollView {
	s.onPinChange = fn
	return s
}

// Pinned returns the view currently pinned, or nil.
func (s *StickyScrollView) Pinned() *Widget {
	return s.pinned
}

// PinOffset returns the vertical offset of the pinned view, never positive.
func (s *StickyScrollView) PinOffset() float32 {
	return s.topOffset
}

// PinLeftOffset returns the horizontal offset latched when the current view
// was pinned.
func (s *StickyScrollView) PinLeftOffset() float32 {
	return s.leftOffset
}

// StickyViews returns the sticky views found by the last scan, in
// depth-first order.
func (s *StickyScrollView) StickyViews() []*Widget {
	out := make([]*Widget, len(s.stickyViews))
	copy(out, s.stickyViews)
	return out
}

// NotifyStickyAttributeChanged rescans the content. Call it after changing
// tags or sticky flags of widgets that are already hosted.
func (s *StickyScrollView) NotifyStickyAttributeChanged() {
	s.rescan()
}

// ============================================================================
// Scroll view hooks
// ============================================================================

func (s *StickyScrollView) onScrollChanged(x, y, oldX, oldY float32) {
	prev := s.pinned
	s.doStickyDecision()
	s.reportPinChange(prev)
}

func (s *StickyScrollView) onLayout() {
	if !s.clippingToPaddingSet {
		s.clippingToPadding = true
	}
	s.rescan()
}

func (s *StickyScrollView) onHierarchyChanged() {
	s.rescan()
}

func (s *StickyScrollView) afterDraw(c *render.Canvas) {
	s.drawPinned(c)
}

// ============================================================================
// Stick decision
// ============================================================================

// doStickyDecision picks the view to pin for the current scroll offset.
// Among sticky views whose top has reached the viewport top, the one
// closest to it wins; the nearest view still below the top pushes the
// pinned one up once it reaches the pinned view's bottom edge.
func (s *StickyScrollView) doStickyDecision() {
	var (
		shouldStick *Widget
		stickTop    float32
		approaching *Widget
		approachTop float32
	)

	for _, v := range s.stickyViews {
		r, ok := s.resolve(v)
		if !ok {
			continue
		}
		viewTop := r.Top - s.scrollY
		if !s.clippingToPadding {
			viewTop += s.widget.padding[0]
		}

		// Strict comparisons keep the earlier view on ties.
		if viewTop <= 0 {
			if shouldStick == nil || viewTop > stickTop {
				shouldStick = v
				stickTop = viewTop
			}
		} else {
			if approaching == nil || viewTop < approachTop {
				approaching = v
				approachTop = viewTop
			}
		}
	}

	if shouldStick == nil {
		s.stopSticking()
		return
	}

	var offset float32
	if approaching != nil {
		offset = min(0, approachTop-shouldStick.height)
	}

	// stopSticking zeroes the offsets, so the new offset is set after it.
	if shouldStick != s.pinned {
		s.stopSticking()
		r, _ := s.resolve(shouldStick)
		s.topOffset = offset
		s.leftOffset = r.Left
		s.startSticking(shouldStick)
		return
	}
	s.topOffset = offset
}

func (s *StickyScrollView) startSticking(v *Widget) {
	s.pinned = v
	s.pinnedFlags = v.flags
	if v.flags.Has(FlagHasTransparency) {
		s.savedOpacity = v.opacity
		v.SetOpacity(0)
	}
	if v.flags.Has(FlagNonConstant) {
		s.invalidateTask = s.tasks.Post(s.invalidateTick, 0)
	}
	logf("pinned widget %d (%s) offset=%.1f left=%.1f", v.id, v.flags, s.topOffset, s.leftOffset)
}

// stopSticking releases the pinned view. Safe to call with nothing pinned.
func (s *StickyScrollView) stopSticking() {
	v := s.pinned
	if v == nil {
		return
	}
	if s.pinnedFlags.Has(FlagHasTransparency) {
		v.SetOpacity(s.savedOpacity)
	}
	s.pinned = nil
	s.pinnedFlags = 0
	s.topOffset = 0
	s.leftOffset = 0
	if s.invalidateTask != nil {
		s.invalidateTask.Cancel()
		s.invalidateTask = nil
	}
	logf("released widget %d", v.id)
}

// invalidateTick marks the pinned view dirty and reschedules itself.
func (s *StickyScrollView) invalidateTick() {
	s.invalidateTask = nil
	if s.pinned == nil {
		return
	}
	s.InvalidateRect(s.pinnedRect())
	s.invalidateTask = s.tasks.Post(s.invalidateTick, s.invalidateInterval)
}

// pinnedRect is where the pinned view is drawn, in scroll coordinates.
func (s *StickyScrollView) pinnedRect() render.Rect {
	v := s.pinned
	if v == nil {
		return render.Rect{}
	}
	left := s.widget.padding[3] + s.leftOffset
	top := s.scrollY + s.topOffset
	if s.clippingToPadding {
		top += s.widget.padding[0]
	}
	return render.Rect{Left: left, Top: top, Right: left + v.width, Bottom: top + v.height}
}

func (s *StickyScrollView) reportPinChange(prev *Widget) {
	if s.pinned != prev && s.onPinChange != nil {
		s.onPinChange(prev, s.pinned)
	}
}
