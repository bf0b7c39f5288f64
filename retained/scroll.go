package retained

import (
	"github.com/agiangrant/stickyscroll/render"
)

// DefaultTouchSlop is the distance a pointer may travel before a child's
// gesture turns into a scroll.
const DefaultTouchSlop = 8

// scrollHooks are the extension points a ScrollView calls back into.
// StickyScrollView installs itself; a plain ScrollView uses baseHooks.
type scrollHooks interface {
	onScrollChanged(x, y, oldX, oldY float32)
	onLayout()
	onHierarchyChanged()
	afterDraw(c *render.Canvas)
	// preDispatchTouch may rewrite the event before hit testing.
	preDispatchTouch(ev *TouchEvent)
	// onTouchEvent handles events no child consumed.
	onTouchEvent(ev *TouchEvent) bool
	// postDispatchTouch runs after the event has been fully routed.
	postDispatchTouch(ev *TouchEvent)
}

type baseHooks struct {
	s *ScrollView
}

func (baseHooks) onScrollChanged(x, y, oldX, oldY float32) {}
func (baseHooks) onLayout()                                {}
func (baseHooks) onHierarchyChanged()                      {}
func (baseHooks) afterDraw(c *render.Canvas)               {}
func (baseHooks) preDispatchTouch(ev *TouchEvent)          {}
func (baseHooks) postDispatchTouch(ev *TouchEvent)         {}

func (h baseHooks) onTouchEvent(ev *TouchEvent) bool {
	return h.s.OnTouchEvent(ev)
}

// ============================================================================
// ScrollView
// ============================================================================

// ScrollView is a vertically scrolling container with a single content
// child. The content is laid out at the scroll view's padding offset and
// shifted up by the scroll offset when drawn.
type ScrollView struct {
	widget  *Widget
	content *Widget
	hooks   scrollHooks

	scrollY       float32
	clipToPadding bool
	touchSlop     float32

	damage DamageTracker
	tasks  *TaskQueue

	// suppressed while SetContent swaps children
	quiet bool

	// Gesture routing
	touchTarget *Widget
	touchChain  []*Widget
	touchDownY  float32

	// Scroll gesture tracking for OnTouchEvent
	downSeen bool
	lastY    float32

	smooth *Task
}

// NewScrollView creates an empty scroll view. Tasks posted by the view
// (smooth scrolling) go to tasks; nil creates a private queue.
func NewScrollView(tasks *TaskQueue) *ScrollView {
	s := &ScrollView{}
	s.init(tasks, baseHooks{s})
	return s
}

func (s *ScrollView) init(tasks *TaskQueue, hooks scrollHooks) {
	if tasks == nil {
		tasks = NewTaskQueue(TaskQueueConfig{})
	}
	s.widget = NewWidget(KindScrollView)
	s.widget.scroller = s
	s.widget.host = s
	s.hooks = hooks
	s.tasks = tasks
	s.clipToPadding = true
	s.touchSlop = DefaultTouchSlop
}

// Widget returns the widget that represents the scroll view in a tree.
// Use it to set the frame and padding, or to nest the view in a parent.
func (s *ScrollView) Widget() *Widget {
	return s.widget
}

// Tasks returns the queue the view posts its callbacks to.
func (s *ScrollView) Tasks() *TaskQueue {
	return s.tasks
}

// Damage returns the view's dirty-region tracker.
func (s *ScrollView) Damage() *DamageTracker {
	return &s.damage
}

// Content returns the content child, or nil.
func (s *ScrollView) Content() *Widget {
	return s.content
}

// SetContent replaces the content child. Passing nil empties the view.
func (s *ScrollView) SetContent(content *Widget) *ScrollView {
	s.quiet = true
	for _, c := range s.widget.Children() {
		s.widget.RemoveChild(c)
	}
	s.content = content
	if content != nil {
		s.widget.AddChild(content)
	}
	s.quiet = false

	s.touchTarget = nil
	s.touchChain = nil
	s.hooks.onHierarchyChanged()
	s.Invalidate()
	return s
}

// hierarchyChanged implements hierarchyListener.
func (s *ScrollView) hierarchyChanged() {
	if s.quiet {
		return
	}
	if s.content != nil && s.content.parent != s.widget {
		// Content was removed directly from the widget.
		s.content = nil
	}
	s.hooks.onHierarchyChanged()
	s.Invalidate()
}

// SetClipToPadding controls whether content is clipped to the padded area
// or to the full bounds. Defaults to true.
func (s *ScrollView) SetClipToPadding(clip bool) *ScrollView {
	s.clipToPadding = clip
	s.Invalidate()
	return s
}

// ClipToPadding reports whether content is clipped to the padded area.
func (s *ScrollView) ClipToPadding() bool {
	return s.clipToPadding
}

// SetTouchSlop sets the distance a drag may travel inside a child before the
// scroll view takes over the gesture.
func (s *ScrollView) SetTouchSlop(slop float32) *ScrollView {
	s.touchSlop = max(0, slop)
	return s
}

// ============================================================================
// Scrolling
// ============================================================================

// ScrollY returns the vertical scroll offset.
func (s *ScrollView) ScrollY() float32 {
	return s.scrollY
}

// MaxScrollY returns the largest valid scroll offset.
func (s *ScrollView) MaxScrollY() float32 {
	if s.content == nil {
		return 0
	}
	return max(0, s.content.Bottom()+s.widget.padding[2]-s.widget.height)
}

// ScrollTo moves to offset y, clamped to [0, MaxScrollY].
func (s *ScrollView) ScrollTo(y float32) {
	s.cancelSmoothScroll()
	s.scrollTo(y)
}

// ScrollBy moves the scroll offset by dy.
func (s *ScrollView) ScrollBy(dy float32) {
	s.ScrollTo(s.scrollY + dy)
}

func (s *ScrollView) scrollTo(y float32) {
	y = min(max(y, 0), s.MaxScrollY())
	if y == s.scrollY {
		return
	}
	old := s.scrollY
	s.scrollY = y
	s.Invalidate()
	s.hooks.onScrollChanged(0, y, 0, old)
}

// Invalidate marks the whole view for repaint.
func (s *ScrollView) Invalidate() {
	s.damage.Invalidate()
}

// InvalidateRect marks a region, in scroll coordinates, for repaint.
func (s *ScrollView) InvalidateRect(r render.Rect) {
	s.damage.InvalidateRect(r)
}

// ============================================================================
// Layout and Drawing
// ============================================================================

// Layout sizes the view to width x height and lays out the content.
func (s *ScrollView) Layout(width, height float32) {
	s.widget.SetSize(width, height)
	s.widget.Layout(width)
}

// layoutContent positions the content inside the padding, re-clamps the
// scroll offset and runs the layout hook. Called from Widget.Layout.
func (s *ScrollView) layoutContent() {
	w := s.widget
	if s.content != nil {
		s.content.Layout(w.innerWidth())
		s.content.left = w.padding[3]
		s.content.top = w.padding[0]
		if !w.fixedHeight {
			w.height = s.content.Bottom() + w.padding[2]
		}
	} else if !w.fixedHeight {
		w.height = w.padding[0] + w.padding[2]
	}

	if clamped := min(s.scrollY, s.MaxScrollY()); clamped != s.scrollY {
		old := s.scrollY
		s.scrollY = clamped
		s.hooks.onScrollChanged(0, clamped, 0, old)
	}
	s.hooks.onLayout()
	s.Invalidate()
}

// Draw paints the view at the canvas origin.
func (s *ScrollView) Draw(c *render.Canvas) {
	s.widget.Draw(c)
}

// drawContents paints the scrolled content and then the afterDraw hook,
// both inside the view's clip. Called from Widget.Draw.
func (s *ScrollView) drawContents(c *render.Canvas) {
	w := s.widget
	c.Save()
	if s.clipToPadding {
		c.ClipRect(w.padding[3], w.padding[0], w.width-w.padding[1], w.height-w.padding[2])
	} else {
		c.ClipRect(0, 0, w.width, w.height)
	}
	c.Translate(0, -s.scrollY)
	if s.content != nil {
		drawChild(c, s.content)
	}
	s.hooks.afterDraw(c)
	c.Restore()
}

// Render paints the view into a fresh command list and clears the damage.
func (s *ScrollView) Render() render.CommandList {
	c := render.NewCanvas()
	s.Draw(c)
	s.damage.Clear()
	return c.Finish()
}
