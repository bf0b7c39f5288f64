// Package retained provides a retained-mode widget tree hosted by scroll
// containers, including StickyScrollView, which pins designated children to
// the top of its viewport while the content scrolls underneath.
//
// Everything in this package runs on the UI goroutine. Widgets, scroll views
// and the task queue are not safe for concurrent use; the host loop feeds
// them layout, scroll, touch and draw callbacks one at a time.
package retained

import (
	"sync/atomic"

	"github.com/agiangrant/stickyscroll/render"
)

// WidgetID uniquely identifies a widget for its lifetime.
type WidgetID uint64

var nextWidgetID atomic.Uint64

func newWidgetID() WidgetID {
	return WidgetID(nextWidgetID.Add(1))
}

// WidgetKind identifies the type of widget for layout and rendering.
type WidgetKind string

const (
	KindContainer  WidgetKind = "container"
	KindVStack     WidgetKind = "vstack"
	KindHStack     WidgetKind = "hstack"
	KindScrollView WidgetKind = "scroll_view"
	KindText       WidgetKind = "text"
	KindButton     WidgetKind = "button"
	KindCustom     WidgetKind = "custom"
)

// IsComposite reports whether widgets of this kind hold children.
func (k WidgetKind) IsComposite() bool {
	switch k {
	case KindContainer, KindVStack, KindHStack, KindScrollView:
		return true
	default:
		return false
	}
}

// TouchHandler receives touch events in the widget's local coordinates.
// Return true to consume the event; the widget then becomes the touch
// target for the rest of the gesture.
type TouchHandler func(w *Widget, ev *TouchEvent) bool

// DrawFunc paints custom content in the widget's local coordinates,
// after the background and text and before the children.
type DrawFunc func(w *Widget, c *render.Canvas)

// hierarchyListener is notified when children are added or removed anywhere
// below the widget it is attached to.
type hierarchyListener interface {
	hierarchyChanged()
}

// Widget is a node in the display hierarchy.
// Its frame is relative to its parent's top-left corner.
type Widget struct {
	id       WidgetID
	kind     WidgetKind
	parent   *Widget
	children []*Widget

	// host receives hierarchy notifications. Propagated to descendants.
	host hierarchyListener

	// scroller is set on the widget backing a ScrollView.
	scroller *ScrollView

	// Frame relative to parent
	left, top     float32
	width, height float32
	fixedWidth    bool
	fixedHeight   bool

	// Spacing
	padding [4]float32 // [top, right, bottom, left]
	gap     float32    // Space between children (for VStack/HStack)

	// Visual properties
	backgroundColor *uint32
	opacity         float32
	visible         bool

	// Content
	text      string
	textColor uint32
	fontSize  float32

	// Configuration tag and the flags derived from it
	tag   string
	flags StickyFlags

	// Interaction
	onTouch TouchHandler
	onClick func()
	pressed bool

	drawFn DrawFunc
	data   any
}

// NewWidget creates a widget with default values.
// The widget is not attached to any tree until added as a child.
func NewWidget(kind WidgetKind) *Widget {
	return &Widget{
		id:        newWidgetID(),
		kind:      kind,
		opacity:   1.0,
		visible:   true,
		fontSize:  14,
		textColor: 0xFFFFFFFF,
	}
}

// ID returns the widget's unique identifier.
func (w *Widget) ID() WidgetID {
	return w.id
}

// Kind returns the widget type.
func (w *Widget) Kind() WidgetKind {
	return w.kind
}

// IsComposite reports whether the widget is a container of other widgets.
func (w *Widget) IsComposite() bool {
	return w.kind.IsComposite()
}

// ============================================================================
// Tree Structure
// ============================================================================

// Parent returns the widget's parent, or nil if it's the root.
func (w *Widget) Parent() *Widget {
	return w.parent
}

// Children returns a copy of the widget's children slice.
func (w *Widget) Children() []*Widget {
	result := make([]*Widget, len(w.children))
	copy(result, w.children)
	return result
}

// ChildCount returns the number of direct children.
func (w *Widget) ChildCount() int {
	return len(w.children)
}

// ChildAt returns the child at index i, or nil when out of range.
func (w *Widget) ChildAt(i int) *Widget {
	if i < 0 || i >= len(w.children) {
		return nil
	}
	return w.children[i]
}

// AddChild appends a child widget. A child that already has a parent is
// moved.
func (w *Widget) AddChild(child *Widget) *Widget {
	return w.InsertChild(len(w.children), child)
}

// AddChildren appends several children in order.
func (w *Widget) AddChildren(children ...*Widget) *Widget {
	for _, child := range children {
		w.AddChild(child)
	}
	return w
}

// InsertChild inserts a child at the specified index.
func (w *Widget) InsertChild(index int, child *Widget) *Widget {
	if child == nil || child == w {
		return w
	}
	if child.parent != nil {
		child.parent.detach(child)
	}
	child.parent = w
	child.setHost(w.host)

	if index < 0 {
		index = 0
	}
	if index >= len(w.children) {
		w.children = append(w.children, child)
	} else {
		w.children = append(w.children[:index+1], w.children[index:]...)
		w.children[index] = child
	}
	w.notifyHierarchy()
	return w
}

// RemoveChild removes a child by reference.
func (w *Widget) RemoveChild(child *Widget) bool {
	host := w.host
	if !w.detach(child) {
		return false
	}
	if host != nil {
		host.hierarchyChanged()
	}
	return true
}

// RemoveFromParent removes this widget from its parent.
func (w *Widget) RemoveFromParent() {
	if w.parent != nil {
		w.parent.RemoveChild(w)
	}
}

// detach unlinks child without notifying.
func (w *Widget) detach(child *Widget) bool {
	for i, c := range w.children {
		if c == child {
			w.children = append(w.children[:i], w.children[i+1:]...)
			child.parent = nil
			child.setHost(nil)
			return true
		}
	}
	return false
}

func (w *Widget) setHost(h hierarchyListener) {
	if w.scroller != nil {
		// A scroll view owns the notifications of its own subtree.
		return
	}
	w.host = h
	for _, c := range w.children {
		c.setHost(h)
	}
}

func (w *Widget) notifyHierarchy() {
	if w.host != nil {
		w.host.hierarchyChanged()
	}
}

// IsDescendantOf reports whether ancestor appears on the parent chain of w.
func (w *Widget) IsDescendantOf(ancestor *Widget) bool {
	for p := w.parent; p != nil; p = p.parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

// ============================================================================
// Geometry
// ============================================================================

// Left returns the left edge relative to the parent.
func (w *Widget) Left() float32 { return w.left }

// Top returns the top edge relative to the parent.
func (w *Widget) Top() float32 { return w.top }

// Right returns the right edge relative to the parent.
func (w *Widget) Right() float32 { return w.left + w.width }

// Bottom returns the bottom edge relative to the parent.
func (w *Widget) Bottom() float32 { return w.top + w.height }

func (w *Widget) Width() float32  { return w.width }
func (w *Widget) Height() float32 { return w.height }

// Frame returns the widget's edges relative to its parent.
func (w *Widget) Frame() render.Rect {
	return render.Rect{Left: w.left, Top: w.top, Right: w.Right(), Bottom: w.Bottom()}
}

// SetPosition sets the offset from the parent's top-left corner.
// Stack layouts overwrite it for their children.
func (w *Widget) SetPosition(left, top float32) *Widget {
	w.left, w.top = left, top
	return w
}

// SetSize fixes the widget's width and height. Layout keeps fixed sizes.
func (w *Widget) SetSize(width, height float32) *Widget {
	w.width, w.height = width, height
	w.fixedWidth, w.fixedHeight = true, true
	return w
}

// SetHeight fixes only the height; the width follows layout.
func (w *Widget) SetHeight(height float32) *Widget {
	w.height = height
	w.fixedHeight = true
	return w
}

// SetWidth fixes only the width; the height follows layout.
func (w *Widget) SetWidth(width float32) *Widget {
	w.width = width
	w.fixedWidth = true
	return w
}

// SetFrame sets position and fixed size in one call.
func (w *Widget) SetFrame(left, top, width, height float32) *Widget {
	w.SetPosition(left, top)
	return w.SetSize(width, height)
}

// SetPadding sets the same padding on all sides.
func (w *Widget) SetPadding(padding float32) *Widget {
	w.padding = [4]float32{padding, padding, padding, padding}
	return w
}

// SetPaddingAll sets individual padding values.
func (w *Widget) SetPaddingAll(top, right, bottom, left float32) *Widget {
	w.padding = [4]float32{top, right, bottom, left}
	return w
}

// Padding returns [top, right, bottom, left].
func (w *Widget) Padding() [4]float32 {
	return w.padding
}

// SetGap sets the spacing between children of stacks.
func (w *Widget) SetGap(gap float32) *Widget {
	w.gap = gap
	return w
}

// ============================================================================
// Visual Properties
// ============================================================================

// SetBackgroundColor sets the fill color (0xRRGGBBAA).
func (w *Widget) SetBackgroundColor(color uint32) *Widget {
	w.backgroundColor = &color
	return w
}

// ClearBackgroundColor removes the fill.
func (w *Widget) ClearBackgroundColor() *Widget {
	w.backgroundColor = nil
	return w
}

// SetOpacity sets the opacity, clamped to [0, 1].
func (w *Widget) SetOpacity(opacity float32) *Widget {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	w.opacity = opacity
	return w
}

// Opacity returns the current opacity.
func (w *Widget) Opacity() float32 {
	return w.opacity
}

// SetVisible toggles visibility. Hidden widgets are skipped by drawing and
// hit testing but keep their place in layout.
func (w *Widget) SetVisible(visible bool) *Widget {
	w.visible = visible
	return w
}

// Visible reports whether the widget is drawn.
func (w *Widget) Visible() bool {
	return w.visible
}

func (w *Widget) SetText(text string) *Widget {
	w.text = text
	return w
}

func (w *Widget) Text() string {
	return w.text
}

func (w *Widget) SetTextColor(color uint32) *Widget {
	w.textColor = color
	return w
}

func (w *Widget) SetFontSize(size float32) *Widget {
	w.fontSize = size
	return w
}

// SetDrawFunc installs a custom paint callback.
func (w *Widget) SetDrawFunc(fn DrawFunc) *Widget {
	w.drawFn = fn
	return w
}

// SetData attaches arbitrary user data.
func (w *Widget) SetData(data any) *Widget {
	w.data = data
	return w
}

// Data returns the user data.
func (w *Widget) Data() any {
	return w.data
}

// ============================================================================
// Tag and Flags
// ============================================================================

// SetTag stores a configuration tag and derives the sticky flags from it.
// Call StickyScrollView.NotifyStickyAttributeChanged after changing tags of
// widgets that are already hosted.
func (w *Widget) SetTag(tag string) *Widget {
	w.tag = tag
	w.flags = ParseStickyTag(tag)
	return w
}

// Tag returns the configuration tag.
func (w *Widget) Tag() string {
	return w.tag
}

// SetStickyFlags replaces the sticky flags without touching the tag.
func (w *Widget) SetStickyFlags(flags StickyFlags) *Widget {
	w.flags = flags
	return w
}

// StickyFlags returns the sticky capabilities of this widget.
func (w *Widget) StickyFlags() StickyFlags {
	return w.flags
}

// IsSticky reports whether the widget is marked sticky.
func (w *Widget) IsSticky() bool {
	return w.flags.Has(FlagSticky)
}

// ============================================================================
// Interaction
// ============================================================================

// OnTouch sets the touch handler.
func (w *Widget) OnTouch(fn TouchHandler) *Widget {
	w.onTouch = fn
	return w
}

// OnClick sets the click callback for buttons.
func (w *Widget) OnClick(fn func()) *Widget {
	w.onClick = fn
	return w
}

// IsPressed reports whether a gesture is currently pressing this widget.
func (w *Widget) IsPressed() bool {
	return w.pressed
}

// handleTouch delivers a local-coordinate event to the widget.
func (w *Widget) handleTouch(ev *TouchEvent) bool {
	if w.scroller != nil {
		return w.scroller.DispatchTouch(ev)
	}
	if w.onTouch != nil {
		return w.onTouch(w, ev)
	}
	if w.kind == KindButton {
		return w.handleButtonTouch(ev)
	}
	return false
}
