package retained

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/stickyscroll/render"
)

func TestWidgetCreation(t *testing.T) {
	tests := []struct {
		name      string
		widget    *Widget
		wantKind  WidgetKind
		composite bool
	}{
		{name: "VStack", widget: VStack(), wantKind: KindVStack, composite: true},
		{name: "HStack", widget: HStack(), wantKind: KindHStack, composite: true},
		{name: "Container", widget: Container(), wantKind: KindContainer, composite: true},
		{name: "Text", widget: Text("Hello"), wantKind: KindText},
		{name: "Button", widget: Button("Click", nil), wantKind: KindButton},
		{name: "Custom", widget: Custom(nil), wantKind: KindCustom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, tt.widget.Kind())
			assert.Equal(t, tt.composite, tt.widget.IsComposite())
			assert.Equal(t, float32(1), tt.widget.Opacity())
			assert.True(t, tt.widget.Visible())
		})
	}
}

func TestWidgetIDsAreUnique(t *testing.T) {
	seen := make(map[WidgetID]bool)
	for n := 0; n < 100; n++ {
		id := NewWidget(KindCustom).ID()
		require.False(t, seen[id])
		seen[id] = true
	}
}

func TestWidgetTree(t *testing.T) {
	a, b, c := Text("a"), Text("b"), Text("c")
	parent := VStack(a, c)
	parent.InsertChild(1, b)

	assert.Equal(t, []*Widget{a, b, c}, parent.Children())
	assert.Same(t, parent, b.Parent())
	assert.Same(t, c, parent.ChildAt(2))
	assert.Nil(t, parent.ChildAt(3))

	// Adding to another parent moves the widget.
	other := VStack(b)
	assert.Equal(t, 2, parent.ChildCount())
	assert.Same(t, other, b.Parent())

	assert.True(t, parent.RemoveChild(a))
	assert.False(t, parent.RemoveChild(a))
	assert.Nil(t, a.Parent())

	c.RemoveFromParent()
	assert.Equal(t, 0, parent.ChildCount())
}

func TestWidgetIsDescendantOf(t *testing.T) {
	leaf := Text("leaf")
	mid := VStack(leaf)
	root := VStack(mid)

	assert.True(t, leaf.IsDescendantOf(root))
	assert.True(t, leaf.IsDescendantOf(mid))
	assert.False(t, root.IsDescendantOf(leaf))
	assert.False(t, leaf.IsDescendantOf(leaf))
}

type countingListener struct{ n int }

func (l *countingListener) hierarchyChanged() { l.n++ }

func TestHierarchyNotificationsPropagate(t *testing.T) {
	l := &countingListener{}
	root := Container()
	root.setHost(l)

	group := Container()
	root.AddChild(group)
	assert.Equal(t, 1, l.n)

	leaf := Text("x")
	group.AddChild(leaf)
	assert.Equal(t, 2, l.n, "descendants inherit the host")

	group.RemoveChild(leaf)
	assert.Equal(t, 3, l.n)
	assert.Nil(t, leaf.host)
}

func TestSetOpacityClamps(t *testing.T) {
	w := NewWidget(KindCustom)
	assert.Equal(t, float32(0), w.SetOpacity(-1).Opacity())
	assert.Equal(t, float32(1), w.SetOpacity(3).Opacity())
	assert.Equal(t, float32(0.25), w.SetOpacity(0.25).Opacity())
}

// ============================================================================
// Layout
// ============================================================================

func TestVStackLayout(t *testing.T) {
	a := NewWidget(KindCustom).SetHeight(30)
	b := Text("hello").SetFontSize(10)
	stack := VStack(a, b).SetPadding(5).SetGap(4)
	stack.Layout(200)

	assert.Equal(t, float32(200), stack.Width())
	assert.Equal(t, render.Rect{Left: 5, Top: 5, Right: 195, Bottom: 35}, a.Frame())
	assert.Equal(t, float32(39), b.Top())
	assert.InDelta(t, 12, b.Height(), 0.001)
	assert.InDelta(t, 56, stack.Height(), 0.001)
}

func TestHStackLayout(t *testing.T) {
	fixed := NewWidget(KindCustom).SetSize(40, 20)
	flexA := NewWidget(KindCustom).SetHeight(10)
	flexB := NewWidget(KindCustom).SetHeight(30)
	row := HStack(fixed, flexA, flexB).SetGap(10)
	row.Layout(200)

	assert.Equal(t, float32(0), fixed.Left())
	assert.Equal(t, float32(50), flexA.Left())
	assert.Equal(t, float32(70), flexA.Width())
	assert.Equal(t, float32(130), flexB.Left())
	assert.Equal(t, float32(30), row.Height())
}

func TestContainerKeepsPositions(t *testing.T) {
	child := NewWidget(KindCustom).SetFrame(10, 400, 50, 60)
	c := Container(child)
	c.Layout(300)

	assert.Equal(t, float32(10), child.Left())
	assert.Equal(t, float32(400), child.Top())
	assert.Equal(t, float32(460), c.Height())
}

// ============================================================================
// Flags
// ============================================================================

func TestParseStickyTag(t *testing.T) {
	tests := []struct {
		tag  string
		want StickyFlags
	}{
		{tag: "", want: 0},
		{tag: "header", want: 0},
		{tag: "sticky", want: FlagSticky},
		{tag: "sticky-nonconstant", want: FlagSticky | FlagNonConstant},
		{tag: "sticky-hastransparancy", want: FlagSticky | FlagHasTransparency},
		{tag: "sticky-nonconstant-hastransparancy", want: FlagSticky | FlagNonConstant | FlagHasTransparency},
		{tag: "item-sticky", want: FlagSticky},
		{tag: "-nonconstant", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStickyTag(tt.tag))
			w := NewWidget(KindCustom).SetTag(tt.tag)
			assert.Equal(t, tt.want, w.StickyFlags())
			assert.Equal(t, tt.want.Has(FlagSticky), w.IsSticky())
		})
	}
}

func TestStickyFlagsString(t *testing.T) {
	assert.Equal(t, "none", StickyFlags(0).String())
	assert.Equal(t, "sticky|hastransparency", (FlagSticky | FlagHasTransparency).String())
}

// ============================================================================
// Touch events and buttons
// ============================================================================

func TestTouchEventCopyAndOffset(t *testing.T) {
	ev := NewTouchEvent(TouchMove, 10, 20)
	defer ev.Release()
	cp := ObtainTouchEvent(ev)
	defer cp.Release()

	cp.OffsetLocation(5, -5)
	assert.Equal(t, float32(15), cp.X)
	assert.Equal(t, float32(15), cp.Y)
	assert.Equal(t, float32(20), ev.Y)
	assert.Equal(t, TouchMove, cp.Action)
	assert.Equal(t, "move(15.0, 15.0)", cp.String())
}

func TestButtonClickRequiresUpInside(t *testing.T) {
	clicks := 0
	b := Button("ok", func() { clicks++ }).SetSize(100, 40)

	b.handleTouch(&TouchEvent{Action: TouchDown, X: 10, Y: 10})
	b.handleTouch(&TouchEvent{Action: TouchMove, X: 150, Y: 10})
	assert.False(t, b.IsPressed())
	b.handleTouch(&TouchEvent{Action: TouchUp, X: 150, Y: 10})
	assert.Equal(t, 0, clicks)

	b.handleTouch(&TouchEvent{Action: TouchDown, X: 10, Y: 10})
	b.handleTouch(&TouchEvent{Action: TouchUp, X: 20, Y: 20})
	assert.Equal(t, 1, clicks)

	b.handleTouch(&TouchEvent{Action: TouchDown, X: 10, Y: 10})
	b.handleTouch(&TouchEvent{Action: TouchCancel, X: 10, Y: 10})
	b.handleTouch(&TouchEvent{Action: TouchUp, X: 10, Y: 10})
	assert.Equal(t, 1, clicks)
}
