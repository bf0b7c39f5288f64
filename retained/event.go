package retained

import (
	"fmt"
	"sync"
	"time"
)

// ============================================================================
// Touch Events
// ============================================================================

// TouchAction identifies the phase of a touch gesture.
type TouchAction uint8

const (
	TouchDown TouchAction = iota + 1
	TouchMove
	TouchUp
	TouchCancel
)

func (a TouchAction) String() string {
	switch a {
	case TouchDown:
		return "down"
	case TouchMove:
		return "move"
	case TouchUp:
		return "up"
	case TouchCancel:
		return "cancel"
	default:
		return fmt.Sprintf("TouchAction(%d)", uint8(a))
	}
}

// IsGestureEnd reports whether the action terminates a gesture.
func (a TouchAction) IsGestureEnd() bool {
	return a == TouchUp || a == TouchCancel
}

// TouchEvent is a single-pointer touch sample.
// X and Y are in the coordinate space of whoever is handling the event:
// the scroll view's own space during dispatch, the widget's local space
// inside a TouchHandler.
type TouchEvent struct {
	Action TouchAction
	X, Y   float32
	Time   time.Time
}

// NewTouchEvent creates a touch event. Uses an object pool; call Release
// when done with it.
func NewTouchEvent(action TouchAction, x, y float32) *TouchEvent {
	e := touchEventPool.Get().(*TouchEvent)
	e.Action = action
	e.X = x
	e.Y = y
	e.Time = time.Now()
	return e
}

// ObtainTouchEvent returns a pooled copy of src.
func ObtainTouchEvent(src *TouchEvent) *TouchEvent {
	e := touchEventPool.Get().(*TouchEvent)
	*e = *src
	return e
}

// OffsetLocation moves the event by dx, dy.
func (e *TouchEvent) OffsetLocation(dx, dy float32) {
	e.X += dx
	e.Y += dy
}

// Release returns the event to the pool. The event must not be used after.
func (e *TouchEvent) Release() {
	touchEventPool.Put(e)
}

func (e *TouchEvent) String() string {
	return fmt.Sprintf("%s(%.1f, %.1f)", e.Action, e.X, e.Y)
}

// Object pool for touch events to avoid allocations on every move
var touchEventPool = sync.Pool{
	New: func() any {
		return &TouchEvent{}
	},
}
