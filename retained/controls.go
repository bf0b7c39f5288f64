package retained

// ============================================================================
// Builders
// ============================================================================

// Container creates a container whose children keep explicit positions.
func Container(children ...*Widget) *Widget {
	return NewWidget(KindContainer).AddChildren(children...)
}

// VStack creates a vertical stack container.
// Children are laid out top-to-bottom.
func VStack(children ...*Widget) *Widget {
	return NewWidget(KindVStack).AddChildren(children...)
}

// HStack creates a horizontal stack container.
// Children are laid out left-to-right.
func HStack(children ...*Widget) *Widget {
	return NewWidget(KindHStack).AddChildren(children...)
}

// Text creates a text widget.
func Text(text string) *Widget {
	return NewWidget(KindText).SetText(text)
}

// Button creates a button that reports taps through OnClick.
func Button(text string, onClick func()) *Widget {
	return NewWidget(KindButton).SetText(text).OnClick(onClick)
}

// Custom creates a leaf that paints itself with fn.
func Custom(fn DrawFunc) *Widget {
	return NewWidget(KindCustom).SetDrawFunc(fn)
}

// ============================================================================
// Button
// ============================================================================

// handleButtonTouch implements press tracking: the button consumes the down,
// stays pressed while the pointer is inside, and clicks on an up inside its
// bounds.
func (w *Widget) handleButtonTouch(ev *TouchEvent) bool {
	inside := ev.X >= 0 && ev.X <= w.width && ev.Y >= 0 && ev.Y <= w.height
	switch ev.Action {
	case TouchDown:
		w.pressed = true
		return true
	case TouchMove:
		w.pressed = inside
		return true
	case TouchUp:
		wasPressed := w.pressed
		w.pressed = false
		if wasPressed && inside && w.onClick != nil {
			w.onClick()
		}
		return true
	case TouchCancel:
		w.pressed = false
		return true
	}
	return false
}
