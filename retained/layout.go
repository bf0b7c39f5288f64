package retained

// lineHeightMultiplier sizes text widgets that have no fixed height.
const lineHeightMultiplier = 1.2

// Layout sizes the widget for the given available width and positions its
// children. Stacks place children in flow order; plain containers keep the
// positions set with SetPosition and grow to fit them.
func (w *Widget) Layout(maxWidth float32) {
	switch w.kind {
	case KindVStack:
		w.layoutVertical(maxWidth)
	case KindHStack:
		w.layoutHorizontal(maxWidth)
	case KindContainer:
		w.layoutFree(maxWidth)
	case KindScrollView:
		if w.scroller != nil {
			w.resolveWidth(maxWidth)
			w.scroller.layoutContent()
			return
		}
		w.layoutFree(maxWidth)
	default:
		w.layoutLeaf(maxWidth)
	}
}

func (w *Widget) resolveWidth(maxWidth float32) {
	if !w.fixedWidth {
		w.width = max(0, maxWidth)
	}
}

func (w *Widget) innerWidth() float32 {
	return max(0, w.width-w.padding[1]-w.padding[3])
}

func (w *Widget) layoutLeaf(maxWidth float32) {
	w.resolveWidth(maxWidth)
	if w.fixedHeight {
		return
	}
	h := w.padding[0] + w.padding[2]
	if w.text != "" {
		h += w.fontSize * lineHeightMultiplier
	}
	w.height = h
}

func (w *Widget) layoutVertical(maxWidth float32) {
	w.resolveWidth(maxWidth)
	inner := w.innerWidth()

	y := w.padding[0]
	for i, child := range w.children {
		child.Layout(inner)
		child.left = w.padding[3]
		child.top = y
		y += child.height
		if i < len(w.children)-1 {
			y += w.gap
		}
	}
	if !w.fixedHeight {
		w.height = y + w.padding[2]
	}
}

func (w *Widget) layoutHorizontal(maxWidth float32) {
	w.resolveWidth(maxWidth)
	inner := w.innerWidth()

	// Children without a fixed width share what the fixed ones leave.
	var fixedSum float32
	flexCount := 0
	for _, child := range w.children {
		if child.fixedWidth {
			fixedSum += child.width
		} else {
			flexCount++
		}
	}
	gapTotal := float32(0)
	if len(w.children) > 1 {
		gapTotal = w.gap * float32(len(w.children)-1)
	}
	share := float32(0)
	if flexCount > 0 {
		share = max(0, inner-fixedSum-gapTotal) / float32(flexCount)
	}

	x := w.padding[3]
	var maxHeight float32
	for i, child := range w.children {
		avail := share
		if child.fixedWidth {
			avail = child.width
		}
		child.Layout(avail)
		child.left = x
		child.top = w.padding[0]
		x += child.width
		if i < len(w.children)-1 {
			x += w.gap
		}
		maxHeight = max(maxHeight, child.height)
	}
	if !w.fixedHeight {
		w.height = maxHeight + w.padding[0] + w.padding[2]
	}
}

func (w *Widget) layoutFree(maxWidth float32) {
	w.resolveWidth(maxWidth)
	inner := w.innerWidth()

	var bottom float32
	for _, child := range w.children {
		child.Layout(inner)
		bottom = max(bottom, child.Bottom())
	}
	if !w.fixedHeight {
		w.height = bottom + w.padding[2]
	}
}
