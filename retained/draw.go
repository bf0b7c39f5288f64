package retained

import "github.com/agiangrant/stickyscroll/render"

// Draw paints the widget and its subtree in the widget's local coordinates.
// Hidden and fully transparent widgets draw nothing.
func (w *Widget) Draw(c *render.Canvas) {
	if !w.visible || w.opacity <= 0 {
		return
	}

	c.Save()
	if w.opacity < 1 {
		c.MultiplyAlpha(w.opacity)
	}

	if w.backgroundColor != nil {
		c.DrawRect(0, 0, w.width, w.height, *w.backgroundColor)
	}
	if w.text != "" {
		c.DrawText(w.text, w.padding[3], w.padding[0], w.fontSize, w.textColor)
	}
	if w.drawFn != nil {
		w.drawFn(w, c)
	}

	if w.scroller != nil {
		w.scroller.drawContents(c)
	} else {
		w.drawChildren(c)
	}
	c.Restore()
}

func (w *Widget) drawChildren(c *render.Canvas) {
	for _, child := range w.children {
		drawChild(c, child)
	}
}

// drawChild paints child at its frame offset.
func drawChild(c *render.Canvas, child *Widget) {
	c.Save()
	c.Translate(child.left, child.top)
	child.Draw(c)
	c.Restore()
}
