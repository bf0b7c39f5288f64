package retained

import "github.com/agiangrant/stickyscroll/render"

// Drawable is something that paints itself into bounds set by its owner.
type Drawable interface {
	SetBounds(r render.Rect)
	Draw(c *render.Canvas)
}

// ShadowDrawable paints a blurred shadow filling its bounds.
type ShadowDrawable struct {
	Color  uint32 // 0xRRGGBBAA
	Blur   float32
	bounds render.Rect
}

// NewShadowDrawable creates a shadow with the given color and blur radius.
func NewShadowDrawable(color uint32, blur float32) *ShadowDrawable {
	return &ShadowDrawable{Color: color, Blur: blur}
}

func (d *ShadowDrawable) SetBounds(r render.Rect) { d.bounds = r }

// Bounds returns the last bounds set.
func (d *ShadowDrawable) Bounds() render.Rect { return d.bounds }

func (d *ShadowDrawable) Draw(c *render.Canvas) {
	if d.bounds.Empty() {
		return
	}
	c.DrawShadow(d.bounds.Left, d.bounds.Top, d.bounds.Width(), d.bounds.Height(), d.Blur, d.Color)
}

// ColorDrawable fills its bounds with a solid color.
type ColorDrawable struct {
	Color  uint32
	bounds render.Rect
}

// NewColorDrawable creates a solid fill.
func NewColorDrawable(color uint32) *ColorDrawable {
	return &ColorDrawable{Color: color}
}

func (d *ColorDrawable) SetBounds(r render.Rect) { d.bounds = r }

// Bounds returns the last bounds set.
func (d *ColorDrawable) Bounds() render.Rect { return d.bounds }

func (d *ColorDrawable) Draw(c *render.Canvas) {
	if d.bounds.Empty() {
		return
	}
	c.DrawRect(d.bounds.Left, d.bounds.Top, d.bounds.Width(), d.bounds.Height(), d.Color)
}
