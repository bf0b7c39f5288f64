package render

// Rect is an axis-aligned rectangle given by its edges.
type Rect struct {
	Left, Top, Right, Bottom float32
}

// Width returns the horizontal extent, never negative.
func (r Rect) Width() float32 {
	if r.Right < r.Left {
		return 0
	}
	return r.Right - r.Left
}

// Height returns the vertical extent, never negative.
func (r Rect) Height() float32 {
	if r.Bottom < r.Top {
		return 0
	}
	return r.Bottom - r.Top
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Contains checks if a point is within the rectangle (right/bottom exclusive).
func (r Rect) Contains(x, y float32) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// Offset returns the rectangle moved by dx, dy.
func (r Rect) Offset(dx, dy float32) Rect {
	return Rect{r.Left + dx, r.Top + dy, r.Right + dx, r.Bottom + dy}
}

// Intersect returns the overlap of r and o. The result may be empty.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		Left:   max(r.Left, o.Left),
		Top:    max(r.Top, o.Top),
		Right:  min(r.Right, o.Right),
		Bottom: min(r.Bottom, o.Bottom),
	}
}

// Union returns the smallest rectangle covering both r and o.
// An empty operand is ignored.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	return Rect{
		Left:   min(r.Left, o.Left),
		Top:    min(r.Top, o.Top),
		Right:  max(r.Right, o.Right),
		Bottom: max(r.Bottom, o.Bottom),
	}
}

// ============================================================================
// Canvas
// ============================================================================

// canvasState is one entry of the save stack.
type canvasState struct {
	tx, ty  float32
	clip    Rect
	clipped bool
	pushes  int // PushClip commands emitted at this level
	alpha   float32
}

// Canvas records drawing calls into a command list.
// Coordinates passed to drawing methods are local to the current translation.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	commands []Command
	state    canvasState
	stack    []canvasState
}

// NewCanvas creates an empty canvas with identity transform and full alpha.
func NewCanvas() *Canvas {
	return &Canvas{
		commands: make([]Command, 0, 64),
		state:    canvasState{alpha: 1},
	}
}

// Save pushes the current translation, clip and alpha.
// Returns the save depth before the call, suitable for RestoreToCount.
func (c *Canvas) Save() int {
	depth := len(c.stack)
	c.stack = append(c.stack, c.state)
	c.state.pushes = 0
	return depth
}

// Restore pops the state pushed by the matching Save. Clips added since the
// Save are popped and the previous alpha is re-emitted if it changed.
// Restore without a matching Save is a no-op.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	for i := 0; i < c.state.pushes; i++ {
		c.commands = append(c.commands, PopClip())
	}
	prev := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	if prev.alpha != c.state.alpha {
		c.commands = append(c.commands, Opacity(prev.alpha))
	}
	c.state = prev
}

// RestoreToCount restores until the save depth equals depth.
func (c *Canvas) RestoreToCount(depth int) {
	for len(c.stack) > depth {
		c.Restore()
	}
}

// SaveCount returns the current save depth.
func (c *Canvas) SaveCount() int {
	return len(c.stack)
}

// Translate moves the origin by dx, dy.
func (c *Canvas) Translate(dx, dy float32) {
	c.state.tx += dx
	c.state.ty += dy
}

// Translation returns the current origin in device coordinates.
func (c *Canvas) Translation() (x, y float32) {
	return c.state.tx, c.state.ty
}

// ClipRect intersects the clip with the local rectangle (left, top, right, bottom).
// Returns false if the resulting clip is empty.
func (c *Canvas) ClipRect(left, top, right, bottom float32) bool {
	r := Rect{left, top, right, bottom}.Offset(c.state.tx, c.state.ty)
	if c.state.clipped {
		r = c.state.clip.Intersect(r)
	}
	c.state.clip = r
	c.state.clipped = true
	c.state.pushes++
	c.commands = append(c.commands, PushClip(r.Left, r.Top, r.Width(), r.Height()))
	return !r.Empty()
}

// Clip returns the active clip in device coordinates and whether one is set.
func (c *Canvas) Clip() (Rect, bool) {
	return c.state.clip, c.state.clipped
}

// Alpha returns the effective alpha multiplier.
func (c *Canvas) Alpha() float32 {
	return c.state.alpha
}

// MultiplyAlpha scales the effective alpha until the next Restore.
func (c *Canvas) MultiplyAlpha(alpha float32) {
	next := c.state.alpha * clamp01(alpha)
	if next == c.state.alpha {
		return
	}
	c.state.alpha = next
	c.commands = append(c.commands, Opacity(next))
}

// DrawRect fills a local rectangle.
func (c *Canvas) DrawRect(x, y, width, height float32, color uint32) {
	c.commands = append(c.commands, RectCmd(x+c.state.tx, y+c.state.ty, width, height, color))
}

// DrawText draws text with its top-left corner at a local point.
func (c *Canvas) DrawText(text string, x, y, size float32, color uint32) {
	c.commands = append(c.commands, Text(text, x+c.state.tx, y+c.state.ty, size, color))
}

// DrawShadow draws a blurred shadow filling a local rectangle.
func (c *Canvas) DrawShadow(x, y, width, height, blur float32, color uint32) {
	c.commands = append(c.commands, Shadow(x+c.state.tx, y+c.state.ty, width, height, blur, color))
}

// Commands returns the recorded commands. The slice is owned by the canvas.
func (c *Canvas) Commands() []Command {
	return c.commands
}

// Finish closes any open saves and returns the recorded frame.
func (c *Canvas) Finish() CommandList {
	c.RestoreToCount(0)
	return CommandList{Commands: c.commands}
}

// Reset clears recorded commands and state so the canvas can be reused.
func (c *Canvas) Reset() {
	c.commands = c.commands[:0]
	c.stack = c.stack[:0]
	c.state = canvasState{alpha: 1}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
