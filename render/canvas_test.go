package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasTranslateAppliesToDraws(t *testing.T) {
	c := NewCanvas()
	c.Translate(10, 20)
	c.DrawRect(1, 2, 30, 40, 0xFF0000FF)

	cmds := c.Commands()
	require.Len(t, cmds, 1)
	require.NotNil(t, cmds[0].DrawRect)
	assert.Equal(t, float32(11), cmds[0].DrawRect.X)
	assert.Equal(t, float32(22), cmds[0].DrawRect.Y)
	assert.Equal(t, float32(30), cmds[0].DrawRect.Width)
}

func TestCanvasSaveRestore(t *testing.T) {
	c := NewCanvas()
	c.Translate(5, 5)
	depth := c.Save()
	assert.Equal(t, 0, depth)

	c.Translate(100, 100)
	c.ClipRect(0, 0, 10, 10)
	c.ClipRect(5, 5, 50, 50)
	c.Restore()

	x, y := c.Translation()
	assert.Equal(t, float32(5), x)
	assert.Equal(t, float32(5), y)
	_, clipped := c.Clip()
	assert.False(t, clipped)

	kinds := make([]string, 0, len(c.Commands()))
	for _, cmd := range c.Commands() {
		kinds = append(kinds, cmd.Kind())
	}
	assert.Equal(t, []string{"PushClip", "PushClip", "PopClip", "PopClip"}, kinds)
}

func TestCanvasClipIntersects(t *testing.T) {
	c := NewCanvas()
	c.ClipRect(0, 0, 100, 100)
	c.Translate(50, 50)
	ok := c.ClipRect(0, 0, 100, 100)
	require.True(t, ok)

	clip, clipped := c.Clip()
	require.True(t, clipped)
	assert.Equal(t, Rect{50, 50, 100, 100}, clip)

	ok = c.ClipRect(60, 60, 70, 70)
	assert.False(t, ok, "clip outside the current clip is empty")
}

func TestCanvasAlpha(t *testing.T) {
	c := NewCanvas()
	c.Save()
	c.MultiplyAlpha(0.5)
	c.Save()
	c.MultiplyAlpha(0.5)
	assert.Equal(t, float32(0.25), c.Alpha())
	c.Restore()
	assert.Equal(t, float32(0.5), c.Alpha())
	c.Restore()
	assert.Equal(t, float32(1), c.Alpha())

	var opacities []float32
	for _, cmd := range c.Commands() {
		if cmd.SetOpacity != nil {
			opacities = append(opacities, *cmd.SetOpacity)
		}
	}
	assert.Equal(t, []float32{0.5, 0.25, 0.5, 1}, opacities)
}

func TestCanvasRestoreWithoutSave(t *testing.T) {
	c := NewCanvas()
	c.Restore()
	assert.Empty(t, c.Commands())
	assert.Equal(t, 0, c.SaveCount())
}

func TestCanvasFinishClosesSaves(t *testing.T) {
	c := NewCanvas()
	c.Save()
	c.ClipRect(0, 0, 10, 10)
	c.Save()
	c.ClipRect(0, 0, 5, 5)

	list := c.Finish()
	assert.Equal(t, 0, c.SaveCount())
	assert.Len(t, list.Commands, 4)
	assert.Equal(t, "PopClip", list.Commands[3].Kind())
}

func TestCommandListJSON(t *testing.T) {
	c := NewCanvas()
	c.DrawText("Header", 4, 4, 14, 0xFFFFFFFF)
	c.DrawShadow(0, 40, 100, 10, 6, 0x00000040)

	out, err := c.Finish().ToJSON()
	require.NoError(t, err)

	var parsed map[string][]map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	require.Len(t, parsed["commands"], 2)
	assert.Contains(t, parsed["commands"][0], "DrawText")
	assert.Contains(t, parsed["commands"][1], "DrawShadow")
}

func TestCommandBuilders(t *testing.T) {
	rect := RectCmd(1, 2, 3, 4, 0x112233FF)
	assert.Equal(t, "DrawRect", rect.Kind())
	assert.Equal(t, DrawRectCmd{X: 1, Y: 2, Width: 3, Height: 4, Color: 0x112233FF}, *rect.DrawRect)

	c := NewCanvas()
	c.DrawRect(1, 2, 3, 4, 0x112233FF)
	assert.Equal(t, []Command{rect}, c.Commands())
}

func TestRectOps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlap", Rect{0, 0, 10, 10}, Rect{5, 5, 20, 20}, Rect{0, 0, 20, 20}},
		{"empty left", Rect{}, Rect{1, 1, 2, 2}, Rect{1, 1, 2, 2}},
		{"empty right", Rect{1, 1, 2, 2}, Rect{}, Rect{1, 1, 2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Union(tt.b))
		})
	}

	assert.True(t, Rect{0, 0, 10, 10}.Contains(0, 9.5))
	assert.False(t, Rect{0, 0, 10, 10}.Contains(10, 5))
	assert.True(t, Rect{5, 5, 5, 10}.Empty())
}
