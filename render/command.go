// Package render records drawing operations as a flat list of render commands.
//
// Commands carry absolute (device) coordinates. The Canvas type provides the
// stateful front-end used by widgets (save/restore, translation, clipping and
// alpha), and resolves that state into plain commands as they are recorded.
package render

import "encoding/json"

// ============================================================================
// Render Commands
// ============================================================================

// Command represents a single rendering operation.
// Exactly one field is set.
type Command struct {
	DrawRect   *DrawRectCmd   `json:"DrawRect,omitempty"`
	DrawText   *DrawTextCmd   `json:"DrawText,omitempty"`
	DrawShadow *DrawShadowCmd `json:"DrawShadow,omitempty"`
	PushClip   *PushClipCmd   `json:"PushClip,omitempty"`
	PopClip    *struct{}      `json:"PopClip,omitempty"`
	SetOpacity *float32       `json:"SetOpacity,omitempty"`
}

type DrawRectCmd struct {
	X           float32    `json:"x"`
	Y           float32    `json:"y"`
	Width       float32    `json:"width"`
	Height      float32    `json:"height"`
	Color       uint32     `json:"color"`
	CornerRadii [4]float32 `json:"corner_radii"`
}

type DrawTextCmd struct {
	X     float32 `json:"x"`
	Y     float32 `json:"y"`
	Text  string  `json:"text"`
	Size  float32 `json:"size"`
	Color uint32  `json:"color"`
}

type DrawShadowCmd struct {
	X       float32 `json:"x"`
	Y       float32 `json:"y"`
	Width   float32 `json:"width"`
	Height  float32 `json:"height"`
	Blur    float32 `json:"blur"`
	Color   uint32  `json:"color"`
	OffsetX float32 `json:"offset_x"`
	OffsetY float32 `json:"offset_y"`
}

type PushClipCmd struct {
	X      float32 `json:"x"`
	Y      float32 `json:"y"`
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

// ============================================================================
// Command Builders
// ============================================================================

func RectCmd(x, y, width, height float32, color uint32) Command {
	return Command{
		DrawRect: &DrawRectCmd{
			X: x, Y: y, Width: width, Height: height,
			Color: color,
		},
	}
}

func Text(text string, x, y, size float32, color uint32) Command {
	return Command{
		DrawText: &DrawTextCmd{X: x, Y: y, Text: text, Size: size, Color: color},
	}
}

func Shadow(x, y, width, height, blur float32, color uint32) Command {
	return Command{
		DrawShadow: &DrawShadowCmd{
			X: x, Y: y, Width: width, Height: height,
			Blur: blur, Color: color,
		},
	}
}

func PushClip(x, y, width, height float32) Command {
	return Command{
		PushClip: &PushClipCmd{X: x, Y: y, Width: width, Height: height},
	}
}

func PopClip() Command {
	return Command{
		PopClip: &struct{}{},
	}
}

func Opacity(alpha float32) Command {
	return Command{SetOpacity: &alpha}
}

// Kind returns a short name for the populated field, mostly for tests and
// debug output.
func (c Command) Kind() string {
	switch {
	case c.DrawRect != nil:
		return "DrawRect"
	case c.DrawText != nil:
		return "DrawText"
	case c.DrawShadow != nil:
		return "DrawShadow"
	case c.PushClip != nil:
		return "PushClip"
	case c.PopClip != nil:
		return "PopClip"
	case c.SetOpacity != nil:
		return "SetOpacity"
	default:
		return "Empty"
	}
}

// CommandList is the serialized form of one frame.
type CommandList struct {
	Commands []Command `json:"commands"`
}

// ToJSON serializes the command list.
func (l CommandList) ToJSON() (string, error) {
	data, err := json.Marshal(l)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
