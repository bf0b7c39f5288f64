// Package stickyscroll is the entry point for sticky scroll containers.
// The implementation lives in the retained package; this package re-exports
// the pieces most callers need.
package stickyscroll

import (
	"io"

	"github.com/agiangrant/stickyscroll/retained"
)

// Version of the module.
const Version = "0.1.0"

// Config configures a sticky scroll view.
// This is a re-export of retained.StickyConfig for consumer convenience.
type Config = retained.StickyConfig

// View is a scroll container that pins sticky children to its top edge.
type View = retained.StickyScrollView

// Tag conventions recognized on widgets.
const (
	TagSticky       = retained.StickyTag
	TagNonConstant  = retained.TagFlagNonConstant
	TagTransparency = retained.TagFlagTransparency
)

// DefaultConfig returns the default settings.
func DefaultConfig() Config {
	return retained.DefaultStickyConfig()
}

// LoadConfig reads settings from a TOML file.
func LoadConfig(path string) (Config, error) {
	return retained.LoadStickyConfig(path)
}

// DecodeConfig reads TOML settings from r.
func DecodeConfig(r io.Reader) (Config, error) {
	return retained.DecodeStickyConfig(r)
}

// New creates a sticky scroll view hosting content, with its own task queue.
func New(cfg Config, content *retained.Widget) (*View, error) {
	v, err := retained.NewStickyScrollView(cfg, nil)
	if err != nil {
		return nil, err
	}
	if content != nil {
		v.SetContent(content)
	}
	return v, nil
}
