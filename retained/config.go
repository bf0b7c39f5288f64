package retained

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidColor is returned for color strings that are not #RGB, #RRGGBB
// or #RRGGBBAA.
var ErrInvalidColor = errors.New("invalid color")

// StickyConfig holds the construction-time settings of a StickyScrollView.
// It maps onto the [sticky] table of a TOML file.
type StickyConfig struct {
	// Shadow thickness in density-independent pixels
	ShadowHeightDP float32 `toml:"shadow_height_dp"`

	// Pixels per dp
	Density float32 `toml:"density"`

	// Shadow color (#RGB, #RRGGBB or #RRGGBBAA). Empty disables the shadow.
	ShadowColor string `toml:"shadow_color"`

	// Shadow blur radius in pixels
	ShadowBlur float32 `toml:"shadow_blur"`

	// Period of the redraw tick for non-constant pinned views
	InvalidateIntervalMS int `toml:"invalidate_interval_ms"`

	// Drag distance before a child's gesture becomes a scroll
	TouchSlop float32 `toml:"touch_slop"`

	// Clip content to the padded area. Unset means true from the first layout.
	ClipToPadding *bool `toml:"clip_to_padding,omitempty"`
}

// DefaultStickyConfig returns the default settings.
func DefaultStickyConfig() StickyConfig {
	return StickyConfig{
		ShadowHeightDP:       10,
		Density:              1,
		ShadowColor:          "#00000040",
		ShadowBlur:           6,
		InvalidateIntervalMS: 16,
		TouchSlop:            DefaultTouchSlop,
	}
}

// DecodeStickyConfig reads TOML settings from r on top of the defaults.
func DecodeStickyConfig(r io.Reader) (StickyConfig, error) {
	config := DefaultStickyConfig()
	if err := toml.NewDecoder(r).Decode(&config); err != nil {
		return config, fmt.Errorf("failed to parse sticky config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// LoadStickyConfig reads settings from a TOML file.
func LoadStickyConfig(path string) (StickyConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return DefaultStickyConfig(), fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer f.Close()
	return DecodeStickyConfig(f)
}

// Validate checks ranges and the shadow color.
func (c StickyConfig) Validate() error {
	if c.ShadowHeightDP < 0 {
		return fmt.Errorf("shadow_height_dp must not be negative, got %v", c.ShadowHeightDP)
	}
	if c.Density <= 0 {
		return fmt.Errorf("density must be positive, got %v", c.Density)
	}
	if c.InvalidateIntervalMS <= 0 {
		return fmt.Errorf("invalidate_interval_ms must be positive, got %d", c.InvalidateIntervalMS)
	}
	if c.TouchSlop < 0 {
		return fmt.Errorf("touch_slop must not be negative, got %v", c.TouchSlop)
	}
	if c.ShadowColor != "" {
		if _, err := ParseColor(c.ShadowColor); err != nil {
			return fmt.Errorf("shadow_color: %w", err)
		}
	}
	return nil
}

// ShadowHeightPx converts the shadow height to whole pixels.
func (c StickyConfig) ShadowHeightPx() int {
	return int(c.ShadowHeightDP*c.Density + 0.5)
}

// InvalidateInterval returns the non-constant redraw period.
func (c StickyConfig) InvalidateInterval() time.Duration {
	if c.InvalidateIntervalMS <= 0 {
		return 16 * time.Millisecond
	}
	return time.Duration(c.InvalidateIntervalMS) * time.Millisecond
}

// ShadowDrawable builds the configured shadow, or nil when no color is set.
func (c StickyConfig) ShadowDrawable() (Drawable, error) {
	if c.ShadowColor == "" {
		return nil, nil
	}
	color, err := ParseColor(c.ShadowColor)
	if err != nil {
		return nil, fmt.Errorf("shadow_color: %w", err)
	}
	return NewShadowDrawable(color, c.ShadowBlur), nil
}

// ParseColor parses #RGB, #RRGGBB or #RRGGBBAA into 0xRRGGBBAA.
// Colors without an alpha component are opaque.
func ParseColor(value string) (uint32, error) {
	value = strings.TrimSpace(value)
	hex, ok := strings.CutPrefix(value, "#")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}

	// Expand shorthand: #RGB → #RRGGBB
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	switch len(hex) {
	case 6:
		hex += "ff"
	case 8:
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}
	return uint32(v), nil
}
