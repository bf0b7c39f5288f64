package retained

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStickyConfig(t *testing.T) {
	cfg, err := DecodeStickyConfig(strings.NewReader(`
shadow_height_dp = 4
density = 2.5
shadow_color = "#336699"
clip_to_padding = false
`))
	require.NoError(t, err)

	assert.Equal(t, float32(4), cfg.ShadowHeightDP)
	assert.Equal(t, 10, cfg.ShadowHeightPx())
	assert.Equal(t, 16*time.Millisecond, cfg.InvalidateInterval(), "unset keys keep defaults")
	require.NotNil(t, cfg.ClipToPadding)
	assert.False(t, *cfg.ClipToPadding)

	d, err := cfg.ShadowDrawable()
	require.NoError(t, err)
	shadow, ok := d.(*ShadowDrawable)
	require.True(t, ok)
	assert.Equal(t, uint32(0x336699FF), shadow.Color)
	assert.Equal(t, float32(6), shadow.Blur)
}

func TestDecodeStickyConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{name: "syntax", toml: `shadow_height_dp = `},
		{name: "bad color", toml: `shadow_color = "blue"`},
		{name: "zero density", toml: `density = 0`},
		{name: "zero interval", toml: `invalidate_interval_ms = 0`},
		{name: "negative slop", toml: `touch_slop = -1`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeStickyConfig(strings.NewReader(tt.toml))
			assert.Error(t, err)
		})
	}
}

func TestLoadStickyConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sticky.toml")
	require.NoError(t, os.WriteFile(path, []byte("touch_slop = 12\n"), 0644))

	cfg, err := LoadStickyConfig(path)
	require.NoError(t, err)
	assert.Equal(t, float32(12), cfg.TouchSlop)

	_, err = LoadStickyConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestShadowHeightPxRounds(t *testing.T) {
	tests := []struct {
		dp, density float32
		want        int
	}{
		{dp: 10, density: 1, want: 10},
		{dp: 10, density: 1.5, want: 15},
		{dp: 3, density: 1.5, want: 5},
		{dp: 3, density: 1.3, want: 4},
		{dp: 0, density: 3, want: 0},
	}
	for _, tt := range tests {
		cfg := DefaultStickyConfig()
		cfg.ShadowHeightDP = tt.dp
		cfg.Density = tt.density
		assert.Equal(t, tt.want, cfg.ShadowHeightPx(), "%vdp at %vx", tt.dp, tt.density)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{in: "#FFF", want: 0xFFFFFFFF},
		{in: "#102030", want: 0x102030FF},
		{in: "#00000040", want: 0x00000040},
		{in: " #abc ", want: 0xAABBCCFF},
		{in: "abc", wantErr: true},
		{in: "#12345", wantErr: true},
		{in: "#GGGGGG", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidColor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEmptyShadowColorDisablesShadow(t *testing.T) {
	cfg := DefaultStickyConfig()
	cfg.ShadowColor = ""
	d, err := cfg.ShadowDrawable()
	require.NoError(t, err)
	assert.Nil(t, d)
}
