package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig() ProjectConfig {
	config := DefaultConfig()
	config.Demo.Width = 300
	config.Demo.Height = 200
	config.Demo.Sections = []SectionConfig{
		{Title: "A", Tag: "sticky", HeaderHeight: 40, Rows: 5, RowHeight: 50},
		{Title: "B", Tag: "sticky", HeaderHeight: 40, Rows: 5, RowHeight: 50},
	}
	return config
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFile)
	config := smallConfig()
	config.Sticky.ShadowHeightDP = 4

	require.NoError(t, SaveConfig(path, config))
	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config.Demo, loaded.Demo)
	assert.Equal(t, float32(4), loaded.Sticky.ShadowHeightDP)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[demo]\nwidth = 0\nheight = 10\n"), 0644))
	_, err = LoadConfig(bad)
	assert.ErrorContains(t, err, "viewport must be positive")

	color := filepath.Join(dir, "color.toml")
	require.NoError(t, os.WriteFile(color, []byte("[[demo.section]]\ntitle = \"X\"\nheader_height = 10\ncolor = \"blue\"\n"), 0644))
	_, err = LoadConfig(color)
	assert.ErrorContains(t, err, "section 0")
}

func TestBuildDemo(t *testing.T) {
	demo, err := BuildDemo(smallConfig())
	require.NoError(t, err)

	view := demo.View
	require.Len(t, view.StickyViews(), 2)
	// 2 * (40 + 5*50) = 580 content, 200 viewport
	assert.Equal(t, float32(380), view.MaxScrollY())

	view.ScrollTo(100)
	assert.Same(t, demo.Headers[0], view.Pinned())

	view.ScrollTo(290)
	assert.Same(t, demo.Headers[1], view.Pinned())
	assert.Equal(t, float32(0), view.PinOffset())
}

func TestSimulateTap(t *testing.T) {
	demo, err := BuildDemo(smallConfig())
	require.NoError(t, err)

	t.Run("pinned header", func(t *testing.T) {
		demo.View.ScrollTo(100)
		res := SimulateTap(demo, 20, 10)
		assert.True(t, res.Redirected)
		assert.Equal(t, "A", res.Clicked)
	})

	t.Run("row below header", func(t *testing.T) {
		demo.View.ScrollTo(100)
		// content y = 160, row A3 spans 140..190
		res := SimulateTap(demo, 20, 60)
		assert.False(t, res.Redirected)
		assert.Equal(t, "A3", res.Clicked)
	})
}

func TestInitRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init([]string{dir}))
	assert.FileExists(t, filepath.Join(dir, ConfigFile))

	assert.Error(t, Init([]string{dir}))
	assert.NoError(t, Init([]string{"--force", dir}))
}
