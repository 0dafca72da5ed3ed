package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/galaxy-gallery/canvas"
	"github.com/lixenwraith/galaxy-gallery/experiment"
	"github.com/lixenwraith/galaxy-gallery/render"
)

func TestDefaultThemeMatchesBuiltins(t *testing.T) {
	th, err := LoadTheme("")
	require.NoError(t, err)

	style, err := th.Style()
	require.NoError(t, err)
	assert.Equal(t, experiment.DefaultStyle(), style)

	chrome, err := th.Chrome()
	require.NoError(t, err)
	assert.Equal(t, render.DefaultChrome(), chrome)
}

func TestParseThemeOverridesPartially(t *testing.T) {
	th, err := ParseTheme([]byte(`
[stage]
background = "#102030"

[chrome]
button_on_bg = "#ff0000"
`))
	require.NoError(t, err)

	style, err := th.Style()
	require.NoError(t, err)
	assert.Equal(t, canvas.RGB{R: 0x10, G: 0x20, B: 0x30}, style.Background)
	assert.Equal(t, canvas.RGBBlack, style.Letterbox)

	chrome, err := th.Chrome()
	require.NoError(t, err)
	assert.Equal(t, canvas.RGB{R: 255}, chrome.ButtonOnBg)
	assert.Equal(t, render.DefaultChrome().TabText, chrome.TabText)
}

func TestLoadThemeFile(t *testing.T) {
	path := writeFile(t, "theme.toml", "[chrome]\ntab_text = \"#ffffff\"\n")
	th, err := LoadTheme(path)
	require.NoError(t, err)

	chrome, err := th.Chrome()
	require.NoError(t, err)
	assert.Equal(t, canvas.RGBWhite, chrome.TabText)
}

func TestParseThemeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad color", "[stage]\nbackground = \"navy\"\n"},
		{"unknown key", "[stage]\nforeground = \"#000000\"\n"},
		{"syntax", "[stage\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTheme([]byte(tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadThemeMissingFile(t *testing.T) {
	_, err := LoadTheme("does-not-exist.toml")
	assert.Error(t, err)
}

func TestBundledThemeAndConfig(t *testing.T) {
	th, err := LoadTheme(filepath.Join("..", "assets", "theme.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme(), th)

	cfg, err := Load(filepath.Join("..", "assets", "gallery.toml"), nil)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.FPS)
	assert.Equal(t, "assets/theme.toml", cfg.Theme)
	assert.Equal(t, 400, cfg.Record.Width)
}
