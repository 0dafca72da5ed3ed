package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/galaxy-gallery/canvas"
	"github.com/lixenwraith/galaxy-gallery/experiment"
	"github.com/lixenwraith/galaxy-gallery/render"
)

// Theme is the stylesheet loaded into every sandbox and used for the host chrome.
// Colors are "#rrggbb"; keys missing from the file keep their defaults
type Theme struct {
	Stage  StageTheme  `toml:"stage"`
	Chrome ChromeTheme `toml:"chrome"`
}

// StageTheme colors the area an experiment draws in
type StageTheme struct {
	Background string `toml:"background"`
	Letterbox  string `toml:"letterbox"`
}

// ChromeTheme colors the tab row and control bar
type ChromeTheme struct {
	Background    string `toml:"background"`
	TabText       string `toml:"tab_text"`
	TabActiveBg   string `toml:"tab_active_bg"`
	TabActiveText string `toml:"tab_active_text"`
	ButtonBg      string `toml:"button_bg"`
	ButtonText    string `toml:"button_text"`
	ButtonOnBg    string `toml:"button_on_bg"`
	ButtonOnText  string `toml:"button_on_text"`
}

// DefaultTheme mirrors experiment.DefaultStyle and render.DefaultChrome
func DefaultTheme() Theme {
	style := experiment.DefaultStyle()
	chrome := render.DefaultChrome()
	return Theme{
		Stage: StageTheme{
			Background: style.Background.Hex(),
			Letterbox:  style.Letterbox.Hex(),
		},
		Chrome: ChromeTheme{
			Background:    chrome.Background.Hex(),
			TabText:       chrome.TabText.Hex(),
			TabActiveBg:   chrome.TabActiveBg.Hex(),
			TabActiveText: chrome.TabActiveText.Hex(),
			ButtonBg:      chrome.ButtonBg.Hex(),
			ButtonText:    chrome.ButtonText.Hex(),
			ButtonOnBg:    chrome.ButtonOnBg.Hex(),
			ButtonOnText:  chrome.ButtonOnText.Hex(),
		},
	}
}

// LoadTheme reads a TOML theme file; an empty path returns the default theme
func LoadTheme(path string) (Theme, error) {
	if path == "" {
		return DefaultTheme(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme: %w", err)
	}
	return ParseTheme(data)
}

// ParseTheme decodes TOML over the default theme and validates every color
func ParseTheme(data []byte) (Theme, error) {
	th := DefaultTheme()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&th); err != nil {
		return Theme{}, fmt.Errorf("decode theme: %w", err)
	}
	if _, err := th.Style(); err != nil {
		return Theme{}, err
	}
	if _, err := th.Chrome(); err != nil {
		return Theme{}, err
	}
	return th, nil
}

// Style converts the stage section into a stylesheet
func (t Theme) Style() (experiment.Style, error) {
	var s experiment.Style
	err := parseColors(
		colorField{"stage.background", t.Stage.Background, &s.Background},
		colorField{"stage.letterbox", t.Stage.Letterbox, &s.Letterbox},
	)
	return s, err
}

// Chrome converts the chrome section into host colors
func (t Theme) Chrome() (render.Chrome, error) {
	var c render.Chrome
	ct := t.Chrome
	err := parseColors(
		colorField{"chrome.background", ct.Background, &c.Background},
		colorField{"chrome.tab_text", ct.TabText, &c.TabText},
		colorField{"chrome.tab_active_bg", ct.TabActiveBg, &c.TabActiveBg},
		colorField{"chrome.tab_active_text", ct.TabActiveText, &c.TabActiveText},
		colorField{"chrome.button_bg", ct.ButtonBg, &c.ButtonBg},
		colorField{"chrome.button_text", ct.ButtonText, &c.ButtonText},
		colorField{"chrome.button_on_bg", ct.ButtonOnBg, &c.ButtonOnBg},
		colorField{"chrome.button_on_text", ct.ButtonOnText, &c.ButtonOnText},
	)
	return c, err
}

type colorField struct {
	key string
	hex string
	dst *canvas.RGB
}

func parseColors(fields ...colorField) error {
	for _, f := range fields {
		c, err := canvas.ParseHex(f.hex)
		if err != nil {
			return fmt.Errorf("theme %s: %w", f.key, err)
		}
		*f.dst = c
	}
	return nil
}
