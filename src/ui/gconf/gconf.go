package gconf

import (
	"clickchess/src/logic/selection"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/adrg/xdg"
)

const cfgFile = "clickchess/config.json"

type Config struct {
	Theme   string `json:"theme"`            // light/dark
	Policy  string `json:"selection_policy"` // sticky/clear
	Flipped bool   `json:"flipped"`          // black at the bottom
	WindowH int    `json:"window_h"`         //
	WindowW int    `json:"window_w"`         //
	Debug   bool   `json:"debug"`            // true/false

	path string
}

func DefaultConfig() Config {
	return Config{
		Theme:   "light",
		Policy:  "sticky",
		Flipped: false,
		WindowH: 640,
		WindowW: 880,
		Debug:   false,
	}
}

// NewConfig loads path, or the XDG config file when path is empty.
// A missing file yields the defaults.
func NewConfig(path string) (*Config, error) {
	if path == "" {
		found, err := xdg.SearchConfigFile(cfgFile)
		if err != nil {
			def := DefaultConfig()
			return &def, nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		def := DefaultConfig()
		def.path = path
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	c := DefaultConfig()
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("error decode config %s: %w", path, err)
	}
	correctableConfig(&c)
	c.path = path
	return &c, nil
}

// Save writes to the file the config was loaded from, or to the XDG config
// location
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		p, err := xdg.ConfigFile(cfgFile)
		if err != nil {
			return err
		}
		path = p
	}
	jsonData, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, jsonData, 0644); err != nil {
		return err
	}
	c.path = path
	return nil
}

func (c *Config) Path() string { return c.path }

// SelectionPolicy resolves the click policy. A non-empty override (the
// --policy flag) wins for this run only and is never written back by Save.
func (c *Config) SelectionPolicy(override string) (selection.Policy, error) {
	if override != "" {
		return selection.PolicyFromString(override)
	}
	return selection.PolicyFromString(c.Policy)
}

func correctableConfig(c *Config) {
	def := DefaultConfig()
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	c.Policy = strings.ToLower(strings.TrimSpace(c.Policy))
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	if c.Policy != "sticky" && c.Policy != "clear" {
		c.Policy = def.Policy
	}
	if c.WindowH < def.WindowH || c.WindowW < def.WindowW {
		c.WindowH = def.WindowH
		c.WindowW = def.WindowW
	}
}
