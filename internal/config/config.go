package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/depeter/stretchyheader/collapse"
)

type Config struct {
	Window WindowConfig `toml:"window"`
	Header HeaderConfig `toml:"header"`
	Chrome ChromeConfig `toml:"chrome"`
}

type WindowConfig struct {
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
	Fullscreen bool `toml:"fullscreen"`
}

type HeaderConfig struct {
	// Height is the rest height in pixels. 0 uses the component default.
	Height float64 `toml:"height"`
	// Spacing is the gap between the header and the content below it.
	Spacing float64 `toml:"spacing"`
	// TopInset reserves space above the header.
	TopInset float64 `toml:"top_inset"`
	// Mode is "fixed", "statusbar" or "navbar".
	Mode string `toml:"mode"`
	// FixedHeight is the collapse floor used when Mode is "fixed".
	FixedHeight float64 `toml:"fixed_height"`
	// MaxStretch is how far past the top the content can be pulled.
	MaxStretch float64 `toml:"max_stretch"`
}

type ChromeConfig struct {
	StatusBarHeight float64 `toml:"status_bar_height"`
	NavBarHeight    float64 `toml:"nav_bar_height"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
		},
		Header: HeaderConfig{
			Height:      300,
			Spacing:     10,
			Mode:        "statusbar",
			FixedHeight: 100,
			MaxStretch:  160,
		},
		Chrome: ChromeConfig{
			StatusBarHeight: 32,
			NavBarHeight:    48,
		},
	}
}

// CollapseMode translates the configured mode name into a collapse.Mode.
func (c *Config) CollapseMode() (collapse.Mode, error) {
	switch c.Header.Mode {
	case "", "statusbar":
		return collapse.RevealStatusBarBackground{}, nil
	case "navbar":
		return collapse.RevealNavigationBarBackground{}, nil
	case "fixed":
		if c.Header.FixedHeight < 0 {
			return nil, fmt.Errorf("header.fixed_height must be >= 0, got %v", c.Header.FixedHeight)
		}
		return collapse.FixedHeight(c.Header.FixedHeight), nil
	default:
		return nil, fmt.Errorf("unknown header.mode %q", c.Header.Mode)
	}
}

// Metrics builds the chrome metrics the geometry engine consumes.
func (c *Config) Metrics() collapse.Metrics {
	return collapse.Metrics{
		StatusBarHeight:           c.Chrome.StatusBarHeight,
		StatusBarPlusNavBarHeight: c.Chrome.StatusBarHeight + c.Chrome.NavBarHeight,
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "headerdemo"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
