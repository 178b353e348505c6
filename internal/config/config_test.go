package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/stretchyheader/collapse"
)

func TestCollapseMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		fixed   float64
		want    collapse.Mode
		wantErr bool
	}{
		{name: "default", mode: "", want: collapse.RevealStatusBarBackground{}},
		{name: "statusbar", mode: "statusbar", want: collapse.RevealStatusBarBackground{}},
		{name: "navbar", mode: "navbar", want: collapse.RevealNavigationBarBackground{}},
		{name: "fixed", mode: "fixed", fixed: 80, want: collapse.FixedHeight(80)},
		{name: "fixed zero", mode: "fixed", want: collapse.FixedHeight(0)},
		{name: "fixed negative", mode: "fixed", fixed: -1, wantErr: true},
		{name: "unknown", mode: "bogus", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Header.Mode = tt.mode
			cfg.Header.FixedHeight = tt.fixed
			got, err := cfg.CollapseMode()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMetrics(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Chrome.StatusBarHeight = 44
	cfg.Chrome.NavBarHeight = 44
	m := cfg.Metrics()
	assert.Equal(t, 44.0, m.StatusBarHeight)
	assert.Equal(t, 88.0, m.StatusBarPlusNavBarHeight)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := filepath.Join(dir, "headerdemo", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("[header]\nheight = 250\nmode = \"navbar\"\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 250.0, cfg.Header.Height)
	assert.Equal(t, "navbar", cfg.Header.Mode)
	// Untouched sections keep their defaults.
	assert.Equal(t, 1280, cfg.Window.Width)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg := DefaultConfig()
	cfg.Header.Height = 420
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
