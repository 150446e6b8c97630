package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TODOLIST_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "My TODO List", cfg.UI.Title)
	require.Equal(t, "Add a new task...", cfg.UI.Placeholder)
	require.Zero(t, cfg.UI.MaxWidth)
	require.Equal(t, runtime.GOOS, cfg.UI.Platform)
	require.Equal(t, -1, cfg.UI.TopPadding)
	require.Empty(t, cfg.Log.File)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := "[ui]\nmax_width = 60\nplatform = \"android\"\n\n[log]\nfile = \"debug.log\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	t.Setenv("TODOLIST_CONFIG", path)
	t.Setenv("TODOLIST_UI_TITLE", "Chores")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 60, cfg.UI.MaxWidth)
	require.Equal(t, "android", cfg.UI.Platform)
	require.Equal(t, "Chores", cfg.UI.Title)
	require.Equal(t, "debug.log", cfg.Log.File)
	require.Equal(t, 1, cfg.UI.TopPaddingRows())
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui\nmax_width = "), 0o600))
	t.Setenv("TODOLIST_CONFIG", path)

	_, err := Load()
	require.Error(t, err)
}

func TestTopPaddingRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ui   UIConfig
		want int
	}{
		{"android", UIConfig{Platform: "android", TopPadding: -1}, 1},
		{"other platform", UIConfig{Platform: "darwin", TopPadding: -1}, 2},
		{"explicit", UIConfig{Platform: "android", TopPadding: 0}, 0},
		{"explicit large", UIConfig{TopPadding: 4}, 4},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, tc.ui.TopPaddingRows())
		})
	}
}
