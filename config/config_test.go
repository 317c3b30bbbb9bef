package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yllada/messages-desktop/common"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, common.ThemeAuto, cfg.Theme)
	assert.True(t, cfg.HideOnClose, "closing should hide by default")
	assert.True(t, cfg.ShowTrayIcon)
	assert.False(t, cfg.RememberWindowSize, "the fixed default size applies unless opted in")
	assert.False(t, cfg.ConnectivityCheck)
}

func TestLoadFrom_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", common.ConfigFileName)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig().Theme, cfg.Theme)
	assert.Equal(t, path, cfg.FilePath())
	assert.FileExists(t, path)
}

func TestLoadFrom_RoundTripsSavedValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), common.ConfigFileName)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	cfg.Theme = common.ThemeDark
	cfg.ShowTrayIcon = false
	cfg.RememberWindowSize = true
	require.NoError(t, cfg.Save())

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, common.ThemeDark, loaded.Theme)
	assert.False(t, loaded.ShowTrayIcon)
	assert.True(t, loaded.RememberWindowSize)
}

func TestLoadFrom_RepairsInvalidTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), common.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("theme: neon\n"), 0600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, common.ThemeAuto, cfg.Theme)
}

func TestLoadFrom_MissingKeysKeepDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), common.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("theme: light\n"), 0600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, common.ThemeLight, cfg.Theme)
	assert.True(t, cfg.HideOnClose)
}

func TestLoadFrom_RejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), common.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("url: https://example.com\n"), 0600))

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrConfigLoad))
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), common.ConfigFileName)
	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	changes := make(chan *Config, 16)
	w := NewWatcher(path, func(c *Config) {
		select {
		case changes <- c:
		default:
		}
	})
	require.NoError(t, w.Start())
	defer w.Stop()

	cfg.Theme = common.ThemeDark
	require.NoError(t, cfg.Save())

	timeout := time.After(5 * time.Second)
	for {
		select {
		case got := <-changes:
			if got.Theme == common.ThemeDark {
				return
			}
		case <-timeout:
			t.Fatal("watcher did not report the change")
		}
	}
}

func TestDefaultConfigAt_WatchesRepairedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), common.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("theme: [broken\n"), 0600))

	_, err := LoadFrom(path)
	require.Error(t, err)

	cfg := DefaultConfigAt(path)
	assert.Equal(t, path, cfg.FilePath())
	assert.Equal(t, DefaultConfig().Theme, cfg.Theme)

	changes := make(chan *Config, 16)
	w := NewWatcher(cfg.FilePath(), func(c *Config) {
		select {
		case changes <- c:
		default:
		}
	})
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("theme: dark\n"), 0600))

	timeout := time.After(5 * time.Second)
	for {
		select {
		case got := <-changes:
			if got.Theme == common.ThemeDark {
				return
			}
		case <-timeout:
			t.Fatal("watcher did not pick up the repaired file")
		}
	}
}
