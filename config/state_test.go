package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yllada/messages-desktop/common"
)

func TestStateStore_DefaultsWhenMissing(t *testing.T) {
	store := NewStateStore(filepath.Join(t.TempDir(), common.WindowStateFileName))

	state := store.Load()
	assert.Equal(t, common.DefaultWindowWidth, state.Width)
	assert.Equal(t, common.DefaultWindowHeight, state.Height)
	assert.False(t, state.Maximized)
}

func TestStateStore_SaveLoad(t *testing.T) {
	store := NewStateStore(filepath.Join(t.TempDir(), common.WindowStateFileName))

	require.NoError(t, store.Save(WindowState{Width: 1280, Height: 900, Maximized: true}))

	state := store.Load()
	assert.Equal(t, WindowState{Width: 1280, Height: 900, Maximized: true}, state)
}

func TestStateStore_CorruptFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), common.WindowStateFileName)
	require.NoError(t, os.WriteFile(path, []byte("width: [oops"), 0600))

	assert.Equal(t, DefaultWindowState(), NewStateStore(path).Load())
}

func TestStateStore_Reset(t *testing.T) {
	store := NewStateStore(filepath.Join(t.TempDir(), common.WindowStateFileName))
	require.NoError(t, store.Save(WindowState{Width: 800, Height: 600}))

	require.NoError(t, store.Reset())
	assert.NoFileExists(t, store.Path())

	// Resetting twice is fine
	require.NoError(t, store.Reset())
}

func TestWindowState_Normalize(t *testing.T) {
	tests := []struct {
		name  string
		in    WindowState
		width int
	}{
		{"valid", WindowState{Width: 900, Height: 700}, 900},
		{"too narrow", WindowState{Width: 10, Height: 700}, common.DefaultWindowWidth},
		{"too short", WindowState{Width: 900, Height: 0}, common.DefaultWindowWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.width, tt.in.Normalize().Width)
		})
	}
}
