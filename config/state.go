package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yllada/messages-desktop/common"
	"gopkg.in/yaml.v3"
)

// WindowState is the persisted geometry of the main window.
type WindowState struct {
	Width     int  `yaml:"width"`
	Height    int  `yaml:"height"`
	Maximized bool `yaml:"maximized"`
}

// DefaultWindowState returns the fixed default geometry.
func DefaultWindowState() WindowState {
	return WindowState{
		Width:  common.DefaultWindowWidth,
		Height: common.DefaultWindowHeight,
	}
}

// Normalize replaces dimensions below the minimum with the defaults.
func (s WindowState) Normalize() WindowState {
	if s.Width < common.MinWindowWidth || s.Height < common.MinWindowHeight {
		def := DefaultWindowState()
		s.Width, s.Height = def.Width, def.Height
	}
	return s
}

// StateStore reads and writes WindowState to a YAML file.
type StateStore struct {
	path string
}

// NewStateStore returns a store bound to path.
func NewStateStore(path string) *StateStore {
	return &StateStore{path: path}
}

// DefaultStateStore returns a store in the configuration directory.
func DefaultStateStore() (*StateStore, error) {
	dir, err := common.GetConfigDir()
	if err != nil {
		return nil, err
	}
	return NewStateStore(filepath.Join(dir, common.WindowStateFileName)), nil
}

// Path returns the file backing the store.
func (s *StateStore) Path() string {
	return s.path
}

// Load returns the saved state, or the defaults when nothing was saved or
// the file is unreadable.
func (s *StateStore) Load() WindowState {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			common.LogWarn("Could not read window state: %v", err)
		}
		return DefaultWindowState()
	}

	state := DefaultWindowState()
	if err := yaml.Unmarshal(data, &state); err != nil {
		common.LogWarn("Ignoring corrupt window state %s: %v", s.path, err)
		return DefaultWindowState()
	}
	return state.Normalize()
}

// Save persists state.
func (s *StateStore) Save(state WindowState) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("%w: %v", common.ErrConfigSave, err)
	}

	data, err := yaml.Marshal(state.Normalize())
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrConfigSave, err)
	}

	return os.WriteFile(s.path, data, 0600)
}

// Reset removes any saved state.
func (s *StateStore) Reset() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
