// Package config provides configuration management for memsh: the prompt
// prefix, the colour theme, the log level and the seed session loaded at
// startup.
package config

import (
	"slices"

	"github.com/samber/lo"

	"github.com/atinylittleshell/memsh/internal/bash"
	"github.com/atinylittleshell/memsh/internal/vfs"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Config holds everything read from the configuration file.
type Config struct {
	// Prompt is shown before the working directory on every prompt line.
	Prompt string `yaml:"prompt"`

	// Theme selects the colour scheme of the terminal UI, light or dark.
	Theme string `yaml:"theme"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `yaml:"logLevel"`

	// History is the transcript the session starts with.
	History []bash.HistoryEntry `yaml:"history"`

	// Structure is the filesystem tree the session starts with.
	Structure *vfs.Directory `yaml:"structure"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Prompt:    "hacker@default",
		Theme:     ThemeLight,
		LogLevel:  "info",
		Structure: vfs.NewDirectory(),
	}
}

// InitialState returns the session state described by the configuration,
// starting at the root of the tree.
func (c *Config) InitialState() bash.State {
	structure := c.Structure
	if structure == nil {
		structure = vfs.NewDirectory()
	}
	return bash.State{
		History:   slices.Clone(c.History),
		Structure: structure,
	}
}

// Recall returns the commands echoed in the seed history, oldest first, so
// that they can be recalled like lines typed in this session.
func (c *Config) Recall() []string {
	return lo.FilterMap(c.History, func(e bash.HistoryEntry, _ int) (string, bool) {
		return e.Value, e.IsEcho()
	})
}
