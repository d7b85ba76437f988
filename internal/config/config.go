// Package config provides configuration types and defaults for vix.
package config

import (
	"os"
	"path/filepath"
)

// Config holds all configuration options for vix.
type Config struct {
	Editor EditorConfig `mapstructure:"editor"`
	Theme  ThemeConfig  `mapstructure:"theme"`
}

// EditorConfig holds the editing behavior options.
type EditorConfig struct {
	// VimMode enables the modal vi interpreter.
	VimMode bool `mapstructure:"vim_mode"`

	// BlockCursor shows a block caret while navigating. Ignored when
	// VimMode is off.
	BlockCursor bool `mapstructure:"block_cursor"`

	// AutoIndent carries the current line's leading whitespace onto
	// new lines created with Enter.
	AutoIndent bool `mapstructure:"auto_indent"`
}

// ThemeConfig holds presentation options.
type ThemeConfig struct {
	// Mode forces light or dark rendering. If empty, uses terminal
	// detection. Valid values: "light", "dark", "".
	Mode string `mapstructure:"mode"`

	// MarkdownStyle selects the glamour style for the preview.
	// Default: follows Mode.
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Editor: EditorConfig{
			VimMode:     true,
			BlockCursor: true,
			AutoIndent:  true,
		},
	}
}

// DefaultConfigPath returns ~/.config/vix/vix.yaml, or empty string
// if the home directory is unavailable.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "vix", "vix.yaml")
}

// DefaultLogPath returns the default debug log location.
func DefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "vix-debug.log"
	}
	return filepath.Join(home, ".config", "vix", "debug.log")
}
