package config

import (
	"github.com/dshills/shin/internal/input/keymap"
	"github.com/dshills/shin/internal/logging"
)

// Config is the complete editor configuration.
type Config struct {
	Editor    Editor           `toml:"editor" yaml:"editor"`
	Colors    Colors           `toml:"colors" yaml:"colors"`
	Log       Log              `toml:"log" yaml:"log"`
	Highlight Highlight        `toml:"highlight" yaml:"highlight"`
	Script    Script           `toml:"script" yaml:"script"`
	Keymap    keymap.Overrides `toml:"keymap" yaml:"keymap"`

	// Path is the file this configuration was loaded from, if any.
	Path string `toml:"-" yaml:"-"`
}

// Editor holds buffer and display settings.
type Editor struct {
	// TabWidth is the number of columns a tab advances to.
	TabWidth int `toml:"tab_width" yaml:"tab_width"`
	// InitialCapacity is the gap buffer size for new buffers.
	InitialCapacity int `toml:"initial_capacity" yaml:"initial_capacity"`
	// LineNumbers shows the line number gutter.
	LineNumbers bool `toml:"line_numbers" yaml:"line_numbers"`
}

// Colors is the render palette.
type Colors struct {
	Background Color `toml:"background" yaml:"background"`
	Foreground Color `toml:"foreground" yaml:"foreground"`
	Keyword    Color `toml:"keyword" yaml:"keyword"`
	Directive  Color `toml:"directive" yaml:"directive"`
	Number     Color `toml:"number" yaml:"number"`
	String     Color `toml:"string" yaml:"string"`
	Type       Color `toml:"type" yaml:"type"`
	Comment    Color `toml:"comment" yaml:"comment"`
	Selection  Color `toml:"selection" yaml:"selection"`
}

// Log configures the log file.
type Log struct {
	Level string `toml:"level" yaml:"level"`
	// File is the log path. Empty disables logging.
	File string `toml:"file" yaml:"file"`
}

// Highlight configures syntax highlighting.
type Highlight struct {
	Enabled bool `toml:"enabled" yaml:"enabled"`
	// Language forces a lexer; empty picks one from the file name.
	Language string `toml:"language" yaml:"language"`
}

// Script configures the init script.
type Script struct {
	// Init is the path of a Lua file run at startup. Empty skips it.
	Init string `toml:"init" yaml:"init"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: Editor{
			TabWidth:        4,
			InitialCapacity: 32,
			LineNumbers:     true,
		},
		Colors: Colors{
			Background: MustColor("#2a282a"),
			Foreground: MustColor("#d6b48b"),
			Keyword:    MustColor("#ffffff"),
			Directive:  MustColor("#ffffff"),
			Number:     MustColor("#3bc4b9"),
			String:     MustColor("#c0b8b7"),
			Type:       MustColor("#8ac887"),
			Comment:    MustColor("#e6e249"),
			Selection:  MustColor("#f07a8e"),
		},
		Log: Log{
			Level: "info",
			File:  DefaultLogFile(),
		},
		Highlight: Highlight{Enabled: true},
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		return invalid("editor.tab_width", "%d not in [1, 16]", c.Editor.TabWidth)
	}
	if c.Editor.InitialCapacity < 1 {
		return invalid("editor.initial_capacity", "%d must be positive", c.Editor.InitialCapacity)
	}
	if _, ok := logging.ParseLevel(c.Log.Level); !ok {
		return invalid("log.level", "unknown level %q", c.Log.Level)
	}
	return nil
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() logging.Level {
	l, _ := logging.ParseLevel(c.Log.Level)
	return l
}
