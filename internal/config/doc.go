// Package config loads editor settings.
//
// Settings come from three places, later ones winning:
//
//  1. Built-in defaults (Default).
//  2. A TOML or YAML file, chosen by extension.
//  3. SHIN_* environment variables.
//
// A missing file is not an error; the defaults apply. Unknown keys are
// rejected so typos surface as a *ParseError naming the file and line.
//
// Example config.toml:
//
//	[editor]
//	tab_width = 8
//
//	[colors]
//	background = "#1d1f21"
//
//	[keymap.normal]
//	"<C-s>" = "file.save"
//
// Watcher reloads the file on change and delivers the new Config on a
// channel; the host applies it on its own goroutine.
package config
