// Package mode defines the editing modes of shin.
//
// A Mode is a small tag stored on each edit buffer. The editor selects the
// keymap for an incoming key event from the active buffer's mode:
//   - Normal: navigation, operators and multi-key sequences
//   - Insert: text input
//   - Visual: character-wise (and line-wise) selection
//   - Command: ex-style command line
package mode
