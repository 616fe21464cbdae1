package mode

import "strings"

// Mode is an editing state selecting which keymap is active.
type Mode uint8

const (
	// Normal is the default mode.
	Normal Mode = iota
	// Insert types characters into the buffer.
	Insert
	// Visual extends a selection from the cursor.
	Visual
	// Command edits the ex command line.
	Command

	// Count is the number of modes.
	Count
)

var modeNames = [Count]string{
	Normal:  "normal",
	Insert:  "insert",
	Visual:  "visual",
	Command: "command",
}

// String returns the lower-case mode name.
func (m Mode) String() string {
	if m < Count {
		return modeNames[m]
	}
	return "unknown"
}

// DisplayName returns the upper-case name shown in the status line.
func (m Mode) DisplayName() string {
	return strings.ToUpper(m.String())
}

// Parse returns the mode with the given name.
// Both full names and single-letter abbreviations ("n", "i", "v", "c") are accepted.
func Parse(name string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "normal", "n":
		return Normal, true
	case "insert", "i":
		return Insert, true
	case "visual", "v":
		return Visual, true
	case "command", "c", "cmdline":
		return Command, true
	}
	return Normal, false
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (normal mode).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (insert mode).
	CursorBar

	// CursorUnderline is an underline cursor.
	CursorUnderline
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	case CursorUnderline:
		return "underline"
	default:
		return "unknown"
	}
}

// CursorStyle returns the cursor style used while in mode m.
func (m Mode) CursorStyle() CursorStyle {
	switch m {
	case Insert, Command:
		return CursorBar
	case Visual:
		return CursorUnderline
	default:
		return CursorBlock
	}
}
