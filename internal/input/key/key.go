package key

import (
	"fmt"
	"strings"
)

// Key identifies a base key: the low byte of a Combination.
type Key uint8

// KeyNone is the zero key.
const KeyNone Key = 0

// Non-printing keys.
const (
	KeyEscape Key = 0x80 + iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var specialNames = map[Key]string{
	KeyEscape:    "Esc",
	KeyEnter:     "CR",
	KeyTab:       "Tab",
	KeyBackspace: "BS",
	KeyDelete:    "Del",
	KeyInsert:    "Insert",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
}

// keyNames maps lower-case names and aliases to keys.
var keyNames = map[string]Key{
	"esc":       KeyEscape,
	"escape":    KeyEscape,
	"cr":        KeyEnter,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"tab":       KeyTab,
	"bs":        KeyBackspace,
	"backspace": KeyBackspace,
	"del":       KeyDelete,
	"delete":    KeyDelete,
	"ins":       KeyInsert,
	"insert":    KeyInsert,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pageup":    KeyPageUp,
	"pgup":      KeyPageUp,
	"pagedown":  KeyPageDown,
	"pgdn":      KeyPageDown,
	"space":     ' ',
	"lt":        '<',
	"gt":        '>',
	"bar":       '|',
	"bslash":    '\\',
}

// IsSpecial reports whether k is a non-printing key.
func (k Key) IsSpecial() bool {
	return k >= KeyEscape
}

// IsFunctionKey reports whether k is one of F1-F12.
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsPrintable reports whether k is the base key of a printable character.
func (k Key) IsPrintable() bool {
	return k >= ' ' && k <= '~'
}

// String returns the vim-style name of the key without brackets.
func (k Key) String() string {
	switch {
	case k == KeyNone:
		return "None"
	case k.IsFunctionKey():
		return fmt.Sprintf("F%d", int(k-KeyF1)+1)
	case k.IsSpecial():
		if name, ok := specialNames[k]; ok {
			return name
		}
		return fmt.Sprintf("0x%02x", uint8(k))
	case k == ' ':
		return "Space"
	default:
		return string(rune(k))
	}
}

// KeyFromName returns the key with the given name, or KeyNone.
func KeyFromName(name string) Key {
	name = strings.ToLower(name)
	if k, ok := keyNames[name]; ok {
		return k
	}
	if len(name) >= 2 && len(name) <= 3 && name[0] == 'f' {
		var n int
		if _, err := fmt.Sscanf(name[1:], "%d", &n); err == nil && n >= 1 && n <= 12 {
			return KeyF1 + Key(n-1)
		}
	}
	return KeyNone
}
