package keymap

import (
	"github.com/dshills/shin/internal/input/key"
	"github.com/dshills/shin/internal/input/mode"
)

// Defaults returns the built-in keymaps of every mode.
func Defaults() *Set {
	s := NewSet()
	defaultInsert(s.For(mode.Insert))
	defaultNormal(s.For(mode.Normal))
	defaultVisual(s.For(mode.Visual))
	defaultCommand(s.For(mode.Command))
	return s
}

// bindPrintable binds every printable character to a.
func bindPrintable(k *Keymap, a Action) {
	for c := byte(' '); c <= '~'; c++ {
		_ = k.Bind(key.FromChar(c), a)
	}
}

func apply(k *Keymap, specs []spec) {
	for _, s := range specs {
		if err := k.BindSpec(s.keys, s.action); err != nil {
			panic("keymap: bad default binding " + s.keys + ": " + err.Error())
		}
	}
}

func defaultInsert(k *Keymap) {
	bindPrintable(k, ActionInsertChar)
	apply(k, []spec{
		{"<CR>", ActionInsertNewline, "Insert a line break"},
		{"<Tab>", ActionInsertTab, "Insert a tab"},
		{"<Del>", ActionDeleteForward, "Delete the character under the cursor"},
		{"<BS>", ActionDeleteBackward, "Delete the character before the cursor"},
		{"<S-BS>", ActionDeleteBackward, "Delete the character before the cursor"},
		{"<Left>", ActionCursorLeft, "Move left"},
		{"<Right>", ActionCursorRight, "Move right"},
		{"<Up>", ActionCursorUp, "Move up"},
		{"<Down>", ActionCursorDown, "Move down"},
		{"<A-F4>", ActionQuit, "Quit"},
		{"<Esc>", ActionNormalMode, "Return to normal mode"},
	})
}

func defaultNormal(k *Keymap) {
	bindPrintable(k, ActionNormalPending)
	for c := byte('A'); c <= 'Z'; c++ {
		_ = k.Bind(key.Ctrl(c), ActionNormalPending)
	}
	apply(k, []spec{
		{":", ActionCommandBegin, "Enter command mode"},
		{"<S-:>", ActionCommandBegin, "Enter command mode"},
		{"<Esc>", ActionNormalClear, "Clear the pending sequence"},
		{"<A-F4>", ActionQuit, "Quit"},
		{"<Left>", ActionCursorLeft, "Move left"},
		{"<Right>", ActionCursorRight, "Move right"},
		{"<Up>", ActionCursorUp, "Move up"},
		{"<Down>", ActionCursorDown, "Move down"},
	})
}

func defaultVisual(k *Keymap) {
	apply(k, []spec{
		{"l", ActionVisualRight, "Extend right"},
		{"h", ActionVisualLeft, "Extend left"},
		{"j", ActionVisualDown, "Extend down"},
		{"k", ActionVisualUp, "Extend up"},
		{"w", ActionVisualWordNext, "Extend to next word"},
		{"e", ActionVisualWordEnd, "Extend to word end"},
		{"b", ActionVisualWordPrev, "Extend to previous word"},
		{"g", ActionVisualBufferStart, "Extend to buffer start"},
		{"G", ActionVisualBufferEnd, "Extend to buffer end"},
		{"d", ActionVisualDelete, "Delete selection"},
		{"x", ActionVisualDelete, "Delete selection"},
		{"y", ActionVisualYank, "Yank selection"},
		{"<A-F4>", ActionQuit, "Quit"},
		{"<Esc>", ActionNormalMode, "Return to normal mode"},
	})
}

func defaultCommand(k *Keymap) {
	bindPrintable(k, ActionCommandInsertChar)
	apply(k, []spec{
		{"<BS>", ActionCommandDelete, "Delete before the cursor"},
		{"<Left>", ActionCommandLeft, "Move left"},
		{"<Right>", ActionCommandRight, "Move right"},
		{"<CR>", ActionCommandConfirm, "Run the command"},
		{"<Esc>", ActionCommandExit, "Leave command mode"},
	})
}
