package editor

import (
	"github.com/dshills/shin/internal/input/key"
	"github.com/dshills/shin/internal/input/keymap"
	"github.com/dshills/shin/internal/input/mode"
	"github.com/dshills/shin/internal/input/vim"
)

// Dispatch processes one key event. Releases are ignored.
func (e *Editor) Dispatch(ev key.Event) {
	if !ev.IsPressed() || !e.running {
		return
	}

	m := e.Mode()
	a := e.keymaps.Lookup(m, ev.Combo)

	switch {
	case a == keymap.ActionNormalPending:
		e.feedPending(ev)
	case m == mode.Normal:
		// Any directly bound key abandons a half-typed sequence.
		e.parser.Reset()
		e.execute(a, 0, ev)
	default:
		e.execute(a, 0, ev)
	}

	e.layout.UpdateScroll()
}

func (e *Editor) feedPending(ev key.Event) {
	res := e.parser.Feed(ev)
	switch res.Status {
	case vim.StatusComplete:
		e.log.Debug("sequence %q -> %s (count %d)", res.Command.Keys, res.Command.Action, res.Command.Count)
		e.execute(res.Command.Action, res.Command.Count, ev)
	case vim.StatusInvalid:
		e.log.Debug("dropped sequence ending in %s", ev)
	}
}

// execute runs a. count is the typed repeat count, or 0 when none was typed.
func (e *Editor) execute(a keymap.Action, count int, ev key.Event) {
	n := max(1, count)

	switch a {
	case keymap.ActionNone:
	case keymap.ActionNormalPending:
		// Only reachable through a misconfigured grammar.

	case keymap.ActionQuit:
		e.Quit()
	case keymap.ActionSave:
		e.write(e.ActiveBuffer())

	// Insert mode editing.
	case keymap.ActionInsertChar:
		e.insertChar(ev.Char)
	case keymap.ActionInsertNewline:
		e.insertChar('\n')
	case keymap.ActionInsertTab:
		e.insertChar('\t')
	case keymap.ActionDeleteForward:
		e.deleteForward(n)
	case keymap.ActionDeleteBackward:
		e.deleteBackward()

	// Motions.
	case keymap.ActionCursorLeft, keymap.ActionCursorRight,
		keymap.ActionCursorUp, keymap.ActionCursorDown,
		keymap.ActionWordNext, keymap.ActionWordEnd, keymap.ActionWordPrev,
		keymap.ActionLineStart, keymap.ActionLineEnd, keymap.ActionFirstNonBlank,
		keymap.ActionBufferStart:
		e.move(a, n)
	case keymap.ActionBufferEnd:
		e.gotoBufferEnd(count)

	// Mode changes.
	case keymap.ActionNormalMode:
		e.normalMode()
	case keymap.ActionNormalClear:
		e.normalClear()
	case keymap.ActionInsertMode:
		e.ActiveBuffer().SetMode(mode.Insert)
	case keymap.ActionAppendMode:
		e.appendMode()
	case keymap.ActionInsertLineStart:
		e.insertLineStart()
	case keymap.ActionAppendLineEnd:
		e.appendLineEnd()
	case keymap.ActionOpenLineBelow:
		e.openLineBelow()
	case keymap.ActionOpenLineAbove:
		e.openLineAbove()
	case keymap.ActionVisualMode:
		e.visualMode(false)
	case keymap.ActionVisualLineMode:
		e.visualMode(true)

	// Operators.
	case keymap.ActionDeleteLine:
		e.deleteLines(n)
	case keymap.ActionDeleteWord:
		e.deleteWords(n)
	case keymap.ActionChangeWord:
		e.changeWord()
	case keymap.ActionPaste:
		e.paste(n)

	// Panes.
	case keymap.ActionSplitVertical:
		e.split(true)
	case keymap.ActionSplitHorizontal:
		e.split(false)
	case keymap.ActionPaneNext:
		e.focus(e.layout.Next())
	case keymap.ActionPanePrev:
		e.focus(e.layout.Prev())
	case keymap.ActionPaneClose:
		e.closePane()

	// Visual mode.
	case keymap.ActionVisualLeft, keymap.ActionVisualRight,
		keymap.ActionVisualUp, keymap.ActionVisualDown,
		keymap.ActionVisualWordNext, keymap.ActionVisualWordEnd, keymap.ActionVisualWordPrev,
		keymap.ActionVisualBufferStart, keymap.ActionVisualBufferEnd:
		e.extend(a)
	case keymap.ActionVisualDelete:
		e.visualDelete()
	case keymap.ActionVisualYank:
		e.visualYank()

	// Command line.
	case keymap.ActionCommandBegin:
		e.commandBegin()
	case keymap.ActionCommandInsertChar:
		e.commandInsert(ev.Char)
	case keymap.ActionCommandDelete:
		e.commandDelete()
	case keymap.ActionCommandLeft:
		e.commandLeft()
	case keymap.ActionCommandRight:
		e.commandRight()
	case keymap.ActionCommandConfirm:
		e.commandConfirm()
	case keymap.ActionCommandExit:
		e.commandExit()

	default:
		e.log.Warn("no handler for %s", a)
	}
}
