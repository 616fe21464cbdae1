package keymap

import (
	"fmt"
	"sort"
)

// Action identifies what a key does.
type Action uint8

// Actions.
const (
	ActionNone Action = iota
	ActionQuit
	ActionSave

	// Insert mode editing.
	ActionInsertChar
	ActionInsertNewline
	ActionInsertTab
	ActionDeleteForward
	ActionDeleteBackward

	// Cursor motions.
	ActionCursorLeft
	ActionCursorRight
	ActionCursorUp
	ActionCursorDown
	ActionWordNext
	ActionWordEnd
	ActionWordPrev
	ActionLineStart
	ActionLineEnd
	ActionFirstNonBlank
	ActionBufferStart
	ActionBufferEnd

	// Mode changes.
	ActionNormalMode
	ActionNormalPending
	ActionNormalClear
	ActionInsertMode
	ActionAppendMode
	ActionInsertLineStart
	ActionAppendLineEnd
	ActionOpenLineBelow
	ActionOpenLineAbove
	ActionVisualMode
	ActionVisualLineMode

	// Normal mode operators.
	ActionDeleteLine
	ActionDeleteWord
	ActionChangeWord
	ActionPaste

	// Panes.
	ActionSplitVertical
	ActionSplitHorizontal
	ActionPaneNext
	ActionPanePrev
	ActionPaneClose

	// Visual mode.
	ActionVisualLeft
	ActionVisualRight
	ActionVisualUp
	ActionVisualDown
	ActionVisualWordNext
	ActionVisualWordEnd
	ActionVisualWordPrev
	ActionVisualBufferStart
	ActionVisualBufferEnd
	ActionVisualDelete
	ActionVisualYank

	// Command line.
	ActionCommandBegin
	ActionCommandInsertChar
	ActionCommandDelete
	ActionCommandLeft
	ActionCommandRight
	ActionCommandConfirm
	ActionCommandExit

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:              "none",
	ActionQuit:              "editor.quit",
	ActionSave:              "file.save",
	ActionInsertChar:        "edit.insertChar",
	ActionInsertNewline:     "edit.newline",
	ActionInsertTab:         "edit.tab",
	ActionDeleteForward:     "edit.deleteForward",
	ActionDeleteBackward:    "edit.deleteBackward",
	ActionCursorLeft:        "cursor.left",
	ActionCursorRight:       "cursor.right",
	ActionCursorUp:          "cursor.up",
	ActionCursorDown:        "cursor.down",
	ActionWordNext:          "cursor.wordNext",
	ActionWordEnd:           "cursor.wordEnd",
	ActionWordPrev:          "cursor.wordPrev",
	ActionLineStart:         "cursor.lineStart",
	ActionLineEnd:           "cursor.lineEnd",
	ActionFirstNonBlank:     "cursor.firstNonBlank",
	ActionBufferStart:       "cursor.bufferStart",
	ActionBufferEnd:         "cursor.bufferEnd",
	ActionNormalMode:        "mode.normal",
	ActionNormalPending:     "normal.pending",
	ActionNormalClear:       "normal.clear",
	ActionInsertMode:        "mode.insert",
	ActionAppendMode:        "mode.append",
	ActionInsertLineStart:   "mode.insertLineStart",
	ActionAppendLineEnd:     "mode.appendLineEnd",
	ActionOpenLineBelow:     "edit.openBelow",
	ActionOpenLineAbove:     "edit.openAbove",
	ActionVisualMode:        "mode.visual",
	ActionVisualLineMode:    "mode.visualLine",
	ActionDeleteLine:        "edit.deleteLine",
	ActionDeleteWord:        "edit.deleteWord",
	ActionChangeWord:        "edit.changeWord",
	ActionPaste:             "edit.paste",
	ActionSplitVertical:     "pane.splitVertical",
	ActionSplitHorizontal:   "pane.splitHorizontal",
	ActionPaneNext:          "pane.next",
	ActionPanePrev:          "pane.prev",
	ActionPaneClose:         "pane.close",
	ActionVisualLeft:        "visual.left",
	ActionVisualRight:       "visual.right",
	ActionVisualUp:          "visual.up",
	ActionVisualDown:        "visual.down",
	ActionVisualWordNext:    "visual.wordNext",
	ActionVisualWordEnd:     "visual.wordEnd",
	ActionVisualWordPrev:    "visual.wordPrev",
	ActionVisualBufferStart: "visual.bufferStart",
	ActionVisualBufferEnd:   "visual.bufferEnd",
	ActionVisualDelete:      "visual.delete",
	ActionVisualYank:        "visual.yank",
	ActionCommandBegin:      "command.begin",
	ActionCommandInsertChar: "command.insertChar",
	ActionCommandDelete:     "command.delete",
	ActionCommandLeft:       "command.left",
	ActionCommandRight:      "command.right",
	ActionCommandConfirm:    "command.confirm",
	ActionCommandExit:       "command.exit",
}

var actionsByName = func() map[string]Action {
	m := make(map[string]Action, actionCount)
	for a, name := range actionNames {
		m[name] = Action(a)
	}
	return m
}()

// String returns the dotted name of the action.
func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// Repeatable reports whether a numeric count applies to the action.
func (a Action) Repeatable() bool {
	switch a {
	case ActionCursorLeft, ActionCursorRight, ActionCursorUp, ActionCursorDown,
		ActionWordNext, ActionWordEnd, ActionWordPrev,
		ActionDeleteForward, ActionDeleteLine, ActionDeleteWord, ActionPaste:
		return true
	}
	return false
}

// ParseAction returns the action with the given dotted name.
func ParseAction(name string) (Action, error) {
	if a, ok := actionsByName[name]; ok {
		return a, nil
	}
	return ActionNone, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// ActionNames returns every action name in sorted order.
func ActionNames() []string {
	names := make([]string, 0, actionCount)
	for _, n := range actionNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
