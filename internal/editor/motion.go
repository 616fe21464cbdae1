package editor

import (
	"github.com/dshills/shin/internal/engine/buffer"
	"github.com/dshills/shin/internal/engine/cursor"
	"github.com/dshills/shin/internal/input/keymap"
)

// motion returns where a moves off to in buf.
func motion(buf *buffer.Buffer, a keymap.Action, off int) int {
	switch a {
	case keymap.ActionCursorLeft, keymap.ActionVisualLeft:
		return cursor.Prev(buf, off)
	case keymap.ActionCursorRight, keymap.ActionVisualRight:
		return cursor.Next(buf, off)
	case keymap.ActionCursorUp, keymap.ActionVisualUp:
		return cursor.Up(buf, off)
	case keymap.ActionCursorDown, keymap.ActionVisualDown:
		return cursor.Down(buf, off)
	case keymap.ActionWordNext, keymap.ActionVisualWordNext:
		return cursor.NextWord(buf, off)
	case keymap.ActionWordEnd, keymap.ActionVisualWordEnd:
		return cursor.NextWordEnd(buf, off)
	case keymap.ActionWordPrev, keymap.ActionVisualWordPrev:
		return cursor.PrevWord(buf, off)
	case keymap.ActionLineStart:
		return cursor.LineStart(buf, off)
	case keymap.ActionLineEnd:
		return cursor.LineEnd(buf, off)
	case keymap.ActionFirstNonBlank:
		return cursor.FirstNonBlank(buf, off)
	case keymap.ActionBufferStart, keymap.ActionVisualBufferStart:
		return 0
	case keymap.ActionVisualBufferEnd:
		return buf.Len()
	}
	return off
}

// move applies the motion a n times to the cursor.
func (e *Editor) move(a keymap.Action, n int) {
	buf := e.ActiveBuffer()
	off := buf.Cursor()
	for range n {
		next := motion(buf, a, off)
		if next == off {
			break
		}
		off = next
	}
	buf.SetCursor(off)
}

// gotoBufferEnd moves to the end of the buffer, or to the start of line
// count when a count was typed.
func (e *Editor) gotoBufferEnd(count int) {
	buf := e.ActiveBuffer()
	if count > 0 {
		buf.SetCursor(cursor.LineOffset(buf, count-1))
		return
	}
	buf.SetCursor(buf.Len())
}

// extend moves the far end of the selection.
func (e *Editor) extend(a keymap.Action) {
	buf := e.ActiveBuffer()
	far := cursor.Clamp(buf, buf.Cursor()+buf.Extent())
	buf.SetExtent(motion(buf, a, far) - buf.Cursor())
}
