package editor

import (
	"bytes"

	"github.com/dshills/shin/internal/engine/buffer"
	"github.com/dshills/shin/internal/engine/cursor"
	"github.com/dshills/shin/internal/input/mode"
)

func (e *Editor) insertChar(c byte) {
	if c == 0 {
		return
	}
	buf := e.ActiveBuffer()
	buf.Insert(buf.Cursor(), c)
}

// deleteForward removes n bytes at the cursor. In Normal mode the deletion
// stops at the end of the line.
func (e *Editor) deleteForward(n int) {
	buf := e.ActiveBuffer()
	pos := buf.Cursor()
	if buf.Mode() == mode.Normal {
		n = min(n, cursor.LineEnd(buf, pos)-pos)
	}
	buf.DeleteRange(pos, n)
}

func (e *Editor) deleteBackward() {
	buf := e.ActiveBuffer()
	buf.DeleteBackward(buf.Cursor())
}

// normalMode leaves Insert or Visual mode. Leaving Insert mode steps the
// cursor back onto the last inserted byte unless it is at a line start.
func (e *Editor) normalMode() {
	buf := e.ActiveBuffer()
	if buf.Mode() == mode.Insert && cursor.Column(buf, buf.Cursor()) > 0 {
		buf.SetCursor(buf.Cursor() - 1)
	}
	e.normalClear()
}

// normalClear drops the pending sequence and any selection.
func (e *Editor) normalClear() {
	buf := e.ActiveBuffer()
	e.parser.Reset()
	buf.SetExtent(0)
	buf.SetMode(mode.Normal)
	e.visualLine = false
}

func (e *Editor) appendMode() {
	buf := e.ActiveBuffer()
	buf.SetCursor(cursor.Next(buf, buf.Cursor()))
	buf.SetMode(mode.Insert)
}

func (e *Editor) insertLineStart() {
	buf := e.ActiveBuffer()
	buf.SetCursor(cursor.LineStart(buf, buf.Cursor()))
	buf.SetMode(mode.Insert)
}

func (e *Editor) appendLineEnd() {
	buf := e.ActiveBuffer()
	buf.SetCursor(cursor.LineEnd(buf, buf.Cursor()))
	buf.SetMode(mode.Insert)
}

func (e *Editor) openLineBelow() {
	buf := e.ActiveBuffer()
	end := cursor.LineEnd(buf, buf.Cursor())
	buf.SetCursor(end)
	buf.Insert(end, '\n')
	buf.SetMode(mode.Insert)
}

func (e *Editor) openLineAbove() {
	buf := e.ActiveBuffer()
	start := cursor.LineStart(buf, buf.Cursor())
	buf.Insert(start, '\n')
	buf.SetCursor(start)
	buf.SetMode(mode.Insert)
}

func (e *Editor) visualMode(line bool) {
	buf := e.ActiveBuffer()
	buf.SetMode(mode.Visual)
	e.visualLine = line
	if !line {
		buf.SetExtent(0)
		return
	}
	start := cursor.LineStart(buf, buf.Cursor())
	end := cursor.LineEnd(buf, start)
	buf.SetCursor(start)
	buf.SetExtent(end - start)
}

// lineRange returns the bytes covered by n whole lines from off. When the
// range reaches the end of a text without a trailing newline, the newline
// before it is taken instead so no empty line is left behind; joined
// reports that case.
func lineRange(buf *buffer.Buffer, off, n int) (from, to int, joined bool) {
	from = cursor.LineStart(buf, off)
	to = from
	for range n {
		if to == buf.Len() {
			break
		}
		to = cursor.NextLineStart(buf, to)
	}
	if to == buf.Len() && from > 0 && (to == from || buf.ByteAt(to-1) != '\n') {
		return from - 1, to, true
	}
	return from, to, false
}

// yankLines copies a lineRange result into the register as newline
// terminated lines.
func (e *Editor) yankLines(from, to int, joined bool) {
	text := e.ActiveBuffer().Slice(from, to)
	if joined {
		text = text[1:]
	}
	if len(text) == 0 || text[len(text)-1] != '\n' {
		text = append(text, '\n')
	}
	e.register.Set(text, true)
}

// cutLines yanks and deletes a lineRange result, leaving the cursor at the
// start of the line that took its place.
func (e *Editor) cutLines(from, to int, joined bool) {
	buf := e.ActiveBuffer()
	e.yankLines(from, to, joined)
	buf.DeleteRange(from, to-from)
	buf.SetCursor(cursor.LineStart(buf, from))
}

// deleteLines deletes n lines into the register (dd).
func (e *Editor) deleteLines(n int) {
	buf := e.ActiveBuffer()
	if buf.IsEmpty() {
		return
	}
	e.cutLines(lineRange(buf, buf.Cursor(), n))
}

// deleteWords deletes n words forward (dw). The deletion never crosses the
// end of the cursor's line unless the cursor is already on it.
func (e *Editor) deleteWords(n int) {
	buf := e.ActiveBuffer()
	from := buf.Cursor()
	to := from
	for range n {
		to = cursor.NextWord(buf, to)
	}
	if end := cursor.LineEnd(buf, from); end > from && to > end {
		to = end
	}
	buf.DeleteRange(from, to-from)
	buf.SetCursor(from)
}

// changeWord deletes to the end of the word and enters Insert mode (cw).
func (e *Editor) changeWord() {
	buf := e.ActiveBuffer()
	from := buf.Cursor()
	if from < buf.Len() && buf.ByteAt(from) != '\n' {
		buf.DeleteRange(from, cursor.WordEnd(buf, from)-from+1)
	}
	buf.SetCursor(from)
	buf.SetMode(mode.Insert)
}

// MaxPaste bounds the bytes a counted paste inserts. The count is lowered
// to fit; a register larger than the bound is still pasted once.
const MaxPaste = 1 << 20

// paste inserts the register n times after the cursor (p). Linewise text
// goes below the cursor line and the cursor lands on its first byte;
// otherwise the cursor lands on the last pasted byte.
func (e *Editor) paste(n int) {
	text, linewise := e.register.Get()
	if len(text) == 0 {
		return
	}
	n = max(1, min(n, MaxPaste/len(text)))
	text = bytes.Repeat(text, n)
	buf := e.ActiveBuffer()
	off := buf.Cursor()

	if linewise {
		pos := cursor.NextLineStart(buf, off)
		if pos == buf.Len() && (pos == 0 || buf.ByteAt(pos-1) != '\n') {
			// Last line without a newline: terminate it first.
			buf.Insert(pos, '\n')
			pos++
			text = bytes.TrimSuffix(text, []byte{'\n'})
		}
		buf.InsertString(pos, string(text))
		buf.SetCursor(pos)
		return
	}

	pos := off
	if off < cursor.LineEnd(buf, off) {
		pos = off + 1
	}
	buf.InsertString(pos, string(text))
	buf.SetCursor(pos + len(text) - 1)
}

// visualLines returns the lines touched by a line-wise selection in the
// form of lineRange.
func (e *Editor) visualLines() (from, to int, joined bool) {
	buf := e.ActiveBuffer()
	start, end := buf.Selection()
	n := cursor.CountLines(buf, start, max(start, end-1)) + 1
	return lineRange(buf, start, n)
}

// visualDelete deletes the selection into the register.
func (e *Editor) visualDelete() {
	buf := e.ActiveBuffer()
	switch {
	case e.visualLine && !buf.IsEmpty():
		e.cutLines(e.visualLines())
	case !e.visualLine:
		start, end := buf.Selection()
		e.register.Set(buf.Slice(start, end), false)
		buf.DeleteRange(start, end-start)
		buf.SetCursor(start)
	}
	e.normalClear()
}

// visualYank copies the selection into the register and puts the cursor on
// its first byte, or the first line start when line-wise.
func (e *Editor) visualYank() {
	buf := e.ActiveBuffer()
	start, end := buf.Selection()
	if e.visualLine {
		from, to, joined := e.visualLines()
		e.yankLines(from, to, joined)
		start = cursor.LineStart(buf, start)
	} else {
		e.register.Set(buf.Slice(start, end), false)
	}
	buf.SetCursor(start)
	e.normalClear()
}
