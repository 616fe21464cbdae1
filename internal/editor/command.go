package editor

import (
	"errors"
	"fmt"

	"github.com/dshills/shin/internal/engine/buffer"
	"github.com/dshills/shin/internal/engine/cursor"
	"github.com/dshills/shin/internal/excmd"
	"github.com/dshills/shin/internal/fileio"
	"github.com/dshills/shin/internal/input/mode"
)

// commandBegin switches the active buffer to Command mode with an empty
// ':' prompt.
func (e *Editor) commandBegin() {
	e.parser.Reset()
	e.ActivePane().SetStatus("")
	e.ActiveBuffer().SetMode(mode.Command)
	e.cmdline.Clear()
	e.cmdline.Insert(0, ':')
}

func (e *Editor) commandInsert(c byte) {
	if c == 0 || e.cmdline.Len() >= excmd.MaxLength {
		return
	}
	e.cmdline.Insert(e.cmdline.Cursor(), c)
}

// commandDelete removes the byte before the cursor. The ':' prompt is never
// removed; backspace on an empty prompt leaves Command mode.
func (e *Editor) commandDelete() {
	if e.cmdline.Len() <= 1 {
		e.commandExit()
		return
	}
	if e.cmdline.Cursor() > 1 {
		e.cmdline.DeleteBackward(e.cmdline.Cursor())
	}
}

func (e *Editor) commandLeft() {
	if c := e.cmdline.Cursor(); c > 1 {
		e.cmdline.SetCursor(c - 1)
	}
}

func (e *Editor) commandRight() {
	e.cmdline.SetCursor(e.cmdline.Cursor() + 1)
}

// commandConfirm runs the typed command and returns to Normal mode.
func (e *Editor) commandConfirm() {
	buf := e.ActiveBuffer()
	line := e.cmdline.String()
	e.cmdline.Clear()
	buf.SetMode(mode.Normal)
	e.Run(line)
}

func (e *Editor) commandExit() {
	e.cmdline.Clear()
	e.ActiveBuffer().SetMode(mode.Normal)
}

// Run executes an ex command line such as ":w out.txt" against the active
// pane. Unknown commands are ignored.
func (e *Editor) Run(line string) {
	cmd := excmd.Parse(line)
	buf := e.ActiveBuffer()
	e.log.Debug("command %q -> %s", line, cmd.Kind)

	switch cmd.Kind {
	case excmd.KindWrite:
		if p := cmd.Path(); p != "" {
			buf.SetPath(p)
		}
		e.write(buf)
	case excmd.KindEdit:
		if p := cmd.Path(); p != "" {
			buf.SetPath(p)
		}
		e.read(buf)
	case excmd.KindQuit:
		e.Quit()
	case excmd.KindWriteQuit:
		if p := cmd.Path(); p != "" {
			buf.SetPath(p)
		}
		if e.write(buf) {
			e.Quit()
		}
	case excmd.KindClose:
		e.closePane()
	case excmd.KindGoto:
		buf.SetCursor(cursor.LineOffset(buf, max(0, cmd.Line-1)))
	}
	e.layout.UpdateScroll()
}

// write saves buf to its path and reports the result on the active pane.
func (e *Editor) write(buf *buffer.Buffer) bool {
	p := e.ActivePane()
	path := buf.Path()
	if path == "" {
		p.SetStatus("no file name")
		return false
	}
	before, after := buf.Halves()
	if err := e.storage.Save(path, before, after); err != nil {
		e.log.WithField("buffer", buf.ID()).Warn("write failed: %v", err)
		p.SetStatus(err.Error())
		return false
	}
	e.log.Debug("wrote %d bytes to %s", buf.Len(), path)
	p.SetStatus(fmt.Sprintf("%q %dL, %dB written", path, lineTotal(buf), buf.Len()))
	return true
}

// read replaces buf with the contents of its path and reports the result on
// the active pane. On failure buf is left untouched.
func (e *Editor) read(buf *buffer.Buffer) {
	p := e.ActivePane()
	if buf.Path() == "" {
		p.SetStatus("no file name")
		return
	}
	if err := e.load(buf); err != nil {
		if errors.Is(err, fileio.ErrNotExist) {
			p.SetStatus(fmt.Sprintf("%q [New]", buf.Path()))
			return
		}
		p.SetStatus(err.Error())
		return
	}
	p.SetStatus(fmt.Sprintf("%q %dL, %dB", buf.Path(), lineTotal(buf), buf.Len()))
}

func (e *Editor) load(buf *buffer.Buffer) error {
	data, err := e.storage.Load(buf.Path())
	if err != nil {
		e.log.WithField("buffer", buf.ID()).Warn("read failed: %v", err)
		return err
	}
	buf.Load(data)
	e.log.Debug("read %d bytes from %s", len(data), buf.Path())
	return nil
}

// lineTotal counts lines the way a file listing does: a final line without
// a newline counts, an empty text has none.
func lineTotal(buf *buffer.Buffer) int {
	n := cursor.CountLines(buf, 0, buf.Len())
	if l := buf.Len(); l > 0 && buf.ByteAt(l-1) != '\n' {
		n++
	}
	return n
}
