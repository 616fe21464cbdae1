package app

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/dshills/shin/internal/config"
	"github.com/dshills/shin/internal/editor"
	"github.com/dshills/shin/internal/engine/cursor"
	"github.com/dshills/shin/internal/highlight"
	"github.com/dshills/shin/internal/input/mode"
	"github.com/dshills/shin/internal/pane"
)

// palette holds the styles the renderer draws with.
type palette struct {
	text           tcell.Style
	gutter         tcell.Style
	selection      tcell.Style
	statusActive   tcell.Style
	statusInactive tcell.Style
	tags           [highlight.TagCount]tcell.Style
}

func tcellColor(c config.Color) tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func newPalette(c config.Colors) palette {
	bg, fg := tcellColor(c.Background), tcellColor(c.Foreground)
	base := tcell.StyleDefault.Background(bg).Foreground(fg)

	p := palette{
		text:           base,
		gutter:         base.Foreground(tcellColor(c.Foreground.Blend(c.Background, 0.55))),
		selection:      base.Background(tcellColor(c.Selection)).Foreground(bg),
		statusActive:   base.Reverse(true),
		statusInactive: base.Background(tcellColor(c.Background.Blend(c.Foreground, 0.2))),
	}
	p.tags[highlight.TagPlain] = base
	p.tags[highlight.TagKeyword] = base.Foreground(tcellColor(c.Keyword)).Bold(true)
	p.tags[highlight.TagDirective] = base.Foreground(tcellColor(c.Directive))
	p.tags[highlight.TagNumber] = base.Foreground(tcellColor(c.Number))
	p.tags[highlight.TagString] = base.Foreground(tcellColor(c.String))
	p.tags[highlight.TagType] = base.Foreground(tcellColor(c.Type))
	p.tags[highlight.TagComment] = base.Foreground(tcellColor(c.Comment)).Italic(true)
	return p
}

func cursorStyle(m mode.Mode) tcell.CursorStyle {
	switch m.CursorStyle() {
	case mode.CursorBar:
		return tcell.CursorStyleSteadyBar
	case mode.CursorUnderline:
		return tcell.CursorStyleSteadyUnderline
	default:
		return tcell.CursorStyleSteadyBlock
	}
}

// renderer draws the editor onto a screen. The last screen row is the
// command line; panes tile the rows above it.
type renderer struct {
	screen      tcell.Screen
	pal         palette
	tabs        tabStops
	lineNumbers bool
	spans       *spanCache
}

func newRenderer(cfg *config.Config) *renderer {
	r := &renderer{}
	r.configure(cfg)
	return r
}

// configure applies the display settings of cfg.
func (r *renderer) configure(cfg *config.Config) {
	r.pal = newPalette(cfg.Colors)
	r.tabs = newTabStops(cfg.Editor.TabWidth)
	r.lineNumbers = cfg.Editor.LineNumbers
	r.spans = newSpanCache(cfg.Highlight)
}

// cursorPos is a screen position; ok is false when nothing placed it.
type cursorPos struct {
	x, y int
	ok   bool
}

func (r *renderer) draw(e *editor.Editor) {
	s := r.screen
	s.SetStyle(r.pal.text)
	s.Clear()
	w, h := s.Size()

	var cur cursorPos
	views := e.Views()
	live := make(map[uuid.UUID]bool, len(views))
	for _, v := range views {
		live[v.Buffer.ID()] = true
		if pos := r.drawPane(v); v.Active {
			cur = pos
		}
	}
	r.spans.prune(live)

	if h > 0 {
		if pos := r.drawCommandLine(e, h-1, w); pos.ok {
			cur = pos
		}
	}

	s.SetCursorStyle(cursorStyle(e.Mode()))
	if cur.ok {
		s.ShowCursor(cur.x, cur.y)
	} else {
		s.HideCursor()
	}
	s.Show()
}

// gutterWidth returns the width of the line number column, or 0 when it is
// off or would take half the pane.
func (r *renderer) gutterWidth(lines, width int) int {
	if !r.lineNumbers {
		return 0
	}
	g := len(strconv.Itoa(lines)) + 1
	if g*2 > width {
		return 0
	}
	return g
}

// put writes s from x, clipped at limit, and returns the next column.
func (r *renderer) put(x, y, limit int, s string, st tcell.Style) int {
	for i := 0; i < len(s) && x < limit; i++ {
		r.screen.SetContent(x, y, rune(s[i]), nil, st)
		x++
	}
	return x
}

func (r *renderer) fill(x, y, limit int, st tcell.Style) {
	for ; x < limit; x++ {
		r.screen.SetContent(x, y, ' ', nil, st)
	}
}

func (r *renderer) drawPane(v pane.View) cursorPos {
	b := v.Bounds
	buf := v.Buffer
	if b.Width < 1 || b.Height < 1 {
		return cursorPos{}
	}
	rows := max(1, b.Height-1)
	total := r.spans.lines(buf)
	gutter := r.gutterWidth(total, b.Width)
	left := b.Left + gutter
	right := b.Right()
	textW := right - left

	// Shift the text left when the cursor column is off the right edge.
	shift := 0
	if v.Active {
		col := r.tabs.width(buf.Slice(cursor.LineStart(buf, v.Cursor), v.Cursor))
		shift = max(0, col-textW+1)
	}

	spans := r.spans.spans(buf)
	selStart, selEnd := 0, 0
	if v.Mode == mode.Visual {
		selStart, selEnd = v.Selection()
	}

	var cur cursorPos
	off := v.Start
	for row := range rows {
		y := b.Top + row
		line := v.TopLine + row
		if line >= total {
			r.put(b.Left, y, right, "~", r.pal.gutter)
			continue
		}
		if gutter > 0 {
			r.put(b.Left, y, left, fmt.Sprintf("%*d ", gutter-1, line+1), r.pal.gutter)
		}

		end := cursor.LineEnd(buf, off)
		col := 0
		for p := off; p <= end; p++ {
			if v.Active && p == v.Cursor {
				cur = cursorPos{x: left + min(col-shift, textW-1), y: y, ok: true}
			}
			if p == end {
				if p < buf.Len() && p >= selStart && p < selEnd {
					r.cell(left, col-shift, textW, y, ' ', r.pal.selection)
				}
				break
			}
			st := r.pal.tags[highlight.At(spans, p)]
			if p >= selStart && p < selEnd {
				st = r.pal.selection
			}
			c := buf.ByteAt(p)
			next := col + 1
			ch := rune(c)
			switch {
			case c == '\t':
				next = r.tabs.next(col)
				ch = ' '
			case c < ' ' || c > '~':
				ch = '?'
			}
			for ; col < next; col++ {
				r.cell(left, col-shift, textW, y, ch, st)
			}
		}
		off = cursor.NextLineStart(buf, end)
	}

	if b.Height >= 2 {
		r.drawStatus(v, b.Top+b.Height-1)
	}
	return cur
}

// cell draws ch at text column col when it lies inside [0, width).
func (r *renderer) cell(left, col, width, y int, ch rune, st tcell.Style) {
	if col >= 0 && col < width {
		r.screen.SetContent(left+col, y, ch, nil, st)
	}
}

// drawStatus draws "MODE path  message" on the left and line:column on the
// right.
// cursorLine returns the zero-based line of the cursor, counted from the
// pane's top line.
func cursorLine(v pane.View) int {
	if v.Cursor >= v.Start {
		return v.TopLine + cursor.CountLines(v.Buffer, v.Start, v.Cursor)
	}
	return v.TopLine - cursor.CountLines(v.Buffer, v.Cursor, v.Start)
}

func (r *renderer) drawStatus(v pane.View, y int) {
	b := v.Bounds
	st := r.pal.statusInactive
	if v.Active {
		st = r.pal.statusActive
	}
	r.fill(b.Left, y, b.Right(), st)

	name := v.Path
	if name == "" {
		name = "[No Name]"
	}
	left := " " + v.Mode.DisplayName() + "  " + name
	if v.Status != "" {
		left += "  " + v.Status
	}
	buf := v.Buffer
	pos := fmt.Sprintf("%d:%d ", cursorLine(v)+1, cursor.Column(buf, v.Cursor)+1)

	x := r.put(b.Left, y, b.Right(), left, st)
	if px := b.Right() - len(pos); px > x {
		r.put(px, y, b.Right(), pos, st)
	}
}

// drawCommandLine draws the ex prompt in Command mode, and the pending
// normal-mode keys otherwise.
func (r *renderer) drawCommandLine(e *editor.Editor, y, w int) cursorPos {
	r.fill(0, y, w, r.pal.text)
	if e.Mode() == mode.Command {
		cl := e.CommandLine()
		r.put(0, y, w, cl.String(), r.pal.text)
		return cursorPos{x: min(cl.Cursor(), max(0, w-1)), y: y, ok: true}
	}
	if p := e.Pending(); p != "" {
		r.put(max(0, w-len(p)-1), y, w, p, r.pal.text)
	}
	return cursorPos{}
}
