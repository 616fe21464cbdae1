package pane

import (
	"github.com/dshills/shin/internal/engine/buffer"
	"github.com/dshills/shin/internal/engine/cursor"
	"github.com/dshills/shin/internal/input/mode"
)

// Pane is a viewport onto one buffer.
type Pane struct {
	buf     *buffer.Buffer
	bounds  Bounds
	start   int
	end     int
	topLine int
	status  string
}

func newPane(b Bounds, buf *buffer.Buffer) *Pane {
	return &Pane{buf: buf, bounds: b}
}

// Buffer returns the buffer shown in the pane.
func (p *Pane) Buffer() *buffer.Buffer {
	return p.buf
}

// Bounds returns the rectangle of the pane.
func (p *Pane) Bounds() Bounds {
	return p.bounds
}

// Start returns the first visible offset. It is always a line start.
func (p *Pane) Start() int {
	return p.start
}

// End returns the end of the last visible line.
func (p *Pane) End() int {
	return p.end
}

// TopLine returns the zero-based line number of Start.
func (p *Pane) TopLine() int {
	return p.topLine
}

// Status returns the pane's status message.
func (p *Pane) Status() string {
	return p.status
}

// SetStatus sets the pane's status message.
func (p *Pane) SetStatus(msg string) {
	p.status = msg
}

// TextHeight returns the number of text rows: the height minus the status
// line, but at least one.
func (p *Pane) TextHeight() int {
	return max(1, p.bounds.Height-1)
}

// Target returns the offset that must stay visible: the cursor, or the far
// end of the selection in visual mode.
func (p *Pane) Target() int {
	b := p.buf
	if b.Mode() == mode.Visual {
		return cursor.Clamp(b, b.Cursor()+b.Extent())
	}
	return b.Cursor()
}

// Visible reports whether off lies in the visible range.
func (p *Pane) Visible(off int) bool {
	return off >= p.start && off <= p.end
}

// lineBelow returns the end of the line k lines below the one holding off,
// stopping at the last line.
func lineBelow(b *buffer.Buffer, off, k int) int {
	end := cursor.LineEnd(b, off)
	for ; k > 0 && end < b.Len(); k-- {
		end = cursor.NextLineEnd(b, end)
	}
	return end
}

// lineAbove returns the start of the line k lines above the one holding off,
// stopping at the first line.
func lineAbove(b *buffer.Buffer, off, k int) int {
	start := cursor.LineStart(b, off)
	for ; k > 0 && start > 0; k-- {
		start = cursor.PrevLineStart(b, start)
	}
	return start
}

// UpdateScroll adjusts the visible range so the target offset is shown and
// at most TextHeight lines are spanned. A target already inside the range
// leaves the range where it is. A target below the range ends up on the last
// row and a target above it on the first.
//
// The work is bounded by the window height plus the distance the window
// moves; TopLine is carried forward rather than recounted from the top.
func (p *Pane) UpdateScroll() {
	b := p.buf
	h := p.TextHeight()
	target := p.Target()

	start := cursor.LineStart(b, min(p.start, b.Len()))
	if d := b.Dirty(); start != p.start || (d >= 0 && d < p.start) {
		// Text above the window changed.
		p.topLine = cursor.LineIndex(b, start)
	}
	b.ClearDirty()
	prev := start

	switch {
	case target < start:
		start = cursor.LineStart(b, target)
	case target > lineBelow(b, start, h-1):
		start = lineAbove(b, target, h-1)
	}

	if start >= prev {
		p.topLine += cursor.CountLines(b, prev, start)
	} else {
		p.topLine -= cursor.CountLines(b, start, prev)
	}
	p.start = start
	p.end = lineBelow(b, start, h-1)
}

// View is a read-only snapshot of a pane for renderers.
type View struct {
	Bounds  Bounds
	Start   int
	End     int
	TopLine int
	Cursor  int
	Extent  int
	Mode    mode.Mode
	Path    string
	// LineWise marks a selection that covers whole lines.
	LineWise bool
	Status   string
	Active   bool
	Buffer   *buffer.Buffer
}

// View returns a snapshot of the pane.
func (p *Pane) View(active bool) View {
	return View{
		Bounds:  p.bounds,
		Start:   p.start,
		End:     p.end,
		TopLine: p.topLine,
		Cursor:  p.buf.Cursor(),
		Extent:  p.buf.Extent(),
		Mode:    p.buf.Mode(),
		Path:    p.buf.Path(),
		Status:  p.status,
		Active:  active,
		Buffer:  p.buf,
	}
}

// Selection returns the selected byte range. A line-wise selection is widened
// to the lines it touches, newline included.
func (v View) Selection() (start, end int) {
	start, end = v.Buffer.Selection()
	if v.LineWise {
		start, end = cursor.ExpandLines(v.Buffer, start, end)
	}
	return start, end
}
