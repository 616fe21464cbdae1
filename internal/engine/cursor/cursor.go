package cursor

// Text is the read-only view navigation needs.
type Text interface {
	Len() int
	ByteAt(off int) byte
}

func clamp(t Text, off int) int {
	return max(0, min(off, t.Len()))
}

// Clamp limits off to [0, t.Len()].
func Clamp(t Text, off int) int {
	return clamp(t, off)
}

// Next returns off+1, or Len() at the end of the text.
func Next(t Text, off int) int {
	off = clamp(t, off)
	if off < t.Len() {
		off++
	}
	return off
}

// Prev returns off-1, or 0 at the start of the text.
func Prev(t Text, off int) int {
	off = clamp(t, off)
	if off > 0 {
		off--
	}
	return off
}

// LineStart returns the offset of the first byte of the line containing off.
func LineStart(t Text, off int) int {
	off = clamp(t, off)
	for off > 0 && t.ByteAt(off-1) != '\n' {
		off--
	}
	return off
}

// LineEnd returns the offset of the newline ending the line containing off,
// or Len() for the last line.
func LineEnd(t Text, off int) int {
	off = clamp(t, off)
	for off < t.Len() && t.ByteAt(off) != '\n' {
		off++
	}
	return off
}

// NextLineStart returns the start of the line after off, or Len() if off is
// on the last line.
func NextLineStart(t Text, off int) int {
	return Next(t, LineEnd(t, off))
}

// PrevLineEnd returns the newline ending the line before off, or 0 if off is
// on the first line.
func PrevLineEnd(t Text, off int) int {
	return Prev(t, LineStart(t, off))
}

// PrevLineStart returns the start of the line before off, or 0 if off is on
// the first line.
func PrevLineStart(t Text, off int) int {
	return LineStart(t, PrevLineEnd(t, off))
}

// NextLineEnd returns the end of the line after off.
func NextLineEnd(t Text, off int) int {
	return LineEnd(t, NextLineStart(t, off))
}

// ExpandLines widens [start, end) to the whole lines it touches, including
// the newline that ends the last one.
func ExpandLines(t Text, start, end int) (int, int) {
	from := LineStart(t, start)
	return from, NextLineStart(t, max(from, end-1))
}

// Column returns the distance of off from its line start.
func Column(t Text, off int) int {
	off = clamp(t, off)
	return off - LineStart(t, off)
}

// LineLength returns the number of bytes on the line containing off,
// excluding the newline.
func LineLength(t Text, off int) int {
	return LineEnd(t, off) - LineStart(t, off)
}

// IsLastLine reports whether off is on the last line of the text.
func IsLastLine(t Text, off int) bool {
	return LineEnd(t, off) == t.Len()
}

// FirstNonBlank returns the first byte on off's line that is not a space or
// a tab, or the line end if there is none.
func FirstNonBlank(t Text, off int) int {
	off = LineStart(t, off)
	for off < t.Len() {
		c := t.ByteAt(off)
		if c != ' ' && c != '\t' {
			break
		}
		off++
	}
	return off
}

// Down moves off to the same column on the next line, clamped to that line's
// length. It returns off unchanged on the last line.
func Down(t Text, off int) int {
	off = clamp(t, off)
	end := LineEnd(t, off)
	if end == t.Len() {
		return off
	}
	next := end + 1
	return next + min(Column(t, off), LineLength(t, next))
}

// Up moves off to the same column on the previous line, clamped to that
// line's length. It returns off unchanged on the first line.
func Up(t Text, off int) int {
	off = clamp(t, off)
	start := LineStart(t, off)
	if start == 0 {
		return off
	}
	prev := LineStart(t, start-1)
	return prev + min(off-start, start-1-prev)
}

// LineIndex returns the zero-based line number of off.
func LineIndex(t Text, off int) int {
	return CountLines(t, 0, clamp(t, off))
}

// CountLines returns the number of newlines in [start, end).
func CountLines(t Text, start, end int) int {
	start, end = clamp(t, start), clamp(t, end)
	n := 0
	for i := start; i < end; i++ {
		if t.ByteAt(i) == '\n' {
			n++
		}
	}
	return n
}

// LineCount returns the number of lines in the text. An empty text has one
// line, as does a text ending in a newline followed by nothing.
func LineCount(t Text) int {
	return CountLines(t, 0, t.Len()) + 1
}

// LineOffset returns the start of the zero-based line n, clamped to the last
// line.
func LineOffset(t Text, n int) int {
	off := 0
	for ; n > 0 && !IsLastLine(t, off); n-- {
		off = NextLineStart(t, off)
	}
	return off
}
